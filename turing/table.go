package turing

import "slices"

// Table maps states to their outgoing transitions.
// States keep declaration order, and a state's transition order defines
// the index used to label graph edges. Order carries no priority.
type Table struct {
	states      []StateID
	transitions map[StateID][]Transition
}

func NewTable() *Table {
	return &Table{
		transitions: make(map[StateID][]Transition),
	}
}

// Declare registers state with no transitions if it is not known yet.
// A declared state without transitions is halting.
func (t *Table) Declare(state StateID) {
	if _, ok := t.transitions[state]; ok {
		return
	}
	t.states = append(t.states, state)
	t.transitions[state] = []Transition{}
}

// Add appends tr to the list of tr.From and returns its index there.
func (t *Table) Add(tr Transition) int {
	t.Declare(tr.From)
	t.transitions[tr.From] = append(t.transitions[tr.From], tr)
	return len(t.transitions[tr.From]) - 1
}

// Transitions returns the list of state. ok is false when the state is unknown.
func (t *Table) Transitions(state StateID) (list []Transition, ok bool) {
	list, ok = t.transitions[state]
	return
}

func (t *Table) Has(state StateID) bool {
	_, ok := t.transitions[state]
	return ok
}

func (t *Table) States() []StateID {
	return slices.Clone(t.states)
}

func (t *Table) Len() int {
	return len(t.states)
}
