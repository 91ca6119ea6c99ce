package turing

import (
	"errors"
	"fmt"
)

// Machine bundles what the simulator needs from a parsed description.
type Machine struct {
	Name       string
	Table      *Table
	Blank      Symbol
	TapeCount  int
	StartState StateID
	Input      []Tape
}

var ErrBadMachine = errors.New("bad machine")

func (m *Machine) Check() error {
	if m.Table == nil {
		return fmt.Errorf("%w: no transition table", ErrBadMachine)
	}
	if m.TapeCount < 1 {
		return fmt.Errorf("%w: tape count %d", ErrBadMachine, m.TapeCount)
	}
	if len(m.Input) != m.TapeCount {
		return fmt.Errorf("%w: %d input tapes for %d tapes", ErrBadMachine, len(m.Input), m.TapeCount)
	}
	for _, state := range m.Table.States() {
		list, _ := m.Table.Transitions(state)
		for i, tr := range list {
			if len(tr.Condition) != m.TapeCount ||
				len(tr.Write) != m.TapeCount ||
				len(tr.Moves) != m.TapeCount {
				return fmt.Errorf("%w: transition %d of %s has wrong field count", ErrBadMachine, i, state)
			}
		}
	}
	return nil
}

// StartConfiguration returns the start state on a copy of the input with all heads at 0.
func (m *Machine) StartConfiguration() Configuration {
	tapes := make([]Tape, len(m.Input))
	for i, tape := range m.Input {
		tapes[i] = tape.Clone()
	}
	return Configuration{
		State: m.StartState,
		Tapes: tapes,
		Heads: make([]int, len(m.Input)),
	}
}
