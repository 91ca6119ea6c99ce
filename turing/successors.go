package turing

import (
	"errors"
	"fmt"
)

type Match struct {
	Transition Transition
	Index      int
}

type Successor struct {
	Configuration Configuration
	Transition    int
}

// ErrMissingTransitions reports a reachable state that is absent from the table.
var ErrMissingTransitions = errors.New("no transitions for state")

// MatchTransitions returns every transition whose condition holds under the heads of config, in list order.
func MatchTransitions(config Configuration, transitions []Transition, blank Symbol) (ret []Match) {
	for index, tr := range transitions {
		ok := true
		for i, cond := range tr.Condition {
			if !cond.Matches(config.Read(i, blank)) {
				ok = false
				break
			}
		}
		if ok {
			ret = append(ret, Match{
				Transition: tr,
				Index:      index,
			})
		}
	}
	return
}

// ApplyTransition writes, moves and switches state on a deep copy of config.
// tr is assumed to match config.
func ApplyTransition(config Configuration, tr Transition, blank Symbol) Configuration {
	next := config.Clone()
	next.State = tr.To

	for i, w := range tr.Write {
		if w.Same {
			continue
		}
		next.Tapes[i].write(next.Heads[i], w.Symbol, blank)
	}

	for i, move := range tr.Moves {
		next.Heads[i] += move.Delta()
	}

	// a head that left the window materializes exactly one blank cell
	for i, head := range next.Heads {
		if !next.Tapes[i].Contains(head) {
			next.Tapes[i].extendTo(head, blank)
		}
	}

	return next
}

// Successors matches and applies transitions against config.
func Successors(config Configuration, transitions []Transition, blank Symbol) []Successor {
	matches := MatchTransitions(config, transitions, blank)
	ret := make([]Successor, 0, len(matches))
	for _, match := range matches {
		ret = append(ret, Successor{
			Configuration: ApplyTransition(config, match.Transition, blank),
			Transition:    match.Index,
		})
	}
	return ret
}

// NextConfigurations computes the successors of config under m.
// A state unknown to the table yields no successors and ErrMissingTransitions.
func NextConfigurations(m *Machine, config Configuration) ([]Successor, error) {
	transitions, ok := m.Table.Transitions(config.State)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrMissingTransitions, config.State)
	}
	return Successors(config, transitions, m.Blank), nil
}
