package turing

import (
	"fmt"
	"slices"
	"strings"
)

// Configuration is an immutable snapshot of a running machine.
// Values returned by this package never share tape storage with their inputs.
type Configuration struct {
	State StateID
	Tapes []Tape
	Heads []int
}

func (c Configuration) Clone() Configuration {
	tapes := make([]Tape, len(c.Tapes))
	for i, tape := range c.Tapes {
		tapes[i] = tape.Clone()
	}
	return Configuration{
		State: c.State,
		Tapes: tapes,
		Heads: slices.Clone(c.Heads),
	}
}

// Read returns the symbol under head i.
func (c Configuration) Read(i int, blank Symbol) Symbol {
	return c.Tapes[i].Read(c.Heads[i], blank)
}

func (c Configuration) Equal(c2 Configuration) bool {
	return c.State == c2.State &&
		slices.EqualFunc(c.Tapes, c2.Tapes, Tape.Equal) &&
		slices.Equal(c.Heads, c2.Heads)
}

func (c Configuration) String() string {
	var b strings.Builder
	b.WriteString(string(c.State))
	for i, tape := range c.Tapes {
		fmt.Fprintf(&b, " [%s]@%d", tape, c.Heads[i])
	}
	return b.String()
}
