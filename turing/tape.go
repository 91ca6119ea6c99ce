package turing

import (
	"slices"
	"strings"
)

// Tape is the finite visited window of one tape.
// Right holds positions 0, 1, 2, ..., Left holds positions -1, -2, -3, ...
// Positions outside the window are implicitly blank.
type Tape struct {
	Left  []Symbol
	Right []Symbol
}

func TapeFromString(str string) Tape {
	var right []Symbol
	for _, r := range str {
		right = append(right, Symbol(r))
	}
	return Tape{
		Right: right,
	}
}

func (t Tape) Clone() Tape {
	return Tape{
		Left:  slices.Clone(t.Left),
		Right: slices.Clone(t.Right),
	}
}

// Contains reports whether pos is inside the materialized window.
func (t Tape) Contains(pos int) bool {
	if pos >= 0 {
		return pos < len(t.Right)
	}
	return -pos-1 < len(t.Left)
}

func (t Tape) Read(pos int, blank Symbol) Symbol {
	if !t.Contains(pos) {
		return blank
	}
	if pos >= 0 {
		return t.Right[pos]
	}
	return t.Left[-pos-1]
}

// write stores sym at pos, materializing blank cells up to pos if needed.
// Must only be called on a tape owned by the caller.
func (t *Tape) write(pos int, sym Symbol, blank Symbol) {
	t.extendTo(pos, blank)
	if pos >= 0 {
		t.Right[pos] = sym
	} else {
		t.Left[-pos-1] = sym
	}
}

func (t *Tape) extendTo(pos int, blank Symbol) {
	if pos >= 0 {
		for len(t.Right) <= pos {
			t.Right = append(t.Right, blank)
		}
		return
	}
	for len(t.Left) <= -pos-1 {
		t.Left = append(t.Left, blank)
	}
}

func (t Tape) Equal(t2 Tape) bool {
	return slices.Equal(t.Left, t2.Left) &&
		slices.Equal(t.Right, t2.Right)
}

// String renders the window from the lowest to the highest position.
func (t Tape) String() string {
	var b strings.Builder
	for i := len(t.Left) - 1; i >= 0; i-- {
		b.WriteString(string(t.Left[i]))
	}
	b.WriteString("|")
	for _, sym := range t.Right {
		b.WriteString(string(sym))
	}
	return b.String()
}
