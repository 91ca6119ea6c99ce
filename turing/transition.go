package turing

import (
	"fmt"
	"strings"
)

type Move int

const (
	Stay Move = iota
	Left
	Right
)

func (m Move) Delta() int {
	switch m {
	case Left:
		return -1
	case Right:
		return 1
	}
	return 0
}

func (m Move) String() string {
	switch m {
	case Left:
		return "L"
	case Right:
		return "R"
	}
	return "S"
}

func ParseMove(str string) (Move, error) {
	switch str {
	case "L":
		return Left, nil
	case "R":
		return Right, nil
	case "S":
		return Stay, nil
	}
	return Stay, fmt.Errorf("bad move: %q", str)
}

// PatternField is a read condition on one tape.
// Any matches every symbol, blank included.
type PatternField struct {
	Any    bool
	Symbol Symbol
}

func AnySymbol() PatternField {
	return PatternField{
		Any: true,
	}
}

func Exactly(sym Symbol) PatternField {
	return PatternField{
		Symbol: sym,
	}
}

func (p PatternField) Matches(sym Symbol) bool {
	return p.Any || p.Symbol == sym
}

// Distinguishes reports whether no symbol can match both p and p2.
func (p PatternField) Distinguishes(p2 PatternField) bool {
	return !p.Any && !p2.Any && p.Symbol != p2.Symbol
}

func (p PatternField) String() string {
	if p.Any {
		return "all"
	}
	return string(p.Symbol)
}

// WriteField is a write action on one tape. Same leaves the cell unchanged.
type WriteField struct {
	Same   bool
	Symbol Symbol
}

func Keep() WriteField {
	return WriteField{
		Same: true,
	}
}

func Put(sym Symbol) WriteField {
	return WriteField{
		Symbol: sym,
	}
}

func (w WriteField) String() string {
	if w.Same {
		return "same"
	}
	return string(w.Symbol)
}

type Transition struct {
	From      StateID
	To        StateID
	Condition []PatternField
	Write     []WriteField
	Moves     []Move
}

func (t Transition) String() string {
	var conds, writes, moves []string
	for _, c := range t.Condition {
		conds = append(conds, c.String())
	}
	for _, w := range t.Write {
		writes = append(writes, w.String())
	}
	for _, m := range t.Moves {
		moves = append(moves, m.String())
	}
	return fmt.Sprintf("%s '%s' -> write '%s' move %s -> %s",
		t.From,
		strings.Join(conds, "/"),
		strings.Join(writes, "/"),
		strings.Join(moves, "/"),
		t.To,
	)
}
