package machines

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/reusee/tmsim/turing"
	"gopkg.in/yaml.v3"
)

var ErrInvalidMachine = errors.New("invalid machine description")

const (
	wildcardField = "all"
	sameField     = "same"
	writeKey      = "write"
)

// Load reads and decodes the description at path.
func Load(path string) (*turing.Machine, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return Decode(name, src)
}

// Decode parses a YAML machine description.
//
// Top level keys are input, blank, tapes, startstate and table.
// Table maps each state to a mapping from read patterns to actions, in document order.
// A pattern is "a/b" with one field per tape, or a list "[a/b, c/d]"; "all" matches any symbol.
// An action is a move string like "R/S", a mapping with an optional write string
// and one move key whose value is the target state, or a sequence of those.
func Decode(name string, src []byte) (*turing.Machine, error) {
	if err := Validate(name, src); err != nil {
		return nil, err
	}

	var doc yaml.Node
	if err := yaml.Unmarshal(src, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMachine, err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("%w: empty document", ErrInvalidMachine)
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, nodeError(root, "top level must be a mapping")
	}

	d := &decoder{
		machine: &turing.Machine{
			Name: name,
		},
	}
	fields := make(map[string]*yaml.Node)
	for i := 0; i+1 < len(root.Content); i += 2 {
		fields[root.Content[i].Value] = root.Content[i+1]
	}
	for _, key := range []string{"blank", "tapes", "startstate", "table"} {
		if fields[key] == nil {
			return nil, nodeError(root, "missing %s", key)
		}
	}

	// tapes and blank first, everything else depends on them
	tapes, err := strconv.Atoi(fields["tapes"].Value)
	if err != nil || tapes < 1 {
		return nil, nodeError(fields["tapes"], "bad tape count %q", fields["tapes"].Value)
	}
	d.machine.TapeCount = tapes

	blank := fields["blank"].Value
	if utf8.RuneCountInString(blank) != 1 {
		return nil, nodeError(fields["blank"], "blank must be a single symbol, got %q", blank)
	}
	d.machine.Blank = turing.Symbol(blank)

	var input string
	if node, ok := fields["input"]; ok {
		input = node.Value
	}
	d.machine.Input, err = d.input(fields["input"], input)
	if err != nil {
		return nil, err
	}

	d.machine.Table, err = d.table(fields["table"])
	if err != nil {
		return nil, err
	}

	d.machine.StartState = turing.StateID(fields["startstate"].Value)
	if !d.machine.Table.Has(d.machine.StartState) {
		return nil, nodeError(fields["startstate"], "start state %s not in table", d.machine.StartState)
	}

	if err := d.machine.Check(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidMachine, err)
	}

	return d.machine, nil
}

type decoder struct {
	machine *turing.Machine
}

func nodeError(node *yaml.Node, format string, args ...any) error {
	if node == nil {
		return fmt.Errorf("%w: "+format, append([]any{ErrInvalidMachine}, args...)...)
	}
	return fmt.Errorf("%w: line %d: "+format, append([]any{ErrInvalidMachine, node.Line}, args...)...)
}

func (d *decoder) input(node *yaml.Node, input string) ([]turing.Tape, error) {
	parts := strings.Split(input, "/")
	if len(parts) > d.machine.TapeCount {
		return nil, nodeError(node, "input has %d tapes, machine has %d", len(parts), d.machine.TapeCount)
	}
	tapes := make([]turing.Tape, d.machine.TapeCount)
	for i := range tapes {
		var part string
		if i < len(parts) {
			part = parts[i]
		}
		if part == "" {
			// an empty tape still shows one blank cell under the head
			tapes[i] = turing.Tape{
				Right: []turing.Symbol{d.machine.Blank},
			}
			continue
		}
		tapes[i] = turing.TapeFromString(part)
	}
	return tapes, nil
}

func (d *decoder) table(node *yaml.Node) (*turing.Table, error) {
	table := turing.NewTable()
	if node.Kind != yaml.MappingNode {
		return nil, nodeError(node, "table must be a mapping")
	}

	type target struct {
		node  *yaml.Node
		state turing.StateID
	}
	var targets []target

	for i := 0; i+1 < len(node.Content); i += 2 {
		state := turing.StateID(node.Content[i].Value)
		if table.Has(state) {
			return nil, nodeError(node.Content[i], "duplicated state %s", state)
		}
		table.Declare(state)

		rules := node.Content[i+1]
		if isNull(rules) {
			continue
		}
		if rules.Kind != yaml.MappingNode {
			return nil, nodeError(rules, "transitions of %s must be a mapping", state)
		}

		for j := 0; j+1 < len(rules.Content); j += 2 {
			patterns, err := d.patterns(rules.Content[j])
			if err != nil {
				return nil, err
			}
			actions, err := d.actions(state, rules.Content[j+1])
			if err != nil {
				return nil, err
			}
			for _, pattern := range patterns {
				for _, action := range actions {
					tr := action.transition
					tr.Condition = pattern
					table.Add(tr)
					targets = append(targets, target{
						node:  action.node,
						state: tr.To,
					})
				}
			}
		}
	}

	for _, target := range targets {
		if !table.Has(target.state) {
			return nil, nodeError(target.node, "target state %s not in table", target.state)
		}
	}

	return table, nil
}

func isNull(node *yaml.Node) bool {
	return node.Kind == yaml.ScalarNode && node.Tag == "!!null"
}

func (d *decoder) patterns(node *yaml.Node) ([][]turing.PatternField, error) {
	key := node.Value
	items := []string{key}
	if strings.HasPrefix(key, "[") && strings.HasSuffix(key, "]") {
		items = strings.Split(key[1:len(key)-1], ",")
		for i := 1; i < len(items); i++ {
			// ", " separates list items, a further space is a blank field
			items[i] = strings.TrimPrefix(items[i], " ")
		}
	}

	var ret [][]turing.PatternField
	for _, item := range items {
		fields, err := d.split(node, item, "pattern")
		if err != nil {
			return nil, err
		}
		pattern := make([]turing.PatternField, len(fields))
		for i, field := range fields {
			switch field {
			case wildcardField:
				pattern[i] = turing.AnySymbol()
			case "":
				pattern[i] = turing.Exactly(d.machine.Blank)
			default:
				pattern[i] = turing.Exactly(turing.Symbol(field))
			}
		}
		ret = append(ret, pattern)
	}
	return ret, nil
}

func (d *decoder) split(node *yaml.Node, str string, what string) ([]string, error) {
	fields := strings.Split(str, "/")
	if len(fields) != d.machine.TapeCount {
		return nil, nodeError(node, "%s %q has %d fields, machine has %d tapes", what, str, len(fields), d.machine.TapeCount)
	}
	return fields, nil
}

type action struct {
	node       *yaml.Node
	transition turing.Transition
}

func (d *decoder) actions(from turing.StateID, node *yaml.Node) ([]action, error) {
	if node.Kind == yaml.SequenceNode {
		var ret []action
		for _, elem := range node.Content {
			if elem.Kind == yaml.SequenceNode {
				return nil, nodeError(elem, "nested action lists")
			}
			a, err := d.action(from, elem)
			if err != nil {
				return nil, err
			}
			ret = append(ret, a)
		}
		if len(ret) == 0 {
			return nil, nodeError(node, "empty action list")
		}
		return ret, nil
	}
	a, err := d.action(from, node)
	if err != nil {
		return nil, err
	}
	return []action{a}, nil
}

func (d *decoder) action(from turing.StateID, node *yaml.Node) (action, error) {
	tr := turing.Transition{
		From: from,
		To:   from,
	}
	for range d.machine.TapeCount {
		tr.Write = append(tr.Write, turing.Keep())
	}

	var moves string
	switch node.Kind {

	case yaml.ScalarNode:
		moves = node.Value

	case yaml.MappingNode:
		found := false
		for i := 0; i+1 < len(node.Content); i += 2 {
			key, value := node.Content[i], node.Content[i+1]
			if key.Value == writeKey {
				writes, err := d.writes(value)
				if err != nil {
					return action{}, err
				}
				tr.Write = writes
				continue
			}
			if found {
				return action{}, nodeError(key, "more than one move in action")
			}
			found = true
			moves = key.Value
			if !isNull(value) && value.Value != "" {
				tr.To = turing.StateID(value.Value)
			}
		}
		if !found {
			return action{}, nodeError(node, "action without move")
		}

	default:
		return action{}, nodeError(node, "bad action")
	}

	fields, err := d.split(node, moves, "move")
	if err != nil {
		return action{}, err
	}
	for _, field := range fields {
		move, err := turing.ParseMove(field)
		if err != nil {
			return action{}, nodeError(node, "%v", err)
		}
		tr.Moves = append(tr.Moves, move)
	}

	return action{
		node:       node,
		transition: tr,
	}, nil
}

func (d *decoder) writes(node *yaml.Node) ([]turing.WriteField, error) {
	fields, err := d.split(node, node.Value, "write")
	if err != nil {
		return nil, err
	}
	ret := make([]turing.WriteField, len(fields))
	for i, field := range fields {
		switch field {
		case sameField:
			ret[i] = turing.Keep()
		case "":
			ret[i] = turing.Put(d.machine.Blank)
		default:
			ret[i] = turing.Put(turing.Symbol(field))
		}
	}
	return ret, nil
}
