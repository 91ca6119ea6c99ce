package debugs

import (
	"context"
	"fmt"

	"github.com/reusee/tmsim/runs"
	"github.com/reusee/tmsim/turing"
	"go.starlark.net/starlark"
)

// SessionGlobals exposes a session to a tap.
// Values are a snapshot, builtins act on the live session.
func SessionGlobals(ctx context.Context, s *runs.Session) map[string]any {
	m := s.Machine()
	current := s.Current()
	globals := map[string]any{
		"machine": m.Name,
		"blank":   string(m.Blank),
		"current": current,
		"hash":    current.Hash(),
		"det":     turing.IsDeterministic(m.Table).Result,

		"step": starlark.NewBuiltin("step", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			outcome, err := s.Step(ctx)
			if err != nil {
				return nil, err
			}
			return starlark.String(outcome.String()), nil
		}),

		"successors": starlark.NewBuiltin("successors", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			succs, err := s.NextConfigurations()
			if err != nil {
				return nil, err
			}
			var elems []starlark.Value
			for _, succ := range succs {
				elems = append(elems, starlark.String(fmt.Sprintf("%d %s", succ.Transition, succ.Configuration)))
			}
			return starlark.NewList(elems), nil
		}),

		"choose": starlark.NewBuiltin("choose", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			var i int
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &i); err != nil {
				return nil, err
			}
			succs, err := s.NextConfigurations()
			if err != nil {
				return nil, err
			}
			if i < 0 || i >= len(succs) {
				return nil, fmt.Errorf("no successor %d", i)
			}
			successor, err := s.Select(ctx, succs[i].Configuration)
			if err != nil {
				return nil, err
			}
			return starlark.Bool(successor), nil
		}),

		"reset": starlark.NewBuiltin("reset", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			s.Reset()
			return starlark.None, nil
		}),

		"show": starlark.NewBuiltin("show", func(_ *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			return starlark.String(s.Current().String()), nil
		}),
	}

	if g := s.Graph(); g != nil {
		globals["nodes"] = g.Size()
		globals["edges"] = g.EdgeCount()
		globals["frontier"] = g.Frontier()
	}
	if last, ok := s.Last(); ok {
		globals["last"] = last
	}
	return globals
}
