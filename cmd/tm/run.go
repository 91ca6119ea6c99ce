package main

import (
	"context"
	"fmt"

	"github.com/reusee/tmsim/debugs"
	"github.com/reusee/tmsim/logs"
	"github.com/reusee/tmsim/machines"
	"github.com/reusee/tmsim/renders"
	"github.com/reusee/tmsim/runs"
	"github.com/reusee/tmsim/tmconfigs"
	"github.com/reusee/tmsim/turing"
)

type RunCommand func(ctx context.Context) error

func (Module) RunCommand(
	load machines.LoadMachine,
	newSession runs.NewSessionFunc,
	minNodes tmconfigs.MinNodes,
	renderer *renders.Renderer,
	out renders.Output,
	tap debugs.Tap,
	logger logs.Logger,
) RunCommand {
	return func(ctx context.Context) error {
		m, err := load(source())
		if err != nil {
			return err
		}
		ctx = logs.WithMachine(ctx, m.Name)

		session := newSession(m)
		if err := session.ComputeGraph(ctx, int(minNodes)); err != nil {
			return err
		}
		fmt.Fprint(out, renderer.Configuration(m, session.Current()))

		outcome, err := session.Run(ctx, func(outcome runs.Outcome, current turing.Configuration) {
			if outcome != runs.Advanced {
				return
			}
			fmt.Fprint(out, renderer.Configuration(m, current))
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(out, "%s after %d configurations\n", outcome, session.Graph().Size())
		if outcome == runs.Ambiguous {
			succs, err := session.NextConfigurations()
			if err != nil {
				return err
			}
			for _, succ := range succs {
				fmt.Fprintf(out, "choice %d:\n", succ.Transition)
				fmt.Fprint(out, renderer.Configuration(m, succ.Configuration))
			}
		}

		if *tapOnEnd {
			tap(ctx, outcome.String(), debugs.SessionGlobals(ctx, session))
		}

		logger.InfoContext(ctx, "run finished", "outcome", outcome)
		return nil
	}
}
