package main

import (
	"context"
	"fmt"

	"github.com/reusee/tmsim/graphs"
	"github.com/reusee/tmsim/logs"
	"github.com/reusee/tmsim/machines"
	"github.com/reusee/tmsim/renders"
	"github.com/reusee/tmsim/tmconfigs"
	"github.com/reusee/tmsim/turing"
)

type GraphCommand func(ctx context.Context) error

func (Module) GraphCommand(
	load machines.LoadMachine,
	buildGraph BuildGraph,
) GraphCommand {
	return func(ctx context.Context) error {
		m, err := load(source())
		if err != nil {
			return err
		}
		return buildGraph(ctx, m)
	}
}

// BuildGraph computes the graph of m and prints it.
type BuildGraph func(ctx context.Context, m *turing.Machine) error

func (Module) BuildGraph(
	compute graphs.ComputeGraph,
	minNodes tmconfigs.MinNodes,
	renderer *renders.Renderer,
	out renders.Output,
	logger logs.Logger,
) BuildGraph {
	return func(ctx context.Context, m *turing.Machine) error {
		ctx = logs.WithMachine(ctx, m.Name)
		g, err := compute(ctx, m, int(minNodes))
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "graph computed",
			"nodes", g.Size(),
			"edges", g.EdgeCount(),
		)
		if *dotOutput {
			return renders.DOT(out, m, g)
		}
		_, err = fmt.Fprint(out, renderer.Configuration(m, g.Start())+renderer.Graph(g))
		return err
	}
}
