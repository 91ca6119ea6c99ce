package graphs

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/tmsim/logs"
	"github.com/reusee/tmsim/turing"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type ComputeGraph func(ctx context.Context, m *turing.Machine, minNodes int) (*Graph, error)

func (Module) ComputeGraph(
	logger logs.Logger,
) ComputeGraph {
	return func(ctx context.Context, m *turing.Machine, minNodes int) (*Graph, error) {
		return Compute(ctx, m, m.StartConfiguration(), minNodes, logger)
	}
}
