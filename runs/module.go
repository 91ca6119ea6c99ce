package runs

import (
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/tmsim/logs"
	"github.com/reusee/tmsim/tmconfigs"
	"github.com/reusee/tmsim/turing"
)

type Module struct {
	dscope.Module
	Logs      logs.Module
	TMConfigs tmconfigs.Module
}

type NewSessionFunc func(m *turing.Machine) *Session

func (Module) NewSession(
	logger logs.Logger,
	newSpan logs.NewSpan,
	stepBatch tmconfigs.StepBatch,
	runDelay tmconfigs.RunDelay,
	maxSteps tmconfigs.MaxSteps,
) NewSessionFunc {
	return func(m *turing.Machine) *Session {
		return NewSession(m, logger, newSpan, Options{
			StepBatch: int(stepBatch),
			RunDelay:  time.Duration(runDelay),
			MaxSteps:  int(maxSteps),
		})
	}
}
