package tmconfigs

import (
	"errors"
	"time"

	"github.com/reusee/tmsim/configs"
	"github.com/reusee/tmsim/vars"
)

// StepBatch is the number of nodes requested when a step lands on an unexpanded configuration.
type StepBatch int

// RunDelay is the pause between two steps of a run loop.
type RunDelay time.Duration

// MinNodes is the size the configuration graph is first built to.
type MinNodes int

// MaxSteps bounds a command line run. Zero means unbounded.
type MaxSteps int

const (
	DefaultStepBatch = 10
	DefaultRunDelay  = 700 * time.Millisecond
	DefaultMinNodes  = 50
)

func (Module) StepBatch(
	loader configs.Loader,
) StepBatch {
	return StepBatch(vars.FirstNonZero(
		*stepBatchFlag,
		configs.First[int](loader, "step_batch"),
		DefaultStepBatch,
	))
}

// RunDelay distinguishes an explicit zero, which means no pause, from an unset value.
func (Module) RunDelay(
	loader configs.Loader,
) RunDelay {
	if *runDelayFlag != nil {
		return RunDelay(**runDelayFlag)
	}
	var ms int
	err := loader.AssignFirst("run_delay_ms", &ms)
	if err == nil {
		return RunDelay(time.Duration(ms) * time.Millisecond)
	}
	if !errors.Is(err, configs.ErrValueNotFound) {
		panic(err)
	}
	return RunDelay(DefaultRunDelay)
}

func (Module) MinNodes(
	loader configs.Loader,
) MinNodes {
	return MinNodes(vars.FirstNonZero(
		*minNodesFlag,
		configs.First[int](loader, "min_nodes"),
		DefaultMinNodes,
	))
}

func (Module) MaxSteps(
	loader configs.Loader,
) MaxSteps {
	return MaxSteps(vars.FirstNonZero(
		*maxStepsFlag,
		configs.First[int](loader, "max_steps"),
	))
}
