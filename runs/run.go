package runs

import (
	"context"
	"time"

	"github.com/reusee/tmsim/logs"
	"github.com/reusee/tmsim/turing"
)

// Observer is called after every step of a run loop with the resulting outcome and configuration.
type Observer func(outcome Outcome, current turing.Configuration)

// Run steps until the machine halts, a step is ambiguous, the step limit is reached,
// ctx is done or StopRun is called.
// Steps are separated by the run delay. No step starts after StopRun returns,
// a step already in progress finishes.
func (s *Session) Run(ctx context.Context, observe Observer) (Outcome, error) {
	id := s.runID.Add(1)
	s.live.Store(true)
	return s.run(ctx, id, observe)
}

func (s *Session) run(ctx context.Context, id uint64, observe Observer) (Outcome, error) {
	defer func() {
		if s.runID.Load() == id {
			s.live.Store(false)
		}
	}()

	ctx = logs.WithMachine(ctx, s.machine.Name)
	if s.newSpan != nil {
		ctx, _ = s.newSpan(ctx, "")
	}
	s.logger.InfoContext(ctx, "run start",
		"run", id,
		"state", s.Current().State,
	)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	steps := 0
	for {
		outcome, current, err := s.stepIfCurrent(ctx, id)
		if err != nil {
			return 0, logs.WrapSpan(ctx, err)
		}
		if outcome == Stopped {
			s.logger.InfoContext(ctx, "run stopped", "run", id, "steps", steps)
			return Stopped, nil
		}
		if outcome == Advanced {
			steps++
		}
		if observe != nil {
			observe(outcome, current)
		}
		if outcome != Advanced {
			s.logger.InfoContext(ctx, "run end",
				"run", id,
				"steps", steps,
				"outcome", outcome,
			)
			return outcome, nil
		}
		if s.maxSteps > 0 && steps >= s.maxSteps {
			s.logger.WarnContext(ctx, "step limit reached",
				"run", id,
				"steps", steps,
			)
			return Stopped, nil
		}

		if timer == nil {
			timer = time.NewTimer(s.runDelay)
		} else {
			timer.Reset(s.runDelay)
		}
		select {
		case <-ctx.Done():
			s.logger.InfoContext(ctx, "run cancelled", "run", id, "steps", steps)
			return Stopped, ctx.Err()
		case <-timer.C:
		}
	}
}

func (s *Session) stepIfCurrent(ctx context.Context, id uint64) (Outcome, turing.Configuration, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runID.Load() != id {
		return Stopped, s.current, nil
	}
	outcome, err := s.step(ctx)
	return outcome, s.current, err
}

// RunResult is delivered when a run loop started by StartRun ends.
type RunResult struct {
	Outcome Outcome
	Err     error
}

// StartRun runs the loop in a new goroutine. The returned channel receives one result.
func (s *Session) StartRun(ctx context.Context, observe Observer) <-chan RunResult {
	ret := make(chan RunResult, 1)
	id := s.runID.Add(1)
	s.live.Store(true)
	go func() {
		outcome, err := s.run(ctx, id, observe)
		ret <- RunResult{
			Outcome: outcome,
			Err:     err,
		}
	}()
	return ret
}

// StopRun invalidates every active run loop.
func (s *Session) StopRun() {
	s.runID.Add(1)
	s.live.Store(false)
}
