package runs

import (
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/tmsim/modes"
	"github.com/reusee/tmsim/tmconfigs"
)

func TestModule(t *testing.T) {
	dscope.New(
		new(Module),
		modes.ForTest(t),
	).Fork(
		func() tmconfigs.ConfigFiles {
			return nil
		},
	).Call(func(
		newSession NewSessionFunc,
	) {
		s := newSession(example(t, "CheckEven"))
		if s.stepBatch != tmconfigs.DefaultStepBatch {
			t.Fatalf("got %v", s.stepBatch)
		}
		if s.runDelay != tmconfigs.DefaultRunDelay {
			t.Fatalf("got %v", s.runDelay)
		}
		if err := s.ComputeGraph(t.Context(), 100); err != nil {
			t.Fatal(err)
		}
		for {
			outcome, err := s.Step(t.Context())
			if err != nil {
				t.Fatal(err)
			}
			if outcome == Halted {
				break
			}
			if outcome != Advanced {
				t.Fatalf("got %v", outcome)
			}
		}
		// the input holds an odd number of ones
		if s.Current().State != "reject" {
			t.Fatalf("got %v", s.Current().State)
		}
	})
}
