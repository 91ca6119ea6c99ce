package configs

import (
	"testing"
)

func TestFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue", "test2.cue"}, testSchema)

	name := First[string](loader, "name")
	if name != "bar" {
		t.Fatalf("got %v", name)
	}

	delay := First[int](loader, "run_delay_ms")
	if delay != 100 {
		t.Fatalf("got %v", delay)
	}

	missing := First[int](loader, "nope")
	if missing != 0 {
		t.Fatalf("got %v", missing)
	}

}

func TestFirstList(t *testing.T) {
	loader := NewLoader([]string{"test2.cue", "test.cue"}, testSchema)
	symbols := First[[]string](loader, "symbols")
	if len(symbols) != 3 || symbols[2] != " " {
		t.Fatalf("got %q", symbols)
	}
	if got := First[int](loader, "step_batch"); got != 20 {
		t.Fatalf("got %v", got)
	}
}
