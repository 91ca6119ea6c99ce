package configs

import (
	"errors"
	"fmt"
	"testing"
)

var testSchema = `
name?: string
symbols?: [...string]
step_batch?: int
run_delay_ms?: int
`

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader([]string{"test.cue"}, testSchema)

	var name string
	err := loader.AssignFirst("name", &name)
	if err != nil {
		t.Fatal(err)
	}
	if name != "bar" {
		t.Fatalf("got %q", name)
	}

	var symbols []string
	err = loader.AssignFirst("symbols", &symbols)
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%q", symbols); str != `["0" "1" " "]` {
		t.Fatalf("got %s", str)
	}

	err = loader.AssignFirst("not", &symbols)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader([]string{
		"test.cue",
		"test2.cue",
	}, testSchema)

	var batches []int
	for value, err := range loader.IterCueValues("step_batch") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		batches = append(batches, n)
	}
	if str := fmt.Sprintf("%v", batches); str != "[10 20]" {
		t.Fatalf("got %q", str)
	}

	var names []string
	for name := range All[string](loader, "name") {
		names = append(names, name)
	}
	if str := fmt.Sprintf("%v", names); str != "[bar foo]" {
		t.Fatalf("got %q", str)
	}

	// only present in the second file
	var delays []int
	for delay := range All[int](loader, "run_delay_ms") {
		delays = append(delays, delay)
	}
	if str := fmt.Sprintf("%v", delays); str != "[100]" {
		t.Fatalf("got %q", str)
	}

}

func TestUnknownField(t *testing.T) {
	loader := NewLoader([]string{
		"bad.cue",
	}, testSchema)
	var str string
	err := loader.AssignFirst("unknown_field", &str)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader([]string{
		"not-exists.cue",
	}, testSchema)
	var n int
	if err := loader.AssignFirst("step_batch", &n); err == nil {
		t.Fatal("should error")
	}
}

func TestSourcesLoader(t *testing.T) {
	loader := NewSourcesLoader([]Source{
		{
			Path:    "inline",
			Content: []byte(`step_batch: 3`),
		},
		{
			Path: "test.cue",
		},
	}, testSchema)

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", paths); str != "[inline test.cue]" {
		t.Fatalf("got %s", str)
	}

	if n := First[int](loader, "step_batch"); n != 3 {
		t.Fatalf("got %d", n)
	}
	if name := First[string](loader, "name"); name != "bar" {
		t.Fatalf("got %q", name)
	}
}
