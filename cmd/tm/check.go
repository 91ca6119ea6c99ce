package main

import (
	"fmt"

	"github.com/reusee/tmsim/machines"
	"github.com/reusee/tmsim/renders"
	"github.com/reusee/tmsim/turing"
)

func listExamples(
	out renders.Output,
) {
	for _, example := range machines.Examples() {
		fmt.Fprintln(out, example.Name)
	}
}

func check(
	load machines.LoadMachine,
	renderer *renders.Renderer,
	out renders.Output,
) {
	m, err := load(source())
	ce(err)
	fmt.Fprint(out, renderer.Determinism(turing.IsDeterministic(m.Table)))
}

func dumpState(
	load machines.LoadMachine,
	out renders.Output,
) {
	m, err := load(source())
	ce(err)
	fmt.Fprint(out, renders.State(m, m.StartConfiguration()))
}
