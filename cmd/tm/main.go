package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/reusee/dscope"
	"github.com/reusee/tmsim/cmds"
	"github.com/reusee/tmsim/machines"
	"github.com/reusee/tmsim/modes"
)

func main() {
	cmds.Execute(os.Args[1:])
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	switch selected {
	case actionNone:
		cmds.GlobalExecutor.PrintUsage()
		os.Exit(2)
	case actionExamples:
		scope.Call(listExamples)
	case actionCheck:
		scope.Call(check)
	case actionState:
		scope.Call(dumpState)
	case actionGraph:
		scope.Call(func(cmd GraphCommand) {
			ce(cmd(ctx))
		})
	case actionRun:
		scope.Call(func(cmd RunCommand) {
			ce(cmd(ctx))
		})
	case actionWatch:
		scope.Call(func(cmd WatchCommand) {
			ce(cmd(ctx))
		})
	}

	if *printMetrics {
		ce(writeMetrics(os.Stderr))
	}
}

func source() machines.Source {
	if machineSource.Path == "" && machineSource.Example == "" {
		fmt.Fprintln(os.Stderr, "no machine, use: file <path> or example <name>")
		os.Exit(2)
	}
	return machineSource
}

func ce(err error) {
	if err != nil {
		panic(err)
	}
}
