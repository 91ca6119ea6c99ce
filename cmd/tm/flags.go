package main

import (
	"github.com/reusee/tmsim/cmds"
	"github.com/reusee/tmsim/machines"
)

type action int

const (
	actionNone action = iota
	actionCheck
	actionState
	actionGraph
	actionRun
	actionWatch
	actionExamples
)

var (
	machineSource machines.Source

	dotOutput    = cmds.Switch("-dot", "print the graph in graphviz format")
	tapOnEnd     = cmds.Switch("-tap", "open a starlark repl when a run ends")
	printMetrics = cmds.Switch("-metrics", "print collected metrics on exit")

	selected action
)

func init() {
	cmds.Define("file", cmds.Func(func(path string) {
		machineSource.Path = path
	}).Args("path").Desc("load the machine from a yaml file"))
	cmds.Define("example", cmds.Func(func(name string) {
		machineSource.Example = name
	}).Args("name").Desc("load a bundled example machine"))

	set := func(a action) func() {
		return func() {
			selected = a
		}
	}
	cmds.Define("check", cmds.Func(set(actionCheck)).Desc("report whether the machine is deterministic"))
	cmds.Define("state", cmds.Func(set(actionState)).Desc("dump the machine and its start configuration"))
	cmds.Define("graph", cmds.Func(set(actionGraph)).Desc("build the configuration graph and print a summary"))
	cmds.Define("run", cmds.Func(set(actionRun)).Desc("run the machine until it halts or needs a choice"))
	cmds.Define("watch", cmds.Func(set(actionWatch)).Desc("rebuild the graph whenever the machine file changes"))
	cmds.Define("examples", cmds.Func(set(actionExamples)).Desc("list bundled example machines"))
}
