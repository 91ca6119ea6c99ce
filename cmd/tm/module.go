package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tmsim/debugs"
	"github.com/reusee/tmsim/graphs"
	"github.com/reusee/tmsim/machines"
	"github.com/reusee/tmsim/renders"
	"github.com/reusee/tmsim/runs"
	"github.com/reusee/tmsim/watches"
)

type Module struct {
	dscope.Module
	Machines machines.Module
	Graphs   graphs.Module
	Runs     runs.Module
	Renders  renders.Module
	Watches  watches.Module
	Debugs   debugs.Module
}
