package tmconfigs

import (
	"time"

	"github.com/reusee/tmsim/cmds"
)

var (
	configFileFlags = cmds.Collect[string]("-config", "load settings from a cue file")
	stepBatchFlag   = cmds.Var[int]("-step-batch", "nodes to compute when stepping into an unexpanded configuration")
	runDelayFlag    = cmds.Var[*time.Duration]("-run-delay", "pause between two steps of a run, 0s for none")
	minNodesFlag    = cmds.Var[int]("-min-nodes", "initial configuration graph size")
	maxStepsFlag    = cmds.Var[int]("-max-steps", "stop a run after this many steps")
)
