package tmconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tmsim/configs"
	"github.com/reusee/tmsim/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
