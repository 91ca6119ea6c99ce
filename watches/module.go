package watches

import (
	"context"

	"github.com/reusee/dscope"
	"github.com/reusee/tmsim/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}

type WatchFile func(ctx context.Context, path string, handler Handler) error

func (Module) WatchFile(
	logger logs.Logger,
) WatchFile {
	return func(ctx context.Context, path string, handler Handler) error {
		return Watch(ctx, path, DefaultDebounce, logger, handler)
	}
}
