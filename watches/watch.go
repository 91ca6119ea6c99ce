package watches

import (
	"context"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/reusee/tmsim/logs"
)

const DefaultDebounce = 200 * time.Millisecond

// Handler is called once per burst of changes to the watched file.
type Handler func(ctx context.Context)

// Watch calls handler after path is written, created or renamed into place,
// once the file has been quiet for debounce. The parent directory is watched
// so that editors replacing the file are seen. Watch returns when ctx is done.
func Watch(ctx context.Context, path string, debounce time.Duration, logger logs.Logger, handler Handler) error {
	path, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		return err
	}
	logger.InfoContext(ctx, "watching", "path", path)

	var timer *time.Timer
	var timerC <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {

		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != path {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			logger.DebugContext(ctx, "file event", "path", path, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(debounce)
			} else {
				timer.Reset(debounce)
			}
			timerC = timer.C

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.WarnContext(ctx, "watch error", "path", path, "error", err)

		case <-timerC:
			timerC = nil
			handler(ctx)

		}
	}
}
