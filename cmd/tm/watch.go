package main

import (
	"context"
	"errors"

	"github.com/reusee/tmsim/logs"
	"github.com/reusee/tmsim/machines"
	"github.com/reusee/tmsim/watches"
	"golang.org/x/sync/errgroup"
)

var ErrWatchExample = errors.New("only machine files can be watched")

type WatchCommand func(ctx context.Context) error

func (Module) WatchCommand(
	load machines.LoadMachine,
	buildGraph BuildGraph,
	watch watches.WatchFile,
	logger logs.Logger,
) WatchCommand {
	return func(ctx context.Context) error {
		src := source()
		if src.Path == "" {
			return ErrWatchExample
		}

		// rebuilds are coalesced, at most one is pending
		reload := make(chan struct{}, 1)
		reload <- struct{}{}

		group, ctx := errgroup.WithContext(ctx)

		group.Go(func() error {
			return watch(ctx, src.Path, func(ctx context.Context) {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		})

		group.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return ctx.Err()
				case <-reload:
				}
				m, err := load(src)
				if err != nil {
					// keep watching, the file may be fixed
					continue
				}
				if err := buildGraph(ctx, m); err != nil {
					if ctx.Err() != nil {
						return ctx.Err()
					}
					logger.ErrorContext(ctx, "build graph", "error", err)
				}
			}
		})

		err := group.Wait()
		if errors.Is(err, context.Canceled) {
			return nil
		}
		return err
	}
}
