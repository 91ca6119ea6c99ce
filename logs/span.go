package logs

import (
	"context"
	"crypto/rand"
	"fmt"
)

// Span identifies one unit of work, such as a run loop, across log records.
type Span string

type spanKey struct{}

var SpanKey = spanKey{}

type NewSpan func(ctx context.Context, parent Span) (context.Context, Span)

// NewSpan derives a context carrying a fresh span.
// The parent defaults to the span already in ctx, which is logged as creator when they differ.
func (Module) NewSpan(
	logger Logger,
) NewSpan {
	return func(ctx context.Context, parent Span) (context.Context, Span) {

		// creator
		var creatorSpan Span
		if v := ctx.Value(SpanKey); v != nil {
			creatorSpan = v.(Span)
		}
		if parent == "" {
			parent = creatorSpan
		}

		span := Span(rand.Text())
		ctx = context.WithValue(ctx, SpanKey, span)

		var args []any
		if creatorSpan != "" && creatorSpan != parent {
			args = append(args, "creator", creatorSpan)
		}
		if parent != "" {
			args = append(args, "parent", parent)
		}
		logger.InfoContext(ctx, "new span", args...)

		return ctx, span
	}
}

// WrapSpan annotates err with the span of ctx, if any.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return fmt.Errorf("%w (span %s)", err, v.(Span))
}
