package logs

import "context"

type machineKey struct{}

// WithMachine tags records logged with the returned context by the machine name.
func WithMachine(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, machineKey{}, name)
}
