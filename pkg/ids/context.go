package ids

import "context"

type allocatorKey struct{}

// WithAllocator returns a copy of ctx carrying a.
func WithAllocator(ctx context.Context, a *Allocator) context.Context {
	return context.WithValue(ctx, allocatorKey{}, a)
}

// FromContext returns the allocator stored in ctx, if any.
func FromContext(ctx context.Context) (*Allocator, bool) {
	if ctx == nil {
		return nil, false
	}
	a, ok := ctx.Value(allocatorKey{}).(*Allocator)
	return a, ok && a != nil
}
