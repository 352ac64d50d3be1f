package project

import "context"

type contextKey struct{}

// WithContext returns a copy of ctx carrying p.
func WithContext(ctx context.Context, p *Project) context.Context {
	return context.WithValue(ctx, contextKey{}, p)
}

// FromContext returns the project stored in ctx.
func FromContext(ctx context.Context) (*Project, bool) {
	p, ok := ctx.Value(contextKey{}).(*Project)
	return p, ok && p != nil
}
