// Package session carries the authenticated user through a request as an
// explicit value rather than ambient global state.
package session

import "context"

type Session struct {
	UserID string
	Email  string
	Name   string
	Role   string
}

type ctxKey struct{}

// WithSession returns a context carrying s.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached to ctx, if any.
func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(ctxKey{}).(Session)
	return s, ok
}
