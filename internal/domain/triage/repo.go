package triage

import "context"

// SessionRepository stores sessions for the lifetime of the process.
// Get returns ErrSessionNotFound for unknown ids. Sessions are never removed.
type SessionRepository interface {
	Create(ctx context.Context, s *Session) error
	Get(ctx context.Context, id string) (*Session, error)
	Count(ctx context.Context) int
}
