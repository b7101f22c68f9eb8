// Package requestcontext provides context accessors for values scoped to one
// registration attempt.
//
// Usage in services (read values):
//
//	attemptID := requestcontext.AttemptID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	id "contabanco/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	attemptIDKey struct{}
	timeKey      struct{}
)

// Exported context keys for direct use in tests that need context.WithValue.
var (
	ContextKeyAttemptID = attemptIDKey{}
	ContextKeyTime      = timeKey{}
)

// AttemptID retrieves the registration attempt id from the context.
// Returns the zero value (nil UUID) if not set.
func AttemptID(ctx context.Context) id.AttemptID {
	if attemptID, ok := ctx.Value(ContextKeyAttemptID).(id.AttemptID); ok {
		return attemptID
	}
	return id.AttemptID{}
}

// WithAttemptID injects an attempt id into the context.
func WithAttemptID(ctx context.Context, attemptID id.AttemptID) context.Context {
	return context.WithValue(ctx, ContextKeyAttemptID, attemptID)
}

// Now returns the time injected with WithTime, or time.Now().
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context.
// Useful for service unit tests that need stable timestamps.
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyTime, t)
}
