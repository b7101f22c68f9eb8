package audit

import (
	"context"
	"time"

	id "contabanco/pkg/domain"
)

// Store is the append-only sink behind a Publisher.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListByAttempt(ctx context.Context, attemptID id.AttemptID) ([]Event, error)
	ListAll(ctx context.Context) ([]Event, error)
}

// Publisher captures structured audit events. It is append-only and uses the
// storage layer so tests can swap sinks easily.
type Publisher struct {
	store Store
	now   func() time.Time
}

func NewPublisher(store Store) *Publisher {
	return &Publisher{store: store, now: time.Now}
}

func (p *Publisher) Emit(ctx context.Context, base Event) error {
	if base.Timestamp.IsZero() {
		base.Timestamp = p.now()
	}
	return p.store.Append(ctx, base)
}

func (p *Publisher) List(ctx context.Context, attemptID id.AttemptID) ([]Event, error) {
	return p.store.ListByAttempt(ctx, attemptID)
}
