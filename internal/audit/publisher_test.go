package audit

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "contabanco/pkg/domain"
)

func TestPublisher(t *testing.T) {
	ctx := context.Background()

	t.Run("stamps events without a timestamp", func(t *testing.T) {
		store := NewInMemoryStore()
		pub := NewPublisher(store)
		fixed := time.Date(2025, 6, 27, 10, 0, 0, 0, time.UTC)
		pub.now = func() time.Time { return fixed }
		attempt := id.NewAttemptID()

		require.NoError(t, pub.Emit(ctx, Event{AttemptID: attempt, Action: ActionRegistrationStarted}))

		events, err := pub.List(ctx, attempt)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, fixed, events[0].Timestamp)
	})

	t.Run("keeps caller timestamps", func(t *testing.T) {
		pub := NewPublisher(NewInMemoryStore())
		ts := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
		attempt := id.NewAttemptID()

		require.NoError(t, pub.Emit(ctx, Event{AttemptID: attempt, Action: ActionAccountRegistered, Timestamp: ts}))

		events, err := pub.List(ctx, attempt)
		require.NoError(t, err)
		require.Len(t, events, 1)
		assert.Equal(t, ts, events[0].Timestamp)
	})

	t.Run("lists events per attempt in append order", func(t *testing.T) {
		store := NewInMemoryStore()
		pub := NewPublisher(store)
		first, second := id.NewAttemptID(), id.NewAttemptID()

		require.NoError(t, pub.Emit(ctx, Event{AttemptID: first, Action: ActionRegistrationStarted}))
		require.NoError(t, pub.Emit(ctx, Event{AttemptID: second, Action: ActionRegistrationStarted}))
		require.NoError(t, pub.Emit(ctx, Event{AttemptID: first, Action: ActionFieldRejected, Field: "balance"}))

		events, err := pub.List(ctx, first)
		require.NoError(t, err)
		require.Len(t, events, 2)
		assert.Equal(t, ActionRegistrationStarted, events[0].Action)
		assert.Equal(t, ActionFieldRejected, events[1].Action)

		all, err := store.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)
	})
}
