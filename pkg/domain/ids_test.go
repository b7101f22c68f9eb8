package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "contabanco/pkg/domain-errors"
)

// TestParseAttemptID_Invariants validates the parsing invariant:
// "attempt ids must be valid, non-empty, non-nil UUIDs"
func TestParseAttemptID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := ParseAttemptID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := ParseAttemptID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := ParseAttemptID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		valid := uuid.New()
		id, err := ParseAttemptID(valid.String())
		require.NoError(t, err)
		assert.Equal(t, AttemptID(valid), id)
	})
}

func TestNewAttemptID(t *testing.T) {
	a := NewAttemptID()
	b := NewAttemptID()

	assert.False(t, a.IsNil())
	assert.NotEqual(t, a, b)

	roundTrip, err := ParseAttemptID(a.String())
	require.NoError(t, err)
	assert.Equal(t, a, roundTrip)
}
