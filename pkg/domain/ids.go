package domain

import (
	"github.com/google/uuid"

	dErrors "contabanco/pkg/domain-errors"
)

// AttemptID identifies one registration attempt. It correlates log lines,
// audit events and spans belonging to the same run through the prompts.
//
// Usage: mint with NewAttemptID; parse external text with ParseAttemptID.
type AttemptID uuid.UUID

// NewAttemptID returns a fresh random attempt id.
func NewAttemptID() AttemptID {
	return AttemptID(uuid.New())
}

// ParseAttemptID validates s as a non-nil UUID.
//
// Errors: returns CodeInvalidInput when s is empty, malformed or the nil UUID.
func ParseAttemptID(s string) (AttemptID, error) {
	if s == "" {
		return AttemptID{}, dErrors.New(dErrors.CodeInvalidInput, "attempt id cannot be empty")
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return AttemptID{}, dErrors.Wrap(err, dErrors.CodeInvalidInput, "invalid attempt id")
	}
	if parsed == uuid.Nil {
		return AttemptID{}, dErrors.New(dErrors.CodeInvalidInput, "attempt id cannot be nil")
	}
	return AttemptID(parsed), nil
}

func (id AttemptID) String() string {
	return uuid.UUID(id).String()
}

// IsNil returns true for the zero value.
func (id AttemptID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}
