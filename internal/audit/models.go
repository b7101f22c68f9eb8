package audit

import (
	"time"

	id "contabanco/pkg/domain"
)

// Action names a registration step worth recording.
type Action string

const (
	ActionRegistrationStarted Action = "registration_started"
	ActionFieldRejected       Action = "field_rejected"
	ActionAccountRegistered   Action = "account_registered"
	ActionRegistrationFailed  Action = "registration_failed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time
	AttemptID id.AttemptID
	Action    Action
	// Field is the prompt the event refers to, empty for attempt-level events.
	Field  string
	Reason string
	// AccountNumber is set once an account has been registered.
	AccountNumber int
}
