package audit

import (
	"context"
	"log/slog"
)

// LogTrail writes every stored event to logger at debug level, in append
// order. It is meant for the end of a session.
func LogTrail(ctx context.Context, store Store, logger *slog.Logger) error {
	events, err := store.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, e := range events {
		attrs := []any{
			"attempt_id", e.AttemptID.String(),
			"event", string(e.Action),
			"timestamp", e.Timestamp,
		}
		if e.Field != "" {
			attrs = append(attrs, "field", e.Field)
		}
		if e.Reason != "" {
			attrs = append(attrs, "reason", e.Reason)
		}
		if e.AccountNumber != 0 {
			attrs = append(attrs, "account_number", e.AccountNumber)
		}
		logger.DebugContext(ctx, "audit_trail", attrs...)
	}
	return nil
}
