package service

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"contabanco/internal/account/metrics"
	"contabanco/internal/account/models"
	"contabanco/internal/account/validation"
	"contabanco/internal/audit"
	id "contabanco/pkg/domain"
	dErrors "contabanco/pkg/domain-errors"
	"contabanco/pkg/platform/sentinel"
	"contabanco/pkg/requestcontext"
)

// State is a registration attempt's position in the prompt workflow.
//
//	Prompting --(last field accepted)--> Finalizing --(construct ok)--> Done
//	                                                \--(construct err)--> Failed
//
// A rejected field keeps the attempt in Prompting on the same field, with no
// retry limit. Done and Failed are terminal.
type State int

const (
	StatePrompting State = iota + 1
	StateFinalizing
	StateDone
	StateFailed
)

func (s State) String() string {
	switch s {
	case StatePrompting:
		return "prompting"
	case StateFinalizing:
		return "finalizing"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is the outcome of one Submit call.
type Result struct {
	Field    models.Field
	Accepted bool
	// Reason is the human readable rejection reason, empty when accepted.
	Reason string
	// Next is the field to prompt for now. It equals Field after a rejection
	// and is zero once every field has been accepted.
	Next models.Field
}

type draft struct {
	number     int
	branchCode string
	holderName string
	balance    float64
}

// Registration is one attempt at registering an account. Values are held
// in a draft until Finalize; no Account exists before that. A Registration
// is driven by a single caller and is not safe for concurrent use.
type Registration struct {
	svc     *Service
	id      id.AttemptID
	state   State
	current models.Field
	values  draft
	// committed is the snapshot built by the first successful Finalize.
	committed models.Snapshot
}

func (r *Registration) ID() id.AttemptID { return r.id }

func (r *Registration) State() State { return r.state }

// Current returns the field awaiting input, or zero outside Prompting.
func (r *Registration) Current() models.Field {
	if r.state != StatePrompting {
		return 0
	}
	return r.current
}

// Submit validates raw for field. raw must be an int for the account number,
// a string for branch code and holder name, and a float64 for the balance.
//
// A rule violation is not an error: it comes back as a rejected Result and
// the attempt stays on the same field.
//
// Errors:
//   - CodeInvalidState when the attempt is not prompting or field is not the
//     current one
//   - CodeBadRequest when raw has the wrong type for field
//
// Neither error changes state.
func (r *Registration) Submit(ctx context.Context, field models.Field, raw any) (Result, error) {
	ctx = r.scope(ctx)
	if r.state != StatePrompting {
		return Result{}, invalidState(fmt.Sprintf("registration is %s and no longer accepts fields", r.state))
	}
	if field != r.current {
		return Result{}, invalidState(fmt.Sprintf("expected %s, got %s", r.current, field))
	}

	if err := r.check(field, raw); err != nil {
		if !dErrors.HasCode(err, dErrors.CodeValidation) {
			return Result{}, err
		}
		reason := dErrors.Message(err)
		r.svc.metrics.IncrementFieldRejection(field.String())
		r.svc.logAudit(ctx, audit.ActionFieldRejected, "field", field.String(), "reason", reason)
		return Result{Field: field, Reason: reason, Next: field}, nil
	}

	next, ok := field.Next()
	if !ok {
		r.state = StateFinalizing
		return Result{Field: field, Accepted: true}, nil
	}
	r.current = next
	return Result{Field: field, Accepted: true, Next: next}, nil
}

func (r *Registration) SubmitAccountNumber(ctx context.Context, number int) (Result, error) {
	return r.Submit(ctx, models.FieldAccountNumber, number)
}

func (r *Registration) SubmitBranchCode(ctx context.Context, branchCode string) (Result, error) {
	return r.Submit(ctx, models.FieldBranchCode, branchCode)
}

func (r *Registration) SubmitHolderName(ctx context.Context, holderName string) (Result, error) {
	return r.Submit(ctx, models.FieldHolderName, holderName)
}

func (r *Registration) SubmitBalance(ctx context.Context, balance float64) (Result, error) {
	return r.Submit(ctx, models.FieldBalance, balance)
}

// check runs the field's rule and records the value when it passes. Rule
// violations carry CodeValidation; anything else is a caller mistake.
func (r *Registration) check(field models.Field, raw any) error {
	switch field {
	case models.FieldAccountNumber:
		v, ok := raw.(int)
		if !ok {
			return wrongType(field, raw)
		}
		if err := validation.AccountNumber(v); err != nil {
			return err
		}
		r.values.number = v
	case models.FieldBranchCode:
		v, ok := raw.(string)
		if !ok {
			return wrongType(field, raw)
		}
		if err := validation.BranchCode(v); err != nil {
			return err
		}
		r.values.branchCode = v
	case models.FieldHolderName:
		v, ok := raw.(string)
		if !ok {
			return wrongType(field, raw)
		}
		if err := validation.HolderName(v); err != nil {
			return err
		}
		r.values.holderName = v
	case models.FieldBalance:
		v, ok := raw.(float64)
		if !ok {
			return wrongType(field, raw)
		}
		if err := validation.Balance(v); err != nil {
			return err
		}
		r.values.balance = v
	default:
		return invalidState(fmt.Sprintf("unknown field %d", int(field)))
	}
	return nil
}

// Finalize builds the Account from the accepted values and returns its
// snapshot. Calling it again after Done returns the same snapshot without
// building the Account again.
//
// Errors:
//   - CodeInvalidState before every field is accepted or after a failure
//   - CodeInternal when construction rejects values that passed the field
//     checks; the attempt moves to Failed and cannot be retried
func (r *Registration) Finalize(ctx context.Context) (models.Snapshot, error) {
	ctx = r.scope(ctx)
	switch r.state {
	case StateFinalizing:
	case StateDone:
		return r.committed, nil
	case StateFailed:
		return models.Snapshot{}, invalidState("registration was abandoned after a failed finalize")
	default:
		return models.Snapshot{}, invalidState(fmt.Sprintf("cannot finalize while %s %s", r.state, r.current))
	}

	ctx, span := r.svc.tracer.Start(ctx, "account.finalize",
		trace.WithAttributes(attribute.String("attempt_id", r.id.String())))
	defer span.End()

	start := time.Now()
	acct, err := r.svc.newAccount(r.values.number, r.values.branchCode, r.values.holderName, r.values.balance)
	r.svc.metrics.ObserveFinalizeLatency(time.Since(start))
	if err != nil {
		r.state = StateFailed
		span.RecordError(err)
		span.SetStatus(codes.Error, "construction rejected validated input")
		r.svc.metrics.IncrementOutcome(metrics.OutcomeFailed)
		r.svc.logAudit(ctx, audit.ActionRegistrationFailed, "reason", err.Error())
		return models.Snapshot{}, dErrors.Wrap(err, dErrors.CodeInternal, "account construction rejected validated input")
	}

	r.state = StateDone
	r.committed = acct.Snapshot()
	r.svc.metrics.IncrementOutcome(metrics.OutcomeRegistered)
	r.svc.logAudit(ctx, audit.ActionAccountRegistered, "account_number", acct.Number())
	return r.committed, nil
}

// IsConstructionInconsistency reports whether err came from a finalize that
// rejected values the field checks had accepted, as opposed to bad input.
func IsConstructionInconsistency(err error) bool {
	return dErrors.HasCode(err, dErrors.CodeInternal)
}

func (r *Registration) scope(ctx context.Context) context.Context {
	return requestcontext.WithAttemptID(ctx, r.id)
}

func invalidState(msg string) error {
	return dErrors.Wrap(sentinel.ErrInvalidState, dErrors.CodeInvalidState, msg)
}

func wrongType(field models.Field, raw any) error {
	return dErrors.New(dErrors.CodeBadRequest, fmt.Sprintf("%s does not accept a %T value", field, raw))
}
