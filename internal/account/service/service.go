package service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"contabanco/internal/account/metrics"
	"contabanco/internal/account/models"
	"contabanco/internal/audit"
	"contabanco/pkg/attrs"
	id "contabanco/pkg/domain"
	"contabanco/pkg/requestcontext"
)

//go:generate mockgen -source=service.go -destination=mocks/mock_audit_publisher.go -package=mocks AuditPublisher

type AuditPublisher interface {
	Emit(ctx context.Context, base audit.Event) error
}

// AccountFactory builds an Account from collected field values.
type AccountFactory func(number int, branchCode, holderName string, balance float64) (*models.Account, error)

// Service starts registration attempts and holds what they share: logging,
// auditing, metrics, tracing and the account constructor. It keeps no
// per-attempt state.
type Service struct {
	logger         *slog.Logger
	auditPublisher AuditPublisher
	metrics        *metrics.Metrics
	tracer         trace.Tracer
	newAccount     AccountFactory
}

type Option func(s *Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithAuditPublisher(publisher AuditPublisher) Option {
	return func(s *Service) {
		s.auditPublisher = publisher
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func WithTracer(tracer trace.Tracer) Option {
	return func(s *Service) {
		s.tracer = tracer
	}
}

// WithAccountFactory replaces models.NewAccount at finalize.
func WithAccountFactory(factory AccountFactory) Option {
	return func(s *Service) {
		s.newAccount = factory
	}
}

// New constructs a Service.
func New(opts ...Option) *Service {
	s := &Service{
		tracer:     otel.Tracer("contabanco/account"),
		newAccount: models.NewAccount,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Begin starts a fresh registration attempt prompting for the first field.
func (s *Service) Begin(ctx context.Context) *Registration {
	r := &Registration{
		svc:     s,
		id:      id.NewAttemptID(),
		state:   StatePrompting,
		current: models.FieldAccountNumber,
	}
	s.logAudit(r.scope(ctx), audit.ActionRegistrationStarted)
	return r
}

func (s *Service) logAudit(ctx context.Context, event audit.Action, attributes ...any) {
	attemptID := requestcontext.AttemptID(ctx)
	if !attemptID.IsNil() {
		attributes = append(attributes, "attempt_id", attemptID.String())
	}
	args := append(attributes, "event", string(event), "log_type", "audit")
	if s.logger != nil {
		s.logger.InfoContext(ctx, string(event), args...)
	}
	if s.auditPublisher == nil {
		return
	}
	err := s.auditPublisher.Emit(ctx, audit.Event{
		Timestamp:     requestcontext.Now(ctx),
		AttemptID:     attemptID,
		Action:        event,
		Field:         attrs.ExtractString(attributes, "field"),
		Reason:        attrs.ExtractString(attributes, "reason"),
		AccountNumber: attrs.ExtractInt(attributes, "account_number"),
	})
	if err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "failed to emit audit event", "event", string(event), "error", err)
	}
}
