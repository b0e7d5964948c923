package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/driver-registry/internal/domain"
	"github.com/spec-kit/driver-registry/internal/events"
	"github.com/spec-kit/driver-registry/internal/repository"
)

// AuditService persists lookup outcomes. Writes are best-effort: an audit
// failure is logged and never surfaces to the caller.
type AuditService struct {
	dispatcher events.Dispatcher
	audits     repository.AuditRepository
	logger     *zap.Logger
}

// NewAuditService creates the service. audits may be nil, in which case
// outcomes are only logged.
func NewAuditService(dispatcher events.Dispatcher, audits repository.AuditRepository, logger *zap.Logger) *AuditService {
	return &AuditService{
		dispatcher: dispatcher,
		audits:     audits,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (a *AuditService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventLookupPerformed, a.handleLookupPerformed)
}

func (a *AuditService) handleLookupPerformed(_ context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.LookupPerformedPayload)
	if !ok {
		return nil
	}

	a.logger.Info("lookup performed",
		zap.String("request_id", payload.RequestID),
		zap.String("outcome", string(payload.Outcome)),
		zap.String("error_code", payload.ErrorCode),
		zap.Int64("duration_ms", payload.DurationMs),
	)

	if a.audits == nil {
		return nil
	}

	// detached context: the originating request may already be gone
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	audit := &domain.LookupAudit{
		RequestID:  payload.RequestID,
		Identifier: payload.Identifier,
		Outcome:    payload.Outcome,
		ErrorCode:  payload.ErrorCode,
		DurationMs: payload.DurationMs,
	}
	if err := a.audits.Create(ctx, audit); err != nil {
		a.logger.Warn("audit write failed", zap.Error(err))
	}
	return nil
}
