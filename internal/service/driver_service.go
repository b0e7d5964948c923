package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/driver-registry/internal/cache"
	"github.com/spec-kit/driver-registry/internal/domain"
	"github.com/spec-kit/driver-registry/internal/events"
	"github.com/spec-kit/driver-registry/internal/normalize"
	"github.com/spec-kit/driver-registry/internal/sheet"
	apperrors "github.com/spec-kit/driver-registry/pkg/util"
)

// LookupRequest carries the parameters of one lookup.
type LookupRequest struct {
	RequestID    string
	Identifier   string
	SheetName    string
	HeaderRow    int
	ForceRefresh bool
}

// DriverService answers identifier lookups against the cached roster
// document and emits an event per terminal outcome.
type DriverService struct {
	documents  *cache.DocumentCache
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewDriverService creates the service. dispatcher may be nil.
func NewDriverService(documents *cache.DocumentCache, dispatcher events.Dispatcher, logger *zap.Logger) *DriverService {
	return &DriverService{
		documents:  documents,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Lookup resolves the current document, locates the logical columns and
// projects the row matching the normalized identifier.
func (s *DriverService) Lookup(ctx context.Context, req LookupRequest) (*domain.DriverRecord, error) {
	started := time.Now()
	identifier := normalize.Identifier(req.Identifier)

	doc, err := s.documents.Document(req.SheetName, req.HeaderRow, req.ForceRefresh)
	if err != nil {
		s.publishOutcome(ctx, req, identifier, domain.LookupOutcomeError, err, started)
		return nil, err
	}

	cols, err := sheet.ResolveColumns(doc.Headers())
	if err != nil {
		s.publishOutcome(ctx, req, identifier, domain.LookupOutcomeError, err, started)
		return nil, err
	}

	record, ok := sheet.Find(doc, cols, identifier)
	if !ok {
		err := apperrors.NewNotFound("driver", map[string]any{"identifier": identifier})
		s.publishOutcome(ctx, req, identifier, domain.LookupOutcomeNotFound, nil, started)
		return nil, err
	}

	s.publishOutcome(ctx, req, identifier, domain.LookupOutcomeFound, nil, started)
	return record, nil
}

func (s *DriverService) publishOutcome(ctx context.Context, req LookupRequest, identifier string, outcome domain.LookupOutcome, cause error, started time.Time) {
	if s.dispatcher == nil {
		return
	}

	errorCode := ""
	if cause != nil {
		errorCode = apperrors.ToDomainError(cause).Code
	}

	event := events.Event{
		ID:        uuid.NewString(),
		Type:      events.EventLookupPerformed,
		Timestamp: time.Now(),
		Payload: events.LookupPerformedPayload{
			RequestID:  req.RequestID,
			Identifier: identifier,
			Outcome:    outcome,
			ErrorCode:  errorCode,
			DurationMs: time.Since(started).Milliseconds(),
			SheetName:  req.SheetName,
			HeaderRow:  req.HeaderRow,
			Forced:     req.ForceRefresh,
		},
	}
	if err := s.dispatcher.Publish(ctx, event); err != nil {
		s.logger.Warn("lookup event publish failed", zap.Error(err))
	}
}
