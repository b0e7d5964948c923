package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/driver-registry/internal/domain"
)

// AuditRepository defines persistence access for the lookup audit trail.
type AuditRepository interface {
	Create(ctx context.Context, audit *domain.LookupAudit) error
}

type auditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository returns a Postgres-backed implementation.
func NewAuditRepository(pool *pgxpool.Pool) AuditRepository {
	return &auditRepository{pool: pool}
}

func (r *auditRepository) Create(ctx context.Context, audit *domain.LookupAudit) error {
	const query = `
        INSERT INTO lookup_audits (request_id, identifier, outcome, error_code, duration_ms)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, created_at`

	return r.pool.QueryRow(ctx, query,
		audit.RequestID,
		audit.Identifier,
		audit.Outcome,
		audit.ErrorCode,
		audit.DurationMs,
	).Scan(&audit.ID, &audit.CreatedAt)
}
