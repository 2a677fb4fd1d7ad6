package postgres

import (
	"context"
	"encoding/json"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/usecase"
)

// AuditRepository implements usecase.AuditRepository. The audit log is
// append-only.
type AuditRepository struct {
	pool *pgxpool.Pool
}

// NewAuditRepository creates a new AuditRepository.
func NewAuditRepository(pool *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{pool: pool}
}

// Create appends an audit entry.
func (r *AuditRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.AuditEntry) error {
	payload, err := json.Marshal(entry.Payload)
	if err != nil {
		return err
	}

	_, err = pgxTxOf(tx).Exec(ctx, `
		INSERT INTO audit_log (id, company_id, entity_type, entity_id, action, payload, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		entry.ID,
		entry.CompanyID,
		entry.EntityType,
		entry.EntityID,
		entry.Action,
		payload,
		timeToPg(entry.CreatedAt),
		entry.CreatedBy,
	)

	return err
}

// ListByCompany retrieves a company's audit entries, newest first.
func (r *AuditRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*domain.AuditEntry, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_id, entity_type, entity_id, action, payload, created_at, created_by
		FROM audit_log
		WHERE company_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3`,
		companyID, limit, offset,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.AuditEntry
	for rows.Next() {
		var (
			entry     domain.AuditEntry
			payload   []byte
			createdAt pgtype.Timestamptz
		)
		if err := rows.Scan(&entry.ID, &entry.CompanyID, &entry.EntityType, &entry.EntityID, &entry.Action, &payload, &createdAt, &entry.CreatedBy); err != nil {
			return nil, err
		}
		if len(payload) > 0 {
			if err := json.Unmarshal(payload, &entry.Payload); err != nil {
				return nil, err
			}
		}
		entry.CreatedAt = createdAt.Time
		entries = append(entries, &entry)
	}

	return entries, rows.Err()
}
