package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/usecase"
)

// PeriodLockRepository implements usecase.PeriodLockRepository.
type PeriodLockRepository struct {
	pool *pgxpool.Pool
}

// NewPeriodLockRepository creates a new PeriodLockRepository.
func NewPeriodLockRepository(pool *pgxpool.Pool) *PeriodLockRepository {
	return &PeriodLockRepository{pool: pool}
}

// Create creates a new period lock.
func (r *PeriodLockRepository) Create(ctx context.Context, tx usecase.Transaction, lock *domain.PeriodLock) error {
	_, err := pgxTxOf(tx).Exec(ctx, `
		INSERT INTO period_locks (id, company_id, period_start, period_end, locked_at, locked_by)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		lock.ID,
		lock.CompanyID,
		dateToPg(lock.PeriodStart),
		dateToPg(lock.PeriodEnd),
		timeToPg(lock.LockedAt),
		lock.LockedBy,
	)

	return err
}

// AnyOverlapping reports whether any existing lock intersects the
// inclusive range [start, end]. Callers hold the company row lock, so
// the answer stays true until their transaction ends.
func (r *PeriodLockRepository) AnyOverlapping(ctx context.Context, tx usecase.Transaction, companyID string, start, end domain.Date) (bool, error) {
	var exists bool

	err := pgxTxOf(tx).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM period_locks
			WHERE company_id = $1 AND period_start <= $3 AND period_end >= $2
		)`,
		companyID, dateToPg(start), dateToPg(end),
	).Scan(&exists)

	return exists, err
}

// AnyCovering reports whether any lock covers the given date.
func (r *PeriodLockRepository) AnyCovering(ctx context.Context, tx usecase.Transaction, companyID string, date domain.Date) (bool, error) {
	var exists bool

	err := pgxTxOf(tx).QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM period_locks
			WHERE company_id = $1 AND period_start <= $2 AND period_end >= $2
		)`,
		companyID, dateToPg(date),
	).Scan(&exists)

	return exists, err
}

// ListByCompany retrieves a company's period locks ordered by range
// start.
func (r *PeriodLockRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.PeriodLock, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, company_id, period_start, period_end, locked_at, locked_by
		FROM period_locks
		WHERE company_id = $1
		ORDER BY period_start`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var locks []*domain.PeriodLock
	for rows.Next() {
		lock, err := scanPeriodLock(rows)
		if err != nil {
			return nil, err
		}
		locks = append(locks, lock)
	}

	return locks, rows.Err()
}

func scanPeriodLock(row pgx.Row) (*domain.PeriodLock, error) {
	var (
		lock       domain.PeriodLock
		start, end pgtype.Date
		lockedAt   pgtype.Timestamptz
	)

	err := row.Scan(&lock.ID, &lock.CompanyID, &start, &end, &lockedAt, &lock.LockedBy)
	if err != nil {
		return nil, err
	}

	lock.PeriodStart = pgToDate(start)
	lock.PeriodEnd = pgToDate(end)
	lock.LockedAt = lockedAt.Time

	return &lock, nil
}
