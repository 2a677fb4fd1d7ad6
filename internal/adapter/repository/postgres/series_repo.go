package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/usecase"
)

// SeriesRepository implements usecase.SeriesRepository.
type SeriesRepository struct {
	pool *pgxpool.Pool
}

// NewSeriesRepository creates a new SeriesRepository.
func NewSeriesRepository(pool *pgxpool.Pool) *SeriesRepository {
	return &SeriesRepository{pool: pool}
}

const seriesColumns = `id, company_id, code, description, next_number`

// Create creates a new voucher series.
func (r *SeriesRepository) Create(ctx context.Context, tx usecase.Transaction, series *domain.VoucherSeries) error {
	_, err := pgxTxOf(tx).Exec(ctx, `
		INSERT INTO voucher_series (id, company_id, code, description, next_number)
		VALUES ($1, $2, $3, $4, $5)`,
		series.ID,
		series.CompanyID,
		series.Code,
		series.Description,
		series.NextNumber,
	)

	return err
}

// GetByID retrieves a voucher series by ID.
func (r *SeriesRepository) GetByID(ctx context.Context, id string) (*domain.VoucherSeries, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+seriesColumns+` FROM voucher_series WHERE id = $1`, id)

	return scanSeries(row)
}

// AllocateNumber draws the next voucher number from the series. The
// UPDATE takes a row lock, so concurrent allocations on the same
// series serialize; a rolled back transaction returns its number.
func (r *SeriesRepository) AllocateNumber(ctx context.Context, tx usecase.Transaction, seriesID string) (int64, error) {
	var next int64

	err := pgxTxOf(tx).QueryRow(ctx, `
		UPDATE voucher_series
		SET next_number = next_number + 1
		WHERE id = $1
		RETURNING next_number - 1`,
		seriesID,
	).Scan(&next)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrSeriesNotFound
		}

		return 0, err
	}

	return next, nil
}

// ListByCompany retrieves a company's voucher series ordered by code.
func (r *SeriesRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.VoucherSeries, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+seriesColumns+` FROM voucher_series WHERE company_id = $1 ORDER BY code`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var series []*domain.VoucherSeries
	for rows.Next() {
		s, err := scanSeries(rows)
		if err != nil {
			return nil, err
		}
		series = append(series, s)
	}

	return series, rows.Err()
}

func scanSeries(row pgx.Row) (*domain.VoucherSeries, error) {
	var series domain.VoucherSeries

	err := row.Scan(&series.ID, &series.CompanyID, &series.Code, &series.Description, &series.NextNumber)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrSeriesNotFound
		}

		return nil, err
	}

	return &series, nil
}
