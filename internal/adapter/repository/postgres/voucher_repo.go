package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/usecase"
)

// VoucherRepository implements usecase.VoucherRepository. A voucher is
// always read and written together with its rows and attachments.
type VoucherRepository struct {
	pool *pgxpool.Pool
}

// NewVoucherRepository creates a new VoucherRepository.
func NewVoucherRepository(pool *pgxpool.Pool) *VoucherRepository {
	return &VoucherRepository{pool: pool}
}

const voucherColumns = `id, company_id, series_id, voucher_number, date, description, counterparty, created_at, created_by, posted_at, corrected_voucher_id`

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Create persists the voucher with all its rows and attachments.
func (r *VoucherRepository) Create(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	pgxTx := pgxTxOf(tx)

	_, err := pgxTx.Exec(ctx, `
		INSERT INTO vouchers (id, company_id, series_id, voucher_number, date, description, counterparty, created_at, created_by, posted_at, corrected_voucher_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		voucher.ID,
		voucher.CompanyID,
		voucher.SeriesID,
		voucher.VoucherNumber,
		dateToPg(voucher.Date),
		voucher.Description,
		voucher.Counterparty,
		timeToPg(voucher.CreatedAt),
		voucher.CreatedBy,
		timePtrToPg(voucher.PostedAt),
		voucher.CorrectedVoucherID,
	)
	if err != nil {
		return err
	}

	for _, row := range voucher.Rows {
		_, err := pgxTx.Exec(ctx, `
			INSERT INTO voucher_rows (id, voucher_id, account_id, description, debit_cents, credit_cents, vat_code)
			VALUES ($1, $2, $3, $4, $5, $6, $7)`,
			row.ID,
			row.VoucherID,
			row.AccountID,
			row.Description,
			row.DebitCents,
			row.CreditCents,
			row.VatCode,
		)
		if err != nil {
			return err
		}
	}

	for _, att := range voucher.Attachments {
		_, err := pgxTx.Exec(ctx, `
			INSERT INTO attachments (id, voucher_id, ref_type, ref_value, note, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)`,
			att.ID,
			att.VoucherID,
			att.RefType,
			att.RefValue,
			att.Note,
			timeToPg(att.CreatedAt),
		)
		if err != nil {
			return err
		}
	}

	return nil
}

// GetByID retrieves a voucher with its rows and attachments.
func (r *VoucherRepository) GetByID(ctx context.Context, id string) (*domain.Voucher, error) {
	return r.getByID(ctx, r.pool, id, "")
}

// GetByIDForUpdate retrieves a voucher with a FOR UPDATE lock on the
// voucher row. Rows and attachments are immutable after creation and
// are read without locks.
func (r *VoucherRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Voucher, error) {
	return r.getByID(ctx, pgxTxOf(tx), id, " FOR UPDATE")
}

func (r *VoucherRepository) getByID(ctx context.Context, q querier, id, lockClause string) (*domain.Voucher, error) {
	row := q.QueryRow(ctx, `SELECT `+voucherColumns+` FROM vouchers WHERE id = $1`+lockClause, id)

	voucher, err := scanVoucher(row)
	if err != nil {
		return nil, err
	}

	if err := r.loadDetails(ctx, q, []*domain.Voucher{voucher}); err != nil {
		return nil, err
	}

	return voucher, nil
}

// MarkPosted stamps the voucher's posting time.
func (r *VoucherRepository) MarkPosted(ctx context.Context, tx usecase.Transaction, id string, postedAt time.Time) error {
	tag, err := pgxTxOf(tx).Exec(ctx, `UPDATE vouchers SET posted_at = $2 WHERE id = $1`, id, timeToPg(postedAt))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return domain.ErrVoucherNotFound
	}

	return nil
}

// ListByCompany retrieves a company's vouchers with rows and
// attachments, ordered by date then voucher number. Nil bounds leave
// that side of the range open.
func (r *VoucherRepository) ListByCompany(ctx context.Context, companyID string, from, to *domain.Date) ([]*domain.Voucher, error) {
	query := `SELECT ` + voucherColumns + ` FROM vouchers WHERE company_id = $1`
	args := []any{companyID}

	if from != nil {
		args = append(args, dateToPg(*from))
		query += ` AND date >= $2`
	}
	if to != nil {
		args = append(args, dateToPg(*to))
		if from != nil {
			query += ` AND date <= $3`
		} else {
			query += ` AND date <= $2`
		}
	}

	query += ` ORDER BY date, voucher_number`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var vouchers []*domain.Voucher
	for rows.Next() {
		voucher, err := scanVoucher(rows)
		if err != nil {
			return nil, err
		}
		vouchers = append(vouchers, voucher)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if err := r.loadDetails(ctx, r.pool, vouchers); err != nil {
		return nil, err
	}

	return vouchers, nil
}

// loadDetails fetches rows and attachments for the given vouchers in
// two queries and distributes them.
func (r *VoucherRepository) loadDetails(ctx context.Context, q querier, vouchers []*domain.Voucher) error {
	if len(vouchers) == 0 {
		return nil
	}

	byID := make(map[string]*domain.Voucher, len(vouchers))
	ids := make([]string, 0, len(vouchers))
	for _, v := range vouchers {
		byID[v.ID] = v
		ids = append(ids, v.ID)
	}

	rows, err := q.Query(ctx, `
		SELECT id, voucher_id, account_id, description, debit_cents, credit_cents, vat_code
		FROM voucher_rows
		WHERE voucher_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var row domain.VoucherRow
		if err := rows.Scan(&row.ID, &row.VoucherID, &row.AccountID, &row.Description, &row.DebitCents, &row.CreditCents, &row.VatCode); err != nil {
			return err
		}
		byID[row.VoucherID].Rows = append(byID[row.VoucherID].Rows, row)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	attRows, err := q.Query(ctx, `
		SELECT id, voucher_id, ref_type, ref_value, note, created_at
		FROM attachments
		WHERE voucher_id = ANY($1)
		ORDER BY id`, ids)
	if err != nil {
		return err
	}
	defer attRows.Close()

	for attRows.Next() {
		var (
			att       domain.Attachment
			createdAt pgtype.Timestamptz
		)
		if err := attRows.Scan(&att.ID, &att.VoucherID, &att.RefType, &att.RefValue, &att.Note, &createdAt); err != nil {
			return err
		}
		att.CreatedAt = createdAt.Time
		byID[att.VoucherID].Attachments = append(byID[att.VoucherID].Attachments, att)
	}

	return attRows.Err()
}

func scanVoucher(row pgx.Row) (*domain.Voucher, error) {
	var (
		voucher   domain.Voucher
		date      pgtype.Date
		createdAt pgtype.Timestamptz
		postedAt  pgtype.Timestamptz
	)

	err := row.Scan(
		&voucher.ID,
		&voucher.CompanyID,
		&voucher.SeriesID,
		&voucher.VoucherNumber,
		&date,
		&voucher.Description,
		&voucher.Counterparty,
		&createdAt,
		&voucher.CreatedBy,
		&postedAt,
		&voucher.CorrectedVoucherID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrVoucherNotFound
		}

		return nil, err
	}

	voucher.Date = pgToDate(date)
	voucher.CreatedAt = createdAt.Time
	voucher.PostedAt = pgToTimePtr(postedAt)

	return &voucher, nil
}
