package postgres

import (
	"context"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordbok/bokforing/internal/domain"
)

// ReportRepository implements usecase.ReportRepository. Reports are
// plain aggregate reads; running balances are computed by the use case.
type ReportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository creates a new ReportRepository.
func NewReportRepository(pool *pgxpool.Pool) *ReportRepository {
	return &ReportRepository{pool: pool}
}

// JournalList returns one line per voucher in range, drafts included,
// ordered by date then voucher number. The total is the voucher's
// debit sum, which equals its credit sum for any stored voucher.
func (r *ReportRepository) JournalList(ctx context.Context, companyID string, from, to *domain.Date) ([]*domain.JournalLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.id, v.voucher_number, v.date, v.description, COALESCE(SUM(vr.debit_cents), 0)
		FROM vouchers v
		LEFT JOIN voucher_rows vr ON vr.voucher_id = v.id
		WHERE v.company_id = $1
		  AND ($2::date IS NULL OR v.date >= $2)
		  AND ($3::date IS NULL OR v.date <= $3)
		GROUP BY v.id, v.voucher_number, v.date, v.description
		ORDER BY v.date, v.voucher_number`,
		companyID, dateArg(from), dateArg(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*domain.JournalLine
	for rows.Next() {
		var (
			line domain.JournalLine
			date pgtype.Date
		)
		if err := rows.Scan(&line.VoucherID, &line.VoucherNumber, &date, &line.Description, &line.TotalCents); err != nil {
			return nil, err
		}
		line.Date = pgToDate(date)
		lines = append(lines, &line)
	}

	return lines, rows.Err()
}

// LedgerEntries returns the account's movements in range ordered by
// date then voucher number. BalanceCents is left zero.
func (r *ReportRepository) LedgerEntries(ctx context.Context, companyID, accountID string, from, to *domain.Date) ([]*domain.LedgerLine, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT v.date, v.voucher_number, COALESCE(vr.description, v.description), vr.debit_cents, vr.credit_cents
		FROM voucher_rows vr
		JOIN vouchers v ON v.id = vr.voucher_id
		WHERE v.company_id = $1
		  AND vr.account_id = $2
		  AND ($3::date IS NULL OR v.date >= $3)
		  AND ($4::date IS NULL OR v.date <= $4)
		ORDER BY v.date, v.voucher_number, vr.id`,
		companyID, accountID, dateArg(from), dateArg(to),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var lines []*domain.LedgerLine
	for rows.Next() {
		var (
			line domain.LedgerLine
			date pgtype.Date
		)
		if err := rows.Scan(&date, &line.VoucherNumber, &line.Description, &line.DebitCents, &line.CreditCents); err != nil {
			return nil, err
		}
		line.Date = pgToDate(date)
		lines = append(lines, &line)
	}

	return lines, rows.Err()
}

func dateArg(d *domain.Date) pgtype.Date {
	if d == nil {
		return pgtype.Date{}
	}

	return dateToPg(*d)
}
