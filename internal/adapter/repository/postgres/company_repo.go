package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/usecase"
)

// CompanyRepository implements usecase.CompanyRepository.
type CompanyRepository struct {
	pool *pgxpool.Pool
}

// NewCompanyRepository creates a new CompanyRepository.
func NewCompanyRepository(pool *pgxpool.Pool) *CompanyRepository {
	return &CompanyRepository{pool: pool}
}

const companyColumns = `id, name, org_number, fiscal_year_start, fiscal_year_end, created_at`

// Create creates a new company.
func (r *CompanyRepository) Create(ctx context.Context, tx usecase.Transaction, company *domain.Company) error {
	_, err := pgxTxOf(tx).Exec(ctx, `
		INSERT INTO companies (id, name, org_number, fiscal_year_start, fiscal_year_end, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		company.ID,
		company.Name,
		company.OrgNumber,
		dateToPg(company.FiscalYearStart),
		dateToPg(company.FiscalYearEnd),
		timeToPg(company.CreatedAt),
	)

	return err
}

// GetByID retrieves a company by ID.
func (r *CompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)

	return scanCompany(row)
}

// GetByIDForUpdate retrieves a company by ID with a FOR UPDATE lock.
// The company row is the consistency boundary for voucher writes and
// period lock inserts.
func (r *CompanyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Company, error) {
	row := pgxTxOf(tx).QueryRow(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1 FOR UPDATE`, id)

	return scanCompany(row)
}

// List retrieves all companies ordered by creation time.
func (r *CompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []*domain.Company
	for rows.Next() {
		company, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		companies = append(companies, company)
	}

	return companies, rows.Err()
}

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var (
		company        domain.Company
		fyStart, fyEnd pgtype.Date
		createdAt      pgtype.Timestamptz
	)

	err := row.Scan(&company.ID, &company.Name, &company.OrgNumber, &fyStart, &fyEnd, &createdAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrCompanyNotFound
		}

		return nil, err
	}

	company.FiscalYearStart = pgToDate(fyStart)
	company.FiscalYearEnd = pgToDate(fyEnd)
	company.CreatedAt = createdAt.Time

	return &company, nil
}
