package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nordbok/bokforing/internal/domain"
)

// AccountRepository implements usecase.AccountRepository.
type AccountRepository struct {
	pool *pgxpool.Pool
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, company_id, number, name, type, vat_code, is_active, created_at`

// Upsert inserts the account or, when the ID already exists, updates
// its mutable fields. Accounts are never deleted.
func (r *AccountRepository) Upsert(ctx context.Context, account *domain.Account) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO accounts (id, company_id, number, name, type, vat_code, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		ON CONFLICT (id) DO UPDATE SET
			number = EXCLUDED.number,
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			vat_code = EXCLUDED.vat_code,
			is_active = EXCLUDED.is_active`,
		account.ID,
		account.CompanyID,
		account.Number,
		account.Name,
		string(account.Type),
		account.VatCode,
		account.IsActive,
		timeToPg(account.CreatedAt),
	)

	return err
}

// GetByID retrieves an account by ID.
func (r *AccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id)

	return scanAccount(row)
}

// GetByIDs retrieves the accounts whose IDs appear in ids. Missing IDs
// are simply absent from the result.
func (r *AccountRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// ListByCompany retrieves a company's accounts ordered by account
// number.
func (r *AccountRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Account, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+accountColumns+` FROM accounts WHERE company_id = $1 ORDER BY number`, companyID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectAccounts(rows)
}

func collectAccounts(rows pgx.Rows) ([]*domain.Account, error) {
	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}

	return accounts, rows.Err()
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var (
		account     domain.Account
		accountType string
		createdAt   pgtype.Timestamptz
	)

	err := row.Scan(
		&account.ID,
		&account.CompanyID,
		&account.Number,
		&account.Name,
		&accountType,
		&account.VatCode,
		&account.IsActive,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}

		return nil, err
	}

	account.Type = domain.AccountType(accountType)
	account.CreatedAt = createdAt.Time

	return &account, nil
}
