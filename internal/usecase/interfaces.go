package usecase

import (
	"context"
	"time"

	"github.com/nordbok/bokforing/internal/domain"
)

// CompanyRepository defines data access for companies.
type CompanyRepository interface {
	Create(ctx context.Context, tx Transaction, company *domain.Company) error
	GetByID(ctx context.Context, id string) (*domain.Company, error)
	// GetByIDForUpdate locks the company row. Voucher creation, posting
	// and period locking all take this lock so that a company's lock
	// set is read at the same consistency boundary as the write.
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Company, error)
	List(ctx context.Context) ([]*domain.Company, error)
}

// AccountRepository defines data access for the chart of accounts.
type AccountRepository interface {
	Upsert(ctx context.Context, account *domain.Account) error
	GetByID(ctx context.Context, id string) (*domain.Account, error)
	GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.Account, error)
}

// SeriesRepository defines data access for voucher series.
type SeriesRepository interface {
	Create(ctx context.Context, tx Transaction, series *domain.VoucherSeries) error
	GetByID(ctx context.Context, id string) (*domain.VoucherSeries, error)
	// AllocateNumber atomically increments the series counter and
	// returns the pre-increment value. The underlying row lock
	// serializes concurrent allocations on the same series.
	AllocateNumber(ctx context.Context, tx Transaction, seriesID string) (int64, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.VoucherSeries, error)
}

// VoucherRepository defines data access for vouchers, their rows and
// attachments.
type VoucherRepository interface {
	Create(ctx context.Context, tx Transaction, voucher *domain.Voucher) error
	GetByID(ctx context.Context, id string) (*domain.Voucher, error)
	GetByIDForUpdate(ctx context.Context, tx Transaction, id string) (*domain.Voucher, error)
	MarkPosted(ctx context.Context, tx Transaction, id string, postedAt time.Time) error
	ListByCompany(ctx context.Context, companyID string, from, to *domain.Date) ([]*domain.Voucher, error)
}

// PeriodLockRepository defines data access for period locks.
type PeriodLockRepository interface {
	Create(ctx context.Context, tx Transaction, lock *domain.PeriodLock) error
	AnyOverlapping(ctx context.Context, tx Transaction, companyID string, start, end domain.Date) (bool, error)
	AnyCovering(ctx context.Context, tx Transaction, companyID string, date domain.Date) (bool, error)
	ListByCompany(ctx context.Context, companyID string) ([]*domain.PeriodLock, error)
}

// ReportRepository defines read-only access for report queries. Report
// reads never take row locks.
type ReportRepository interface {
	JournalList(ctx context.Context, companyID string, from, to *domain.Date) ([]*domain.JournalLine, error)
	// LedgerEntries returns the account's movements ordered by date
	// then voucher number; BalanceCents is left zero for the caller to
	// fill in.
	LedgerEntries(ctx context.Context, companyID, accountID string, from, to *domain.Date) ([]*domain.LedgerLine, error)
}

// AuditRepository defines data access for the audit log.
type AuditRepository interface {
	Create(ctx context.Context, tx Transaction, entry *domain.AuditEntry) error
	ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*domain.AuditEntry, error)
}

// Transaction represents a database transaction.
type Transaction interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// TransactionManager handles transaction lifecycle.
type TransactionManager interface {
	Begin(ctx context.Context) (Transaction, error)
}

// IDGenerator generates unique IDs.
type IDGenerator interface {
	Generate() string
}

// Retrier re-runs an operation on transient storage failures.
type Retrier interface {
	Retry(ctx context.Context, operation func() error) error
}

// IdempotencyStore handles idempotency key storage.
type IdempotencyStore interface {
	// CheckAndSet atomically checks if key exists, sets if not.
	// Returns (exists, existingValue, error).
	CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error)
	// Update updates an existing key with the final response.
	Update(ctx context.Context, key string, response []byte, ttl time.Duration) error
}
