package mocks

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/usecase"
)

// MockTransaction is a mock implementation of usecase.Transaction.
type MockTransaction struct {
	CommitFunc   func(ctx context.Context) error
	RollbackFunc func(ctx context.Context) error
}

func (m *MockTransaction) Commit(ctx context.Context) error {
	if m.CommitFunc != nil {
		return m.CommitFunc(ctx)
	}
	return nil
}

func (m *MockTransaction) Rollback(ctx context.Context) error {
	if m.RollbackFunc != nil {
		return m.RollbackFunc(ctx)
	}
	return nil
}

// MockTransactionManager is a mock implementation of
// usecase.TransactionManager.
type MockTransactionManager struct {
	BeginFunc func(ctx context.Context) (usecase.Transaction, error)
}

func NewMockTransactionManager() *MockTransactionManager {
	return &MockTransactionManager{}
}

func (m *MockTransactionManager) Begin(ctx context.Context) (usecase.Transaction, error) {
	if m.BeginFunc != nil {
		return m.BeginFunc(ctx)
	}
	return &MockTransaction{}, nil
}

// MockIDGenerator is a mock implementation of usecase.IDGenerator. By
// default it generates sequential IDs.
type MockIDGenerator struct {
	mu   sync.Mutex
	next int

	GenerateFunc func() string
}

func NewMockIDGenerator() *MockIDGenerator {
	return &MockIDGenerator{}
}

func (m *MockIDGenerator) Generate() string {
	if m.GenerateFunc != nil {
		return m.GenerateFunc()
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	return fmt.Sprintf("id-%d", m.next)
}

// MockRetrier is a mock implementation of usecase.Retrier. By default
// it runs the operation exactly once.
type MockRetrier struct {
	RetryFunc func(ctx context.Context, operation func() error) error
}

func NewMockRetrier() *MockRetrier {
	return &MockRetrier{}
}

func (m *MockRetrier) Retry(ctx context.Context, operation func() error) error {
	if m.RetryFunc != nil {
		return m.RetryFunc(ctx, operation)
	}
	return operation()
}

// MockCompanyRepository is a mock implementation of
// usecase.CompanyRepository.
type MockCompanyRepository struct {
	mu        sync.RWMutex
	companies map[string]*domain.Company

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, company *domain.Company) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Company, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Company, error)
	ListFunc             func(ctx context.Context) ([]*domain.Company, error)
}

func NewMockCompanyRepository() *MockCompanyRepository {
	return &MockCompanyRepository{companies: make(map[string]*domain.Company)}
}

func (m *MockCompanyRepository) Create(ctx context.Context, tx usecase.Transaction, company *domain.Company) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, company)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.companies[company.ID] = company
	return nil
}

func (m *MockCompanyRepository) GetByID(ctx context.Context, id string) (*domain.Company, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if c, ok := m.companies[id]; ok {
		return c, nil
	}
	return nil, domain.ErrCompanyNotFound
}

func (m *MockCompanyRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Company, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockCompanyRepository) List(ctx context.Context) ([]*domain.Company, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var companies []*domain.Company
	for _, c := range m.companies {
		companies = append(companies, c)
	}
	return companies, nil
}

// MockAccountRepository is a mock implementation of
// usecase.AccountRepository.
type MockAccountRepository struct {
	mu       sync.RWMutex
	accounts map[string]*domain.Account

	UpsertFunc        func(ctx context.Context, account *domain.Account) error
	GetByIDFunc       func(ctx context.Context, id string) (*domain.Account, error)
	GetByIDsFunc      func(ctx context.Context, ids []string) ([]*domain.Account, error)
	ListByCompanyFunc func(ctx context.Context, companyID string) ([]*domain.Account, error)
}

func NewMockAccountRepository() *MockAccountRepository {
	return &MockAccountRepository{accounts: make(map[string]*domain.Account)}
}

func (m *MockAccountRepository) Upsert(ctx context.Context, account *domain.Account) error {
	if m.UpsertFunc != nil {
		return m.UpsertFunc(ctx, account)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[account.ID] = account
	return nil
}

func (m *MockAccountRepository) GetByID(ctx context.Context, id string) (*domain.Account, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if a, ok := m.accounts[id]; ok {
		return a, nil
	}
	return nil, domain.ErrAccountNotFound
}

func (m *MockAccountRepository) GetByIDs(ctx context.Context, ids []string) ([]*domain.Account, error) {
	if m.GetByIDsFunc != nil {
		return m.GetByIDsFunc(ctx, ids)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, id := range ids {
		if a, ok := m.accounts[id]; ok {
			accounts = append(accounts, a)
		}
	}
	return accounts, nil
}

func (m *MockAccountRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.Account, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var accounts []*domain.Account
	for _, a := range m.accounts {
		if a.CompanyID == companyID {
			accounts = append(accounts, a)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Number < accounts[j].Number })
	return accounts, nil
}

// MockSeriesRepository is a mock implementation of
// usecase.SeriesRepository. AllocateNumber is serialized by a mutex so
// concurrency tests exercise the same discipline the store provides.
type MockSeriesRepository struct {
	mu     sync.Mutex
	series map[string]*domain.VoucherSeries

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, series *domain.VoucherSeries) error
	GetByIDFunc        func(ctx context.Context, id string) (*domain.VoucherSeries, error)
	AllocateNumberFunc func(ctx context.Context, tx usecase.Transaction, seriesID string) (int64, error)
	ListByCompanyFunc  func(ctx context.Context, companyID string) ([]*domain.VoucherSeries, error)
}

func NewMockSeriesRepository() *MockSeriesRepository {
	return &MockSeriesRepository{series: make(map[string]*domain.VoucherSeries)}
}

func (m *MockSeriesRepository) Create(ctx context.Context, tx usecase.Transaction, series *domain.VoucherSeries) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, series)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.series[series.ID] = series
	return nil
}

func (m *MockSeriesRepository) GetByID(ctx context.Context, id string) (*domain.VoucherSeries, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.series[id]; ok {
		return s, nil
	}
	return nil, domain.ErrSeriesNotFound
}

func (m *MockSeriesRepository) AllocateNumber(ctx context.Context, tx usecase.Transaction, seriesID string) (int64, error) {
	if m.AllocateNumberFunc != nil {
		return m.AllocateNumberFunc(ctx, tx, seriesID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.series[seriesID]
	if !ok {
		return 0, domain.ErrSeriesNotFound
	}
	number := s.NextNumber
	s.NextNumber++
	return number, nil
}

func (m *MockSeriesRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.VoucherSeries, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	var series []*domain.VoucherSeries
	for _, s := range m.series {
		if s.CompanyID == companyID {
			series = append(series, s)
		}
	}
	return series, nil
}

// MockVoucherRepository is a mock implementation of
// usecase.VoucherRepository.
type MockVoucherRepository struct {
	mu       sync.RWMutex
	vouchers map[string]*domain.Voucher

	CreateFunc           func(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error
	GetByIDFunc          func(ctx context.Context, id string) (*domain.Voucher, error)
	GetByIDForUpdateFunc func(ctx context.Context, tx usecase.Transaction, id string) (*domain.Voucher, error)
	MarkPostedFunc       func(ctx context.Context, tx usecase.Transaction, id string, postedAt time.Time) error
	ListByCompanyFunc    func(ctx context.Context, companyID string, from, to *domain.Date) ([]*domain.Voucher, error)
}

func NewMockVoucherRepository() *MockVoucherRepository {
	return &MockVoucherRepository{vouchers: make(map[string]*domain.Voucher)}
}

func (m *MockVoucherRepository) Create(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, voucher)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.vouchers[voucher.ID] = voucher
	return nil
}

func (m *MockVoucherRepository) GetByID(ctx context.Context, id string) (*domain.Voucher, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.vouchers[id]; ok {
		return v, nil
	}
	return nil, domain.ErrVoucherNotFound
}

func (m *MockVoucherRepository) GetByIDForUpdate(ctx context.Context, tx usecase.Transaction, id string) (*domain.Voucher, error) {
	if m.GetByIDForUpdateFunc != nil {
		return m.GetByIDForUpdateFunc(ctx, tx, id)
	}
	return m.GetByID(ctx, id)
}

func (m *MockVoucherRepository) MarkPosted(ctx context.Context, tx usecase.Transaction, id string, postedAt time.Time) error {
	if m.MarkPostedFunc != nil {
		return m.MarkPostedFunc(ctx, tx, id, postedAt)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.vouchers[id]
	if !ok {
		return domain.ErrVoucherNotFound
	}
	v.PostedAt = &postedAt
	return nil
}

func (m *MockVoucherRepository) ListByCompany(ctx context.Context, companyID string, from, to *domain.Date) ([]*domain.Voucher, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID, from, to)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var vouchers []*domain.Voucher
	for _, v := range m.vouchers {
		if v.CompanyID != companyID {
			continue
		}
		if from != nil && v.Date.Before(*from) {
			continue
		}
		if to != nil && v.Date.After(*to) {
			continue
		}
		vouchers = append(vouchers, v)
	}
	sort.Slice(vouchers, func(i, j int) bool {
		if vouchers[i].Date != vouchers[j].Date {
			return vouchers[i].Date < vouchers[j].Date
		}
		return vouchers[i].VoucherNumber < vouchers[j].VoucherNumber
	})
	return vouchers, nil
}

// MockPeriodLockRepository is a mock implementation of
// usecase.PeriodLockRepository.
type MockPeriodLockRepository struct {
	mu    sync.RWMutex
	locks []*domain.PeriodLock

	CreateFunc         func(ctx context.Context, tx usecase.Transaction, lock *domain.PeriodLock) error
	AnyOverlappingFunc func(ctx context.Context, tx usecase.Transaction, companyID string, start, end domain.Date) (bool, error)
	AnyCoveringFunc    func(ctx context.Context, tx usecase.Transaction, companyID string, date domain.Date) (bool, error)
	ListByCompanyFunc  func(ctx context.Context, companyID string) ([]*domain.PeriodLock, error)
}

func NewMockPeriodLockRepository() *MockPeriodLockRepository {
	return &MockPeriodLockRepository{}
}

func (m *MockPeriodLockRepository) Create(ctx context.Context, tx usecase.Transaction, lock *domain.PeriodLock) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, lock)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.locks = append(m.locks, lock)
	return nil
}

func (m *MockPeriodLockRepository) AnyOverlapping(ctx context.Context, tx usecase.Transaction, companyID string, start, end domain.Date) (bool, error) {
	if m.AnyOverlappingFunc != nil {
		return m.AnyOverlappingFunc(ctx, tx, companyID, start, end)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.locks {
		if l.CompanyID == companyID && l.Overlaps(start, end) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockPeriodLockRepository) AnyCovering(ctx context.Context, tx usecase.Transaction, companyID string, date domain.Date) (bool, error) {
	if m.AnyCoveringFunc != nil {
		return m.AnyCoveringFunc(ctx, tx, companyID, date)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, l := range m.locks {
		if l.CompanyID == companyID && l.Covers(date) {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockPeriodLockRepository) ListByCompany(ctx context.Context, companyID string) ([]*domain.PeriodLock, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var locks []*domain.PeriodLock
	for _, l := range m.locks {
		if l.CompanyID == companyID {
			locks = append(locks, l)
		}
	}
	return locks, nil
}

// MockReportRepository is a mock implementation of
// usecase.ReportRepository.
type MockReportRepository struct {
	JournalLines []*domain.JournalLine
	LedgerLines  []*domain.LedgerLine

	JournalListFunc   func(ctx context.Context, companyID string, from, to *domain.Date) ([]*domain.JournalLine, error)
	LedgerEntriesFunc func(ctx context.Context, companyID, accountID string, from, to *domain.Date) ([]*domain.LedgerLine, error)
}

func NewMockReportRepository() *MockReportRepository {
	return &MockReportRepository{}
}

func (m *MockReportRepository) JournalList(ctx context.Context, companyID string, from, to *domain.Date) ([]*domain.JournalLine, error) {
	if m.JournalListFunc != nil {
		return m.JournalListFunc(ctx, companyID, from, to)
	}
	return m.JournalLines, nil
}

func (m *MockReportRepository) LedgerEntries(ctx context.Context, companyID, accountID string, from, to *domain.Date) ([]*domain.LedgerLine, error) {
	if m.LedgerEntriesFunc != nil {
		return m.LedgerEntriesFunc(ctx, companyID, accountID, from, to)
	}
	return m.LedgerLines, nil
}

// MockAuditRepository is a mock implementation of
// usecase.AuditRepository.
type MockAuditRepository struct {
	mu      sync.RWMutex
	entries []*domain.AuditEntry

	CreateFunc        func(ctx context.Context, tx usecase.Transaction, entry *domain.AuditEntry) error
	ListByCompanyFunc func(ctx context.Context, companyID string, limit, offset int) ([]*domain.AuditEntry, error)
}

func NewMockAuditRepository() *MockAuditRepository {
	return &MockAuditRepository{}
}

func (m *MockAuditRepository) Create(ctx context.Context, tx usecase.Transaction, entry *domain.AuditEntry) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, tx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries = append(m.entries, entry)
	return nil
}

func (m *MockAuditRepository) ListByCompany(ctx context.Context, companyID string, limit, offset int) ([]*domain.AuditEntry, error) {
	if m.ListByCompanyFunc != nil {
		return m.ListByCompanyFunc(ctx, companyID, limit, offset)
	}
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []*domain.AuditEntry
	for _, e := range m.entries {
		if e.CompanyID == companyID {
			entries = append(entries, e)
		}
	}
	return entries, nil
}

// Entries returns all recorded audit entries.
func (m *MockAuditRepository) Entries() []*domain.AuditEntry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return append([]*domain.AuditEntry(nil), m.entries...)
}
