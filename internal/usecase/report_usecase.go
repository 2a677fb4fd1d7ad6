package usecase

import (
	"context"

	"github.com/nordbok/bokforing/internal/domain"
)

// ReportUseCase computes journal listings and per-account general
// ledgers from persisted vouchers.
type ReportUseCase struct {
	reportRepo  ReportRepository
	accountRepo AccountRepository
	companyRepo CompanyRepository
}

// NewReportUseCase creates a new ReportUseCase.
func NewReportUseCase(reportRepo ReportRepository, accountRepo AccountRepository, companyRepo CompanyRepository) *ReportUseCase {
	return &ReportUseCase{
		reportRepo:  reportRepo,
		accountRepo: accountRepo,
		companyRepo: companyRepo,
	}
}

// JournalListInput represents input for a journal report.
type JournalListInput struct {
	CompanyID string
	FromDate  *domain.Date
	ToDate    *domain.Date
}

// JournalList returns one line per voucher in range, drafts included,
// ordered by date then voucher number.
func (uc *ReportUseCase) JournalList(ctx context.Context, input JournalListInput) ([]*domain.JournalLine, error) {
	if _, err := uc.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	return uc.reportRepo.JournalList(ctx, input.CompanyID, input.FromDate, input.ToDate)
}

// LedgerInput represents input for a general ledger report.
type LedgerInput struct {
	CompanyID string
	AccountID string
	FromDate  *domain.Date
	ToDate    *domain.Date
}

// LedgerForAccount returns the account's movements in range with a
// running balance. The balance starts at zero for each query and each
// line carries the balance after applying that line; all arithmetic is
// integer.
func (uc *ReportUseCase) LedgerForAccount(ctx context.Context, input LedgerInput) ([]*domain.LedgerLine, error) {
	account, err := uc.accountRepo.GetByID(ctx, input.AccountID)
	if err != nil {
		return nil, err
	}

	if account.CompanyID != input.CompanyID {
		return nil, domain.ErrAccountNotFound
	}

	lines, err := uc.reportRepo.LedgerEntries(ctx, input.CompanyID, input.AccountID, input.FromDate, input.ToDate)
	if err != nil {
		return nil, err
	}

	var balance int64
	for _, line := range lines {
		balance += line.DebitCents - line.CreditCents
		line.BalanceCents = balance
	}

	return lines, nil
}
