package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/usecase"
	"github.com/nordbok/bokforing/internal/usecase/mocks"
)

func newReportFixture(t *testing.T) (*usecase.ReportUseCase, *mocks.MockReportRepository) {
	t.Helper()

	companyRepo := mocks.NewMockCompanyRepository()
	companyRepo.Create(context.Background(), nil, &domain.Company{
		ID:              "comp-1",
		Name:            "Testbolaget AB",
		FiscalYearStart: "2024-01-01",
		FiscalYearEnd:   "2024-12-31",
	})

	accountRepo := mocks.NewMockAccountRepository()
	accountRepo.Upsert(context.Background(), &domain.Account{
		ID: "acc-cash", CompanyID: "comp-1", Number: 1910, Name: "Kassa", Type: domain.AccountTypeAsset, IsActive: true,
	})
	accountRepo.Upsert(context.Background(), &domain.Account{
		ID: "acc-foreign", CompanyID: "comp-2", Number: 1910, Name: "Kassa", Type: domain.AccountTypeAsset, IsActive: true,
	})

	reportRepo := mocks.NewMockReportRepository()

	return usecase.NewReportUseCase(reportRepo, accountRepo, companyRepo), reportRepo
}

func TestReportUseCase_LedgerForAccount_RunningBalance(t *testing.T) {
	uc, reportRepo := newReportFixture(t)

	reportRepo.LedgerLines = []*domain.LedgerLine{
		{Date: "2024-01-05", VoucherNumber: 1, Description: "Insättning", DebitCents: 500},
		{Date: "2024-01-10", VoucherNumber: 2, Description: "Uttag", CreditCents: 200},
		{Date: "2024-01-20", VoucherNumber: 3, Description: "Insättning", DebitCents: 300},
	}

	lines, err := uc.LedgerForAccount(context.Background(), usecase.LedgerInput{
		CompanyID: "comp-1",
		AccountID: "acc-cash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []int64{500, 300, 600}
	if len(lines) != len(want) {
		t.Fatalf("expected %d lines, got %d", len(want), len(lines))
	}
	for i, balance := range want {
		if lines[i].BalanceCents != balance {
			t.Errorf("line %d: expected balance %d, got %d", i, balance, lines[i].BalanceCents)
		}
	}
}

func TestReportUseCase_LedgerForAccount_Empty(t *testing.T) {
	uc, _ := newReportFixture(t)

	lines, err := uc.LedgerForAccount(context.Background(), usecase.LedgerInput{
		CompanyID: "comp-1",
		AccountID: "acc-cash",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("expected no lines, got %d", len(lines))
	}
}

func TestReportUseCase_LedgerForAccount_Errors(t *testing.T) {
	uc, _ := newReportFixture(t)

	t.Run("unknown account", func(t *testing.T) {
		_, err := uc.LedgerForAccount(context.Background(), usecase.LedgerInput{
			CompanyID: "comp-1",
			AccountID: "nope",
		})
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})

	t.Run("account of another company", func(t *testing.T) {
		_, err := uc.LedgerForAccount(context.Background(), usecase.LedgerInput{
			CompanyID: "comp-1",
			AccountID: "acc-foreign",
		})
		if !errors.Is(err, domain.ErrAccountNotFound) {
			t.Fatalf("expected ErrAccountNotFound, got %v", err)
		}
	})
}

func TestReportUseCase_JournalList(t *testing.T) {
	uc, reportRepo := newReportFixture(t)

	reportRepo.JournalLines = []*domain.JournalLine{
		{VoucherID: "v-1", VoucherNumber: 1, Date: "2024-01-05", Description: "Försäljning", TotalCents: 12500},
		{VoucherID: "v-2", VoucherNumber: 2, Date: "2024-01-10", Description: "Hyra", TotalCents: 85000},
	}

	lines, err := uc.JournalList(context.Background(), usecase.JournalListInput{CompanyID: "comp-1"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	if lines[0].TotalCents != 12500 {
		t.Errorf("expected total 12500, got %d", lines[0].TotalCents)
	}

	t.Run("unknown company", func(t *testing.T) {
		_, err := uc.JournalList(context.Background(), usecase.JournalListInput{CompanyID: "nope"})
		if !errors.Is(err, domain.ErrCompanyNotFound) {
			t.Fatalf("expected ErrCompanyNotFound, got %v", err)
		}
	})
}
