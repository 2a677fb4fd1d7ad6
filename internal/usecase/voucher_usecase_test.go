package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/usecase"
	"github.com/nordbok/bokforing/internal/usecase/mocks"
)

type voucherFixture struct {
	companyRepo *mocks.MockCompanyRepository
	accountRepo *mocks.MockAccountRepository
	seriesRepo  *mocks.MockSeriesRepository
	voucherRepo *mocks.MockVoucherRepository
	lockRepo    *mocks.MockPeriodLockRepository
	auditRepo   *mocks.MockAuditRepository
	uc          *usecase.VoucherUseCase
}

// newVoucherFixture seeds one company with a cash account, a sales
// account, an inactive account, an account owned by another company,
// and a series starting at 1.
func newVoucherFixture(t *testing.T) *voucherFixture {
	t.Helper()

	f := &voucherFixture{
		companyRepo: mocks.NewMockCompanyRepository(),
		accountRepo: mocks.NewMockAccountRepository(),
		seriesRepo:  mocks.NewMockSeriesRepository(),
		voucherRepo: mocks.NewMockVoucherRepository(),
		lockRepo:    mocks.NewMockPeriodLockRepository(),
		auditRepo:   mocks.NewMockAuditRepository(),
	}

	ctx := context.Background()

	f.companyRepo.Create(ctx, nil, &domain.Company{
		ID:              "comp-1",
		Name:            "Testbolaget AB",
		FiscalYearStart: "2024-01-01",
		FiscalYearEnd:   "2024-12-31",
	})
	f.companyRepo.Create(ctx, nil, &domain.Company{
		ID:              "comp-2",
		Name:            "Andra Bolaget AB",
		FiscalYearStart: "2024-01-01",
		FiscalYearEnd:   "2024-12-31",
	})

	f.accountRepo.Upsert(ctx, &domain.Account{
		ID: "acc-cash", CompanyID: "comp-1", Number: 1910, Name: "Kassa", Type: domain.AccountTypeAsset, IsActive: true,
	})
	f.accountRepo.Upsert(ctx, &domain.Account{
		ID: "acc-sales", CompanyID: "comp-1", Number: 3001, Name: "Försäljning", Type: domain.AccountTypeIncome, IsActive: true,
	})
	f.accountRepo.Upsert(ctx, &domain.Account{
		ID: "acc-closed", CompanyID: "comp-1", Number: 6000, Name: "Nedlagt", Type: domain.AccountTypeExpense, IsActive: false,
	})
	f.accountRepo.Upsert(ctx, &domain.Account{
		ID: "acc-foreign", CompanyID: "comp-2", Number: 1910, Name: "Kassa", Type: domain.AccountTypeAsset, IsActive: true,
	})

	f.seriesRepo.Create(ctx, nil, &domain.VoucherSeries{
		ID: "ser-a", CompanyID: "comp-1", Code: "A", Description: "Main series", NextNumber: 1,
	})
	f.seriesRepo.Create(ctx, nil, &domain.VoucherSeries{
		ID: "ser-other", CompanyID: "comp-2", Code: "A", Description: "Main series", NextNumber: 1,
	})

	f.uc = usecase.NewVoucherUseCase(
		mocks.NewMockTransactionManager(),
		f.companyRepo,
		f.accountRepo,
		f.seriesRepo,
		f.voucherRepo,
		f.lockRepo,
		f.auditRepo,
		mocks.NewMockIDGenerator(),
		mocks.NewMockRetrier(),
	)

	return f
}

func simpleSale(amount int64) []usecase.VoucherRowInput {
	return []usecase.VoucherRowInput{
		{AccountID: "acc-cash", DebitCents: amount},
		{AccountID: "acc-sales", CreditCents: amount},
	}
}

func TestVoucherUseCase_CreateVoucher(t *testing.T) {
	tests := []struct {
		name      string
		input     usecase.CreateVoucherInput
		setup     func(f *voucherFixture)
		errorType error
	}{
		{
			name: "balanced voucher",
			input: usecase.CreateVoucherInput{
				CompanyID:   "comp-1",
				SeriesID:    "ser-a",
				Date:        "2024-03-01",
				Description: "Kontantförsäljning",
				Rows:        simpleSale(12500),
			},
		},
		{
			name: "unbalanced voucher",
			input: usecase.CreateVoucherInput{
				CompanyID:   "comp-1",
				SeriesID:    "ser-a",
				Date:        "2024-03-01",
				Description: "Fel",
				Rows: []usecase.VoucherRowInput{
					{AccountID: "acc-cash", DebitCents: 10000},
					{AccountID: "acc-sales", CreditCents: 9900},
				},
			},
			errorType: domain.ErrVoucherUnbalanced,
		},
		{
			name: "row with neither debit nor credit",
			input: usecase.CreateVoucherInput{
				CompanyID:   "comp-1",
				SeriesID:    "ser-a",
				Date:        "2024-03-01",
				Description: "Tom rad",
				Rows: []usecase.VoucherRowInput{
					{AccountID: "acc-cash", DebitCents: 10000},
					{AccountID: "acc-sales", CreditCents: 10000},
					{AccountID: "acc-cash"},
				},
			},
			errorType: domain.ErrVoucherUnbalanced,
		},
		{
			name: "no rows",
			input: usecase.CreateVoucherInput{
				CompanyID:   "comp-1",
				SeriesID:    "ser-a",
				Date:        "2024-03-01",
				Description: "Tomt verifikat",
			},
			errorType: domain.ErrVoucherUnbalanced,
		},
		{
			name: "inactive account",
			input: usecase.CreateVoucherInput{
				CompanyID:   "comp-1",
				SeriesID:    "ser-a",
				Date:        "2024-03-01",
				Description: "Nedlagt konto",
				Rows: []usecase.VoucherRowInput{
					{AccountID: "acc-closed", DebitCents: 5000},
					{AccountID: "acc-sales", CreditCents: 5000},
				},
			},
			errorType: domain.ErrVoucherUnbalanced,
		},
		{
			name: "account of another company",
			input: usecase.CreateVoucherInput{
				CompanyID:   "comp-1",
				SeriesID:    "ser-a",
				Date:        "2024-03-01",
				Description: "Främmande konto",
				Rows: []usecase.VoucherRowInput{
					{AccountID: "acc-foreign", DebitCents: 5000},
					{AccountID: "acc-sales", CreditCents: 5000},
				},
			},
			errorType: domain.ErrAccountNotFound,
		},
		{
			name: "series of another company",
			input: usecase.CreateVoucherInput{
				CompanyID:   "comp-1",
				SeriesID:    "ser-other",
				Date:        "2024-03-01",
				Description: "Fel serie",
				Rows:        simpleSale(5000),
			},
			errorType: domain.ErrSeriesNotFound,
		},
		{
			name: "malformed date",
			input: usecase.CreateVoucherInput{
				CompanyID:   "comp-1",
				SeriesID:    "ser-a",
				Date:        "01/03/2024",
				Description: "Fel datum",
				Rows:        simpleSale(5000),
			},
			errorType: domain.ErrInvalidDate,
		},
		{
			name: "date inside locked period",
			input: usecase.CreateVoucherInput{
				CompanyID:   "comp-1",
				SeriesID:    "ser-a",
				Date:        "2024-01-15",
				Description: "Låst period",
				Rows:        simpleSale(5000),
			},
			setup: func(f *voucherFixture) {
				f.lockRepo.Create(context.Background(), nil, &domain.PeriodLock{
					ID: "lock-1", CompanyID: "comp-1", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31",
				})
			},
			errorType: domain.ErrPeriodLocked,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newVoucherFixture(t)
			if tt.setup != nil {
				tt.setup(f)
			}

			voucher, err := f.uc.CreateVoucher(context.Background(), tt.input)

			if tt.errorType != nil {
				if !errors.Is(err, tt.errorType) {
					t.Fatalf("expected error %v, got %v", tt.errorType, err)
				}
				return
			}

			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if voucher.VoucherNumber != 1 {
				t.Errorf("expected voucher number 1, got %d", voucher.VoucherNumber)
			}
			if voucher.Posted() {
				t.Error("new voucher should be a draft")
			}
			if voucher.CreatedBy != "local" {
				t.Errorf("expected default actor local, got %s", voucher.CreatedBy)
			}
			if len(voucher.Rows) != len(tt.input.Rows) {
				t.Errorf("expected %d rows, got %d", len(tt.input.Rows), len(voucher.Rows))
			}
		})
	}
}

func TestVoucherUseCase_CreateVoucher_SequentialNumbers(t *testing.T) {
	f := newVoucherFixture(t)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		v, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
			CompanyID:   "comp-1",
			SeriesID:    "ser-a",
			Date:        "2024-03-01",
			Description: fmt.Sprintf("Verifikat %d", want),
			Rows:        simpleSale(1000),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if v.VoucherNumber != want {
			t.Errorf("expected voucher number %d, got %d", want, v.VoucherNumber)
		}
	}
}

// A failed validation must not burn a series number.
func TestVoucherUseCase_CreateVoucher_NoNumberOnFailure(t *testing.T) {
	f := newVoucherFixture(t)
	ctx := context.Background()

	_, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		CompanyID:   "comp-1",
		SeriesID:    "ser-a",
		Date:        "2024-03-01",
		Description: "Obalanserat",
		Rows: []usecase.VoucherRowInput{
			{AccountID: "acc-cash", DebitCents: 100},
			{AccountID: "acc-sales", CreditCents: 200},
		},
	})
	if !errors.Is(err, domain.ErrVoucherUnbalanced) {
		t.Fatalf("expected ErrVoucherUnbalanced, got %v", err)
	}

	v, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		CompanyID:   "comp-1",
		SeriesID:    "ser-a",
		Date:        "2024-03-01",
		Description: "Korrekt",
		Rows:        simpleSale(100),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v.VoucherNumber != 1 {
		t.Errorf("expected voucher number 1 after failed attempt, got %d", v.VoucherNumber)
	}
}

func TestVoucherUseCase_CreateVoucher_ConcurrentNumbering(t *testing.T) {
	f := newVoucherFixture(t)
	ctx := context.Background()

	const n = 20

	var wg sync.WaitGroup
	var mu sync.Mutex
	numbers := make(map[int64]bool)

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
				CompanyID:   "comp-1",
				SeriesID:    "ser-a",
				Date:        "2024-03-01",
				Description: fmt.Sprintf("Parallellt %d", i),
				Rows:        simpleSale(1000),
			})
			if err != nil {
				t.Errorf("unexpected error: %v", err)
				return
			}
			mu.Lock()
			numbers[v.VoucherNumber] = true
			mu.Unlock()
		}(i)
	}
	wg.Wait()

	if len(numbers) != n {
		t.Fatalf("expected %d distinct voucher numbers, got %d", n, len(numbers))
	}
	for want := int64(1); want <= n; want++ {
		if !numbers[want] {
			t.Errorf("missing voucher number %d, numbering has a gap", want)
		}
	}
}

func TestVoucherUseCase_CreateVoucher_SkipsEmptyAttachments(t *testing.T) {
	f := newVoucherFixture(t)

	note := "kvitto"
	v, err := f.uc.CreateVoucher(context.Background(), usecase.CreateVoucherInput{
		CompanyID:   "comp-1",
		SeriesID:    "ser-a",
		Date:        "2024-03-01",
		Description: "Med bilagor",
		Rows:        simpleSale(2500),
		Attachments: []usecase.AttachmentInput{
			{RefType: "file", RefValue: "receipts/2024/0301.pdf", Note: &note},
			{RefType: "file", RefValue: ""},
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(v.Attachments) != 1 {
		t.Fatalf("expected 1 attachment, got %d", len(v.Attachments))
	}
	if v.Attachments[0].RefValue != "receipts/2024/0301.pdf" {
		t.Errorf("unexpected attachment ref: %s", v.Attachments[0].RefValue)
	}
}

func TestVoucherUseCase_PostVoucher(t *testing.T) {
	f := newVoucherFixture(t)
	ctx := context.Background()

	v, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		CompanyID:   "comp-1",
		SeriesID:    "ser-a",
		Date:        "2024-03-01",
		Description: "Att bokföra",
		Rows:        simpleSale(5000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("post draft", func(t *testing.T) {
		posted, err := f.uc.PostVoucher(ctx, v.ID, "anna")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !posted.Posted() {
			t.Error("expected voucher to be posted")
		}
	})

	t.Run("post again", func(t *testing.T) {
		_, err := f.uc.PostVoucher(ctx, v.ID, "anna")
		if !errors.Is(err, domain.ErrAlreadyPosted) {
			t.Fatalf("expected ErrAlreadyPosted, got %v", err)
		}
	})

	t.Run("post unknown voucher", func(t *testing.T) {
		_, err := f.uc.PostVoucher(ctx, "nope", "anna")
		if !errors.Is(err, domain.ErrVoucherNotFound) {
			t.Fatalf("expected ErrVoucherNotFound, got %v", err)
		}
	})
}

func TestVoucherUseCase_PostVoucher_LockedPeriod(t *testing.T) {
	f := newVoucherFixture(t)
	ctx := context.Background()

	v, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		CompanyID:   "comp-1",
		SeriesID:    "ser-a",
		Date:        "2024-02-10",
		Description: "Utkast före lås",
		Rows:        simpleSale(5000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The period gets locked while the voucher is still a draft.
	f.lockRepo.Create(ctx, nil, &domain.PeriodLock{
		ID: "lock-1", CompanyID: "comp-1", PeriodStart: "2024-02-01", PeriodEnd: "2024-02-29",
	})

	_, err = f.uc.PostVoucher(ctx, v.ID, "anna")
	if !errors.Is(err, domain.ErrPeriodLocked) {
		t.Fatalf("expected ErrPeriodLocked, got %v", err)
	}
}

func TestVoucherUseCase_CreateCorrection(t *testing.T) {
	f := newVoucherFixture(t)
	ctx := context.Background()

	original, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		CompanyID:   "comp-1",
		SeriesID:    "ser-a",
		Date:        "2024-03-01",
		Description: "Felbokning",
		Rows:        simpleSale(7500),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("correcting a draft is rejected", func(t *testing.T) {
		_, err := f.uc.CreateCorrection(ctx, usecase.CreateCorrectionInput{
			OriginalVoucherID: original.ID,
			Date:              "2024-03-05",
		})
		if !errors.Is(err, domain.ErrNotPosted) {
			t.Fatalf("expected ErrNotPosted, got %v", err)
		}
	})

	if _, err := f.uc.PostVoucher(ctx, original.ID, "anna"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("correction reverses rows", func(t *testing.T) {
		correction, err := f.uc.CreateCorrection(ctx, usecase.CreateCorrectionInput{
			OriginalVoucherID: original.ID,
			Date:              "2024-03-05",
			Actor:             "anna",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if correction.VoucherNumber != original.VoucherNumber+1 {
			t.Errorf("expected voucher number %d, got %d", original.VoucherNumber+1, correction.VoucherNumber)
		}
		if correction.Posted() {
			t.Error("correction should start as a draft")
		}
		if correction.CorrectedVoucherID == nil || *correction.CorrectedVoucherID != original.ID {
			t.Error("correction should reference the original voucher")
		}
		if want := fmt.Sprintf("Correction (Correction of %d)", original.VoucherNumber); correction.Description != want {
			t.Errorf("expected description %q, got %q", want, correction.Description)
		}

		if len(correction.Rows) != len(original.Rows) {
			t.Fatalf("expected %d rows, got %d", len(original.Rows), len(correction.Rows))
		}
		for i, row := range correction.Rows {
			if row.DebitCents != original.Rows[i].CreditCents || row.CreditCents != original.Rows[i].DebitCents {
				t.Errorf("row %d: debit/credit not swapped", i)
			}
			if row.AccountID != original.Rows[i].AccountID {
				t.Errorf("row %d: account changed", i)
			}
		}
	})

	t.Run("original is untouched", func(t *testing.T) {
		got, err := f.uc.GetVoucher(ctx, original.ID)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.Posted() {
			t.Error("original should still be posted")
		}
		if got.Rows[0].DebitCents != 7500 {
			t.Error("original rows should be unchanged")
		}
	})

	t.Run("custom description keeps the template", func(t *testing.T) {
		desc := "Rättelse av momskonto"
		correction, err := f.uc.CreateCorrection(ctx, usecase.CreateCorrectionInput{
			OriginalVoucherID: original.ID,
			Date:              "2024-03-06",
			Description:       &desc,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !strings.HasPrefix(correction.Description, desc) {
			t.Errorf("expected description to start with %q, got %q", desc, correction.Description)
		}
		if want := fmt.Sprintf("(Correction of %d)", original.VoucherNumber); !strings.HasSuffix(correction.Description, want) {
			t.Errorf("expected description to end with %q, got %q", want, correction.Description)
		}
	})
}

func TestVoucherUseCase_CreateCorrection_LockedPeriod(t *testing.T) {
	f := newVoucherFixture(t)
	ctx := context.Background()

	original, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		CompanyID:   "comp-1",
		SeriesID:    "ser-a",
		Date:        "2024-01-15",
		Description: "Januaribokning",
		Rows:        simpleSale(5000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.uc.PostVoucher(ctx, original.ID, "anna"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f.lockRepo.Create(ctx, nil, &domain.PeriodLock{
		ID: "lock-1", CompanyID: "comp-1", PeriodStart: "2024-01-01", PeriodEnd: "2024-01-31",
	})

	// Correcting into the locked month is refused, the open month works.
	_, err = f.uc.CreateCorrection(ctx, usecase.CreateCorrectionInput{
		OriginalVoucherID: original.ID,
		Date:              "2024-01-20",
	})
	if !errors.Is(err, domain.ErrPeriodLocked) {
		t.Fatalf("expected ErrPeriodLocked, got %v", err)
	}

	if _, err := f.uc.CreateCorrection(ctx, usecase.CreateCorrectionInput{
		OriginalVoucherID: original.ID,
		Date:              "2024-02-01",
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestVoucherUseCase_ListVouchers(t *testing.T) {
	f := newVoucherFixture(t)
	ctx := context.Background()

	for _, date := range []domain.Date{"2024-03-10", "2024-01-05", "2024-02-20"} {
		if _, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
			CompanyID:   "comp-1",
			SeriesID:    "ser-a",
			Date:        date,
			Description: "V " + string(date),
			Rows:        simpleSale(1000),
		}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	t.Run("all vouchers ordered by date", func(t *testing.T) {
		vouchers, err := f.uc.ListVouchers(ctx, usecase.ListVouchersInput{CompanyID: "comp-1"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vouchers) != 3 {
			t.Fatalf("expected 3 vouchers, got %d", len(vouchers))
		}
		for i := 1; i < len(vouchers); i++ {
			if vouchers[i].Date.Before(vouchers[i-1].Date) {
				t.Error("vouchers not ordered by date")
			}
		}
	})

	t.Run("date range filter", func(t *testing.T) {
		from := domain.Date("2024-02-01")
		to := domain.Date("2024-02-29")
		vouchers, err := f.uc.ListVouchers(ctx, usecase.ListVouchersInput{
			CompanyID: "comp-1",
			FromDate:  &from,
			ToDate:    &to,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(vouchers) != 1 {
			t.Fatalf("expected 1 voucher in range, got %d", len(vouchers))
		}
		if vouchers[0].Date != "2024-02-20" {
			t.Errorf("unexpected voucher date %s", vouchers[0].Date)
		}
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := f.uc.ListVouchers(ctx, usecase.ListVouchersInput{CompanyID: "nope"})
		if !errors.Is(err, domain.ErrCompanyNotFound) {
			t.Fatalf("expected ErrCompanyNotFound, got %v", err)
		}
	})
}

func TestVoucherUseCase_AuditTrail(t *testing.T) {
	f := newVoucherFixture(t)
	ctx := context.Background()

	v, err := f.uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		CompanyID:   "comp-1",
		SeriesID:    "ser-a",
		Date:        "2024-03-01",
		Description: "Spårbar",
		Rows:        simpleSale(1000),
		Actor:       "anna",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := f.uc.PostVoucher(ctx, v.ID, "anna"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	entries := f.auditRepo.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 audit entries, got %d", len(entries))
	}
	if entries[0].Action != domain.AuditActionCreate || entries[1].Action != domain.AuditActionPost {
		t.Errorf("unexpected audit actions: %s, %s", entries[0].Action, entries[1].Action)
	}
	for _, e := range entries {
		if e.CreatedBy != "anna" {
			t.Errorf("expected actor anna, got %s", e.CreatedBy)
		}
		if e.EntityID != v.ID {
			t.Errorf("expected entity %s, got %s", v.ID, e.EntityID)
		}
	}
}

// Retries rerun the whole transaction body, so a transient failure on
// the first attempt must not leak a stale voucher pointer.
func TestVoucherUseCase_CreateVoucher_RetriesTransientFailure(t *testing.T) {
	f := newVoucherFixture(t)
	ctx := context.Background()

	attempts := 0
	f.voucherRepo.CreateFunc = func(ctx context.Context, tx usecase.Transaction, voucher *domain.Voucher) error {
		attempts++
		if attempts == 1 {
			return errTransient
		}
		f.voucherRepo.CreateFunc = nil
		return f.voucherRepo.Create(ctx, tx, voucher)
	}

	retrier := mocks.NewMockRetrier()
	retrier.RetryFunc = func(ctx context.Context, operation func() error) error {
		var err error
		for i := 0; i < 3; i++ {
			if err = operation(); err == nil {
				return nil
			}
		}
		return err
	}

	uc := usecase.NewVoucherUseCase(
		mocks.NewMockTransactionManager(),
		f.companyRepo,
		f.accountRepo,
		f.seriesRepo,
		f.voucherRepo,
		f.lockRepo,
		f.auditRepo,
		mocks.NewMockIDGenerator(),
		retrier,
	)

	v, err := uc.CreateVoucher(ctx, usecase.CreateVoucherInput{
		CompanyID:   "comp-1",
		SeriesID:    "ser-a",
		Date:        "2024-03-01",
		Description: "Försök igen",
		Rows:        simpleSale(1000),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if attempts != 2 {
		t.Errorf("expected 2 attempts, got %d", attempts)
	}
	if v == nil {
		t.Fatal("expected voucher after retry")
	}
}

var errTransient = errors.New("deadlock detected")
