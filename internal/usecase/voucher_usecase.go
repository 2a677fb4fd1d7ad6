package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/nordbok/bokforing/internal/domain"
)

// VoucherUseCase handles the voucher lifecycle: creation with series
// numbering, posting, and correction vouchers.
type VoucherUseCase struct {
	txManager   TransactionManager
	companyRepo CompanyRepository
	accountRepo AccountRepository
	seriesRepo  SeriesRepository
	voucherRepo VoucherRepository
	lockRepo    PeriodLockRepository
	auditRepo   AuditRepository
	idGen       IDGenerator
	retrier     Retrier
}

// NewVoucherUseCase creates a new VoucherUseCase.
func NewVoucherUseCase(
	txManager TransactionManager,
	companyRepo CompanyRepository,
	accountRepo AccountRepository,
	seriesRepo SeriesRepository,
	voucherRepo VoucherRepository,
	lockRepo PeriodLockRepository,
	auditRepo AuditRepository,
	idGen IDGenerator,
	retrier Retrier,
) *VoucherUseCase {
	return &VoucherUseCase{
		txManager:   txManager,
		companyRepo: companyRepo,
		accountRepo: accountRepo,
		seriesRepo:  seriesRepo,
		voucherRepo: voucherRepo,
		lockRepo:    lockRepo,
		auditRepo:   auditRepo,
		idGen:       idGen,
		retrier:     retrier,
	}
}

// VoucherRowInput represents one debit/credit line of a new voucher.
type VoucherRowInput struct {
	AccountID   string
	Description *string
	DebitCents  int64
	CreditCents int64
	VatCode     *string
}

// AttachmentInput represents a document reference on a new voucher.
type AttachmentInput struct {
	RefType  string
	RefValue string
	Note     *string
}

// CreateVoucherInput represents input for creating a voucher.
type CreateVoucherInput struct {
	CompanyID    string
	SeriesID     string
	Date         domain.Date
	Description  string
	Counterparty *string
	Rows         []VoucherRowInput
	Attachments  []AttachmentInput
	Actor        string
}

// CreateVoucher validates the rows, checks the period lock set, draws
// the next number from the series and persists a draft voucher. The
// whole write is one atomic unit; validation failures allocate no
// number.
func (uc *VoucherUseCase) CreateVoucher(ctx context.Context, input CreateVoucherInput) (*domain.Voucher, error) {
	return uc.createVoucher(ctx, input, nil)
}

func (uc *VoucherUseCase) createVoucher(ctx context.Context, input CreateVoucherInput, correctedVoucherID *string) (*domain.Voucher, error) {
	if err := input.Date.Validate(); err != nil {
		return nil, err
	}

	rows := make([]domain.VoucherRow, len(input.Rows))
	for i, r := range input.Rows {
		rows[i] = domain.VoucherRow{
			AccountID:   r.AccountID,
			Description: r.Description,
			DebitCents:  r.DebitCents,
			CreditCents: r.CreditCents,
			VatCode:     r.VatCode,
		}
	}

	// Validate before numbering: a voucher that fails validation must
	// not consume a series number.
	if err := domain.ValidateRows(rows); err != nil {
		return nil, err
	}

	if err := uc.validateAccounts(ctx, input.CompanyID, rows); err != nil {
		return nil, err
	}

	series, err := uc.seriesRepo.GetByID(ctx, input.SeriesID)
	if err != nil {
		return nil, err
	}

	if series.CompanyID != input.CompanyID {
		return nil, domain.ErrSeriesNotFound
	}

	actor := input.Actor
	if actor == "" {
		actor = DefaultActor
	}

	var voucher *domain.Voucher

	err = uc.retrier.Retry(ctx, func() error {
		voucher = nil

		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		// The company row lock is the consistency boundary between
		// voucher writes and period lock inserts.
		if _, err := uc.companyRepo.GetByIDForUpdate(ctx, tx, input.CompanyID); err != nil {
			return err
		}

		locked, err := uc.lockRepo.AnyCovering(ctx, tx, input.CompanyID, input.Date)
		if err != nil {
			return err
		}
		if locked {
			return fmt.Errorf("%w: %s", domain.ErrPeriodLocked, input.Date)
		}

		number, err := uc.seriesRepo.AllocateNumber(ctx, tx, input.SeriesID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		voucherID := uc.idGen.Generate()

		v := &domain.Voucher{
			ID:                 voucherID,
			CompanyID:          input.CompanyID,
			SeriesID:           input.SeriesID,
			VoucherNumber:      number,
			Date:               input.Date,
			Description:        input.Description,
			Counterparty:       input.Counterparty,
			CreatedAt:          now,
			CreatedBy:          actor,
			CorrectedVoucherID: correctedVoucherID,
			Rows:               make([]domain.VoucherRow, len(rows)),
		}

		for i, row := range rows {
			row.ID = uc.idGen.Generate()
			row.VoucherID = voucherID
			v.Rows[i] = row
		}

		for _, a := range input.Attachments {
			if a.RefValue == "" {
				continue
			}
			v.Attachments = append(v.Attachments, domain.Attachment{
				ID:        uc.idGen.Generate(),
				VoucherID: voucherID,
				RefType:   a.RefType,
				RefValue:  a.RefValue,
				Note:      a.Note,
				CreatedAt: now,
			})
		}

		if err := uc.voucherRepo.Create(ctx, tx, v); err != nil {
			return err
		}

		action := domain.AuditActionCreate
		if correctedVoucherID != nil {
			action = domain.AuditActionCorrect
		}

		entry := &domain.AuditEntry{
			ID:         uc.idGen.Generate(),
			CompanyID:  input.CompanyID,
			EntityType: domain.AuditEntityVoucher,
			EntityID:   voucherID,
			Action:     action,
			Payload:    map[string]any{"voucher_number": number},
			CreatedAt:  now,
			CreatedBy:  actor,
		}

		if err := uc.auditRepo.Create(ctx, tx, entry); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		voucher = v

		return nil
	})
	if err != nil {
		return nil, err
	}

	return voucher, nil
}

// PostVoucher finalizes a draft voucher. The Draft -> Posted transition
// is the voucher's only state change and is irreversible.
func (uc *VoucherUseCase) PostVoucher(ctx context.Context, voucherID, actor string) (*domain.Voucher, error) {
	if actor == "" {
		actor = DefaultActor
	}

	var voucher *domain.Voucher

	err := uc.retrier.Retry(ctx, func() error {
		voucher = nil

		tx, err := uc.txManager.Begin(ctx)
		if err != nil {
			return err
		}
		defer tx.Rollback(ctx)

		v, err := uc.voucherRepo.GetByIDForUpdate(ctx, tx, voucherID)
		if err != nil {
			return err
		}

		if v.Posted() {
			return domain.ErrAlreadyPosted
		}

		// Inputs may have been tampered with between creation and
		// posting in a multi-step workflow; re-check the balance.
		if err := domain.ValidateRows(v.Rows); err != nil {
			return err
		}

		if _, err := uc.companyRepo.GetByIDForUpdate(ctx, tx, v.CompanyID); err != nil {
			return err
		}

		locked, err := uc.lockRepo.AnyCovering(ctx, tx, v.CompanyID, v.Date)
		if err != nil {
			return err
		}
		if locked {
			return fmt.Errorf("%w: %s", domain.ErrPeriodLocked, v.Date)
		}

		now := time.Now().UTC()
		if err := uc.voucherRepo.MarkPosted(ctx, tx, voucherID, now); err != nil {
			return err
		}

		entry := &domain.AuditEntry{
			ID:         uc.idGen.Generate(),
			CompanyID:  v.CompanyID,
			EntityType: domain.AuditEntityVoucher,
			EntityID:   voucherID,
			Action:     domain.AuditActionPost,
			Payload:    map[string]any{"voucher_number": v.VoucherNumber},
			CreatedAt:  now,
			CreatedBy:  actor,
		}

		if err := uc.auditRepo.Create(ctx, tx, entry); err != nil {
			return err
		}

		if err := tx.Commit(ctx); err != nil {
			return err
		}

		v.PostedAt = &now
		voucher = v

		return nil
	})
	if err != nil {
		return nil, err
	}

	return voucher, nil
}

// CreateCorrectionInput represents input for creating a correction
// voucher.
type CreateCorrectionInput struct {
	OriginalVoucherID string
	Date              domain.Date
	Description       *string
	Actor             string
}

// CreateCorrection builds a reversing voucher from a posted original:
// same company, series and accounts, debit and credit swapped. The
// correction is created as a draft through the normal creation path,
// so numbering, validation and lock checks all apply. The original is
// never touched.
func (uc *VoucherUseCase) CreateCorrection(ctx context.Context, input CreateCorrectionInput) (*domain.Voucher, error) {
	original, err := uc.voucherRepo.GetByID(ctx, input.OriginalVoucherID)
	if err != nil {
		return nil, err
	}

	if !original.Posted() {
		return nil, domain.ErrNotPosted
	}

	description := "Correction"
	if input.Description != nil && *input.Description != "" {
		description = *input.Description
	}

	reversed := domain.ReverseRows(original.Rows)
	rowInputs := make([]VoucherRowInput, len(reversed))
	for i, row := range reversed {
		rowInputs[i] = VoucherRowInput{
			AccountID:   row.AccountID,
			Description: row.Description,
			DebitCents:  row.DebitCents,
			CreditCents: row.CreditCents,
			VatCode:     row.VatCode,
		}
	}

	return uc.createVoucher(ctx, CreateVoucherInput{
		CompanyID:   original.CompanyID,
		SeriesID:    original.SeriesID,
		Date:        input.Date,
		Description: fmt.Sprintf("%s (Correction of %d)", description, original.VoucherNumber),
		Rows:        rowInputs,
		Actor:       input.Actor,
	}, &original.ID)
}

// GetVoucher retrieves a voucher with its rows and attachments.
func (uc *VoucherUseCase) GetVoucher(ctx context.Context, id string) (*domain.Voucher, error) {
	return uc.voucherRepo.GetByID(ctx, id)
}

// ListVouchersInput represents input for listing vouchers.
type ListVouchersInput struct {
	CompanyID string
	FromDate  *domain.Date
	ToDate    *domain.Date
}

// ListVouchers lists a company's vouchers with their rows, drafts
// included.
func (uc *VoucherUseCase) ListVouchers(ctx context.Context, input ListVouchersInput) ([]*domain.Voucher, error) {
	if _, err := uc.companyRepo.GetByID(ctx, input.CompanyID); err != nil {
		return nil, err
	}

	return uc.voucherRepo.ListByCompany(ctx, input.CompanyID, input.FromDate, input.ToDate)
}

// ListSeries lists a company's voucher series.
func (uc *VoucherUseCase) ListSeries(ctx context.Context, companyID string) ([]*domain.VoucherSeries, error) {
	if _, err := uc.companyRepo.GetByID(ctx, companyID); err != nil {
		return nil, err
	}

	return uc.seriesRepo.ListByCompany(ctx, companyID)
}

// validateAccounts checks that every referenced account exists, belongs
// to the company, and is active.
func (uc *VoucherUseCase) validateAccounts(ctx context.Context, companyID string, rows []domain.VoucherRow) error {
	seen := make(map[string]bool)

	var ids []string
	for _, row := range rows {
		if !seen[row.AccountID] {
			seen[row.AccountID] = true
			ids = append(ids, row.AccountID)
		}
	}

	accounts, err := uc.accountRepo.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}

	byID := make(map[string]*domain.Account, len(accounts))
	for _, a := range accounts {
		byID[a.ID] = a
	}

	for _, id := range ids {
		account, ok := byID[id]
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}

		if account.CompanyID != companyID {
			return fmt.Errorf("%w: %s", domain.ErrAccountNotFound, id)
		}

		if !account.IsActive {
			return fmt.Errorf("%w: account %d is inactive", domain.ErrVoucherUnbalanced, account.Number)
		}
	}

	return nil
}
