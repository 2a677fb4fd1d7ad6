package dto

import (
	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/usecase"
)

// CreateCompanyRequest represents a request to create a company.
type CreateCompanyRequest struct {
	Name            string  `json:"name"`
	OrgNumber       *string `json:"org_number,omitempty"`
	FiscalYearStart *string `json:"fiscal_year_start,omitempty"`
	FiscalYearEnd   *string `json:"fiscal_year_end,omitempty"`
	Actor           string  `json:"actor,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCompanyRequest) ToUseCaseInput() usecase.CreateCompanyInput {
	return usecase.CreateCompanyInput{
		Name:            r.Name,
		OrgNumber:       r.OrgNumber,
		FiscalYearStart: datePtr(r.FiscalYearStart),
		FiscalYearEnd:   datePtr(r.FiscalYearEnd),
		Actor:           r.Actor,
	}
}

// UpsertAccountRequest represents a request to create or update an
// account.
type UpsertAccountRequest struct {
	ID       *string `json:"id,omitempty"`
	Number   int64   `json:"number"`
	Name     string  `json:"name"`
	Type     string  `json:"type"`
	VatCode  *string `json:"vat_code,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// ToUseCaseInput converts to use case input. Accounts are active
// unless the request says otherwise.
func (r *UpsertAccountRequest) ToUseCaseInput(companyID string) usecase.UpsertAccountInput {
	isActive := true
	if r.IsActive != nil {
		isActive = *r.IsActive
	}

	return usecase.UpsertAccountInput{
		ID:        r.ID,
		CompanyID: companyID,
		Number:    r.Number,
		Name:      r.Name,
		Type:      domain.AccountType(r.Type),
		VatCode:   r.VatCode,
		IsActive:  isActive,
	}
}

// VoucherRowRequest represents one debit/credit line of a new voucher.
type VoucherRowRequest struct {
	AccountID   string  `json:"account_id"`
	Description *string `json:"description,omitempty"`
	DebitCents  int64   `json:"debit_cents"`
	CreditCents int64   `json:"credit_cents"`
	VatCode     *string `json:"vat_code,omitempty"`
}

// AttachmentRequest represents a document reference on a new voucher.
type AttachmentRequest struct {
	RefType  string  `json:"ref_type"`
	RefValue string  `json:"ref_value"`
	Note     *string `json:"note,omitempty"`
}

// CreateVoucherRequest represents a request to create a voucher.
type CreateVoucherRequest struct {
	SeriesID     string              `json:"series_id"`
	Date         string              `json:"date"`
	Description  string              `json:"description"`
	Counterparty *string             `json:"counterparty,omitempty"`
	Rows         []VoucherRowRequest `json:"rows"`
	Attachments  []AttachmentRequest `json:"attachments,omitempty"`
	Actor        string              `json:"actor,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateVoucherRequest) ToUseCaseInput(companyID string) usecase.CreateVoucherInput {
	rows := make([]usecase.VoucherRowInput, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = usecase.VoucherRowInput{
			AccountID:   row.AccountID,
			Description: row.Description,
			DebitCents:  row.DebitCents,
			CreditCents: row.CreditCents,
			VatCode:     row.VatCode,
		}
	}

	attachments := make([]usecase.AttachmentInput, len(r.Attachments))
	for i, a := range r.Attachments {
		attachments[i] = usecase.AttachmentInput{
			RefType:  a.RefType,
			RefValue: a.RefValue,
			Note:     a.Note,
		}
	}

	return usecase.CreateVoucherInput{
		CompanyID:    companyID,
		SeriesID:     r.SeriesID,
		Date:         domain.Date(r.Date),
		Description:  r.Description,
		Counterparty: r.Counterparty,
		Rows:         rows,
		Attachments:  attachments,
		Actor:        r.Actor,
	}
}

// PostVoucherRequest represents a request to post a voucher.
type PostVoucherRequest struct {
	Actor string `json:"actor,omitempty"`
}

// CreateCorrectionRequest represents a request to create a correction
// voucher.
type CreateCorrectionRequest struct {
	Date        string  `json:"date"`
	Description *string `json:"description,omitempty"`
	Actor       string  `json:"actor,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *CreateCorrectionRequest) ToUseCaseInput(originalVoucherID string) usecase.CreateCorrectionInput {
	return usecase.CreateCorrectionInput{
		OriginalVoucherID: originalVoucherID,
		Date:              domain.Date(r.Date),
		Description:       r.Description,
		Actor:             r.Actor,
	}
}

// LockPeriodRequest represents a request to lock a period.
type LockPeriodRequest struct {
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
	Actor       string `json:"actor,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *LockPeriodRequest) ToUseCaseInput(companyID string) usecase.LockPeriodInput {
	return usecase.LockPeriodInput{
		CompanyID:   companyID,
		PeriodStart: domain.Date(r.PeriodStart),
		PeriodEnd:   domain.Date(r.PeriodEnd),
		Actor:       r.Actor,
	}
}

// ExportRequest represents a request to export a company's books.
type ExportRequest struct {
	Path string `json:"path,omitempty"`
}

func datePtr(s *string) *domain.Date {
	if s == nil {
		return nil
	}

	d := domain.Date(*s)

	return &d
}
