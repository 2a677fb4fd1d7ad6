package dto

import (
	"time"

	"github.com/nordbok/bokforing/internal/domain"
)

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

// CompanyResponse represents a company in API responses.
type CompanyResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	OrgNumber       *string   `json:"org_number,omitempty"`
	FiscalYearStart string    `json:"fiscal_year_start"`
	FiscalYearEnd   string    `json:"fiscal_year_end"`
	CreatedAt       time.Time `json:"created_at"`
}

// CompanyFromDomain converts a domain company to a response.
func CompanyFromDomain(c *domain.Company) *CompanyResponse {
	return &CompanyResponse{
		ID:              c.ID,
		Name:            c.Name,
		OrgNumber:       c.OrgNumber,
		FiscalYearStart: string(c.FiscalYearStart),
		FiscalYearEnd:   string(c.FiscalYearEnd),
		CreatedAt:       c.CreatedAt,
	}
}

// CompaniesFromDomain converts domain companies to responses.
func CompaniesFromDomain(companies []*domain.Company) []*CompanyResponse {
	result := make([]*CompanyResponse, len(companies))
	for i, c := range companies {
		result[i] = CompanyFromDomain(c)
	}
	return result
}

// AccountResponse represents an account in API responses.
type AccountResponse struct {
	ID        string    `json:"id"`
	CompanyID string    `json:"company_id"`
	Number    int64     `json:"number"`
	Name      string    `json:"name"`
	Type      string    `json:"type"`
	VatCode   *string   `json:"vat_code,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

// AccountFromDomain converts a domain account to a response.
func AccountFromDomain(a *domain.Account) *AccountResponse {
	return &AccountResponse{
		ID:        a.ID,
		CompanyID: a.CompanyID,
		Number:    a.Number,
		Name:      a.Name,
		Type:      string(a.Type),
		VatCode:   a.VatCode,
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

// AccountsFromDomain converts domain accounts to responses.
func AccountsFromDomain(accounts []*domain.Account) []*AccountResponse {
	result := make([]*AccountResponse, len(accounts))
	for i, a := range accounts {
		result[i] = AccountFromDomain(a)
	}
	return result
}

// SeriesResponse represents a voucher series in API responses.
type SeriesResponse struct {
	ID          string `json:"id"`
	CompanyID   string `json:"company_id"`
	Code        string `json:"code"`
	Description string `json:"description"`
	NextNumber  int64  `json:"next_number"`
}

// SeriesFromDomain converts a domain series to a response.
func SeriesFromDomain(s *domain.VoucherSeries) *SeriesResponse {
	return &SeriesResponse{
		ID:          s.ID,
		CompanyID:   s.CompanyID,
		Code:        s.Code,
		Description: s.Description,
		NextNumber:  s.NextNumber,
	}
}

// SeriesListFromDomain converts domain series to responses.
func SeriesListFromDomain(series []*domain.VoucherSeries) []*SeriesResponse {
	result := make([]*SeriesResponse, len(series))
	for i, s := range series {
		result[i] = SeriesFromDomain(s)
	}
	return result
}

// VoucherRowResponse represents a voucher row in API responses.
type VoucherRowResponse struct {
	ID          string  `json:"id"`
	AccountID   string  `json:"account_id"`
	Description *string `json:"description,omitempty"`
	DebitCents  int64   `json:"debit_cents"`
	CreditCents int64   `json:"credit_cents"`
	VatCode     *string `json:"vat_code,omitempty"`
}

// AttachmentResponse represents an attachment in API responses.
type AttachmentResponse struct {
	ID        string    `json:"id"`
	RefType   string    `json:"ref_type"`
	RefValue  string    `json:"ref_value"`
	Note      *string   `json:"note,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// VoucherResponse represents a voucher in API responses.
type VoucherResponse struct {
	ID                 string               `json:"id"`
	CompanyID          string               `json:"company_id"`
	SeriesID           string               `json:"series_id"`
	VoucherNumber      int64                `json:"voucher_number"`
	Date               string               `json:"date"`
	Description        string               `json:"description"`
	Counterparty       *string              `json:"counterparty,omitempty"`
	CreatedAt          time.Time            `json:"created_at"`
	CreatedBy          string               `json:"created_by"`
	PostedAt           *time.Time           `json:"posted_at,omitempty"`
	CorrectedVoucherID *string              `json:"corrected_voucher_id,omitempty"`
	Rows               []VoucherRowResponse `json:"rows"`
	Attachments        []AttachmentResponse `json:"attachments,omitempty"`
}

// VoucherFromDomain converts a domain voucher to a response.
func VoucherFromDomain(v *domain.Voucher) *VoucherResponse {
	rows := make([]VoucherRowResponse, len(v.Rows))
	for i, row := range v.Rows {
		rows[i] = VoucherRowResponse{
			ID:          row.ID,
			AccountID:   row.AccountID,
			Description: row.Description,
			DebitCents:  row.DebitCents,
			CreditCents: row.CreditCents,
			VatCode:     row.VatCode,
		}
	}

	var attachments []AttachmentResponse
	for _, a := range v.Attachments {
		attachments = append(attachments, AttachmentResponse{
			ID:        a.ID,
			RefType:   a.RefType,
			RefValue:  a.RefValue,
			Note:      a.Note,
			CreatedAt: a.CreatedAt,
		})
	}

	return &VoucherResponse{
		ID:                 v.ID,
		CompanyID:          v.CompanyID,
		SeriesID:           v.SeriesID,
		VoucherNumber:      v.VoucherNumber,
		Date:               string(v.Date),
		Description:        v.Description,
		Counterparty:       v.Counterparty,
		CreatedAt:          v.CreatedAt,
		CreatedBy:          v.CreatedBy,
		PostedAt:           v.PostedAt,
		CorrectedVoucherID: v.CorrectedVoucherID,
		Rows:               rows,
		Attachments:        attachments,
	}
}

// VouchersFromDomain converts domain vouchers to responses.
func VouchersFromDomain(vouchers []*domain.Voucher) []*VoucherResponse {
	result := make([]*VoucherResponse, len(vouchers))
	for i, v := range vouchers {
		result[i] = VoucherFromDomain(v)
	}
	return result
}

// PeriodLockResponse represents a period lock in API responses.
type PeriodLockResponse struct {
	ID          string    `json:"id"`
	CompanyID   string    `json:"company_id"`
	PeriodStart string    `json:"period_start"`
	PeriodEnd   string    `json:"period_end"`
	LockedAt    time.Time `json:"locked_at"`
	LockedBy    string    `json:"locked_by"`
}

// PeriodLockFromDomain converts a domain period lock to a response.
func PeriodLockFromDomain(l *domain.PeriodLock) *PeriodLockResponse {
	return &PeriodLockResponse{
		ID:          l.ID,
		CompanyID:   l.CompanyID,
		PeriodStart: string(l.PeriodStart),
		PeriodEnd:   string(l.PeriodEnd),
		LockedAt:    l.LockedAt,
		LockedBy:    l.LockedBy,
	}
}

// PeriodLocksFromDomain converts domain period locks to responses.
func PeriodLocksFromDomain(locks []*domain.PeriodLock) []*PeriodLockResponse {
	result := make([]*PeriodLockResponse, len(locks))
	for i, l := range locks {
		result[i] = PeriodLockFromDomain(l)
	}
	return result
}

// JournalLineResponse represents a journal report line.
type JournalLineResponse struct {
	VoucherID     string `json:"voucher_id"`
	VoucherNumber int64  `json:"voucher_number"`
	Date          string `json:"date"`
	Description   string `json:"description"`
	TotalCents    int64  `json:"total_cents"`
}

// JournalFromDomain converts journal lines to responses.
func JournalFromDomain(lines []*domain.JournalLine) []*JournalLineResponse {
	result := make([]*JournalLineResponse, len(lines))
	for i, l := range lines {
		result[i] = &JournalLineResponse{
			VoucherID:     l.VoucherID,
			VoucherNumber: l.VoucherNumber,
			Date:          string(l.Date),
			Description:   l.Description,
			TotalCents:    l.TotalCents,
		}
	}
	return result
}

// LedgerLineResponse represents a general ledger report line.
type LedgerLineResponse struct {
	Date          string `json:"date"`
	VoucherNumber int64  `json:"voucher_number"`
	Description   string `json:"description"`
	DebitCents    int64  `json:"debit_cents"`
	CreditCents   int64  `json:"credit_cents"`
	BalanceCents  int64  `json:"balance_cents"`
}

// LedgerFromDomain converts ledger lines to responses.
func LedgerFromDomain(lines []*domain.LedgerLine) []*LedgerLineResponse {
	result := make([]*LedgerLineResponse, len(lines))
	for i, l := range lines {
		result[i] = &LedgerLineResponse{
			Date:          string(l.Date),
			VoucherNumber: l.VoucherNumber,
			Description:   l.Description,
			DebitCents:    l.DebitCents,
			CreditCents:   l.CreditCents,
			BalanceCents:  l.BalanceCents,
		}
	}
	return result
}

// ExportResponse represents the outcome of an export.
type ExportResponse struct {
	Message string `json:"message"`
}
