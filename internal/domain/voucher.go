package domain

import (
	"fmt"
	"time"
)

// Voucher is a journal entry: a dated, numbered group of debit/credit
// rows. A voucher is created as a draft with its number already
// assigned and transitions exactly once to posted, after which it is
// immutable.
type Voucher struct {
	ID                 string
	CompanyID          string
	SeriesID           string
	VoucherNumber      int64
	Date               Date
	Description        string
	Counterparty       *string
	CreatedAt          time.Time
	CreatedBy          string
	PostedAt           *time.Time
	CorrectedVoucherID *string
	Rows               []VoucherRow
	Attachments        []Attachment
}

// VoucherRow is a single debit/credit line. Amounts are integer
// minor-currency units; debit and credit are independent non-negative
// values.
type VoucherRow struct {
	ID          string
	VoucherID   string
	AccountID   string
	Description *string
	DebitCents  int64
	CreditCents int64
	VatCode     *string
}

// Attachment references a receipt or other document backing a voucher.
type Attachment struct {
	ID        string
	VoucherID string
	RefType   string
	RefValue  string
	Note      *string
	CreatedAt time.Time
}

// Posted reports whether the voucher has been finalized.
func (v *Voucher) Posted() bool {
	return v.PostedAt != nil
}

// TotalCents is the voucher's economic value: the sum of debit amounts,
// which equals the sum of credit amounts for any valid voucher.
func (v *Voucher) TotalCents() int64 {
	var total int64
	for _, row := range v.Rows {
		total += row.DebitCents
	}

	return total
}

// ValidateRows checks the row-level and whole-voucher balance
// invariants: at least one row, no negative amounts, no row with both
// sides zero, and total debits equal to total credits. Account
// existence and activity are checked separately against the chart of
// accounts.
func ValidateRows(rows []VoucherRow) error {
	if len(rows) == 0 {
		return fmt.Errorf("%w: voucher has no rows", ErrVoucherUnbalanced)
	}

	var debitTotal, creditTotal int64

	for i, row := range rows {
		if row.DebitCents < 0 || row.CreditCents < 0 {
			return fmt.Errorf("%w: row %d carries a negative amount", ErrVoucherUnbalanced, i)
		}

		if row.DebitCents == 0 && row.CreditCents == 0 {
			return fmt.Errorf("%w: row %d has neither debit nor credit", ErrVoucherUnbalanced, i)
		}

		debitTotal += row.DebitCents
		creditTotal += row.CreditCents
	}

	if debitTotal != creditTotal {
		return fmt.Errorf("%w: debits %d, credits %d", ErrVoucherUnbalanced, debitTotal, creditTotal)
	}

	return nil
}

// ReverseRows returns a reversing copy of rows with debit and credit
// amounts swapped, referencing the same accounts.
func ReverseRows(rows []VoucherRow) []VoucherRow {
	reversed := make([]VoucherRow, len(rows))
	for i, row := range rows {
		reversed[i] = VoucherRow{
			AccountID:   row.AccountID,
			Description: row.Description,
			DebitCents:  row.CreditCents,
			CreditCents: row.DebitCents,
			VatCode:     row.VatCode,
		}
	}

	return reversed
}
