package domain

import (
	"fmt"
	"time"
)

// AccountType classifies an account in the chart of accounts.
type AccountType string

const (
	AccountTypeAsset     AccountType = "Asset"
	AccountTypeLiability AccountType = "Liability"
	AccountTypeEquity    AccountType = "Equity"
	AccountTypeIncome    AccountType = "Income"
	AccountTypeExpense   AccountType = "Expense"
)

// Valid reports whether t is one of the known account types.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}

	return false
}

// Account is an entry in a company's chart of accounts. Accounts are
// deactivated, never deleted, so historical voucher rows always resolve.
type Account struct {
	ID        string
	CompanyID string
	Number    int64
	Name      string
	Type      AccountType
	VatCode   *string
	IsActive  bool
	CreatedAt time.Time
}

// Validate checks the account's own invariants.
func (a *Account) Validate() error {
	if !a.Type.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidAccountType, a.Type)
	}

	if a.Number <= 0 {
		return fmt.Errorf("%w: must be positive, got %d", ErrInvalidAccountNumber, a.Number)
	}

	return nil
}
