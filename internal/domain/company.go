package domain

import "time"

// Company owns a chart of accounts, voucher series, vouchers and period
// locks. Companies are never deleted.
type Company struct {
	ID              string
	Name            string
	OrgNumber       *string
	FiscalYearStart Date
	FiscalYearEnd   Date
	CreatedAt       time.Time
}
