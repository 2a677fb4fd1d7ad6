package domain

// VoucherSeries is a named numbering sequence. NextNumber is the sole
// source of voucher numbers for the series and only ever moves forward.
type VoucherSeries struct {
	ID          string
	CompanyID   string
	Code        string
	Description string
	NextNumber  int64
}
