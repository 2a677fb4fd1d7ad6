package domain

// JournalLine is one voucher in a journal listing. TotalCents is the
// sum of the voucher's debit amounts.
type JournalLine struct {
	VoucherID     string
	VoucherNumber int64
	Date          Date
	Description   string
	TotalCents    int64
}

// LedgerLine is one account movement in a general ledger report.
// BalanceCents is the running balance after applying this line.
type LedgerLine struct {
	Date          Date
	VoucherNumber int64
	Description   string
	DebitCents    int64
	CreditCents   int64
	BalanceCents  int64
}
