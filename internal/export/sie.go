package export

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/nordbok/bokforing/internal/domain"
)

// SIE renders accounts and vouchers as a SIE type 4 document. Amounts
// are written in currency units with two decimals; the ledger core
// itself only ever deals in integer cents.
func SIE(accounts []*domain.Account, vouchers []*domain.Voucher) []byte {
	lines := []string{
		"#FLAGGA 0",
		"#PROGRAM bokforing 0.1",
		"#FORMAT PC8",
		"#SIETYP 4",
	}

	accountNumbers := make(map[string]int64, len(accounts))
	for _, account := range accounts {
		accountNumbers[account.ID] = account.Number
		lines = append(lines, fmt.Sprintf("#KONTO %d \"%s\"", account.Number, account.Name))
	}

	for _, v := range vouchers {
		lines = append(lines, fmt.Sprintf("#VER A %d %s \"%s\"", v.VoucherNumber, sieDate(v.Date), v.Description))
		lines = append(lines, "{")

		for _, row := range v.Rows {
			amount := decimal.New(row.DebitCents-row.CreditCents, -2)
			lines = append(lines, fmt.Sprintf("  #TRANS %d {} %s", accountNumbers[row.AccountID], amount.StringFixed(2)))
		}

		lines = append(lines, "}")
	}

	return []byte(strings.Join(lines, "\n") + "\n")
}

// sieDate renders an ISO date in the compact YYYYMMDD form the SIE
// format uses.
func sieDate(d domain.Date) string {
	return strings.ReplaceAll(string(d), "-", "")
}
