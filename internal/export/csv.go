// Package export renders already-validated report data into the flat
// file formats the surrounding tooling consumes. It performs no
// validation of its own.
package export

import (
	"fmt"
	"strings"

	"github.com/nordbok/bokforing/internal/domain"
)

// VoucherCSV renders a company's vouchers into two CSV documents: one
// line per voucher and one line per voucher row.
func VoucherCSV(vouchers []*domain.Voucher) (voucherFile, rowFile []byte) {
	voucherLines := []string{"id,voucher_number,date,description,counterparty,posted_at"}
	rowLines := []string{"voucher_id,account_id,description,debit_cents,credit_cents,vat_code"}

	for _, v := range vouchers {
		postedAt := ""
		if v.PostedAt != nil {
			postedAt = v.PostedAt.UTC().Format("2006-01-02T15:04:05Z07:00")
		}

		voucherLines = append(voucherLines, fmt.Sprintf("%s,%d,%s,%s,%s,%s",
			v.ID,
			v.VoucherNumber,
			v.Date,
			sanitizeField(v.Description),
			sanitizeField(deref(v.Counterparty)),
			postedAt,
		))

		for _, row := range v.Rows {
			rowLines = append(rowLines, fmt.Sprintf("%s,%s,%s,%d,%d,%s",
				v.ID,
				row.AccountID,
				sanitizeField(deref(row.Description)),
				row.DebitCents,
				row.CreditCents,
				deref(row.VatCode),
			))
		}
	}

	return []byte(strings.Join(voucherLines, "\n")), []byte(strings.Join(rowLines, "\n"))
}

// sanitizeField keeps free text from breaking the comma-separated
// layout.
func sanitizeField(s string) string {
	return strings.ReplaceAll(s, ",", " ")
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return *s
}
