package export_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nordbok/bokforing/internal/domain"
	"github.com/nordbok/bokforing/internal/export"
)

func TestSIE(t *testing.T) {
	accounts := []*domain.Account{
		{ID: "acc-cash", Number: 1910, Name: "Kassa"},
		{ID: "acc-sales", Number: 3001, Name: "Försäljning"},
	}

	vouchers := []*domain.Voucher{
		{
			ID:            "v-1",
			VoucherNumber: 1,
			Date:          "2024-03-01",
			Description:   "Kontantförsäljning",
			Rows: []domain.VoucherRow{
				{AccountID: "acc-cash", DebitCents: 12550},
				{AccountID: "acc-sales", CreditCents: 12550},
			},
		},
	}

	out := string(export.SIE(accounts, vouchers))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 11)

	assert.Equal(t, "#FLAGGA 0", lines[0])
	assert.Equal(t, "#PROGRAM bokforing 0.1", lines[1])
	assert.Equal(t, "#FORMAT PC8", lines[2])
	assert.Equal(t, "#SIETYP 4", lines[3])
	assert.Equal(t, `#KONTO 1910 "Kassa"`, lines[4])
	assert.Equal(t, `#KONTO 3001 "Försäljning"`, lines[5])
	assert.Equal(t, `#VER A 1 20240301 "Kontantförsäljning"`, lines[6])
	assert.Equal(t, "{", lines[7])
	assert.Equal(t, "  #TRANS 1910 {} 125.50", lines[8])
	assert.Equal(t, "  #TRANS 3001 {} -125.50", lines[9])
	assert.Equal(t, "}", lines[10])

	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestSIE_NoVouchers(t *testing.T) {
	out := string(export.SIE([]*domain.Account{{ID: "acc-cash", Number: 1910, Name: "Kassa"}}, nil))

	assert.Contains(t, out, "#SIETYP 4")
	assert.Contains(t, out, `#KONTO 1910 "Kassa"`)
	assert.NotContains(t, out, "#VER")
}
