package sequence

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatPONumber(t *testing.T) {
	tests := []struct {
		name        string
		companyCode string
		year        int
		n           int
		want        string
	}{
		{"fifth order", "WASCO", 2024, 5, "PO/WASCO/2024-25/0005"},
		{"lowercase code uppercased", "wasco", 2024, 5, "PO/WASCO/2024-25/0005"},
		{"century rollover band", "WASCO", 2099, 1, "PO/WASCO/2099-00/0001"},
		{"four digit padding", "ACME", 2026, 1234, "PO/ACME/2026-27/1234"},
		{"overflow keeps digits", "ACME", 2026, 10001, "PO/ACME/2026-27/10001"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPONumber(tt.companyCode, tt.year, tt.n))
		})
	}
}

func TestFormatItemCode(t *testing.T) {
	assert.Equal(t, "ITM/001/2026", FormatItemCode(1, 2026))
	assert.Equal(t, "ITM/042/2026", FormatItemCode(42, 2026))
	assert.Equal(t, "ITM/1000/2026", FormatItemCode(1000, 2026))
}

func TestFormatPartyCodes(t *testing.T) {
	assert.Equal(t, "SUP/001", FormatSupplierCode(1))
	assert.Equal(t, "SUP/099", FormatSupplierCode(99))
	assert.Equal(t, "BUY/014", FormatBuyerCode(14))

	code, err := FormatPartyCode(ScopeSupplier, 7)
	require.NoError(t, err)
	assert.Equal(t, "SUP/007", code)

	_, err = FormatPartyCode(ScopePurchaseOrder, 7)
	require.Error(t, err)
}

func TestScopeKey(t *testing.T) {
	assert.Equal(t, "purchase_order:2026", ScopePurchaseOrder.Key(2026))
	assert.Equal(t, "sale_item:2026", ScopeSaleItem.Key(2026))
	assert.Equal(t, "supplier", ScopeSupplier.Key(2026), "party counters do not reset by year")
	assert.Equal(t, "buyer", ScopeBuyer.Key(2026))
}

func TestScopeValid(t *testing.T) {
	assert.True(t, ScopePurchaseOrder.Valid())
	assert.False(t, Scope("invoice").Valid())
}
