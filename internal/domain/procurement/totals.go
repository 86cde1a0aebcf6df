package procurement

import (
	"github.com/shopspring/decimal"
)

// Intra-state GST split: 9% SGST plus 9% CGST on the basic amount.
// Inter-state IGST is carried in the model but currently always zero.
var (
	sgstRate = decimal.NewFromFloat(0.09)
	cgstRate = decimal.NewFromFloat(0.09)
)

// Totals holds the computed money summary of a purchase order.
type Totals struct {
	BasicAmount decimal.Decimal
	SGST        decimal.Decimal
	CGST        decimal.Decimal
	IGST        decimal.Decimal
	GrandTotal  decimal.Decimal
}

// ComputeTotals derives the order totals from its line items. The basic
// amount is the sum of line amounts, tax is applied on top of it, and
// the grand total is the tax-inclusive sum.
func ComputeTotals(items []LineItem) Totals {
	basic := decimal.Zero
	for _, item := range items {
		basic = basic.Add(item.Amount)
	}

	sgst := basic.Mul(sgstRate)
	cgst := basic.Mul(cgstRate)
	igst := decimal.Zero

	return Totals{
		BasicAmount: basic,
		SGST:        sgst,
		CGST:        cgst,
		IGST:        igst,
		GrandTotal:  basic.Add(sgst).Add(cgst).Add(igst),
	}
}

// TotalQuantity sums the line quantities for the totals row of the
// printed document.
func TotalQuantity(items []LineItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Quantity)
	}
	return total
}
