package sequence

import (
	"fmt"
	"strings"

	"github.com/bizrecords/backend/internal/domain/shared"
)

// Scope identifies an independent document counter. Counters are kept
// per company and per scope; item counters are additionally kept per
// calendar year because the item code embeds it.
type Scope string

const (
	ScopeSaleItem      Scope = "sale_item"
	ScopePurchaseItem  Scope = "purchase_item"
	ScopeSupplier      Scope = "supplier"
	ScopeBuyer         Scope = "buyer"
	ScopePurchaseOrder Scope = "purchase_order"
)

// Valid reports whether s is a known counter scope.
func (s Scope) Valid() bool {
	switch s {
	case ScopeSaleItem, ScopePurchaseItem, ScopeSupplier, ScopeBuyer, ScopePurchaseOrder:
		return true
	}
	return false
}

// Key returns the stored counter key for the scope. Item scopes fold in
// the year so that numbering restarts every calendar year.
func (s Scope) Key(year int) string {
	switch s {
	case ScopeSaleItem, ScopePurchaseItem, ScopePurchaseOrder:
		return fmt.Sprintf("%s:%d", s, year)
	default:
		return string(s)
	}
}

// FormatItemCode renders the nth item code for a calendar year,
// e.g. FormatItemCode(7, 2026) = "ITM/007/2026".
func FormatItemCode(n int, year int) string {
	return fmt.Sprintf("ITM/%03d/%d", n, year)
}

// FormatSupplierCode renders the nth supplier code, e.g. "SUP/012".
func FormatSupplierCode(n int) string {
	return fmt.Sprintf("SUP/%03d", n)
}

// FormatBuyerCode renders the nth buyer code, e.g. "BUY/003".
func FormatBuyerCode(n int) string {
	return fmt.Sprintf("BUY/%03d", n)
}

// FormatPONumber renders the nth purchase order number for a company in
// an Indian fiscal-year styled band: the issuing year followed by the
// last two digits of the next year.
// FormatPONumber("WASCO", 2024, 5) = "PO/WASCO/2024-25/0005".
func FormatPONumber(companyCode string, year, n int) string {
	return fmt.Sprintf("PO/%s/%d-%02d/%04d", strings.ToUpper(companyCode), year, (year+1)%100, n)
}

// FormatPartyCode renders a party code for the given scope.
func FormatPartyCode(scope Scope, n int) (string, error) {
	switch scope {
	case ScopeSupplier:
		return FormatSupplierCode(n), nil
	case ScopeBuyer:
		return FormatBuyerCode(n), nil
	default:
		return "", shared.NewDomainError("INVALID_SCOPE", "Scope is not a party counter")
	}
}
