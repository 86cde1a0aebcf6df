package printing

import (
	"regexp"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/company"
	"github.com/bizrecords/backend/internal/domain/party"
	"github.com/bizrecords/backend/internal/domain/procurement"
)

const (
	defaultPaymentTerms = "100% against delivery of the material."
	defaultDeliveryTime = "As per agreed terms."
	defaultGreetingName = "Sir/Madam"
)

var honorificPattern = regexp.MustCompile(`(?i)^(Mr\.|Ms\.|Mrs\.)\s*`)

// CompanyBlock holds the buyer company fields the document shows
type CompanyBlock struct {
	Name          string
	Address       string
	ContactNumber string
	Email         string
	GSTIN         string
	PAN           string
}

// SupplierBlock holds the seller fields the document shows
type SupplierBlock struct {
	Name          string
	Address       string
	ContactNumber string
	Email         string
	ContactPerson string
	GSTIN         string
	PAN           string
}

// LineRow is one row of the item grid, everything pre-formatted
type LineRow struct {
	Index       int
	Description string
	Make        string
	Quantity    string
	Unit        string
	UnitRate    string
	Discount    string
	Amount      string
}

// PurchaseOrderDocument is the view model the template renders. All
// numbers are formatted here so rendering the same order twice always
// produces identical output.
type PurchaseOrderDocument struct {
	Company   CompanyBlock
	Supplier  SupplierBlock
	PONumber  string
	OrderDate string

	GreetingName string

	Lines         []LineRow
	TotalQuantity string
	BasicAmount   string

	PaymentTerms string
	DeliveryTime string

	Freight       string
	FreightAmount string
	SGSTPercent   string
	CGSTPercent string
	IGSTPercent string
	SGST        string
	CGST        string
	IGST        string
	GrandTotal  string

	InvoiceTerm  string
	Instructions []string
}

// BuildPurchaseOrderDocument maps the domain aggregates into the view
// model. Data comes fresh from the repositories at render time, never
// from the submitted request.
func BuildPurchaseOrderDocument(c *company.Company, supplier *party.Party, order *procurement.PurchaseOrder) *PurchaseOrderDocument {
	doc := &PurchaseOrderDocument{
		Company: CompanyBlock{
			Name:          strings.ToUpper(c.Name),
			Address:       c.Address,
			ContactNumber: c.ContactNumber,
			Email:         c.Email,
			GSTIN:         orNA(c.GSTIN),
			PAN:           orNA(c.PAN),
		},
		Supplier: SupplierBlock{
			Name:          supplier.Name,
			Address:       supplier.Address,
			ContactNumber: supplier.ContactNumber,
			Email:         supplier.Email,
			ContactPerson: supplier.ContactPerson,
			GSTIN:         orNA(supplier.GSTIN),
			PAN:           orNA(supplier.PAN),
		},
		PONumber:     order.PONumber,
		OrderDate:    order.OrderDate.Format("02/01/2006"),
		GreetingName: GreetingName(supplier.ContactPerson),

		TotalQuantity: procurement.TotalQuantity(order.Items).StringFixed(2),
		BasicAmount:   order.Totals.BasicAmount.StringFixed(2),

		PaymentTerms: order.PaymentTerms,
		DeliveryTime: DeliveryTimeText(order.DeliveryDate),

		Freight:       "Inclusive",
		FreightAmount: order.Freight.StringFixed(2),
		SGSTPercent:   TaxPercent(order.Totals.SGST, order.Totals.BasicAmount, "9.00"),
		CGSTPercent:   TaxPercent(order.Totals.CGST, order.Totals.BasicAmount, "9.00"),
		IGSTPercent:   TaxPercent(order.Totals.IGST, order.Totals.BasicAmount, "0.00"),
		SGST:          order.Totals.SGST.StringFixed(2),
		CGST:          order.Totals.CGST.StringFixed(2),
		IGST:          order.Totals.IGST.StringFixed(2),
		GrandTotal:    order.Totals.GrandTotal.StringFixed(2),

		InvoiceTerm: strings.TrimSpace("All invoices shall be raised in the name of: " + c.Name + " " + c.Address),
	}

	if doc.PaymentTerms == "" {
		doc.PaymentTerms = defaultPaymentTerms
	}

	doc.Lines = make([]LineRow, len(order.Items))
	for i, item := range order.Items {
		make_ := item.Make
		if make_ == "" {
			make_ = "-"
		}
		doc.Lines[i] = LineRow{
			Index:       item.Ordinal,
			Description: item.Description,
			Make:        make_,
			Quantity:    item.Quantity.StringFixed(2),
			Unit:        item.Unit,
			UnitRate:    item.UnitRate.StringFixed(2),
			Discount:    item.Discount.StringFixed(2),
			Amount:      item.Amount.StringFixed(2),
		}
	}

	if s := strings.TrimSpace(order.OtherInstructions); s != "" {
		for _, line := range strings.Split(s, "\n") {
			doc.Instructions = append(doc.Instructions, strings.TrimSpace(line))
		}
	}

	return doc
}

// DeliveryTimeText phrases the delivery commitment the document prints.
// Orders without a delivery date fall back to "As per agreed terms."
func DeliveryTimeText(deliveryDate *time.Time) string {
	if deliveryDate == nil {
		return defaultDeliveryTime
	}
	return "Within one week time i.e. on or before " + deliveryDate.Format("02/01/2006") + "."
}

// GreetingName extracts the first name from a contact person, stripping
// a leading honorific. A contact that is empty once the honorific is
// gone falls back to "Sir/Madam".
func GreetingName(contactPerson string) string {
	name := honorificPattern.ReplaceAllString(strings.TrimSpace(contactPerson), "")
	if idx := strings.IndexByte(name, ' '); idx >= 0 {
		name = name[:idx]
	}
	if name == "" {
		return defaultGreetingName
	}
	return name
}

// TaxPercent back-computes a tax percentage from the stored amounts.
// A zero basic amount yields the given default so an empty order still
// shows the standard rates.
func TaxPercent(tax, basic decimal.Decimal, def string) string {
	if !basic.IsPositive() {
		return def
	}
	return tax.Div(basic).Mul(decimal.NewFromInt(100)).StringFixed(2)
}

// PDFFileName builds the download file name for a purchase order,
// replacing slashes so the PO number is path and header safe.
func PDFFileName(poNumber string) string {
	return "PO_" + strings.ReplaceAll(poNumber, "/", "-") + ".pdf"
}

func orNA(s string) string {
	if strings.TrimSpace(s) == "" {
		return "N/A"
	}
	return s
}
