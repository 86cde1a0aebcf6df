package printing

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizrecords/backend/internal/domain/company"
	"github.com/bizrecords/backend/internal/domain/party"
	"github.com/bizrecords/backend/internal/domain/procurement"
)

func TestGreetingName(t *testing.T) {
	tests := []struct {
		contact  string
		expected string
	}{
		{"Mr. Narendra Kumar Srivastava", "Narendra"},
		{"Ms. Priya Sharma", "Priya"},
		{"Mrs. Anita Desai", "Anita"},
		{"mr. ramesh gupta", "ramesh"},
		{"Rajesh Verma", "Rajesh"},
		{"Rajesh", "Rajesh"},
		{"", "Sir/Madam"},
		{"   ", "Sir/Madam"},
		{"Mr.", "Sir/Madam"},
		{"Mrs. ", "Sir/Madam"},
	}
	for _, tt := range tests {
		t.Run(tt.contact, func(t *testing.T) {
			assert.Equal(t, tt.expected, GreetingName(tt.contact))
		})
	}
}

func TestTaxPercent(t *testing.T) {
	t.Run("back computes from stored amounts", func(t *testing.T) {
		basic := decimal.NewFromFloat(400.50)
		tax := decimal.NewFromFloat(36.045)
		assert.Equal(t, "9.00", TaxPercent(tax, basic, "9.00"))
	})

	t.Run("non standard rate survives round trip", func(t *testing.T) {
		basic := decimal.NewFromInt(1000)
		tax := decimal.NewFromInt(120)
		assert.Equal(t, "12.00", TaxPercent(tax, basic, "9.00"))
	})

	t.Run("zero basic falls back to default", func(t *testing.T) {
		assert.Equal(t, "9.00", TaxPercent(decimal.Zero, decimal.Zero, "9.00"))
		assert.Equal(t, "0.00", TaxPercent(decimal.Zero, decimal.Zero, "0.00"))
	})
}

func TestPDFFileName(t *testing.T) {
	assert.Equal(t, "PO_PO-WASCO-2026-27-0005.pdf", PDFFileName("PO/WASCO/2026-27/0005"))
	assert.Equal(t, "PO_PLAIN.pdf", PDFFileName("PLAIN"))
}

func buildRenderFixture(t *testing.T) *PurchaseOrderDocument {
	t.Helper()

	c, err := company.NewCompany("Wasco Engineering", "WASCO")
	require.NoError(t, err)
	c.SetContactInfo("12 Industrial Estate, Kanpur", "+91 9876543210", "", "purchase@wasco.in", "")
	c.SetTaxIdentifiers("09AAACW1234A1Z2", "AAACW1234A", "")

	supplier, err := party.NewSupplier(c.ID, "SUP/001", "Apex Bearing Traders")
	require.NoError(t, err)
	require.NoError(t, supplier.SetAddress("45 Market Road, Delhi"))
	require.NoError(t, supplier.SetContact("Mr. Narendra Kumar Srivastava", "+91 9012345678", "sales@apexbearings.in", ""))
	require.NoError(t, supplier.SetStatutoryIDs("07AABCA9876B1Z9", "AABCA9876B", "", ""))

	order, err := procurement.NewPurchaseOrder(
		c.ID, "PO/WASCO/2026-27/0001", supplier.ID, supplier.Name,
		time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC),
	)
	require.NoError(t, err)
	_, err = order.AddLineItem("6205-2RS Deep Groove Bearing", "SKF", "Nos",
		decimal.NewFromInt(10), decimal.NewFromFloat(245.50), decimal.Zero)
	require.NoError(t, err)
	_, err = order.AddLineItem("Bearing Grease 1kg", "", "Nos",
		decimal.NewFromInt(2), decimal.NewFromInt(400), decimal.NewFromInt(50))
	require.NoError(t, err)
	delivery := time.Date(2026, 8, 22, 0, 0, 0, 0, time.UTC)
	order.SetTerms("Q-1042", "50% advance, balance on delivery.", &delivery, decimal.NewFromInt(150),
		"Quote PO number on all documents\nMaterial test certificates with each lot")

	return BuildPurchaseOrderDocument(c, supplier, order)
}

func TestBuildPurchaseOrderDocument(t *testing.T) {
	doc := buildRenderFixture(t)

	assert.Equal(t, "WASCO ENGINEERING", doc.Company.Name)
	assert.Equal(t, "PO/WASCO/2026-27/0001", doc.PONumber)
	assert.Equal(t, "15/08/2026", doc.OrderDate)
	assert.Equal(t, "Narendra", doc.GreetingName)

	require.Len(t, doc.Lines, 2)
	assert.Equal(t, 1, doc.Lines[0].Index)
	assert.Equal(t, "SKF", doc.Lines[0].Make)
	assert.Equal(t, "2455.00", doc.Lines[0].Amount)
	assert.Equal(t, "-", doc.Lines[1].Make)
	assert.Equal(t, "750.00", doc.Lines[1].Amount)

	// basic 3205, sgst = cgst = 288.45, grand 3781.90
	assert.Equal(t, "12.00", doc.TotalQuantity)
	assert.Equal(t, "3205.00", doc.BasicAmount)
	assert.Equal(t, "9.00", doc.SGSTPercent)
	assert.Equal(t, "9.00", doc.CGSTPercent)
	assert.Equal(t, "0.00", doc.IGSTPercent)
	assert.Equal(t, "288.45", doc.SGST)
	assert.Equal(t, "3781.90", doc.GrandTotal)

	assert.Equal(t, "Inclusive", doc.Freight)
	assert.Equal(t, "150.00", doc.FreightAmount)
	assert.Equal(t, "Within one week time i.e. on or before 22/08/2026.", doc.DeliveryTime)
	assert.Equal(t, []string{
		"Quote PO number on all documents",
		"Material test certificates with each lot",
	}, doc.Instructions)
	assert.Contains(t, doc.InvoiceTerm, "Wasco Engineering")
}

func TestBuildPurchaseOrderDocument_Defaults(t *testing.T) {
	c, err := company.NewCompany("Wasco Engineering", "WASCO")
	require.NoError(t, err)
	supplier, err := party.NewSupplier(c.ID, "SUP/002", "No Contact Traders")
	require.NoError(t, err)
	order, err := procurement.NewPurchaseOrder(
		c.ID, "PO/WASCO/2026-27/0002", supplier.ID, supplier.Name, time.Now(),
	)
	require.NoError(t, err)

	doc := BuildPurchaseOrderDocument(c, supplier, order)

	assert.Equal(t, "Sir/Madam", doc.GreetingName)
	assert.Equal(t, "100% against delivery of the material.", doc.PaymentTerms)
	assert.Equal(t, "As per agreed terms.", doc.DeliveryTime)
	assert.Equal(t, "0.00", doc.FreightAmount)
	assert.Equal(t, "N/A", doc.Company.GSTIN)
	assert.Equal(t, "N/A", doc.Supplier.PAN)
	assert.Equal(t, "9.00", doc.SGSTPercent)
	assert.Equal(t, "0.00", doc.IGSTPercent)
	assert.Empty(t, doc.Instructions)
}

func TestTemplateEngine_RenderPurchaseOrder(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	doc := buildRenderFixture(t)

	html, err := engine.RenderPurchaseOrder(doc)
	require.NoError(t, err)

	assert.Contains(t, html, "PURCHASE ORDER")
	assert.Contains(t, html, "WASCO ENGINEERING")
	assert.Contains(t, html, "P.O. No: PO/WASCO/2026-27/0001")
	assert.Contains(t, html, "Dear Mr. Narendra,")
	assert.Contains(t, html, "6205-2RS Deep Groove Bearing")
	assert.Contains(t, html, "Basic Amount")
	assert.Contains(t, html, "3205.00")
	assert.Contains(t, html, "Inclusive")
	assert.Contains(t, html, "150.00")
	assert.Contains(t, html, "Within one week time i.e. on or before 22/08/2026.")
	assert.Contains(t, html, "3781.90")
	assert.Contains(t, html, "1. Quote PO number on all documents")
	assert.Contains(t, html, "2. Material test certificates with each lot")
	assert.Contains(t, html, "For WASCO ENGINEERING")
	assert.Contains(t, html, "Authorized Signatory")
}

func TestTemplateEngine_RenderIsDeterministic(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	doc := buildRenderFixture(t)

	first, err := engine.RenderPurchaseOrder(doc)
	require.NoError(t, err)
	second, err := engine.RenderPurchaseOrder(doc)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestTemplateEngine_NilDocument(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	_, err = engine.RenderPurchaseOrder(nil)
	require.Error(t, err)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	assert.Equal(t, ErrCodeTemplateFailed, renderErr.Code)
}

func TestTemplateEngine_RenderString(t *testing.T) {
	engine, err := NewTemplateEngine()
	require.NoError(t, err)

	out, err := engine.RenderString("t", `{{upper .Name}} / {{title .City}}`, map[string]string{
		"Name": "wasco",
		"City": "new delhi",
	})
	require.NoError(t, err)
	assert.Equal(t, "WASCO / New Delhi", out)
}
