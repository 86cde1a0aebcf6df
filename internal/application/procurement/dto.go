package procurement

import (
	"bytes"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/procurement"
)

// LooseDecimal is a decimal that tolerates malformed input. Invalid or
// non numeric values coerce to zero instead of failing the request,
// matching how the order form treats blank fields.
type LooseDecimal struct {
	decimal.Decimal
}

// UnmarshalJSON accepts numbers, numeric strings, and garbage. Garbage
// and null become zero.
func (d *LooseDecimal) UnmarshalJSON(data []byte) error {
	s := string(bytes.Trim(bytes.TrimSpace(data), `"`))
	if s == "" || s == "null" {
		d.Decimal = decimal.Zero
		return nil
	}
	parsed, err := decimal.NewFromString(s)
	if err != nil {
		d.Decimal = decimal.Zero
		return nil
	}
	d.Decimal = parsed
	return nil
}

// CreateLineItemRequest represents one row of a new purchase order
type CreateLineItemRequest struct {
	Description string       `json:"description" binding:"required,min=1"`
	Make        string       `json:"make" binding:"max=100"`
	Unit        string       `json:"unit" binding:"max=20"`
	Quantity    LooseDecimal `json:"quantity"`
	UnitRate    LooseDecimal `json:"unit_rate"`
	Discount    LooseDecimal `json:"discount"`
}

// CreatePurchaseOrderRequest represents a request to create a purchase
// order. The PO number is allocated server side.
type CreatePurchaseOrderRequest struct {
	SupplierID        uuid.UUID               `json:"supplier_id" binding:"required"`
	OrderDate         string                  `json:"order_date" binding:"required"`
	DeliveryDate      string                  `json:"delivery_date"`
	QuotationRef      string                  `json:"quotation_ref" binding:"max=100"`
	PaymentTerms      string                  `json:"payment_terms"`
	OtherInstructions string                  `json:"other_instructions"`
	Freight           LooseDecimal            `json:"freight"`
	Items             []CreateLineItemRequest `json:"items" binding:"dive"`
}

// LineItemResponse represents a line item in API responses
type LineItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	Ordinal     int             `json:"ordinal"`
	Description string          `json:"description"`
	Make        string          `json:"make"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitRate    decimal.Decimal `json:"unit_rate"`
	Discount    decimal.Decimal `json:"discount"`
	Amount      decimal.Decimal `json:"amount"`
}

// PurchaseOrderResponse represents a purchase order in API responses
type PurchaseOrderResponse struct {
	ID                uuid.UUID          `json:"id"`
	CompanyID         uuid.UUID          `json:"company_id"`
	PONumber          string             `json:"po_number"`
	SupplierID        uuid.UUID          `json:"supplier_id"`
	SupplierName      string             `json:"supplier_name"`
	OrderDate         time.Time          `json:"order_date"`
	DeliveryDate      *time.Time         `json:"delivery_date"`
	QuotationRef      string             `json:"quotation_ref"`
	PaymentTerms      string             `json:"payment_terms"`
	OtherInstructions string             `json:"other_instructions"`
	Freight           decimal.Decimal    `json:"freight"`
	Status            string             `json:"status"`
	Items             []LineItemResponse `json:"items"`
	BasicAmount       decimal.Decimal    `json:"basic_amount"`
	SGST              decimal.Decimal    `json:"sgst"`
	CGST              decimal.Decimal    `json:"cgst"`
	IGST              decimal.Decimal    `json:"igst"`
	GrandTotal        decimal.Decimal    `json:"grand_total"`
	CreatedAt         time.Time          `json:"created_at"`
	UpdatedAt         time.Time          `json:"updated_at"`
	Version           int                `json:"version"`
}

// PurchaseOrderListFilter represents filter options for the order list
type PurchaseOrderListFilter struct {
	Search     string     `form:"search"`
	SupplierID *uuid.UUID `form:"supplier_id"`
	Page       int        `form:"page" binding:"omitempty,min=1"`
	PageSize   int        `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy    string     `form:"order_by"`
	OrderDir   string     `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// NextNumberResponse previews the next PO number without consuming it
type NextNumberResponse struct {
	PONumber string `json:"po_number"`
}

// DocumentResponse carries a rendered PDF back to the HTTP layer
type DocumentResponse struct {
	FileName string `json:"file_name"`
	Data     []byte `json:"-"`
}

// ToPurchaseOrderResponse converts a domain order to a response DTO
func ToPurchaseOrderResponse(o *procurement.PurchaseOrder) PurchaseOrderResponse {
	items := make([]LineItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = LineItemResponse{
			ID:          item.ID,
			Ordinal:     item.Ordinal,
			Description: item.Description,
			Make:        item.Make,
			Quantity:    item.Quantity,
			Unit:        item.Unit,
			UnitRate:    item.UnitRate,
			Discount:    item.Discount,
			Amount:      item.Amount,
		}
	}
	return PurchaseOrderResponse{
		ID:                o.ID,
		CompanyID:         o.CompanyID,
		PONumber:          o.PONumber,
		SupplierID:        o.SupplierID,
		SupplierName:      o.SupplierName,
		OrderDate:         o.OrderDate,
		DeliveryDate:      o.DeliveryDate,
		QuotationRef:      o.QuotationRef,
		PaymentTerms:      o.PaymentTerms,
		OtherInstructions: o.OtherInstructions,
		Freight:           o.Freight,
		Status:            string(o.Status),
		Items:             items,
		BasicAmount:       o.Totals.BasicAmount,
		SGST:              o.Totals.SGST,
		CGST:              o.Totals.CGST,
		IGST:              o.Totals.IGST,
		GrandTotal:        o.Totals.GrandTotal,
		CreatedAt:         o.CreatedAt,
		UpdatedAt:         o.UpdatedAt,
		Version:           o.Version,
	}
}

// ToPurchaseOrderResponses converts a slice of domain orders
func ToPurchaseOrderResponses(orders []*procurement.PurchaseOrder) []PurchaseOrderResponse {
	responses := make([]PurchaseOrderResponse, len(orders))
	for i, o := range orders {
		responses[i] = ToPurchaseOrderResponse(o)
	}
	return responses
}
