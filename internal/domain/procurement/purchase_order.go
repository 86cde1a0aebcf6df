package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/shared"
)

// Status represents the lifecycle state of a purchase order. Orders are
// created and printed as drafts; no further transitions are defined.
type Status string

const (
	StatusDraft Status = "draft"
)

// ErrMissingParty is returned when an order is created without a company
// or supplier attached.
var ErrMissingParty = shared.NewDomainError("MISSING_PARTY", "Purchase order requires a company and a supplier")

// ErrEmptyLineItems is returned when an order is submitted without rows.
var ErrEmptyLineItems = shared.NewDomainError("EMPTY_LINE_ITEMS", "Purchase order requires at least one line item")

// PurchaseOrder represents an order issued by a company to a supplier.
// It is the aggregate root for procurement; the header and its line
// items are always written together.
type PurchaseOrder struct {
	shared.CompanyAggregateRoot
	PONumber          string
	SupplierID        uuid.UUID
	SupplierName      string
	OrderDate         time.Time
	DeliveryDate      *time.Time
	QuotationRef      string
	PaymentTerms      string
	OtherInstructions string
	Freight           decimal.Decimal
	Status            Status
	Items             []LineItem
	Totals            Totals
}

// NewPurchaseOrder creates a new draft purchase order. The PO number
// comes from the caller, which obtains it from the document sequence
// service.
func NewPurchaseOrder(companyID uuid.UUID, poNumber string, supplierID uuid.UUID, supplierName string, orderDate time.Time) (*PurchaseOrder, error) {
	if companyID == uuid.Nil || supplierID == uuid.Nil {
		return nil, ErrMissingParty
	}
	if poNumber == "" {
		return nil, shared.NewDomainError("INVALID_PO_NUMBER", "PO number cannot be empty")
	}
	if len(poNumber) > 50 {
		return nil, shared.NewDomainError("INVALID_PO_NUMBER", "PO number cannot exceed 50 characters")
	}
	if supplierName == "" {
		return nil, shared.NewDomainError("INVALID_SUPPLIER_NAME", "Supplier name cannot be empty")
	}
	if orderDate.IsZero() {
		orderDate = time.Now()
	}

	return &PurchaseOrder{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		PONumber:             poNumber,
		SupplierID:           supplierID,
		SupplierName:         supplierName,
		OrderDate:            orderDate,
		Status:               StatusDraft,
		Items:                make([]LineItem, 0),
	}, nil
}

// AddLineItem appends a row to the order and recomputes the totals
func (o *PurchaseOrder) AddLineItem(description, make_, unit string, quantity, unitRate, discount decimal.Decimal) (*LineItem, error) {
	item, err := NewLineItem(o.ID, len(o.Items)+1, description, make_, unit, quantity, unitRate, discount)
	if err != nil {
		return nil, err
	}

	o.Items = append(o.Items, *item)
	o.recalculate()

	return item, nil
}

// RemoveLineItem removes a row by ID, renumbers the rest and recomputes
// the totals
func (o *PurchaseOrder) RemoveLineItem(itemID uuid.UUID) error {
	for idx, item := range o.Items {
		if item.ID == itemID {
			o.Items = append(o.Items[:idx], o.Items[idx+1:]...)
			for j := range o.Items {
				o.Items[j].Ordinal = j + 1
			}
			o.recalculate()
			return nil
		}
	}
	return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found in order")
}

// UpdateLineItem updates a row's quantity, rate and discount, then
// recomputes the totals
func (o *PurchaseOrder) UpdateLineItem(itemID uuid.UUID, quantity, unitRate, discount decimal.Decimal) error {
	for idx := range o.Items {
		if o.Items[idx].ID == itemID {
			if err := o.Items[idx].UpdateQuantity(quantity); err != nil {
				return err
			}
			if err := o.Items[idx].UpdateUnitRate(unitRate); err != nil {
				return err
			}
			if err := o.Items[idx].UpdateDiscount(discount); err != nil {
				return err
			}
			o.recalculate()
			return nil
		}
	}
	return shared.NewDomainError("ITEM_NOT_FOUND", "Line item not found in order")
}

// SetTerms sets the commercial terms printed on the document. The
// delivery date is optional; freight is recorded as entered but never
// folded into the grand total, which stays basic plus taxes.
func (o *PurchaseOrder) SetTerms(quotationRef, paymentTerms string, deliveryDate *time.Time, freight decimal.Decimal, otherInstructions string) {
	o.QuotationRef = quotationRef
	o.PaymentTerms = paymentTerms
	o.DeliveryDate = deliveryDate
	o.Freight = freight
	o.OtherInstructions = otherInstructions
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}

// Validate checks the order is complete enough to persist. It is called
// at submission time, before any write.
func (o *PurchaseOrder) Validate() error {
	if o.CompanyID == uuid.Nil || o.SupplierID == uuid.Nil {
		return ErrMissingParty
	}
	if len(o.Items) == 0 {
		return ErrEmptyLineItems
	}
	return nil
}

// recalculate refreshes the totals from the current line items. The
// recomputed values are authoritative; whatever a caller supplied is
// discarded.
func (o *PurchaseOrder) recalculate() {
	o.Totals = ComputeTotals(o.Items)
	o.UpdatedAt = time.Now()
	o.IncrementVersion()
}
