package procurement

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/shared"
)

// LineItem represents a row in a purchase order. Amount is never taken
// from the caller; every mutation of quantity, rate or discount
// recomputes it as quantity*rate minus the absolute discount.
type LineItem struct {
	ID          uuid.UUID
	OrderID     uuid.UUID
	Ordinal     int // insertion order, drives the serial number column in output
	Description string
	Make        string
	Quantity    decimal.Decimal
	Unit        string
	UnitRate    decimal.Decimal
	Discount    decimal.Decimal // absolute value, not a percent
	Amount      decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewLineItem creates a new line item and computes its amount
func NewLineItem(orderID uuid.UUID, ordinal int, description, make_, unit string, quantity, unitRate, discount decimal.Decimal) (*LineItem, error) {
	if description == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Line item description cannot be empty")
	}
	if quantity.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}
	if unitRate.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RATE", "Unit rate cannot be negative")
	}
	if discount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}
	if unit == "" {
		unit = "Nos"
	}

	now := time.Now()
	item := &LineItem{
		ID:          uuid.New(),
		OrderID:     orderID,
		Ordinal:     ordinal,
		Description: description,
		Make:        make_,
		Quantity:    quantity,
		Unit:        unit,
		UnitRate:    unitRate,
		Discount:    discount,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	item.recompute()

	return item, nil
}

// UpdateQuantity updates the quantity and recomputes the amount
func (i *LineItem) UpdateQuantity(quantity decimal.Decimal) error {
	if quantity.LessThanOrEqual(decimal.Zero) {
		return shared.NewDomainError("INVALID_QUANTITY", "Quantity must be positive")
	}

	i.Quantity = quantity
	i.recompute()
	i.UpdatedAt = time.Now()

	return nil
}

// UpdateUnitRate updates the unit rate and recomputes the amount
func (i *LineItem) UpdateUnitRate(unitRate decimal.Decimal) error {
	if unitRate.IsNegative() {
		return shared.NewDomainError("INVALID_RATE", "Unit rate cannot be negative")
	}

	i.UnitRate = unitRate
	i.recompute()
	i.UpdatedAt = time.Now()

	return nil
}

// UpdateDiscount updates the absolute discount and recomputes the amount
func (i *LineItem) UpdateDiscount(discount decimal.Decimal) error {
	if discount.IsNegative() {
		return shared.NewDomainError("INVALID_DISCOUNT", "Discount cannot be negative")
	}

	i.Discount = discount
	i.recompute()
	i.UpdatedAt = time.Now()

	return nil
}

func (i *LineItem) recompute() {
	i.Amount = i.Quantity.Mul(i.UnitRate).Sub(i.Discount)
}
