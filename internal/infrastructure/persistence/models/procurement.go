package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/procurement"
)

// PurchaseOrderModel is the persistence model for the PurchaseOrder aggregate root.
type PurchaseOrderModel struct {
	CompanyAggregateModel
	PONumber          string                   `gorm:"type:varchar(50);not null;uniqueIndex:idx_po_company_number,priority:2;column:po_number"`
	SupplierID        uuid.UUID                `gorm:"type:uuid;not null;index"`
	SupplierName      string                   `gorm:"type:varchar(200);not null"`
	OrderDate         time.Time                `gorm:"not null;index"`
	DeliveryDate      *time.Time               `gorm:"type:date"`
	QuotationRef      string                   `gorm:"type:varchar(100)"`
	PaymentTerms      string                   `gorm:"type:text"`
	OtherInstructions string                   `gorm:"type:text"`
	Freight           decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	Status            string                   `gorm:"type:varchar(20);not null;default:'draft'"`
	BasicAmount       decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	SGST              decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0;column:sgst"`
	CGST              decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0;column:cgst"`
	IGST              decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0;column:igst"`
	GrandTotal        decimal.Decimal          `gorm:"type:decimal(18,4);not null;default:0"`
	Items             []PurchaseOrderItemModel `gorm:"foreignKey:OrderID;references:ID"`
}

// TableName returns the table name for GORM
func (PurchaseOrderModel) TableName() string {
	return "purchase_orders"
}

// ToDomain converts the persistence model to a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) ToDomain() *procurement.PurchaseOrder {
	order := &procurement.PurchaseOrder{
		CompanyAggregateRoot: m.ToDomainCompanyAggregateRoot(),
		PONumber:             m.PONumber,
		SupplierID:           m.SupplierID,
		SupplierName:         m.SupplierName,
		OrderDate:            m.OrderDate,
		DeliveryDate:         m.DeliveryDate,
		QuotationRef:         m.QuotationRef,
		PaymentTerms:         m.PaymentTerms,
		OtherInstructions:    m.OtherInstructions,
		Freight:              m.Freight,
		Status:               procurement.Status(m.Status),
		Totals: procurement.Totals{
			BasicAmount: m.BasicAmount,
			SGST:        m.SGST,
			CGST:        m.CGST,
			IGST:        m.IGST,
			GrandTotal:  m.GrandTotal,
		},
		Items: make([]procurement.LineItem, len(m.Items)),
	}
	for i, item := range m.Items {
		order.Items[i] = *item.ToDomain()
	}
	return order
}

// FromDomain populates the persistence model from a domain PurchaseOrder entity.
func (m *PurchaseOrderModel) FromDomain(o *procurement.PurchaseOrder) {
	m.FromDomainCompanyAggregateRoot(o.CompanyAggregateRoot)
	m.PONumber = o.PONumber
	m.SupplierID = o.SupplierID
	m.SupplierName = o.SupplierName
	m.OrderDate = o.OrderDate
	m.DeliveryDate = o.DeliveryDate
	m.QuotationRef = o.QuotationRef
	m.PaymentTerms = o.PaymentTerms
	m.OtherInstructions = o.OtherInstructions
	m.Freight = o.Freight
	m.Status = string(o.Status)
	m.BasicAmount = o.Totals.BasicAmount
	m.SGST = o.Totals.SGST
	m.CGST = o.Totals.CGST
	m.IGST = o.Totals.IGST
	m.GrandTotal = o.Totals.GrandTotal
	m.Items = make([]PurchaseOrderItemModel, len(o.Items))
	for i := range o.Items {
		m.Items[i] = *PurchaseOrderItemModelFromDomain(&o.Items[i])
	}
}

// PurchaseOrderModelFromDomain creates a new persistence model from a domain PurchaseOrder entity.
func PurchaseOrderModelFromDomain(o *procurement.PurchaseOrder) *PurchaseOrderModel {
	m := &PurchaseOrderModel{}
	m.FromDomain(o)
	return m
}

// PurchaseOrderItemModel is the persistence model for the LineItem entity.
type PurchaseOrderItemModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Ordinal     int             `gorm:"not null"`
	Description string          `gorm:"type:text;not null"`
	Make        string          `gorm:"type:varchar(100)"`
	Quantity    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Unit        string          `gorm:"type:varchar(20);not null;default:'Nos'"`
	UnitRate    decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Discount    decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Amount      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	CreatedAt   time.Time       `gorm:"not null"`
	UpdatedAt   time.Time       `gorm:"not null"`
}

// TableName returns the table name for GORM
func (PurchaseOrderItemModel) TableName() string {
	return "purchase_order_items"
}

// ToDomain converts the persistence model to a domain LineItem entity.
func (m *PurchaseOrderItemModel) ToDomain() *procurement.LineItem {
	return &procurement.LineItem{
		ID:          m.ID,
		OrderID:     m.OrderID,
		Ordinal:     m.Ordinal,
		Description: m.Description,
		Make:        m.Make,
		Quantity:    m.Quantity,
		Unit:        m.Unit,
		UnitRate:    m.UnitRate,
		Discount:    m.Discount,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// PurchaseOrderItemModelFromDomain creates a new persistence model from a domain LineItem.
func PurchaseOrderItemModelFromDomain(i *procurement.LineItem) *PurchaseOrderItemModel {
	return &PurchaseOrderItemModel{
		ID:          i.ID,
		OrderID:     i.OrderID,
		Ordinal:     i.Ordinal,
		Description: i.Description,
		Make:        i.Make,
		Quantity:    i.Quantity,
		Unit:        i.Unit,
		UnitRate:    i.UnitRate,
		Discount:    i.Discount,
		Amount:      i.Amount,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}
