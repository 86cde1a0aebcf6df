package catalog

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/shared"
	"github.com/bizrecords/backend/internal/domain/shared/valueobject"
)

// Kind separates the sale and purchase catalogs. Both kinds share the
// same shape and numbering scheme but are listed and counted apart.
type Kind string

const (
	KindSale     Kind = "sale"
	KindPurchase Kind = "purchase"
)

// Item represents a catalog row for goods the company sells or buys.
// It is the aggregate root for catalog operations.
type Item struct {
	shared.CompanyAggregateRoot
	Kind        Kind
	Code        string // assigned once at creation, never changes
	Name        string
	ItemType    string
	ItemGroup   string
	MachineName string
	Description string
	HSNCode     string
	UoM         string
	TaxRate     decimal.Decimal // percent
	Price       valueobject.Money
	LeadTime    string
}

// NewItem creates a new catalog item with required fields. The code comes
// from the caller, which obtains it from the document sequence service.
func NewItem(companyID uuid.UUID, kind Kind, code, name string) (*Item, error) {
	if err := validateItemKind(kind); err != nil {
		return nil, err
	}
	if err := validateItemCode(code); err != nil {
		return nil, err
	}
	if err := validateItemName(name); err != nil {
		return nil, err
	}

	return &Item{
		CompanyAggregateRoot: shared.NewCompanyAggregateRoot(companyID),
		Kind:                 kind,
		Code:                 code,
		Name:                 name,
		UoM:                  "Nos",
		TaxRate:              decimal.Zero,
		Price:                valueobject.ZeroINR(),
	}, nil
}

// NewSaleItem creates a new sale catalog item
func NewSaleItem(companyID uuid.UUID, code, name string) (*Item, error) {
	return NewItem(companyID, KindSale, code, name)
}

// NewPurchaseItem creates a new purchase catalog item
func NewPurchaseItem(companyID uuid.UUID, code, name string) (*Item, error) {
	return NewItem(companyID, KindPurchase, code, name)
}

// Update updates the item's descriptive fields
func (i *Item) Update(name, itemType, itemGroup, machineName, description string) error {
	if err := validateItemName(name); err != nil {
		return err
	}

	i.Name = name
	i.ItemType = itemType
	i.ItemGroup = itemGroup
	i.MachineName = machineName
	i.Description = description
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetClassification sets the HSN code and unit of measure
func (i *Item) SetClassification(hsnCode, uom string) error {
	if hsnCode != "" && len(hsnCode) > 20 {
		return shared.NewDomainError("INVALID_HSN_CODE", "HSN code cannot exceed 20 characters")
	}

	i.HSNCode = hsnCode
	if uom != "" {
		i.UoM = uom
	}
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetPricing sets the item's price and tax rate
func (i *Item) SetPricing(price valueobject.Money, taxRate decimal.Decimal) error {
	if price.IsNegative() {
		return shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if taxRate.IsNegative() || taxRate.GreaterThan(decimal.NewFromInt(100)) {
		return shared.NewDomainError("INVALID_TAX_RATE", "Tax rate must be between 0 and 100")
	}

	i.Price = price
	i.TaxRate = taxRate
	i.UpdatedAt = time.Now()
	i.IncrementVersion()

	return nil
}

// SetLeadTime sets the procurement or delivery lead time
func (i *Item) SetLeadTime(leadTime string) {
	i.LeadTime = leadTime
	i.UpdatedAt = time.Now()
	i.IncrementVersion()
}

// IsSaleItem returns true if the item belongs to the sale catalog
func (i *Item) IsSaleItem() bool {
	return i.Kind == KindSale
}

// IsPurchaseItem returns true if the item belongs to the purchase catalog
func (i *Item) IsPurchaseItem() bool {
	return i.Kind == KindPurchase
}

// Validation functions

func validateItemKind(k Kind) error {
	switch k {
	case KindSale, KindPurchase:
		return nil
	default:
		return shared.NewDomainError("INVALID_KIND", "Item kind must be sale or purchase")
	}
}

func validateItemCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Item code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Item code cannot exceed 50 characters")
	}
	return nil
}

func validateItemName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Item name cannot exceed 200 characters")
	}
	return nil
}
