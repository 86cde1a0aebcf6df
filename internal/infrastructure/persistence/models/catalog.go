package models

import (
	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/catalog"
	"github.com/bizrecords/backend/internal/domain/shared/valueobject"
)

// ItemModel is the persistence model for the catalog Item aggregate root.
// Sale and purchase items share one table, separated by kind.
type ItemModel struct {
	CompanyAggregateModel
	Kind        string          `gorm:"type:varchar(20);not null;index:idx_item_company_kind"`
	Code        string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_item_company_code,priority:2"`
	Name        string          `gorm:"type:varchar(200);not null"`
	ItemType    string          `gorm:"type:varchar(100)"`
	ItemGroup   string          `gorm:"type:varchar(100)"`
	MachineName string          `gorm:"type:varchar(200)"`
	Description string          `gorm:"type:text"`
	HSNCode     string          `gorm:"type:varchar(20);column:hsn_code"`
	UoM         string          `gorm:"type:varchar(20);not null;default:'Nos';column:uom"`
	TaxRate     decimal.Decimal `gorm:"type:decimal(5,2);not null;default:0"`
	Price       decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	Currency    string          `gorm:"type:varchar(3);not null;default:'INR'"`
	LeadTime    string          `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (ItemModel) TableName() string {
	return "items"
}

// ToDomain converts the persistence model to a domain Item entity.
func (m *ItemModel) ToDomain() *catalog.Item {
	price, err := valueobject.NewMoney(m.Price, valueobject.Currency(m.Currency))
	if err != nil {
		price = valueobject.NewMoneyINR(m.Price)
	}
	return &catalog.Item{
		CompanyAggregateRoot: m.ToDomainCompanyAggregateRoot(),
		Kind:                 catalog.Kind(m.Kind),
		Code:                 m.Code,
		Name:                 m.Name,
		ItemType:             m.ItemType,
		ItemGroup:            m.ItemGroup,
		MachineName:          m.MachineName,
		Description:          m.Description,
		HSNCode:              m.HSNCode,
		UoM:                  m.UoM,
		TaxRate:              m.TaxRate,
		Price:                price,
		LeadTime:             m.LeadTime,
	}
}

// FromDomain populates the persistence model from a domain Item entity.
func (m *ItemModel) FromDomain(i *catalog.Item) {
	m.FromDomainCompanyAggregateRoot(i.CompanyAggregateRoot)
	m.Kind = string(i.Kind)
	m.Code = i.Code
	m.Name = i.Name
	m.ItemType = i.ItemType
	m.ItemGroup = i.ItemGroup
	m.MachineName = i.MachineName
	m.Description = i.Description
	m.HSNCode = i.HSNCode
	m.UoM = i.UoM
	m.TaxRate = i.TaxRate
	m.Price = i.Price.Amount()
	m.Currency = string(i.Price.Currency())
	m.LeadTime = i.LeadTime
}

// ItemModelFromDomain creates a new persistence model from a domain Item entity.
func ItemModelFromDomain(i *catalog.Item) *ItemModel {
	m := &ItemModel{}
	m.FromDomain(i)
	return m
}
