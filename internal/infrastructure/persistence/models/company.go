package models

import (
	"github.com/bizrecords/backend/internal/domain/company"
)

// CompanyModel is the persistence model for the Company aggregate root.
type CompanyModel struct {
	AggregateModel
	Name          string `gorm:"type:varchar(200);not null"`
	Code          string `gorm:"type:varchar(50);not null;uniqueIndex:idx_company_code"`
	Address       string `gorm:"type:text"`
	ContactNumber string `gorm:"type:varchar(50)"`
	ContactPerson string `gorm:"type:varchar(100)"`
	Email         string `gorm:"type:varchar(200)"`
	Website       string `gorm:"type:varchar(200)"`
	GSTIN         string `gorm:"type:varchar(15)"`
	PAN           string `gorm:"type:varchar(10)"`
	CIN           string `gorm:"type:varchar(21)"`
}

// TableName returns the table name for GORM
func (CompanyModel) TableName() string {
	return "companies"
}

// ToDomain converts the persistence model to a domain Company entity.
func (m *CompanyModel) ToDomain() *company.Company {
	return &company.Company{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Name:              m.Name,
		Code:              m.Code,
		Address:           m.Address,
		ContactNumber:     m.ContactNumber,
		ContactPerson:     m.ContactPerson,
		Email:             m.Email,
		Website:           m.Website,
		GSTIN:             m.GSTIN,
		PAN:               m.PAN,
		CIN:               m.CIN,
	}
}

// FromDomain populates the persistence model from a domain Company entity.
func (m *CompanyModel) FromDomain(c *company.Company) {
	m.FromDomainAggregateRoot(c.BaseAggregateRoot)
	m.Name = c.Name
	m.Code = c.Code
	m.Address = c.Address
	m.ContactNumber = c.ContactNumber
	m.ContactPerson = c.ContactPerson
	m.Email = c.Email
	m.Website = c.Website
	m.GSTIN = c.GSTIN
	m.PAN = c.PAN
	m.CIN = c.CIN
}

// CompanyModelFromDomain creates a new persistence model from a domain Company entity.
func CompanyModelFromDomain(c *company.Company) *CompanyModel {
	m := &CompanyModel{}
	m.FromDomain(c)
	return m
}
