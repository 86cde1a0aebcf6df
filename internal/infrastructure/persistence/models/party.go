package models

import (
	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/party"
)

// PartyModel is the persistence model for the Party aggregate root.
// Suppliers and buyers share one table, separated by kind.
type PartyModel struct {
	CompanyAggregateModel
	Kind          string          `gorm:"type:varchar(20);not null;index:idx_party_company_kind"`
	Code          string          `gorm:"type:varchar(50);not null;uniqueIndex:idx_party_company_code,priority:2"`
	Name          string          `gorm:"type:varchar(200);not null"`
	Address       string          `gorm:"type:text"`
	ContactNumber string          `gorm:"type:varchar(50)"`
	ContactPerson string          `gorm:"type:varchar(100)"`
	Email         string          `gorm:"type:varchar(200)"`
	Website       string          `gorm:"type:varchar(200)"`
	GSTIN         string          `gorm:"type:varchar(15)"`
	PAN           string          `gorm:"type:varchar(10)"`
	CIN           string          `gorm:"type:varchar(21)"`
	MSMEID        string          `gorm:"type:varchar(50);column:msme_id"`
	CreditLimit   decimal.Decimal `gorm:"type:decimal(18,4);not null;default:0"`
	CreditPeriod  int             `gorm:"not null;default:0"`
}

// TableName returns the table name for GORM
func (PartyModel) TableName() string {
	return "parties"
}

// ToDomain converts the persistence model to a domain Party entity.
func (m *PartyModel) ToDomain() *party.Party {
	return &party.Party{
		CompanyAggregateRoot: m.ToDomainCompanyAggregateRoot(),
		Kind:                 party.Kind(m.Kind),
		Code:                 m.Code,
		Name:                 m.Name,
		Address:              m.Address,
		ContactNumber:        m.ContactNumber,
		ContactPerson:        m.ContactPerson,
		Email:                m.Email,
		Website:              m.Website,
		GSTIN:                m.GSTIN,
		PAN:                  m.PAN,
		CIN:                  m.CIN,
		MSMEID:               m.MSMEID,
		CreditLimit:          m.CreditLimit,
		CreditPeriod:         m.CreditPeriod,
	}
}

// FromDomain populates the persistence model from a domain Party entity.
func (m *PartyModel) FromDomain(p *party.Party) {
	m.FromDomainCompanyAggregateRoot(p.CompanyAggregateRoot)
	m.Kind = string(p.Kind)
	m.Code = p.Code
	m.Name = p.Name
	m.Address = p.Address
	m.ContactNumber = p.ContactNumber
	m.ContactPerson = p.ContactPerson
	m.Email = p.Email
	m.Website = p.Website
	m.GSTIN = p.GSTIN
	m.PAN = p.PAN
	m.CIN = p.CIN
	m.MSMEID = p.MSMEID
	m.CreditLimit = p.CreditLimit
	m.CreditPeriod = p.CreditPeriod
}

// PartyModelFromDomain creates a new persistence model from a domain Party entity.
func PartyModelFromDomain(p *party.Party) *PartyModel {
	m := &PartyModel{}
	m.FromDomain(p)
	return m
}
