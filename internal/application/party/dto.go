package party

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/party"
)

// CreatePartyRequest represents a request to create a supplier or buyer.
// The party code is assigned server side from the company's sequence.
type CreatePartyRequest struct {
	Name          string           `json:"name" binding:"required,min=1,max=200"`
	Address       string           `json:"address" binding:"max=500"`
	ContactNumber string           `json:"contact_number" binding:"max=50"`
	ContactPerson string           `json:"contact_person" binding:"max=100"`
	Email         string           `json:"email" binding:"omitempty,email,max=200"`
	Website       string           `json:"website" binding:"max=200"`
	GSTIN         string           `json:"gstin" binding:"omitempty,gstin"`
	PAN           string           `json:"pan" binding:"omitempty,pan"`
	CIN           string           `json:"cin" binding:"max=21"`
	MSMEID        string           `json:"msme_id" binding:"max=50"`
	CreditLimit   *decimal.Decimal `json:"credit_limit"`
	CreditPeriod  *int             `json:"credit_period" binding:"omitempty,min=0,max=365"`
}

// UpdatePartyRequest represents a request to update a party. The code and
// kind are immutable.
type UpdatePartyRequest struct {
	Name          *string          `json:"name" binding:"omitempty,min=1,max=200"`
	Address       *string          `json:"address" binding:"omitempty,max=500"`
	ContactNumber *string          `json:"contact_number" binding:"omitempty,max=50"`
	ContactPerson *string          `json:"contact_person" binding:"omitempty,max=100"`
	Email         *string          `json:"email" binding:"omitempty,email,max=200"`
	Website       *string          `json:"website" binding:"omitempty,max=200"`
	GSTIN         *string          `json:"gstin" binding:"omitempty,gstin"`
	PAN           *string          `json:"pan" binding:"omitempty,pan"`
	CIN           *string          `json:"cin" binding:"omitempty,max=21"`
	MSMEID        *string          `json:"msme_id" binding:"omitempty,max=50"`
	CreditLimit   *decimal.Decimal `json:"credit_limit"`
	CreditPeriod  *int             `json:"credit_period" binding:"omitempty,min=0,max=365"`
}

// PartyResponse represents a party in API responses
type PartyResponse struct {
	ID            uuid.UUID       `json:"id"`
	CompanyID     uuid.UUID       `json:"company_id"`
	Kind          string          `json:"kind"`
	Code          string          `json:"code"`
	Name          string          `json:"name"`
	Address       string          `json:"address"`
	ContactNumber string          `json:"contact_number"`
	ContactPerson string          `json:"contact_person"`
	Email         string          `json:"email"`
	Website       string          `json:"website"`
	GSTIN         string          `json:"gstin"`
	PAN           string          `json:"pan"`
	CIN           string          `json:"cin"`
	MSMEID        string          `json:"msme_id"`
	CreditLimit   decimal.Decimal `json:"credit_limit"`
	CreditPeriod  int             `json:"credit_period"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
	Version       int             `json:"version"`
}

// PartyListFilter represents filter options for the party list
type PartyListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToPartyResponse converts a domain party to a response DTO
func ToPartyResponse(p *party.Party) PartyResponse {
	return PartyResponse{
		ID:            p.ID,
		CompanyID:     p.CompanyID,
		Kind:          string(p.Kind),
		Code:          p.Code,
		Name:          p.Name,
		Address:       p.Address,
		ContactNumber: p.ContactNumber,
		ContactPerson: p.ContactPerson,
		Email:         p.Email,
		Website:       p.Website,
		GSTIN:         p.GSTIN,
		PAN:           p.PAN,
		CIN:           p.CIN,
		MSMEID:        p.MSMEID,
		CreditLimit:   p.CreditLimit,
		CreditPeriod:  p.CreditPeriod,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
		Version:       p.Version,
	}
}

// ToPartyResponses converts a slice of domain parties
func ToPartyResponses(parties []*party.Party) []PartyResponse {
	responses := make([]PartyResponse, len(parties))
	for i, p := range parties {
		responses[i] = ToPartyResponse(p)
	}
	return responses
}
