package company

import (
	"time"

	"github.com/google/uuid"

	"github.com/bizrecords/backend/internal/domain/company"
)

// CreateCompanyRequest represents a request to create a new company
type CreateCompanyRequest struct {
	Name          string `json:"name" binding:"required,min=1,max=200"`
	Code          string `json:"code" binding:"required,min=1,max=50"`
	Address       string `json:"address" binding:"max=500"`
	ContactNumber string `json:"contact_number" binding:"max=50"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Website       string `json:"website" binding:"max=200"`
	GSTIN         string `json:"gstin" binding:"omitempty,gstin"`
	PAN           string `json:"pan" binding:"omitempty,pan"`
	CIN           string `json:"cin" binding:"max=21"`
}

// UpdateCompanyRequest represents a request to update a company
type UpdateCompanyRequest struct {
	Name          *string `json:"name" binding:"omitempty,min=1,max=200"`
	Address       *string `json:"address" binding:"omitempty,max=500"`
	ContactNumber *string `json:"contact_number" binding:"omitempty,max=50"`
	ContactPerson *string `json:"contact_person" binding:"omitempty,max=100"`
	Email         *string `json:"email" binding:"omitempty,email,max=200"`
	Website       *string `json:"website" binding:"omitempty,max=200"`
	GSTIN         *string `json:"gstin" binding:"omitempty,gstin"`
	PAN           *string `json:"pan" binding:"omitempty,pan"`
	CIN           *string `json:"cin" binding:"omitempty,max=21"`
}

// CompanyResponse represents a company in API responses
type CompanyResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	Code          string    `json:"code"`
	Address       string    `json:"address"`
	ContactNumber string    `json:"contact_number"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Website       string    `json:"website"`
	GSTIN         string    `json:"gstin"`
	PAN           string    `json:"pan"`
	CIN           string    `json:"cin"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
	Version       int       `json:"version"`
}

// ToCompanyResponse converts a domain company to a response DTO
func ToCompanyResponse(c *company.Company) CompanyResponse {
	return CompanyResponse{
		ID:            c.ID,
		Name:          c.Name,
		Code:          c.Code,
		Address:       c.Address,
		ContactNumber: c.ContactNumber,
		ContactPerson: c.ContactPerson,
		Email:         c.Email,
		Website:       c.Website,
		GSTIN:         c.GSTIN,
		PAN:           c.PAN,
		CIN:           c.CIN,
		CreatedAt:     c.CreatedAt,
		UpdatedAt:     c.UpdatedAt,
		Version:       c.Version,
	}
}

// ToCompanyResponses converts a slice of domain companies
func ToCompanyResponses(companies []*company.Company) []CompanyResponse {
	responses := make([]CompanyResponse, len(companies))
	for i, c := range companies {
		responses[i] = ToCompanyResponse(c)
	}
	return responses
}
