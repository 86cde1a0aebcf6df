package company

import (
	"strings"
	"time"

	"github.com/bizrecords/backend/internal/domain/shared"
)

// Company represents an issuing business entity. The user works against
// exactly one active company at a time; its ID scopes every other record.
type Company struct {
	shared.BaseAggregateRoot
	Name          string
	Code          string
	Address       string
	ContactNumber string
	ContactPerson string
	Email         string
	Website       string
	GSTIN         string
	PAN           string
	CIN           string
}

// NewCompany creates a new company with required fields
func NewCompany(name, code string) (*Company, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateCode(code); err != nil {
		return nil, err
	}

	return &Company{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Name:              name,
		Code:              strings.ToUpper(code),
	}, nil
}

// Update updates the company's basic information
func (c *Company) Update(name string) error {
	if err := validateName(name); err != nil {
		return err
	}
	c.Name = name
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
	return nil
}

// SetContactInfo sets the contact block
func (c *Company) SetContactInfo(address, contactNumber, contactPerson, email, website string) {
	c.Address = address
	c.ContactNumber = contactNumber
	c.ContactPerson = contactPerson
	c.Email = email
	c.Website = website
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

// SetTaxIdentifiers sets the statutory registration identifiers
func (c *Company) SetTaxIdentifiers(gstin, pan, cin string) {
	c.GSTIN = strings.ToUpper(gstin)
	c.PAN = strings.ToUpper(pan)
	c.CIN = strings.ToUpper(cin)
	c.UpdatedAt = time.Now()
	c.IncrementVersion()
}

func validateName(name string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Company name cannot exceed 200 characters")
	}
	return nil
}

func validateCode(code string) error {
	if strings.TrimSpace(code) == "" {
		return shared.NewDomainError("INVALID_CODE", "Company code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Company code cannot exceed 50 characters")
	}
	return nil
}
