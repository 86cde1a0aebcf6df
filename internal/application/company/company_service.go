package company

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/bizrecords/backend/internal/domain/company"
	"github.com/bizrecords/backend/internal/domain/shared"
)

// Service handles company master operations
type Service struct {
	companyRepo company.Repository
}

// NewService creates a new company Service
func NewService(companyRepo company.Repository) *Service {
	return &Service{companyRepo: companyRepo}
}

// Create creates a new company
func (s *Service) Create(ctx context.Context, req CreateCompanyRequest) (*CompanyResponse, error) {
	existing, err := s.companyRepo.FindByCode(ctx, req.Code)
	if err != nil && !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "Company with this code already exists")
	}

	c, err := company.NewCompany(req.Name, req.Code)
	if err != nil {
		return nil, err
	}

	c.SetContactInfo(req.Address, req.ContactNumber, req.ContactPerson, req.Email, req.Website)
	if req.GSTIN != "" || req.PAN != "" || req.CIN != "" {
		c.SetTaxIdentifiers(req.GSTIN, req.PAN, req.CIN)
	}

	if err := s.companyRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(c)
	return &response, nil
}

// GetByID retrieves a company by ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*CompanyResponse, error) {
	c, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(c)
	return &response, nil
}

// GetByCode retrieves a company by code
func (s *Service) GetByCode(ctx context.Context, code string) (*CompanyResponse, error) {
	c, err := s.companyRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}

	response := ToCompanyResponse(c)
	return &response, nil
}

// List retrieves all companies
func (s *Service) List(ctx context.Context) ([]CompanyResponse, error) {
	companies, err := s.companyRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToCompanyResponses(companies), nil
}

// Update updates a company
func (s *Service) Update(ctx context.Context, id uuid.UUID, req UpdateCompanyRequest) (*CompanyResponse, error) {
	c, err := s.companyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := c.Update(*req.Name); err != nil {
			return nil, err
		}
	}

	if req.Address != nil || req.ContactNumber != nil || req.ContactPerson != nil ||
		req.Email != nil || req.Website != nil {
		address := c.Address
		contactNumber := c.ContactNumber
		contactPerson := c.ContactPerson
		email := c.Email
		website := c.Website
		if req.Address != nil {
			address = *req.Address
		}
		if req.ContactNumber != nil {
			contactNumber = *req.ContactNumber
		}
		if req.ContactPerson != nil {
			contactPerson = *req.ContactPerson
		}
		if req.Email != nil {
			email = *req.Email
		}
		if req.Website != nil {
			website = *req.Website
		}
		c.SetContactInfo(address, contactNumber, contactPerson, email, website)
	}

	if req.GSTIN != nil || req.PAN != nil || req.CIN != nil {
		gstin := c.GSTIN
		pan := c.PAN
		cin := c.CIN
		if req.GSTIN != nil {
			gstin = *req.GSTIN
		}
		if req.PAN != nil {
			pan = *req.PAN
		}
		if req.CIN != nil {
			cin = *req.CIN
		}
		c.SetTaxIdentifiers(gstin, pan, cin)
	}

	if err := s.companyRepo.Save(ctx, c); err != nil {
		return nil, err
	}

	response := ToCompanyResponse(c)
	return &response, nil
}

// Delete removes a company
func (s *Service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.companyRepo.Delete(ctx, id)
}
