package party

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizrecords/backend/internal/domain/party"
	"github.com/bizrecords/backend/internal/domain/sequence"
	"github.com/bizrecords/backend/internal/domain/shared"
)

// Service handles supplier and buyer master operations. Party codes are
// allocated from the company's counters, never taken from the request.
type Service struct {
	partyRepo    party.Repository
	sequenceRepo sequence.Repository
}

// NewService creates a new party Service
func NewService(partyRepo party.Repository, sequenceRepo sequence.Repository) *Service {
	return &Service{
		partyRepo:    partyRepo,
		sequenceRepo: sequenceRepo,
	}
}

func scopeForKind(kind party.Kind) (sequence.Scope, error) {
	switch kind {
	case party.KindSupplier:
		return sequence.ScopeSupplier, nil
	case party.KindBuyer:
		return sequence.ScopeBuyer, nil
	default:
		return "", shared.NewDomainError("INVALID_KIND", "Unknown party kind")
	}
}

// Create creates a new party of the given kind with a generated code
func (s *Service) Create(ctx context.Context, companyID uuid.UUID, kind party.Kind, req CreatePartyRequest) (*PartyResponse, error) {
	scope, err := scopeForKind(kind)
	if err != nil {
		return nil, err
	}

	number, err := s.sequenceRepo.Next(ctx, companyID, scope.Key(time.Now().Year()))
	if err != nil {
		return nil, err
	}
	code, err := sequence.FormatPartyCode(scope, number)
	if err != nil {
		return nil, err
	}

	p, err := party.NewParty(companyID, kind, code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.Address != "" {
		if err := p.SetAddress(req.Address); err != nil {
			return nil, err
		}
	}
	if req.ContactPerson != "" || req.ContactNumber != "" || req.Email != "" || req.Website != "" {
		if err := p.SetContact(req.ContactPerson, req.ContactNumber, req.Email, req.Website); err != nil {
			return nil, err
		}
	}
	if req.GSTIN != "" || req.PAN != "" || req.CIN != "" || req.MSMEID != "" {
		if err := p.SetStatutoryIDs(req.GSTIN, req.PAN, req.CIN, req.MSMEID); err != nil {
			return nil, err
		}
	}
	if req.CreditLimit != nil || req.CreditPeriod != nil {
		creditLimit := p.CreditLimit
		creditPeriod := p.CreditPeriod
		if req.CreditLimit != nil {
			creditLimit = *req.CreditLimit
		}
		if req.CreditPeriod != nil {
			creditPeriod = *req.CreditPeriod
		}
		if err := p.SetCreditTerms(creditLimit, creditPeriod); err != nil {
			return nil, err
		}
	}

	if err := s.partyRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartyResponse(p)
	return &response, nil
}

// GetByID retrieves a party by ID within a company
func (s *Service) GetByID(ctx context.Context, companyID, id uuid.UUID) (*PartyResponse, error) {
	p, err := s.partyRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	response := ToPartyResponse(p)
	return &response, nil
}

// List retrieves parties of one kind for a company
func (s *Service) List(ctx context.Context, companyID uuid.UUID, kind party.Kind, filter PartyListFilter) ([]PartyResponse, int64, error) {
	domainFilter := shared.DefaultFilter()
	if filter.Page > 0 {
		domainFilter.Page = filter.Page
	}
	if filter.PageSize > 0 {
		domainFilter.PageSize = filter.PageSize
	}
	if filter.OrderBy != "" {
		domainFilter.OrderBy = filter.OrderBy
	}
	if filter.OrderDir != "" {
		domainFilter.OrderDir = filter.OrderDir
	}
	domainFilter.Search = filter.Search

	parties, total, err := s.partyRepo.FindAll(ctx, companyID, kind, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToPartyResponses(parties), total, nil
}

// Update updates a party's mutable fields
func (s *Service) Update(ctx context.Context, companyID, id uuid.UUID, req UpdatePartyRequest) (*PartyResponse, error) {
	p, err := s.partyRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if err := p.Update(*req.Name); err != nil {
			return nil, err
		}
	}
	if req.Address != nil {
		if err := p.SetAddress(*req.Address); err != nil {
			return nil, err
		}
	}
	if req.ContactPerson != nil || req.ContactNumber != nil || req.Email != nil || req.Website != nil {
		contactPerson := p.ContactPerson
		contactNumber := p.ContactNumber
		email := p.Email
		website := p.Website
		if req.ContactPerson != nil {
			contactPerson = *req.ContactPerson
		}
		if req.ContactNumber != nil {
			contactNumber = *req.ContactNumber
		}
		if req.Email != nil {
			email = *req.Email
		}
		if req.Website != nil {
			website = *req.Website
		}
		if err := p.SetContact(contactPerson, contactNumber, email, website); err != nil {
			return nil, err
		}
	}
	if req.GSTIN != nil || req.PAN != nil || req.CIN != nil || req.MSMEID != nil {
		gstin := p.GSTIN
		pan := p.PAN
		cin := p.CIN
		msmeID := p.MSMEID
		if req.GSTIN != nil {
			gstin = *req.GSTIN
		}
		if req.PAN != nil {
			pan = *req.PAN
		}
		if req.CIN != nil {
			cin = *req.CIN
		}
		if req.MSMEID != nil {
			msmeID = *req.MSMEID
		}
		if err := p.SetStatutoryIDs(gstin, pan, cin, msmeID); err != nil {
			return nil, err
		}
	}
	if req.CreditLimit != nil || req.CreditPeriod != nil {
		creditLimit := p.CreditLimit
		creditPeriod := p.CreditPeriod
		if req.CreditLimit != nil {
			creditLimit = *req.CreditLimit
		}
		if req.CreditPeriod != nil {
			creditPeriod = *req.CreditPeriod
		}
		if err := p.SetCreditTerms(creditLimit, creditPeriod); err != nil {
			return nil, err
		}
	}

	if err := s.partyRepo.Save(ctx, p); err != nil {
		return nil, err
	}

	response := ToPartyResponse(p)
	return &response, nil
}

// Delete removes a party within a company
func (s *Service) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.partyRepo.Delete(ctx, companyID, id)
}
