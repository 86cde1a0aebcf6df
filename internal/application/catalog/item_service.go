package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/bizrecords/backend/internal/domain/catalog"
	"github.com/bizrecords/backend/internal/domain/sequence"
	"github.com/bizrecords/backend/internal/domain/shared"
	"github.com/bizrecords/backend/internal/domain/shared/valueobject"
)

// Service handles sale and purchase item master operations. Item codes
// embed the calendar year and restart at 001 each year.
type Service struct {
	itemRepo     catalog.Repository
	sequenceRepo sequence.Repository
}

// NewService creates a new catalog Service
func NewService(itemRepo catalog.Repository, sequenceRepo sequence.Repository) *Service {
	return &Service{
		itemRepo:     itemRepo,
		sequenceRepo: sequenceRepo,
	}
}

func scopeForKind(kind catalog.Kind) (sequence.Scope, error) {
	switch kind {
	case catalog.KindSale:
		return sequence.ScopeSaleItem, nil
	case catalog.KindPurchase:
		return sequence.ScopePurchaseItem, nil
	default:
		return "", shared.NewDomainError("INVALID_KIND", "Unknown item kind")
	}
}

// Create creates a new catalog item of the given kind with a generated code
func (s *Service) Create(ctx context.Context, companyID uuid.UUID, kind catalog.Kind, req CreateItemRequest) (*ItemResponse, error) {
	scope, err := scopeForKind(kind)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	number, err := s.sequenceRepo.Next(ctx, companyID, scope.Key(year))
	if err != nil {
		return nil, err
	}
	code := sequence.FormatItemCode(number, year)

	item, err := catalog.NewItem(companyID, kind, code, req.Name)
	if err != nil {
		return nil, err
	}

	if req.ItemType != "" || req.ItemGroup != "" || req.MachineName != "" || req.Description != "" {
		if err := item.Update(req.Name, req.ItemType, req.ItemGroup, req.MachineName, req.Description); err != nil {
			return nil, err
		}
	}
	if req.HSNCode != "" || req.UoM != "" {
		if err := item.SetClassification(req.HSNCode, req.UoM); err != nil {
			return nil, err
		}
	}
	if req.Price != nil || req.TaxRate != nil {
		price := item.Price
		taxRate := item.TaxRate
		if req.Price != nil {
			price = valueobject.NewMoneyINR(*req.Price)
		}
		if req.TaxRate != nil {
			taxRate = *req.TaxRate
		}
		if err := item.SetPricing(price, taxRate); err != nil {
			return nil, err
		}
	}
	if req.LeadTime != "" {
		item.SetLeadTime(req.LeadTime)
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// GetByID retrieves an item by ID within a company
func (s *Service) GetByID(ctx context.Context, companyID, id uuid.UUID) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// List retrieves items of one kind for a company
func (s *Service) List(ctx context.Context, companyID uuid.UUID, kind catalog.Kind, filter ItemListFilter) ([]ItemResponse, int64, error) {
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

	items, total, err := s.itemRepo.FindAll(ctx, companyID, kind, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToItemResponses(items), total, nil
}

// Update updates an item's mutable fields. The code never changes.
func (s *Service) Update(ctx context.Context, companyID, id uuid.UUID, req UpdateItemRequest) (*ItemResponse, error) {
	item, err := s.itemRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil || req.ItemType != nil || req.ItemGroup != nil ||
		req.MachineName != nil || req.Description != nil {
		name := item.Name
		itemType := item.ItemType
		itemGroup := item.ItemGroup
		machineName := item.MachineName
		description := item.Description
		if req.Name != nil {
			name = *req.Name
		}
		if req.ItemType != nil {
			itemType = *req.ItemType
		}
		if req.ItemGroup != nil {
			itemGroup = *req.ItemGroup
		}
		if req.MachineName != nil {
			machineName = *req.MachineName
		}
		if req.Description != nil {
			description = *req.Description
		}
		if err := item.Update(name, itemType, itemGroup, machineName, description); err != nil {
			return nil, err
		}
	}
	if req.HSNCode != nil || req.UoM != nil {
		hsnCode := item.HSNCode
		uom := item.UoM
		if req.HSNCode != nil {
			hsnCode = *req.HSNCode
		}
		if req.UoM != nil {
			uom = *req.UoM
		}
		if err := item.SetClassification(hsnCode, uom); err != nil {
			return nil, err
		}
	}
	if req.Price != nil || req.TaxRate != nil {
		price := item.Price
		taxRate := item.TaxRate
		if req.Price != nil {
			price = valueobject.NewMoneyINR(*req.Price)
		}
		if req.TaxRate != nil {
			taxRate = *req.TaxRate
		}
		if err := item.SetPricing(price, taxRate); err != nil {
			return nil, err
		}
	}
	if req.LeadTime != nil {
		item.SetLeadTime(*req.LeadTime)
	}

	if err := s.itemRepo.Save(ctx, item); err != nil {
		return nil, err
	}

	response := ToItemResponse(item)
	return &response, nil
}

// Delete removes an item within a company
func (s *Service) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.itemRepo.Delete(ctx, companyID, id)
}
