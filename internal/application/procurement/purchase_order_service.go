package procurement

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/bizrecords/backend/internal/domain/company"
	"github.com/bizrecords/backend/internal/domain/party"
	"github.com/bizrecords/backend/internal/domain/procurement"
	"github.com/bizrecords/backend/internal/domain/sequence"
	"github.com/bizrecords/backend/internal/domain/shared"
	infralog "github.com/bizrecords/backend/internal/infrastructure/logger"
)

const orderDateLayout = "2006-01-02"

// Service handles purchase order operations. PO numbers come from the
// company's yearly counter and creation is idempotent under a client
// supplied key.
type Service struct {
	orderRepo        procurement.Repository
	companyRepo      company.Repository
	partyRepo        party.Repository
	sequenceRepo     sequence.Repository
	idempotencyStore shared.IdempotencyStore
	idempotencyTTL   time.Duration
	logger           *zap.Logger
}

// NewService creates a new purchase order Service
func NewService(
	orderRepo procurement.Repository,
	companyRepo company.Repository,
	partyRepo party.Repository,
	sequenceRepo sequence.Repository,
	idempotencyStore shared.IdempotencyStore,
	idempotencyTTL time.Duration,
	logger *zap.Logger,
) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		orderRepo:        orderRepo,
		companyRepo:      companyRepo,
		partyRepo:        partyRepo,
		sequenceRepo:     sequenceRepo,
		idempotencyStore: idempotencyStore,
		idempotencyTTL:   idempotencyTTL,
		logger:           logger,
	}
}

// Create creates a purchase order. Preconditions are checked before any
// write: the company and supplier must exist and at least one line item
// must be present. When idempotencyKey is non empty, a replay of the
// same key returns the originally created order.
func (s *Service) Create(ctx context.Context, companyID uuid.UUID, req CreatePurchaseOrderRequest, idempotencyKey string) (*PurchaseOrderResponse, error) {
	if idempotencyKey != "" && s.idempotencyStore != nil {
		if existingID, err := s.idempotencyStore.Lookup(ctx, idempotencyKey); err != nil {
			infralog.WithLogger(ctx, s.logger).Warn("idempotency lookup failed, proceeding without replay protection",
				zap.Error(err))
		} else if existingID != "" {
			return s.replay(ctx, companyID, existingID)
		}
	}

	c, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, procurement.ErrMissingParty
		}
		return nil, err
	}

	supplier, err := s.partyRepo.FindByID(ctx, companyID, req.SupplierID)
	if err != nil {
		if shared.IsNotFound(err) {
			return nil, procurement.ErrMissingParty
		}
		return nil, err
	}
	if !supplier.IsSupplier() {
		return nil, procurement.ErrMissingParty
	}

	if len(req.Items) == 0 {
		return nil, procurement.ErrEmptyLineItems
	}

	orderDate, err := time.Parse(orderDateLayout, req.OrderDate)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "Order date must be YYYY-MM-DD")
	}

	var deliveryDate *time.Time
	if req.DeliveryDate != "" {
		parsed, err := time.Parse(orderDateLayout, req.DeliveryDate)
		if err != nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "Delivery date must be YYYY-MM-DD")
		}
		deliveryDate = &parsed
	}

	year := orderDate.Year()
	number, err := s.sequenceRepo.Next(ctx, companyID, sequence.ScopePurchaseOrder.Key(year))
	if err != nil {
		return nil, err
	}
	poNumber := sequence.FormatPONumber(c.Code, year, number)

	order, err := procurement.NewPurchaseOrder(companyID, poNumber, supplier.ID, supplier.Name, orderDate)
	if err != nil {
		return nil, err
	}
	order.SetTerms(req.QuotationRef, req.PaymentTerms, deliveryDate, req.Freight.Decimal, req.OtherInstructions)

	for _, item := range req.Items {
		if _, err := order.AddLineItem(
			item.Description, item.Make, item.Unit,
			item.Quantity.Decimal, item.UnitRate.Decimal, item.Discount.Decimal,
		); err != nil {
			return nil, err
		}
	}

	if err := order.Validate(); err != nil {
		return nil, err
	}

	if err := s.orderRepo.Save(ctx, order); err != nil {
		return nil, err
	}

	if idempotencyKey != "" && s.idempotencyStore != nil {
		stored, err := s.idempotencyStore.Remember(ctx, idempotencyKey, order.ID.String(), s.idempotencyTTL)
		if err != nil {
			infralog.WithLogger(ctx, s.logger).Warn("failed to record idempotency key", zap.Error(err))
		} else if !stored {
			// a concurrent request with the same key won; theirs is the
			// order of record, ours is removed
			if winnerID, lookupErr := s.idempotencyStore.Lookup(ctx, idempotencyKey); lookupErr == nil && winnerID != "" && winnerID != order.ID.String() {
				if delErr := s.orderRepo.Delete(ctx, companyID, order.ID); delErr != nil {
					infralog.WithLogger(ctx, s.logger).Error("failed to remove duplicate order", zap.Error(delErr))
				}
				return s.replay(ctx, companyID, winnerID)
			}
		}
	}

	infralog.WithLogger(ctx, s.logger).Info("purchase order created",
		zap.String("po_number", order.PONumber),
		zap.String("company_id", companyID.String()),
		zap.Int("line_items", len(order.Items)))

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// replay fetches the order a previous request with the same key created
func (s *Service) replay(ctx context.Context, companyID uuid.UUID, orderID string) (*PurchaseOrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return nil, shared.NewDomainError("IDEMPOTENCY_CONFLICT", "Stored idempotency result is not an order ID")
	}
	order, err := s.orderRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}
	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// GetByID retrieves a purchase order with its line items
func (s *Service) GetByID(ctx context.Context, companyID, id uuid.UUID) (*PurchaseOrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, companyID, id)
	if err != nil {
		return nil, err
	}

	response := ToPurchaseOrderResponse(order)
	return &response, nil
}

// List retrieves purchase orders for a company
func (s *Service) List(ctx context.Context, companyID uuid.UUID, filter PurchaseOrderListFilter) ([]PurchaseOrderResponse, int64, error) {
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
	if filter.SupplierID != nil {
		domainFilter.Filters["supplier_id"] = *filter.SupplierID
	}

	orders, total, err := s.orderRepo.FindAll(ctx, companyID, domainFilter)
	if err != nil {
		return nil, 0, err
	}
	return ToPurchaseOrderResponses(orders), total, nil
}

// Delete removes a purchase order and its line items
func (s *Service) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return s.orderRepo.Delete(ctx, companyID, id)
}

// NextNumber previews the PO number the next creation would receive.
// The counter is not consumed; two previews can return the same number.
func (s *Service) NextNumber(ctx context.Context, companyID uuid.UUID) (*NextNumberResponse, error) {
	c, err := s.companyRepo.FindByID(ctx, companyID)
	if err != nil {
		return nil, err
	}

	year := time.Now().Year()
	number, err := s.sequenceRepo.Peek(ctx, companyID, sequence.ScopePurchaseOrder.Key(year))
	if err != nil {
		return nil, err
	}

	return &NextNumberResponse{
		PONumber: sequence.FormatPONumber(c.Code, year, number),
	}, nil
}
