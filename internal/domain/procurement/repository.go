package procurement

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizrecords/backend/internal/domain/shared"
)

// Repository defines the persistence interface for purchase orders.
// Save writes the header and its line items in one transaction; a
// partially written order must never be observable.
type Repository interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*PurchaseOrder, error)
	FindByNumber(ctx context.Context, companyID uuid.UUID, poNumber string) (*PurchaseOrder, error)
	FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]*PurchaseOrder, int64, error)
	Save(ctx context.Context, order *PurchaseOrder) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
}
