package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizrecords/backend/internal/domain/shared"
)

// Repository defines the persistence interface for catalog items
type Repository interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Item, error)
	FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*Item, error)
	FindAll(ctx context.Context, companyID uuid.UUID, kind Kind, filter shared.Filter) ([]*Item, int64, error)
	Save(ctx context.Context, i *Item) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
	CountByKind(ctx context.Context, companyID uuid.UUID, kind Kind) (int64, error)
}
