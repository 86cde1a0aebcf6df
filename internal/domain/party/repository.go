package party

import (
	"context"

	"github.com/google/uuid"

	"github.com/bizrecords/backend/internal/domain/shared"
)

// Repository defines the persistence interface for parties
type Repository interface {
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*Party, error)
	FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*Party, error)
	FindAll(ctx context.Context, companyID uuid.UUID, kind Kind, filter shared.Filter) ([]*Party, int64, error)
	Save(ctx context.Context, p *Party) error
	Delete(ctx context.Context, companyID, id uuid.UUID) error
	CountByKind(ctx context.Context, companyID uuid.UUID, kind Kind) (int64, error)
}
