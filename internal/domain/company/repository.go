package company

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the persistence interface for companies
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Company, error)
	FindByCode(ctx context.Context, code string) (*Company, error)
	FindAll(ctx context.Context) ([]*Company, error)
	Save(ctx context.Context, c *Company) error
	Delete(ctx context.Context, id uuid.UUID) error
}
