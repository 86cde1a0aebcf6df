package sequence

import (
	"context"

	"github.com/google/uuid"
)

// Repository allocates document numbers. Next must increment and return
// the counter in one atomic statement so concurrent callers never see
// the same value; Peek returns the value Next would hand out without
// consuming it.
type Repository interface {
	Next(ctx context.Context, companyID uuid.UUID, key string) (int, error)
	Peek(ctx context.Context, companyID uuid.UUID, key string) (int, error)
}
