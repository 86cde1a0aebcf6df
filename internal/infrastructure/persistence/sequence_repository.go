package persistence

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizrecords/backend/internal/domain/sequence"
)

// GormSequenceRepository implements sequence.Repository on top of the
// document_sequences table. Allocation is a single upsert that increments
// and returns the counter, so two concurrent callers can never be handed
// the same number.
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GormSequenceRepository
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next atomically increments and returns the counter for (companyID, key).
// A missing row starts at 1.
func (r *GormSequenceRepository) Next(ctx context.Context, companyID uuid.UUID, key string) (int, error) {
	var value int
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO document_sequences (company_id, scope, value, updated_at)
		VALUES (?, ?, 1, NOW())
		ON CONFLICT (company_id, scope)
		DO UPDATE SET value = document_sequences.value + 1, updated_at = NOW()
		RETURNING value`,
		companyID, key,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value, nil
}

// Peek returns the number Next would hand out without consuming it.
func (r *GormSequenceRepository) Peek(ctx context.Context, companyID uuid.UUID, key string) (int, error) {
	var value int
	err := r.db.WithContext(ctx).Raw(`
		SELECT COALESCE(
			(SELECT value FROM document_sequences WHERE company_id = ? AND scope = ?),
			0)`,
		companyID, key,
	).Scan(&value).Error
	if err != nil {
		return 0, err
	}
	return value + 1, nil
}

var _ sequence.Repository = (*GormSequenceRepository)(nil)
