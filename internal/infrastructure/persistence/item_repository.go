package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizrecords/backend/internal/domain/catalog"
	"github.com/bizrecords/backend/internal/domain/shared"
	"github.com/bizrecords/backend/internal/infrastructure/persistence/models"
)

var itemSortColumns = map[string]bool{
	"created_at": true,
	"code":       true,
	"name":       true,
	"item_group": true,
}

// GormItemRepository implements catalog.Repository using GORM
type GormItemRepository struct {
	db *gorm.DB
}

// NewGormItemRepository creates a new GormItemRepository
func NewGormItemRepository(db *gorm.DB) *GormItemRepository {
	return &GormItemRepository{db: db}
}

// FindByID finds an item by ID within a company
func (r *GormItemRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*catalog.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds an item by its assigned code within a company
func (r *GormItemRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*catalog.Item, error) {
	var model models.ItemModel
	if err := r.db.WithContext(ctx).
		Where("company_id = ? AND code = ?", companyID, code).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns items of one kind for a company, with the total count
// before pagination
func (r *GormItemRepository) FindAll(ctx context.Context, companyID uuid.UUID, kind catalog.Kind, filter shared.Filter) ([]*catalog.Item, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ItemModel{}).
		Where("company_id = ? AND kind = ?", companyID, kind)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ? OR item_group ILIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyOrder(query, filter, itemSortColumns)
	query = applyPagination(query, filter)

	var itemModels []models.ItemModel
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, 0, err
	}

	items := make([]*catalog.Item, len(itemModels))
	for i := range itemModels {
		items[i] = itemModels[i].ToDomain()
	}
	return items, total, nil
}

// Save creates or updates an item
func (r *GormItemRepository) Save(ctx context.Context, i *catalog.Item) error {
	model := models.ItemModelFromDomain(i)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes an item by ID within a company
func (r *GormItemRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		Delete(&models.ItemModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByKind counts items of one kind for a company
func (r *GormItemRepository) CountByKind(ctx context.Context, companyID uuid.UUID, kind catalog.Kind) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ItemModel{}).
		Where("company_id = ? AND kind = ?", companyID, kind).
		Count(&count).Error
	return count, err
}

var _ catalog.Repository = (*GormItemRepository)(nil)
