package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizrecords/backend/internal/domain/party"
	"github.com/bizrecords/backend/internal/domain/shared"
	"github.com/bizrecords/backend/internal/infrastructure/persistence/models"
)

var partySortColumns = map[string]bool{
	"created_at": true,
	"code":       true,
	"name":       true,
}

// GormPartyRepository implements party.Repository using GORM
type GormPartyRepository struct {
	db *gorm.DB
}

// NewGormPartyRepository creates a new GormPartyRepository
func NewGormPartyRepository(db *gorm.DB) *GormPartyRepository {
	return &GormPartyRepository{db: db}
}

// FindByID finds a party by ID within a company
func (r *GormPartyRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*party.Party, error) {
	var model models.PartyModel
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

// FindByCode finds a party by its assigned code within a company
func (r *GormPartyRepository) FindByCode(ctx context.Context, companyID uuid.UUID, code string) (*party.Party, error) {
	var model models.PartyModel
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

// FindAll returns parties of one kind for a company, with the total count
// before pagination
func (r *GormPartyRepository) FindAll(ctx context.Context, companyID uuid.UUID, kind party.Kind, filter shared.Filter) ([]*party.Party, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PartyModel{}).
		Where("company_id = ? AND kind = ?", companyID, kind)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyOrder(query, filter, partySortColumns)
	query = applyPagination(query, filter)

	var partyModels []models.PartyModel
	if err := query.Find(&partyModels).Error; err != nil {
		return nil, 0, err
	}

	parties := make([]*party.Party, len(partyModels))
	for i := range partyModels {
		parties[i] = partyModels[i].ToDomain()
	}
	return parties, total, nil
}

// Save creates or updates a party
func (r *GormPartyRepository) Save(ctx context.Context, p *party.Party) error {
	model := models.PartyModelFromDomain(p)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a party by ID within a company
func (r *GormPartyRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Where("company_id = ? AND id = ?", companyID, id).
		Delete(&models.PartyModel{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// CountByKind counts parties of one kind for a company
func (r *GormPartyRepository) CountByKind(ctx context.Context, companyID uuid.UUID, kind party.Kind) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.PartyModel{}).
		Where("company_id = ? AND kind = ?", companyID, kind).
		Count(&count).Error
	return count, err
}

var _ party.Repository = (*GormPartyRepository)(nil)
