package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizrecords/backend/internal/domain/company"
	"github.com/bizrecords/backend/internal/domain/shared"
	"github.com/bizrecords/backend/internal/infrastructure/persistence/models"
)

// GormCompanyRepository implements company.Repository using GORM
type GormCompanyRepository struct {
	db *gorm.DB
}

// NewGormCompanyRepository creates a new GormCompanyRepository
func NewGormCompanyRepository(db *gorm.DB) *GormCompanyRepository {
	return &GormCompanyRepository{db: db}
}

// FindByID finds a company by its ID
func (r *GormCompanyRepository) FindByID(ctx context.Context, id uuid.UUID) (*company.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByCode finds a company by its unique code
func (r *GormCompanyRepository) FindByCode(ctx context.Context, code string) (*company.Company, error) {
	var model models.CompanyModel
	if err := r.db.WithContext(ctx).
		Where("code = ?", strings.ToUpper(code)).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns all companies ordered by name
func (r *GormCompanyRepository) FindAll(ctx context.Context) ([]*company.Company, error) {
	var companyModels []models.CompanyModel
	if err := r.db.WithContext(ctx).
		Order("name asc").
		Find(&companyModels).Error; err != nil {
		return nil, err
	}

	companies := make([]*company.Company, len(companyModels))
	for i := range companyModels {
		companies[i] = companyModels[i].ToDomain()
	}
	return companies, nil
}

// Save creates or updates a company
func (r *GormCompanyRepository) Save(ctx context.Context, c *company.Company) error {
	model := models.CompanyModelFromDomain(c)
	return r.db.WithContext(ctx).Save(model).Error
}

// Delete removes a company by ID
func (r *GormCompanyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CompanyModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

var _ company.Repository = (*GormCompanyRepository)(nil)
