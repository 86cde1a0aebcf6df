package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/bizrecords/backend/internal/domain/procurement"
	"github.com/bizrecords/backend/internal/domain/shared"
	"github.com/bizrecords/backend/internal/infrastructure/persistence/models"
)

var purchaseOrderSortColumns = map[string]bool{
	"created_at":  true,
	"order_date":  true,
	"po_number":   true,
	"grand_total": true,
}

// GormPurchaseOrderRepository implements procurement.Repository using GORM
type GormPurchaseOrderRepository struct {
	db *gorm.DB
}

// NewGormPurchaseOrderRepository creates a new GormPurchaseOrderRepository
func NewGormPurchaseOrderRepository(db *gorm.DB) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{db: db}
}

// FindByID finds a purchase order by ID within a company, with its items
func (r *GormPurchaseOrderRepository) FindByID(ctx context.Context, companyID, id uuid.UUID) (*procurement.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal asc")
		}).
		Where("company_id = ? AND id = ?", companyID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByNumber finds a purchase order by its PO number within a company
func (r *GormPurchaseOrderRepository) FindByNumber(ctx context.Context, companyID uuid.UUID, poNumber string) (*procurement.PurchaseOrder, error) {
	var model models.PurchaseOrderModel
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("ordinal asc")
		}).
		Where("company_id = ? AND po_number = ?", companyID, poNumber).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAll returns purchase orders for a company, newest first by default,
// with the total count before pagination
func (r *GormPurchaseOrderRepository) FindAll(ctx context.Context, companyID uuid.UUID, filter shared.Filter) ([]*procurement.PurchaseOrder, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PurchaseOrderModel{}).
		Where("company_id = ?", companyID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("po_number ILIKE ? OR supplier_name ILIKE ?", pattern, pattern)
	}
	if supplierID, ok := filter.Filters["supplier_id"]; ok {
		query = query.Where("supplier_id = ?", supplierID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query = applyOrder(query, filter, purchaseOrderSortColumns)
	query = applyPagination(query, filter)

	var orderModels []models.PurchaseOrderModel
	if err := query.Preload("Items", func(db *gorm.DB) *gorm.DB {
		return db.Order("ordinal asc")
	}).Find(&orderModels).Error; err != nil {
		return nil, 0, err
	}

	orders := make([]*procurement.PurchaseOrder, len(orderModels))
	for i := range orderModels {
		orders[i] = orderModels[i].ToDomain()
	}
	return orders, total, nil
}

// Save writes the order header and its line items in one transaction.
// Items removed from the aggregate are deleted; the rest are upserted.
func (r *GormPurchaseOrderRepository) Save(ctx context.Context, order *procurement.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		model := models.PurchaseOrderModelFromDomain(order)

		if err := tx.Omit("Items").Save(model).Error; err != nil {
			return err
		}

		currentItemIDs := make([]uuid.UUID, len(order.Items))
		for i, item := range order.Items {
			currentItemIDs[i] = item.ID
		}

		if len(currentItemIDs) > 0 {
			if err := tx.Where("order_id = ? AND id NOT IN ?", order.ID, currentItemIDs).
				Delete(&models.PurchaseOrderItemModel{}).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("order_id = ?", order.ID).
				Delete(&models.PurchaseOrderItemModel{}).Error; err != nil {
				return err
			}
		}

		for i := range order.Items {
			order.Items[i].OrderID = order.ID
			itemModel := models.PurchaseOrderItemModelFromDomain(&order.Items[i])
			if err := tx.Save(itemModel).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

// Delete removes a purchase order and its line items within a company
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, companyID, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Where("company_id = ? AND id = ?", companyID, id).
			Delete(&models.PurchaseOrderModel{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return tx.Where("order_id = ?", id).
			Delete(&models.PurchaseOrderItemModel{}).Error
	})
}

var _ procurement.Repository = (*GormPurchaseOrderRepository)(nil)
