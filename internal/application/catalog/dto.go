package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bizrecords/backend/internal/domain/catalog"
)

// CreateItemRequest represents a request to create a catalog item. The
// item code is assigned server side from the company's yearly sequence.
type CreateItemRequest struct {
	Name        string           `json:"name" binding:"required,min=1,max=200"`
	ItemType    string           `json:"item_type" binding:"max=100"`
	ItemGroup   string           `json:"item_group" binding:"max=100"`
	MachineName string           `json:"machine_name" binding:"max=200"`
	Description string           `json:"description"`
	HSNCode     string           `json:"hsn_code" binding:"max=20"`
	UoM         string           `json:"uom" binding:"max=20"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	Price       *decimal.Decimal `json:"price"`
	LeadTime    string           `json:"lead_time" binding:"max=100"`
}

// UpdateItemRequest represents a request to update a catalog item
type UpdateItemRequest struct {
	Name        *string          `json:"name" binding:"omitempty,min=1,max=200"`
	ItemType    *string          `json:"item_type" binding:"omitempty,max=100"`
	ItemGroup   *string          `json:"item_group" binding:"omitempty,max=100"`
	MachineName *string          `json:"machine_name" binding:"omitempty,max=200"`
	Description *string          `json:"description"`
	HSNCode     *string          `json:"hsn_code" binding:"omitempty,max=20"`
	UoM         *string          `json:"uom" binding:"omitempty,max=20"`
	TaxRate     *decimal.Decimal `json:"tax_rate"`
	Price       *decimal.Decimal `json:"price"`
	LeadTime    *string          `json:"lead_time" binding:"omitempty,max=100"`
}

// ItemResponse represents a catalog item in API responses
type ItemResponse struct {
	ID          uuid.UUID       `json:"id"`
	CompanyID   uuid.UUID       `json:"company_id"`
	Kind        string          `json:"kind"`
	Code        string          `json:"code"`
	Name        string          `json:"name"`
	ItemType    string          `json:"item_type"`
	ItemGroup   string          `json:"item_group"`
	MachineName string          `json:"machine_name"`
	Description string          `json:"description"`
	HSNCode     string          `json:"hsn_code"`
	UoM         string          `json:"uom"`
	TaxRate     decimal.Decimal `json:"tax_rate"`
	Price       decimal.Decimal `json:"price"`
	Currency    string          `json:"currency"`
	LeadTime    string          `json:"lead_time"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Version     int             `json:"version"`
}

// ItemListFilter represents filter options for the item list
type ItemListFilter struct {
	Search   string `form:"search"`
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	OrderBy  string `form:"order_by"`
	OrderDir string `form:"order_dir" binding:"omitempty,oneof=asc desc"`
}

// ToItemResponse converts a domain item to a response DTO
func ToItemResponse(i *catalog.Item) ItemResponse {
	return ItemResponse{
		ID:          i.ID,
		CompanyID:   i.CompanyID,
		Kind:        string(i.Kind),
		Code:        i.Code,
		Name:        i.Name,
		ItemType:    i.ItemType,
		ItemGroup:   i.ItemGroup,
		MachineName: i.MachineName,
		Description: i.Description,
		HSNCode:     i.HSNCode,
		UoM:         i.UoM,
		TaxRate:     i.TaxRate,
		Price:       i.Price.Amount(),
		Currency:    string(i.Price.Currency()),
		LeadTime:    i.LeadTime,
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
		Version:     i.Version,
	}
}

// ToItemResponses converts a slice of domain items
func ToItemResponses(items []*catalog.Item) []ItemResponse {
	responses := make([]ItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToItemResponse(item)
	}
	return responses
}
