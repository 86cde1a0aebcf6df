package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/bizrecords/backend/internal/application/catalog"
	"github.com/bizrecords/backend/internal/domain/catalog"
)

// ItemHandler handles sale and purchase item catalog endpoints
type ItemHandler struct {
	BaseHandler
	itemService *catalogapp.Service
}

// NewItemHandler creates a new ItemHandler
func NewItemHandler(itemService *catalogapp.Service) *ItemHandler {
	return &ItemHandler{itemService: itemService}
}

func (h *ItemHandler) create(kind catalog.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := getCompanyID(c)
		if err != nil {
			h.BadRequest(c, "Company context is required")
			return
		}

		var req catalogapp.CreateItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}

		resp, err := h.itemService.Create(c.Request.Context(), companyID, kind, req)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Created(c, resp)
	}
}

func (h *ItemHandler) list(kind catalog.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := getCompanyID(c)
		if err != nil {
			h.BadRequest(c, "Company context is required")
			return
		}

		var filter catalogapp.ItemListFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			h.BadRequest(c, err.Error())
			return
		}

		items, total, err := h.itemService.List(c.Request.Context(), companyID, kind, filter)
		if err != nil {
			h.HandleError(c, err)
			return
		}

		page, pageSize := filter.Page, filter.PageSize
		if page == 0 {
			page = 1
		}
		if pageSize == 0 {
			pageSize = 20
		}
		h.SuccessWithMeta(c, items, total, page, pageSize)
	}
}

func (h *ItemHandler) get(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	resp, err := h.itemService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *ItemHandler) update(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	var req catalogapp.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.itemService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *ItemHandler) delete(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid item ID")
		return
	}

	if err := h.itemService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers sale and purchase item routes
func (h *ItemHandler) RegisterRoutes(rg *gin.RouterGroup) {
	saleItems := rg.Group("/sale-items")
	{
		saleItems.POST("", h.create(catalog.KindSale))
		saleItems.GET("", h.list(catalog.KindSale))
		saleItems.GET("/:id", h.get)
		saleItems.PUT("/:id", h.update)
		saleItems.DELETE("/:id", h.delete)
	}

	purchaseItems := rg.Group("/purchase-items")
	{
		purchaseItems.POST("", h.create(catalog.KindPurchase))
		purchaseItems.GET("", h.list(catalog.KindPurchase))
		purchaseItems.GET("/:id", h.get)
		purchaseItems.PUT("/:id", h.update)
		purchaseItems.DELETE("/:id", h.delete)
	}
}
