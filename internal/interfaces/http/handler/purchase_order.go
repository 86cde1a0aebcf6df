package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	procurementapp "github.com/bizrecords/backend/internal/application/procurement"
)

// IdempotencyKeyHeader carries the client supplied idempotency key for
// order creation. Replays of the same key return the original order.
const IdempotencyKeyHeader = "Idempotency-Key"

// PurchaseOrderHandler handles purchase order endpoints
type PurchaseOrderHandler struct {
	BaseHandler
	orderService    *procurementapp.Service
	documentService *procurementapp.DocumentService
}

// NewPurchaseOrderHandler creates a new PurchaseOrderHandler
func NewPurchaseOrderHandler(orderService *procurementapp.Service, documentService *procurementapp.DocumentService) *PurchaseOrderHandler {
	return &PurchaseOrderHandler{
		orderService:    orderService,
		documentService: documentService,
	}
}

// Create creates a purchase order from the submitted line items
func (h *PurchaseOrderHandler) Create(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}

	var req procurementapp.CreatePurchaseOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	idempotencyKey := c.GetHeader(IdempotencyKeyHeader)
	resp, err := h.orderService.Create(c.Request.Context(), companyID, req, idempotencyKey)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get retrieves a purchase order with its line items and totals
func (h *PurchaseOrderHandler) Get(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID")
		return
	}

	resp, err := h.orderService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List lists purchase orders for the acting company
func (h *PurchaseOrderHandler) List(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}

	var filter procurementapp.PurchaseOrderListFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	orders, total, err := h.orderService.List(c.Request.Context(), companyID, filter)
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
	h.SuccessWithMeta(c, orders, total, page, pageSize)
}

// Delete removes a purchase order and its line items
func (h *PurchaseOrderHandler) Delete(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID")
		return
	}

	if err := h.orderService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// NextNumber previews the next purchase order number without consuming it
func (h *PurchaseOrderHandler) NextNumber(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}

	resp, err := h.orderService.NextNumber(c.Request.Context(), companyID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// RenderPDF streams the purchase order as a printable A4 PDF
func (h *PurchaseOrderHandler) RenderPDF(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid purchase order ID")
		return
	}

	doc, err := h.documentService.RenderPDF(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", doc.FileName))
	c.Data(http.StatusOK, "application/pdf", doc.Data)
}

// RegisterRoutes registers purchase order routes
func (h *PurchaseOrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/purchase-orders")
	{
		orders.POST("", h.Create)
		orders.GET("", h.List)
		orders.GET("/next-number", h.NextNumber)
		orders.GET("/:id", h.Get)
		orders.GET("/:id/pdf", h.RenderPDF)
		orders.DELETE("/:id", h.Delete)
	}
}
