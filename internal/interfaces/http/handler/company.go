package handler

import (
	"github.com/gin-gonic/gin"

	companyapp "github.com/bizrecords/backend/internal/application/company"
)

// CompanyHandler handles company master endpoints
type CompanyHandler struct {
	BaseHandler
	companyService *companyapp.Service
}

// NewCompanyHandler creates a new CompanyHandler
func NewCompanyHandler(companyService *companyapp.Service) *CompanyHandler {
	return &CompanyHandler{companyService: companyService}
}

// Create creates a new company
func (h *CompanyHandler) Create(c *gin.Context) {
	var req companyapp.CreateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Get retrieves a company by ID
func (h *CompanyHandler) Get(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	resp, err := h.companyService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// List lists all companies
func (h *CompanyHandler) List(c *gin.Context) {
	resp, err := h.companyService.List(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Update updates a company
func (h *CompanyHandler) Update(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	var req companyapp.UpdateCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.companyService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

// Delete removes a company
func (h *CompanyHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid company ID")
		return
	}

	if err := h.companyService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers company routes
func (h *CompanyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	companies := rg.Group("/companies")
	{
		companies.POST("", h.Create)
		companies.GET("", h.List)
		companies.GET("/:id", h.Get)
		companies.PUT("/:id", h.Update)
		companies.DELETE("/:id", h.Delete)
	}
}
