package handler

import (
	"github.com/gin-gonic/gin"

	partyapp "github.com/bizrecords/backend/internal/application/party"
	"github.com/bizrecords/backend/internal/domain/party"
)

// PartyHandler handles supplier and buyer endpoints. Both kinds share
// the same record shape; the route decides which kind is addressed.
type PartyHandler struct {
	BaseHandler
	partyService *partyapp.Service
}

// NewPartyHandler creates a new PartyHandler
func NewPartyHandler(partyService *partyapp.Service) *PartyHandler {
	return &PartyHandler{partyService: partyService}
}

func (h *PartyHandler) create(kind party.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := getCompanyID(c)
		if err != nil {
			h.BadRequest(c, "Company context is required")
			return
		}

		var req partyapp.CreatePartyRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			h.BadRequest(c, err.Error())
			return
		}

		resp, err := h.partyService.Create(c.Request.Context(), companyID, kind, req)
		if err != nil {
			h.HandleError(c, err)
			return
		}
		h.Created(c, resp)
	}
}

func (h *PartyHandler) list(kind party.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID, err := getCompanyID(c)
		if err != nil {
			h.BadRequest(c, "Company context is required")
			return
		}

		var filter partyapp.PartyListFilter
		if err := c.ShouldBindQuery(&filter); err != nil {
			h.BadRequest(c, err.Error())
			return
		}

		parties, total, err := h.partyService.List(c.Request.Context(), companyID, kind, filter)
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
		h.SuccessWithMeta(c, parties, total, page, pageSize)
	}
}

func (h *PartyHandler) get(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	resp, err := h.partyService.GetByID(c.Request.Context(), companyID, id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *PartyHandler) update(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	var req partyapp.UpdatePartyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	resp, err := h.partyService.Update(c.Request.Context(), companyID, id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

func (h *PartyHandler) delete(c *gin.Context) {
	companyID, err := getCompanyID(c)
	if err != nil {
		h.BadRequest(c, "Company context is required")
		return
	}
	id, err := parseIDParam(c)
	if err != nil {
		h.BadRequest(c, "Invalid party ID")
		return
	}

	if err := h.partyService.Delete(c.Request.Context(), companyID, id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// RegisterRoutes registers supplier and buyer routes
func (h *PartyHandler) RegisterRoutes(rg *gin.RouterGroup) {
	suppliers := rg.Group("/suppliers")
	{
		suppliers.POST("", h.create(party.KindSupplier))
		suppliers.GET("", h.list(party.KindSupplier))
		suppliers.GET("/:id", h.get)
		suppliers.PUT("/:id", h.update)
		suppliers.DELETE("/:id", h.delete)
	}

	buyers := rg.Group("/buyers")
	{
		buyers.POST("", h.create(party.KindBuyer))
		buyers.GET("", h.list(party.KindBuyer))
		buyers.GET("/:id", h.get)
		buyers.PUT("/:id", h.update)
		buyers.DELETE("/:id", h.delete)
	}
}
