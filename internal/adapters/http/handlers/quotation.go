package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insurely/sales-service/internal/adapters/http/dto"
	"github.com/insurely/sales-service/internal/app"
)

// QuotationHandler handles the /quotations resource.
type QuotationHandler struct {
	service *app.QuotationService
}

// NewQuotationHandler creates a new quotation handler.
func NewQuotationHandler(service *app.QuotationService) *QuotationHandler {
	return &QuotationHandler{
		service: service,
	}
}

// List handles GET /quotations.
func (h *QuotationHandler) List(c *gin.Context) {
	quotations, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewQuotationCollection(quotations))
}

// Create handles POST /quotations. The customer field is a reference URI;
// a URI that does not parse is a malformed request, one that parses but
// does not resolve is a customer.notFound violation.
func (h *QuotationHandler) Create(c *gin.Context) {
	var req dto.QuotationRequest
	if !bindJSON(c, &req) {
		return
	}

	quotation, err := req.ToDomain()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), quotation)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", dto.ItemPath("quotations", created.ID))
	respondHAL(c, http.StatusCreated, dto.NewQuotationResponse(created))
}

// Get handles GET /quotations/:id.
func (h *QuotationHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "quotation")
	if !ok {
		return
	}

	quotation, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewQuotationResponse(quotation))
}

// Put handles PUT /quotations/:id.
func (h *QuotationHandler) Put(c *gin.Context) {
	id, ok := pathID(c, "quotation")
	if !ok {
		return
	}

	var req dto.QuotationRequest
	if !bindJSON(c, &req) {
		return
	}

	quotation, err := req.ToDomain()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	replaced, err := h.service.Replace(c.Request.Context(), id, quotation)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewQuotationResponse(replaced))
}

// Patch handles PATCH /quotations/:id.
func (h *QuotationHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "quotation")
	if !ok {
		return
	}

	var req dto.QuotationPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	patch, err := req.ToPatch()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	patched, err := h.service.Patch(c.Request.Context(), id, patch)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewQuotationResponse(patched))
}

// Delete handles DELETE /quotations/:id.
func (h *QuotationHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "quotation")
	if !ok {
		return
	}

	err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RegisterQuotationRoutes registers the quotation resource on the given router group.
func (h *QuotationHandler) RegisterQuotationRoutes(rg *gin.RouterGroup) {
	quotations := rg.Group("/quotations")
	quotations.GET("", h.List)
	quotations.POST("", h.Create)
	quotations.GET("/:id", h.Get)
	quotations.PUT("/:id", h.Put)
	quotations.PATCH("/:id", h.Patch)
	quotations.DELETE("/:id", h.Delete)
}
