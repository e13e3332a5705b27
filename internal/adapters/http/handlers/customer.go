package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insurely/sales-service/internal/adapters/http/dto"
	"github.com/insurely/sales-service/internal/app"
)

// CustomerHandler handles the /customers resource.
type CustomerHandler struct {
	service *app.CustomerService
}

// NewCustomerHandler creates a new customer handler.
func NewCustomerHandler(service *app.CustomerService) *CustomerHandler {
	return &CustomerHandler{
		service: service,
	}
}

// List handles GET /customers.
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewCustomerCollection(customers))
}

// Create handles POST /customers.
// Returns 201 with the created item and a Location header.
func (h *CustomerHandler) Create(c *gin.Context) {
	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	created, err := h.service.Create(c.Request.Context(), req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", dto.ItemPath("customers", created.ID))
	respondHAL(c, http.StatusCreated, dto.NewCustomerResponse(created))
}

// Get handles GET /customers/:id.
func (h *CustomerHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "customer")
	if !ok {
		return
	}

	customer, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewCustomerResponse(customer))
}

// Put handles PUT /customers/:id. The payload is a full replacement; fields
// omitted here reset on the stored record.
func (h *CustomerHandler) Put(c *gin.Context) {
	id, ok := pathID(c, "customer")
	if !ok {
		return
	}

	var req dto.CustomerRequest
	if !bindJSON(c, &req) {
		return
	}

	replaced, err := h.service.Replace(c.Request.Context(), id, req.ToDomain())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewCustomerResponse(replaced))
}

// Patch handles PATCH /customers/:id. Absent keys leave the stored values
// untouched; validation runs on the merged state.
func (h *CustomerHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "customer")
	if !ok {
		return
	}

	var req dto.CustomerPatchRequest
	if !bindJSON(c, &req) {
		return
	}

	patched, err := h.service.Patch(c.Request.Context(), id, req.ToPatch())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewCustomerResponse(patched))
}

// Delete handles DELETE /customers/:id.
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "customer")
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

// RegisterCustomerRoutes registers the customer resource on the given router group.
func (h *CustomerHandler) RegisterCustomerRoutes(rg *gin.RouterGroup) {
	customers := rg.Group("/customers")
	customers.GET("", h.List)
	customers.POST("", h.Create)
	customers.GET("/:id", h.Get)
	customers.PUT("/:id", h.Put)
	customers.PATCH("/:id", h.Patch)
	customers.DELETE("/:id", h.Delete)
}
