package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/insurely/sales-service/internal/adapters/http/dto"
	"github.com/insurely/sales-service/internal/app"
)

// SubscriptionHandler handles the /subscriptions resource.
type SubscriptionHandler struct {
	service *app.SubscriptionService
}

// NewSubscriptionHandler creates a new subscription handler.
func NewSubscriptionHandler(service *app.SubscriptionService) *SubscriptionHandler {
	return &SubscriptionHandler{
		service: service,
	}
}

// List handles GET /subscriptions.
func (h *SubscriptionHandler) List(c *gin.Context) {
	subscriptions, err := h.service.List(c.Request.Context())
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewSubscriptionCollection(subscriptions))
}

// Create handles POST /subscriptions. The quotation field is a reference URI.
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req dto.SubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	subscription, err := req.ToDomain()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	created, err := h.service.Create(c.Request.Context(), subscription)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Header("Location", dto.ItemPath("subscriptions", created.ID))
	respondHAL(c, http.StatusCreated, dto.NewSubscriptionResponse(created))
}

// Get handles GET /subscriptions/:id.
func (h *SubscriptionHandler) Get(c *gin.Context) {
	id, ok := pathID(c, "subscription")
	if !ok {
		return
	}

	subscription, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewSubscriptionResponse(subscription))
}

// Put handles PUT /subscriptions/:id.
func (h *SubscriptionHandler) Put(c *gin.Context) {
	id, ok := pathID(c, "subscription")
	if !ok {
		return
	}

	var req dto.SubscriptionRequest
	if !bindJSON(c, &req) {
		return
	}

	subscription, err := req.ToDomain()
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	replaced, err := h.service.Replace(c.Request.Context(), id, subscription)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	respondHAL(c, http.StatusOK, dto.NewSubscriptionResponse(replaced))
}

// Patch handles PATCH /subscriptions/:id. Patching one of the two dates
// still validates the ordering rule against the stored other date.
func (h *SubscriptionHandler) Patch(c *gin.Context) {
	id, ok := pathID(c, "subscription")
	if !ok {
		return
	}

	var req dto.SubscriptionPatchRequest
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

	respondHAL(c, http.StatusOK, dto.NewSubscriptionResponse(patched))
}

// Delete handles DELETE /subscriptions/:id.
func (h *SubscriptionHandler) Delete(c *gin.Context) {
	id, ok := pathID(c, "subscription")
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

// RegisterSubscriptionRoutes registers the subscription resource on the given router group.
func (h *SubscriptionHandler) RegisterSubscriptionRoutes(rg *gin.RouterGroup) {
	subscriptions := rg.Group("/subscriptions")
	subscriptions.GET("", h.List)
	subscriptions.POST("", h.Create)
	subscriptions.GET("/:id", h.Get)
	subscriptions.PUT("/:id", h.Put)
	subscriptions.PATCH("/:id", h.Patch)
	subscriptions.DELETE("/:id", h.Delete)
}
