package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/insurely/sales-service/internal/adapters/http/dto"
	"github.com/insurely/sales-service/internal/domain"
)

// respondHAL writes a hypermedia response. gin's JSON renderer pins the
// content type to application/json, so the body is marshalled by hand.
func respondHAL(c *gin.Context, status int, body any) {
	data, err := json.Marshal(body)
	if err != nil {
		dto.HandleError(c, err)
		return
	}

	c.Data(status, dto.ContentTypeHAL, data)
}

// pathID parses the :id path segment. An identifier that does not parse
// cannot denote a stored record, so it maps to not-found rather than a
// malformed-request error.
func pathID(c *gin.Context, entity string) (uuid.UUID, bool) {
	raw := c.Param("id")

	id, err := uuid.Parse(raw)
	if err != nil {
		dto.HandleError(c, domain.NewNotFoundError(entity, raw))
		return uuid.Nil, false
	}

	return id, true
}

// bindJSON binds and validates the request body. Binding failures map to
// 400 BAD_REQUEST; struct-tag failures map to 400 VALIDATION_ERROR with
// field details.
func bindJSON(c *gin.Context, v any) bool {
	err := dto.BindAndValidate(c, v)
	if err == nil {
		return true
	}

	if dto.IsValidationError(err) {
		resp := dto.NewErrorResponseWithDetails(
			dto.ErrorCodeValidation,
			"request validation failed",
			dto.ValidationErrors(err),
		).WithTraceID(dto.GetTraceID(c))

		c.JSON(http.StatusBadRequest, resp)

		return false
	}

	resp := dto.NewErrorResponse(
		dto.ErrorCodeBadRequest,
		"malformed request body",
	).WithTraceID(dto.GetTraceID(c))

	c.JSON(http.StatusBadRequest, resp)

	return false
}
