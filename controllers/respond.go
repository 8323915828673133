package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"hotelops/models"
	"hotelops/services"
	"hotelops/store"
	"hotelops/utils"
)

// respondError renders a service error. Storage details never reach the client.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		utils.JSONValidationError(c, verr)
	case errors.Is(err, store.ErrStoreUnavailable):
		utils.JSONError(c, http.StatusServiceUnavailable, "document store unavailable")
	case errors.Is(err, services.ErrProviderFailed):
		utils.JSONError(c, http.StatusBadGateway, "provider request failed")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "storage operation failed")
	}
}

// bindObject reads a JSON object body without applying any schema.
func bindObject(c *gin.Context) (map[string]any, bool) {
	var raw map[string]any
	if err := c.ShouldBindJSON(&raw); err != nil || raw == nil {
		utils.JSONError(c, http.StatusBadRequest, "request body must be a JSON object")
		return nil, false
	}
	return raw, true
}

// queryLimit parses ?limit=, falling back to def when absent. 0 means no limit.
func queryLimit(c *gin.Context, def int) (int, bool) {
	raw := strings.TrimSpace(c.Query("limit"))
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		utils.JSONValidationError(c, models.NewValidationError("query",
			models.Violation{Field: "limit", Constraint: models.ConstraintType, Value: raw}))
		return 0, false
	}
	if n < 0 {
		utils.JSONValidationError(c, models.NewValidationError("query",
			models.Violation{Field: "limit", Constraint: models.ConstraintMin, Value: n}))
		return 0, false
	}
	return n, true
}
