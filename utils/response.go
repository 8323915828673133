package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/models"
)

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONValidationError answers 422 with every violated field so the client can fix them in one go.
func JSONValidationError(c *gin.Context, verr *models.ValidationError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"success":    false,
		"error":      "validation failed",
		"violations": verr.Violations,
	})
}
