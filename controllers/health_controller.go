package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
)

type HealthController struct {
	HealthSvc *services.HealthService
}

func NewHealthController(svc *services.HealthService) *HealthController {
	return &HealthController{HealthSvc: svc}
}

// Root (GET /)
func (ctrl *HealthController) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "HotelOps backend is running"})
}

// Health (GET /health) is a liveness probe and does not touch the database.
func (ctrl *HealthController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// TestDatabase (GET /test) reports the datastore state. It answers 200 even when the
// database is down.
func (ctrl *HealthController) TestDatabase(c *gin.Context) {
	c.JSON(http.StatusOK, ctrl.HealthSvc.Check(c.Request.Context()))
}
