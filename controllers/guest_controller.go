package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
)

type GuestController struct {
	GuestSvc *services.GuestService
}

func NewGuestController(svc *services.GuestService) *GuestController {
	return &GuestController{GuestSvc: svc}
}

// CreateGuest (POST /api/guests)
func (ctrl *GuestController) CreateGuest(c *gin.Context) {
	raw, ok := bindObject(c)
	if !ok {
		return
	}

	guest, err := ctrl.GuestSvc.Create(c.Request.Context(), raw)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, guest)
}

// GetGuests (GET /api/guests?q=&limit=)
// q matches phone or id_number exactly.
func (ctrl *GuestController) GetGuests(c *gin.Context) {
	limit, ok := queryLimit(c, services.DefaultGuestLimit)
	if !ok {
		return
	}

	guests, err := ctrl.GuestSvc.List(c.Request.Context(), c.Query("q"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, guests)
}
