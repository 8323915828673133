// controllers/booking_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
)

type BookingController struct {
	BookingSvc *services.BookingService
}

func NewBookingController(svc *services.BookingService) *BookingController {
	return &BookingController{BookingSvc: svc}
}

// CreateBooking (POST /api/bookings)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	raw, ok := bindObject(c)
	if !ok {
		return
	}

	booking, err := ctrl.BookingSvc.Create(c.Request.Context(), raw)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, booking)
}

// GetBookings (GET /api/bookings?limit=)
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	limit, ok := queryLimit(c, services.DefaultBookingLimit)
	if !ok {
		return
	}

	bookings, err := ctrl.BookingSvc.List(c.Request.Context(), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
