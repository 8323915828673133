package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/services"
)

type NotificationController struct {
	NotificationSvc *services.NotificationService
}

func NewNotificationController(svc *services.NotificationService) *NotificationController {
	return &NotificationController{NotificationSvc: svc}
}

// SendNotification (POST /api/notify) takes {channel, to, message}, records the
// notification, then hands it to the messaging provider. The answer carries the
// provider's status, "queued" when none is wired.
func (ctrl *NotificationController) SendNotification(c *gin.Context) {
	raw, ok := bindObject(c)
	if !ok {
		return
	}

	result, err := ctrl.NotificationSvc.SendPayload(c.Request.Context(), raw)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
