package services

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"hotelops/models"
	"hotelops/utils"
)

// Delivery is what a messaging provider reports for one send.
type Delivery struct {
	Status   string
	Provider string
	Error    string
}

// Messenger hands a notification to an SMS or WhatsApp provider.
type Messenger interface {
	Send(ctx context.Context, n *models.Notification) (Delivery, error)
}

const stubProvider = "stub"

// StubMessenger only logs the message. It never claims delivery: notifications stay queued.
type StubMessenger struct {
	Logger *zap.Logger
}

func (m StubMessenger) Send(_ context.Context, n *models.Notification) (Delivery, error) {
	logger := m.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	channel := strOrEmpty(n.Channel)
	logger.Info("[MOCK "+strings.ToUpper(channel)+"] notification not delivered, no provider wired",
		zap.String("to", utils.MaskDestination(strOrEmpty(n.To))),
		zap.String("message", utils.Summarize(strOrEmpty(n.Message))),
	)
	return Delivery{Status: models.NotificationQueued, Provider: stubProvider}, nil
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
