package services

import (
	"context"

	"go.uber.org/zap"

	"hotelops/models"
	"hotelops/store"
	"hotelops/utils"
)

// SendResult is returned to the caller of a notification send.
type SendResult struct {
	ID       string `json:"id"`
	Status   string `json:"status"`
	Provider string `json:"provider,omitempty"`
	Error    string `json:"error,omitempty"`
}

// NotificationService records notifications and hands them to a Messenger.
// The stored record keeps status "queued"; the provider's answer is only relayed.
type NotificationService struct {
	Store     store.DocumentStore
	Messenger Messenger
	Logger    *zap.Logger
}

func NewNotificationService(docs store.DocumentStore, messenger Messenger, logger *zap.Logger) *NotificationService {
	logger = orNop(logger)
	if messenger == nil {
		messenger = StubMessenger{Logger: logger}
	}
	return &NotificationService{Store: docs, Messenger: messenger, Logger: logger}
}

// Create validates and stores a queued notification and returns its identifier.
func (s *NotificationService) Create(ctx context.Context, channel, to, message string) (string, error) {
	id, _, err := s.create(ctx, notificationInput(channel, to, message))
	return id, err
}

// Send stores the notification first, then asks the messenger to deliver it.
// A messenger error is reported as a failed delivery, not as an error.
func (s *NotificationService) Send(ctx context.Context, channel, to, message string) (SendResult, error) {
	return s.SendPayload(ctx, notificationInput(channel, to, message))
}

// SendPayload is Send for a decoded request body. Only channel, to and message are
// read; values of the wrong type are reported as type violations.
func (s *NotificationService) SendPayload(ctx context.Context, raw map[string]any) (SendResult, error) {
	id, notif, err := s.create(ctx, raw)
	if err != nil {
		return SendResult{}, err
	}
	channel := strOrEmpty(notif.Channel)

	delivery, err := s.Messenger.Send(ctx, notif)
	if err != nil {
		s.Logger.Warn("notification send failed",
			zap.String("id", id),
			zap.String("channel", channel),
			zap.Error(err),
		)
		return SendResult{ID: id, Status: models.NotificationFailed, Provider: delivery.Provider, Error: err.Error()}, nil
	}

	status := delivery.Status
	if status == "" {
		status = models.NotificationQueued
	}
	return SendResult{ID: id, Status: status, Provider: delivery.Provider, Error: delivery.Error}, nil
}

func notificationInput(channel, to, message string) map[string]any {
	return map[string]any{"channel": channel, "to": to, "message": message}
}

func (s *NotificationService) create(ctx context.Context, raw map[string]any) (string, *models.Notification, error) {
	// only the request fields are taken; status and provider are set here
	input := map[string]any{}
	for _, field := range []string{"channel", "to", "message"} {
		value, ok := raw[field]
		if !ok {
			continue
		}
		// empty strings count as missing
		if str, isStr := value.(string); isStr && str == "" {
			continue
		}
		input[field] = value
	}

	notif, err := models.ValidateNotification(input)
	if err != nil {
		return "", nil, err
	}

	id, err := s.Store.CreateDocument(ctx, models.KindNotification.Collection(), models.ToStorageRecord(notif))
	if err != nil {
		return "", nil, err
	}

	s.Logger.Info("notification queued",
		zap.String("id", id),
		zap.String("channel", strOrEmpty(notif.Channel)),
		zap.String("to", utils.MaskDestination(strOrEmpty(notif.To))),
	)
	return id, notif, nil
}
