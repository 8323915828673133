package services

import (
	"context"

	"go.uber.org/zap"

	"hotelops/models"
	"hotelops/store"
)

const DefaultBookingLimit = 50

// BookingService records room bookings. Status is set at creation and never changed here.
type BookingService struct {
	Store  store.DocumentStore
	Logger *zap.Logger
}

func NewBookingService(docs store.DocumentStore, logger *zap.Logger) *BookingService {
	return &BookingService{Store: docs, Logger: orNop(logger)}
}

func (s *BookingService) Create(ctx context.Context, raw map[string]any) (map[string]any, error) {
	return createRecord(ctx, s.Store, models.KindBooking, raw, func(id string, record map[string]any) {
		s.Logger.Info("booking created",
			zap.String("id", id),
			zap.String("guest_id", recordString(record, "guest_id")),
			zap.String("room_number", recordString(record, "room_number")),
		)
	})
}

func (s *BookingService) List(ctx context.Context, limit int) ([]map[string]any, error) {
	return s.Store.GetDocuments(ctx, models.KindBooking.Collection(), store.Filter{}, limit)
}
