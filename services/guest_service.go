package services

import (
	"context"

	"go.uber.org/zap"

	"hotelops/models"
	"hotelops/store"
	"hotelops/utils"
)

const DefaultGuestLimit = 25

type GuestService struct {
	Store  store.DocumentStore
	Logger *zap.Logger
}

func NewGuestService(docs store.DocumentStore, logger *zap.Logger) *GuestService {
	return &GuestService{Store: docs, Logger: orNop(logger)}
}

// Create validates raw and stores it as a new guest. Identical input creates a new
// guest every time; there is no deduplication.
func (s *GuestService) Create(ctx context.Context, raw map[string]any) (map[string]any, error) {
	return createRecord(ctx, s.Store, models.KindGuest, raw, func(id string, record map[string]any) {
		s.Logger.Info("guest created",
			zap.String("id", id),
			zap.String("phone", utils.MaskPhone(recordString(record, "phone"))),
		)
	})
}

// List returns up to limit guests. A non-empty q matches guests whose phone or
// id_number equals q exactly.
func (s *GuestService) List(ctx context.Context, q string, limit int) ([]map[string]any, error) {
	filter := store.Filter{}
	if q != "" {
		filter = store.AnyOf(store.Fields{"phone": q}, store.Fields{"id_number": q})
	}
	return s.Store.GetDocuments(ctx, models.KindGuest.Collection(), filter, limit)
}

// createRecord validates raw against the schema of kind and stores it. created is
// called with the new identifier before the record is returned.
func createRecord(ctx context.Context, docs store.DocumentStore, kind models.Kind, raw map[string]any,
	created func(id string, record map[string]any)) (map[string]any, error) {
	rec, err := models.Validate(kind, raw)
	if err != nil {
		return nil, err
	}

	record := models.ToStorageRecord(rec)
	id, err := docs.CreateDocument(ctx, kind.Collection(), record)
	if err != nil {
		return nil, err
	}
	if created != nil {
		created(id, record)
	}
	return withID(id, record), nil
}

func recordString(record map[string]any, key string) string {
	s, _ := record[key].(string)
	return s
}

// withID returns the caller-facing form of a stored record.
func withID(id string, record map[string]any) map[string]any {
	out := make(map[string]any, len(record)+1)
	for k, v := range record {
		out[k] = v
	}
	out[store.IDField] = id
	return out
}

func orNop(logger *zap.Logger) *zap.Logger {
	if logger == nil {
		return zap.NewNop()
	}
	return logger
}
