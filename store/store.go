package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"hotelops/metrics"
	"hotelops/models"
	"hotelops/utils"
)

// IDField is the key under which a document's identifier is returned.
const IDField = "_id"

const (
	bodyColumn           = "body"
	maxListedCollections = 10
	maxErrorLen          = 50
)

// DocumentStore is the create/query surface the domain services depend on.
type DocumentStore interface {
	CreateDocument(ctx context.Context, collection string, record map[string]any) (string, error)
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]map[string]any, error)
}

// Adapter stores documents of every collection in one gorm table. An Adapter built
// without a database is disabled and fails every operation with ErrStoreUnavailable.
type Adapter struct {
	db      *gorm.DB
	dbName  string
	logger  *zap.Logger
	metrics *metrics.Metrics
	newID   func() string

	// connectErr is why a configured database could not be opened.
	connectErr error
}

func New(db *gorm.DB, dbName string, logger *zap.Logger) *Adapter {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Adapter{db: db, dbName: dbName, logger: logger, newID: uuid.NewString}
}

// Disabled returns an adapter for a process started without a database.
func Disabled(dbName string, logger *zap.Logger) *Adapter {
	return New(nil, dbName, logger)
}

// Unreachable returns a disabled adapter for a configured database that could not
// be opened. Status reports err.
func Unreachable(dbName string, err error, logger *zap.Logger) *Adapter {
	a := New(nil, dbName, logger)
	a.connectErr = err
	return a
}

// Close releases the database connections, if any.
func (a *Adapter) Close() {
	if a.db == nil {
		return
	}
	if sqlDB, err := a.db.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			a.logger.Warn("closing database failed", zap.Error(err))
		}
	}
}

// WithMetrics counts created documents per collection.
func (a *Adapter) WithMetrics(m *metrics.Metrics) *Adapter {
	a.metrics = m
	return a
}

func (a *Adapter) Enabled() bool { return a.db != nil }

// CreateDocument stores record in collection under a newly issued identifier.
// An _id key in record is ignored.
func (a *Adapter) CreateDocument(ctx context.Context, collection string, record map[string]any) (string, error) {
	if a.db == nil {
		return "", ErrStoreUnavailable
	}

	body := make(map[string]any, len(record))
	for k, v := range record {
		if k == IDField {
			continue
		}
		body[k] = v
	}
	raw, err := json.Marshal(body)
	if err != nil {
		return "", &WriteError{Collection: collection, Err: fmt.Errorf("encode document: %w", err)}
	}

	doc := models.Document{
		DocID:      a.newID(),
		Collection: collection,
		Body:       datatypes.JSON(raw),
	}
	if err := a.db.WithContext(ctx).Create(&doc).Error; err != nil {
		a.logger.Error("document insert failed", zap.String("collection", collection), zap.Error(err))
		return "", &WriteError{Collection: collection, Err: err}
	}

	a.metrics.DocumentCreated(collection)
	a.logger.Debug("document created", zap.String("collection", collection), zap.String("id", doc.DocID))
	return doc.DocID, nil
}

// GetDocuments returns up to limit documents of collection matching filter, in insertion
// order. limit <= 0 means no bound. Each document carries its identifier under IDField.
func (a *Adapter) GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]map[string]any, error) {
	if a.db == nil {
		return nil, ErrStoreUnavailable
	}

	tx := a.db.WithContext(ctx).Where("collection = ?", collection)
	tx = filter.apply(tx)
	if limit > 0 {
		tx = tx.Limit(limit)
	}

	var docs []models.Document
	if err := tx.Order("seq").Find(&docs).Error; err != nil {
		a.logger.Error("document query failed", zap.String("collection", collection), zap.Error(err))
		return nil, &ReadError{Collection: collection, Err: err}
	}

	out := make([]map[string]any, 0, len(docs))
	for _, d := range docs {
		rec := map[string]any{}
		if err := json.Unmarshal(d.Body, &rec); err != nil {
			return nil, &ReadError{Collection: collection, Err: fmt.Errorf("decode document %s: %w", d.DocID, err)}
		}
		rec[IDField] = d.DocID
		out = append(out, rec)
	}
	return out, nil
}

// Status describes the live state of the store.
type Status struct {
	Configured  bool
	Reachable   bool
	Database    string
	Collections []string

	// Error is a short description of the first failure, empty when healthy.
	Error string
}

// Status never fails; problems are described in the returned value.
func (a *Adapter) Status(ctx context.Context) Status {
	st := Status{Configured: a.db != nil || a.connectErr != nil, Database: a.dbName, Collections: []string{}}
	if a.db == nil {
		if a.connectErr != nil {
			st.Error = utils.Truncate(a.connectErr.Error(), maxErrorLen)
		}
		return st
	}

	sqlDB, err := a.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		st.Error = utils.Truncate(err.Error(), maxErrorLen)
		return st
	}
	st.Reachable = true

	var names []string
	err = a.db.WithContext(ctx).
		Model(&models.Document{}).
		Distinct("collection").
		Order("collection").
		Limit(maxListedCollections).
		Pluck("collection", &names).Error
	if err != nil {
		st.Error = utils.Truncate(err.Error(), maxErrorLen)
		return st
	}
	if names != nil {
		st.Collections = names
	}
	return st
}
