// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotelops/config"
	"hotelops/store"
)

// NewDocumentStore returns a store backed by a private in-memory SQLite database.
func NewDocumentStore(t testing.TB) *store.Adapter {
	t.Helper()

	db, name, err := config.ConnectDatabase(config.Config{DatabaseURL: "sqlite://:memory:"}, zap.NewNop())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return store.New(db, name, zap.NewNop())
}
