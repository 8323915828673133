package store_test

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotelops/metrics"
	"hotelops/store"
	"hotelops/testutil"
)

func TestCreateAndGetDocuments(t *testing.T) {
	s := testutil.NewDocumentStore(t)
	ctx := context.Background()

	id, err := s.CreateDocument(ctx, "guest", map[string]any{
		"full_name": "Asha Rao",
		"phone":     "+919999999999",
		"meta":      map[string]any{"vip": true},
		"dob":       nil,
	})
	require.NoError(t, err)
	require.NotEmpty(t, id)

	docs, err := s.GetDocuments(ctx, "guest", store.Filter{}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0][store.IDField])
	assert.Equal(t, "Asha Rao", docs[0]["full_name"])
	assert.Equal(t, map[string]any{"vip": true}, docs[0]["meta"])
	v, ok := docs[0]["dob"]
	assert.True(t, ok)
	assert.Nil(t, v)
}

func TestCreateDocument_IgnoresCallerID(t *testing.T) {
	s := testutil.NewDocumentStore(t)
	ctx := context.Background()

	id, err := s.CreateDocument(ctx, "guest", map[string]any{store.IDField: "mine", "full_name": "A"})
	require.NoError(t, err)
	assert.NotEqual(t, "mine", id)

	docs, err := s.GetDocuments(ctx, "guest", store.Filter{}, 0)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, id, docs[0][store.IDField])
}

func TestCreateDocument_IssuesDistinctIDs(t *testing.T) {
	s := testutil.NewDocumentStore(t)
	ctx := context.Background()

	seen := map[string]bool{}
	for i := 0; i < 20; i++ {
		id, err := s.CreateDocument(ctx, "guest", map[string]any{"full_name": "Same Name"})
		require.NoError(t, err)
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}

	docs, err := s.GetDocuments(ctx, "guest", store.Filter{}, 0)
	require.NoError(t, err)
	assert.Len(t, docs, 20)
}

func TestGetDocuments_CollectionsAreSeparate(t *testing.T) {
	s := testutil.NewDocumentStore(t)
	ctx := context.Background()

	_, err := s.CreateDocument(ctx, "guest", map[string]any{"full_name": "A"})
	require.NoError(t, err)
	_, err = s.CreateDocument(ctx, "booking", map[string]any{"room_number": "101"})
	require.NoError(t, err)

	guests, err := s.GetDocuments(ctx, "guest", store.Filter{}, 0)
	require.NoError(t, err)
	assert.Len(t, guests, 1)

	notifications, err := s.GetDocuments(ctx, "notification", store.Filter{}, 0)
	require.NoError(t, err)
	assert.NotNil(t, notifications)
	assert.Empty(t, notifications)
}

func seedGuests(t *testing.T, s store.DocumentStore) {
	t.Helper()
	guests := []map[string]any{
		{"full_name": "Asha Rao", "phone": "+919999999999", "id_number": "P123"},
		{"full_name": "Vikram Shah", "phone": "+918888888888", "id_number": "A456"},
		{"full_name": "Meera Iyer", "phone": "+917777777777", "id_number": "+919999999999"},
		{"full_name": "Ravi Kumar", "phone": nil, "id_number": nil},
	}
	for _, g := range guests {
		_, err := s.CreateDocument(context.Background(), "guest", g)
		require.NoError(t, err)
	}
}

func names(docs []map[string]any) []any {
	out := make([]any, 0, len(docs))
	for _, d := range docs {
		out = append(out, d["full_name"])
	}
	return out
}

func TestGetDocuments_AnyOf(t *testing.T) {
	s := testutil.NewDocumentStore(t)
	seedGuests(t, s)

	docs, err := s.GetDocuments(context.Background(), "guest",
		store.AnyOf(store.Fields{"phone": "+919999999999"}, store.Fields{"id_number": "+919999999999"}), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Asha Rao", "Meera Iyer"}, names(docs))

	docs, err = s.GetDocuments(context.Background(), "guest",
		store.AnyOf(store.Fields{"phone": "A456"}, store.Fields{"id_number": "A456"}), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Vikram Shah"}, names(docs))
}

func TestGetDocuments_SingleBranchStaysScopedToCollection(t *testing.T) {
	s := testutil.NewDocumentStore(t)
	seedGuests(t, s)
	_, err := s.CreateDocument(context.Background(), "booking", map[string]any{"phone": "+919999999999"})
	require.NoError(t, err)

	docs, err := s.GetDocuments(context.Background(), "guest", store.AnyOf(store.Fields{"phone": "+919999999999"}), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Asha Rao"}, names(docs))
}

func TestGetDocuments_Match(t *testing.T) {
	s := testutil.NewDocumentStore(t)
	seedGuests(t, s)

	docs, err := s.GetDocuments(context.Background(), "guest", store.Where("id_number", "P123"), 0)
	require.NoError(t, err)
	assert.Equal(t, []any{"Asha Rao"}, names(docs))

	docs, err = s.GetDocuments(context.Background(), "guest", store.Where("id_number", "nobody"), 0)
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestGetDocuments_LimitKeepsInsertionOrder(t *testing.T) {
	s := testutil.NewDocumentStore(t)
	seedGuests(t, s)

	docs, err := s.GetDocuments(context.Background(), "guest", store.Filter{}, 2)
	require.NoError(t, err)
	assert.Equal(t, []any{"Asha Rao", "Vikram Shah"}, names(docs))
}

func TestDisabledStore(t *testing.T) {
	s := store.Disabled("hotelops", zap.NewNop())
	ctx := context.Background()

	_, err := s.CreateDocument(ctx, "guest", map[string]any{"full_name": "A"})
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)

	_, err = s.GetDocuments(ctx, "guest", store.Filter{}, 10)
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)

	st := s.Status(ctx)
	assert.False(t, st.Configured)
	assert.False(t, st.Reachable)
	assert.Equal(t, "hotelops", st.Database)
	assert.Equal(t, []string{}, st.Collections)
	assert.False(t, s.Enabled())
	s.Close()
}

func TestUnreachableStore(t *testing.T) {
	s := store.Unreachable("hotelops", errors.New("dial tcp 10.0.0.1:3306: connect: connection refused"), nil)

	_, err := s.CreateDocument(context.Background(), "guest", map[string]any{})
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)

	st := s.Status(context.Background())
	assert.True(t, st.Configured)
	assert.False(t, st.Reachable)
	assert.Equal(t, "dial tcp 10.0.0.1:3306: connect: connection refuse", st.Error)
}

func TestStatus_ListsCollections(t *testing.T) {
	s := testutil.NewDocumentStore(t)
	ctx := context.Background()

	st := s.Status(ctx)
	assert.True(t, st.Configured)
	assert.True(t, st.Reachable)
	assert.Equal(t, ":memory:", st.Database)
	assert.Equal(t, []string{}, st.Collections)

	for _, c := range []string{"guest", "booking", "guest"} {
		_, err := s.CreateDocument(ctx, c, map[string]any{})
		require.NoError(t, err)
	}
	st = s.Status(ctx)
	assert.Equal(t, []string{"booking", "guest"}, st.Collections)
	assert.Empty(t, st.Error)
}

func TestCreateDocument_CountsMetric(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	s := testutil.NewDocumentStore(t).WithMetrics(m)

	_, err := s.CreateDocument(context.Background(), "guest", map[string]any{"full_name": "A"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, promtest.ToFloat64(m.DocumentsCreated.WithLabelValues("guest")))
}
