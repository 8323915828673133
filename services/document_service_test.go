package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"hotelops/models"
	"hotelops/services"
	"hotelops/store"
	"hotelops/testutil"
)

type brokenOCR struct{}

func (brokenOCR) Extract(context.Context, services.DocumentUpload) (services.OCRResult, error) {
	return services.OCRResult{}, errors.New("upstream 500")
}

func TestDocumentService_StubExtraction(t *testing.T) {
	docs := testutil.NewDocumentStore(t)
	svc := services.NewDocumentService(docs, nil, nil)
	ctx := context.Background()

	result, err := svc.Extract(ctx, services.DocumentUpload{FileName: "aadhaar.JPG", ContentType: "image/jpeg", Data: []byte{0xff}})
	require.NoError(t, err)
	require.NotNil(t, result.IDType)
	assert.Equal(t, models.IDTypeAadhaar, *result.IDType)
	assert.Equal(t, "XXXX-XXXX-1234", *result.IDNumber)
	assert.Equal(t, "Sample Guest", *result.FullName)

	result, err = svc.Extract(ctx, services.DocumentUpload{FileName: "pan.pdf"})
	require.NoError(t, err)
	assert.Equal(t, models.IDTypePAN, *result.IDType)

	audit, err := docs.GetDocuments(ctx, "iddocument", store.Filter{}, 0)
	require.NoError(t, err)
	require.Len(t, audit, 2)
	assert.Equal(t, "aadhaar.JPG", audit[0]["file_name"])
	assert.Equal(t, "image/jpeg", audit[0]["content_type"])
	assert.Nil(t, audit[1]["content_type"])
	assert.NotNil(t, audit[0]["received_at"])
}

func TestDocumentService_AuditRecordSurvivesProviderFailure(t *testing.T) {
	docs := testutil.NewDocumentStore(t)
	svc := services.NewDocumentService(docs, brokenOCR{}, zap.NewNop())
	ctx := context.Background()

	_, err := svc.Extract(ctx, services.DocumentUpload{FileName: "passport.png"})
	require.ErrorIs(t, err, services.ErrProviderFailed)
	assert.Contains(t, err.Error(), "upstream 500")

	audit, err := docs.GetDocuments(ctx, "iddocument", store.Filter{}, 0)
	require.NoError(t, err)
	assert.Len(t, audit, 1)
}

func TestDocumentService_RecordMetadata(t *testing.T) {
	docs := testutil.NewDocumentStore(t)
	svc := services.NewDocumentService(docs, nil, nil)
	ctx := context.Background()
	at := time.Date(2024, 7, 1, 9, 30, 0, 0, time.FixedZone("IST", 5*3600+1800))

	id, err := svc.RecordMetadata(ctx, services.DocumentUpload{FileName: "id.png", ReceivedAt: at},
		models.Attributes{"name": "Asha Rao"})
	require.NoError(t, err)

	audit, err := docs.GetDocuments(ctx, "iddocument", store.Where("file_name", "id.png"), 0)
	require.NoError(t, err)
	require.Len(t, audit, 1)
	assert.Equal(t, id, audit[0][store.IDField])
	assert.Equal(t, "2024-07-01T04:00:00Z", audit[0]["received_at"])
	assert.Equal(t, map[string]any{"name": "Asha Rao"}, audit[0]["extracted"])
}

func TestDocumentService_FileNameRequired(t *testing.T) {
	svc := services.NewDocumentService(testutil.NewDocumentStore(t), nil, nil)

	_, err := svc.Extract(context.Background(), services.DocumentUpload{Data: []byte("x")})
	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.True(t, verr.Has("file_name", models.ConstraintRequired))
}

func TestDocumentService_StoreUnavailable(t *testing.T) {
	svc := services.NewDocumentService(store.Disabled("", nil), nil, nil)

	_, err := svc.Extract(context.Background(), services.DocumentUpload{FileName: "id.png"})
	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}
