package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"hotelops/models"
	"hotelops/store"
)

// ErrProviderFailed wraps failures of an external OCR or messaging provider.
var ErrProviderFailed = errors.New("provider failed")

// DocumentUpload is an identity document received at the front desk.
type DocumentUpload struct {
	FileName    string
	ContentType string
	Data        []byte
	ReceivedAt  time.Time
}

// DocumentService keeps an audit record of every uploaded identity document and
// relays OCR results.
type DocumentService struct {
	Store  store.DocumentStore
	OCR    OCRProvider
	Logger *zap.Logger
	now    func() time.Time
}

func NewDocumentService(docs store.DocumentStore, ocr OCRProvider, logger *zap.Logger) *DocumentService {
	if ocr == nil {
		ocr = StubOCR{}
	}
	return &DocumentService{Store: docs, OCR: ocr, Logger: orNop(logger), now: time.Now}
}

// RecordMetadata stores the audit record of upload with whatever was extracted from it.
// Only the file name is required.
func (s *DocumentService) RecordMetadata(ctx context.Context, upload DocumentUpload, extracted models.Attributes) (string, error) {
	if upload.FileName == "" {
		return "", models.NewValidationError(models.KindIDDocument,
			models.Violation{Field: "file_name", Constraint: models.ConstraintRequired})
	}

	receivedAt := upload.ReceivedAt
	if receivedAt.IsZero() {
		receivedAt = s.now()
	}
	if extracted == nil {
		extracted = models.Attributes{}
	}

	doc := &models.IDDocument{
		FileName:   &upload.FileName,
		Extracted:  extracted,
		ReceivedAt: &models.Timestamp{Time: receivedAt.UTC()},
	}
	if upload.ContentType != "" {
		doc.ContentType = &upload.ContentType
	}

	id, err := s.Store.CreateDocument(ctx, models.KindIDDocument.Collection(), models.ToStorageRecord(doc))
	if err != nil {
		return "", err
	}
	s.Logger.Info("id document recorded", zap.String("id", id), zap.String("file", upload.FileName))
	return id, nil
}

// Extract records the upload for audit, then returns what the OCR provider read
// from it unchanged. The audit record is written whatever the provider outcome.
func (s *DocumentService) Extract(ctx context.Context, upload DocumentUpload) (OCRResult, error) {
	if _, err := s.RecordMetadata(ctx, upload, nil); err != nil {
		return OCRResult{}, err
	}

	result, err := s.OCR.Extract(ctx, upload)
	if err != nil {
		s.Logger.Warn("ocr extraction failed", zap.String("file", upload.FileName), zap.Error(err))
		return OCRResult{}, fmt.Errorf("%w: %v", ErrProviderFailed, err)
	}
	return result, nil
}
