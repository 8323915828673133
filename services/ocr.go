package services

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"hotelops/models"
)

// OCRResult is what an OCR provider read off an identity document.
type OCRResult struct {
	IDType   *string `json:"id_type"`
	IDNumber *string `json:"id_number"`
	FullName *string `json:"full_name"`
	DOB      *string `json:"dob"`
	RawText  *string `json:"raw_text"`
}

// OCRProvider extracts identity fields from an uploaded document.
type OCRProvider interface {
	Extract(ctx context.Context, upload DocumentUpload) (OCRResult, error)
}

// StubOCR returns fixed placeholder fields so the front-desk flow works end to end
// before a real provider is wired.
type StubOCR struct{}

func (StubOCR) Extract(_ context.Context, upload DocumentUpload) (OCRResult, error) {
	idType := models.IDTypePAN
	switch strings.ToLower(filepath.Ext(upload.FileName)) {
	case ".jpg", ".jpeg", ".png":
		idType = models.IDTypeAadhaar
	}
	return OCRResult{
		IDType:   ptr(idType),
		IDNumber: ptr("XXXX-XXXX-1234"),
		FullName: ptr("Sample Guest"),
		DOB:      ptr("1990-01-01"),
		RawText:  ptr("Mocked OCR content"),
	}, nil
}

// AigenResponse is the envelope returned by the Aigen OCR API.
type AigenResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// AigenOCR relays documents to an Aigen-compatible OCR endpoint.
type AigenOCR struct {
	httpClient *resty.Client
	endpoint   string
	model      string
	logger     *zap.Logger
}

func NewAigenOCR(endpoint, apiKey string, logger *zap.Logger) *AigenOCR {
	client := resty.New().
		SetTimeout(30 * time.Second).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetHeader("x-aigen-key", apiKey)

	return &AigenOCR{
		httpClient: client,
		endpoint:   endpoint,
		model:      "ocr-v1",
		logger:     logger,
	}
}

func (p *AigenOCR) Extract(ctx context.Context, upload DocumentUpload) (OCRResult, error) {
	payload := map[string]interface{}{
		"image": base64.StdEncoding.EncodeToString(upload.Data),
		"model": p.model,
	}

	var ar AigenResponse
	resp, err := p.httpClient.R().
		SetContext(ctx).
		SetBody(payload).
		SetResult(&ar).
		Post(p.endpoint)
	if err != nil {
		return OCRResult{}, fmt.Errorf("ocr request failed: %w", err)
	}
	if resp.IsError() {
		return OCRResult{}, fmt.Errorf("ocr http error %d", resp.StatusCode())
	}
	if ar.Status != "success" {
		return OCRResult{}, fmt.Errorf("ocr api status error: %s - %s", ar.Status, ar.Message)
	}

	fields, err := firstDataObject(ar.Data)
	if err != nil {
		return OCRResult{}, err
	}
	p.logger.Debug("ocr fields received", zap.String("file", upload.FileName), zap.Int("fields", len(fields)))
	return ocrResultFromFields(fields), nil
}

// firstDataObject accepts the data member as either an object or an array of objects.
func firstDataObject(data json.RawMessage) (map[string]interface{}, error) {
	var arr []map[string]interface{}
	if err := json.Unmarshal(data, &arr); err == nil && len(arr) > 0 {
		return arr[0], nil
	}
	var obj map[string]interface{}
	if err := json.Unmarshal(data, &obj); err == nil && len(obj) > 0 {
		return obj, nil
	}
	return nil, fmt.Errorf("no data returned from OCR")
}

func ocrResultFromFields(m map[string]interface{}) OCRResult {
	return OCRResult{
		IDType:   optString(m, "id_type", "idType", "document_type"),
		IDNumber: optString(m, "id_number", "idNumber", "id_no", "passport_no"),
		FullName: optString(m, "full_name", "fullName", "name", "name_en"),
		DOB:      optString(m, "dob", "date_of_birth", "dateOfBirth", "birth_date"),
		RawText:  optString(m, "raw_text", "rawText", "text"),
	}
}

// optString returns the first non-empty value found under keys.
func optString(m map[string]interface{}, keys ...string) *string {
	for _, k := range keys {
		if v, ok := m[k]; ok && v != nil {
			var s string
			if str, ok2 := v.(string); ok2 {
				s = strings.TrimSpace(str)
			} else {
				s = strings.TrimSpace(fmt.Sprintf("%v", v))
			}
			if s != "" {
				return &s
			}
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
