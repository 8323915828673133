package controllers

import (
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hotelops/models"
	"hotelops/services"
	"hotelops/utils"
)

// maxDocumentSize bounds uploaded identity document images.
const maxDocumentSize = 10 << 20

type DocumentController struct {
	DocumentSvc *services.DocumentService
	Logger      *zap.Logger
}

func NewDocumentController(svc *services.DocumentService, logger *zap.Logger) *DocumentController {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DocumentController{DocumentSvc: svc, Logger: logger}
}

// ExtractDocument (POST /api/ocr) takes a multipart "file", keeps an audit record of it
// and returns the fields the OCR provider extracted.
func (ctrl *DocumentController) ExtractDocument(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONValidationError(c, models.NewValidationError(models.KindIDDocument,
			models.Violation{Field: "file", Constraint: models.ConstraintRequired}))
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		ctrl.Logger.Warn("cannot open uploaded file", zap.String("file", fileHeader.Filename), zap.Error(err))
		utils.JSONError(c, http.StatusBadRequest, "cannot read uploaded file")
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxDocumentSize+1))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "cannot read uploaded file")
		return
	}
	if len(data) > maxDocumentSize {
		utils.JSONError(c, http.StatusRequestEntityTooLarge, "uploaded file too large")
		return
	}

	upload := services.DocumentUpload{
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Data:        data,
		ReceivedAt:  time.Now().UTC(),
	}

	result, err := ctrl.DocumentSvc.Extract(c.Request.Context(), upload)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
