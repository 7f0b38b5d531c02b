package handlers

import (
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"

	"meeting-insights/internal/api/middleware"
	"meeting-insights/internal/api/v1/dto"
	"meeting-insights/internal/api/v1/services"
	"meeting-insights/internal/app/export"
)

// ExportHandler handles export-related HTTP requests
type ExportHandler struct {
	service services.ExportService
}

// NewExportHandler creates a new export handler
func NewExportHandler(service services.ExportService) *ExportHandler {
	return &ExportHandler{
		service: service,
	}
}

// Export handles POST /api/v1/insights/export?format=json|csv|xlsx&filename=<basename>
func (h *ExportHandler) Export(c *gin.Context) {
	var query dto.ExportQuery
	if err := middleware.ValidateQuery(c, &query); err != nil {
		middleware.HandleError(c, err)
		return
	}
	if query.Format == "" {
		query.Format = string(export.FormatJSON)
	}

	format, err := export.ParseFormat(query.Format)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	var payload dto.InsightsPayload
	if err := middleware.ValidateRequest(c, &payload); err != nil {
		middleware.HandleError(c, err)
		return
	}

	data, err := h.service.Export(c.Request.Context(), payload.Result(), format)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	disposition := mime.FormatMediaType("attachment", map[string]string{"filename": format.Filename(query.Filename)})
	c.Header("Content-Disposition", disposition)
	c.Data(http.StatusOK, format.ContentType(), data)
}
