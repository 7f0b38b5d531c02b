package handlers

import (
	stderrors "errors"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"meeting-insights/internal/api/errors"
	"meeting-insights/internal/api/middleware"
	"meeting-insights/internal/api/v1/dto"
	"meeting-insights/internal/api/v1/services"
	"meeting-insights/internal/app/insights"
	"meeting-insights/internal/app/model"
)

const audioField = "file"

// InsightsHandler handles extraction requests
type InsightsHandler struct {
	service        services.InsightsService
	maxUploadBytes int64
}

// NewInsightsHandler creates a new insights handler. maxUploadBytes <= 0 disables the limit.
func NewInsightsHandler(service services.InsightsService, maxUploadBytes int64) *InsightsHandler {
	return &InsightsHandler{
		service:        service,
		maxUploadBytes: maxUploadBytes,
	}
}

// Extract handles POST /api/v1/insights
// Accepts a multipart form (transcript field and/or audio file) or a JSON body
func (h *InsightsHandler) Extract(c *gin.Context) {
	if h.maxUploadBytes > 0 {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxUploadBytes)
	}

	var (
		req *insights.Request
		err error
	)
	if c.ContentType() == gin.MIMEMultipartPOSTForm {
		req, err = h.fromMultipart(c)
	} else {
		req, err = h.fromJSON(c)
	}
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	result, err := h.service.Extract(c.Request.Context(), req)
	if err != nil {
		middleware.HandleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewInsightsResponse(result))
}

func (h *InsightsHandler) fromJSON(c *gin.Context) (*insights.Request, error) {
	var body dto.ExtractRequest
	if err := middleware.ValidateRequest(c, &body); err != nil {
		return nil, err
	}

	req := &insights.Request{Transcript: body.Transcript}
	if body.AudioDataURI != "" {
		audio, err := model.ParseDataURI(body.AudioDataURI)
		if err != nil {
			return nil, errors.NewValidationError("Validation failed", map[string]string{
				"audiodatauri": "must be a base64 data URI",
			})
		}
		req.Audio = audio
	}
	return req, nil
}

func (h *InsightsHandler) fromMultipart(c *gin.Context) (*insights.Request, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return nil, uploadError(err)
	}

	req := &insights.Request{}
	if values := form.Value["transcript"]; len(values) > 0 {
		req.Transcript = values[0]
	}

	files := form.File[audioField]
	if len(files) == 0 {
		return req, nil
	}

	audio, err := readAudio(files[0])
	if err != nil {
		return nil, uploadError(err)
	}
	req.Audio = audio
	return req, nil
}

func readAudio(header *multipart.FileHeader) (*model.AudioPayload, error) {
	file, err := header.Open()
	if err != nil {
		return nil, err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, err
	}

	return &model.AudioPayload{Data: data, MediaType: mediaType(header, data)}, nil
}

// mediaType prefers the declared part type, then the file extension, then sniffing
func mediaType(header *multipart.FileHeader, data []byte) string {
	declared := strings.TrimSpace(header.Header.Get("Content-Type"))
	if declared != "" && declared != "application/octet-stream" {
		return declared
	}
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(header.Filename))); byExt != "" {
		return byExt
	}
	return http.DetectContentType(data)
}

func uploadError(err error) error {
	var maxBytesErr *http.MaxBytesError
	if stderrors.As(err, &maxBytesErr) {
		return errors.NewTooLargeError("uploaded file is too large")
	}
	return errors.NewBadRequestError("invalid multipart form: " + err.Error())
}
