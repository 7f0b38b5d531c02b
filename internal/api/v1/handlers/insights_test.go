package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	stderrors "errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"meeting-insights/internal/api/middleware"
	"meeting-insights/internal/api/v1/handlers"
	apperrors "meeting-insights/internal/app/errors"
	"meeting-insights/internal/app/insights"
	"meeting-insights/internal/app/testutil"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *MockServices) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.ErrorHandler(zap.NewNop()))
	mockServices := NewMockServices(t)
	return router, mockServices
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func jsonString(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(b)
}

type filePart struct {
	name        string
	contentType string
	data        []byte
}

func multipartBody(t *testing.T, transcript string, file *filePart) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	if transcript != "" {
		require.NoError(t, w.WriteField("transcript", transcript))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+file.name+`"`)
		if file.contentType != "" {
			h.Set("Content-Type", file.contentType)
		}
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestInsightsHandler_ExtractJSON(t *testing.T) {
	tests := []struct {
		name           string
		body           string
		setupMocks     func(*MockServices)
		expectedStatus int
		validateBody   func(*testing.T, map[string]interface{})
	}{
		{
			name: "successful extraction",
			body: jsonString(map[string]string{"transcript": testutil.SampleTranscript}),
			setupMocks: func(ms *MockServices) {
				ms.InsightsService.On("Extract", mock.Anything, mock.MatchedBy(func(req *insights.Request) bool {
					return req.Transcript == testutil.SampleTranscript && req.Audio == nil
				})).Return(testutil.SampleResult(), nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, testutil.SampleTranscript, body["transcript"])
				assert.Len(t, body["actionItems"], 2)
				assert.NotContains(t, body, "kind")
			},
		},
		{
			name: "empty transcript",
			body: `{"transcript":"   "}`,
			setupMocks: func(ms *MockServices) {
				ms.InsightsService.On("Extract", mock.Anything, mock.Anything).
					Return(nil, apperrors.ErrEmptyTranscript)
			},
			expectedStatus: http.StatusUnprocessableEntity,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "empty_input", body["kind"])
				assert.Equal(t, apperrors.ErrEmptyTranscript.Error(), body["message"])
				assert.NotEmpty(t, body["request_id"])
				assert.NotContains(t, body, "summary")
			},
		},
		{
			name: "extraction failure",
			body: `{"transcript":"hello"}`,
			setupMocks: func(ms *MockServices) {
				ms.InsightsService.On("Extract", mock.Anything, mock.Anything).
					Return(nil, apperrors.Extraction("extractObjections", stderrors.New("quota exceeded")))
			},
			expectedStatus: http.StatusBadGateway,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "extraction", body["kind"])
				assert.Equal(t, "extractObjections failed: quota exceeded", body["message"])
			},
		},
		{
			name: "audio data uri",
			body: jsonString(map[string]string{"audioDataUri": testutil.SampleAudio().DataURI()}),
			setupMocks: func(ms *MockServices) {
				ms.InsightsService.On("Extract", mock.Anything, mock.MatchedBy(func(req *insights.Request) bool {
					return req.Audio != nil && req.Audio.MediaType == "audio/wav"
				})).Return(testutil.SampleResult(), nil)
			},
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, testutil.SampleResult().Summary, body["summary"])
			},
		},
		{
			name:           "malformed audio data uri",
			body:           `{"audioDataUri":"not-a-uri"}`,
			setupMocks:     func(ms *MockServices) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "invalid_input", body["kind"])
				assert.NotNil(t, body["details"])
			},
		},
		{
			name:           "invalid JSON",
			body:           `{"transcript":`,
			setupMocks:     func(ms *MockServices) {},
			expectedStatus: http.StatusBadRequest,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "invalid_input", body["kind"])
			},
		},
		{
			name: "unclassified error",
			body: `{"transcript":"hello"}`,
			setupMocks: func(ms *MockServices) {
				ms.InsightsService.On("Extract", mock.Anything, mock.Anything).
					Return(nil, stderrors.New("boom"))
			},
			expectedStatus: http.StatusInternalServerError,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, "internal", body["kind"])
				assert.Equal(t, "Internal server error", body["message"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			tt.setupMocks(mockServices)

			handler := handlers.NewInsightsHandler(mockServices.InsightsService, 1<<20)
			router.POST("/api/v1/insights", handler.Extract)

			req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(tt.body))
			req.Header.Set("Content-Type", "application/json")
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			tt.validateBody(t, decodeBody(t, rec))
			mockServices.InsightsService.AssertExpectations(t)
		})
	}
}

func TestInsightsHandler_ExtractMultipart(t *testing.T) {
	tests := []struct {
		name       string
		transcript string
		file       *filePart
		match      func(*insights.Request) bool
	}{
		{
			name:       "transcript field only",
			transcript: "Alice: hi",
			match: func(req *insights.Request) bool {
				return req.Transcript == "Alice: hi" && req.Audio == nil
			},
		},
		{
			name: "declared audio type",
			file: &filePart{name: "call.mp3", contentType: "audio/mpeg", data: []byte("ID3")},
			match: func(req *insights.Request) bool {
				return req.Audio != nil && req.Audio.MediaType == "audio/mpeg" && string(req.Audio.Data) == "ID3"
			},
		},
		{
			name: "non audio type is passed through for the orchestrator to reject",
			file: &filePart{name: "notes.pdf", contentType: "application/pdf", data: []byte("%PDF")},
			match: func(req *insights.Request) bool {
				return req.Audio != nil && req.Audio.MediaType == "application/pdf"
			},
		},
		{
			name: "octet stream falls back to extension",
			file: &filePart{name: "call.wav", contentType: "application/octet-stream", data: []byte("RIFF\x00\x00\x00\x00WAVEfmt ")},
			match: func(req *insights.Request) bool {
				return req.Audio != nil && strings.HasPrefix(req.Audio.MediaType, "audio/")
			},
		},
		{
			name:       "text and audio together",
			transcript: "pasted",
			file:       &filePart{name: "call.mp3", contentType: "audio/mpeg", data: []byte("ID3")},
			match: func(req *insights.Request) bool {
				return req.Transcript == "pasted" && req.Audio != nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, mockServices := setupTestRouter(t)
			mockServices.InsightsService.On("Extract", mock.Anything, mock.MatchedBy(tt.match)).
				Return(testutil.SampleResult(), nil)

			handler := handlers.NewInsightsHandler(mockServices.InsightsService, 1<<20)
			router.POST("/api/v1/insights", handler.Extract)

			body, contentType := multipartBody(t, tt.transcript, tt.file)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", body)
			req.Header.Set("Content-Type", contentType)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
			mockServices.InsightsService.AssertExpectations(t)
		})
	}
}

func TestInsightsHandler_InvalidMediaType(t *testing.T) {
	router, mockServices := setupTestRouter(t)
	mockServices.InsightsService.On("Extract", mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrInvalidMediaType)

	handler := handlers.NewInsightsHandler(mockServices.InsightsService, 1<<20)
	router.POST("/api/v1/insights", handler.Extract)

	body, contentType := multipartBody(t, "", &filePart{name: "x.txt", contentType: "text/plain", data: []byte("hi")})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeBody(t, rec)
	assert.Equal(t, "invalid_input", resp["kind"])
	assert.Equal(t, apperrors.ErrInvalidMediaType.Error(), resp["message"])
}

func TestInsightsHandler_UploadTooLarge(t *testing.T) {
	router, mockServices := setupTestRouter(t)

	handler := handlers.NewInsightsHandler(mockServices.InsightsService, 1024)
	router.POST("/api/v1/insights", handler.Extract)

	body, contentType := multipartBody(t, "", &filePart{name: "call.mp3", contentType: "audio/mpeg", data: bytes.Repeat([]byte("a"), 4096)})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Equal(t, "too_large", decodeBody(t, rec)["kind"])
	mockServices.InsightsService.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything)
}

func TestInsightsHandler_PassesRequestContext(t *testing.T) {
	router, mockServices := setupTestRouter(t)

	ctx, cancel := context.WithCancel(context.Background())
	mockServices.InsightsService.On("Extract", mock.MatchedBy(func(c context.Context) bool {
		return c.Err() != nil
	}), mock.Anything).Return(nil, apperrors.Extraction("summarizeMeeting", context.Canceled))

	handler := handlers.NewInsightsHandler(mockServices.InsightsService, 0)
	router.POST("/api/v1/insights", handler.Extract)

	cancel()
	req := httptest.NewRequest(http.MethodPost, "/api/v1/insights", strings.NewReader(`{"transcript":"hi"}`)).WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	mockServices.InsightsService.AssertExpectations(t)
}
