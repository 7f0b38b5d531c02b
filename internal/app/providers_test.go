package app

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	apperrors "meeting-insights/internal/app/errors"
	"meeting-insights/internal/app/llm"
	_ "meeting-insights/internal/app/llm/gemini"
	"meeting-insights/internal/config"
)

func testConfig(provider string) *config.Config {
	cfg := config.Default()
	cfg.LLM.Provider = provider
	cfg.LLM.APIKey = "AIzaTest-1234567890abcdef1234567890"
	return cfg
}

func TestInitializeServer(t *testing.T) {
	srv, err := InitializeServer(testConfig("gemini"), zap.NewNop())
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "go_goroutines")

	rec = httptest.NewRecorder()
	srv.Router().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Contains(t, rec.Body.String(), "/api/v1/insights/email")
}

func TestInitializePipelineUnknownProvider(t *testing.T) {
	_, err := InitializePipeline(testConfig("llama"), zap.NewNop())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownProvider)
	assert.Contains(t, err.Error(), "gemini")
	assert.Contains(t, llm.Registered(), "gemini")
}

func TestInitializePipelineMissingKey(t *testing.T) {
	cfg := testConfig("gemini")
	cfg.LLM.APIKey = ""

	_, err := InitializePipeline(cfg, zap.NewNop())
	assert.Equal(t, apperrors.KindConfiguration, apperrors.KindOf(err))
}

func TestServerConfigTimeouts(t *testing.T) {
	cfg := testConfig("gemini")
	cfg.LLM.Timeout = 10 * time.Second

	sc := provideServerConfig(cfg)
	assert.Equal(t, 50*time.Second, sc.WriteTimeout)
	assert.Equal(t, int64(25<<20), sc.MaxUploadBytes)
	assert.Equal(t, "production", sc.Environment)
}
