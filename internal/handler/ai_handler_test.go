package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"careerboost-api/internal/storage"
	"careerboost-api/pkg/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateTextMissingPrompt(t *testing.T) {
	setupTest(t)

	c, rec := newJSONContext(t, http.MethodPost, "/api/ai/generate", echo.Map{})

	require.NoError(t, GenerateText(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Prompt is required", decodeBody(t, rec)["error"])
}

func TestGenerateTextUnconfigured(t *testing.T) {
	setupTest(t) // no API key in the test config

	c, rec := newJSONContext(t, http.MethodPost, "/api/ai/generate", echo.Map{
		"prompt": "Review my resume",
	})

	require.NoError(t, GenerateText(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Google AI API key not configured", decodeBody(t, rec)["error"])
}

func TestGenerateTextSuccess(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Contains(t, r.URL.Path, ":generateContent")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"Tailor your resume to each posting."}]}}]}`))
	}))
	defer provider.Close()

	Init(storage.NewMemoryStorage(), &config.Config{AI: config.AIConfig{
		APIKey:  "test-key",
		Model:   "gemini-1.5-flash",
		BaseURL: provider.URL,
	}})

	c, rec := newJSONContext(t, http.MethodPost, "/api/ai/generate", echo.Map{
		"prompt": "Review my resume",
	})

	require.NoError(t, GenerateText(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Tailor your resume to each posting.", decodeBody(t, rec)["text"])
}

func TestGenerateTextProviderFailure(t *testing.T) {
	provider := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error":{"code":429,"message":"quota exceeded"}}`))
	}))
	defer provider.Close()

	Init(storage.NewMemoryStorage(), &config.Config{AI: config.AIConfig{
		APIKey:  "test-key",
		Model:   "gemini-1.5-flash",
		BaseURL: provider.URL,
	}})

	c, rec := newJSONContext(t, http.MethodPost, "/api/ai/generate", echo.Map{
		"prompt": "Review my resume",
	})

	require.NoError(t, GenerateText(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to generate AI response", decodeBody(t, rec)["error"])
}
