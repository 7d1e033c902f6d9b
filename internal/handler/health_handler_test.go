package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	setupTest(t)

	c, rec := newJSONContext(t, http.MethodGet, "/api/health", nil)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "CareerBoost API is running", body["message"])
	assert.NotContains(t, body, "db_status")
}

func TestHealthCheckWithDBProbe(t *testing.T) {
	setupTest(t)

	// No database configured: the probe reports the in-memory fallback
	c, rec := newJSONContext(t, http.MethodGet, "/api/health?check=db", nil)

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "memory", decodeBody(t, rec)["db_status"])
}
