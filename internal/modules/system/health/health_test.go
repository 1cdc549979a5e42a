package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthPayload struct {
	Status   string            `json:"status"`
	Version  string            `json:"version"`
	Services map[string]string `json:"services"`
	Features map[string]string `json:"features"`
}

func serve(t *testing.T, opts Options) healthPayload {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/api/v1"), opts)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var payload healthPayload
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &payload))
	return payload
}

func TestHealthWithoutAIKey(t *testing.T) {
	payload := serve(t, Options{
		AIAvailable: func() bool { return false },
	})

	assert.Equal(t, "healthy", payload.Status)
	assert.Equal(t, "operational", payload.Services["api"])
	assert.Equal(t, "unavailable", payload.Services["ai"])
}

func TestHealthWithAIAndStorage(t *testing.T) {
	payload := serve(t, Options{
		AIAvailable:      func() bool { return true },
		StorageAvailable: true,
	})

	assert.Equal(t, "operational", payload.Services["ai"])
	assert.Equal(t, "operational", payload.Services["storage"])
	assert.Equal(t, "enabled", payload.Features["recording"])
	assert.Equal(t, "1.0.0", payload.Version)
}
