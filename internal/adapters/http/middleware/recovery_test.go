package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailyquote/internal/adapters/http/dto"
)

func TestRecovery(t *testing.T) {
	var buf bytes.Buffer

	router := gin.New()
	router.Use(Recovery(slog.New(slog.NewJSONHandler(&buf, nil))))
	router.GET("/api/v1/today", func(*gin.Context) { panic("rotation exploded") })
	router.GET("/api/v1/stats", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/stats", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Zero(t, buf.Len())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/today", nil)
	req.Header.Set(HeaderRequestID, "req-panic")

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, dto.ErrorCodeInternal, resp.Error.Code)
	assert.Equal(t, "req-panic", resp.TraceID)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "panic recovered", entry["msg"])
	assert.Equal(t, "rotation exploded", entry["error"])
	assert.Equal(t, "/api/v1/today", entry["path"])
	assert.NotEmpty(t, entry["stack"])
}

func TestTimeout(t *testing.T) {
	var (
		deadline    time.Time
		hasDeadline bool
	)

	router := gin.New()
	router.Use(Timeout(5 * time.Second))
	router.GET("/api/v1/quotes", func(c *gin.Context) {
		deadline, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusOK)
	})

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/v1/quotes", nil))

	require.True(t, hasDeadline)
	assert.WithinDuration(t, time.Now().Add(5*time.Second), deadline, time.Second)
}
