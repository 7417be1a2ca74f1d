package http

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsamuelsen/dailyquote/internal/platform/config"
)

func serverConfig(port int, maxBody int64) *config.ServerConfig {
	return &config.ServerConfig{
		Host:              "127.0.0.1",
		Port:              port,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       30 * time.Second,
		StreamMaxDuration: 5 * time.Second,
		MaxRequestSize:    maxBody,
	}
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServer_New(t *testing.T) {
	cfg := serverConfig(8080, 1<<20)

	srv := New(cfg, quietLogger())

	require.NotNil(t, srv.Engine())
	assert.Same(t, cfg, srv.Config())
	assert.Equal(t, "127.0.0.1:8080", srv.Addr())
}

func TestServer_StartServeShutdown(t *testing.T) {
	srv := New(serverConfig(0, 1<<20), quietLogger())
	srv.Engine().GET("/api/v1/today", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"date": "2024-05-10"})
	})

	errCh := srv.Start()
	require.NotEqual(t, "127.0.0.1:0", srv.Addr(), "port 0 resolves once bound")

	resp, err := http.Get(fmt.Sprintf("http://%s/api/v1/today", srv.Addr())) //nolint:noctx // test request
	require.NoError(t, err)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, err)
	assert.JSONEq(t, `{"date":"2024-05-10"}`, string(body))

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx))

	_, open := <-errCh
	assert.False(t, open, "error channel closes on shutdown")
}

func TestServer_StartBindFailure(t *testing.T) {
	taken, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = taken.Close() })

	port := taken.Addr().(*net.TCPAddr).Port

	errCh := New(serverConfig(port, 1<<20), quietLogger()).Start()

	select {
	case err := <-errCh:
		require.Error(t, err)
		assert.Contains(t, err.Error(), "listening on")
	case <-time.After(2 * time.Second):
		t.Fatal("bind failure was not reported")
	}
}

func TestServer_ShutdownEndsOpenRequests(t *testing.T) {
	srv := New(serverConfig(0, 1<<20), quietLogger())

	entered := make(chan struct{})
	srv.Engine().GET("/api/v1/stream/quotes", func(c *gin.Context) {
		close(entered)
		<-c.Request.Context().Done()
		c.Status(http.StatusNoContent)
	})

	errCh := srv.Start()

	go func() {
		resp, err := http.Get(fmt.Sprintf("http://%s/api/v1/stream/quotes", srv.Addr())) //nolint:noctx // test request
		if err == nil {
			_ = resp.Body.Close()
		}
	}()

	<-entered

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, srv.Shutdown(ctx), "base context cancellation releases the handler")

	select {
	case <-errCh:
	case <-time.After(2 * time.Second):
		t.Fatal("server did not stop")
	}
}

func TestMaxBodySize(t *testing.T) {
	srv := New(serverConfig(0, 64), quietLogger())
	srv.Engine().POST("/api/v1/quotes", func(c *gin.Context) {
		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			c.Status(http.StatusRequestEntityTooLarge)
			return
		}

		c.JSON(http.StatusOK, gin.H{"received": len(body)})
	})

	tests := []struct {
		name   string
		body   string
		status int
	}{
		{name: "small quote", body: `{"text":"Know thyself.","author":"Socrates"}`, status: http.StatusOK},
		{name: "oversized body", body: strings.Repeat("x", 65), status: http.StatusRequestEntityTooLarge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			srv.Engine().ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(tt.body)))

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
