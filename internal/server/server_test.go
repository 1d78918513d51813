package server

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/vyrodovalexey/avroutemap/internal/config"
	"github.com/vyrodovalexey/avroutemap/internal/util"
)

func testConfig() *config.Config {
	cfg := config.DefaultConfig()
	cfg.Host = "127.0.0.1"
	cfg.Port = 8080
	cfg.URL = "/api/v1"
	return cfg
}

func newTestServer(t *testing.T) *Server {
	t.Helper()
	return New(testConfig(), zaptest.NewLogger(t))
}

func perform(srv *Server, method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	srv.Engine().ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)

	w := perform(srv, http.MethodGet, "/health")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestAPITreeGraftedUnderURL(t *testing.T) {
	srv := newTestServer(t)

	assert.Equal(t, "v1", srv.API().Segment())
	assert.Equal(t, "api", srv.API().Parent().Segment())
	assert.Same(t, srv.Root(), srv.API().Parent().Parent())
}

func TestRouteMapBuiltin(t *testing.T) {
	srv := newTestServer(t)

	w := perform(srv, http.MethodGet, "/api/v1/routemap")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"v1_": [{"url": "/api/v1/routemap", "accepted_methods": ["GET"]}]}`,
		w.Body.String())
}

func TestRouteMapReflectsRegisteredRoutes(t *testing.T) {
	srv := newTestServer(t)
	handler := func(c *gin.Context) { c.Status(http.StatusOK) }

	users := srv.API().Child("users")
	users.GET("/", handler)
	users.POST("/", handler)
	id := users.Child(":id")
	id.GET("/", handler)
	id.PATCH("/", handler)
	id.DELETE("/", handler)

	w := perform(srv, http.MethodGet, "/api/v1/routemap")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{
		"v1_": [{"url": "/api/v1/routemap", "accepted_methods": ["GET"]}],
		"v1_users_": [{"url": "/api/v1/users", "accepted_methods": ["GET", "POST"]}],
		"v1_users_:id_": [{"url": "/api/v1/users/:id", "accepted_methods": ["DELETE", "GET", "PATCH"]}]
	}`, w.Body.String())
}

func TestNotFoundDispatchByTree(t *testing.T) {
	srv := newTestServer(t)

	tests := []struct {
		path string
		tree string
	}{
		{"/nope", "root"},
		{"/api/v1/nope", "api"},
		{"/api/v1", "api"},
		{"/api/v12/nope", "root"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			w := perform(srv, http.MethodGet, tt.path)

			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.Contains(t, w.Body.String(), `"tree":"`+tt.tree+`"`)
		})
	}
}

func TestErrorMiddlewareWired(t *testing.T) {
	srv := newTestServer(t)
	srv.API().GET("/boom", func(c *gin.Context) {
		_ = c.Error(util.ErrNotFound)
	})

	w := perform(srv, http.MethodGet, "/api/v1/boom")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Not Found")
}

func TestRecoveryMiddlewareWired(t *testing.T) {
	srv := newTestServer(t)
	srv.API().GET("/panic", func(c *gin.Context) {
		panic("boom")
	})

	w := perform(srv, http.MethodGet, "/api/v1/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestStartStop(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := ln.Addr().(*net.TCPAddr).Port
	require.NoError(t, ln.Close())

	cfg := testConfig()
	cfg.Port = config.Port(port)
	srv := New(cfg, zaptest.NewLogger(t))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(context.Background())
	}()

	url := fmt.Sprintf("http://127.0.0.1:%d/health", port)
	require.Eventually(t, func() bool {
		resp, err := http.Get(url)
		if err != nil {
			return false
		}
		defer func() { _ = resp.Body.Close() }()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	assert.True(t, srv.IsRunning())

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, srv.Stop(ctx))
	require.NoError(t, <-errCh)
	assert.False(t, srv.IsRunning())
}

func TestStopWithoutStart(t *testing.T) {
	srv := newTestServer(t)

	assert.NoError(t, srv.Stop(context.Background()))
}
