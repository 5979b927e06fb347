package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func setupRouter(checks map[string]Check) *gin.Engine {
	r := gin.New()
	r.Any("/healthz", Health)
	r.GET("/readyz", Ready(checks, time.Second))
	return r
}

func TestHealth_ResponseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		method         string
		expectedStatus int
		expectedBody   string
	}{
		{http.MethodGet, http.StatusOK, `{"status":"ok"}`},
		{http.MethodHead, http.StatusOK, ""},
		{http.MethodOptions, http.StatusNoContent, ""},
		{http.MethodPost, http.StatusOK, `{"status":"ok"}`},
		{http.MethodDelete, http.StatusOK, `{"status":"ok"}`},
	}

	router := setupRouter(nil)

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(tt.method, "/healthz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, "no-store", w.Header().Get("Cache-Control"))
			if tt.expectedBody == "" {
				assert.Zero(t, w.Body.Len())
			} else {
				assert.JSONEq(t, tt.expectedBody, w.Body.String())
			}
		})
	}
}

func TestReady(t *testing.T) {
	t.Parallel()

	ok := func(ctx context.Context) error { return nil }
	failing := func(ctx context.Context) error { return errors.New("dial tcp: connection refused") }

	tests := []struct {
		name           string
		checks         map[string]Check
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "all dependencies ready",
			checks:         map[string]Check{"database": ok, "redis": ok},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok","checks":{"database":"ok","redis":"ok"}}`,
		},
		{
			name:           "no checks configured",
			checks:         map[string]Check{},
			expectedStatus: http.StatusOK,
			expectedBody:   `{"status":"ok","checks":{}}`,
		},
		{
			name:           "database down, error detail hidden",
			checks:         map[string]Check{"database": failing, "redis": ok},
			expectedStatus: http.StatusServiceUnavailable,
			expectedBody:   `{"status":"unavailable","checks":{"database":"unavailable","redis":"ok"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			w := httptest.NewRecorder()
			setupRouter(tt.checks).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}
}

func TestReady_CheckReceivesDeadline(t *testing.T) {
	t.Parallel()

	var hasDeadline bool
	checks := map[string]Check{"database": func(ctx context.Context) error {
		_, hasDeadline = ctx.Deadline()
		return nil
	}}

	w := httptest.NewRecorder()
	setupRouter(checks).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/readyz", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, hasDeadline)
}
