package middleware_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/qrtclosure/qrt_closure_app/internal/middleware"
	"github.com/qrtclosure/qrt_closure_app/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key-that-is-long-enough"

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		userID, ok := middleware.GetUserIDFromContext(c)
		middleware.GetLoggerFromCtx(c.Request.Context()).Info("handled")
		c.JSON(http.StatusOK, gin.H{"userID": userID, "found": ok})
	})
	return r
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(middleware.AuthMiddleware(testSecret))

	valid, err := utils.GenerateJWT("user-42", testSecret, time.Hour, "qrt-test")
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("user-42", testSecret, -time.Hour, "qrt-test")
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("user-42", "other-secret", time.Hour, "qrt-test")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header string
		code   int
		errMsg string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, ""},
		{"lowercase scheme", "bearer " + valid, http.StatusOK, ""},
		{"missing header", "", http.StatusUnauthorized, "Authorization header required"},
		{"wrong scheme", "Basic abc", http.StatusUnauthorized, "Authorization header format must be Bearer {token}"},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, "Token has expired"},
		{"wrong secret", "Bearer " + foreign, http.StatusUnauthorized, "Invalid token"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.code, w.Code)
			var body map[string]any
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
			if tt.errMsg != "" {
				assert.Equal(t, tt.errMsg, body["error"])
				return
			}
			assert.Equal(t, "user-42", body["userID"])
			assert.Equal(t, true, body["found"])
		})
	}
}

func TestStructuredLoggingMiddleware(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	r := newRouter(middleware.StructuredLoggingMiddleware(logger))

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("X-Request-ID", "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Header().Get("X-Request-ID"))
	assert.Contains(t, buf.String(), `"request_id":"req-123"`)
	assert.Contains(t, buf.String(), `"msg":"handled"`)
	assert.Contains(t, buf.String(), `"msg":"Request completed"`)
	assert.Contains(t, buf.String(), `"status":200`)
}

func TestStructuredLoggingMiddleware_GeneratesRequestID(t *testing.T) {
	logger := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
	r := newRouter(middleware.StructuredLoggingMiddleware(logger))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Len(t, w.Header().Get("X-Request-ID"), 36)
}

func TestGetLoggerFromCtx_Default(t *testing.T) {
	assert.Equal(t, slog.Default(), middleware.GetLoggerFromCtx(httptest.NewRequest(http.MethodGet, "/", nil).Context()))
}

func TestRateLimit(t *testing.T) {
	limiter, err := middleware.NewMemoryLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(middleware.RateLimit(limiter))

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))
		codes = append(codes, w.Code)
		if i == 0 {
			assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
		}
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestNewMemoryLimiter_BadRate(t *testing.T) {
	_, err := middleware.NewMemoryLimiter("lots")
	assert.Error(t, err)
}

func TestPosthogMiddleware_Disabled(t *testing.T) {
	r := newRouter(middleware.PosthogMiddleware(nil))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/whoami", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
