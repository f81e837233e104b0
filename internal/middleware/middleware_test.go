package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SscSPs/property_backoffice/internal/utils"
)

const testSecret = "test-secret"

func newRouter(mw ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(StructuredLoggingMiddleware(slog.New(slog.NewTextHandler(io.Discard, nil))))
	r.Use(mw...)
	r.GET("/whoami", func(c *gin.Context) {
		userID, _ := GetUserIDFromContext(c)
		c.JSON(http.StatusOK, gin.H{"userID": userID})
	})
	return r
}

func do(r http.Handler, header, value string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if header != "" {
		req.Header.Set(header, value)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestStructuredLogging_RequestID(t *testing.T) {
	r := newRouter()

	w := do(r, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(RequestIDHeader))

	w = do(r, RequestIDHeader, "abc-123")
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader), "caller supplied id is echoed")
}

func TestAuthMiddleware(t *testing.T) {
	r := newRouter(AuthMiddleware(testSecret))

	valid, err := utils.GenerateJWT("user-7", testSecret, time.Hour, "test")
	require.NoError(t, err)
	expired, err := utils.GenerateJWT("user-7", testSecret, -time.Hour, "test")
	require.NoError(t, err)
	foreign, err := utils.GenerateJWT("user-7", "someone-else", time.Hour, "test")
	require.NoError(t, err)

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantBody string
	}{
		{"valid token", "Bearer " + valid, http.StatusOK, `{"userID":"user-7"}`},
		{"missing header", "", http.StatusUnauthorized, `{"error":"Authorization header required"}`},
		{"wrong scheme", "Token " + valid, http.StatusUnauthorized, `{"error":"Authorization header format must be Bearer {token}"}`},
		{"expired", "Bearer " + expired, http.StatusUnauthorized, `{"error":"Token has expired"}`},
		{"bad signature", "Bearer " + foreign, http.StatusUnauthorized, `{"error":"Invalid token"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := ""
			if tt.header != "" {
				header = "Authorization"
			}
			w := do(r, header, tt.header)
			assert.Equal(t, tt.wantCode, w.Code)
			assert.JSONEq(t, tt.wantBody, w.Body.String())
		})
	}
}

func TestAPIKeyAuth(t *testing.T) {
	hash, err := utils.HashSecret("bank-key")
	require.NoError(t, err)

	r := newRouter(APIKeyAuth(hash))
	w := do(r, APIKeyHeader, "bank-key")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userID":"system:bank-import"}`, w.Body.String())

	assert.Equal(t, http.StatusUnauthorized, do(r, APIKeyHeader, "wrong").Code)
	assert.Equal(t, http.StatusUnauthorized, do(r, "", "").Code)

	closed := newRouter(APIKeyAuth(""))
	assert.Equal(t, http.StatusUnauthorized, do(closed, APIKeyHeader, "bank-key").Code)
}

func TestAPIKeyThenJWTSkipsBearerCheck(t *testing.T) {
	hash, err := utils.HashSecret("bank-key")
	require.NoError(t, err)

	r := newRouter(APIKeyAuth(hash), AuthMiddleware(testSecret))
	assert.Equal(t, http.StatusOK, do(r, APIKeyHeader, "bank-key").Code)
}

func TestRateLimit(t *testing.T) {
	lim, err := NewRateLimiter("2-M")
	require.NoError(t, err)
	r := newRouter(RateLimit(lim))

	assert.Equal(t, http.StatusOK, do(r, "", "").Code)
	w := do(r, "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, http.StatusTooManyRequests, do(r, "", "").Code)

	_, err = NewRateLimiter("lots")
	assert.Error(t, err)
}
