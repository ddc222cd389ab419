package middleware_test

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/SscSPs/asset_management_app/internal/apperrors"
	"github.com/SscSPs/asset_management_app/internal/core/domain"
	"github.com/SscSPs/asset_management_app/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubVerifier map[string]string

func (s stubVerifier) VerifyToken(_ context.Context, token string) (*domain.Identity, error) {
	email, ok := s[token]
	if !ok {
		return nil, errors.New("bad token")
	}
	return &domain.Identity{Email: email}, nil
}

type stubAuth map[string]domain.UserRole

func (s stubAuth) AuthorizeRole(_ context.Context, email string, role domain.UserRole) error {
	if email == "broken@acme.com" {
		return errors.New("db down")
	}
	if s[email] != role {
		return apperrors.ErrForbidden
	}
	return nil
}

func serve(r *gin.Engine, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestVerifyIdentityAndRequireRole(t *testing.T) {
	r := gin.New()
	verifier := stubVerifier{"hr-token": "hr@acme.com", "emp-token": "emp@acme.com", "broken-token": "broken@acme.com"}
	auth := stubAuth{"hr@acme.com": domain.RoleHR, "emp@acme.com": domain.RoleEmployee}

	r.GET("/me", middleware.VerifyIdentity(verifier), func(c *gin.Context) {
		email, ok := middleware.GetCallerEmailFromContext(c)
		require.True(t, ok)
		c.String(http.StatusOK, email)
	})
	r.GET("/hr", middleware.VerifyIdentity(verifier), middleware.RequireRole(auth, domain.RoleHR), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	testCases := []struct {
		name   string
		path   string
		header string
		status int
	}{
		{"missing header", "/me", "", http.StatusUnauthorized},
		{"wrong scheme", "/me", "Basic hr-token", http.StatusUnauthorized},
		{"unknown token", "/me", "Bearer nope", http.StatusUnauthorized},
		{"verified", "/me", "Bearer emp-token", http.StatusOK},
		{"lowercase scheme", "/me", "bearer emp-token", http.StatusOK},
		{"hr allowed", "/hr", "Bearer hr-token", http.StatusNoContent},
		{"employee forbidden", "/hr", "Bearer emp-token", http.StatusForbidden},
		{"role lookup fails", "/hr", "Bearer broken-token", http.StatusInternalServerError},
		{"unverified never reaches role check", "/hr", "", http.StatusUnauthorized},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := serve(r, tc.path, tc.header)
			assert.Equal(t, tc.status, w.Code, w.Body.String())
			if tc.status >= 400 {
				assert.Contains(t, w.Body.String(), `"success":false`)
			}
		})
	}

	assert.Equal(t, "emp@acme.com", serve(r, "/me", "Bearer emp-token").Body.String())
}

func TestRateLimit(t *testing.T) {
	rate, err := limiter.NewRateFromFormatted("2-M")
	require.NoError(t, err)

	r := gin.New()
	r.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))
	r.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/packages", func(c *gin.Context) { c.Status(http.StatusOK) })

	first := serve(r, "/packages", "")
	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusOK, serve(r, "/packages", "").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, "/packages", "").Code)

	for range 5 {
		assert.Equal(t, http.StatusOK, serve(r, "/health", "").Code)
	}
}

func TestStructuredLoggingSetsRequestID(t *testing.T) {
	r := gin.New()
	r.Use(middleware.StructuredLoggingMiddleware(slogDiscard()))
	r.GET("/x", func(c *gin.Context) {
		assert.NotNil(t, middleware.GetLoggerFromCtx(c.Request.Context()))
		c.Status(http.StatusOK)
	})

	w := serve(r, "/x", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func slogDiscard() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
