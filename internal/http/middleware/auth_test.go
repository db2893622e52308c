package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/animalloo/animalloo-backend/internal/platform/ctxutil"
	"github.com/animalloo/animalloo-backend/internal/platform/logger"
	"github.com/animalloo/animalloo-backend/internal/services"
)

func newAuthRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	log := logger.NewNop()
	am := NewAuthMiddleware(log, services.NewAuthService(log, "secret"))

	r := gin.New()
	r.Use(AttachRequestContext())
	r.GET("/api/favorites", am.RequireAuth(), func(c *gin.Context) {
		rd := ctxutil.GetRequestData(c.Request.Context())
		c.String(http.StatusOK, rd.UserID)
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	r := newAuthRouter(t)
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "user-7",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
	}).SignedString([]byte("secret"))
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-7", rec.Body.String())
}

func TestRequireAuthRejects(t *testing.T) {
	r := newAuthRouter(t)
	for name, header := range map[string]string{
		"missing": "",
		"basic":   "Basic dXNlcjpwYXNz",
		"garbage": "Bearer nope",
	} {
		req := httptest.NewRequest(http.MethodGet, "/api/favorites", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, name)
		assert.Contains(t, rec.Body.String(), `"code":"unauthorized"`, name)
	}
}
