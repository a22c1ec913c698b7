package middlewares

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pulseboard/pulseboard/utils/auth"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	os.Setenv("JWT_SECRET", "middleware-test-secret")
	Setup()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(JWT())
	router.GET("/whoami", func(c *gin.Context) {
		c.String(http.StatusOK, c.Request.Header.Get("sub"))
	})
	return router
}

func TestJWTMissingToken(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTInvalidToken(t *testing.T) {
	router := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer bogus")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestJWTValidTokenInjectsSub(t *testing.T) {
	router := setupRouter(t)

	token, err := auth.GenerateToken("user-42", "u@example.com", auth.Secret())
	require.Nil(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", w.Body.String())
}

func TestJWTTokenQueryFallback(t *testing.T) {
	router := setupRouter(t)

	token, err := auth.GenerateToken("user-7", "u@example.com", auth.Secret())
	require.Nil(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/whoami?token="+token, nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-7", w.Body.String())
}
