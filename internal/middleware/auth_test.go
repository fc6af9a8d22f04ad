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
)

func newAuthRouter(secret string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PUT("/settings", Auth(secret), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
	return r
}

func signToken(t *testing.T, secret string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": time.Now().Add(time.Hour).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return signed
}

func TestAuthAcceptsValidToken(t *testing.T) {
	router := newAuthRouter("secret")

	req := httptest.NewRequest(http.MethodPut, "/settings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "secret"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestAuthRejectsMissingToken(t *testing.T) {
	router := newAuthRouter("secret")

	req := httptest.NewRequest(http.MethodPut, "/settings", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	router := newAuthRouter("secret")

	req := httptest.NewRequest(http.MethodPut, "/settings", nil)
	req.Header.Set("Authorization", "Bearer "+signToken(t, "other-secret"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}

func TestAuthRejectsMalformedHeader(t *testing.T) {
	router := newAuthRouter("secret")

	req := httptest.NewRequest(http.MethodPut, "/settings", nil)
	req.Header.Set("Authorization", "Token abc")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
}
