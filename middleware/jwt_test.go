package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"menuboard/config"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func initJWTTestConfig() {
	InitJWT(&config.Config{Admin: config.AdminConfig{JWTSecret: "test-jwt-secret-key"}})
}

func TestGenerateAndParseToken(t *testing.T) {
	initJWTTestConfig()

	token, expiresAt, err := GenerateToken(time.Hour)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), expiresAt, 5*time.Second)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "admin", claims.Subject)
}

func TestParseToken_Invalid(t *testing.T) {
	initJWTTestConfig()

	_, err := ParseToken("")
	assert.Error(t, err)

	_, err = ParseToken("not.a.valid.jwt")
	assert.Error(t, err)

	// 过期 token
	expired, _, err := GenerateToken(-time.Minute)
	require.NoError(t, err)
	_, err = ParseToken(expired)
	assert.Error(t, err)

	// 其他密钥签发的 token
	foreign, err := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{Role: "admin"}).SignedString([]byte("other"))
	require.NoError(t, err)
	_, err = ParseToken(foreign)
	assert.Error(t, err)
}

func TestAdminAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	initJWTTestConfig()
	token, _, err := GenerateToken(time.Hour)
	require.NoError(t, err)

	newRouter := func(enabled bool) *gin.Engine {
		r := gin.New()
		r.POST("/api/menu-items", AdminAuth(enabled), func(c *gin.Context) {
			c.Status(http.StatusCreated)
		})
		return r
	}
	do := func(r *gin.Engine, authHeader string) int {
		req := httptest.NewRequest("POST", "/api/menu-items", nil)
		if authHeader != "" {
			req.Header.Set("Authorization", authHeader)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	open := newRouter(false)
	assert.Equal(t, http.StatusCreated, do(open, ""))

	gated := newRouter(true)
	assert.Equal(t, http.StatusUnauthorized, do(gated, ""))
	assert.Equal(t, http.StatusUnauthorized, do(gated, "Bearer garbage"))
	assert.Equal(t, http.StatusUnauthorized, do(gated, token))
	assert.Equal(t, http.StatusCreated, do(gated, "Bearer "+token))
}
