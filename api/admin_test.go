package api

import (
	"net/http"
	"testing"
	"time"

	"menuboard/config"
	"menuboard/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func adminRouter(t *testing.T, adminCfg config.AdminConfig) *gin.Engine {
	t.Helper()
	middleware.InitJWT(&config.Config{Admin: adminCfg})
	h, err := NewAdminHandler(adminCfg)
	require.NoError(t, err)

	router := gin.New()
	router.POST("/admin/login", h.Login)
	return router
}

func TestAdminHandler_Login(t *testing.T) {
	router := adminRouter(t, config.AdminConfig{
		Password:   "admin123",
		JWTSecret:  "test-secret",
		ExpireTime: time.Hour,
	})

	w := serve(router, "POST", "/admin/login", `{"password":"admin123"}`)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[AdminLoginResponse](t, w)
	require.NotEmpty(t, resp.Token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), resp.ExpiresAt, time.Minute)

	claims, err := middleware.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestAdminHandler_Login_WrongPassword(t *testing.T) {
	router := adminRouter(t, config.AdminConfig{
		Password:   "admin123",
		JWTSecret:  "test-secret",
		ExpireTime: time.Hour,
	})

	w := serve(router, "POST", "/admin/login", `{"password":"guess"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Incorrect password", decode[ErrorResponse](t, w).Message)

	w = serve(router, "POST", "/admin/login", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.True(t, hasFieldError(decode[ErrorResponse](t, w), "password"))
}

func TestAdminHandler_Login_PasswordHash(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	router := adminRouter(t, config.AdminConfig{
		Password:     "ignored",
		PasswordHash: string(hash),
		JWTSecret:    "test-secret",
		ExpireTime:   time.Hour,
	})

	// password_hash 优先于明文 password
	w := serve(router, "POST", "/admin/login", `{"password":"ignored"}`)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = serve(router, "POST", "/admin/login", `{"password":"s3cret"}`)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNewAdminHandler_Errors(t *testing.T) {
	_, err := NewAdminHandler(config.AdminConfig{})
	assert.Error(t, err)

	_, err = NewAdminHandler(config.AdminConfig{PasswordHash: "not-a-bcrypt-hash"})
	assert.Error(t, err)
}
