package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"menuboard/config"
	"menuboard/middleware"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

// AdminHandler 后台登录
type AdminHandler struct {
	passwordHash []byte
	expire       time.Duration
}

// NewAdminHandler 创建后台登录处理器
// 未配置 password_hash 时使用明文 password 生成 bcrypt 哈希
func NewAdminHandler(cfg config.AdminConfig) (*AdminHandler, error) {
	hash := []byte(cfg.PasswordHash)
	if len(hash) == 0 {
		if cfg.Password == "" {
			return nil, fmt.Errorf("admin password is not configured")
		}
		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("hash admin password: %w", err)
		}
	} else if _, err := bcrypt.Cost(hash); err != nil {
		return nil, fmt.Errorf("invalid admin password_hash: %w", err)
	}
	return &AdminHandler{passwordHash: hash, expire: cfg.ExpireTime}, nil
}

type AdminLoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type AdminLoginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Login 后台登录
// @Summary 后台登录
// @Description 校验后台密码并签发 Bearer token
// @Tags 后台
// @Accept json
// @Produce json
// @Param request body AdminLoginRequest true "后台密码"
// @Success 200 {object} AdminLoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Router /api/admin/login [post]
func (h *AdminHandler) Login(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, "Invalid login data", bindErrorDetails(err)...)
		return
	}

	if err := bcrypt.CompareHashAndPassword(h.passwordHash, []byte(req.Password)); err != nil {
		slog.Warn("admin login failed", "client_ip", c.ClientIP())
		Unauthorized(c, "Incorrect password")
		return
	}

	token, expiresAt, err := middleware.GenerateToken(h.expire)
	if err != nil {
		InternalError(c, err, "Failed to issue token")
		return
	}
	c.JSON(http.StatusOK, AdminLoginResponse{Token: token, ExpiresAt: expiresAt})
}
