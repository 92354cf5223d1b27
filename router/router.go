package router

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"

	"menuboard/api"
	"menuboard/config"
	_ "menuboard/docs"
	"menuboard/middleware"
	"menuboard/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter 设置路由，ctx 结束时停止后台清理协程
func SetupRouter(ctx context.Context, cfg *config.Config, store storage.Store) (*gin.Engine, error) {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	adminHandler, err := api.NewAdminHandler(cfg.Admin)
	if err != nil {
		return nil, fmt.Errorf("init admin handler: %w", err)
	}

	r := gin.New()
	// 登录限流按 ClientIP 计数，只信任配置的代理
	if err := r.SetTrustedProxies(cfg.Server.TrustedProxies); err != nil {
		return nil, fmt.Errorf("trusted proxies: %w", err)
	}
	r.Use(
		gin.CustomRecovery(recoverJSON),
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.Metrics(),
		corsMiddleware(cfg.CORS),
	)

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Menu API is running!"})
	})

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	categoryHandler := api.NewCategoryHandler(store)
	menuItemHandler := api.NewMenuItemHandler(store, cfg.Menu.StrictCategoryRefs)
	analyticsHandler := api.NewAnalyticsHandler(store)
	exportHandler := api.NewExportHandler(store, cfg.Menu.Currency)

	apiGroup := r.Group("/api")
	{
		apiGroup.POST("/admin/login",
			middleware.LoginRateLimit(ctx, cfg.Admin.LoginMaxAttempts, cfg.Admin.LoginWindow),
			adminHandler.Login)

		// 顾客端只读接口
		apiGroup.GET("/categories", categoryHandler.List)
		apiGroup.GET("/categories/with-items", categoryHandler.WithItems)
		apiGroup.GET("/categories/:id", categoryHandler.Get)
		apiGroup.GET("/categories/:id/items", categoryHandler.Items)
		apiGroup.GET("/menu-items", menuItemHandler.List)
		apiGroup.GET("/menu-items/with-category", menuItemHandler.WithCategory)
		apiGroup.GET("/menu-items/export", exportHandler.Export)
		apiGroup.GET("/menu-items/:id", menuItemHandler.Get)
		apiGroup.GET("/analytics", analyticsHandler.Summary)

		// 后台写接口，admin.require_auth 开启时需要 Bearer token
		admin := apiGroup.Group("")
		admin.Use(middleware.AdminAuth(cfg.Admin.RequireAuth))
		{
			admin.POST("/categories", categoryHandler.Create)
			admin.PUT("/categories/:id", categoryHandler.Update)
			admin.DELETE("/categories/:id", categoryHandler.Delete)

			admin.POST("/menu-items", menuItemHandler.Create)
			admin.PUT("/menu-items/:id", menuItemHandler.Update)
			admin.PUT("/menu-items/:id/toggle", menuItemHandler.Toggle)
			admin.DELETE("/menu-items/:id", menuItemHandler.Delete)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		api.NotFound(c, "Route not found")
	})

	return r, nil
}

func recoverJSON(c *gin.Context, recovered any) {
	slog.Error("panic recovered",
		"panic", recovered,
		"path", c.Request.URL.Path,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, api.ErrorResponse{Message: "Internal server error"})
}

// corsMiddleware 跨域中间件，allow_origins 含 "*" 时放开全部来源
func corsMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	corsCfg.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept", "Authorization", "X-Request-ID"}
	corsCfg.ExposeHeaders = []string{"Content-Disposition", "X-Request-ID"}

	if len(cfg.AllowOrigins) == 0 || slices.Contains(cfg.AllowOrigins, "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	return cors.New(corsCfg)
}
