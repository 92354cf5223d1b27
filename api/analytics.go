package api

import (
	"net/http"

	"menuboard/storage"

	"github.com/gin-gonic/gin"
)

// AnalyticsHandler 后台统计
type AnalyticsHandler struct {
	store storage.Store
}

func NewAnalyticsHandler(store storage.Store) *AnalyticsHandler {
	return &AnalyticsHandler{store: store}
}

// Summary 菜单统计
// @Summary 获取菜单统计
// @Description viewsToday 为占位数据，没有真实访问统计
// @Tags 统计
// @Produce json
// @Success 200 {object} models.AnalyticsSummary
// @Router /api/analytics [get]
func (h *AnalyticsHandler) Summary(c *gin.Context) {
	c.JSON(http.StatusOK, h.store.AnalyticsSummary())
}
