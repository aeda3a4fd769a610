package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/catalog/pkg/logger"
)

// Pinger 存活检查依赖（数据库）
type Pinger func(ctx context.Context) error

// HealthHandler 欢迎页和健康检查
type HealthHandler struct {
	ping    Pinger
	version string
}

// NewHealthHandler 创建健康检查处理器
func NewHealthHandler(ping Pinger, version string) *HealthHandler {
	return &HealthHandler{ping: ping, version: version}
}

// Welcome API欢迎信息
// @Summary      欢迎信息
// @Tags         系统
// @Produce      json
// @Success      200 {object} response.MessageBody
// @Router       /api [get]
func (h *HealthHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Welcome to the library catalog API", "ok": true})
}

// Health 健康检查，数据库不可用时返回503
// @Summary      健康检查
// @Tags         系统
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Failure      503 {object} map[string]interface{}
// @Router       /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status, database := http.StatusOK, "up"
	if err := h.ping(ctx); err != nil {
		logger.FromContext(ctx).Error("health check failed", zap.Error(err))
		status, database = http.StatusServiceUnavailable, "down"
	}

	c.JSON(status, gin.H{
		"ok":       status == http.StatusOK,
		"database": database,
		"version":  h.version,
		"time":     time.Now().UTC(),
	})
}
