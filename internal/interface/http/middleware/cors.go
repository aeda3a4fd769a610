package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/catalog/internal/infrastructure/config"
)

var corsMethods = strings.Join([]string{
	http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions,
}, ", ")

// CORS 跨域中间件
// Origin不在允许列表中时不返回CORS头（由浏览器拦截），预检请求直接返回204
func CORS(cfg config.CORSConfig) gin.HandlerFunc {
	headers := strings.Join(cfg.AllowHeaders, ", ")
	maxAge := strconv.Itoa(int(cfg.MaxAge.Seconds()))

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if origin == "" {
			c.Next()
			return
		}

		if allowed, value := allowOrigin(cfg.AllowOrigins, origin); allowed {
			c.Header("Access-Control-Allow-Origin", value)
			c.Header("Vary", "Origin")
			c.Header("Access-Control-Allow-Methods", corsMethods)
			c.Header("Access-Control-Allow-Headers", headers)
			c.Header("Access-Control-Expose-Headers", "Content-Disposition, "+RequestIDHeader)
			if cfg.MaxAge > 0 {
				c.Header("Access-Control-Max-Age", maxAge)
			}
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func allowOrigin(allowed []string, origin string) (bool, string) {
	for _, o := range allowed {
		if o == "*" {
			return true, "*"
		}
		if strings.EqualFold(o, origin) {
			return true, origin
		}
	}
	return false, ""
}
