package middleware

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/catalog/pkg/errors"
	"github.com/xiebiao/catalog/pkg/logger"
	"github.com/xiebiao/catalog/pkg/response"
)

// Recovery 捕获panic，记录堆栈并返回统一的500响应
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(c.Request.Context()).Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
					zap.Stack("stack"),
				)
				if !c.Writer.Written() {
					response.Error(c, apperrors.Wrap(fmt.Errorf("panic: %v", r), "Internal Server Error"))
					return
				}
				c.Abort()
			}
		}()
		c.Next()
	}
}
