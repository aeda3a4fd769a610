package response

import (
	"context"
	"errors"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/catalog/pkg/errors"
	"github.com/xiebiao/catalog/pkg/logger"
)

// ErrorBody 统一错误响应结构
// 设计说明：
// 1. StatusCode与HTTP状态码一致，方便客户端统一判断（401跳转登录）
// 2. Message是用户可读的提示
// 3. Errors仅在参数校验失败时返回
type ErrorBody struct {
	StatusCode int          `json:"statusCode" example:"404"`
	Message    string       `json:"message" example:"Book not found"`
	Error      string       `json:"error" example:"Not Found"`
	Errors     []FieldError `json:"errors,omitempty"`
}

// FieldError 字段校验错误
type FieldError struct {
	Field   string `json:"field" example:"title"`
	Rule    string `json:"rule" example:"required"`
	Message string `json:"message" example:"title is required"`
}

// MessageBody 删除、登出等操作的响应
type MessageBody struct {
	Message string `json:"message" example:"Author with id #1 was deleted"`
	OK      bool   `json:"ok" example:"true"`
}

// Success 成功响应：{<key>: data, ok: true}
func Success(c *gin.Context, key string, data interface{}) {
	c.JSON(http.StatusOK, gin.H{key: data, "ok": true})
}

// Created 创建成功响应（201）
func Created(c *gin.Context, key string, data interface{}) {
	c.JSON(http.StatusCreated, gin.H{key: data, "ok": true})
}

// Message 只返回提示信息的成功响应
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, MessageBody{Message: message, OK: true})
}

// Error 错误响应（自动处理AppError）
//
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	// 请求超时导致的下游错误统一返回408
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.ErrTimeout
	}

	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 内部错误只记日志，不返回给客户端
	if appErr.Err != nil || status >= http.StatusInternalServerError {
		logger.FromContext(c.Request.Context()).Error("request failed",
			zap.Int("code", appErr.Code),
			zap.String("message", appErr.Message),
			zap.Error(appErr.Err),
		)
	}

	c.AbortWithStatusJSON(status, ErrorBody{
		StatusCode: status,
		Message:    appErr.Message,
		Error:      http.StatusText(status),
	})
}

// ErrorWithCode 自定义错误码和消息
func ErrorWithCode(c *gin.Context, code int, message string) {
	Error(c, apperrors.New(code, message))
}

// ValidationError 参数校验失败（400）
func ValidationError(c *gin.Context, message string, fields []FieldError) {
	c.AbortWithStatusJSON(http.StatusBadRequest, ErrorBody{
		StatusCode: http.StatusBadRequest,
		Message:    message,
		Error:      http.StatusText(http.StatusBadRequest),
		Errors:     fields,
	})
}

// =========================================
// 分页响应结构
// =========================================

// PageData 分页数据封装
type PageData struct {
	Data        interface{} `json:"data"`
	Total       int64       `json:"total" example:"42"`
	CurrentPage int         `json:"currentPage" example:"1"`
	PageSize    int         `json:"pageSize" example:"10"`
	TotalPages  int         `json:"totalPages" example:"5"`
	OK          bool        `json:"ok" example:"true"`
}

// NewPageData 创建分页数据，totalPages = ceil(total/pageSize)
func NewPageData(list interface{}, total int64, page, pageSize int) *PageData {
	return &PageData{
		Data:        list,
		Total:       total,
		CurrentPage: page,
		PageSize:    pageSize,
		TotalPages:  TotalPages(total, pageSize),
		OK:          true,
	}
}

// TotalPages 计算总页数
func TotalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(pageSize)))
}

// SuccessWithPage 分页成功响应
func SuccessWithPage(c *gin.Context, page *PageData) {
	c.JSON(http.StatusOK, page)
}
