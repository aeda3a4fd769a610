package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Code是业务错误码，Code/100即HTTP状态码（40400 → 404）
// 2. Message是返回给客户端的提示信息
// 3. Err是内部错误，只记录日志，不返回给客户端
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 错误码和提示信息都相同时视为同一错误
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Code == t.Code && e.Message == t.Message
}

// HTTPStatus 错误码对应的HTTP状态码
func (e *AppError) HTTPStatus() int {
	status := e.Code / 100
	if http.StatusText(status) == "" {
		return http.StatusInternalServerError
	}
	return status
}

// New 创建新的AppError
func New(code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误（数据库、网络等），对外统一为内部错误
func Wrap(err error, message string) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// WrapCode 包装系统错误并指定错误码
func WrapCode(err error, code int, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: fmt.Sprintf(format, args...),
		Err:     err,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：错误码/100 = HTTP状态码
// - 400xx: 参数错误、业务规则校验失败
// - 401xx: 认证失败
// - 404xx: 资源不存在
// - 408xx: 请求超时
// - 409xx: 资源冲突
// - 500xx: 服务端错误

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误

	// 认证错误（40100-40199）
	ErrCodeUnauthorized       = 40100 // 未登录
	ErrCodeInvalidToken       = 40101 // Token无效
	ErrCodeTokenExpired       = 40102 // Token过期
	ErrCodeInvalidCredentials = 40103 // 账号或密码错误
	ErrCodeTokenRevoked       = 40104 // Token已注销

	// 资源错误（40400-40499）
	ErrCodeNotFound = 40400

	// 参数与业务规则错误（40000-40099）
	ErrCodeInvalidParams    = 40000 // 参数错误(通用)
	ErrCodeEmailDuplicate   = 40003 // 邮箱已存在
	ErrCodeInvalidSort      = 40004 // 排序参数非法
	ErrCodeInvalidReference = 40005 // 外键引用不存在

	// 超时（40800）
	ErrCodeTimeout = 40800

	// 冲突（40900-40999）
	ErrCodeConflict = 40900
)

// =========================================
// 预定义错误
// =========================================

var (
	ErrInternal      = New(ErrCodeInternal, "Internal Server Error")
	ErrDatabaseError = New(ErrCodeDatabaseError, "Database error")

	ErrUnauthorized = New(ErrCodeUnauthorized, "Unauthorized")
	ErrInvalidToken = New(ErrCodeInvalidToken, "Invalid token")
	ErrTokenExpired = New(ErrCodeTokenExpired, "Token expired")
	ErrTokenRevoked = New(ErrCodeTokenRevoked, "Token has been revoked")

	ErrTimeout = New(ErrCodeTimeout, "Request Timeout")
)

// =========================================
// 辅助函数
// =========================================

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "Internal Server Error")
}

// HasCode 判断err是否为指定错误码的AppError
func HasCode(err error, code int) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
