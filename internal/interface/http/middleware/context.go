package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/xiebiao/catalog/pkg/jwt"
)

// gin.Context中的key
const (
	ctxUserID    = "user_id"
	ctxEmail     = "email"
	ctxName      = "name"
	ctxToken     = "token"
	ctxClaims    = "claims"
	ctxRequestID = "request_id"
)

// GetUserID 当前登录用户ID，未登录为0
func GetUserID(c *gin.Context) uint {
	return c.GetUint(ctxUserID)
}

// GetEmail 当前登录用户邮箱，未登录为空
func GetEmail(c *gin.Context) string {
	return c.GetString(ctxEmail)
}

// GetToken 当前请求携带的Bearer Token
func GetToken(c *gin.Context) string {
	return c.GetString(ctxToken)
}

// GetClaims 当前Token的Claims
func GetClaims(c *gin.Context) *jwt.Claims {
	if v, ok := c.Get(ctxClaims); ok {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetRequestID 请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(ctxRequestID)
}
