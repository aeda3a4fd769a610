package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/xiebiao/catalog/internal/domain/user"
	apperrors "github.com/xiebiao/catalog/pkg/errors"
	"github.com/xiebiao/catalog/pkg/jwt"
	"github.com/xiebiao/catalog/pkg/logger"
	"github.com/xiebiao/catalog/pkg/response"
)

// AuthMiddleware JWT认证中间件
// 从Authorization头提取Bearer Token，检查黑名单后验证签名和有效期，
// 通过后把用户信息写入gin.Context
type AuthMiddleware struct {
	tokens   *jwt.Manager
	sessions user.SessionStore
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(tokens *jwt.Manager, sessions user.SessionStore) *AuthMiddleware {
	return &AuthMiddleware{tokens: tokens, sessions: sessions}
}

// RequireAuth 要求登录，任何失败都返回401
//
//	authorized := api.Group("")
//	authorized.Use(auth.RequireAuth())
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := bearerToken(c.GetHeader("Authorization"))
		if !ok {
			response.Error(c, apperrors.ErrUnauthorized)
			return
		}

		revoked, err := m.sessions.IsInBlacklist(c.Request.Context(), token)
		if err != nil {
			// 黑名单不可用时只依赖签名校验
			logger.FromContext(c.Request.Context()).Warn("token blacklist check failed", zap.Error(err))
		}
		if revoked {
			response.Error(c, apperrors.ErrTokenRevoked)
			return
		}

		claims, err := m.tokens.ParseToken(token)
		if err != nil {
			response.Error(c, apperrors.ErrInvalidToken)
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxName, claims.Name)
		c.Set(ctxToken, token)
		c.Set(ctxClaims, claims)
		c.Next()
	}
}

// bearerToken 解析 "Bearer <token>"，scheme不区分大小写
func bearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}
