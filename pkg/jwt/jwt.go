package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/catalog/pkg/errors"
)

// Manager JWT管理器
// 设计说明：
// 1. 单Token机制，有效期默认2小时
// 2. /auth/verify 用旧Token的Claims重新签发（续期）
// 3. 主动失效依赖会话存储中的黑名单
type Manager struct {
	secret string
	expire time.Duration
	issuer string
	now    func() time.Time
}

// NewManager 创建JWT管理器
func NewManager(secret string, expire time.Duration, issuer string) *Manager {
	if expire <= 0 {
		expire = 2 * time.Hour
	}
	return &Manager{
		secret: secret,
		expire: expire,
		issuer: issuer,
		now:    time.Now,
	}
}

// Claims 自定义JWT Claims：用户id/name/email + 标准字段
type Claims struct {
	UserID uint   `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// Token 签发结果
type Token struct {
	Value     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Expire Token有效期
func (m *Manager) Expire() time.Duration {
	return m.expire
}

// GenerateToken 签发Token
func (m *Manager) GenerateToken(userID uint, name, email string) (*Token, error) {
	now := m.now()
	expiresAt := now.Add(m.expire)

	claims := Claims{
		UserID: userID,
		Name:   name,
		Email:  email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(m.secret))
	if err != nil {
		return nil, apperrors.Wrap(err, "Failed to sign token")
	}

	return &Token{Value: signed, ExpiresAt: expiresAt.Truncate(time.Second)}, nil
}

// ParseToken 解析并验证Token（签名算法、签名、exp、nbf）
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithTimeFunc(m.now))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// Refresh 校验旧Token并用相同的用户Claims重新签发
func (m *Manager) Refresh(tokenString string) (*Claims, *Token, error) {
	claims, err := m.ParseToken(tokenString)
	if err != nil {
		return nil, nil, err
	}

	token, err := m.GenerateToken(claims.UserID, claims.Name, claims.Email)
	if err != nil {
		return nil, nil, err
	}
	return claims, token, nil
}

// Remaining Token剩余有效期，用于黑名单TTL
func (m *Manager) Remaining(claims *Claims) time.Duration {
	if claims == nil || claims.ExpiresAt == nil {
		return 0
	}
	d := claims.ExpiresAt.Time.Sub(m.now())
	if d < 0 {
		return 0
	}
	return d
}
