package auth

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/xiebiao/catalog/internal/application"
	"github.com/xiebiao/catalog/internal/domain/user"
	apperrors "github.com/xiebiao/catalog/pkg/errors"
	"github.com/xiebiao/catalog/pkg/jwt"
	"github.com/xiebiao/catalog/pkg/logger"
	"github.com/xiebiao/catalog/pkg/metrics"
)

// UserDTO 用户信息（不含密码）
type UserDTO struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Ana"`
	Email     string    `json:"email" example:"ana@example.com"`
	IsActive  bool      `json:"isActive" example:"true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToUserDTO 实体转换为DTO
func ToUserDTO(u *user.User) *UserDTO {
	return &UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// Result 注册、登录、校验的统一响应
type Result struct {
	User      *UserDTO  `json:"user"`
	Token     string    `json:"token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	ExpiresAt time.Time `json:"expiresAt"`
}

// UseCase 认证用例：注册、登录、Token校验续期、登出
type UseCase struct {
	tx       application.Transactor
	users    user.Service
	tokens   *jwt.Manager
	sessions user.SessionStore
}

// NewUseCase 创建认证用例
func NewUseCase(tx application.Transactor, users user.Service, tokens *jwt.Manager, sessions user.SessionStore) *UseCase {
	return &UseCase{tx: tx, users: users, tokens: tokens, sessions: sessions}
}

// Register 注册并直接签发Token
func (uc *UseCase) Register(ctx context.Context, name, email, password string) (res *Result, err error) {
	defer func() { metrics.RecordAuth("register", err) }()

	var u *user.User
	err = uc.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		u, err = uc.users.Register(ctx, name, email, password)
		return err
	})
	if err != nil {
		return nil, err
	}
	return uc.issue(u)
}

// Login 邮箱密码登录，成功后记录会话
// 会话写入失败不影响登录
func (uc *UseCase) Login(ctx context.Context, email, password, clientIP string) (res *Result, err error) {
	defer func() { metrics.RecordAuth("login", err) }()

	u, err := uc.users.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}

	res, err = uc.issue(u)
	if err != nil {
		return nil, err
	}

	session := map[string]interface{}{
		"email":    u.Email,
		"name":     u.Name,
		"login_at": time.Now().Unix(),
		"ip":       clientIP,
	}
	if serr := uc.sessions.SaveSession(ctx, u.ID, session, uc.tokens.Expire()); serr != nil {
		logger.FromContext(ctx).Warn("save session failed", zap.Uint("user_id", u.ID), zap.Error(serr))
	}
	return res, nil
}

// Verify 校验Token并用相同的id/name/email重新签发
// 用户已被停用时Token视为无效
func (uc *UseCase) Verify(ctx context.Context, token string) (res *Result, err error) {
	defer func() { metrics.RecordAuth("verify", err) }()

	claims, fresh, err := uc.tokens.Refresh(token)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	u, err := uc.users.Get(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidToken
		}
		return nil, err
	}

	// 响应中的用户信息与Token保持一致，使用Claims中的name/email
	dto := ToUserDTO(u)
	dto.Name = claims.Name
	dto.Email = claims.Email
	return &Result{User: dto, Token: fresh.Value, ExpiresAt: fresh.ExpiresAt}, nil
}

// Logout 吊销当前Token直到其过期并删除会话
func (uc *UseCase) Logout(ctx context.Context, token string, claims *jwt.Claims) (err error) {
	defer func() { metrics.RecordAuth("logout", err) }()

	if claims == nil {
		return apperrors.ErrUnauthorized
	}
	if err := uc.sessions.AddToBlacklist(ctx, token, uc.tokens.Remaining(claims)); err != nil {
		return err
	}
	return uc.sessions.DeleteSession(ctx, claims.UserID)
}

func (uc *UseCase) issue(u *user.User) (*Result, error) {
	token, err := uc.tokens.GenerateToken(u.ID, u.Name, u.Email)
	if err != nil {
		return nil, err
	}
	return &Result{User: ToUserDTO(u), Token: token.Value, ExpiresAt: token.ExpiresAt}, nil
}
