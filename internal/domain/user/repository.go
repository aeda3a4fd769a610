package user

import (
	"context"
	"time"
)

// Repository 用户仓储接口
type Repository interface {
	// Create 创建用户；邮箱唯一索引冲突返回ErrEmailExists
	Create(ctx context.Context, user *User) error

	// FindByID 查找有效用户；不存在返回ErrUserNotFound
	FindByID(ctx context.Context, id uint) (*User, error)

	// FindByEmail 查找有效用户；不存在返回ErrUserNotFound
	FindByEmail(ctx context.Context, email string) (*User, error)

	// EmailExists 邮箱是否被任何用户（包括已停用的）占用
	EmailExists(ctx context.Context, email string) (bool, error)

	// Count 用户总数
	Count(ctx context.Context) (int64, error)
}

// SessionStore 会话存储（登录会话和Token黑名单）
type SessionStore interface {
	SaveSession(ctx context.Context, userID uint, data map[string]interface{}, ttl time.Duration) error
	DeleteSession(ctx context.Context, userID uint) error
	AddToBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsInBlacklist(ctx context.Context, token string) (bool, error)
}

// NopSessionStore 未启用Redis时使用：不记录会话，黑名单始终为空
type NopSessionStore struct{}

func (NopSessionStore) SaveSession(context.Context, uint, map[string]interface{}, time.Duration) error {
	return nil
}

func (NopSessionStore) DeleteSession(context.Context, uint) error { return nil }

func (NopSessionStore) AddToBlacklist(context.Context, string, time.Duration) error { return nil }

func (NopSessionStore) IsInBlacklist(context.Context, string) (bool, error) { return false, nil }
