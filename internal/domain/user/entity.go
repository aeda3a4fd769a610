package user

import (
	"strings"
	"time"
)

// User 用户实体（聚合根）
// Password为bcrypt哈希值，任何响应都不应包含该字段
type User struct {
	ID        uint
	Name      string
	Email     string
	Password  string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewUser 创建新用户（工厂方法）
// hashedPassword必须是bcrypt加密后的密码
func NewUser(name, email, hashedPassword string) *User {
	now := time.Now()
	return &User{
		Name:      strings.TrimSpace(name),
		Email:     NormalizeEmail(email),
		Password:  hashedPassword,
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// NormalizeEmail 邮箱统一去空白、转小写
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
