package user

import (
	"context"
	"errors"

	"golang.org/x/crypto/bcrypt"

	apperrors "github.com/xiebiao/catalog/pkg/errors"
)

// PasswordCost bcrypt成本因子
const PasswordCost = 10

// Service 用户领域服务
type Service interface {
	// Register 用户注册
	// 业务规则：邮箱在所有用户中唯一；密码bcrypt加密
	Register(ctx context.Context, name, email, password string) (*User, error)

	// Login 用户登录；邮箱不存在或密码错误统一返回ErrInvalidCredentials
	Login(ctx context.Context, email, password string) (*User, error)

	// Get 获取有效用户
	Get(ctx context.Context, id uint) (*User, error)
}

type service struct {
	repo Repository
}

// NewService 创建用户服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Register(ctx context.Context, name, email, password string) (*User, error) {
	if password == "" {
		return nil, ErrPasswordRequired
	}

	email = NormalizeEmail(email)
	exists, err := s.repo.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hashed, err := HashPassword(password)
	if err != nil {
		return nil, err
	}

	u := NewUser(name, email, hashed)
	if err := s.repo.Create(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Login(ctx context.Context, email, password string) (*User, error) {
	u, err := s.repo.FindByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := ComparePassword(u.Password, password); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *service) Get(ctx context.Context, id uint) (*User, error) {
	return s.repo.FindByID(ctx, id)
}

// HashPassword bcrypt加密
func HashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), PasswordCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", apperrors.Wrap(err, "密码加密失败")
	}
	return string(hashed), nil
}

// ComparePassword 校验明文密码与哈希值
func ComparePassword(hashed, plain string) error {
	err := bcrypt.CompareHashAndPassword([]byte(hashed), []byte(plain))
	if err == nil {
		return nil
	}
	if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) || errors.Is(err, bcrypt.ErrHashTooShort) {
		return ErrInvalidCredentials
	}
	return apperrors.Wrap(err, "密码验证失败")
}
