package user

import (
	apperrors "github.com/xiebiao/catalog/pkg/errors"
)

// 用户领域错误定义
var (
	// ErrUserNotFound 用户不存在或已停用
	ErrUserNotFound = apperrors.New(apperrors.ErrCodeNotFound, "User not found")

	// ErrEmailExists 注册时邮箱已存在
	ErrEmailExists = apperrors.New(apperrors.ErrCodeEmailDuplicate, "Email already exists")

	// ErrInvalidCredentials 邮箱或密码错误（不区分两种情况）
	ErrInvalidCredentials = apperrors.New(apperrors.ErrCodeInvalidCredentials, "User/Password not valid")

	// ErrPasswordRequired 密码为空
	ErrPasswordRequired = apperrors.New(apperrors.ErrCodeInvalidParams, "password is required")

	// ErrPasswordTooLong bcrypt最多支持72字节
	ErrPasswordTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "password must be at most 72 bytes")
)
