package gormdb

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/xiebiao/catalog/internal/domain/user"
	apperrors "github.com/xiebiao/catalog/pkg/errors"
)

// userRepository 用户仓储实现
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户仓储
func NewUserRepository(db *gorm.DB) user.Repository {
	return &userRepository{db: db}
}

// Create 创建用户
// 邮箱唯一性最终由UNIQUE索引保证，并发注册时转换为ErrEmailExists
func (r *userRepository) Create(ctx context.Context, u *user.User) error {
	model := &UserModel{
		Name:     u.Name,
		Email:    u.Email,
		Password: u.Password,
		IsActive: true,
	}

	if err := conn(ctx, r.db).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return user.ErrEmailExists
		}
		return apperrors.Wrap(err, "创建用户失败")
	}

	u.ID = model.ID
	u.IsActive = model.IsActive
	u.CreatedAt = model.CreatedAt
	u.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找有效用户
func (r *userRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	return r.findOne(ctx, "id = ? AND is_active = ?", id, true)
}

// FindByEmail 根据邮箱查找有效用户
func (r *userRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.findOne(ctx, "email = ? AND is_active = ?", email, true)
}

func (r *userRepository) findOne(ctx context.Context, query string, args ...interface{}) (*user.User, error) {
	var model UserModel
	if err := conn(ctx, r.db).Where(query, args...).Take(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, user.ErrUserNotFound
		}
		return nil, apperrors.Wrap(err, "查询用户失败")
	}
	return toUserEntity(&model), nil
}

// EmailExists 邮箱是否已被占用（包括已停用的用户）
func (r *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&UserModel{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, apperrors.Wrap(err, "查询用户失败")
	}
	return count > 0, nil
}

// Count 用户总数
func (r *userRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := conn(ctx, r.db).Model(&UserModel{}).Count(&count).Error; err != nil {
		return 0, apperrors.Wrap(err, "统计用户失败")
	}
	return count, nil
}

func toUserEntity(model *UserModel) *user.User {
	return &user.User{
		ID:        model.ID,
		Name:      model.Name,
		Email:     model.Email,
		Password:  model.Password,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}
