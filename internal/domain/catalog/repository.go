package catalog

import (
	"context"
)

// Repository 目录资源仓储接口
// 每种Kind一个实例；实现负责把存储错误转换为本包的领域错误
type Repository interface {
	Kind() Kind

	// Create 创建记录；名称唯一索引冲突返回ErrAlreadyExists
	Create(ctx context.Context, item *Item) error

	// FindByID 查找有效记录；不存在或已删除返回ErrNotFound
	FindByID(ctx context.Context, id uint) (*Item, error)

	// NameTaken 名称是否被id以外的任何记录占用（包括已删除的）
	NameTaken(ctx context.Context, name string, excludeID uint) (bool, error)

	// List 所有有效记录，按id排序
	List(ctx context.Context) ([]*Item, error)

	// Update 保存名称修改；唯一索引冲突返回ErrNameTaken，记录已失效返回ErrNotFound
	Update(ctx context.Context, item *Item) error

	// Deactivate 软删除；不存在或已删除返回ErrNotExist
	Deactivate(ctx context.Context, id uint) error
}
