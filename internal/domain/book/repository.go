package book

import (
	"context"

	"github.com/xiebiao/catalog/internal/domain/catalog"
)

// Repository 图书仓储接口
// 所有读操作只返回有效记录（is_active=true），并带出作者、出版社、类型的{id,name}
type Repository interface {
	// Create 创建图书；外键约束失败返回ErrInvalidReference
	Create(ctx context.Context, book *Book) error

	// FindByID 根据ID查找有效图书；不存在返回ErrBookNotFound
	FindByID(ctx context.Context, id uint) (*Book, error)

	// Update 保存修改；记录已失效返回ErrBookNotFound
	Update(ctx context.Context, book *Book) error

	// Deactivate 软删除；不存在或已删除返回ErrBookNotExist
	Deactivate(ctx context.Context, id uint) error

	// List 所有有效图书，按标题排序
	List(ctx context.Context) ([]*Book, error)

	// Search 条件查询 + 分页，返回当前页和总数
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)
}

const (
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
)

// SearchParams 搜索参数，所有条件取交集
type SearchParams struct {
	Title       string // 标题子串，不区分大小写
	AuthorID    uint
	EditorialID uint
	GenreID     uint
	IsAvailable *bool
	Sort        []SortKey
	Page        int // 从1开始
	PageSize    int
}

// Normalize 补齐分页默认值并限制每页上限
func (p *SearchParams) Normalize() {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	if len(p.Sort) == 0 {
		p.Sort = []SortKey{DefaultSort}
	}
}

// Offset 分页偏移量
func (p SearchParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ReferenceChecker 校验外键引用的资源是否存在且有效
type ReferenceChecker interface {
	ActiveExists(ctx context.Context, kind catalog.Kind, id uint) (bool, error)
}
