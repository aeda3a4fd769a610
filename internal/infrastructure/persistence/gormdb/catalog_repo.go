package gormdb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/xiebiao/catalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/catalog/pkg/errors"
)

// catalogRepository 目录资源仓储实现
// 三种资源表结构相同，按Kind选择表名，统一使用NamedModel读写
type catalogRepository struct {
	db    *gorm.DB
	kind  catalog.Kind
	table string
}

// NewCatalogRepository 创建指定类型的目录资源仓储
func NewCatalogRepository(db *gorm.DB, kind catalog.Kind) (catalog.Repository, error) {
	table, ok := catalogTables[kind]
	if !ok {
		return nil, catalog.ErrUnknownKind(kind)
	}
	return &catalogRepository{db: db, kind: kind, table: table}, nil
}

// NewCatalogRepositories 创建全部类型的仓储
func NewCatalogRepositories(db *gorm.DB) ([]catalog.Repository, error) {
	repos := make([]catalog.Repository, 0, len(catalogTables))
	for _, kind := range catalog.Kinds() {
		repo, err := NewCatalogRepository(db, kind)
		if err != nil {
			return nil, err
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

func (r *catalogRepository) Kind() catalog.Kind {
	return r.kind
}

func (r *catalogRepository) query(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).Table(r.table)
}

// Create 创建记录
func (r *catalogRepository) Create(ctx context.Context, item *catalog.Item) error {
	model := &NamedModel{
		Name:      item.Name,
		IsActive:  true,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}

	if err := r.query(ctx).Create(model).Error; err != nil {
		if isDuplicateError(err) {
			return catalog.ErrAlreadyExists(r.kind)
		}
		return apperrors.Wrapf(err, "创建%s失败", r.kind)
	}

	item.ID = model.ID
	item.IsActive = model.IsActive
	item.CreatedAt = model.CreatedAt
	item.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找有效记录
func (r *catalogRepository) FindByID(ctx context.Context, id uint) (*catalog.Item, error) {
	var model NamedModel
	err := r.query(ctx).Where("id = ? AND is_active = ?", id, true).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, catalog.ErrNotFound(r.kind)
		}
		return nil, apperrors.Wrapf(err, "查询%s失败", r.kind)
	}
	return r.toEntity(&model), nil
}

// NameTaken 名称是否被其他记录占用（不区分是否有效）
func (r *catalogRepository) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	var count int64
	q := r.query(ctx).Where("name = ?", name)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, apperrors.Wrapf(err, "查询%s名称失败", r.kind)
	}
	return count > 0, nil
}

// List 所有有效记录
func (r *catalogRepository) List(ctx context.Context) ([]*catalog.Item, error) {
	var models []NamedModel
	if err := r.query(ctx).Where("is_active = ?", true).Order("id").Find(&models).Error; err != nil {
		return nil, apperrors.Wrapf(err, "查询%s列表失败", r.kind)
	}

	items := make([]*catalog.Item, len(models))
	for i := range models {
		items[i] = r.toEntity(&models[i])
	}
	return items, nil
}

// Update 保存名称
func (r *catalogRepository) Update(ctx context.Context, item *catalog.Item) error {
	result := r.query(ctx).
		Where("id = ? AND is_active = ?", item.ID, true).
		Updates(map[string]interface{}{
			"name":       item.Name,
			"updated_at": item.UpdatedAt,
		})

	if result.Error != nil {
		if isDuplicateError(result.Error) {
			return catalog.ErrNameTaken(r.kind)
		}
		return apperrors.Wrapf(result.Error, "更新%s失败", r.kind)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrNotFound(r.kind)
	}
	return nil
}

// Deactivate 软删除
func (r *catalogRepository) Deactivate(ctx context.Context, id uint) error {
	result := r.query(ctx).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return apperrors.Wrapf(result.Error, "删除%s失败", r.kind)
	}
	if result.RowsAffected == 0 {
		return catalog.ErrNotExist(r.kind)
	}
	return nil
}

func (r *catalogRepository) toEntity(model *NamedModel) *catalog.Item {
	return &catalog.Item{
		ID:        model.ID,
		Kind:      r.kind,
		Name:      model.Name,
		IsActive:  model.IsActive,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// Counter 各表记录数（用于初始化数据）
type Counter struct {
	db *gorm.DB
}

// NewCounter 创建计数器
func NewCounter(db *gorm.DB) *Counter {
	return &Counter{db: db}
}

// Count 统计表中全部记录（包括已软删除的）
func (c *Counter) Count(ctx context.Context, table string) (int64, error) {
	switch table {
	case "authors", "editorials", "genres", "books", "users":
	default:
		return 0, fmt.Errorf("unknown table %q", table)
	}

	var count int64
	if err := conn(ctx, c.db).Table(table).Count(&count).Error; err != nil {
		return 0, apperrors.Wrapf(err, "统计%s失败", table)
	}
	return count, nil
}
