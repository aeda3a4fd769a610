package book

import (
	"context"

	"github.com/xiebiao/catalog/internal/domain/catalog"
)

// Service 图书领域服务
type Service interface {
	// Create 创建图书
	// 业务规则：标题非空、价格大于0、作者/出版社/类型必须存在且有效
	Create(ctx context.Context, book *Book) (*Book, error)

	// Get 获取有效图书（含关联）
	Get(ctx context.Context, id uint) (*Book, error)

	// List 所有有效图书
	List(ctx context.Context) ([]*Book, error)

	// Update 部分更新，只修改patch中出现的字段
	Update(ctx context.Context, id uint, patch Patch) (*Book, error)

	// Delete 软删除
	Delete(ctx context.Context, id uint) error

	// Search 条件搜索 + 分页
	Search(ctx context.Context, params SearchParams) ([]*Book, int64, error)
}

type service struct {
	repo Repository
	refs ReferenceChecker
}

// NewService 创建图书服务
func NewService(repo Repository, refs ReferenceChecker) Service {
	return &service{repo: repo, refs: refs}
}

func (s *service) Create(ctx context.Context, b *Book) (*Book, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, b.References()); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// 重新读取以带出关联名称
	return s.repo.FindByID(ctx, b.ID)
}

func (s *service) Get(ctx context.Context, id uint) (*Book, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Book, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id uint, patch Patch) (*Book, error) {
	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := b.Apply(patch); err != nil {
		return nil, err
	}
	if err := s.checkReferences(ctx, patch.References()); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, b); err != nil {
		return nil, err
	}
	return s.repo.FindByID(ctx, id)
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Deactivate(ctx, id)
}

func (s *service) Search(ctx context.Context, params SearchParams) ([]*Book, int64, error) {
	params.Normalize()
	return s.repo.Search(ctx, params)
}

// checkReferences 按固定顺序校验外键，第一个无效引用即返回
func (s *service) checkReferences(ctx context.Context, refs map[catalog.Kind]uint) error {
	for _, kind := range catalog.Kinds() {
		id, ok := refs[kind]
		if !ok {
			continue
		}
		exists, err := s.refs.ActiveExists(ctx, kind, id)
		if err != nil {
			return err
		}
		if !exists {
			return ErrUnknownReference(kind)
		}
	}
	return nil
}
