package catalog

import (
	"context"
	"errors"
)

// Service 目录资源领域服务
type Service interface {
	Kind() Kind

	// Create 创建资源
	// 业务规则：名称在所有记录（包括已删除的）中唯一
	Create(ctx context.Context, name string) (*Item, error)

	// Get 获取有效记录
	Get(ctx context.Context, id uint) (*Item, error)

	// List 所有有效记录
	List(ctx context.Context) ([]*Item, error)

	// Rename 修改名称
	// 业务规则：新名称不能被其他记录占用；改为自身当前名称视为成功
	Rename(ctx context.Context, id uint, name string) (*Item, error)

	// Delete 软删除
	Delete(ctx context.Context, id uint) error
}

type service struct {
	repo Repository
}

// NewService 创建目录资源服务
func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Kind() Kind {
	return s.repo.Kind()
}

func (s *service) Create(ctx context.Context, name string) (*Item, error) {
	item := NewItem(s.Kind(), name)

	taken, err := s.repo.NameTaken(ctx, item.Name, 0)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrAlreadyExists(s.Kind())
	}

	// 检查与插入之间的并发冲突由唯一索引兜底，仓储返回同样的错误
	if err := s.repo.Create(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Get(ctx context.Context, id uint) (*Item, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *service) List(ctx context.Context) ([]*Item, error) {
	return s.repo.List(ctx)
}

func (s *service) Rename(ctx context.Context, id uint, name string) (*Item, error) {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name = NormalizeName(name)
	if name == item.Name {
		return item, nil
	}

	taken, err := s.repo.NameTaken(ctx, name, id)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrNameTaken(s.Kind())
	}

	item.Rename(name)
	if err := s.repo.Update(ctx, item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *service) Delete(ctx context.Context, id uint) error {
	return s.repo.Deactivate(ctx, id)
}

// Registry 按Kind索引的仓储集合
// 图书服务通过它校验外键引用
type Registry struct {
	repos map[Kind]Repository
}

// NewRegistry 创建仓储集合
func NewRegistry(repos ...Repository) *Registry {
	r := &Registry{repos: make(map[Kind]Repository, len(repos))}
	for _, repo := range repos {
		r.repos[repo.Kind()] = repo
	}
	return r
}

// Repository 获取指定类型的仓储
func (r *Registry) Repository(kind Kind) (Repository, error) {
	repo, ok := r.repos[kind]
	if !ok {
		return nil, ErrUnknownKind(kind)
	}
	return repo, nil
}

// ActiveExists id对应的记录是否存在且有效
func (r *Registry) ActiveExists(ctx context.Context, kind Kind, id uint) (bool, error) {
	repo, err := r.Repository(kind)
	if err != nil {
		return false, err
	}

	if _, err := repo.FindByID(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound(kind)) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
