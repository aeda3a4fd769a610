package catalog

import (
	"context"
	"time"

	"github.com/xiebiao/catalog/internal/application"
	"github.com/xiebiao/catalog/internal/domain/catalog"
	"github.com/xiebiao/catalog/pkg/metrics"
)

// ItemDTO 作者/出版社/类型的响应结构
type ItemDTO struct {
	ID        uint      `json:"id" example:"1"`
	Name      string    `json:"name" example:"Gabriel García Márquez"`
	IsActive  bool      `json:"isActive" example:"true"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ToItemDTO 实体转换为DTO
func ToItemDTO(item *catalog.Item) *ItemDTO {
	return &ItemDTO{
		ID:        item.ID,
		Name:      item.Name,
		IsActive:  item.IsActive,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

// UseCase 目录资源用例，三种资源共用，按Kind分派到对应的领域服务
// 写操作在事务中执行
type UseCase struct {
	tx       application.Transactor
	services map[catalog.Kind]catalog.Service
}

// NewUseCase 创建目录资源用例
func NewUseCase(tx application.Transactor, services ...catalog.Service) *UseCase {
	m := make(map[catalog.Kind]catalog.Service, len(services))
	for _, s := range services {
		m[s.Kind()] = s
	}
	return &UseCase{tx: tx, services: m}
}

func (uc *UseCase) service(kind catalog.Kind) (catalog.Service, error) {
	s, ok := uc.services[kind]
	if !ok {
		return nil, catalog.ErrUnknownKind(kind)
	}
	return s, nil
}

// Create 创建资源
func (uc *UseCase) Create(ctx context.Context, kind catalog.Kind, name string) (*ItemDTO, error) {
	s, err := uc.service(kind)
	if err != nil {
		return nil, err
	}

	var item *catalog.Item
	err = uc.tx.Transaction(ctx, func(ctx context.Context) error {
		item, err = s.Create(ctx, name)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite(kind.String(), "create")
	return ToItemDTO(item), nil
}

// List 有效记录列表
func (uc *UseCase) List(ctx context.Context, kind catalog.Kind) ([]*ItemDTO, error) {
	s, err := uc.service(kind)
	if err != nil {
		return nil, err
	}

	items, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	list := make([]*ItemDTO, 0, len(items))
	for _, item := range items {
		list = append(list, ToItemDTO(item))
	}
	return list, nil
}

// Get 单条记录
func (uc *UseCase) Get(ctx context.Context, kind catalog.Kind, id uint) (*ItemDTO, error) {
	s, err := uc.service(kind)
	if err != nil {
		return nil, err
	}

	item, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToItemDTO(item), nil
}

// Rename 修改名称
func (uc *UseCase) Rename(ctx context.Context, kind catalog.Kind, id uint, name string) (*ItemDTO, error) {
	s, err := uc.service(kind)
	if err != nil {
		return nil, err
	}

	var item *catalog.Item
	err = uc.tx.Transaction(ctx, func(ctx context.Context) error {
		item, err = s.Rename(ctx, id, name)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite(kind.String(), "update")
	return ToItemDTO(item), nil
}

// Delete 软删除，返回提示信息
func (uc *UseCase) Delete(ctx context.Context, kind catalog.Kind, id uint) (string, error) {
	s, err := uc.service(kind)
	if err != nil {
		return "", err
	}

	if err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return s.Delete(ctx, id)
	}); err != nil {
		return "", err
	}

	metrics.RecordWrite(kind.String(), "delete")
	return catalog.DeletedMessage(kind, id), nil
}
