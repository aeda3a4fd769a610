package book

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/catalog/internal/application"
	"github.com/xiebiao/catalog/internal/domain/book"
	"github.com/xiebiao/catalog/pkg/metrics"
)

// CreateInput 创建图书参数
type CreateInput struct {
	Title       string
	Description string
	Price       decimal.Decimal
	IsAvailable bool
	AuthorID    uint
	EditorialID uint
	GenreID     uint
}

// UseCase 图书用例
type UseCase struct {
	tx  application.Transactor
	svc book.Service
}

// NewUseCase 创建图书用例
func NewUseCase(tx application.Transactor, svc book.Service) *UseCase {
	return &UseCase{tx: tx, svc: svc}
}

// Create 创建图书，返回带关联的完整图书
func (uc *UseCase) Create(ctx context.Context, in CreateInput) (*BookDTO, error) {
	b := book.NewBook(in.Title, in.Description, in.Price, in.IsAvailable, in.AuthorID, in.EditorialID, in.GenreID)

	var created *book.Book
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		created, err = uc.svc.Create(ctx, b)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("book", "create")
	return ToBookDTO(created), nil
}

// List 所有有效图书，按标题排序
func (uc *UseCase) List(ctx context.Context) ([]*BookDTO, error) {
	books, err := uc.svc.List(ctx)
	if err != nil {
		return nil, err
	}
	return toBookDTOs(books), nil
}

// Get 单本图书
func (uc *UseCase) Get(ctx context.Context, id uint) (*BookDTO, error) {
	b, err := uc.svc.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToBookDTO(b), nil
}

// Update 部分更新
func (uc *UseCase) Update(ctx context.Context, id uint, patch book.Patch) (*BookDTO, error) {
	var updated *book.Book
	err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		var err error
		updated, err = uc.svc.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordWrite("book", "update")
	return ToBookDTO(updated), nil
}

// Delete 软删除，返回提示信息
func (uc *UseCase) Delete(ctx context.Context, id uint) (string, error) {
	if err := uc.tx.Transaction(ctx, func(ctx context.Context) error {
		return uc.svc.Delete(ctx, id)
	}); err != nil {
		return "", err
	}

	metrics.RecordWrite("book", "delete")
	return book.DeletedMessage(id), nil
}
