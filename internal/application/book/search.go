package book

import (
	"context"

	"github.com/xiebiao/catalog/internal/domain/book"
)

// SearchInput 搜索参数（已完成类型转换，未补默认值）
type SearchInput struct {
	Title       string
	AuthorID    uint
	EditorialID uint
	GenreID     uint
	IsAvailable *bool
	OrderBy     []string
	Page        int
	PageSize    int
}

// SearchResult 搜索结果及实际生效的分页参数
type SearchResult struct {
	Books    []*BookDTO
	Total    int64
	Page     int
	PageSize int
}

// Search 条件搜索 + 排序 + 分页
// orderBy中未知的关联别名或字段返回400
func (uc *UseCase) Search(ctx context.Context, in SearchInput) (*SearchResult, error) {
	keys, err := book.ParseSort(in.OrderBy)
	if err != nil {
		return nil, err
	}

	params := book.SearchParams{
		Title:       in.Title,
		AuthorID:    in.AuthorID,
		EditorialID: in.EditorialID,
		GenreID:     in.GenreID,
		IsAvailable: in.IsAvailable,
		Sort:        keys,
		Page:        in.Page,
		PageSize:    in.PageSize,
	}
	params.Normalize()

	books, total, err := uc.svc.Search(ctx, params)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Books:    toBookDTOs(books),
		Total:    total,
		Page:     params.Page,
		PageSize: params.PageSize,
	}, nil
}
