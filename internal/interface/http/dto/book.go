package dto

import (
	"github.com/shopspring/decimal"

	"github.com/xiebiao/catalog/internal/domain/book"
)

// CreateBookRequest 创建图书
// price可以是数字或字符串（"19.90"）
type CreateBookRequest struct {
	Title       string          `json:"title" binding:"notblank,max=255" example:"Rayuela"`
	Description string          `json:"description" binding:"max=10000" example:"Una novela que se puede leer en varios órdenes."`
	Price       decimal.Decimal `json:"price" swaggertype:"number" binding:"required,gt=0" example:"18.40"`
	IsAvailable *bool           `json:"isAvailable" binding:"required" example:"true"`
	AuthorID    uint            `json:"authorId" binding:"required,gt=0" example:"1"`
	EditorialID uint            `json:"editorialId" binding:"required,gt=0" example:"1"`
	GenreID     uint            `json:"genreId" binding:"required,gt=0" example:"1"`
}

// UpdateBookRequest 部分更新图书，未出现的字段保持不变
type UpdateBookRequest struct {
	Title       *string          `json:"title" binding:"omitempty,notblank,max=255" example:"Rayuela"`
	Description *string          `json:"description" binding:"omitempty,max=10000"`
	Price       *decimal.Decimal `json:"price" swaggertype:"number" binding:"omitempty,gt=0" example:"20.00"`
	IsAvailable *bool            `json:"isAvailable" example:"false"`
	AuthorID    *uint            `json:"authorId" binding:"omitempty,gt=0" example:"2"`
	EditorialID *uint            `json:"editorialId" binding:"omitempty,gt=0"`
	GenreID     *uint            `json:"genreId" binding:"omitempty,gt=0"`
}

// Patch 转换为领域层的部分更新
func (r *UpdateBookRequest) Patch() book.Patch {
	return book.Patch{
		Title:       r.Title,
		Description: r.Description,
		Price:       r.Price,
		IsAvailable: r.IsAvailable,
		AuthorID:    r.AuthorID,
		EditorialID: r.EditorialID,
		GenreID:     r.GenreID,
	}
}

// SearchBooksQuery 图书搜索参数
// orderBy可重复，每个值为 "field,direction"，也可以平铺多组
type SearchBooksQuery struct {
	Title       string   `form:"title" example:"soledad"`
	AuthorID    uint     `form:"authorId" binding:"omitempty,gt=0"`
	EditorialID uint     `form:"editorialId" binding:"omitempty,gt=0"`
	GenreID     uint     `form:"genreId" binding:"omitempty,gt=0"`
	IsAvailable *string  `form:"isAvailable" example:"true"`
	OrderBy     []string `form:"orderBy" example:"author.name,ASC"`
	Page        *int     `form:"page" binding:"omitempty,min=1" example:"1"`
	PageSize    *int     `form:"pageSize" binding:"omitempty,min=1" example:"10"`
}

// Pagination 未传的分页参数返回0，由领域层填充默认值
func (q *SearchBooksQuery) Pagination() (page, pageSize int) {
	if q.Page != nil {
		page = *q.Page
	}
	if q.PageSize != nil {
		pageSize = *q.PageSize
	}
	return page, pageSize
}

// Available "true"为true，其他任何值为false，未传时不过滤
func (q *SearchBooksQuery) Available() *bool {
	if q.IsAvailable == nil {
		return nil
	}
	v := *q.IsAvailable == "true"
	return &v
}
