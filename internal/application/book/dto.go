package book

import (
	"time"

	"github.com/xiebiao/catalog/internal/domain/book"
)

// RefDTO 关联资源投影
type RefDTO struct {
	ID   uint   `json:"id" example:"1"`
	Name string `json:"name" example:"Jorge Luis Borges"`
}

// BookDTO 图书响应结构
// 价格固定两位小数，与DECIMAL(10,2)的输出一致
type BookDTO struct {
	ID          uint      `json:"id" example:"1"`
	Title       string    `json:"title" example:"Ficciones"`
	Description string    `json:"description" example:"Colección de cuentos"`
	Price       string    `json:"price" example:"12.50"`
	IsAvailable bool      `json:"isAvailable" example:"true"`
	IsActive    bool      `json:"isActive" example:"true"`
	AuthorID    uint      `json:"authorId" example:"1"`
	EditorialID uint      `json:"editorialId" example:"1"`
	GenreID     uint      `json:"genreId" example:"1"`
	Author      *RefDTO   `json:"author,omitempty"`
	Editorial   *RefDTO   `json:"editorial,omitempty"`
	Genre       *RefDTO   `json:"genre,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func toRefDTO(r *book.Ref) *RefDTO {
	if r == nil {
		return nil
	}
	return &RefDTO{ID: r.ID, Name: r.Name}
}

// ToBookDTO 实体转换为DTO
func ToBookDTO(b *book.Book) *BookDTO {
	return &BookDTO{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price.StringFixed(2),
		IsAvailable: b.IsAvailable,
		IsActive:    b.IsActive,
		AuthorID:    b.AuthorID,
		EditorialID: b.EditorialID,
		GenreID:     b.GenreID,
		Author:      toRefDTO(b.Author),
		Editorial:   toRefDTO(b.Editorial),
		Genre:       toRefDTO(b.Genre),
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBookDTOs(books []*book.Book) []*BookDTO {
	list := make([]*BookDTO, 0, len(books))
	for _, b := range books {
		list = append(list, ToBookDTO(b))
	}
	return list
}
