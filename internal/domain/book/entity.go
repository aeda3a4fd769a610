package book

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/xiebiao/catalog/internal/domain/catalog"
)

// Ref 关联资源的投影（只含id和名称）
type Ref struct {
	ID   uint
	Name string
}

// Book 图书实体（聚合根）
// 价格使用decimal保存（对应数据库DECIMAL(10,2)），避免浮点误差
// Author/Editorial/Genre只在查询时填充
type Book struct {
	ID          uint
	Title       string
	Description string
	Price       decimal.Decimal
	IsAvailable bool
	IsActive    bool
	AuthorID    uint
	EditorialID uint
	GenreID     uint
	Author      *Ref
	Editorial   *Ref
	Genre       *Ref
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewBook 创建新图书（工厂方法）
func NewBook(title, description string, price decimal.Decimal, isAvailable bool, authorID, editorialID, genreID uint) *Book {
	now := time.Now()
	return &Book{
		Title:       strings.TrimSpace(title),
		Description: description,
		Price:       price,
		IsAvailable: isAvailable,
		IsActive:    true,
		AuthorID:    authorID,
		EditorialID: editorialID,
		GenreID:     genreID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// Validate 业务规则：标题非空、价格大于0、外键为正数
func (b *Book) Validate() error {
	if strings.TrimSpace(b.Title) == "" {
		return ErrTitleRequired
	}
	if !b.Price.IsPositive() {
		return ErrInvalidPrice
	}
	refs := b.References()
	for _, kind := range catalog.Kinds() {
		if refs[kind] == 0 {
			return ErrUnknownReference(kind)
		}
	}
	return nil
}

// References 外键引用，按资源类型索引
func (b *Book) References() map[catalog.Kind]uint {
	return map[catalog.Kind]uint{
		catalog.KindAuthor:    b.AuthorID,
		catalog.KindEditorial: b.EditorialID,
		catalog.KindGenre:     b.GenreID,
	}
}

// Patch 部分更新，nil字段保持不变
type Patch struct {
	Title       *string
	Description *string
	Price       *decimal.Decimal
	IsAvailable *bool
	AuthorID    *uint
	EditorialID *uint
	GenreID     *uint
}

// References patch中出现的外键
func (p Patch) References() map[catalog.Kind]uint {
	refs := make(map[catalog.Kind]uint, 3)
	if p.AuthorID != nil {
		refs[catalog.KindAuthor] = *p.AuthorID
	}
	if p.EditorialID != nil {
		refs[catalog.KindEditorial] = *p.EditorialID
	}
	if p.GenreID != nil {
		refs[catalog.KindGenre] = *p.GenreID
	}
	return refs
}

// Apply 应用部分更新（领域行为），应用后重新校验
func (b *Book) Apply(p Patch) error {
	if p.Title != nil {
		b.Title = strings.TrimSpace(*p.Title)
	}
	if p.Description != nil {
		b.Description = *p.Description
	}
	if p.Price != nil {
		b.Price = *p.Price
	}
	if p.IsAvailable != nil {
		b.IsAvailable = *p.IsAvailable
	}
	if p.AuthorID != nil {
		b.AuthorID = *p.AuthorID
		b.Author = nil
	}
	if p.EditorialID != nil {
		b.EditorialID = *p.EditorialID
		b.Editorial = nil
	}
	if p.GenreID != nil {
		b.GenreID = *p.GenreID
		b.Genre = nil
	}
	b.UpdatedAt = time.Now()
	return b.Validate()
}

// Available CSV中的可借状态
func (b *Book) Available() string {
	if b.IsAvailable {
		return "sí"
	}
	return "no"
}

// RefName 关联资源名称，未加载时为空
func RefName(r *Ref) string {
	if r == nil {
		return ""
	}
	return r.Name
}
