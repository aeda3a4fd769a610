package gormdb

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/catalog/internal/domain/book"
	"github.com/xiebiao/catalog/internal/domain/catalog"
	apperrors "github.com/xiebiao/catalog/pkg/errors"
)

// joinAliases 关联在JOIN中的别名（GORM使用字段名作为别名）
var joinAliases = map[catalog.Kind]string{
	catalog.KindAuthor:    "Author",
	catalog.KindEditorial: "Editorial",
	catalog.KindGenre:     "Genre",
}

// bookRepository 图书仓储实现
// 读操作INNER JOIN作者、出版社、类型，只取有效图书
type bookRepository struct {
	db *gorm.DB
}

// NewBookRepository 创建图书仓储
func NewBookRepository(db *gorm.DB) book.Repository {
	return &bookRepository{db: db}
}

func (r *bookRepository) withRelations(ctx context.Context) *gorm.DB {
	return conn(ctx, r.db).Model(&BookModel{}).
		InnerJoins("Author").
		InnerJoins("Editorial").
		InnerJoins("Genre").
		Where("books.is_active = ?", true)
}

// Create 创建图书
func (r *bookRepository) Create(ctx context.Context, b *book.Book) error {
	model := toBookModel(b)

	if err := conn(ctx, r.db).Omit(clause.Associations).Create(model).Error; err != nil {
		if isForeignKeyError(err) {
			return book.ErrInvalidReference
		}
		return apperrors.Wrap(err, "创建图书失败")
	}

	b.ID = model.ID
	b.IsActive = model.IsActive
	b.CreatedAt = model.CreatedAt
	b.UpdatedAt = model.UpdatedAt
	return nil
}

// FindByID 根据ID查找有效图书
func (r *bookRepository) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	var model BookModel
	err := r.withRelations(ctx).Where("books.id = ?", id).Take(&model).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, book.ErrBookNotFound
		}
		return nil, apperrors.Wrap(err, "查询图书失败")
	}
	return toBookEntity(&model), nil
}

// Update 保存全部可修改字段（包括零值）
// MySQL在值未变化时RowsAffected为0，因此始终刷新updated_at
func (r *bookRepository) Update(ctx context.Context, b *book.Book) error {
	result := conn(ctx, r.db).Model(&BookModel{}).
		Where("id = ? AND is_active = ?", b.ID, true).
		Updates(map[string]interface{}{
			"title":        b.Title,
			"description":  b.Description,
			"price":        b.Price,
			"is_available": b.IsAvailable,
			"author_id":    b.AuthorID,
			"editorial_id": b.EditorialID,
			"genre_id":     b.GenreID,
			"updated_at":   time.Now().UTC(),
		})

	if result.Error != nil {
		if isForeignKeyError(result.Error) {
			return book.ErrInvalidReference
		}
		return apperrors.Wrap(result.Error, "更新图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotFound
	}
	return nil
}

// Deactivate 软删除
func (r *bookRepository) Deactivate(ctx context.Context, id uint) error {
	result := conn(ctx, r.db).Model(&BookModel{}).
		Where("id = ? AND is_active = ?", id, true).
		Updates(map[string]interface{}{
			"is_active":  false,
			"updated_at": time.Now().UTC(),
		})

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "删除图书失败")
	}
	if result.RowsAffected == 0 {
		return book.ErrBookNotExist
	}
	return nil
}

// List 所有有效图书，按标题排序
func (r *bookRepository) List(ctx context.Context) ([]*book.Book, error) {
	var models []BookModel
	err := r.withRelations(ctx).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "books", Name: "title"}}).
		Order(clause.OrderByColumn{Column: clause.Column{Table: "books", Name: "id"}}).
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models), nil
}

// Search 条件搜索 + 分页
// 总数在不带JOIN的查询上统计，外键约束保证两者一致
func (r *bookRepository) Search(ctx context.Context, params book.SearchParams) ([]*book.Book, int64, error) {
	var total int64
	if err := applyFilters(conn(ctx, r.db).Model(&BookModel{}), params).Count(&total).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书总数失败")
	}

	q := applyFilters(
		conn(ctx, r.db).Model(&BookModel{}).InnerJoins("Author").InnerJoins("Editorial").InnerJoins("Genre"),
		params,
	)
	for _, column := range orderColumns(params.Sort) {
		q = q.Order(column)
	}

	var models []BookModel
	if err := q.Limit(params.PageSize).Offset(params.Offset()).Find(&models).Error; err != nil {
		return nil, 0, apperrors.Wrap(err, "查询图书列表失败")
	}
	return toBookEntities(models), total, nil
}

// applyFilters 条件取交集，始终只查有效记录
func applyFilters(q *gorm.DB, p book.SearchParams) *gorm.DB {
	q = q.Where("books.is_active = ?", true)

	if p.Title != "" {
		q = q.Where(titleCondition(q.Dialector.Name()), "%"+escapeLike(strings.ToLower(p.Title))+"%")
	}
	if p.AuthorID != 0 {
		q = q.Where("books.author_id = ?", p.AuthorID)
	}
	if p.EditorialID != 0 {
		q = q.Where("books.editorial_id = ?", p.EditorialID)
	}
	if p.GenreID != 0 {
		q = q.Where("books.genre_id = ?", p.GenreID)
	}
	if p.IsAvailable != nil {
		q = q.Where("books.is_available = ?", *p.IsAvailable)
	}
	return q
}

// titleCondition 标题不区分大小写的模糊匹配
// postgres使用ILIKE；sqlite的lower()在SQLiteDialector中替换为Unicode版本
func titleCondition(dialect string) string {
	if dialect == "postgres" {
		return "books.title ILIKE ? ESCAPE '!'"
	}
	return "LOWER(books.title) LIKE ? ESCAPE '!'"
}

// orderColumns 排序键 → ORDER BY列；最后追加books.id保证分页稳定
func orderColumns(keys []book.SortKey) []clause.OrderByColumn {
	columns := make([]clause.OrderByColumn, 0, len(keys)+1)
	byID := false
	for _, k := range keys {
		table := "books"
		if k.Relation != "" {
			table = joinAliases[k.Relation]
		} else if k.Column == "id" {
			byID = true
		}
		columns = append(columns, clause.OrderByColumn{
			Column: clause.Column{Table: table, Name: k.Column},
			Desc:   k.Desc(),
		})
	}
	if !byID {
		columns = append(columns, clause.OrderByColumn{Column: clause.Column{Table: "books", Name: "id"}})
	}
	return columns
}

var likeEscaper = strings.NewReplacer("!", "!!", "%", "!%", "_", "!_")

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func toBookModel(b *book.Book) *BookModel {
	return &BookModel{
		ID:          b.ID,
		Title:       b.Title,
		Description: b.Description,
		Price:       b.Price,
		IsAvailable: b.IsAvailable,
		IsActive:    true,
		AuthorID:    b.AuthorID,
		EditorialID: b.EditorialID,
		GenreID:     b.GenreID,
		CreatedAt:   b.CreatedAt,
		UpdatedAt:   b.UpdatedAt,
	}
}

func toBookEntity(m *BookModel) *book.Book {
	b := &book.Book{
		ID:          m.ID,
		Title:       m.Title,
		Description: m.Description,
		Price:       m.Price,
		IsAvailable: m.IsAvailable,
		IsActive:    m.IsActive,
		AuthorID:    m.AuthorID,
		EditorialID: m.EditorialID,
		GenreID:     m.GenreID,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Author != nil {
		b.Author = &book.Ref{ID: m.Author.ID, Name: m.Author.Name}
	}
	if m.Editorial != nil {
		b.Editorial = &book.Ref{ID: m.Editorial.ID, Name: m.Editorial.Name}
	}
	if m.Genre != nil {
		b.Genre = &book.Ref{ID: m.Genre.ID, Name: m.Genre.Name}
	}
	return b
}

func toBookEntities(models []BookModel) []*book.Book {
	books := make([]*book.Book, len(models))
	for i := range models {
		books[i] = toBookEntity(&models[i])
	}
	return books
}
