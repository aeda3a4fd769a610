// Package seed 初始数据：空表时写入固定的作者、出版社、类型、图书和管理员账号
package seed

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/xiebiao/catalog/internal/application"
	"github.com/xiebiao/catalog/internal/domain/book"
	"github.com/xiebiao/catalog/internal/domain/catalog"
	"github.com/xiebiao/catalog/internal/domain/user"
)

// Counter 统计表中的记录数（包括已删除的）
type Counter interface {
	Count(ctx context.Context, table string) (int64, error)
}

// Admin 初始管理员账号
type Admin struct {
	Name     string
	Email    string
	Password string
}

// Seeder 每张表只在为空时写入，可重复执行
type Seeder struct {
	tx       application.Transactor
	counter  Counter
	catalogs map[catalog.Kind]catalog.Service
	books    book.Service
	users    user.Service
	admin    Admin
	logger   *zap.Logger
}

// NewSeeder 创建Seeder
func NewSeeder(
	tx application.Transactor,
	counter Counter,
	catalogs []catalog.Service,
	books book.Service,
	users user.Service,
	admin Admin,
	logger *zap.Logger,
) *Seeder {
	m := make(map[catalog.Kind]catalog.Service, len(catalogs))
	for _, s := range catalogs {
		m[s.Kind()] = s
	}
	return &Seeder{
		tx:       tx,
		counter:  counter,
		catalogs: m,
		books:    books,
		users:    users,
		admin:    admin,
		logger:   logger,
	}
}

var catalogSeeds = map[catalog.Kind][]string{
	catalog.KindAuthor:    authors,
	catalog.KindEditorial: editorials,
	catalog.KindGenre:     genres,
}

// Run 写入初始数据
func (s *Seeder) Run(ctx context.Context) error {
	return s.tx.Transaction(ctx, func(ctx context.Context) error {
		ids := make(map[catalog.Kind]map[string]uint, len(catalogSeeds))
		for _, kind := range catalog.Kinds() {
			m, err := s.seedCatalog(ctx, kind)
			if err != nil {
				return err
			}
			ids[kind] = m
		}

		if err := s.seedBooks(ctx, ids); err != nil {
			return err
		}
		return s.seedAdmin(ctx)
	})
}

// seedCatalog 表为空时写入，返回 名称→ID（包括已有数据）
func (s *Seeder) seedCatalog(ctx context.Context, kind catalog.Kind) (map[string]uint, error) {
	svc, ok := s.catalogs[kind]
	if !ok {
		return nil, catalog.ErrUnknownKind(kind)
	}

	n, err := s.counter.Count(ctx, kind.Meta().Plural)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		for _, name := range catalogSeeds[kind] {
			if _, err := svc.Create(ctx, name); err != nil {
				return nil, fmt.Errorf("seed %s %q: %w", kind, name, err)
			}
		}
		s.logger.Info("seeded", zap.String("table", kind.Meta().Plural), zap.Int("rows", len(catalogSeeds[kind])))
	}

	items, err := svc.List(ctx)
	if err != nil {
		return nil, err
	}
	m := make(map[string]uint, len(items))
	for _, item := range items {
		m[item.Name] = item.ID
	}
	return m, nil
}

func (s *Seeder) seedBooks(ctx context.Context, ids map[catalog.Kind]map[string]uint) error {
	n, err := s.counter.Count(ctx, "books")
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	created := 0
	for _, seed := range books {
		authorID := ids[catalog.KindAuthor][seed.Author]
		editorialID := ids[catalog.KindEditorial][seed.Editorial]
		genreID := ids[catalog.KindGenre][seed.Genre]
		if authorID == 0 || editorialID == 0 || genreID == 0 {
			s.logger.Warn("skip seed book with missing reference", zap.String("title", seed.Title))
			continue
		}

		b := book.NewBook(seed.Title, seed.Description, decimal.RequireFromString(seed.Price), seed.IsAvailable, authorID, editorialID, genreID)
		if _, err := s.books.Create(ctx, b); err != nil {
			return fmt.Errorf("seed book %q: %w", seed.Title, err)
		}
		created++
	}
	s.logger.Info("seeded", zap.String("table", "books"), zap.Int("rows", created))
	return nil
}

func (s *Seeder) seedAdmin(ctx context.Context) error {
	if s.admin.Email == "" {
		return nil
	}

	n, err := s.counter.Count(ctx, "users")
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	if _, err := s.users.Register(ctx, s.admin.Name, s.admin.Email, s.admin.Password); err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	s.logger.Info("seeded admin user", zap.String("email", user.NormalizeEmail(s.admin.Email)))
	return nil
}
