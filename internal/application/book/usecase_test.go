package book_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appbook "github.com/xiebiao/catalog/internal/application/book"
	"github.com/xiebiao/catalog/internal/domain/book"
	"github.com/xiebiao/catalog/internal/domain/catalog"
	"github.com/xiebiao/catalog/internal/infrastructure/persistence/gormdb"
	"github.com/xiebiao/catalog/internal/infrastructure/persistence/gormdb/gormdbtest"
)

type env struct {
	uc  *appbook.UseCase
	ids map[string]uint
}

func newEnv(t *testing.T) *env {
	t.Helper()
	ctx := context.Background()
	db := gormdbtest.New(t)

	repos, err := gormdb.NewCatalogRepositories(db)
	require.NoError(t, err)

	ids := map[string]uint{}
	names := map[catalog.Kind]string{
		catalog.KindAuthor:    "Julio Cortázar",
		catalog.KindEditorial: "Sudamericana",
		catalog.KindGenre:     "Novela",
	}
	for _, repo := range repos {
		item, err := catalog.NewService(repo).Create(ctx, names[repo.Kind()])
		require.NoError(t, err)
		ids[string(repo.Kind())] = item.ID
	}

	svc := book.NewService(gormdb.NewBookRepository(db), catalog.NewRegistry(repos...))
	return &env{uc: appbook.NewUseCase(gormdb.NewTxManager(db), svc), ids: ids}
}

func (e *env) input(title, price string, available bool) appbook.CreateInput {
	return appbook.CreateInput{
		Title:       title,
		Price:       decimal.RequireFromString(price),
		IsAvailable: available,
		AuthorID:    e.ids["author"],
		EditorialID: e.ids["editorial"],
		GenreID:     e.ids["genre"],
	}
}

func TestUseCase_CreateProjectsRelations(t *testing.T) {
	e := newEnv(t)

	b, err := e.uc.Create(context.Background(), e.input("Rayuela", "18.4", true))
	require.NoError(t, err)
	assert.Equal(t, "18.40", b.Price)
	require.NotNil(t, b.Author)
	assert.Equal(t, "Julio Cortázar", b.Author.Name)
	assert.Equal(t, "Sudamericana", b.Editorial.Name)
	assert.Equal(t, "Novela", b.Genre.Name)
}

func TestUseCase_CreateUnknownReference(t *testing.T) {
	e := newEnv(t)
	in := e.input("Rayuela", "18.4", true)
	in.GenreID = 99

	_, err := e.uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, book.ErrUnknownReference(catalog.KindGenre))
}

func TestUseCase_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	b, err := e.uc.Create(ctx, e.input("Rayuela", "18.4", true))
	require.NoError(t, err)

	no := false
	updated, err := e.uc.Update(ctx, b.ID, book.Patch{IsAvailable: &no})
	require.NoError(t, err)
	assert.False(t, updated.IsAvailable)
	assert.Equal(t, "Rayuela", updated.Title)
	assert.Equal(t, "18.40", updated.Price)

	msg, err := e.uc.Delete(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, "Book with id #1 was deleted", msg)

	_, err = e.uc.Update(ctx, b.ID, book.Patch{IsAvailable: &no})
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	_, err = e.uc.Delete(ctx, b.ID)
	assert.ErrorIs(t, err, book.ErrBookNotExist)
}

func TestUseCase_Search(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	for i, title := range []string{"Rayuela", "Bestiario", "Final del juego", "Historias de cronopios", "Todos los fuegos el fuego"} {
		_, err := e.uc.Create(ctx, e.input(title, "10", i%2 == 0))
		require.NoError(t, err)
	}

	res, err := e.uc.Search(ctx, appbook.SearchInput{PageSize: 2, Page: 3})
	require.NoError(t, err)
	assert.Equal(t, int64(5), res.Total)
	assert.Equal(t, 3, res.Page)
	assert.Equal(t, 2, res.PageSize)
	require.Len(t, res.Books, 1)
	assert.Equal(t, "Todos los fuegos el fuego", res.Books[0].Title)

	res, err = e.uc.Search(ctx, appbook.SearchInput{OrderBy: []string{"title,sideways"}})
	require.NoError(t, err)
	assert.Equal(t, "Bestiario", res.Books[0].Title)
	assert.Equal(t, 10, res.PageSize)

	_, err = e.uc.Search(ctx, appbook.SearchInput{OrderBy: []string{"publisher.name,ASC"}})
	assert.ErrorIs(t, err, book.ErrUnknownRelation("publisher"))

	res, err = e.uc.Search(ctx, appbook.SearchInput{PageSize: 1000})
	require.NoError(t, err)
	assert.Equal(t, book.MaxPageSize, res.PageSize)
}

func TestUseCase_ExportCSV(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	_, err := e.uc.Create(ctx, e.input("Rayuela", "18.4", true))
	require.NoError(t, err)
	_, err = e.uc.Create(ctx, e.input("Bestiario", "9", false))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, e.uc.ExportCSV(ctx, &buf))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\ufeff"), "missing BOM")

	lines := strings.Split(strings.TrimSpace(strings.TrimPrefix(out, "\ufeff")), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "ID,Título,Autor,Categoría,Editorial,Precio,Disponible", lines[0])
	assert.Equal(t, "2,Bestiario,Julio Cortázar,Novela,Sudamericana,9.00,no", lines[1])
	assert.Equal(t, "1,Rayuela,Julio Cortázar,Novela,Sudamericana,18.40,sí", lines[2])
}
