package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/catalog/pkg/errors"
)

type mockRepo struct {
	mock.Mock
	kind Kind
}

func (m *mockRepo) Kind() Kind { return m.kind }

func (m *mockRepo) Create(ctx context.Context, item *Item) error {
	args := m.Called(ctx, item)
	if args.Error(0) == nil {
		item.ID = 1
	}
	return args.Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id uint) (*Item, error) {
	args := m.Called(ctx, id)
	if it, ok := args.Get(0).(*Item); ok {
		return it, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) NameTaken(ctx context.Context, name string, excludeID uint) (bool, error) {
	args := m.Called(ctx, name, excludeID)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) List(ctx context.Context) ([]*Item, error) {
	args := m.Called(ctx)
	if items, ok := args.Get(0).([]*Item); ok {
		return items, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) Update(ctx context.Context, item *Item) error {
	return m.Called(ctx, item).Error(0)
}

func (m *mockRepo) Deactivate(ctx context.Context, id uint) error {
	return m.Called(ctx, id).Error(0)
}

var _ Repository = (*mockRepo)(nil)

func TestKindMeta(t *testing.T) {
	assert.Equal(t, Meta{Singular: "author", Plural: "authors", Title: "Author"}, KindAuthor.Meta())
	assert.Equal(t, "editorials", KindEditorial.Meta().Plural)
	assert.Equal(t, "Genre", KindGenre.Meta().Title)
	assert.True(t, KindGenre.Valid())
	assert.False(t, Kind("publisher").Valid())
	assert.Len(t, Kinds(), 3)
}

func TestErrors(t *testing.T) {
	err := ErrAlreadyExists(KindGenre)
	assert.Equal(t, "Genre already exists", err.Message)
	assert.Equal(t, 409, err.HTTPStatus())

	assert.Equal(t, "Already exists editorial with this name", ErrNameTaken(KindEditorial).Message)
	assert.Equal(t, "Author not found", ErrNotFound(KindAuthor).Message)
	assert.Equal(t, 404, ErrNotExist(KindAuthor).HTTPStatus())
	assert.Equal(t, "Author does not exist", ErrNotExist(KindAuthor).Message)
	assert.Equal(t, "Genre with id #7 was deleted", DeletedMessage(KindGenre, 7))

	assert.ErrorIs(t, ErrNotFound(KindGenre), ErrNotFound(KindGenre))
	assert.NotErrorIs(t, ErrNotFound(KindGenre), ErrNotFound(KindAuthor))
}

func TestService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("ok when name free", func(t *testing.T) {
		m := &mockRepo{kind: KindGenre}
		m.On("NameTaken", mock.Anything, "Fantasy", uint(0)).Return(false, nil).Once()
		m.On("Create", mock.Anything, mock.MatchedBy(func(it *Item) bool {
			return it.Name == "Fantasy" && it.IsActive && it.Kind == KindGenre
		})).Return(nil).Once()

		item, err := NewService(m).Create(ctx, "  Fantasy ")
		require.NoError(t, err)
		assert.Equal(t, uint(1), item.ID)
		assert.Equal(t, "Fantasy", item.Name)
		m.AssertExpectations(t)
	})

	t.Run("conflict when name taken", func(t *testing.T) {
		m := &mockRepo{kind: KindGenre}
		m.On("NameTaken", mock.Anything, "Kafka", uint(0)).Return(true, nil).Once()

		item, err := NewService(m).Create(ctx, "Kafka")
		assert.Nil(t, item)
		assert.ErrorIs(t, err, ErrAlreadyExists(KindGenre))
		m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("storage error propagates", func(t *testing.T) {
		m := &mockRepo{kind: KindAuthor}
		boom := apperrors.Wrap(errors.New("db down"), "query failed")
		m.On("NameTaken", mock.Anything, "X", uint(0)).Return(false, boom).Once()

		_, err := NewService(m).Create(ctx, "X")
		assert.Same(t, boom, err)
	})
}

func TestService_Get(t *testing.T) {
	m := &mockRepo{kind: KindAuthor}
	m.On("FindByID", mock.Anything, uint(9)).Return(nil, ErrNotFound(KindAuthor)).Once()

	_, err := NewService(m).Get(context.Background(), 9)
	assert.ErrorIs(t, err, ErrNotFound(KindAuthor))
}

func TestService_Rename(t *testing.T) {
	ctx := context.Background()

	t.Run("ok", func(t *testing.T) {
		m := &mockRepo{kind: KindEditorial}
		m.On("FindByID", mock.Anything, uint(2)).Return(&Item{ID: 2, Kind: KindEditorial, Name: "Old", IsActive: true}, nil).Once()
		m.On("NameTaken", mock.Anything, "New", uint(2)).Return(false, nil).Once()
		m.On("Update", mock.Anything, mock.MatchedBy(func(it *Item) bool { return it.Name == "New" })).Return(nil).Once()

		item, err := NewService(m).Rename(ctx, 2, "New")
		require.NoError(t, err)
		assert.Equal(t, "New", item.Name)
		m.AssertExpectations(t)
	})

	t.Run("same name is a no-op", func(t *testing.T) {
		m := &mockRepo{kind: KindEditorial}
		m.On("FindByID", mock.Anything, uint(2)).Return(&Item{ID: 2, Name: "Same", IsActive: true}, nil).Once()

		item, err := NewService(m).Rename(ctx, 2, "Same")
		require.NoError(t, err)
		assert.Equal(t, "Same", item.Name)
		m.AssertNotCalled(t, "NameTaken", mock.Anything, mock.Anything, mock.Anything)
		m.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("conflict with another row", func(t *testing.T) {
		m := &mockRepo{kind: KindEditorial}
		m.On("FindByID", mock.Anything, uint(2)).Return(&Item{ID: 2, Name: "Old", IsActive: true}, nil).Once()
		m.On("NameTaken", mock.Anything, "Taken", uint(2)).Return(true, nil).Once()

		_, err := NewService(m).Rename(ctx, 2, "Taken")
		assert.ErrorIs(t, err, ErrNameTaken(KindEditorial))
	})

	t.Run("missing row", func(t *testing.T) {
		m := &mockRepo{kind: KindEditorial}
		m.On("FindByID", mock.Anything, uint(5)).Return(nil, ErrNotFound(KindEditorial)).Once()

		_, err := NewService(m).Rename(ctx, 5, "Any")
		assert.ErrorIs(t, err, ErrNotFound(KindEditorial))
	})
}

func TestService_Delete(t *testing.T) {
	m := &mockRepo{kind: KindGenre}
	m.On("Deactivate", mock.Anything, uint(3)).Return(ErrNotExist(KindGenre)).Once()

	err := NewService(m).Delete(context.Background(), 3)
	assert.ErrorIs(t, err, ErrNotExist(KindGenre))
}

func TestRegistry_ActiveExists(t *testing.T) {
	ctx := context.Background()
	authors := &mockRepo{kind: KindAuthor}
	authors.On("FindByID", mock.Anything, uint(1)).Return(&Item{ID: 1, IsActive: true}, nil)
	authors.On("FindByID", mock.Anything, uint(2)).Return(nil, ErrNotFound(KindAuthor))
	authors.On("FindByID", mock.Anything, uint(3)).Return(nil, apperrors.ErrDatabaseError)

	reg := NewRegistry(authors)

	ok, err := reg.ActiveExists(ctx, KindAuthor, 1)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = reg.ActiveExists(ctx, KindAuthor, 2)
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = reg.ActiveExists(ctx, KindAuthor, 3)
	assert.Error(t, err)

	_, err = reg.ActiveExists(ctx, KindGenre, 1)
	assert.ErrorIs(t, err, ErrUnknownKind(KindGenre))
}
