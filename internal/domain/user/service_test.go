package user

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) Create(ctx context.Context, u *User) error {
	args := m.Called(ctx, u)
	if args.Error(0) == nil {
		u.ID = 10
	}
	return args.Error(0)
}

func (m *mockRepo) FindByID(ctx context.Context, id uint) (*User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) FindByEmail(ctx context.Context, email string) (*User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ Repository = (*mockRepo)(nil)

func TestService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("ok when email free", func(t *testing.T) {
		m := new(mockRepo)
		m.On("EmailExists", mock.Anything, "ana@example.com").Return(false, nil).Once()
		m.On("Create", mock.Anything, mock.MatchedBy(func(u *User) bool {
			return u.Email == "ana@example.com" && u.Password != "secret" && u.IsActive
		})).Return(nil).Once()

		u, err := NewService(m).Register(ctx, "Ana", " Ana@Example.com ", "secret")
		require.NoError(t, err)
		assert.Equal(t, uint(10), u.ID)
		assert.NoError(t, ComparePassword(u.Password, "secret"))
		m.AssertExpectations(t)
	})

	t.Run("existing email", func(t *testing.T) {
		m := new(mockRepo)
		m.On("EmailExists", mock.Anything, "ana@example.com").Return(true, nil).Once()

		u, err := NewService(m).Register(ctx, "Ana", "ana@example.com", "secret")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrEmailExists)
		assert.Equal(t, 400, ErrEmailExists.HTTPStatus())
		m.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("password too long", func(t *testing.T) {
		m := new(mockRepo)
		m.On("EmailExists", mock.Anything, "ana@example.com").Return(false, nil).Once()

		_, err := NewService(m).Register(ctx, "Ana", "ana@example.com", strings.Repeat("x", 73))
		assert.ErrorIs(t, err, ErrPasswordTooLong)
	})
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := HashPassword("secret")
	require.NoError(t, err)

	t.Run("ok", func(t *testing.T) {
		m := new(mockRepo)
		m.On("FindByEmail", mock.Anything, "ana@example.com").Return(&User{ID: 2, Email: "ana@example.com", Password: hash, IsActive: true}, nil).Once()

		u, err := NewService(m).Login(ctx, "ana@example.com", "secret")
		require.NoError(t, err)
		assert.Equal(t, uint(2), u.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		m := new(mockRepo)
		m.On("FindByEmail", mock.Anything, "ana@example.com").Return(&User{ID: 2, Password: hash}, nil).Once()

		u, err := NewService(m).Login(ctx, "ana@example.com", "nope")
		assert.Nil(t, u)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, 401, ErrInvalidCredentials.HTTPStatus())
	})

	t.Run("unknown email", func(t *testing.T) {
		m := new(mockRepo)
		m.On("FindByEmail", mock.Anything, "who@example.com").Return(nil, ErrUserNotFound).Once()

		_, err := NewService(m).Login(ctx, "who@example.com", "secret")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestNopSessionStore(t *testing.T) {
	var s SessionStore = NopSessionStore{}
	ctx := context.Background()

	require.NoError(t, s.SaveSession(ctx, 1, map[string]interface{}{"a": 1}, 0))
	require.NoError(t, s.AddToBlacklist(ctx, "t", 0))
	revoked, err := s.IsInBlacklist(ctx, "t")
	require.NoError(t, err)
	assert.False(t, revoked)
	require.NoError(t, s.DeleteSession(ctx, 1))
}
