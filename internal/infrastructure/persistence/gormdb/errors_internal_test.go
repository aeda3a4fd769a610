package gormdb

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, isDuplicateError(nil))
	assert.True(t, isDuplicateError(gorm.ErrDuplicatedKey))
	assert.True(t, isDuplicateError(fmt.Errorf("wrap: %w", gorm.ErrDuplicatedKey)))
	assert.True(t, isDuplicateError(errors.New("Error 1062 (23000): Duplicate entry 'x' for key 'name'")))
	assert.True(t, isDuplicateError(errors.New("UNIQUE constraint failed: authors.name")))
	assert.False(t, isDuplicateError(errors.New("connection refused")))
}

func TestIsForeignKeyError(t *testing.T) {
	assert.False(t, isForeignKeyError(nil))
	assert.True(t, isForeignKeyError(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyError(errors.New("FOREIGN KEY constraint failed")))
	assert.True(t, isForeignKeyError(errors.New("ERROR: insert violates foreign key (SQLSTATE 23503)")))
	assert.False(t, isForeignKeyError(errors.New("syntax error")))
}

func TestSqliteDSN(t *testing.T) {
	assert.Equal(t, "catalog.db?_foreign_keys=on", sqliteDSN("catalog.db"))
	assert.Equal(t, "file:x?mode=memory&_foreign_keys=on", sqliteDSN("file:x?mode=memory"))
	assert.Equal(t, "x.db?_foreign_keys=off", sqliteDSN("x.db?_foreign_keys=off"))
}

func TestOrderColumns(t *testing.T) {
	cols := orderColumns(nil)
	assert.Len(t, cols, 1)
	assert.Equal(t, "id", cols[0].Column.Name)
}

func TestEscapeLike(t *testing.T) {
	assert.Equal(t, "50!% off!_now!!", escapeLike("50% off_now!"))
}

func TestUnicodeLower(t *testing.T) {
	assert.Equal(t, "álgebra elemental", unicodeLower("Álgebra Elemental"))
	assert.Equal(t, "ñandú", unicodeLower([]byte("ÑANDÚ")))
	assert.Nil(t, unicodeLower(nil))
	assert.Equal(t, int64(7), unicodeLower(int64(7)))
}

func TestTitleCondition(t *testing.T) {
	assert.Equal(t, "books.title ILIKE ? ESCAPE '!'", titleCondition("postgres"))
	assert.Equal(t, "LOWER(books.title) LIKE ? ESCAPE '!'", titleCondition("sqlite"))
	assert.Equal(t, "LOWER(books.title) LIKE ? ESCAPE '!'", titleCondition("mysql"))
}
