package gormdb

import (
	"errors"
	"strings"

	"gorm.io/gorm"
)

// isDuplicateError 唯一索引冲突
// TranslateError开启时驱动会转换为gorm.ErrDuplicatedKey，错误信息匹配作为兜底：
//   - MySQL 1062: Duplicate entry 'x' for key 'y'
//   - PostgreSQL 23505: duplicate key value violates unique constraint
//   - SQLite: UNIQUE constraint failed
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "duplicate key value") ||
		strings.Contains(msg, "UNIQUE constraint failed")
}

// isForeignKeyError 外键约束失败
//   - MySQL 1452: Cannot add or update a child row: a foreign key constraint fails
//   - PostgreSQL 23503
//   - SQLite: FOREIGN KEY constraint failed
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "foreign key constraint fails") ||
		strings.Contains(msg, "23503") ||
		strings.Contains(msg, "FOREIGN KEY constraint failed")
}
