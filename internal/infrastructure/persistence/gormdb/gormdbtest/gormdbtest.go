// Package gormdbtest 为测试提供独立的内存SQLite数据库
package gormdbtest

import (
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/xiebiao/catalog/internal/infrastructure/persistence/gormdb"
)

// New 创建已迁移的内存数据库，测试结束时关闭
// 每个测试使用uuid命名的共享缓存库，互不干扰
func New(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.NewString() + "?mode=memory&cache=shared&_foreign_keys=on"
	db, err := gorm.Open(gormdb.SQLiteDialector(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// 单连接避免共享缓存下的表锁冲突
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := gormdb.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}
