package test

import (
	"testing"

	"community-funding-system/internal/global/database"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"gorm.io/gorm/schema"
)

// NewDB 创建内存数据库并建表，用于单元测试
// 连接数限制为 1，写事务天然串行
func NewDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		NamingStrategy: schema.NamingStrategy{SingularTable: true},
		Logger:         logger.Discard,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// SetupDB 创建测试数据库并替换全局连接，供 handler 级测试使用
func SetupDB(t *testing.T) *gorm.DB {
	db := NewDB(t)
	old := database.DB
	database.DB = db
	t.Cleanup(func() { database.DB = old })
	return db
}
