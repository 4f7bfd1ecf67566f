// Package dbtest opens throwaway databases for tests.
package dbtest

import (
	"fmt"

	"minitwit/internal/db"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewSQLite returns a GormDB backed by a private in-memory sqlite database.
// Each call gets a fresh, empty database.
func NewSQLite() (*db.GormDB, error) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=on", uuid.NewString())

	gormDB, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("get sql db conn: %w", err)
	}
	// the in-memory database lives as long as this single connection
	sqlDB.SetMaxOpenConns(1)

	return db.New(gormDB), nil
}
