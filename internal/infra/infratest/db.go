// Package infratest provides database fixtures for tests.
package infratest

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tourly/internal/config"
	"tourly/internal/infra"
)

// NewTestDatabase opens a migrated in-memory SQLite database private to t.
func NewTestDatabase(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := infra.OpenDatabase(config.DatabaseConfig{
		Driver:       "sqlite",
		URL:          fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
		MaxOpenConns: 1,
	})
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	if err := infra.Migrate(db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}
