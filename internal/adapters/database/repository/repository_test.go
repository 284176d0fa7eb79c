package repository_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/rafaelleal24/ecommerce/internal/adapters/config"
	"github.com/rafaelleal24/ecommerce/internal/adapters/database"
)

// newTestDB returns a migrated SQLite database in a fresh temp directory so
// every test starts from an empty table.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.NewConnection(config.DatabaseConfig{
		Driver:          config.DriverSQLite,
		DSN:             filepath.Join(t.TempDir(), "test.db") + "?_pragma=busy_timeout(5000)",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(context.Background(), db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}
