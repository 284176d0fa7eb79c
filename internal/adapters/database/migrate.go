package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rafaelleal24/ecommerce/internal/adapters/database/model"
)

// Migrate creates or widens the schema. It runs once at process start, before
// the HTTP server accepts traffic.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(&model.Product{}); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
