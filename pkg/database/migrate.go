package database

import (
	"context"
	"fmt"

	"gorm.io/gorm"
)

// Migrate creates missing tables, columns and indexes for the given models.
// It never drops or rewrites existing columns.
func Migrate(ctx context.Context, db *gorm.DB, models ...interface{}) error {
	if err := db.WithContext(ctx).AutoMigrate(models...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}
