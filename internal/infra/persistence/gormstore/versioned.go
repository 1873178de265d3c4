package gormstore

import (
	"context"

	"outside/internal/domain/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// updateVersioned writes columns to the row identified by id only if its
// version still equals version, bumping it by one. A miss means the row was
// changed or removed concurrently.
func updateVersioned(ctx context.Context, db *gorm.DB, mdl any, id uuid.UUID, version int64, columns map[string]any) error {
	columns["version"] = version + 1

	result := db.WithContext(ctx).
		Model(mdl).
		Where("id = ? AND version = ?", id, version).
		Updates(columns)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return repository.ErrConcurrencyConflict
	}

	return nil
}
