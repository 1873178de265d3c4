package gormstore

import (
	"context"

	"outside/internal/errors"
	"outside/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// Migrate creates or alters every table to match the persistence models.
func Migrate(ctx context.Context, db *gorm.DB) error {
	if err := db.WithContext(ctx).AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "failed to migrate database schema")
	}

	return nil
}

// TableNames lists the tables managed by Migrate.
func TableNames(db *gorm.DB) ([]string, error) {
	models := model.All()
	names := make([]string, 0, len(models))
	for _, m := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(m); err != nil {
			return nil, errors.Wrap(err, "failed to parse model")
		}
		names = append(names, stmt.Schema.Table)
	}

	return names, nil
}
