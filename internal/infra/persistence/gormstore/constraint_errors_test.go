package gormstore

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestConstraintViolationDetection(t *testing.T) {
	unique := &pgconn.PgError{Code: pgUniqueViolation}
	fk := &pgconn.PgError{Code: pgForeignKeyViolation}

	assert.True(t, isUniqueConstraintViolation(gorm.ErrDuplicatedKey))
	assert.True(t, isUniqueConstraintViolation(fmt.Errorf("insert: %w", unique)))
	assert.False(t, isUniqueConstraintViolation(fk))
	assert.False(t, isUniqueConstraintViolation(gorm.ErrRecordNotFound))

	assert.True(t, isForeignKeyConstraintViolation(gorm.ErrForeignKeyViolated))
	assert.True(t, isForeignKeyConstraintViolation(fmt.Errorf("insert: %w", fk)))
	assert.False(t, isForeignKeyConstraintViolation(unique))
}
