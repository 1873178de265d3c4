package gormstore

import (
	"context"
	"testing"
	"time"

	"outside/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

// newTestDB opens an isolated in-memory database with the full schema. One
// connection keeps every statement on the same in-memory database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func seedProfile(t *testing.T, db *gorm.DB, email string) *entity.UserProfile {
	t.Helper()

	identityID := uuid.New()
	profile := &entity.UserProfile{
		ID:         uuid.New(),
		IdentityID: identityID,
		Identity: &entity.UserIdentity{
			ID:           identityID,
			Email:        email,
			PasswordHash: "hash",
			CreatedAt:    baseTime,
		},
		FirstName: "A",
		LastName:  "B",
		CreatedAt: baseTime,
	}
	require.NoError(t, NewUserRepository(db).Create(context.Background(), profile))

	return profile
}

func seedEvent(t *testing.T, db *gorm.DB, ownerID uuid.UUID) *entity.Event {
	t.Helper()

	event := &entity.Event{
		ID:          uuid.New(),
		Name:        "Meetup",
		Description: "Gophers",
		StartsAt:    baseTime.Add(24 * time.Hour),
		FinishesAt:  baseTime.Add(26 * time.Hour),
		CreatedByID: ownerID,
		CreatedAt:   baseTime,
	}
	require.NoError(t, NewEventRepository(db).Create(context.Background(), event))

	return event
}
