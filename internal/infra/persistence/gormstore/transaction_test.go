package gormstore

import (
	"context"
	"errors"
	"testing"

	"outside/internal/domain/entity"
	"outside/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_CommitsOnSuccess(t *testing.T) {
	db := newTestDB(t)
	owner := seedProfile(t, db, "owner@b.com")
	eventID := uuid.New()

	err := NewTransactionManager(db).Execute(context.Background(), func(f repository.RepositoryFactory) error {
		return f.NewEventRepository().Create(context.Background(), &entity.Event{
			ID: eventID, Name: "Committed", StartsAt: baseTime, FinishesAt: baseTime, CreatedByID: owner.ID, CreatedAt: baseTime,
		})
	})
	require.NoError(t, err)

	exists, err := NewEventRepository(db).Exists(context.Background(), eventID)
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	owner := seedProfile(t, db, "owner@b.com")
	eventID := uuid.New()
	boom := errors.New("second step failed")

	err := NewTransactionManager(db).Execute(context.Background(), func(f repository.RepositoryFactory) error {
		if err := f.NewEventRepository().Create(context.Background(), &entity.Event{
			ID: eventID, Name: "RolledBack", StartsAt: baseTime, FinishesAt: baseTime, CreatedByID: owner.ID, CreatedAt: baseTime,
		}); err != nil {
			return err
		}

		return boom
	})
	assert.ErrorIs(t, err, boom)

	exists, err := NewEventRepository(db).Exists(context.Background(), eventID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	db := newTestDB(t)
	owner := seedProfile(t, db, "owner@b.com")
	eventID := uuid.New()

	assert.Panics(t, func() {
		_ = NewTransactionManager(db).Execute(context.Background(), func(f repository.RepositoryFactory) error {
			_ = f.NewEventRepository().Create(context.Background(), &entity.Event{
				ID: eventID, Name: "Panicked", StartsAt: baseTime, FinishesAt: baseTime, CreatedByID: owner.ID, CreatedAt: baseTime,
			})
			panic("boom")
		})
	})

	exists, err := NewEventRepository(db).Exists(context.Background(), eventID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestMigrate_TableNames(t *testing.T) {
	db := newTestDB(t)

	names, err := TableNames(db)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"user_identities", "user_profiles", "events", "event_locations",
		"event_ticket_allotments", "payments", "tickets",
	}, names)

	for _, name := range names {
		assert.True(t, db.Migrator().HasTable(name), name)
	}
}
