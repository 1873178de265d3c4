package gormstore

import (
	"context"
	"testing"
	"time"

	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventRepository_CreateFindDetailed(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	owner := seedProfile(t, db, "owner@b.com")
	event := seedEvent(t, db, owner.ID)

	bare, err := NewEventRepository(db).FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Nil(t, bare.CreatedBy)
	assert.Nil(t, bare.Location)
	assert.Nil(t, bare.UpdatedAt)
	assert.Equal(t, int64(1), bare.Version)

	line2 := "Sala 2"
	location := &entity.EventLocation{
		ID: uuid.New(), EventID: event.ID, Latitude: -23.5, Longitude: -46.6,
		Country: "Brazil", State: "SP", City: "São Paulo", PostalCode: "01310-100",
		AddressLine1: "Avenida Paulista 1000, Bela Vista", AddressLine2: &line2, CreatedAt: baseTime,
	}
	require.NoError(t, NewEventLocationRepository(db).Create(ctx, location))

	allotment := &entity.EventTicketAllotment{
		ID: uuid.New(), EventID: event.ID, Name: "VIP", Amount: 1000, TicketsQuantityLimit: 10, CreatedAt: baseTime,
	}
	require.NoError(t, NewTicketAllotmentRepository(db).Create(ctx, allotment))

	detailed, err := NewEventRepository(db).FindDetailedByID(ctx, event.ID)
	require.NoError(t, err)
	require.NotNil(t, detailed.CreatedBy)
	assert.Equal(t, "owner@b.com", detailed.CreatedBy.Email())
	require.NotNil(t, detailed.Location)
	assert.Equal(t, "Sala 2", *detailed.Location.AddressLine2)
	require.Len(t, detailed.TicketAllotments, 1)
	assert.Equal(t, "VIP", detailed.TicketAllotments[0].Name)

	_, err = NewEventRepository(db).FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}

func TestEventRepository_CreateWithUnknownOwner(t *testing.T) {
	db := newTestDB(t)

	err := NewEventRepository(db).Create(context.Background(), &entity.Event{
		ID: uuid.New(), Name: "Orphan", StartsAt: baseTime, FinishesAt: baseTime, CreatedByID: uuid.New(), CreatedAt: baseTime,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestEventRepository_OptimisticConcurrency(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()
	owner := seedProfile(t, db, "owner@b.com")
	event := seedEvent(t, db, owner.ID)

	winner, err := repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	loser, err := repo.FindByID(ctx, event.ID)
	require.NoError(t, err)

	stamp := baseTime.Add(time.Hour)
	winner.Name = "Winner"
	winner.UpdatedAt = &stamp
	require.NoError(t, repo.Update(ctx, winner))

	loser.Name = "Loser"
	assert.ErrorIs(t, repo.Update(ctx, loser), repository.ErrConcurrencyConflict)

	stored, err := repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Winner", stored.Name)
	assert.Equal(t, int64(2), stored.Version)
	require.NotNil(t, stored.UpdatedAt)
	assert.True(t, stored.UpdatedAt.Equal(stamp))
}

func TestEventRepository_UpdateDeletedRowIsConflict(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventRepository(db)
	ctx := context.Background()
	owner := seedProfile(t, db, "owner@b.com")
	event := seedEvent(t, db, owner.ID)

	require.NoError(t, repo.Delete(ctx, event.ID))

	event.Name = "Ghost"
	assert.ErrorIs(t, repo.Update(ctx, event), repository.ErrConcurrencyConflict)

	exists, err := repo.Exists(ctx, event.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, repo.Delete(ctx, event.ID), repository.ErrEventNotFound)
}

func TestEventRepository_ListAndListByOwner(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()
	alice := seedProfile(t, db, "alice@b.com")
	bob := seedProfile(t, db, "bob@b.com")
	seedEvent(t, db, alice.ID)
	seedEvent(t, db, alice.ID)
	seedEvent(t, db, bob.ID)

	all, err := NewEventRepository(db).List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 3)
	for _, e := range all {
		assert.NotNil(t, e.CreatedBy)
	}

	mine, err := NewEventRepository(db).ListByOwner(ctx, alice.ID)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}

func TestEventLocationRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewEventLocationRepository(db)
	ctx := context.Background()
	owner := seedProfile(t, db, "owner@b.com")
	event := seedEvent(t, db, owner.ID)

	_, err := repo.FindByEventID(ctx, event.ID)
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)

	location := &entity.EventLocation{
		ID: uuid.New(), EventID: event.ID, Country: "Brazil", State: "SP", City: "SP",
		PostalCode: "01000-000", AddressLine1: "Rua A 1", CreatedAt: baseTime,
	}
	require.NoError(t, repo.Create(ctx, location))

	second := *location
	second.ID = uuid.New()
	assert.ErrorIs(t, repo.Create(ctx, &second), domainerrors.ErrLocationAlreadyExists)

	location.City = "Campinas"
	require.NoError(t, repo.Update(ctx, location))
	stored, err := repo.FindByEventID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "Campinas", stored.City)
	assert.Nil(t, stored.AddressLine2)

	require.NoError(t, repo.DeleteByEventID(ctx, event.ID))
	_, err = repo.FindByEventID(ctx, event.ID)
	assert.ErrorIs(t, err, repository.ErrLocationNotFound)
}

func TestTicketAllotmentRepository(t *testing.T) {
	db := newTestDB(t)
	repo := NewTicketAllotmentRepository(db)
	ctx := context.Background()
	owner := seedProfile(t, db, "owner@b.com")
	event := seedEvent(t, db, owner.ID)

	early := &entity.EventTicketAllotment{ID: uuid.New(), EventID: event.ID, Name: "Early", Amount: 10, TicketsQuantityLimit: 5, CreatedAt: baseTime}
	late := &entity.EventTicketAllotment{ID: uuid.New(), EventID: event.ID, Name: "Late", Amount: 20, TicketsQuantityLimit: 5, CreatedAt: baseTime.Add(time.Minute)}
	require.NoError(t, repo.Create(ctx, early))
	require.NoError(t, repo.Create(ctx, late))

	list, err := repo.ListByEventID(ctx, event.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Early", list[0].Name)

	early.TicketsQuantityLimit = 50
	require.NoError(t, repo.Update(ctx, early))
	found, err := repo.FindByID(ctx, early.ID)
	require.NoError(t, err)
	assert.Equal(t, 50, found.TicketsQuantityLimit)

	exists, err := repo.Exists(ctx, late.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	require.NoError(t, repo.Delete(ctx, late.ID))
	assert.ErrorIs(t, repo.Delete(ctx, late.ID), repository.ErrTicketAllotmentNotFound)

	require.NoError(t, repo.DeleteByEventID(ctx, event.ID))
	list, err = repo.ListByEventID(ctx, event.ID)
	require.NoError(t, err)
	assert.Empty(t, list)

	err = repo.Create(ctx, &entity.EventTicketAllotment{ID: uuid.New(), EventID: uuid.New(), Name: "X", CreatedAt: baseTime})
	assert.ErrorIs(t, err, repository.ErrEventNotFound)
}
