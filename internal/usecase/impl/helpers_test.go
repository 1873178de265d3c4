package impl

import (
	"context"
	"io"
	"log/slog"
	"time"

	"outside/internal/domain/entity"
	"outside/internal/domain/repository"

	"github.com/google/uuid"
)

var testNow = time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func ptr[T any](v T) *T { return &v }

// executeWith makes a mocked TransactionManager run fn against factory.
func executeWith(factory repository.RepositoryFactory) func(context.Context, func(repository.RepositoryFactory) error) error {
	return func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
		return fn(factory)
	}
}

func ownedEvent(ownerID uuid.UUID) *entity.Event {
	owner := &entity.UserProfile{ID: ownerID, FirstName: "Ana", LastName: "Souza"}

	return &entity.Event{
		ID:          uuid.New(),
		Name:        "Meetup",
		Description: "Monthly gophers meetup",
		StartsAt:    testNow.Add(48 * time.Hour),
		FinishesAt:  testNow.Add(51 * time.Hour),
		CreatedByID: ownerID,
		CreatedBy:   owner,
		CreatedAt:   testNow.Add(-time.Hour),
		Version:     1,
	}
}

func storedLocation(eventID uuid.UUID) *entity.EventLocation {
	return &entity.EventLocation{
		ID:           uuid.New(),
		EventID:      eventID,
		Latitude:     -23.561,
		Longitude:    -46.656,
		Country:      "Brazil",
		State:        "São Paulo",
		City:         "São Paulo",
		PostalCode:   "01310-100",
		AddressLine1: "Avenida Paulista 1578, Bela Vista",
		CreatedAt:    testNow.Add(-time.Hour),
		Version:      1,
	}
}
