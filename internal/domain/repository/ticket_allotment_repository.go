package repository

import (
	"context"

	"outside/internal/domain/entity"
	"outside/internal/errors"

	"github.com/google/uuid"
)

// ErrTicketAllotmentNotFound is returned when an allotment is not found.
var ErrTicketAllotmentNotFound = errors.New("ticket allotment not found")

// TicketAllotmentRepository defines persistence for event ticket allotments.
type TicketAllotmentRepository interface {
	// FindByID retrieves an allotment by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.EventTicketAllotment, error)

	// ListByEventID returns the allotments of an event ordered by creation time.
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.EventTicketAllotment, error)

	// Exists reports whether an allotment with id exists, reading from the primary.
	Exists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create persists a new allotment. An unknown event is ErrEventNotFound.
	Create(ctx context.Context, allotment *entity.EventTicketAllotment) error

	// Update writes the allotment guarded by its version.
	Update(ctx context.Context, allotment *entity.EventTicketAllotment) error

	// Delete removes an allotment by its ID.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByEventID removes every allotment of an event.
	DeleteByEventID(ctx context.Context, eventID uuid.UUID) error
}
