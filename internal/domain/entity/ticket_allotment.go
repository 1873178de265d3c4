package entity

import (
	"time"

	"github.com/google/uuid"

	"outside/internal/domain/reconcile"
)

// EventTicketAllotment is a named block of tickets for an event with a price
// and a quantity cap.
type EventTicketAllotment struct {
	ID                   uuid.UUID  // The Global Unique Identifier (GUID) for the allotment.
	EventID              uuid.UUID  // The event this allotment sells tickets for.
	Name                 string     // Display name, e.g. "Early bird".
	Amount               int        // Price in the smallest currency unit.
	TicketsQuantityLimit int        // Maximum number of tickets.
	CreatedAt            time.Time  // Timestamp of when the allotment was created.
	UpdatedAt            *time.Time // Nil until the first accepted change.
	Version              int64      // Optimistic concurrency token, bumped on every write.
}

// TicketAllotmentUpdate is a partial update form for an allotment.
type TicketAllotmentUpdate struct {
	Name                 *string
	Amount               *int
	TicketsQuantityLimit *int
}

// ApplyUpdate reconciles the form against the allotment and stamps UpdatedAt
// only when something changed.
func (a *EventTicketAllotment) ApplyUpdate(form TicketAllotmentUpdate, now time.Time) bool {
	changed := reconcile.Any(
		reconcile.String(&a.Name, form.Name),
		reconcile.Int(&a.Amount, form.Amount),
		reconcile.Int(&a.TicketsQuantityLimit, form.TicketsQuantityLimit),
	)
	if changed {
		a.UpdatedAt = &now
	}

	return changed
}
