package entity

import (
	"time"

	"github.com/google/uuid"

	"outside/internal/domain/reconcile"
)

// Event name length bounds, in characters.
const (
	EventNameMinLength = 3
	EventNameMaxLength = 24
)

// Event is a scheduled happening created by a user. It owns at most one
// EventLocation and any number of ticket allotments.
type Event struct {
	ID               uuid.UUID               // The Global Unique Identifier (GUID) for the event.
	Name             string                  // Display name, 3 to 24 characters.
	Description      string                  // Free-form description.
	StartsAt         time.Time               // When the event starts.
	FinishesAt       time.Time               // When the event finishes.
	CreatedByID      uuid.UUID               // Profile ID of the owner.
	CreatedBy        *UserProfile            // Hydrated owner, nil unless loaded.
	Location         *EventLocation          // Hydrated location, nil when absent or not loaded.
	TicketAllotments []*EventTicketAllotment // Hydrated allotments, nil unless loaded.
	CreatedAt        time.Time               // Timestamp of when the event was created.
	UpdatedAt        *time.Time              // Nil until the first accepted change.
	Version          int64                   // Optimistic concurrency token, bumped on every write.
}

// EventUpdate is a partial update form for the event's own fields.
type EventUpdate struct {
	Name        *string
	Description *string
	StartsAt    *time.Time
	FinishesAt  *time.Time
}

// ApplyUpdate reconciles the form against the event in a fixed field order
// and stamps UpdatedAt only when something changed.
func (e *Event) ApplyUpdate(form EventUpdate, now time.Time) bool {
	changed := reconcile.Any(
		reconcile.String(&e.Name, form.Name),
		reconcile.String(&e.Description, form.Description),
		reconcile.Time(&e.StartsAt, form.StartsAt),
		reconcile.Time(&e.FinishesAt, form.FinishesAt),
	)
	if changed {
		e.UpdatedAt = &now
	}

	return changed
}

// Touch stamps UpdatedAt, used when a dependent entity of the event changed.
func (e *Event) Touch(now time.Time) {
	e.UpdatedAt = &now
}

// IsOwnedBy reports whether profileID created the event.
func (e *Event) IsOwnedBy(profileID uuid.UUID) bool {
	return profileID != uuid.Nil && e.CreatedByID == profileID
}

// HasValidSchedule reports whether the event does not finish before it starts.
func (e *Event) HasValidSchedule() bool {
	return !e.FinishesAt.Before(e.StartsAt)
}

// ValidEventName reports whether name fits the length bounds.
func ValidEventName(name string) bool {
	n := len([]rune(name))

	return n >= EventNameMinLength && n <= EventNameMaxLength
}
