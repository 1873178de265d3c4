package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/paulmach/orb"

	"outside/internal/domain/reconcile"
)

// EventLocation is the geocoded place where an event happens.
type EventLocation struct {
	ID           uuid.UUID  // The Global Unique Identifier (GUID) for the location.
	EventID      uuid.UUID  // The event this location belongs to.
	Latitude     float64    // The geographic latitude.
	Longitude    float64    // The geographic longitude.
	Country      string     // Country name as reported by the resolver.
	State        string     // First-level administrative area.
	City         string     // Second-level administrative area.
	PostalCode   string     // Postal code as supplied by the caller.
	AddressLine1 string     // Composed street address.
	AddressLine2 *string    // Optional complement as supplied by the caller.
	CreatedAt    time.Time  // Timestamp of when the location was created.
	UpdatedAt    *time.Time // Nil until the first accepted change.
	Version      int64      // Optimistic concurrency token, bumped on every write.
}

// AddressQuery is the postal address a caller wants resolved.
type AddressQuery struct {
	AddressLine1 string
	AddressLine2 *string
	PostalCode   string
	Country      string
}

// String renders the free-form query sent to the resolver. AddressLine2 is
// not part of the query.
func (q AddressQuery) String() string {
	return strings.Join([]string{q.AddressLine1, q.PostalCode, q.Country}, ", ")
}

// ResolvedLocation is a normalized address produced by the resolver.
type ResolvedLocation struct {
	Point        orb.Point // Longitude, latitude.
	Country      string
	State        string
	City         string
	PostalCode   string
	AddressLine1 string
	AddressLine2 *string
}

// EventLocationUpdate is a partial update form applied field by field.
type EventLocationUpdate struct {
	Latitude     *float64
	Longitude    *float64
	Country      *string
	State        *string
	City         *string
	PostalCode   *string
	AddressLine1 *string
	AddressLine2 *string
}

// IsEmpty reports whether the form carries no candidate at all.
func (u EventLocationUpdate) IsEmpty() bool {
	return u.Latitude == nil && u.Longitude == nil && u.Country == nil && u.State == nil &&
		u.City == nil && u.PostalCode == nil && u.AddressLine1 == nil && u.AddressLine2 == nil
}

// NewEventLocation builds a location for eventID from a resolved address.
func NewEventLocation(id, eventID uuid.UUID, resolved ResolvedLocation, now time.Time) *EventLocation {
	loc := &EventLocation{
		ID:        id,
		EventID:   eventID,
		CreatedAt: now,
	}
	loc.assign(resolved)

	return loc
}

// Replace overwrites every address field with a freshly resolved location and
// stamps UpdatedAt. No field-by-field comparison is done.
func (l *EventLocation) Replace(resolved ResolvedLocation, now time.Time) {
	l.assign(resolved)
	l.UpdatedAt = &now
}

// ApplyUpdate reconciles a partial form field by field and stamps UpdatedAt
// only when something changed.
func (l *EventLocation) ApplyUpdate(form EventLocationUpdate, now time.Time) bool {
	changed := reconcile.Any(
		reconcile.Float(&l.Latitude, form.Latitude),
		reconcile.Float(&l.Longitude, form.Longitude),
		reconcile.String(&l.Country, form.Country),
		reconcile.String(&l.State, form.State),
		reconcile.String(&l.City, form.City),
		reconcile.String(&l.PostalCode, form.PostalCode),
		reconcile.String(&l.AddressLine1, form.AddressLine1),
		reconcile.OptionalString(&l.AddressLine2, form.AddressLine2),
	)
	if changed {
		l.UpdatedAt = &now
	}

	return changed
}

// Point returns the location as an orb point (longitude, latitude).
func (l *EventLocation) Point() orb.Point {
	return orb.Point{l.Longitude, l.Latitude}
}

// Query returns the address of the stored location as a resolver query.
func (l *EventLocation) Query() AddressQuery {
	return AddressQuery{
		AddressLine1: l.AddressLine1,
		AddressLine2: l.AddressLine2,
		PostalCode:   l.PostalCode,
		Country:      l.Country,
	}
}

func (l *EventLocation) assign(resolved ResolvedLocation) {
	l.Longitude = resolved.Point.Lon()
	l.Latitude = resolved.Point.Lat()
	l.Country = resolved.Country
	l.State = resolved.State
	l.City = resolved.City
	l.PostalCode = resolved.PostalCode
	l.AddressLine1 = resolved.AddressLine1
	l.AddressLine2 = nil
	if resolved.AddressLine2 != nil {
		line2 := *resolved.AddressLine2
		l.AddressLine2 = &line2
	}
}
