package handler

import (
	"time"

	"outside/internal/domain/entity"

	"github.com/google/uuid"
)

// UserData is the public representation of a user profile.
type UserData struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email,omitempty"`
	FirstName string     `json:"firstName"`
	LastName  string     `json:"lastName"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
}

// LocationData is the public representation of an event location.
type LocationData struct {
	ID           uuid.UUID  `json:"id"`
	Latitude     float64    `json:"latitude"`
	Longitude    float64    `json:"longitude"`
	Country      string     `json:"country"`
	State        string     `json:"state"`
	City         string     `json:"city"`
	PostalCode   string     `json:"postalCode"`
	AddressLine1 string     `json:"addressLine1"`
	AddressLine2 *string    `json:"addressLine2"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

// TicketAllotmentData is the public representation of a ticket allotment.
type TicketAllotmentData struct {
	ID                   uuid.UUID  `json:"id"`
	EventID              uuid.UUID  `json:"eventId"`
	Name                 string     `json:"name"`
	PaymentAmount        int        `json:"paymentAmount"`
	TicketsQuantityLimit int        `json:"ticketsQuantityLimit"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            *time.Time `json:"updatedAt"`
}

// EventData is the public representation of an event.
type EventData struct {
	ID               uuid.UUID             `json:"id"`
	Name             string                `json:"name"`
	Description      string                `json:"description"`
	StartsAt         time.Time             `json:"startsAt"`
	FinishesAt       time.Time             `json:"finishesAt"`
	CreatedBy        *UserData             `json:"createdBy"`
	Location         *LocationData         `json:"location"`
	TicketAllotments []TicketAllotmentData `json:"ticketAllotments,omitempty"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        *time.Time            `json:"updatedAt"`
}

func newUserData(profile *entity.UserProfile) *UserData {
	if profile == nil {
		return nil
	}

	return &UserData{
		ID:        profile.ID,
		Email:     profile.Email(),
		FirstName: profile.FirstName,
		LastName:  profile.LastName,
		CreatedAt: profile.CreatedAt,
		UpdatedAt: profile.UpdatedAt,
	}
}

func newUserDataList(profiles []*entity.UserProfile) []*UserData {
	data := make([]*UserData, 0, len(profiles))
	for _, profile := range profiles {
		data = append(data, newUserData(profile))
	}

	return data
}

func newLocationData(location *entity.EventLocation) *LocationData {
	if location == nil {
		return nil
	}

	return &LocationData{
		ID:           location.ID,
		Latitude:     location.Latitude,
		Longitude:    location.Longitude,
		Country:      location.Country,
		State:        location.State,
		City:         location.City,
		PostalCode:   location.PostalCode,
		AddressLine1: location.AddressLine1,
		AddressLine2: location.AddressLine2,
		CreatedAt:    location.CreatedAt,
		UpdatedAt:    location.UpdatedAt,
	}
}

func newTicketAllotmentData(allotment *entity.EventTicketAllotment) TicketAllotmentData {
	return TicketAllotmentData{
		ID:                   allotment.ID,
		EventID:              allotment.EventID,
		Name:                 allotment.Name,
		PaymentAmount:        allotment.Amount,
		TicketsQuantityLimit: allotment.TicketsQuantityLimit,
		CreatedAt:            allotment.CreatedAt,
		UpdatedAt:            allotment.UpdatedAt,
	}
}

func newTicketAllotmentDataList(allotments []*entity.EventTicketAllotment) []TicketAllotmentData {
	data := make([]TicketAllotmentData, 0, len(allotments))
	for _, allotment := range allotments {
		data = append(data, newTicketAllotmentData(allotment))
	}

	return data
}

func newEventData(event *entity.Event) *EventData {
	data := &EventData{
		ID:          event.ID,
		Name:        event.Name,
		Description: event.Description,
		StartsAt:    event.StartsAt,
		FinishesAt:  event.FinishesAt,
		CreatedBy:   newUserData(event.CreatedBy),
		Location:    newLocationData(event.Location),
		CreatedAt:   event.CreatedAt,
		UpdatedAt:   event.UpdatedAt,
	}
	if event.TicketAllotments != nil {
		data.TicketAllotments = newTicketAllotmentDataList(event.TicketAllotments)
	}
	// Owner emails are not exposed on public event payloads.
	if data.CreatedBy != nil {
		data.CreatedBy.Email = ""
	}

	return data
}

func newEventDataList(events []*entity.Event) []*EventData {
	data := make([]*EventData, 0, len(events))
	for _, event := range events {
		data = append(data, newEventData(event))
	}

	return data
}
