package handler

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"outside/config"
	"outside/internal/delivery/api/response"
	deliverycontext "outside/internal/delivery/context"
	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
)

// CreateEventRequest is the body of POST /events.
type CreateEventRequest struct {
	Name        string    `json:"name" validate:"required,min=3,max=24"`
	Description string    `json:"description" validate:"max=2000"`
	StartsAt    time.Time `json:"startsAt" validate:"required"`
	FinishesAt  time.Time `json:"finishesAt" validate:"required"`
}

// UpdateEventRequest is the body of PUT /events/{id}. The location fields
// apply to the event's existing location and are ignored when it has none.
type UpdateEventRequest struct {
	Name         *string    `json:"name"`
	Description  *string    `json:"description"`
	StartsAt     *time.Time `json:"startsAt"`
	FinishesAt   *time.Time `json:"finishesAt"`
	Latitude     *float64   `json:"latitude" validate:"omitempty,latitude"`
	Longitude    *float64   `json:"longitude" validate:"omitempty,longitude"`
	Country      *string    `json:"country"`
	State        *string    `json:"state"`
	City         *string    `json:"city"`
	PostalCode   *string    `json:"postalCode"`
	AddressLine1 *string    `json:"addressLine1"`
	AddressLine2 *string    `json:"addressLine2"`
}

// EventHandler holds dependencies for event handlers.
type EventHandler struct {
	uc                    usecase.EventUsecase
	defaultNearbyRadiusKm float64
}

// NewEventHandler is the constructor for EventHandler, injected by Fx.
func NewEventHandler(uc usecase.EventUsecase, cfg *config.Config) *EventHandler {
	h := &EventHandler{uc: uc}
	if cfg.Events != nil {
		h.defaultNearbyRadiusKm = cfg.Events.DefaultNearbyRadiusKm
	}

	return h
}

// ListEvents returns every event, optionally restricted by ?near=lat,lng&radiusKm=.
func (h *EventHandler) ListEvents(c echo.Context) error {
	filter, err := h.nearbyFilter(c)
	if err != nil {
		return err
	}

	events, err := h.uc.ListEvents(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEventDataList(events))
}

// GetEvent returns one event with its location and allotments.
func (h *EventHandler) GetEvent(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	event, err := h.uc.GetEvent(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEventData(event))
}

// CreateEvent creates an event owned by the caller.
func (h *EventHandler) CreateEvent(c echo.Context) error {
	var req CreateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.uc.CreateEvent(c.Request().Context(), deliverycontext.GetUserID(c), &usecase.CreateEventInput{
		Name:        req.Name,
		Description: req.Description,
		StartsAt:    req.StartsAt,
		FinishesAt:  req.FinishesAt,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newEventData(event))
}

// UpdateEvent applies a partial update to an event of the caller.
func (h *EventHandler) UpdateEvent(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateEventRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	event, err := h.uc.UpdateEvent(c.Request().Context(), deliverycontext.GetUserID(c), eventID, &usecase.UpdateEventInput{
		Event: entity.EventUpdate{
			Name:        req.Name,
			Description: req.Description,
			StartsAt:    req.StartsAt,
			FinishesAt:  req.FinishesAt,
		},
		Location: entity.EventLocationUpdate{
			Latitude:     req.Latitude,
			Longitude:    req.Longitude,
			Country:      req.Country,
			State:        req.State,
			City:         req.City,
			PostalCode:   req.PostalCode,
			AddressLine1: req.AddressLine1,
			AddressLine2: req.AddressLine2,
		},
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newEventData(event))
}

// DeleteEvent removes an event of the caller.
func (h *EventHandler) DeleteEvent(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.uc.DeleteEvent(c.Request().Context(), deliverycontext.GetUserID(c), eventID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

// GetEventQRCode renders a PNG QR code linking to the event.
func (h *EventHandler) GetEventQRCode(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	png, err := h.uc.GetEventQRCode(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *EventHandler) nearbyFilter(c echo.Context) (*usecase.NearbyFilter, error) {
	near := c.QueryParam("near")
	if near == "" {
		return nil, nil
	}

	latRaw, lngRaw, ok := strings.Cut(near, ",")
	if !ok {
		return nil, domainerrors.ErrValidationFailed.WithDetails("near: expected lat,lng")
	}
	lat, latErr := strconv.ParseFloat(strings.TrimSpace(latRaw), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(lngRaw), 64)
	if latErr != nil || lngErr != nil || lat < -90 || lat > 90 || lng < -180 || lng > 180 {
		return nil, domainerrors.ErrValidationFailed.WithDetails("near: expected lat,lng in degrees")
	}

	radiusKm := h.defaultNearbyRadiusKm
	if raw := c.QueryParam("radiusKm"); raw != "" {
		parsed, err := strconv.ParseFloat(raw, 64)
		if err != nil || parsed <= 0 {
			return nil, domainerrors.ErrValidationFailed.WithDetails("radiusKm: expected a positive number")
		}
		radiusKm = parsed
	}

	return &usecase.NearbyFilter{Center: orb.Point{lng, lat}, RadiusKm: radiusKm}, nil
}
