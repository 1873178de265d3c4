package handler

import (
	"net/http"

	"outside/internal/delivery/api/response"
	deliverycontext "outside/internal/delivery/context"
	"outside/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateLocationRequest is the body of POST /events/{id}/location. State and
// city are accepted for compatibility but the resolved values always win.
type CreateLocationRequest struct {
	AddressLine1 string  `json:"addressLine1" validate:"required,max=200"`
	AddressLine2 *string `json:"addressLine2" validate:"omitempty,max=200"`
	PostalCode   string  `json:"postalCode" validate:"required,max=20"`
	Country      string  `json:"country" validate:"required,max=100"`
	State        *string `json:"state"`
	City         *string `json:"city"`
}

// UpdateLocationRequest is the body of PUT /events/{id}/location.
type UpdateLocationRequest struct {
	AddressLine1 *string `json:"addressLine1" validate:"omitempty,max=200"`
	AddressLine2 *string `json:"addressLine2" validate:"omitempty,max=200"`
	PostalCode   *string `json:"postalCode" validate:"omitempty,max=20"`
	Country      *string `json:"country" validate:"omitempty,max=100"`
}

// LocationHandler holds dependencies for event location handlers.
type LocationHandler struct {
	uc usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler, injected by Fx.
func NewLocationHandler(uc usecase.LocationUsecase) *LocationHandler {
	return &LocationHandler{uc: uc}
}

// GetLocation returns the location of an event of the caller.
func (h *LocationHandler) GetLocation(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	location, err := h.uc.GetLocation(c.Request().Context(), deliverycontext.GetUserID(c), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLocationData(location))
}

// CreateLocation geocodes the address and attaches it to the event.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CreateLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.uc.CreateLocation(c.Request().Context(), deliverycontext.GetUserID(c), eventID, &usecase.CreateLocationInput{
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newLocationData(location))
}

// UpdateLocation changes the address of the event location.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req UpdateLocationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	location, err := h.uc.UpdateLocation(c.Request().Context(), deliverycontext.GetUserID(c), eventID, &usecase.UpdateLocationInput{
		AddressLine1: req.AddressLine1,
		AddressLine2: req.AddressLine2,
		PostalCode:   req.PostalCode,
		Country:      req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newLocationData(location))
}
