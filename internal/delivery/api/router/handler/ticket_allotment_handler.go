package handler

import (
	"net/http"

	"outside/internal/delivery/api/response"
	deliverycontext "outside/internal/delivery/context"
	"outside/internal/domain/entity"
	"outside/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CreateTicketAllotmentRequest is the body of POST /events/{id}/ticket_allotments.
type CreateTicketAllotmentRequest struct {
	Name                 string `json:"name" validate:"required,max=100"`
	PaymentAmount        int    `json:"paymentAmount" validate:"min=0"`
	TicketsQuantityLimit int    `json:"ticketsQuantityLimit" validate:"min=0"`
}

// UpdateTicketAllotmentRequest is the body of PUT /events/{id}/ticket_allotments/{allotmentId}.
// Negative numbers are ignored like absent ones.
type UpdateTicketAllotmentRequest struct {
	Name                 *string `json:"name" validate:"omitempty,max=100"`
	PaymentAmount        *int    `json:"paymentAmount"`
	TicketsQuantityLimit *int    `json:"ticketsQuantityLimit"`
}

// TicketAllotmentHandler holds dependencies for ticket allotment handlers.
type TicketAllotmentHandler struct {
	uc usecase.TicketAllotmentUsecase
}

// NewTicketAllotmentHandler is the constructor for TicketAllotmentHandler, injected by Fx.
func NewTicketAllotmentHandler(uc usecase.TicketAllotmentUsecase) *TicketAllotmentHandler {
	return &TicketAllotmentHandler{uc: uc}
}

// ListAllotments returns the allotments of an event.
func (h *TicketAllotmentHandler) ListAllotments(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	allotments, err := h.uc.ListAllotments(c.Request().Context(), eventID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTicketAllotmentDataList(allotments))
}

// GetAllotment returns one allotment of an event.
func (h *TicketAllotmentHandler) GetAllotment(c echo.Context) error {
	eventID, allotmentID, err := allotmentPath(c)
	if err != nil {
		return err
	}

	allotment, err := h.uc.GetAllotment(c.Request().Context(), eventID, allotmentID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTicketAllotmentData(allotment))
}

// CreateAllotment adds an allotment to an event of the caller.
func (h *TicketAllotmentHandler) CreateAllotment(c echo.Context) error {
	eventID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req CreateTicketAllotmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	allotment, err := h.uc.CreateAllotment(c.Request().Context(), deliverycontext.GetUserID(c), eventID, &usecase.CreateTicketAllotmentInput{
		Name:                 req.Name,
		Amount:               req.PaymentAmount,
		TicketsQuantityLimit: req.TicketsQuantityLimit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, newTicketAllotmentData(allotment))
}

// UpdateAllotment applies a partial update to an allotment.
func (h *TicketAllotmentHandler) UpdateAllotment(c echo.Context) error {
	eventID, allotmentID, err := allotmentPath(c)
	if err != nil {
		return err
	}

	var req UpdateTicketAllotmentRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	allotment, err := h.uc.UpdateAllotment(c.Request().Context(), deliverycontext.GetUserID(c), eventID, allotmentID, &entity.TicketAllotmentUpdate{
		Name:                 req.Name,
		Amount:               req.PaymentAmount,
		TicketsQuantityLimit: req.TicketsQuantityLimit,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTicketAllotmentData(allotment))
}

// DeleteAllotment removes an allotment.
func (h *TicketAllotmentHandler) DeleteAllotment(c echo.Context) error {
	eventID, allotmentID, err := allotmentPath(c)
	if err != nil {
		return err
	}

	if err := h.uc.DeleteAllotment(c.Request().Context(), deliverycontext.GetUserID(c), eventID, allotmentID); err != nil {
		return errors.WithStack(err)
	}

	return response.NoContent(c)
}

func allotmentPath(c echo.Context) (eventID, allotmentID uuid.UUID, err error) {
	if eventID, err = pathID(c, "id"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	if allotmentID, err = pathID(c, "allotmentId"); err != nil {
		return uuid.Nil, uuid.Nil, err
	}

	return eventID, allotmentID, nil
}
