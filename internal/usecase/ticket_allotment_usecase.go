package usecase

import (
	"context"

	"outside/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateTicketAllotmentInput defines the data required to create an allotment.
type CreateTicketAllotmentInput struct {
	Name                 string
	Amount               int
	TicketsQuantityLimit int
}

// TicketAllotmentUsecase defines the operations on the allotments of an event.
type TicketAllotmentUsecase interface {
	ListAllotments(ctx context.Context, eventID uuid.UUID) ([]*entity.EventTicketAllotment, error)
	GetAllotment(ctx context.Context, eventID, allotmentID uuid.UUID) (*entity.EventTicketAllotment, error)
	CreateAllotment(ctx context.Context, actorID, eventID uuid.UUID, input *CreateTicketAllotmentInput) (*entity.EventTicketAllotment, error)
	UpdateAllotment(ctx context.Context, actorID, eventID, allotmentID uuid.UUID, input *entity.TicketAllotmentUpdate) (*entity.EventTicketAllotment, error)
	DeleteAllotment(ctx context.Context, actorID, eventID, allotmentID uuid.UUID) error
}
