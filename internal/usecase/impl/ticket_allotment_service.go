package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "outside/internal/delivery/context"
	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/repository"
	"outside/internal/domain/service"
	"outside/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ticketAllotmentService implements the TicketAllotmentUsecase interface.
type ticketAllotmentService struct {
	txManager     repository.TransactionManager
	eventRepo     repository.EventRepository
	allotmentRepo repository.TicketAllotmentRepository
	clock         service.Clock
	notifier      notifier
	logger        *slog.Logger
}

// TicketAllotmentServiceParams holds dependencies for TicketAllotmentService, injected by Fx.
type TicketAllotmentServiceParams struct {
	fx.In

	TxManager     repository.TransactionManager
	EventRepo     repository.EventRepository
	AllotmentRepo repository.TicketAllotmentRepository
	Publisher     service.EventPublisher
	Clock         service.Clock
	Logger        *slog.Logger
}

// NewTicketAllotmentService is the constructor for ticketAllotmentService.
func NewTicketAllotmentService(params TicketAllotmentServiceParams) usecase.TicketAllotmentUsecase {
	return &ticketAllotmentService{
		txManager:     params.TxManager,
		eventRepo:     params.EventRepo,
		allotmentRepo: params.AllotmentRepo,
		clock:         params.Clock,
		notifier:      notifier{publisher: params.Publisher, clock: params.Clock, logger: params.Logger},
		logger:        params.Logger,
	}
}

func (srv *ticketAllotmentService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListAllotments returns the allotments of an event.
func (srv *ticketAllotmentService) ListAllotments(ctx context.Context, eventID uuid.UUID) ([]*entity.EventTicketAllotment, error) {
	exists, err := srv.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check event")
	}
	if !exists {
		return nil, domainerrors.ErrEventNotFound.WrapMessage("event not found")
	}

	allotments, err := srv.allotmentRepo.ListByEventID(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list allotments")
	}

	return allotments, nil
}

// GetAllotment returns one allotment of an event.
func (srv *ticketAllotmentService) GetAllotment(ctx context.Context, eventID, allotmentID uuid.UUID) (*entity.EventTicketAllotment, error) {
	allotment, err := srv.allotmentRepo.FindByID(ctx, allotmentID)
	if err != nil {
		if errors.Is(err, repository.ErrTicketAllotmentNotFound) {
			return nil, domainerrors.ErrTicketAllotmentNotFound.WrapMessage("allotment not found")
		}

		return nil, errors.Wrap(err, "failed to find allotment")
	}
	if allotment.EventID != eventID {
		return nil, domainerrors.ErrTicketAllotmentNotFound.WrapMessage("allotment belongs to another event")
	}

	return allotment, nil
}

// CreateAllotment adds an allotment to an owned event.
func (srv *ticketAllotmentService) CreateAllotment(ctx context.Context, actorID, eventID uuid.UUID, input *usecase.CreateTicketAllotmentInput) (*entity.EventTicketAllotment, error) {
	event, err := resolveOwnedEvent(ctx, srv.eventRepo, eventID, actorID)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(input.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("allotment name is required")
	}
	if input.Amount < 0 || input.TicketsQuantityLimit < 0 {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("amount and quantity limit must not be negative")
	}

	allotment := &entity.EventTicketAllotment{
		ID:                   newID(),
		EventID:              event.ID,
		Name:                 input.Name,
		Amount:               input.Amount,
		TicketsQuantityLimit: input.TicketsQuantityLimit,
		CreatedAt:            srv.clock.Now(),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewTicketAllotmentRepository().Create(ctx, allotment)
	})
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound.WrapMessage("event removed by a concurrent request")
		}
		srv.log(ctx).Error("Failed to create allotment", slog.Any("eventID", eventID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create allotment")
	}

	srv.notifier.publish(ctx, service.EventUpdated, eventID, actorID)

	return allotment, nil
}

// UpdateAllotment applies a partial update to an allotment of an owned event.
func (srv *ticketAllotmentService) UpdateAllotment(
	ctx context.Context,
	actorID, eventID, allotmentID uuid.UUID,
	input *entity.TicketAllotmentUpdate,
) (*entity.EventTicketAllotment, error) {
	allotment, err := srv.ownedAllotment(ctx, actorID, eventID, allotmentID)
	if err != nil {
		return nil, err
	}

	if !allotment.ApplyUpdate(*input, srv.clock.Now()) {
		return allotment, nil
	}

	err = runInTransaction(ctx, srv.txManager, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewTicketAllotmentRepository().Update(ctx, allotment)
	}, func(ctx context.Context) (bool, error) {
		return srv.allotmentRepo.Exists(ctx, allotmentID)
	}, domainerrors.ErrTicketAllotmentNotFound)
	if err != nil {
		srv.log(ctx).Error("Failed to update allotment", slog.Any("allotmentID", allotmentID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update allotment")
	}

	srv.notifier.publish(ctx, service.EventUpdated, eventID, actorID)

	return allotment, nil
}

// DeleteAllotment removes an allotment of an owned event.
func (srv *ticketAllotmentService) DeleteAllotment(ctx context.Context, actorID, eventID, allotmentID uuid.UUID) error {
	if _, err := srv.ownedAllotment(ctx, actorID, eventID, allotmentID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewTicketAllotmentRepository().Delete(ctx, allotmentID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrTicketAllotmentNotFound) {
			return domainerrors.ErrTicketAllotmentNotFound.WrapMessage("allotment removed by a concurrent request")
		}

		return errors.Wrap(err, "failed to delete allotment")
	}

	srv.notifier.publish(ctx, service.EventUpdated, eventID, actorID)

	return nil
}

func (srv *ticketAllotmentService) ownedAllotment(ctx context.Context, actorID, eventID, allotmentID uuid.UUID) (*entity.EventTicketAllotment, error) {
	event, err := resolveOwnedEvent(ctx, srv.eventRepo, eventID, actorID)
	if err != nil {
		return nil, err
	}

	for _, allotment := range event.TicketAllotments {
		if allotment.ID == allotmentID {
			return allotment, nil
		}
	}

	return nil, domainerrors.ErrTicketAllotmentNotFound.WrapMessage("allotment not found")
}
