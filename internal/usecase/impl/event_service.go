package impl

import (
	"context"
	"log/slog"

	deliverycontext "outside/internal/delivery/context"
	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/repository"
	"outside/internal/domain/service"
	"outside/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// eventService implements the EventUsecase interface.
type eventService struct {
	txManager repository.TransactionManager
	eventRepo repository.EventRepository
	qrCode    service.QRCodeService
	clock     service.Clock
	notifier  notifier
	logger    *slog.Logger
}

// EventServiceParams holds dependencies for EventService, injected by Fx.
type EventServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	EventRepo repository.EventRepository
	QRCode    service.QRCodeService
	Publisher service.EventPublisher
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewEventService is the constructor for eventService.
func NewEventService(params EventServiceParams) usecase.EventUsecase {
	return &eventService{
		txManager: params.TxManager,
		eventRepo: params.EventRepo,
		qrCode:    params.QRCode,
		clock:     params.Clock,
		notifier:  notifier{publisher: params.Publisher, clock: params.Clock, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *eventService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListEvents returns every event, or only the located events within the
// filter radius when a filter is given.
func (srv *eventService) ListEvents(ctx context.Context, filter *usecase.NearbyFilter) ([]*entity.Event, error) {
	events, err := srv.eventRepo.List(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}
	if filter == nil {
		return events, nil
	}

	radiusMeters := filter.RadiusKm * 1000
	nearby := make([]*entity.Event, 0, len(events))
	for _, event := range events {
		if event.Location == nil {
			continue
		}
		if geo.DistanceHaversine(filter.Center, event.Location.Point()) <= radiusMeters {
			nearby = append(nearby, event)
		}
	}
	srv.log(ctx).Debug("Filtered events by distance",
		slog.Int("total", len(events)),
		slog.Int("nearby", len(nearby)),
		slog.Float64("radius_km", filter.RadiusKm),
	)

	return nearby, nil
}

// GetEvent retrieves an event with its owner, location and allotments.
func (srv *eventService) GetEvent(ctx context.Context, eventID uuid.UUID) (*entity.Event, error) {
	event, err := srv.eventRepo.FindDetailedByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return nil, domainerrors.ErrEventNotFound.WrapMessage("event not found")
		}

		return nil, errors.Wrap(err, "failed to find event")
	}

	return event, nil
}

// CreateEvent creates an event owned by the acting user.
func (srv *eventService) CreateEvent(ctx context.Context, actorID uuid.UUID, input *usecase.CreateEventInput) (*entity.Event, error) {
	if actorID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("acting user is missing")
	}
	if !entity.ValidEventName(input.Name) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("event name must have between 3 and 24 characters")
	}

	event := &entity.Event{
		ID:          newID(),
		Name:        input.Name,
		Description: input.Description,
		StartsAt:    input.StartsAt,
		FinishesAt:  input.FinishesAt,
		CreatedByID: actorID,
		CreatedAt:   srv.clock.Now(),
	}
	if !event.HasValidSchedule() {
		return nil, domainerrors.ErrInvalidSchedule.WrapMessage("event finishes before it starts")
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewEventRepository().Create(ctx, event)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create event", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create event")
	}

	srv.notifier.publish(ctx, service.EventCreated, event.ID, actorID)
	srv.log(ctx).Info("Event created", slog.Any("eventID", event.ID))

	return srv.GetEvent(ctx, event.ID)
}

// UpdateEvent applies a partial update to an owned event and, when the event
// has a location, to that location field by field. Both rows are written in
// one transaction; nothing is written when no field changed.
func (srv *eventService) UpdateEvent(ctx context.Context, actorID, eventID uuid.UUID, input *usecase.UpdateEventInput) (*entity.Event, error) {
	event, err := resolveOwnedEvent(ctx, srv.eventRepo, eventID, actorID)
	if err != nil {
		return nil, err
	}
	if name := input.Event.Name; name != nil && *name != "" && !entity.ValidEventName(*name) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("event name must have between 3 and 24 characters")
	}

	now := srv.clock.Now()
	eventChanged := event.ApplyUpdate(input.Event, now)
	if !event.HasValidSchedule() {
		return nil, domainerrors.ErrInvalidSchedule.WrapMessage("event finishes before it starts")
	}

	locationChanged := false
	if event.Location != nil && !input.Location.IsEmpty() {
		locationChanged = event.Location.ApplyUpdate(input.Location, now)
	}

	if !eventChanged && !locationChanged {
		srv.log(ctx).Debug("Event update carried no changes", slog.Any("eventID", eventID))

		return event, nil
	}
	if !eventChanged {
		event.Touch(now)
	}

	err = runInTransaction(ctx, srv.txManager, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewEventRepository().Update(ctx, event); err != nil {
			return err
		}
		if locationChanged {
			return repoFactory.NewEventLocationRepository().Update(ctx, event.Location)
		}

		return nil
	}, func(ctx context.Context) (bool, error) {
		return srv.eventRepo.Exists(ctx, eventID)
	}, domainerrors.ErrEventNotFound)
	if err != nil {
		srv.log(ctx).Error("Failed to update event", slog.Any("eventID", eventID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update event")
	}

	srv.notifier.publish(ctx, service.EventUpdated, eventID, actorID)

	return event, nil
}

// DeleteEvent removes an owned event with its location and allotments.
func (srv *eventService) DeleteEvent(ctx context.Context, actorID, eventID uuid.UUID) error {
	if _, err := resolveOwnedEvent(ctx, srv.eventRepo, eventID, actorID); err != nil {
		return err
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return deleteEventTree(ctx, repoFactory, eventID)
	})
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			return domainerrors.ErrEventNotFound.WrapMessage("event removed by a concurrent request")
		}
		srv.log(ctx).Error("Failed to delete event", slog.Any("eventID", eventID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete event")
	}

	srv.notifier.publish(ctx, service.EventDeleted, eventID, actorID)

	return nil
}

// GetEventQRCode renders a QR code for the public page of an event.
func (srv *eventService) GetEventQRCode(ctx context.Context, eventID uuid.UUID) ([]byte, error) {
	exists, err := srv.eventRepo.Exists(ctx, eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check event")
	}
	if !exists {
		return nil, domainerrors.ErrEventNotFound.WrapMessage("event not found")
	}

	png, err := srv.qrCode.GenerateEventQR(eventID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate event QR code")
	}

	return png, nil
}

// deleteEventTree removes the children of an event before the event row.
func deleteEventTree(ctx context.Context, repoFactory repository.RepositoryFactory, eventID uuid.UUID) error {
	if err := repoFactory.NewTicketAllotmentRepository().DeleteByEventID(ctx, eventID); err != nil {
		return err
	}
	if err := repoFactory.NewEventLocationRepository().DeleteByEventID(ctx, eventID); err != nil {
		return err
	}

	return repoFactory.NewEventRepository().Delete(ctx, eventID)
}
