package impl

import (
	"context"
	"log/slog"

	deliverycontext "outside/internal/delivery/context"
	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/reconcile"
	"outside/internal/domain/repository"
	"outside/internal/domain/service"
	"outside/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// locationService implements the LocationUsecase interface.
type locationService struct {
	txManager repository.TransactionManager
	eventRepo repository.EventRepository
	resolver  service.AddressResolver
	clock     service.Clock
	notifier  notifier
	logger    *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	EventRepo repository.EventRepository
	Resolver  service.AddressResolver
	Publisher service.EventPublisher
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewLocationService is the constructor for locationService.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		txManager: params.TxManager,
		eventRepo: params.EventRepo,
		resolver:  params.Resolver,
		clock:     params.Clock,
		notifier:  notifier{publisher: params.Publisher, clock: params.Clock, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetLocation returns the location of an owned event.
func (srv *locationService) GetLocation(ctx context.Context, actorID, eventID uuid.UUID) (*entity.EventLocation, error) {
	event, err := resolveOwnedEvent(ctx, srv.eventRepo, eventID, actorID)
	if err != nil {
		return nil, err
	}
	if event.Location == nil {
		return nil, domainerrors.ErrLocationNotFound.WrapMessage("event has no location")
	}

	return event.Location, nil
}

// CreateLocation resolves the address and attaches the location to an owned
// event that has none yet.
func (srv *locationService) CreateLocation(ctx context.Context, actorID, eventID uuid.UUID, input *usecase.CreateLocationInput) (*entity.EventLocation, error) {
	event, err := resolveOwnedEvent(ctx, srv.eventRepo, eventID, actorID)
	if err != nil {
		return nil, err
	}
	if event.Location != nil {
		return nil, domainerrors.ErrLocationAlreadyExists.WrapMessage("event already has a location")
	}

	return srv.createLocation(ctx, actorID, event, entity.AddressQuery{
		AddressLine1: input.AddressLine1,
		AddressLine2: input.AddressLine2,
		PostalCode:   input.PostalCode,
		Country:      input.Country,
	})
}

// UpdateLocation re-resolves the address when line 1, postal code or country
// change and replaces the stored location with the result. A change limited
// to address line 2 is reconciled in place without resolving.
func (srv *locationService) UpdateLocation(ctx context.Context, actorID, eventID uuid.UUID, input *usecase.UpdateLocationInput) (*entity.EventLocation, error) {
	event, err := resolveOwnedEvent(ctx, srv.eventRepo, eventID, actorID)
	if err != nil {
		return nil, err
	}

	location := event.Location
	if location == nil {
		query, complete := completeQuery(input)
		if !complete {
			return nil, domainerrors.ErrLocationNotFound.WrapMessage("event has no location")
		}

		return srv.createLocation(ctx, actorID, event, query)
	}

	now := srv.clock.Now()
	changed := false
	if reconcile.ShouldUpdateString(location.AddressLine1, input.AddressLine1) ||
		reconcile.ShouldUpdateString(location.PostalCode, input.PostalCode) ||
		reconcile.ShouldUpdateString(location.Country, input.Country) {
		query := location.Query()
		reconcile.String(&query.AddressLine1, input.AddressLine1)
		reconcile.String(&query.PostalCode, input.PostalCode)
		reconcile.String(&query.Country, input.Country)
		reconcile.OptionalString(&query.AddressLine2, input.AddressLine2)

		resolved, err := srv.resolver.Resolve(ctx, query)
		if err != nil {
			return nil, err
		}
		location.Replace(*resolved, now)
		changed = true
	} else {
		changed = location.ApplyUpdate(entity.EventLocationUpdate{AddressLine2: input.AddressLine2}, now)
	}

	if !changed {
		srv.log(ctx).Debug("Location update carried no changes", slog.Any("eventID", eventID))

		return location, nil
	}
	event.Touch(now)

	err = runInTransaction(ctx, srv.txManager, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewEventLocationRepository().Update(ctx, location); err != nil {
			return err
		}

		return repoFactory.NewEventRepository().Update(ctx, event)
	}, func(ctx context.Context) (bool, error) {
		return srv.eventRepo.Exists(ctx, eventID)
	}, domainerrors.ErrEventNotFound)
	if err != nil {
		srv.log(ctx).Error("Failed to update location", slog.Any("eventID", eventID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update location")
	}

	srv.notifier.publish(ctx, service.EventLocationUpdated, eventID, actorID)

	return location, nil
}

func (srv *locationService) createLocation(ctx context.Context, actorID uuid.UUID, event *entity.Event, query entity.AddressQuery) (*entity.EventLocation, error) {
	resolved, err := srv.resolver.Resolve(ctx, query)
	if err != nil {
		return nil, err
	}

	now := srv.clock.Now()
	location := entity.NewEventLocation(newID(), event.ID, *resolved, now)
	event.Touch(now)

	err = runInTransaction(ctx, srv.txManager, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewEventLocationRepository().Create(ctx, location); err != nil {
			return err
		}

		return repoFactory.NewEventRepository().Update(ctx, event)
	}, func(ctx context.Context) (bool, error) {
		return srv.eventRepo.Exists(ctx, event.ID)
	}, domainerrors.ErrEventNotFound)
	if err != nil {
		srv.log(ctx).Error("Failed to create location", slog.Any("eventID", event.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create location")
	}

	srv.notifier.publish(ctx, service.EventLocationUpdated, event.ID, actorID)
	srv.log(ctx).Info("Location created", slog.Any("eventID", event.ID), slog.String("city", location.City))

	return location, nil
}

// completeQuery builds a resolver query when the form carries a full address.
func completeQuery(input *usecase.UpdateLocationInput) (entity.AddressQuery, bool) {
	if input.AddressLine1 == nil || *input.AddressLine1 == "" ||
		input.PostalCode == nil || *input.PostalCode == "" ||
		input.Country == nil || *input.Country == "" {
		return entity.AddressQuery{}, false
	}

	return entity.AddressQuery{
		AddressLine1: *input.AddressLine1,
		AddressLine2: input.AddressLine2,
		PostalCode:   *input.PostalCode,
		Country:      *input.Country,
	}, true
}
