package gormstore

import (
	"context"

	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/repository"
	"outside/internal/errors"
	"outside/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// eventRepository implements repository.EventRepository using GORM.
type eventRepository struct {
	db *gorm.DB
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *gorm.DB) repository.EventRepository {
	return &eventRepository{db: db}
}

// FindByID retrieves an event row without associations.
func (repo *eventRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&eventM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find event by id")
	}

	return toEventDomain(&eventM), nil
}

// FindDetailedByID retrieves an event with owner, location and allotments.
func (repo *eventRepository) FindDetailedByID(ctx context.Context, id uuid.UUID) (*entity.Event, error) {
	var eventM model.EventModel
	err := repo.db.WithContext(ctx).
		Preload("CreatedBy.Identity").
		Preload("Location").
		Preload("TicketAllotments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		Where("id = ?", id).
		First(&eventM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}

		return nil, errors.Wrap(err, "failed to find detailed event by id")
	}

	return toEventDomain(&eventM), nil
}

// List returns every event with its owner and location, newest first.
func (repo *eventRepository) List(ctx context.Context) ([]*entity.Event, error) {
	var eventMs []*model.EventModel
	err := repo.db.WithContext(ctx).
		Preload("CreatedBy.Identity").
		Preload("Location").
		Order("created_at DESC").
		Find(&eventMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events")
	}

	return toEventDomains(eventMs), nil
}

// ListByOwner returns the bare events created by ownerID.
func (repo *eventRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*entity.Event, error) {
	var eventMs []*model.EventModel
	err := repo.db.WithContext(ctx).
		Where("created_by_id = ?", ownerID).
		Order("created_at ASC").
		Find(&eventMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list events by owner")
	}

	return toEventDomains(eventMs), nil
}

// Exists reports whether the event exists, reading from the primary.
func (repo *eventRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.EventModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check event existence")
	}

	return count > 0, nil
}

// Create persists the event row only; children have their own repositories.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	eventM := fromEventDomain(event)
	eventM.Version = 1

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(eventM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserNotFound.WrapMessage("event owner does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create event")
	}
	event.Version = eventM.Version

	return nil
}

// Update writes the event's own columns if the version matches.
func (repo *eventRepository) Update(ctx context.Context, event *entity.Event) error {
	err := updateVersioned(ctx, repo.db, &model.EventModel{}, event.ID, event.Version, map[string]any{
		"name":        event.Name,
		"description": event.Description,
		"starts_at":   event.StartsAt,
		"finishes_at": event.FinishesAt,
		"updated_at":  event.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConcurrencyConflict) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update event")
	}
	event.Version++

	return nil
}

// Delete removes the event row.
func (repo *eventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EventModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete event")
	}
	if result.RowsAffected == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}

func toEventDomains(eventMs []*model.EventModel) []*entity.Event {
	events := make([]*entity.Event, 0, len(eventMs))
	for _, eventM := range eventMs {
		events = append(events, toEventDomain(eventM))
	}

	return events
}

func toEventDomain(data *model.EventModel) *entity.Event {
	event := &entity.Event{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		StartsAt:    data.StartsAt,
		FinishesAt:  data.FinishesAt,
		CreatedByID: data.CreatedByID,
		CreatedBy:   toUserProfileDomain(data.CreatedBy),
		Location:    toEventLocationDomain(data.Location),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Version:     data.Version,
	}
	if data.TicketAllotments != nil {
		event.TicketAllotments = make([]*entity.EventTicketAllotment, 0, len(data.TicketAllotments))
		for i := range data.TicketAllotments {
			event.TicketAllotments = append(event.TicketAllotments, toTicketAllotmentDomain(&data.TicketAllotments[i]))
		}
	}

	return event
}

func fromEventDomain(data *entity.Event) *model.EventModel {
	return &model.EventModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		StartsAt:    data.StartsAt,
		FinishesAt:  data.FinishesAt,
		CreatedByID: data.CreatedByID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
		Version:     data.Version,
	}
}
