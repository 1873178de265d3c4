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
)

// eventLocationRepository implements repository.EventLocationRepository using GORM.
type eventLocationRepository struct {
	db *gorm.DB
}

// NewEventLocationRepository is the constructor for eventLocationRepository.
func NewEventLocationRepository(db *gorm.DB) repository.EventLocationRepository {
	return &eventLocationRepository{db: db}
}

// FindByEventID retrieves the location of an event.
func (repo *eventLocationRepository) FindByEventID(ctx context.Context, eventID uuid.UUID) (*entity.EventLocation, error) {
	var locationM model.EventLocationModel
	if err := repo.db.WithContext(ctx).Where("event_id = ?", eventID).First(&locationM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrLocationNotFound
		}

		return nil, errors.Wrap(err, "failed to find location by event id")
	}

	return toEventLocationDomain(&locationM), nil
}

// Create persists a new location; the unique index on event_id rejects a second one.
func (repo *eventLocationRepository) Create(ctx context.Context, location *entity.EventLocation) error {
	locationM := fromEventLocationDomain(location)
	locationM.Version = 1

	if err := repo.db.WithContext(ctx).Create(locationM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLocationAlreadyExists.WrapMessage("event already has a location")
		}
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEventNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create location")
	}
	location.Version = locationM.Version

	return nil
}

// Update writes every address column if the version matches.
func (repo *eventLocationRepository) Update(ctx context.Context, location *entity.EventLocation) error {
	err := updateVersioned(ctx, repo.db, &model.EventLocationModel{}, location.ID, location.Version, map[string]any{
		"latitude":      location.Latitude,
		"longitude":     location.Longitude,
		"country":       location.Country,
		"state":         location.State,
		"city":          location.City,
		"postal_code":   location.PostalCode,
		"address_line1": location.AddressLine1,
		"address_line2": location.AddressLine2,
		"updated_at":    location.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConcurrencyConflict) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update location")
	}
	location.Version++

	return nil
}

// DeleteByEventID removes the location of an event, if any.
func (repo *eventLocationRepository) DeleteByEventID(ctx context.Context, eventID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&model.EventLocationModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete location")
	}

	return nil
}

func toEventLocationDomain(data *model.EventLocationModel) *entity.EventLocation {
	if data == nil {
		return nil
	}

	return &entity.EventLocation{
		ID:           data.ID,
		EventID:      data.EventID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Country:      data.Country,
		State:        data.State,
		City:         data.City,
		PostalCode:   data.PostalCode,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Version:      data.Version,
	}
}

func fromEventLocationDomain(data *entity.EventLocation) *model.EventLocationModel {
	return &model.EventLocationModel{
		ID:           data.ID,
		EventID:      data.EventID,
		Latitude:     data.Latitude,
		Longitude:    data.Longitude,
		Country:      data.Country,
		State:        data.State,
		City:         data.City,
		PostalCode:   data.PostalCode,
		AddressLine1: data.AddressLine1,
		AddressLine2: data.AddressLine2,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Version:      data.Version,
	}
}
