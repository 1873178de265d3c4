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
	"gorm.io/plugin/dbresolver"
)

// ticketAllotmentRepository implements repository.TicketAllotmentRepository using GORM.
type ticketAllotmentRepository struct {
	db *gorm.DB
}

// NewTicketAllotmentRepository is the constructor for ticketAllotmentRepository.
func NewTicketAllotmentRepository(db *gorm.DB) repository.TicketAllotmentRepository {
	return &ticketAllotmentRepository{db: db}
}

// FindByID retrieves an allotment by its ID.
func (repo *ticketAllotmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.EventTicketAllotment, error) {
	var allotmentM model.EventTicketAllotmentModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&allotmentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrTicketAllotmentNotFound
		}

		return nil, errors.Wrap(err, "failed to find ticket allotment by id")
	}

	return toTicketAllotmentDomain(&allotmentM), nil
}

// ListByEventID returns the allotments of an event, oldest first.
func (repo *ticketAllotmentRepository) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*entity.EventTicketAllotment, error) {
	var allotmentMs []*model.EventTicketAllotmentModel
	err := repo.db.WithContext(ctx).
		Where("event_id = ?", eventID).
		Order("created_at ASC").
		Find(&allotmentMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list ticket allotments")
	}

	allotments := make([]*entity.EventTicketAllotment, 0, len(allotmentMs))
	for _, allotmentM := range allotmentMs {
		allotments = append(allotments, toTicketAllotmentDomain(allotmentM))
	}

	return allotments, nil
}

// Exists reports whether the allotment exists, reading from the primary.
func (repo *ticketAllotmentRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.EventTicketAllotmentModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check ticket allotment existence")
	}

	return count > 0, nil
}

// Create persists a new allotment.
func (repo *ticketAllotmentRepository) Create(ctx context.Context, allotment *entity.EventTicketAllotment) error {
	allotmentM := fromTicketAllotmentDomain(allotment)
	allotmentM.Version = 1

	if err := repo.db.WithContext(ctx).Create(allotmentM).Error; err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrEventNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create ticket allotment")
	}
	allotment.Version = allotmentM.Version

	return nil
}

// Update writes the allotment if the version matches.
func (repo *ticketAllotmentRepository) Update(ctx context.Context, allotment *entity.EventTicketAllotment) error {
	err := updateVersioned(ctx, repo.db, &model.EventTicketAllotmentModel{}, allotment.ID, allotment.Version, map[string]any{
		"name":                   allotment.Name,
		"amount":                 allotment.Amount,
		"tickets_quantity_limit": allotment.TicketsQuantityLimit,
		"updated_at":             allotment.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConcurrencyConflict) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update ticket allotment")
	}
	allotment.Version++

	return nil
}

// Delete removes an allotment by its ID.
func (repo *ticketAllotmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.EventTicketAllotmentModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete ticket allotment")
	}
	if result.RowsAffected == 0 {
		return repository.ErrTicketAllotmentNotFound
	}

	return nil
}

// DeleteByEventID removes every allotment of an event.
func (repo *ticketAllotmentRepository) DeleteByEventID(ctx context.Context, eventID uuid.UUID) error {
	if err := repo.db.WithContext(ctx).Where("event_id = ?", eventID).Delete(&model.EventTicketAllotmentModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete ticket allotments")
	}

	return nil
}

func toTicketAllotmentDomain(data *model.EventTicketAllotmentModel) *entity.EventTicketAllotment {
	return &entity.EventTicketAllotment{
		ID:                   data.ID,
		EventID:              data.EventID,
		Name:                 data.Name,
		Amount:               data.Amount,
		TicketsQuantityLimit: data.TicketsQuantityLimit,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
		Version:              data.Version,
	}
}

func fromTicketAllotmentDomain(data *entity.EventTicketAllotment) *model.EventTicketAllotmentModel {
	return &model.EventTicketAllotmentModel{
		ID:                   data.ID,
		EventID:              data.EventID,
		Name:                 data.Name,
		Amount:               data.Amount,
		TicketsQuantityLimit: data.TicketsQuantityLimit,
		CreatedAt:            data.CreatedAt,
		UpdatedAt:            data.UpdatedAt,
		Version:              data.Version,
	}
}
