package gormstore

import (
	"context"

	"outside/internal/domain/repository"
	"outside/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds one GORM handle, a transaction or the plain connection, and binds
// every repository it creates to that handle.
type gormRepositoryFactory struct {
	db *gorm.DB
}

// NewRepositoryFactory returns a factory bound to db.
func NewRepositoryFactory(db *gorm.DB) repository.RepositoryFactory {
	return &gormRepositoryFactory{db: db}
}

// NewUserRepository creates a user repository bound to the factory's handle.
func (f *gormRepositoryFactory) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.db)
}

// NewEventRepository creates an event repository bound to the factory's handle.
func (f *gormRepositoryFactory) NewEventRepository() repository.EventRepository {
	return NewEventRepository(f.db)
}

// NewEventLocationRepository creates a location repository bound to the factory's handle.
func (f *gormRepositoryFactory) NewEventLocationRepository() repository.EventLocationRepository {
	return NewEventLocationRepository(f.db)
}

// NewTicketAllotmentRepository creates an allotment repository bound to the factory's handle.
func (f *gormRepositoryFactory) NewTicketAllotmentRepository() repository.TicketAllotmentRepository {
	return NewTicketAllotmentRepository(f.db)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// A panic in fn must not leave the transaction open.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(NewRepositoryFactory(tx)); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
