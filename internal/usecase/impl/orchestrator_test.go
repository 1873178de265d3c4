package impl

import (
	"context"
	"testing"

	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/repository"
	mockRepo "outside/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRunInTransaction(t *testing.T) {
	ctx := context.Background()
	failIfCalled := func(context.Context) (bool, error) {
		t.Fatal("existence re-check must not run")

		return false, nil
	}

	t.Run("success", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(ctx, mock.Anything).Return(nil)

		err := runInTransaction(ctx, txManager, func(repository.RepositoryFactory) error { return nil }, failIfCalled, domainerrors.ErrEventNotFound)

		require.NoError(t, err)
	})

	t.Run("other errors pass through", func(t *testing.T) {
		dbErr := errors.New("connection reset")
		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(ctx, mock.Anything).Return(dbErr)

		err := runInTransaction(ctx, txManager, func(repository.RepositoryFactory) error { return nil }, failIfCalled, domainerrors.ErrEventNotFound)

		assert.Equal(t, dbErr, err)
	})

	t.Run("conflict on a deleted entity is not found", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(ctx, mock.Anything).Return(repository.ErrConcurrencyConflict)

		err := runInTransaction(ctx, txManager, func(repository.RepositoryFactory) error { return nil },
			func(context.Context) (bool, error) { return false, nil }, domainerrors.ErrEventNotFound)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrEventNotFound))
		assert.False(t, errors.Is(err, domainerrors.ErrConcurrencyConflict))
	})

	t.Run("conflict on a live entity is a conflict", func(t *testing.T) {
		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(ctx, mock.Anything).Return(repository.ErrConcurrencyConflict)

		err := runInTransaction(ctx, txManager, func(repository.RepositoryFactory) error { return nil },
			func(context.Context) (bool, error) { return true, nil }, domainerrors.ErrEventNotFound)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrConcurrencyConflict))
		assert.False(t, errors.Is(err, domainerrors.ErrEventNotFound))
	})

	t.Run("failed re-check keeps both errors", func(t *testing.T) {
		checkErr := errors.New("primary unavailable")
		txManager := mockRepo.NewMockTransactionManager(t)
		txManager.EXPECT().Execute(ctx, mock.Anything).Return(repository.ErrConcurrencyConflict)

		err := runInTransaction(ctx, txManager, func(repository.RepositoryFactory) error { return nil },
			func(context.Context) (bool, error) { return false, checkErr }, domainerrors.ErrEventNotFound)

		require.Error(t, err)
		assert.True(t, errors.Is(err, repository.ErrConcurrencyConflict))
		assert.True(t, errors.Is(err, checkErr))
	})
}

func TestResolveOwnedEvent(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()

	t.Run("owner", func(t *testing.T) {
		event := ownedEvent(ownerID)
		events := mockRepo.NewMockEventRepository(t)
		events.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)

		got, err := resolveOwnedEvent(ctx, events, event.ID, ownerID)

		require.NoError(t, err)
		assert.Same(t, event, got)
	})

	t.Run("another user", func(t *testing.T) {
		event := ownedEvent(ownerID)
		events := mockRepo.NewMockEventRepository(t)
		events.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)

		_, err := resolveOwnedEvent(ctx, events, event.ID, uuid.New())

		assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
	})

	t.Run("owner not hydrated", func(t *testing.T) {
		event := ownedEvent(ownerID)
		event.CreatedBy = nil
		events := mockRepo.NewMockEventRepository(t)
		events.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)

		_, err := resolveOwnedEvent(ctx, events, event.ID, ownerID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
	})

	t.Run("missing event", func(t *testing.T) {
		eventID := uuid.New()
		events := mockRepo.NewMockEventRepository(t)
		events.EXPECT().FindDetailedByID(ctx, eventID).Return(nil, repository.ErrEventNotFound)

		_, err := resolveOwnedEvent(ctx, events, eventID, ownerID)

		assert.True(t, errors.Is(err, domainerrors.ErrEventNotFound))
	})

	t.Run("no actor", func(t *testing.T) {
		events := mockRepo.NewMockEventRepository(t)

		_, err := resolveOwnedEvent(ctx, events, uuid.New(), uuid.Nil)

		assert.True(t, errors.Is(err, domainerrors.ErrUnauthenticated))
	})
}
