package impl

import (
	"context"

	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/repository"
	"outside/internal/errors"

	"github.com/google/uuid"
)

// existenceCheck reports whether the entity a transaction was writing still
// exists. It must read outside the failed transaction.
type existenceCheck func(ctx context.Context) (bool, error)

// runInTransaction executes fn as a single transaction. Any error rolls the
// whole unit back. A concurrency conflict is classified after the rollback:
// notFound when the entity is gone, ErrConcurrencyConflict otherwise.
func runInTransaction(
	ctx context.Context,
	txManager repository.TransactionManager,
	fn func(repoFactory repository.RepositoryFactory) error,
	exists existenceCheck,
	notFound *domainerrors.BaseError,
) error {
	err := txManager.Execute(ctx, fn)
	if err == nil {
		return nil
	}
	if !errors.Is(err, repository.ErrConcurrencyConflict) {
		return err
	}

	found, existsErr := exists(ctx)
	if existsErr != nil {
		return errors.Join(err, errors.Wrap(existsErr, "failed to re-check existence after conflict"))
	}
	if !found {
		return notFound.WrapMessage("removed by a concurrent request")
	}

	return errors.Wrap(domainerrors.ErrConcurrencyConflict, err.Error())
}

func newID() uuid.UUID {
	return uuid.Must(uuid.NewV7())
}
