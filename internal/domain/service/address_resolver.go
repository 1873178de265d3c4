package service

import (
	"context"

	"outside/internal/domain/entity"
)

// AddressResolver turns a postal address into a normalized, geocoded location.
// Ambiguous or unknown addresses are rejected with an AppError; transport
// failures are returned as plain errors.
type AddressResolver interface {
	Resolve(ctx context.Context, query entity.AddressQuery) (*entity.ResolvedLocation, error)
}
