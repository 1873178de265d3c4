package usecase

import (
	"context"

	"outside/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileUsecase defines the operations on user profiles.
type ProfileUsecase interface {
	ListProfiles(ctx context.Context) ([]*entity.UserProfile, error)
	GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.UserProfile, error)
	UpdateProfile(ctx context.Context, actorID uuid.UUID, input *UpdateProfileInput) (*entity.UserProfile, error)
	DeleteProfile(ctx context.Context, actorID uuid.UUID) error
}

// UpdateProfileInput is a partial update of the acting user. Email belongs
// to the identity, names to the profile.
type UpdateProfileInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}
