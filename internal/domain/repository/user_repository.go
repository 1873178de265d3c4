// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"outside/internal/domain/entity"
	"outside/internal/errors"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository persists identities and the profiles that reference them.
// Profiles returned by Find methods carry their hydrated Identity.
type UserRepository interface {
	// FindProfileByID retrieves a profile by its ID.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error)

	// FindProfileByEmail retrieves the profile whose identity has the given email.
	FindProfileByEmail(ctx context.Context, email string) (*entity.UserProfile, error)

	// ListProfiles returns every profile ordered by creation time.
	ListProfiles(ctx context.Context) ([]*entity.UserProfile, error)

	// EmailExists reports whether any identity uses email.
	EmailExists(ctx context.Context, email string) (bool, error)

	// ProfileExists reports whether a profile with id exists, reading from the primary.
	ProfileExists(ctx context.Context, id uuid.UUID) (bool, error)

	// Create persists profile.Identity and then the profile.
	Create(ctx context.Context, profile *entity.UserProfile) error

	// UpdateIdentity writes the identity guarded by its version.
	UpdateIdentity(ctx context.Context, identity *entity.UserIdentity) error

	// UpdateProfile writes the profile guarded by its version.
	UpdateProfile(ctx context.Context, profile *entity.UserProfile) error

	// Delete removes the profile and its identity.
	Delete(ctx context.Context, profile *entity.UserProfile) error
}
