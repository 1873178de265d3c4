// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"outside/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterUserInput defines the data required to sign up.
type RegisterUserInput struct {
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// LoginInput defines the data required for a user to sign in.
type LoginInput struct {
	Email    string
	Password string
}

// LogoutInput identifies the access token to revoke.
type LogoutInput struct {
	TokenID   string
	ExpiresAt time.Time
}

// --- Output DTOs ---

// LoginOutput returns the issued access token after a successful sign in.
type LoginOutput struct {
	AccessToken string
	ExpiresAt   time.Time
	User        *entity.UserProfile
}

// UserUsecase defines the authentication operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*entity.UserProfile, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	Logout(ctx context.Context, input *LogoutInput) error
}
