package impl

import (
	"context"
	"log/slog"

	deliverycontext "outside/internal/delivery/context"
	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/repository"
	"outside/internal/domain/service"
	"outside/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	revocations  service.TokenRevocationStore
	clock        service.Clock
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Revocations  service.TokenRevocationStore
	Clock        service.Clock
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		revocations:  params.Revocations,
		clock:        params.Clock,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates the identity and its profile in one transaction.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*entity.UserProfile, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	exists, err := srv.userRepo.EmailExists(ctx, input.Email)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check email")
	}
	if exists {
		return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("user registration failed")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("user registration failed")
	}

	now := srv.clock.Now()
	identityID := newID()
	profile := &entity.UserProfile{
		ID:         newID(),
		IdentityID: identityID,
		Identity: &entity.UserIdentity{
			ID:           identityID,
			Email:        input.Email,
			PasswordHash: hashedPassword,
			CreatedAt:    now,
		},
		FirstName: input.FirstName,
		LastName:  input.LastName,
		CreatedAt: now,
	}

	// A concurrent signup with the same email surfaces here as ErrUserAlreadyExists.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, profile)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to execute user registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", profile.ID))

	return profile, nil
}

// Login checks the credentials and issues an access token.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting user login", slog.String("email", input.Email))

	profile, err := srv.userRepo.FindProfileByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	if profile.Identity == nil || !srv.hasher.Check(input.Password, profile.Identity.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.Issue(profile.ID, profile.Email())
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("userID", profile.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("login failed")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", profile.ID))

	return &usecase.LoginOutput{
		AccessToken: token.Token,
		ExpiresAt:   token.ExpiresAt,
		User:        profile,
	}, nil
}

// Logout denylists the presented token until it expires.
func (srv *userService) Logout(ctx context.Context, input *usecase.LogoutInput) error {
	if input.TokenID == "" {
		return domainerrors.ErrUnauthenticated.WrapMessage("token has no id")
	}

	if err := srv.revocations.Revoke(ctx, input.TokenID, input.ExpiresAt); err != nil {
		srv.log(ctx).Error("Failed to revoke token", slog.Any("error", err))

		return errors.Wrap(err, "failed to revoke token")
	}
	srv.log(ctx).Info("Successfully logged out")

	return nil
}
