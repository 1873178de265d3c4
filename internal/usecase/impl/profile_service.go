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

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	eventRepo repository.EventRepository
	clock     service.Clock
	notifier  notifier
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	EventRepo repository.EventRepository
	Publisher service.EventPublisher
	Clock     service.Clock
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		eventRepo: params.EventRepo,
		clock:     params.Clock,
		notifier:  notifier{publisher: params.Publisher, clock: params.Clock, logger: params.Logger},
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListProfiles returns every profile.
func (srv *profileService) ListProfiles(ctx context.Context) ([]*entity.UserProfile, error) {
	profiles, err := srv.userRepo.ListProfiles(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return profiles, nil
}

// GetProfile retrieves a single profile.
func (srv *profileService) GetProfile(ctx context.Context, profileID uuid.UUID) (*entity.UserProfile, error) {
	profile, err := srv.userRepo.FindProfileByID(ctx, profileID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound.WrapMessage("profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}

// UpdateProfile reconciles the identity email and the profile names of the
// acting user and writes whichever changed in one transaction.
func (srv *profileService) UpdateProfile(ctx context.Context, actorID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.UserProfile, error) {
	if actorID == uuid.Nil {
		return nil, domainerrors.ErrUnauthenticated.WrapMessage("acting user is missing")
	}

	profile, err := srv.GetProfile(ctx, actorID)
	if err != nil {
		return nil, err
	}
	if profile.Identity == nil {
		return nil, errors.New("profile loaded without identity")
	}

	now := srv.clock.Now()
	emailChanged := profile.Identity.ChangeEmail(input.Email, now)
	profileChanged := profile.ApplyUpdate(entity.UserProfileUpdate{
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}, now)

	if !emailChanged && !profileChanged {
		srv.log(ctx).Debug("Profile update carried no changes", slog.Any("userID", actorID))

		return profile, nil
	}

	if emailChanged {
		taken, err := srv.userRepo.EmailExists(ctx, profile.Identity.Email)
		if err != nil {
			return nil, errors.Wrap(err, "failed to check email")
		}
		if taken {
			return nil, domainerrors.ErrUserAlreadyExists.WrapMessage("email belongs to another user")
		}
	}

	err = runInTransaction(ctx, srv.txManager, func(repoFactory repository.RepositoryFactory) error {
		users := repoFactory.NewUserRepository()
		if emailChanged {
			if err := users.UpdateIdentity(ctx, profile.Identity); err != nil {
				return err
			}
		}
		if profileChanged {
			if err := users.UpdateProfile(ctx, profile); err != nil {
				return err
			}
		}

		return nil
	}, func(ctx context.Context) (bool, error) {
		return srv.userRepo.ProfileExists(ctx, actorID)
	}, domainerrors.ErrUserNotFound)
	if err != nil {
		srv.log(ctx).Error("Failed to update profile", slog.Any("userID", actorID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

// DeleteProfile removes the acting user with every event they created.
func (srv *profileService) DeleteProfile(ctx context.Context, actorID uuid.UUID) error {
	if actorID == uuid.Nil {
		return domainerrors.ErrUnauthenticated.WrapMessage("acting user is missing")
	}

	profile, err := srv.GetProfile(ctx, actorID)
	if err != nil {
		return err
	}

	events, err := srv.eventRepo.ListByOwner(ctx, actorID)
	if err != nil {
		return errors.Wrap(err, "failed to list owned events")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		for _, event := range events {
			if err := deleteEventTree(ctx, repoFactory, event.ID); err != nil {
				return err
			}
		}

		return repoFactory.NewUserRepository().Delete(ctx, profile)
	})
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("profile removed by a concurrent request")
		}
		srv.log(ctx).Error("Failed to delete profile", slog.Any("userID", actorID), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete profile")
	}

	for _, event := range events {
		srv.notifier.publish(ctx, service.EventDeleted, event.ID, actorID)
	}
	srv.log(ctx).Info("Profile deleted", slog.Any("userID", actorID), slog.Int("events", len(events)))

	return nil
}
