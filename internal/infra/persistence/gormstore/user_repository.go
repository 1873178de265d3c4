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
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindProfileByID retrieves a profile with its identity.
func (repo *userRepository) FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.UserProfile, error) {
	var profileM model.UserProfileModel
	err := repo.db.WithContext(ctx).
		Preload("Identity").
		Where("id = ?", id).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by id")
	}

	return toUserProfileDomain(&profileM), nil
}

// FindProfileByEmail resolves the identity by email, then its profile.
func (repo *userRepository) FindProfileByEmail(ctx context.Context, email string) (*entity.UserProfile, error) {
	var identityM model.UserIdentityModel
	err := repo.db.WithContext(ctx).Where("email = ?", email).First(&identityM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find identity by email")
	}

	var profileM model.UserProfileModel
	err = repo.db.WithContext(ctx).Where("identity_id = ?", identityM.ID).First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by identity")
	}
	profileM.Identity = &identityM

	return toUserProfileDomain(&profileM), nil
}

// ListProfiles returns every profile with its identity, oldest first.
func (repo *userRepository) ListProfiles(ctx context.Context) ([]*entity.UserProfile, error) {
	var profileMs []*model.UserProfileModel
	err := repo.db.WithContext(ctx).
		Preload("Identity").
		Order("created_at ASC").
		Find(&profileMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.UserProfile, 0, len(profileMs))
	for _, profileM := range profileMs {
		profiles = append(profiles, toUserProfileDomain(profileM))
	}

	return profiles, nil
}

// EmailExists reports whether an identity already uses email.
func (repo *userRepository) EmailExists(ctx context.Context, email string) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Model(&model.UserIdentityModel{}).
		Where("email = ?", email).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check email")
	}

	return count > 0, nil
}

// ProfileExists reports whether a profile exists, reading from the primary so
// a just-committed delete is visible.
func (repo *userRepository) ProfileExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write).
		Model(&model.UserProfileModel{}).
		Where("id = ?", id).
		Count(&count).Error
	if err != nil {
		return false, errors.Wrap(err, "failed to check profile existence")
	}

	return count > 0, nil
}

// Create inserts the identity and then the profile. Associations are omitted
// so a duplicate email surfaces as a constraint violation instead of being
// silently skipped by GORM's association upsert.
func (repo *userRepository) Create(ctx context.Context, profile *entity.UserProfile) error {
	if profile.Identity == nil {
		return errors.New("profile identity is required")
	}

	profileM := fromUserProfileDomain(profile)
	identityM := profileM.Identity
	profileM.Identity = nil
	identityM.Version = 1
	profileM.Version = 1

	db := repo.db.WithContext(ctx).Omit(clause.Associations)
	if err := db.Create(identityM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create identity")
	}
	if err := db.Create(profileM).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to create profile")
	}

	profile.Version = profileM.Version
	profile.Identity.Version = identityM.Version

	return nil
}

// UpdateIdentity writes email, password hash and UpdatedAt if the version matches.
func (repo *userRepository) UpdateIdentity(ctx context.Context, identity *entity.UserIdentity) error {
	err := updateVersioned(ctx, repo.db, &model.UserIdentityModel{}, identity.ID, identity.Version, map[string]any{
		"email":         identity.Email,
		"password_hash": identity.PasswordHash,
		"updated_at":    identity.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConcurrencyConflict) {
			return err
		}
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update identity")
	}
	identity.Version++

	return nil
}

// UpdateProfile writes names and UpdatedAt if the version matches.
func (repo *userRepository) UpdateProfile(ctx context.Context, profile *entity.UserProfile) error {
	err := updateVersioned(ctx, repo.db, &model.UserProfileModel{}, profile.ID, profile.Version, map[string]any{
		"first_name": profile.FirstName,
		"last_name":  profile.LastName,
		"updated_at": profile.UpdatedAt,
	})
	if err != nil {
		if errors.Is(err, repository.ErrConcurrencyConflict) {
			return err
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update profile")
	}
	profile.Version++

	return nil
}

// Delete removes the profile and then its identity.
func (repo *userRepository) Delete(ctx context.Context, profile *entity.UserProfile) error {
	db := repo.db.WithContext(ctx)

	result := db.Where("id = ?", profile.ID).Delete(&model.UserProfileModel{})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	if err := db.Where("id = ?", profile.IdentityID).Delete(&model.UserIdentityModel{}).Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete identity")
	}

	return nil
}

func toUserIdentityDomain(data *model.UserIdentityModel) *entity.UserIdentity {
	if data == nil {
		return nil
	}

	return &entity.UserIdentity{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Version:      data.Version,
	}
}

func fromUserIdentityDomain(data *entity.UserIdentity) *model.UserIdentityModel {
	if data == nil {
		return nil
	}

	return &model.UserIdentityModel{
		ID:           data.ID,
		Email:        data.Email,
		PasswordHash: data.PasswordHash,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
		Version:      data.Version,
	}
}

func toUserProfileDomain(data *model.UserProfileModel) *entity.UserProfile {
	if data == nil {
		return nil
	}

	return &entity.UserProfile{
		ID:         data.ID,
		IdentityID: data.IdentityID,
		Identity:   toUserIdentityDomain(data.Identity),
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Version:    data.Version,
	}
}

func fromUserProfileDomain(data *entity.UserProfile) *model.UserProfileModel {
	return &model.UserProfileModel{
		ID:         data.ID,
		IdentityID: data.IdentityID,
		Identity:   fromUserIdentityDomain(data.Identity),
		FirstName:  data.FirstName,
		LastName:   data.LastName,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
		Version:    data.Version,
	}
}
