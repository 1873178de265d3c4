package gormstore

import (
	"context"
	"testing"

	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()

	profile := seedProfile(t, db, "a@b.com")
	assert.Equal(t, int64(1), profile.Version)
	assert.Equal(t, int64(1), profile.Identity.Version)

	found, err := repo.FindProfileByID(ctx, profile.ID)
	require.NoError(t, err)
	assert.Equal(t, "A", found.FirstName)
	assert.Equal(t, "a@b.com", found.Email())
	assert.Nil(t, found.UpdatedAt)
	assert.True(t, found.CreatedAt.Equal(baseTime))

	byEmail, err := repo.FindProfileByEmail(ctx, "a@b.com")
	require.NoError(t, err)
	assert.Equal(t, profile.ID, byEmail.ID)

	exists, err := repo.EmailExists(ctx, "a@b.com")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ProfileExists(ctx, profile.ID)
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = repo.FindProfileByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrUserNotFound)

	_, err = repo.FindProfileByEmail(ctx, "nobody@b.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestUserRepository_DuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	seedProfile(t, db, "a@b.com")

	identityID := uuid.New()
	err := NewUserRepository(db).Create(context.Background(), &entity.UserProfile{
		ID:         uuid.New(),
		IdentityID: identityID,
		Identity:   &entity.UserIdentity{ID: identityID, Email: "a@b.com", PasswordHash: "x", CreatedAt: baseTime},
		FirstName:  "C",
		LastName:   "D",
		CreatedAt:  baseTime,
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_UpdateWithVersionCheck(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	seeded := seedProfile(t, db, "a@b.com")

	first, err := repo.FindProfileByID(ctx, seeded.ID)
	require.NoError(t, err)
	stale, err := repo.FindProfileByID(ctx, seeded.ID)
	require.NoError(t, err)

	first.FirstName = "Ana"
	require.NoError(t, repo.UpdateProfile(ctx, first))
	assert.Equal(t, int64(2), first.Version)

	stale.LastName = "Lost"
	assert.ErrorIs(t, repo.UpdateProfile(ctx, stale), repository.ErrConcurrencyConflict)

	reloaded, err := repo.FindProfileByID(ctx, seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana", reloaded.FirstName)
	assert.Equal(t, "B", reloaded.LastName)
}

func TestUserRepository_UpdateIdentityDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	seedProfile(t, db, "taken@b.com")
	other := seedProfile(t, db, "mine@b.com")

	other.Identity.Email = "taken@b.com"
	err := repo.UpdateIdentity(ctx, other.Identity)
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)
	ctx := context.Background()
	profile := seedProfile(t, db, "a@b.com")

	require.NoError(t, repo.Delete(ctx, profile))

	exists, err := repo.ProfileExists(ctx, profile.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	exists, err = repo.EmailExists(ctx, "a@b.com")
	require.NoError(t, err)
	assert.False(t, exists)

	assert.ErrorIs(t, repo.Delete(ctx, profile), repository.ErrUserNotFound)
}

func TestUserRepository_ListProfiles(t *testing.T) {
	db := newTestDB(t)
	seedProfile(t, db, "a@b.com")
	seedProfile(t, db, "c@d.com")

	profiles, err := NewUserRepository(db).ListProfiles(context.Background())
	require.NoError(t, err)
	require.Len(t, profiles, 2)
	for _, p := range profiles {
		assert.NotNil(t, p.Identity)
	}
}
