package impl

import (
	"context"
	"testing"

	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/service"
	mockRepo "outside/internal/mocks/repository"
	mockSvc "outside/internal/mocks/service"
	"outside/internal/usecase"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type locationServiceFixtures struct {
	service   usecase.LocationUsecase
	txManager *mockRepo.MockTransactionManager
	eventRepo *mockRepo.MockEventRepository
	resolver  *mockSvc.MockAddressResolver
	publisher *mockSvc.MockEventPublisher
}

func createTestLocationService(t *testing.T) locationServiceFixtures {
	f := locationServiceFixtures{
		txManager: mockRepo.NewMockTransactionManager(t),
		eventRepo: mockRepo.NewMockEventRepository(t),
		resolver:  mockSvc.NewMockAddressResolver(t),
		publisher: mockSvc.NewMockEventPublisher(t),
	}
	f.service = NewLocationService(LocationServiceParams{
		TxManager: f.txManager,
		EventRepo: f.eventRepo,
		Resolver:  f.resolver,
		Publisher: f.publisher,
		Clock:     fixedClock{now: testNow},
		Logger:    discardLogger(),
	})

	return f
}

var rioBranco = entity.ResolvedLocation{
	Point:        orb.Point{-43.1729, -22.9068},
	Country:      "Brazil",
	State:        "Rio de Janeiro",
	City:         "Rio de Janeiro",
	PostalCode:   "20040-020",
	AddressLine1: "Avenida Rio Branco 1, Centro",
}

func expectLocationWrite(t *testing.T, fx locationServiceFixtures, event *entity.Event, create bool) {
	t.Helper()

	txEventRepo := mockRepo.NewMockEventRepository(t)
	txLocationRepo := mockRepo.NewMockEventLocationRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewEventRepository().Return(txEventRepo)
	factory.EXPECT().NewEventLocationRepository().Return(txLocationRepo)
	if create {
		txLocationRepo.EXPECT().Create(mock.Anything, mock.AnythingOfType("*entity.EventLocation")).Return(nil)
	} else {
		txLocationRepo.EXPECT().Update(mock.Anything, mock.AnythingOfType("*entity.EventLocation")).Return(nil)
	}
	txEventRepo.EXPECT().Update(mock.Anything, event).Return(nil)
	fx.txManager.EXPECT().Execute(mock.Anything, mock.Anything).RunAndReturn(executeWith(factory))
	expectNotification(fx.publisher, service.EventLocationUpdated, event.ID)
}

func TestLocationService_CreateLocation(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()
	input := &usecase.CreateLocationInput{
		AddressLine1: "Av. Rio Branco, 1",
		PostalCode:   "20040-020",
		Country:      "Brazil",
	}

	t.Run("success", func(t *testing.T) {
		fx := createTestLocationService(t)
		event := ownedEvent(actorID)
		fx.eventRepo.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)
		fx.resolver.EXPECT().Resolve(ctx, entity.AddressQuery{
			AddressLine1: input.AddressLine1,
			PostalCode:   input.PostalCode,
			Country:      input.Country,
		}).Return(&rioBranco, nil)
		expectLocationWrite(t, fx, event, true)

		location, err := fx.service.CreateLocation(ctx, actorID, event.ID, input)

		require.NoError(t, err)
		assert.Equal(t, event.ID, location.EventID)
		assert.Equal(t, "Rio de Janeiro", location.City)
		assert.InDelta(t, -22.9068, location.Latitude, 1e-9)
		assert.Nil(t, location.UpdatedAt)
		assert.Equal(t, testNow, *event.UpdatedAt)
	})

	t.Run("already exists", func(t *testing.T) {
		fx := createTestLocationService(t)
		event := ownedEvent(actorID)
		event.Location = storedLocation(event.ID)
		fx.eventRepo.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)

		_, err := fx.service.CreateLocation(ctx, actorID, event.ID, input)

		assert.True(t, errors.Is(err, domainerrors.ErrLocationAlreadyExists))
	})

	t.Run("unresolvable address", func(t *testing.T) {
		fx := createTestLocationService(t)
		event := ownedEvent(actorID)
		fx.eventRepo.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)
		fx.resolver.EXPECT().Resolve(ctx, mock.Anything).
			Return(nil, domainerrors.ErrAddressUnresolvable.WrapMessage("geocoding returned 2 results"))

		_, err := fx.service.CreateLocation(ctx, actorID, event.ID, input)

		assert.True(t, errors.Is(err, domainerrors.ErrAddressUnresolvable))
		assert.Nil(t, event.UpdatedAt)
	})
}

func TestLocationService_UpdateLocation_Readdress(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	actorID := uuid.New()
	event := ownedEvent(actorID)
	event.Location = storedLocation(event.ID)
	locationID := event.Location.ID

	fx.eventRepo.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)
	fx.resolver.EXPECT().Resolve(ctx, entity.AddressQuery{
		AddressLine1: "Av. Rio Branco, 1",
		PostalCode:   "01310-100",
		Country:      "Brazil",
	}).Return(&rioBranco, nil)
	expectLocationWrite(t, fx, event, false)

	location, err := fx.service.UpdateLocation(ctx, actorID, event.ID, &usecase.UpdateLocationInput{
		AddressLine1: ptr("Av. Rio Branco, 1"),
	})

	require.NoError(t, err)
	assert.Equal(t, locationID, location.ID)
	assert.Equal(t, "Rio de Janeiro", location.State)
	assert.Equal(t, "20040-020", location.PostalCode)
	assert.Equal(t, testNow, *location.UpdatedAt)
	assert.Equal(t, testNow, *event.UpdatedAt)
}

func TestLocationService_UpdateLocation_LineTwoOnly(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	actorID := uuid.New()
	event := ownedEvent(actorID)
	event.Location = storedLocation(event.ID)

	fx.eventRepo.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)
	expectLocationWrite(t, fx, event, false)

	location, err := fx.service.UpdateLocation(ctx, actorID, event.ID, &usecase.UpdateLocationInput{
		AddressLine1: ptr("Avenida Paulista 1578, Bela Vista"),
		AddressLine2: ptr("Sala 3"),
	})

	require.NoError(t, err)
	require.NotNil(t, location.AddressLine2)
	assert.Equal(t, "Sala 3", *location.AddressLine2)
	assert.Equal(t, "São Paulo", location.City)
}

func TestLocationService_UpdateLocation_NoChanges(t *testing.T) {
	fx := createTestLocationService(t)
	ctx := context.Background()
	actorID := uuid.New()
	event := ownedEvent(actorID)
	event.Location = storedLocation(event.ID)

	fx.eventRepo.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)

	location, err := fx.service.UpdateLocation(ctx, actorID, event.ID, &usecase.UpdateLocationInput{
		Country:      ptr("Brazil"),
		AddressLine2: ptr(""),
	})

	require.NoError(t, err)
	assert.Nil(t, location.UpdatedAt)
	assert.Nil(t, event.UpdatedAt)
}

func TestLocationService_UpdateLocation_WithoutLocation(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("partial address", func(t *testing.T) {
		fx := createTestLocationService(t)
		event := ownedEvent(actorID)
		fx.eventRepo.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)

		_, err := fx.service.UpdateLocation(ctx, actorID, event.ID, &usecase.UpdateLocationInput{AddressLine2: ptr("Sala 3")})

		assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
	})

	t.Run("full address creates", func(t *testing.T) {
		fx := createTestLocationService(t)
		event := ownedEvent(actorID)
		fx.eventRepo.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)
		fx.resolver.EXPECT().Resolve(ctx, mock.Anything).Return(&rioBranco, nil)
		expectLocationWrite(t, fx, event, true)

		location, err := fx.service.UpdateLocation(ctx, actorID, event.ID, &usecase.UpdateLocationInput{
			AddressLine1: ptr("Av. Rio Branco, 1"),
			PostalCode:   ptr("20040-020"),
			Country:      ptr("Brazil"),
		})

		require.NoError(t, err)
		assert.Equal(t, "Rio de Janeiro", location.City)
	})
}

func TestLocationService_GetLocation(t *testing.T) {
	ctx := context.Background()
	actorID := uuid.New()

	t.Run("not owner", func(t *testing.T) {
		fx := createTestLocationService(t)
		event := ownedEvent(uuid.New())
		event.Location = storedLocation(event.ID)
		fx.eventRepo.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)

		_, err := fx.service.GetLocation(ctx, actorID, event.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrNotResourceOwner))
	})

	t.Run("no location", func(t *testing.T) {
		fx := createTestLocationService(t)
		event := ownedEvent(actorID)
		fx.eventRepo.EXPECT().FindDetailedByID(ctx, event.ID).Return(event, nil)

		_, err := fx.service.GetLocation(ctx, actorID, event.ID)

		assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
	})
}
