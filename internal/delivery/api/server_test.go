package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"outside/config"
	apimiddleware "outside/internal/delivery/api/middleware"
	"outside/internal/delivery/api/router"
	"outside/internal/delivery/api/router/handler"
	"outside/internal/infra/auth"
	"outside/internal/infra/clock"
	"outside/internal/infra/geocoding"
	"outside/internal/infra/persistence/gormstore"
	"outside/internal/infra/pubsub"
	"outside/internal/infra/qrcode"
	"outside/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

// memoryRevocations keeps revoked token ids in process.
type memoryRevocations struct {
	mu      sync.Mutex
	revoked map[string]time.Time
}

func (m *memoryRevocations) Revoke(_ context.Context, tokenID string, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.revoked[tokenID] = expiresAt

	return nil
}

func (m *memoryRevocations) IsRevoked(_ context.Context, tokenID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.revoked[tokenID]

	return ok, nil
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
		Details any    `json:"details"`
	} `json:"error"`
	Meta *struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			Secret:     "integration-secret",
			Issuer:     "outside-test",
			Audience:   "outside-test",
			TokenTTL:   8 * time.Hour,
			BcryptCost: 4,
		},
		Geocoding: &config.GeocodingConfig{APIKey: "test-key", Timeout: 2 * time.Second},
		PubSub:    &config.PubSubConfig{Provider: config.PubSubProviderNoop},
		QRCode:    &config.QRCodeConfig{Size: 128},
		Events:    &config.EventsConfig{DefaultNearbyRadiusKm: 25},
	}
	cfg.HTTP.MaxRequestBodySize = "1MB"
	cfg.HTTP.PublicBaseURL = "https://outside.test"

	return cfg
}

// geocoderStub answers every lookup mentioning Paulista with a single match
// and everything else with ZERO_RESULTS.
func geocoderStub(t *testing.T) *httptest.Server {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := geocoding.Response{Status: geocoding.StatusZeroResults}
		if strings.Contains(r.URL.Query().Get("address"), "Paulista") {
			body = geocoding.Response{
				Status: geocoding.StatusOK,
				Results: []geocoding.Result{{
					AddressComponents: []geocoding.AddressComponent{
						{LongName: "1578", Types: []string{"street_number"}},
						{LongName: "Avenida Paulista", Types: []string{"route"}},
						{LongName: "Bela Vista", Types: []string{"political", "sublocality"}},
						{LongName: "São Paulo", Types: []string{"administrative_area_level_2", "political"}},
						{LongName: "São Paulo", Types: []string{"administrative_area_level_1", "political"}},
						{LongName: "Brazil", Types: []string{"country", "political"}},
					},
					Geometry: geocoding.Geometry{Location: geocoding.LatLng{Lat: -23.5614, Lng: -46.6559}},
				}},
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))
	t.Cleanup(srv.Close)

	return srv
}

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	cfg := testConfig()
	cfg.Geocoding.Endpoint = geocoderStub(t).URL
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	systemClock := clock.NewSystem()

	db, err := gormstore.OpenSQLite("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })
	require.NoError(t, gormstore.Migrate(context.Background(), db))

	txManager := gormstore.NewTransactionManager(db)
	userRepo := gormstore.NewUserRepository(db)
	eventRepo := gormstore.NewEventRepository(db)
	allotmentRepo := gormstore.NewTicketAllotmentRepository(db)

	tokenService, err := auth.NewJWTService(cfg, systemClock)
	require.NoError(t, err)
	revocations := &memoryRevocations{revoked: map[string]time.Time{}}

	publisher, err := pubsub.NewEventPublisher(pubsub.PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Logger: logger,
	})
	require.NoError(t, err)

	userService := impl.NewUserService(impl.UserServiceParams{
		TxManager:    txManager,
		UserRepo:     userRepo,
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Revocations:  revocations,
		Clock:        systemClock,
		Logger:       logger,
	})
	profileService := impl.NewProfileService(impl.ProfileServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		EventRepo: eventRepo,
		Publisher: publisher,
		Clock:     systemClock,
		Logger:    logger,
	})
	eventService := impl.NewEventService(impl.EventServiceParams{
		TxManager: txManager,
		EventRepo: eventRepo,
		QRCode:    qrcode.NewQRCodeService(cfg),
		Publisher: publisher,
		Clock:     systemClock,
		Logger:    logger,
	})
	locationService := impl.NewLocationService(impl.LocationServiceParams{
		TxManager: txManager,
		EventRepo: eventRepo,
		Resolver:  geocoding.NewResolver(cfg, logger),
		Publisher: publisher,
		Clock:     systemClock,
		Logger:    logger,
	})
	allotmentService := impl.NewTicketAllotmentService(impl.TicketAllotmentServiceParams{
		TxManager:     txManager,
		EventRepo:     eventRepo,
		AllotmentRepo: allotmentRepo,
		Publisher:     publisher,
		Clock:         systemClock,
		Logger:        logger,
	})

	return newEcho(cfg, logger, router.RouterParams{
		AuthHandler:            handler.NewAuthHandler(userService),
		UserHandler:            handler.NewUserHandler(profileService),
		EventHandler:           handler.NewEventHandler(eventService, cfg),
		LocationHandler:        handler.NewLocationHandler(locationService),
		TicketAllotmentHandler: handler.NewTicketAllotmentHandler(allotmentService),
		AuthMiddleware:         apimiddleware.NewAuthMiddleware(tokenService, revocations, logger),
	})
}

func call(t *testing.T, e *echo.Echo, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	var out T
	require.NoError(t, json.Unmarshal(env.Data, &out), rec.Body.String())

	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	require.NotNil(t, env.Error, rec.Body.String())

	return env.Error.Code
}

func signupAndSignin(t *testing.T, e *echo.Echo, email string) (string, handler.UserData) {
	t.Helper()

	rec := call(t, e, http.MethodPost, "/signup", "", map[string]string{
		"email": email, "password": "secret123", "firstName": "Ana", "lastName": "Souza",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = call(t, e, http.MethodPost, "/signin", "", map[string]string{"email": email, "password": "secret123"})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	signin := decode[handler.SigninData](t, rec)
	require.NotEmpty(t, signin.Token)

	return signin.Token, *signin.User
}

func TestHealthCheck(t *testing.T) {
	e := newTestServer(t)

	rec := call(t, e, http.MethodGet, "/health", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
	assert.Equal(t, map[string]string{"status": "ok"}, decode[map[string]string](t, rec))
}

func TestRequestIDIsEchoed(t *testing.T) {
	e := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/events/"+uuid.NewString(), nil)
	req.Header.Set(echo.HeaderXRequestID, "req-123")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	assert.Equal(t, "EVENT_NOT_FOUND", env.Error.Code)
	assert.Equal(t, "req-123", env.Meta.RequestID)
}

func TestAuthFlow(t *testing.T) {
	e := newTestServer(t)
	token, user := signupAndSignin(t, e, "ana@example.com")
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Nil(t, user.UpdatedAt)

	t.Run("duplicate signup", func(t *testing.T) {
		rec := call(t, e, http.MethodPost, "/signup", "", map[string]string{
			"email": "ana@example.com", "password": "another1", "firstName": "A", "lastName": "B",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "USER_ALREADY_EXISTS", errorCode(t, rec))
	})

	t.Run("invalid signup body", func(t *testing.T) {
		rec := call(t, e, http.MethodPost, "/signup", "", map[string]string{"email": "not-an-email"})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "VALIDATION_FAILED", errorCode(t, rec))
	})

	t.Run("unknown email", func(t *testing.T) {
		rec := call(t, e, http.MethodPost, "/signin", "", map[string]string{"email": "nobody@example.com", "password": "x"})
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "USER_NOT_FOUND", errorCode(t, rec))
	})

	t.Run("wrong password", func(t *testing.T) {
		rec := call(t, e, http.MethodPost, "/signin", "", map[string]string{"email": "ana@example.com", "password": "wrong-one"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "INVALID_CREDENTIALS", errorCode(t, rec))
	})

	t.Run("missing token", func(t *testing.T) {
		rec := call(t, e, http.MethodGet, "/users/current", "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "UNAUTHENTICATED", errorCode(t, rec))
	})

	t.Run("current user", func(t *testing.T) {
		rec := call(t, e, http.MethodGet, "/users/current", token, nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, user.ID, decode[handler.UserData](t, rec).ID)
	})

	t.Run("update without changes keeps updatedAt empty", func(t *testing.T) {
		rec := call(t, e, http.MethodPut, "/users/current", token, map[string]string{"firstName": "Ana", "email": ""})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Nil(t, decode[handler.UserData](t, rec).UpdatedAt)
	})

	t.Run("update last name", func(t *testing.T) {
		rec := call(t, e, http.MethodPut, "/users/current", token, map[string]string{"lastName": "Lima"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decode[handler.UserData](t, rec)
		assert.Equal(t, "Ana", updated.FirstName)
		assert.Equal(t, "Lima", updated.LastName)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("logout revokes the token", func(t *testing.T) {
		rec := call(t, e, http.MethodPost, "/logout", token, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = call(t, e, http.MethodGet, "/users/current", token, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestEventLifecycle(t *testing.T) {
	e := newTestServer(t)
	ownerToken, owner := signupAndSignin(t, e, "owner@example.com")
	strangerToken, _ := signupAndSignin(t, e, "stranger@example.com")

	startsAt := time.Now().Add(72 * time.Hour).UTC().Truncate(time.Second)
	rec := call(t, e, http.MethodPost, "/events", ownerToken, map[string]any{
		"name":        "Gopher Meetup",
		"description": "Monthly meetup",
		"startsAt":    startsAt,
		"finishesAt":  startsAt.Add(3 * time.Hour),
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	event := decode[handler.EventData](t, rec)
	assert.Equal(t, "Gopher Meetup", event.Name)
	assert.Nil(t, event.UpdatedAt)
	assert.Nil(t, event.Location)
	require.NotNil(t, event.CreatedBy)
	assert.Equal(t, owner.ID, event.CreatedBy.ID)
	assert.Empty(t, event.CreatedBy.Email)

	eventPath := "/events/" + event.ID.String()

	t.Run("schedule must not end before it starts", func(t *testing.T) {
		rec := call(t, e, http.MethodPost, "/events", ownerToken, map[string]any{
			"name": "Backwards", "startsAt": startsAt, "finishesAt": startsAt.Add(-time.Hour),
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "INVALID_SCHEDULE", errorCode(t, rec))
	})

	t.Run("non owner cannot update", func(t *testing.T) {
		rec := call(t, e, http.MethodPut, eventPath, strangerToken, map[string]string{"name": "Hijacked"})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Equal(t, "NOT_RESOURCE_OWNER", errorCode(t, rec))
	})

	t.Run("empty update changes nothing", func(t *testing.T) {
		rec := call(t, e, http.MethodPut, eventPath, ownerToken, map[string]any{"name": "", "description": "Monthly meetup"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		assert.Nil(t, decode[handler.EventData](t, rec).UpdatedAt)
	})

	t.Run("rename only", func(t *testing.T) {
		rec := call(t, e, http.MethodPut, eventPath, ownerToken, map[string]string{"name": "Gopher Night"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		renamed := decode[handler.EventData](t, rec)
		assert.Equal(t, "Gopher Night", renamed.Name)
		assert.Equal(t, "Monthly meetup", renamed.Description)
		assert.True(t, startsAt.Equal(renamed.StartsAt))
		assert.NotNil(t, renamed.UpdatedAt)
	})

	t.Run("location", func(t *testing.T) {
		rec := call(t, e, http.MethodGet, eventPath+"/location", ownerToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = call(t, e, http.MethodPost, eventPath+"/location", ownerToken, map[string]string{
			"addressLine1": "Nowhere Street 1", "postalCode": "00000-000", "country": "Brazil",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "ADDRESS_UNRESOLVABLE", errorCode(t, rec))

		rec = call(t, e, http.MethodPost, eventPath+"/location", strangerToken, map[string]string{
			"addressLine1": "Avenida Paulista 1578", "postalCode": "01310-200", "country": "Brazil",
		})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = call(t, e, http.MethodPost, eventPath+"/location", ownerToken, map[string]string{
			"addressLine1": "Avenida Paulista 1578", "postalCode": "01310-200", "country": "Brazil",
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		location := decode[handler.LocationData](t, rec)
		assert.Equal(t, "São Paulo", location.State)
		assert.Equal(t, "01310-200", location.PostalCode)
		assert.InDelta(t, -23.5614, location.Latitude, 1e-9)

		rec = call(t, e, http.MethodPost, eventPath+"/location", ownerToken, map[string]string{
			"addressLine1": "Avenida Paulista 1578", "postalCode": "01310-200", "country": "Brazil",
		})
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "LOCATION_ALREADY_EXISTS", errorCode(t, rec))

		rec = call(t, e, http.MethodPut, eventPath+"/location", ownerToken, map[string]string{"addressLine2": "Sala 3"})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decode[handler.LocationData](t, rec)
		require.NotNil(t, updated.AddressLine2)
		assert.Equal(t, "Sala 3", *updated.AddressLine2)
		assert.Equal(t, location.AddressLine1, updated.AddressLine1)
		assert.NotNil(t, updated.UpdatedAt)
	})

	t.Run("nearby listing", func(t *testing.T) {
		rec := call(t, e, http.MethodGet, "/events?near=-23.56,-46.65&radiusKm=5", "", nil)
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		nearby := decode[[]handler.EventData](t, rec)
		require.Len(t, nearby, 1)
		assert.Equal(t, event.ID, nearby[0].ID)

		rec = call(t, e, http.MethodGet, "/events?near=-22.9068,-43.1729", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Empty(t, decode[[]handler.EventData](t, rec))

		rec = call(t, e, http.MethodGet, "/events?near=north", "", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("ticket allotments", func(t *testing.T) {
		allotmentsPath := eventPath + "/ticket_allotments"

		rec := call(t, e, http.MethodPost, allotmentsPath, ownerToken, map[string]any{
			"name": "Early bird", "paymentAmount": 5000, "ticketsQuantityLimit": 100,
		})
		require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
		allotment := decode[handler.TicketAllotmentData](t, rec)
		assert.Equal(t, event.ID, allotment.EventID)
		assert.Nil(t, allotment.UpdatedAt)

		rec = call(t, e, http.MethodPost, allotmentsPath, strangerToken, map[string]any{"name": "Free", "paymentAmount": 0})
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		allotmentPath := allotmentsPath + "/" + allotment.ID.String()
		rec = call(t, e, http.MethodPut, allotmentPath, ownerToken, map[string]any{"paymentAmount": 0})
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		updated := decode[handler.TicketAllotmentData](t, rec)
		assert.Equal(t, 0, updated.PaymentAmount)
		assert.Equal(t, 100, updated.TicketsQuantityLimit)
		assert.NotNil(t, updated.UpdatedAt)

		rec = call(t, e, http.MethodGet, allotmentsPath, "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Len(t, decode[[]handler.TicketAllotmentData](t, rec), 1)

		rec = call(t, e, http.MethodDelete, allotmentPath, ownerToken, nil)
		assert.Equal(t, http.StatusNoContent, rec.Code)

		rec = call(t, e, http.MethodGet, allotmentPath, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("qr code", func(t *testing.T) {
		rec := call(t, e, http.MethodGet, eventPath+"/qr", "", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
		assert.True(t, bytes.HasPrefix(rec.Body.Bytes(), []byte("\x89PNG")))
	})

	t.Run("delete", func(t *testing.T) {
		rec := call(t, e, http.MethodDelete, eventPath, strangerToken, nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		rec = call(t, e, http.MethodDelete, eventPath, ownerToken, nil)
		require.Equal(t, http.StatusNoContent, rec.Code)

		rec = call(t, e, http.MethodGet, eventPath, "", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)

		rec = call(t, e, http.MethodDelete, eventPath, ownerToken, nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
