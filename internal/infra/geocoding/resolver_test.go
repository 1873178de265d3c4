package geocoding

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"outside/config"
	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func paulistaResult() Result {
	return Result{
		AddressComponents: []AddressComponent{
			{LongName: "1578", Types: []string{"street_number"}},
			{LongName: "Avenida Paulista", Types: []string{"route"}},
			{LongName: "Bela Vista", Types: []string{"political", "sublocality", "sublocality_level_1"}},
			{LongName: "São Paulo", Types: []string{"administrative_area_level_2", "political"}},
			{LongName: "São Paulo", Types: []string{"administrative_area_level_1", "political"}},
			{LongName: "Brazil", Types: []string{"country", "political"}},
		},
		Geometry: Geometry{Location: LatLng{Lat: -23.5614, Lng: -46.6559}},
	}
}

func newTestResolver(t *testing.T, handler http.HandlerFunc) *googleResolver {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{Geocoding: &config.GeocodingConfig{Endpoint: srv.URL, APIKey: "test-key", Timeout: time.Second}}

	return NewResolver(cfg, slog.New(slog.NewTextHandler(io.Discard, nil))).(*googleResolver)
}

func writeJSON(t *testing.T, w http.ResponseWriter, body any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(body))
}

func TestResolve_SingleResult(t *testing.T) {
	var gotAddress, gotKey string
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		gotAddress = r.URL.Query().Get("address")
		gotKey = r.URL.Query().Get("key")
		writeJSON(t, w, Response{Status: StatusOK, Results: []Result{paulistaResult()}})
	})

	line2 := "Conjunto 12"
	resolved, err := resolver.Resolve(context.Background(), entity.AddressQuery{
		AddressLine1: "Av Paulista 1578",
		AddressLine2: &line2,
		PostalCode:   "01310-200",
		Country:      "Brasil",
	})

	require.NoError(t, err)
	assert.Equal(t, "Av Paulista 1578, 01310-200, Brasil", gotAddress)
	assert.Equal(t, "test-key", gotKey)
	assert.Equal(t, "Avenida Paulista 1578, Bela Vista", resolved.AddressLine1)
	assert.Equal(t, "Brazil", resolved.Country)
	assert.Equal(t, "São Paulo", resolved.State)
	assert.Equal(t, "São Paulo", resolved.City)
	assert.Equal(t, "01310-200", resolved.PostalCode)
	require.NotNil(t, resolved.AddressLine2)
	assert.Equal(t, "Conjunto 12", *resolved.AddressLine2)
	assert.InDelta(t, -23.5614, resolved.Point.Lat(), 1e-9)
	assert.InDelta(t, -46.6559, resolved.Point.Lon(), 1e-9)
}

func TestResolve_Rejections(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "null body", body: nil},
		{name: "zero results status", body: Response{Status: StatusZeroResults}},
		{name: "denied", body: Response{Status: StatusRequestDenied, ErrorMessage: "bad key"}},
		{name: "ok without results", body: Response{Status: StatusOK}},
		{name: "ambiguous", body: Response{Status: StatusOK, Results: []Result{paulistaResult(), paulistaResult()}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.body)
			})

			resolved, err := resolver.Resolve(context.Background(), entity.AddressQuery{AddressLine1: "x", PostalCode: "1", Country: "y"})

			assert.Nil(t, resolved)
			assert.ErrorIs(t, err, domainerrors.ErrAddressUnresolvable)
		})
	}
}

func TestResolve_TransportFailureIsFatal(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := resolver.Resolve(context.Background(), entity.AddressQuery{AddressLine1: "x"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrAddressUnresolvable)
}

func TestResolve_MalformedBodyIsFatal(t *testing.T) {
	resolver := newTestResolver(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	_, err := resolver.Resolve(context.Background(), entity.AddressQuery{AddressLine1: "x"})

	require.Error(t, err)
	assert.NotErrorIs(t, err, domainerrors.ErrAddressUnresolvable)
}

func TestNewResolver_DefaultEndpoint(t *testing.T) {
	r := NewResolver(&config.Config{}, slog.New(slog.NewTextHandler(io.Discard, nil))).(*googleResolver)

	assert.Equal(t, defaultEndpoint, r.endpoint)
}
