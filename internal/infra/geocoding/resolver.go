// Package geocoding resolves postal addresses into geocoded locations using a
// Google Geocoding compatible HTTP API.
package geocoding

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"outside/config"
	"outside/internal/domain/entity"
	domainerrors "outside/internal/domain/errors"
	"outside/internal/domain/service"
	"outside/internal/errors"

	"github.com/paulmach/orb"
)

const defaultEndpoint = "https://maps.googleapis.com/maps/api/geocode/json"

type googleResolver struct {
	endpoint string
	apiKey   string
	client   *http.Client
	logger   *slog.Logger
}

// NewResolver creates an AddressResolver backed by the configured endpoint.
func NewResolver(cfg *config.Config, logger *slog.Logger) service.AddressResolver {
	geoCfg := cfg.Geocoding
	if geoCfg == nil {
		geoCfg = &config.GeocodingConfig{}
	}

	endpoint := geoCfg.Endpoint
	if endpoint == "" {
		endpoint = defaultEndpoint
	}

	return &googleResolver{
		endpoint: endpoint,
		apiKey:   geoCfg.APIKey,
		client:   NewHTTPClient(geoCfg.Timeout),
		logger:   logger.With(slog.String("component", "geocoding")),
	}
}

// Resolve looks up the address and accepts only an unambiguous OK answer.
// Country, state and city come from the resolver; postal code and line 2 are
// passed through from the query.
func (r *googleResolver) Resolve(ctx context.Context, query entity.AddressQuery) (*entity.ResolvedLocation, error) {
	resp, err := r.lookup(ctx, query.String())
	if err != nil {
		return nil, err
	}

	if resp == nil {
		return nil, domainerrors.ErrAddressUnresolvable.WrapMessage("empty geocoding response")
	}
	if resp.Status != StatusOK {
		r.logger.WarnContext(ctx, "Address not resolved",
			slog.String("status", resp.Status),
			slog.String("error_message", resp.ErrorMessage),
		)

		return nil, domainerrors.ErrAddressUnresolvable.WrapMessage("geocoding status " + resp.Status)
	}
	if len(resp.Results) != 1 {
		return nil, domainerrors.ErrAddressUnresolvable.WrapMessage(fmt.Sprintf("geocoding returned %d results", len(resp.Results)))
	}

	return toResolvedLocation(resp.Results[0], query), nil
}

func (r *googleResolver) lookup(ctx context.Context, address string) (*Response, error) {
	q := url.Values{}
	q.Set("address", address)
	q.Set("key", r.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, r.endpoint+"?"+q.Encode(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build geocoding request")
	}

	res, err := r.client.Do(req)
	if err != nil {
		r.logger.ErrorContext(ctx, "Geocoding request failed", slog.Any("error", err))

		return nil, errors.Wrap(err, "geocoding request failed")
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		return nil, errors.Errorf("geocoding http %d", res.StatusCode)
	}

	var body *Response
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, errors.Wrap(err, "failed to decode geocoding response")
	}

	return body, nil
}

func toResolvedLocation(result Result, query entity.AddressQuery) *entity.ResolvedLocation {
	var route, number, locality, city, state, country string
	for _, c := range result.AddressComponents {
		if c.HasType("route") {
			route = c.LongName
		}
		if c.HasType("street_number") {
			number = c.LongName
		}
		if c.HasType("locality") || c.HasType("sublocality") {
			locality = c.LongName
		}
		if c.HasType("administrative_area_level_2") {
			city = c.LongName
		}
		if c.HasType("administrative_area_level_1") {
			state = c.LongName
		}
		if c.HasType("country") {
			country = c.LongName
		}
	}

	resolved := &entity.ResolvedLocation{
		Point:        orb.Point{result.Geometry.Location.Lng, result.Geometry.Location.Lat},
		Country:      country,
		State:        state,
		City:         city,
		PostalCode:   query.PostalCode,
		AddressLine1: fmt.Sprintf("%s %s, %s", route, number, locality),
	}
	if query.AddressLine2 != nil {
		line2 := *query.AddressLine2
		resolved.AddressLine2 = &line2
	}

	return resolved
}
