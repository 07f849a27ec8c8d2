package flight

import (
	"context"
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"

	"tripscout/pkg/amadeus"
	"tripscout/pkg/cache"
	"tripscout/pkg/geocoder"
	"tripscout/pkg/logger"
)

type Geocoder interface {
	Geocode(ctx context.Context, q geocoder.Query) (*geocoder.Result, error)
}

type AirportLocator interface {
	FindAirports(ctx context.Context, req amadeus.AirportSearch) (*amadeus.AirportResponse, error)
}

type OfferFetcher interface {
	SearchOffers(ctx context.Context, criteria amadeus.FlightSearchCriteria) (*amadeus.FlightOffersResponse, error)
	GetFlightOffer(ctx context.Context, id string) (*amadeus.FlightOffer, error)
}

type Service struct {
	geocoder Geocoder
	airports AirportLocator
	offers   OfferFetcher
	cache    cache.Cache
	ttl      time.Duration
	logger   logger.Client

	tracer       trace.Tracer
	pairFailures metric.Int64Counter
}

func NewService(geo Geocoder, airports AirportLocator, offers OfferFetcher, cache cache.Cache, ttlMinutes int, logger logger.Client) *Service {
	meter := otel.Meter("tripscout/internal/flight")
	pairFailures, err := meter.Int64Counter("flight.city_search.pair_failures",
		metric.WithDescription("Airport pairs whose offer search failed during a city search"),
	)
	if err != nil {
		pairFailures = noop.Int64Counter{}
	}

	return &Service{
		geocoder:     geo,
		airports:     airports,
		offers:       offers,
		cache:        cache,
		ttl:          time.Duration(ttlMinutes) * time.Minute,
		logger:       logger,
		tracer:       otel.Tracer("tripscout/internal/flight"),
		pairFailures: pairFailures,
	}
}

// SearchOffers searches between two known airport codes.
func (s *Service) SearchOffers(ctx context.Context, criteria amadeus.FlightSearchCriteria) (*amadeus.FlightOffersResponse, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}

	cacheKey := generateCacheKey("codes", criteria.QueryParams().Encode())
	if resp, ok := s.fromCache(ctx, cacheKey); ok {
		return resp, nil
	}

	resp, err := s.offers.SearchOffers(ctx, criteria)
	if err != nil {
		return nil, err
	}

	s.store(ctx, cacheKey, resp)
	return resp, nil
}

func (s *Service) GetOffer(ctx context.Context, id string) (*amadeus.FlightOffer, error) {
	return s.offers.GetFlightOffer(ctx, id)
}

// generateCacheKey creates a deterministic key from search parameters
func generateCacheKey(kind string, parts ...string) string {
	h := sha256.New()
	h.Write([]byte(kind))
	for _, p := range parts {
		h.Write([]byte{0})
		h.Write([]byte(p))
	}
	return fmt.Sprintf("flight:search:%x", h.Sum(nil)[:16])
}

func (s *Service) fromCache(ctx context.Context, cacheKey string) (*amadeus.FlightOffersResponse, bool) {
	if s.cache == nil || s.ttl <= 0 {
		return nil, false
	}

	cached, err := s.cache.Get(ctx, cacheKey)
	if err != nil || cached == "" {
		return nil, false
	}

	var response amadeus.FlightOffersResponse
	if err := json.Unmarshal([]byte(cached), &response); err != nil {
		s.logger.Error("Failed to unmarshal cached data", logger.Field{Key: "err", Value: err})
		return nil, false
	}
	s.logger.Info("Cache hit for search", logger.Field{Key: "cache_key", Value: cacheKey})
	return &response, true
}

func (s *Service) store(ctx context.Context, cacheKey string, resp *amadeus.FlightOffersResponse) {
	if s.cache == nil || s.ttl <= 0 {
		return
	}

	responseBytes, err := json.Marshal(resp)
	if err != nil {
		s.logger.Error("Failed to marshal response", logger.Field{Key: "err", Value: err})
		return
	}

	if err := s.cache.Set(ctx, cacheKey, string(responseBytes), s.ttl); err != nil {
		s.logger.Error("Failed to cache response", logger.Field{Key: "err", Value: err})
	}
}
