package flight

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"tripscout/pkg/amadeus"
	"tripscout/pkg/apperr"
	"tripscout/pkg/geocoder"
	"tripscout/pkg/logger"
)

const (
	DefaultAirportRadiusKm = 100

	// airportsPerCity bounds the fan-out to at most four pairs.
	airportsPerCity    = 2
	offersPerPair      = 5
	maxConcurrentPairs = airportsPerCity * airportsPerCity
)

type airportPair struct {
	origin      amadeus.Airport
	destination amadeus.Airport
}

type pairResult struct {
	pair airportPair
	resp *amadeus.FlightOffersResponse
	err  error
}

// SearchByCity resolves both cities to their best airports, searches every
// origin/destination pair concurrently and merges the offers, shortest first.
// A failed pair is skipped; the search fails only when every pair failed.
func (s *Service) SearchByCity(ctx context.Context, req CitySearchRequest) (*amadeus.FlightOffersResponse, error) {
	if strings.TrimSpace(req.OriginCity) == "" || strings.TrimSpace(req.DestinationCity) == "" || req.Criteria.DepartureDate == "" {
		return nil, apperr.Validation("Origin city, destination city, and departure date are required")
	}
	if err := req.Criteria.ValidateTrip(); err != nil {
		return nil, err
	}
	radius := req.AirportRadiusKm
	if radius == 0 {
		radius = DefaultAirportRadiusKm
	}
	if !(radius > 0 && radius <= amadeus.MaxAirportRadiusKm) {
		return nil, apperr.Validation("Radius must be between 1 and %d kilometers", amadeus.MaxAirportRadiusKm)
	}

	ctx, span := s.tracer.Start(ctx, "flight.SearchByCity")
	defer span.End()
	span.SetAttributes(
		attribute.String("flight.origin_city", req.OriginCity),
		attribute.String("flight.destination_city", req.DestinationCity),
	)

	cacheKey := generateCacheKey("city",
		strings.ToLower(req.OriginCity), strings.ToLower(req.OriginCountry),
		strings.ToLower(req.DestinationCity), strings.ToLower(req.DestinationCountry),
		strconv.FormatFloat(radius, 'f', -1, 64),
		req.Criteria.QueryParams().Encode(),
	)
	if resp, ok := s.fromCache(ctx, cacheKey); ok {
		span.SetAttributes(attribute.Bool("flight.cache_hit", true))
		return resp, nil
	}

	origins, err := s.rankedAirports(ctx, "origin", req.OriginCity, req.OriginCountry, radius)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	destinations, err := s.rankedAirports(ctx, "destination", req.DestinationCity, req.DestinationCountry, radius)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	results := s.searchPairs(ctx, pairUp(origins, destinations), req.Criteria)

	offers := make([]amadeus.FlightOffer, 0)
	var lastErr error
	failed := 0
	for _, r := range results {
		if r.err != nil {
			lastErr = r.err
			failed++
			continue
		}
		offers = append(offers, decorate(r.resp.Data, r.pair)...)
	}
	span.SetAttributes(
		attribute.Int("flight.pairs", len(results)),
		attribute.Int("flight.pairs_failed", failed),
	)

	if failed == len(results) {
		span.RecordError(lastErr)
		span.SetStatus(codes.Error, lastErr.Error())
		return nil, lastErr
	}

	sortByDuration(offers)
	if limit := maxOffers(req.Criteria); len(offers) > limit {
		offers = offers[:limit]
	}

	resp := &amadeus.FlightOffersResponse{
		Data:         offers,
		Dictionaries: amadeus.EmptyDictionaries(),
		Meta:         amadeus.Meta{Count: len(offers)},
	}

	// Only complete results are cached.
	if failed == 0 {
		s.store(ctx, cacheKey, resp)
	}
	return resp, nil
}

// rankedAirports geocodes a city and returns its best airports. role is
// "origin" or "destination" and only shapes error messages.
func (s *Service) rankedAirports(ctx context.Context, role, city, country string, radius float64) ([]amadeus.Airport, error) {
	location, err := s.geocoder.Geocode(ctx, geocoder.Query{City: city, Country: country})
	if err != nil {
		return nil, fmt.Errorf("failed to geocode %s city %q: %w", role, city, err)
	}

	found, err := s.airports.FindAirports(ctx, amadeus.AirportSearch{
		Latitude:  location.Latitude,
		Longitude: location.Longitude,
		RadiusKm:  radius,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to find airports near %s city %q: %w", role, city, err)
	}

	ranked := RankAirports(found.Data)
	if len(ranked) == 0 {
		return nil, apperr.NoAirports(city, radius, len(found.Data))
	}

	iataCodes := make([]string, len(ranked))
	for i, a := range ranked {
		iataCodes[i] = a.IATACode
	}
	s.logger.Debug("ranked airports",
		logger.Field{Key: "role", Value: role},
		logger.Field{Key: "city", Value: city},
		logger.Field{Key: "airports", Value: strings.Join(iataCodes, ",")},
	)
	return ranked, nil
}

func pairUp(origins, destinations []amadeus.Airport) []airportPair {
	origins = origins[:min(len(origins), airportsPerCity)]
	destinations = destinations[:min(len(destinations), airportsPerCity)]

	pairs := make([]airportPair, 0, len(origins)*len(destinations))
	for _, o := range origins {
		for _, d := range destinations {
			pairs = append(pairs, airportPair{origin: o, destination: d})
		}
	}
	return pairs
}

// searchPairs runs one offer search per pair. Every goroutine writes only its
// own slot, and a failure never cancels its siblings.
func (s *Service) searchPairs(ctx context.Context, pairs []airportPair, base amadeus.FlightSearchCriteria) []pairResult {
	results := make([]pairResult, len(pairs))

	var g errgroup.Group
	g.SetLimit(maxConcurrentPairs)
	for i, p := range pairs {
		g.Go(func() error {
			criteria := base
			criteria.OriginLocationCode = p.origin.IATACode
			criteria.DestinationLocationCode = p.destination.IATACode
			criteria.Max = offersPerPair

			resp, err := s.offers.SearchOffers(ctx, criteria)
			results[i] = pairResult{pair: p, resp: resp, err: err}
			if err != nil {
				s.pairFailures.Add(ctx, 1, metric.WithAttributes(
					attribute.String("apperr.code", string(apperr.CodeOf(err))),
				))
				s.logger.Warn("flight search failed for airport pair",
					logger.Field{Key: "origin", Value: p.origin.IATACode},
					logger.Field{Key: "destination", Value: p.destination.IATACode},
					logger.Field{Key: "err", Value: err},
				)
			}
			return nil
		})
	}
	_ = g.Wait()

	return results
}

// decorate returns copies of offers annotated with the pair's airports.
func decorate(offers []amadeus.FlightOffer, p airportPair) []amadeus.FlightOffer {
	out := make([]amadeus.FlightOffer, len(offers))
	for i, o := range offers {
		o.OriginAirport = amadeus.RefOf(p.origin)
		o.DestinationAirport = amadeus.RefOf(p.destination)
		out[i] = o
	}
	return out
}

func maxOffers(c amadeus.FlightSearchCriteria) int {
	if c.Max <= 0 {
		return amadeus.DefaultMaxOffers
	}
	return c.Max
}
