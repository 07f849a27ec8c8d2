// Package location exposes the geocoder and the airport locator directly,
// without ranking.
package location

import (
	"context"
	"fmt"

	"tripscout/pkg/amadeus"
	"tripscout/pkg/apperr"
	"tripscout/pkg/geocoder"
	"tripscout/pkg/logger"
)

const DefaultAirportRadiusKm = 100

type Geocoder interface {
	Geocode(ctx context.Context, q geocoder.Query) (*geocoder.Result, error)
}

type AirportLocator interface {
	FindAirports(ctx context.Context, req amadeus.AirportSearch) (*amadeus.AirportResponse, error)
}

type Service struct {
	geocoder Geocoder
	airports AirportLocator
	logger   logger.Client
}

func NewService(geo Geocoder, airports AirportLocator, logger logger.Client) *Service {
	return &Service{geocoder: geo, airports: airports, logger: logger}
}

// CityAirports is the provider's airport list around a geocoded city, in
// provider order.
type CityAirports struct {
	Location   *geocoder.Result  `json:"geocodingInfo"`
	Airports   []amadeus.Airport `json:"airports"`
	TotalCount int               `json:"totalCount"`
	RadiusKm   float64           `json:"radiusKm"`
}

func (s *Service) Geocode(ctx context.Context, q geocoder.Query) (*geocoder.Result, error) {
	return s.geocoder.Geocode(ctx, q)
}

func (s *Service) AirportsNear(ctx context.Context, lat, lon, radiusKm float64) (*amadeus.AirportResponse, error) {
	return s.airports.FindAirports(ctx, amadeus.AirportSearch{
		Latitude:  lat,
		Longitude: lon,
		RadiusKm:  orDefaultRadius(radiusKm),
	})
}

// AirportsNearCity geocodes q and lists the airports around it.
func (s *Service) AirportsNearCity(ctx context.Context, q geocoder.Query, radiusKm float64) (*CityAirports, error) {
	radiusKm = orDefaultRadius(radiusKm)
	if !(radiusKm > 0 && radiusKm <= amadeus.MaxAirportRadiusKm) {
		return nil, apperr.Validation("Radius must be between 1 and %d kilometers", amadeus.MaxAirportRadiusKm)
	}

	loc, err := s.geocoder.Geocode(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("failed to geocode city %q: %w", q.City, err)
	}

	resp, err := s.airports.FindAirports(ctx, amadeus.AirportSearch{
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
		RadiusKm:  radiusKm,
	})
	if err != nil {
		return nil, err
	}

	airports := resp.Data
	if airports == nil {
		airports = []amadeus.Airport{}
	}
	s.logger.Debug("airports near city",
		logger.Field{Key: "city", Value: q.City},
		logger.Field{Key: "count", Value: len(airports)},
	)
	return &CityAirports{
		Location:   loc,
		Airports:   airports,
		TotalCount: len(airports),
		RadiusKm:   radiusKm,
	}, nil
}

func orDefaultRadius(r float64) float64 {
	if r == 0 {
		return DefaultAirportRadiusKm
	}
	return r
}
