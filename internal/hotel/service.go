// Package hotel serves hotel lists and room offers, by city code, by
// coordinates, or by free-text city name.
package hotel

import (
	"context"
	"fmt"
	"strings"

	"tripscout/pkg/amadeus"
	"tripscout/pkg/apperr"
	"tripscout/pkg/geocoder"
	"tripscout/pkg/logger"
)

type Geocoder interface {
	Geocode(ctx context.Context, q geocoder.Query) (*geocoder.Result, error)
}

type Provider interface {
	Available() bool
	SearchHotels(ctx context.Context, req amadeus.HotelSearch) (*amadeus.HotelListResponse, error)
	SearchHotelsByIDs(ctx context.Context, ids []string, opts amadeus.HotelSearch) (*amadeus.HotelListResponse, error)
	SearchHotelOffers(ctx context.Context, req amadeus.HotelOfferSearch) (*amadeus.HotelOffersResponse, error)
}

type Service struct {
	geocoder Geocoder
	provider Provider
	logger   logger.Client
}

func NewService(geo Geocoder, provider Provider, logger logger.Client) *Service {
	return &Service{geocoder: geo, provider: provider, logger: logger}
}

// City names a free-text city with an optional country.
type City struct {
	Name        string
	CountryCode string
}

// CityOffersRequest searches room offers in every hotel found around a city.
// Hotels carries the list filters; Offers the stay details. Location fields
// of Offers are ignored.
type CityOffersRequest struct {
	City   City
	Hotels amadeus.HotelSearch
	Offers amadeus.HotelOfferSearch
}

func (s *Service) checkAvailable() error {
	if !s.provider.Available() {
		return apperr.Auth("Amadeus API credentials not configured", 0, "", nil)
	}
	return nil
}

func (s *Service) SearchHotels(ctx context.Context, req amadeus.HotelSearch) (*amadeus.HotelListResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAvailable(); err != nil {
		return nil, err
	}
	return s.provider.SearchHotels(ctx, req)
}

func (s *Service) SearchByIDs(ctx context.Context, ids []string, opts amadeus.HotelSearch) (*amadeus.HotelListResponse, error) {
	if err := s.checkAvailable(); err != nil {
		return nil, err
	}
	return s.provider.SearchHotelsByIDs(ctx, ids, opts)
}

func (s *Service) SearchOffers(ctx context.Context, req amadeus.HotelOfferSearch) (*amadeus.HotelOffersResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	if err := s.checkAvailable(); err != nil {
		return nil, err
	}
	return s.provider.SearchHotelOffers(ctx, req)
}

// SearchByCity geocodes the city and lists hotels around its coordinates.
// Any city code in opts is dropped.
func (s *Service) SearchByCity(ctx context.Context, city City, opts amadeus.HotelSearch) (*amadeus.HotelListResponse, error) {
	if strings.TrimSpace(city.Name) == "" {
		return nil, apperr.Validation("City name is required")
	}
	if err := opts.ValidateOptions(); err != nil {
		return nil, err
	}
	if err := s.checkAvailable(); err != nil {
		return nil, err
	}

	loc, err := s.geocoder.Geocode(ctx, geocoder.Query{City: city.Name, Country: city.CountryCode})
	if err != nil {
		return nil, fmt.Errorf("failed to geocode city %q: %w", city.Name, err)
	}

	opts.CityCode = ""
	opts.Latitude = &loc.Latitude
	opts.Longitude = &loc.Longitude

	s.logger.Debug("searching hotels near city",
		logger.Field{Key: "city", Value: city.Name},
		logger.Field{Key: "lat", Value: loc.Latitude},
		logger.Field{Key: "lon", Value: loc.Longitude},
	)
	return s.provider.SearchHotels(ctx, opts)
}

// OffersByCity lists hotels around the city and then searches offers for
// those hotels. No hotels is an empty result, not an error.
func (s *Service) OffersByCity(ctx context.Context, req CityOffersRequest) (*amadeus.HotelOffersResponse, error) {
	offers := req.Offers
	offers.CityCode = ""
	offers.Latitude, offers.Longitude = nil, nil
	if err := offers.ValidateStay(); err != nil {
		return nil, err
	}
	if err := req.Hotels.ValidateOptions(); err != nil {
		return nil, err
	}

	hotels, err := s.SearchByCity(ctx, req.City, req.Hotels)
	if err != nil {
		return nil, err
	}
	if len(hotels.Data) == 0 {
		return &amadeus.HotelOffersResponse{Data: []amadeus.HotelOfferResult{}}, nil
	}

	ids := make([]string, 0, len(hotels.Data))
	for _, h := range hotels.Data {
		if h.HotelID != "" {
			ids = append(ids, h.HotelID)
		}
	}
	if len(ids) == 0 {
		return &amadeus.HotelOffersResponse{Data: []amadeus.HotelOfferResult{}}, nil
	}
	offers.HotelIDs = ids

	return s.provider.SearchHotelOffers(ctx, offers)
}
