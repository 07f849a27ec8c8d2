package flight

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tripscout/pkg/amadeus"
	"tripscout/pkg/geocoder"
)

// MockGeocoder is a mock implementation of Geocoder
type MockGeocoder struct {
	mock.Mock
}

func (m *MockGeocoder) Geocode(ctx context.Context, q geocoder.Query) (*geocoder.Result, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*geocoder.Result), args.Error(1)
}

// MockAirportLocator is a mock implementation of AirportLocator
type MockAirportLocator struct {
	mock.Mock
}

func (m *MockAirportLocator) FindAirports(ctx context.Context, req amadeus.AirportSearch) (*amadeus.AirportResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amadeus.AirportResponse), args.Error(1)
}

// MockOfferFetcher is a mock implementation of OfferFetcher
type MockOfferFetcher struct {
	mock.Mock
}

func (m *MockOfferFetcher) SearchOffers(ctx context.Context, criteria amadeus.FlightSearchCriteria) (*amadeus.FlightOffersResponse, error) {
	args := m.Called(ctx, criteria)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amadeus.FlightOffersResponse), args.Error(1)
}

func (m *MockOfferFetcher) GetFlightOffer(ctx context.Context, id string) (*amadeus.FlightOffer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*amadeus.FlightOffer), args.Error(1)
}

func airport(code string, score, distance float64) amadeus.Airport {
	a := amadeus.Airport{
		Type:     "location",
		SubType:  "AIRPORT",
		Name:     code + " INTL",
		IATACode: code,
		Distance: amadeus.Distance{Value: distance, Unit: "KM"},
	}
	a.Analytics.Travelers.Score = score
	return a
}

func offer(id, duration string) amadeus.FlightOffer {
	return amadeus.FlightOffer{
		Type:        "flight-offer",
		ID:          id,
		Itineraries: []amadeus.Itinerary{{Duration: duration}},
		Price:       amadeus.FlightPrice{Currency: "EUR", Total: "100.00"},
	}
}

func offersOf(o ...amadeus.FlightOffer) *amadeus.FlightOffersResponse {
	return &amadeus.FlightOffersResponse{Data: o, Meta: amadeus.Meta{Count: len(o)}}
}

// pair matches offer searches for one origin/destination combination.
func pair(origin, destination string) any {
	return mock.MatchedBy(func(c amadeus.FlightSearchCriteria) bool {
		return c.OriginLocationCode == origin && c.DestinationLocationCode == destination
	})
}
