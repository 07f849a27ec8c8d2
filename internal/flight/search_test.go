package flight

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tripscout/pkg/amadeus"
	"tripscout/pkg/apperr"
	"tripscout/pkg/cache"
	"tripscout/pkg/geocoder"
	"tripscout/pkg/logger"
)

type resolverFixture struct {
	geo      *MockGeocoder
	airports *MockAirportLocator
	offers   *MockOfferFetcher
	svc      *Service
}

// newResolverFixture wires Paris (CDG, ORY ranked first) and London (LHR,
// LGW ranked first). Offer searches are left to each test.
func newResolverFixture(t *testing.T, store cache.Cache) *resolverFixture {
	t.Helper()
	f := &resolverFixture{
		geo:      new(MockGeocoder),
		airports: new(MockAirportLocator),
		offers:   new(MockOfferFetcher),
	}

	f.geo.On("Geocode", mock.Anything, geocoder.Query{City: "Paris", Country: "France"}).
		Return(&geocoder.Result{Latitude: 48.85, Longitude: 2.35}, nil)
	f.geo.On("Geocode", mock.Anything, geocoder.Query{City: "London", Country: "UK"}).
		Return(&geocoder.Result{Latitude: 51.5, Longitude: -0.12}, nil)

	f.airports.On("FindAirports", mock.Anything, amadeus.AirportSearch{Latitude: 48.85, Longitude: 2.35, RadiusKm: 100}).
		Return(&amadeus.AirportResponse{Data: []amadeus.Airport{
			airport("BVA", 5, 70),
			airport("ORY", 30, 14),
			airport("CDG", 40, 25),
		}}, nil)
	f.airports.On("FindAirports", mock.Anything, amadeus.AirportSearch{Latitude: 51.5, Longitude: -0.12, RadiusKm: 100}).
		Return(&amadeus.AirportResponse{Data: []amadeus.Airport{
			airport("STN", 10, 50),
			airport("LGW", 30, 45),
			airport("LHR", 45, 23),
		}}, nil)

	f.svc = NewService(f.geo, f.airports, f.offers, store, 10, logger.Nop{})
	return f
}

func parisToLondon() CitySearchRequest {
	return CitySearchRequest{
		OriginCity:         "Paris",
		OriginCountry:      "France",
		DestinationCity:    "London",
		DestinationCountry: "UK",
		Criteria:           amadeus.FlightSearchCriteria{DepartureDate: "2025-03-01"},
	}
}

func TestSearchByCity_MergesPairsShortestFirst(t *testing.T) {
	f := newResolverFixture(t, nil)
	f.offers.On("SearchOffers", mock.Anything, pair("CDG", "LHR")).Return(offersOf(offer("cdg-lhr", "PT1H20M")), nil)
	f.offers.On("SearchOffers", mock.Anything, pair("CDG", "LGW")).Return(offersOf(offer("cdg-lgw", "PT1H15M")), nil)
	f.offers.On("SearchOffers", mock.Anything, pair("ORY", "LHR")).Return(offersOf(offer("ory-lhr", "PT3H")), nil)
	f.offers.On("SearchOffers", mock.Anything, pair("ORY", "LGW")).Return(offersOf(offer("ory-lgw", "PT1H15M")), nil)

	resp, err := f.svc.SearchByCity(context.Background(), parisToLondon())
	require.NoError(t, err)

	ids := make([]string, len(resp.Data))
	for i, o := range resp.Data {
		ids[i] = o.ID
	}
	assert.Equal(t, []string{"cdg-lgw", "ory-lgw", "cdg-lhr", "ory-lhr"}, ids)
	assert.Equal(t, 4, resp.Meta.Count)
	assert.Equal(t, amadeus.EmptyDictionaries(), resp.Dictionaries)

	first := resp.Data[0]
	require.NotNil(t, first.OriginAirport)
	require.NotNil(t, first.DestinationAirport)
	assert.Equal(t, "CDG", first.OriginAirport.IATACode)
	assert.Equal(t, "LGW", first.DestinationAirport.IATACode)

	// every pair asks for five offers
	for _, call := range f.offers.Calls {
		assert.Equal(t, 5, call.Arguments.Get(1).(amadeus.FlightSearchCriteria).Max)
	}
	f.offers.AssertNumberOfCalls(t, "SearchOffers", 4)
	f.offers.AssertNotCalled(t, "SearchOffers", mock.Anything, pair("BVA", "LHR"))
}

func TestSearchByCity_ToleratesPartialFailure(t *testing.T) {
	f := newResolverFixture(t, nil)
	f.offers.On("SearchOffers", mock.Anything, pair("CDG", "LHR")).Return(offersOf(offer("a", "PT2H")), nil)
	f.offers.On("SearchOffers", mock.Anything, pair("CDG", "LGW")).Return(offersOf(offer("b", "PT1H")), nil)
	f.offers.On("SearchOffers", mock.Anything, pair("ORY", "LHR")).Return(nil, apperr.Provider("flight offers search", 500, "down"))
	f.offers.On("SearchOffers", mock.Anything, pair("ORY", "LGW")).Return(offersOf(offer("c", "PT3H")), nil)

	resp, err := f.svc.SearchByCity(context.Background(), parisToLondon())
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, "b", resp.Data[0].ID)
}

func TestSearchByCity_AllPairsFailReturnsLastError(t *testing.T) {
	f := newResolverFixture(t, nil)
	f.offers.On("SearchOffers", mock.Anything, pair("CDG", "LHR")).Return(nil, apperr.Provider("flight offers search", 500, "first"))
	f.offers.On("SearchOffers", mock.Anything, pair("CDG", "LGW")).Return(nil, apperr.Provider("flight offers search", 500, "second"))
	f.offers.On("SearchOffers", mock.Anything, pair("ORY", "LHR")).Return(nil, apperr.Provider("flight offers search", 500, "third"))
	f.offers.On("SearchOffers", mock.Anything, pair("ORY", "LGW")).Return(nil, apperr.Provider("flight offers search", 400, "last"))

	_, err := f.svc.SearchByCity(context.Background(), parisToLondon())
	require.Error(t, err)

	appErr, ok := apperr.As(err)
	require.True(t, ok)
	assert.Equal(t, "last", appErr.UpstreamBody)
	assert.Equal(t, 400, appErr.HTTPStatus())
}

func TestSearchByCity_TruncatesToMax(t *testing.T) {
	f := newResolverFixture(t, nil)
	f.offers.On("SearchOffers", mock.Anything, mock.Anything).
		Return(offersOf(offer("x", "PT5H"), offer("y", "PT1H")), nil)

	req := parisToLondon()
	req.Criteria.Max = 3
	resp, err := f.svc.SearchByCity(context.Background(), req)
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, 3, resp.Meta.Count)
	for _, o := range resp.Data {
		assert.Equal(t, "y", o.ID)
	}
}

func TestSearchByCity_NoAirports(t *testing.T) {
	geo := new(MockGeocoder)
	airports := new(MockAirportLocator)
	offers := new(MockOfferFetcher)
	geo.On("Geocode", mock.Anything, mock.Anything).Return(&geocoder.Result{Latitude: 1, Longitude: 1}, nil)
	airports.On("FindAirports", mock.Anything, mock.Anything).Return(&amadeus.AirportResponse{Data: []amadeus.Airport{
		airport("X1", 10, 1),
		airport("HELI", 10, 2),
	}}, nil)
	svc := NewService(geo, airports, offers, nil, 0, logger.Nop{})

	_, err := svc.SearchByCity(context.Background(), parisToLondon())
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNoAirports))
	assert.Equal(t, "No airports found near Paris (searched 2 airports in 100km radius)", err.Error())
	offers.AssertNotCalled(t, "SearchOffers", mock.Anything, mock.Anything)
}

func TestSearchByCity_GeocodeFailureNamesCity(t *testing.T) {
	geo := new(MockGeocoder)
	geo.On("Geocode", mock.Anything, mock.Anything).Return(nil, apperr.NotFound("Location not found: Atlantis"))
	svc := NewService(geo, new(MockAirportLocator), new(MockOfferFetcher), nil, 0, logger.Nop{})

	req := parisToLondon()
	req.OriginCity = "Atlantis"
	_, err := svc.SearchByCity(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperr.Is(err, apperr.CodeNotFound))
	assert.Contains(t, err.Error(), `origin city "Atlantis"`)
}

func TestSearchByCity_ValidatesBeforeGeocoding(t *testing.T) {
	geo := new(MockGeocoder)
	svc := NewService(geo, new(MockAirportLocator), new(MockOfferFetcher), nil, 0, logger.Nop{})

	tests := []struct {
		name   string
		mutate func(*CitySearchRequest)
	}{
		{"missing destination city", func(r *CitySearchRequest) { r.DestinationCity = "" }},
		{"missing departure", func(r *CitySearchRequest) { r.Criteria.DepartureDate = "" }},
		{"infants exceed adults", func(r *CitySearchRequest) { r.Criteria.Infants = 2 }},
		{"bad date", func(r *CitySearchRequest) { r.Criteria.DepartureDate = "01-03-2025" }},
		{"radius too large", func(r *CitySearchRequest) { r.AirportRadiusKm = 600 }},
		{"negative radius", func(r *CitySearchRequest) { r.AirportRadiusKm = -5 }},
		{"radius not a number", func(r *CitySearchRequest) { r.AirportRadiusKm = math.NaN() }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := parisToLondon()
			tt.mutate(&req)
			_, err := svc.SearchByCity(context.Background(), req)
			assert.True(t, apperr.Is(err, apperr.CodeValidation))
		})
	}
	geo.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
}

func TestSearchByCity_CachesCompleteResults(t *testing.T) {
	f := newResolverFixture(t, cache.NewMemoryCache())
	f.offers.On("SearchOffers", mock.Anything, mock.Anything).Return(offersOf(offer("x", "PT1H")), nil)

	first, err := f.svc.SearchByCity(context.Background(), parisToLondon())
	require.NoError(t, err)
	second, err := f.svc.SearchByCity(context.Background(), parisToLondon())
	require.NoError(t, err)

	assert.Equal(t, first.Meta.Count, second.Meta.Count)
	f.offers.AssertNumberOfCalls(t, "SearchOffers", 4)
	f.geo.AssertNumberOfCalls(t, "Geocode", 2)
}

func TestSearchByCity_DoesNotCachePartialResults(t *testing.T) {
	f := newResolverFixture(t, cache.NewMemoryCache())
	f.offers.On("SearchOffers", mock.Anything, pair("CDG", "LHR")).Return(nil, apperr.Provider("flight offers search", 502, ""))
	f.offers.On("SearchOffers", mock.Anything, mock.Anything).Return(offersOf(offer("x", "PT1H")), nil)

	for range 2 {
		_, err := f.svc.SearchByCity(context.Background(), parisToLondon())
		require.NoError(t, err)
	}
	f.offers.AssertNumberOfCalls(t, "SearchOffers", 8)
}
