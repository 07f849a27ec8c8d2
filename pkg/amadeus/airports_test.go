package amadeus

import (
	"context"
	"math"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripscout/pkg/apperr"
)

func TestFindAirports(t *testing.T) {
	f := newFakeAmadeus(t)
	f.handle(airportsPath, http.StatusOK, map[string]any{
		"data": []map[string]any{
			{
				"type": "location", "subType": "AIRPORT", "name": "CHARLES DE GAULLE", "iataCode": "CDG",
				"address":   map[string]any{"cityName": "PARIS", "countryName": "FRANCE"},
				"distance":  map[string]any{"value": 24, "unit": "KM"},
				"analytics": map[string]any{"travelers": map[string]any{"score": 39}},
			},
		},
		"meta": map[string]any{"count": 1},
	})
	c := f.client(Capabilities{})

	resp, err := c.FindAirports(context.Background(), AirportSearch{Latitude: 48.8566, Longitude: 2.3522, RadiusKm: 100})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "CDG", resp.Data[0].IATACode)
	assert.Equal(t, 39.0, resp.Data[0].TravelerScore())

	q := f.query()
	assert.Equal(t, "48.8566", q.Get("latitude"))
	assert.Equal(t, "2.3522", q.Get("longitude"))
	assert.Equal(t, "100", q.Get("radius"))
	assert.Equal(t, "relevance", q.Get("sort"))
}

func TestFindAirports_Validation(t *testing.T) {
	f := newFakeAmadeus(t)
	c := f.client(Capabilities{})

	tests := []struct {
		name string
		req  AirportSearch
		want string
	}{
		{"latitude out of range", AirportSearch{Latitude: 91, Longitude: 0, RadiusKm: 10}, "Invalid coordinate values"},
		{"longitude out of range", AirportSearch{Latitude: 0, Longitude: -181, RadiusKm: 10}, "Invalid coordinate values"},
		{"zero radius", AirportSearch{Latitude: 0, Longitude: 0, RadiusKm: 0}, "Radius must be between 1 and 500 kilometers"},
		{"radius too large", AirportSearch{Latitude: 0, Longitude: 0, RadiusKm: 501}, "Radius must be between 1 and 500 kilometers"},
		{"radius not a number", AirportSearch{Latitude: 0, Longitude: 0, RadiusKm: math.NaN()}, "Radius must be between 1 and 500 kilometers"},
		{"latitude not a number", AirportSearch{Latitude: math.NaN(), Longitude: 0, RadiusKm: 10}, "Invalid coordinate values"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.FindAirports(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.CodeValidation))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
	assert.EqualValues(t, 0, f.tokenCalls.Load())
}

func TestCheckAvailability(t *testing.T) {
	f := newFakeAmadeus(t)
	f.handle(airportsPath, http.StatusOK, map[string]any{"data": []any{}})
	f.handle(flightOffersPath, http.StatusInternalServerError, map[string]any{})
	f.handle(hotelsPath+"/by-geocode", http.StatusOK, map[string]any{"data": []any{}})
	c := f.client(Capabilities{})

	got := c.CheckAvailability(context.Background())
	assert.True(t, got.Airports)
	assert.False(t, got.Flights)
	assert.True(t, got.Hotels)
	require.Len(t, got.Errors, 1)
	assert.Contains(t, got.Errors[0], "Flights API")
}
