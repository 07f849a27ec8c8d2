package amadeus

import (
	"context"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripscout/pkg/apperr"
)

func hotelList(n int) map[string]any {
	data := make([]map[string]any, n)
	for i := range data {
		data[i] = map[string]any{
			"name":    fmt.Sprintf("HOTEL %d", i),
			"hotelId": fmt.Sprintf("HT%04d", i),
			"dupeId":  700000 + i,
			"geoCode": map[string]any{"latitude": 48.8, "longitude": 2.3},
			"address": map[string]any{"countryCode": "FR"},
		}
	}
	return map[string]any{"data": data, "meta": map[string]any{"count": n}}
}

func TestSearchHotels_ByCityCapsAndSendsFilters(t *testing.T) {
	f := newFakeAmadeus(t)
	f.handle(hotelsPath+"/by-city", http.StatusOK, hotelList(35))
	c := f.client(Capabilities{})

	resp, err := c.SearchHotels(context.Background(), HotelSearch{
		CityCode: "PAR",
		Ratings:  []int{4, 5},
	})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 20)
	assert.Equal(t, 20, resp.Meta.Count)
	assert.Equal(t, "700000", resp.Data[0].DupeID.String())

	q := f.query()
	assert.Equal(t, "PAR", q.Get("cityCode"))
	assert.Equal(t, "5", q.Get("radius"))
	assert.Equal(t, "KM", q.Get("radiusUnit"))
	assert.Equal(t, "ALL", q.Get("hotelSource"))
	assert.Equal(t, "4,5", q.Get("ratings"))
}

func TestSearchHotels_SmallListKeepsCount(t *testing.T) {
	f := newFakeAmadeus(t)
	f.handle(hotelsPath+"/by-city", http.StatusOK, hotelList(3))
	c := f.client(Capabilities{})

	resp, err := c.SearchHotels(context.Background(), HotelSearch{CityCode: "PAR"})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 3)
	assert.Equal(t, 3, resp.Meta.Count)
}

func TestSearchHotels_ByGeocodeSendsOnlyAcceptedParams(t *testing.T) {
	f := newFakeAmadeus(t)
	f.handle(hotelsPath+"/by-geocode", http.StatusOK, hotelList(1))
	c := f.client(Capabilities{})

	_, err := c.SearchHotels(context.Background(), HotelSearch{
		Latitude:   floatPtr(48.8566),
		Longitude:  floatPtr(2.3522),
		Radius:     10,
		Ratings:    []int{5},
		Amenities:  []string{"SPA"},
		PageOffset: 20,
	})
	require.NoError(t, err)

	q := f.query()
	assert.Equal(t, "48.8566", q.Get("latitude"))
	assert.Equal(t, "10", q.Get("radius"))
	assert.Equal(t, "20", q.Get("page[offset]"))
	assert.False(t, q.Has("ratings"))
	assert.False(t, q.Has("amenities"))
	assert.False(t, q.Has("hotelSource"))
}

func TestSearchHotels_Validation(t *testing.T) {
	f := newFakeAmadeus(t)
	c := f.client(Capabilities{})

	tests := []struct {
		name string
		req  HotelSearch
		want string
	}{
		{"no location", HotelSearch{}, "Either cityCode or both latitude and longitude are required"},
		{"latitude only", HotelSearch{Latitude: floatPtr(10)}, "Either cityCode or both latitude and longitude are required"},
		{"radius too large", HotelSearch{CityCode: "PAR", Radius: 101}, "Radius must be between 1 and 100"},
		{"rating out of range", HotelSearch{CityCode: "PAR", Ratings: []int{6}}, "Ratings must be between 1 and 5"},
		{"bad latitude", HotelSearch{Latitude: floatPtr(-91), Longitude: floatPtr(0)}, "Latitude must be between -90 and 90"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := c.SearchHotels(context.Background(), tt.req)
			require.Error(t, err)
			assert.True(t, apperr.Is(err, apperr.CodeValidation))
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestSearchHotelsByIDs(t *testing.T) {
	f := newFakeAmadeus(t)
	f.handle(hotelsPath+"/by-hotels", http.StatusOK, hotelList(12))
	c := f.client(Capabilities{})

	resp, err := c.SearchHotelsByIDs(context.Background(), []string{"HT0001", "HT0002"}, HotelSearch{})
	require.NoError(t, err)
	assert.Len(t, resp.Data, 10)
	assert.Equal(t, "HT0001,HT0002", f.query().Get("hotelIds"))

	_, err = c.SearchHotelsByIDs(context.Background(), nil, HotelSearch{})
	assert.True(t, apperr.Is(err, apperr.CodeValidation))
}

func TestSearchHotelOffers(t *testing.T) {
	results := make([]map[string]any, 14)
	for i := range results {
		results[i] = map[string]any{
			"type":      "hotel-offers",
			"hotel":     map[string]any{"hotelId": fmt.Sprintf("HT%04d", i), "name": "X"},
			"available": true,
			"offers":    []any{},
		}
	}
	body := map[string]any{"data": results}

	t.Run("v2 by default", func(t *testing.T) {
		f := newFakeAmadeus(t)
		f.handle(hotelOffersV2, http.StatusOK, body)
		c := f.client(Capabilities{})

		resp, err := c.SearchHotelOffers(context.Background(), HotelOfferSearch{
			HotelIDs:     []string{"HT0001"},
			CheckInDate:  "2025-05-01",
			CheckOutDate: "2025-05-03",
		})
		require.NoError(t, err)
		assert.Len(t, resp.Data, 10)
		assert.Equal(t, 10, resp.Meta.Count)

		q := f.query()
		assert.Equal(t, "1", q.Get("adults"))
		assert.Equal(t, "1", q.Get("roomQuantity"))
		assert.Equal(t, "USD", q.Get("currency"))
		assert.False(t, q.Has("boardType"))
		assert.False(t, q.Has("bestRateOnly"))
	})

	t.Run("v3 when enabled", func(t *testing.T) {
		f := newFakeAmadeus(t)
		f.handle(hotelOffersV3, http.StatusOK, body)
		c := f.client(Capabilities{HotelOffersV3: true})

		_, err := c.SearchHotelOffers(context.Background(), HotelOfferSearch{
			CityCode:     "PAR",
			CheckInDate:  "2025-05-01",
			CheckOutDate: "2025-05-03",
			BoardType:    "BREAKFAST",
		})
		require.NoError(t, err)
		assert.Equal(t, "BREAKFAST", f.query().Get("boardType"))
	})
}

func TestHotelOfferSearch_Validate(t *testing.T) {
	tests := []struct {
		name string
		req  HotelOfferSearch
		want string
	}{
		{"missing dates", HotelOfferSearch{CityCode: "PAR"}, "Check-in and check-out dates are required"},
		{"missing location", HotelOfferSearch{CheckInDate: "2025-05-01", CheckOutDate: "2025-05-02"}, "Either hotelIds, cityCode"},
		{"bad check-in", HotelOfferSearch{CityCode: "PAR", CheckInDate: "May 1", CheckOutDate: "2025-05-02"}, "Check-in date must be in YYYY-MM-DD format"},
		{"too many adults", HotelOfferSearch{CityCode: "PAR", CheckInDate: "2025-05-01", CheckOutDate: "2025-05-02", Adults: 10}, "Adults must be between 1 and 9"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
