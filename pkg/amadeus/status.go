package amadeus

import (
	"context"
	"time"
)

// Availability is the outcome of probing each API family once.
type Availability struct {
	Airports bool     `json:"airports"`
	Flights  bool     `json:"flights"`
	Hotels   bool     `json:"hotels"`
	Errors   []string `json:"errors"`
}

// CheckAvailability issues one small request per API family. Failures are
// collected, never returned.
func (c *Client) CheckAvailability(ctx context.Context) Availability {
	result := Availability{Errors: []string{}}

	// Manhattan, a location every test environment has data for.
	lat, lon := 40.7128, -74.0060

	if _, err := c.FindAirports(ctx, AirportSearch{Latitude: lat, Longitude: lon, RadiusKm: 10}); err != nil {
		result.Errors = append(result.Errors, "Airports API: "+err.Error())
	} else {
		result.Airports = true
	}

	departure := c.now().AddDate(0, 1, 0).Format(time.DateOnly)
	if _, err := c.SearchOffers(ctx, FlightSearchCriteria{
		OriginLocationCode:      "DUS",
		DestinationLocationCode: "CDG",
		DepartureDate:           departure,
		Max:                     1,
	}); err != nil {
		result.Errors = append(result.Errors, "Flights API: "+err.Error())
	} else {
		result.Flights = true
	}

	if _, err := c.SearchHotels(ctx, HotelSearch{Latitude: &lat, Longitude: &lon, Radius: 5}); err != nil {
		result.Errors = append(result.Errors, "Hotels API: "+err.Error())
	} else {
		result.Hotels = true
	}

	return result
}
