package amadeus

import (
	"context"
	"net/url"
	"strconv"

	"tripscout/pkg/apperr"
)

const MaxAirportRadiusKm = 500

// FindAirports lists airports around a coordinate, ordered by the provider's
// relevance.
func (c *Client) FindAirports(ctx context.Context, req AirportSearch) (*AirportResponse, error) {
	if !validLatitude(req.Latitude) || !validLongitude(req.Longitude) {
		return nil, apperr.Validation("Invalid coordinate values")
	}
	if !(req.RadiusKm > 0 && req.RadiusKm <= MaxAirportRadiusKm) {
		return nil, apperr.Validation("Radius must be between 1 and %d kilometers", MaxAirportRadiusKm)
	}

	params := url.Values{}
	params.Set("latitude", formatFloat(req.Latitude))
	params.Set("longitude", formatFloat(req.Longitude))
	params.Set("radius", formatFloat(req.RadiusKm))
	params.Set("sort", "relevance")

	var resp AirportResponse
	if err := c.get(ctx, "airport search", airportsPath, params, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func validLatitude(v float64) bool  { return v >= -90 && v <= 90 }
func validLongitude(v float64) bool { return v >= -180 && v <= 180 }

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
