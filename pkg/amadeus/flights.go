package amadeus

import (
	"context"
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"tripscout/pkg/apperr"
)

const (
	DefaultCurrency   = "USD"
	DefaultMaxOffers  = 50
	maxPassengerCount = 9
)

// dateFormat is a syntactic check only: 2024-13-45 passes and is left for the
// provider to reject.
var dateFormat = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var travelClasses = map[string]bool{
	"ECONOMY":         true,
	"PREMIUM_ECONOMY": true,
	"BUSINESS":        true,
	"FIRST":           true,
}

// FlightSearchCriteria is a flight-offers query between two IATA codes.
// Adults nil means one adult; Max zero means DefaultMaxOffers.
type FlightSearchCriteria struct {
	OriginLocationCode      string
	DestinationLocationCode string
	DepartureDate           string
	ReturnDate              string
	Adults                  *int
	Children                int
	Infants                 int
	TravelClass             string
	IncludedAirlineCodes    []string
	ExcludedAirlineCodes    []string
	NonStop                 *bool
	CurrencyCode            string
	MaxPrice                int
	Max                     int

	// Prediction asks the provider to attach price predictions.
	Prediction bool
}

func (c FlightSearchCriteria) adults() int {
	if c.Adults == nil {
		return 1
	}
	return *c.Adults
}

func (c FlightSearchCriteria) limit() int {
	if c.Max <= 0 {
		return DefaultMaxOffers
	}
	return c.Max
}

func (c FlightSearchCriteria) currency() string {
	if c.CurrencyCode == "" {
		return DefaultCurrency
	}
	return c.CurrencyCode
}

// Validate checks the whole query before any network call.
func (c FlightSearchCriteria) Validate() error {
	if c.OriginLocationCode == "" || c.DestinationLocationCode == "" || c.DepartureDate == "" {
		return apperr.Validation("Origin, destination, and departure date are required")
	}
	return c.ValidateTrip()
}

// ValidateTrip checks everything except the airport codes, so a city search
// can validate its shared fields before resolving airports.
func (c FlightSearchCriteria) ValidateTrip() error {
	if !dateFormat.MatchString(c.DepartureDate) {
		return apperr.Validation("Departure date must be in YYYY-MM-DD format")
	}
	if c.ReturnDate != "" && !dateFormat.MatchString(c.ReturnDate) {
		return apperr.Validation("Return date must be in YYYY-MM-DD format")
	}

	adults := c.adults()
	if adults < 1 || adults > maxPassengerCount {
		return apperr.Validation("Adults must be between 1 and %d", maxPassengerCount)
	}
	if c.Children < 0 || c.Children > maxPassengerCount {
		return apperr.Validation("Children must be between 0 and %d", maxPassengerCount)
	}
	if c.Infants < 0 || c.Infants > maxPassengerCount {
		return apperr.Validation("Infants must be between 0 and %d", maxPassengerCount)
	}
	if c.Infants > adults {
		return apperr.Validation("Number of infants cannot exceed number of adults")
	}

	if c.TravelClass != "" && !travelClasses[c.TravelClass] {
		return apperr.Validation("Travel class must be one of ECONOMY, PREMIUM_ECONOMY, BUSINESS, FIRST")
	}
	return nil
}

// QueryParams encodes the criteria as flight-offers query parameters.
// Optional fields appear only when set.
func (c FlightSearchCriteria) QueryParams() url.Values {
	params := url.Values{}
	params.Set("originLocationCode", c.OriginLocationCode)
	params.Set("destinationLocationCode", c.DestinationLocationCode)
	params.Set("departureDate", c.DepartureDate)
	params.Set("adults", strconv.Itoa(c.adults()))
	params.Set("children", strconv.Itoa(c.Children))
	params.Set("infants", strconv.Itoa(c.Infants))
	params.Set("currencyCode", c.currency())
	params.Set("max", strconv.Itoa(c.limit()))

	if c.ReturnDate != "" {
		params.Set("returnDate", c.ReturnDate)
	}
	if c.TravelClass != "" {
		params.Set("travelClass", c.TravelClass)
	}
	if len(c.IncludedAirlineCodes) > 0 {
		params.Set("includedAirlineCodes", strings.Join(c.IncludedAirlineCodes, ","))
	}
	if len(c.ExcludedAirlineCodes) > 0 {
		params.Set("excludedAirlineCodes", strings.Join(c.ExcludedAirlineCodes, ","))
	}
	if c.NonStop != nil {
		params.Set("nonStop", strconv.FormatBool(*c.NonStop))
	}
	if c.MaxPrice > 0 {
		params.Set("maxPrice", strconv.Itoa(c.MaxPrice))
	}
	if c.Prediction {
		params.Set("pricePrediction", "true")
	}
	return params
}

// SearchOffers queries flight offers between two airports. The returned list
// never holds more than the requested max.
func (c *Client) SearchOffers(ctx context.Context, criteria FlightSearchCriteria) (*FlightOffersResponse, error) {
	if err := criteria.Validate(); err != nil {
		return nil, err
	}
	if criteria.Prediction && !c.caps.PricePrediction {
		return nil, apperr.Validation("Price prediction is not supported by this provider environment")
	}

	var resp FlightOffersResponse
	if err := c.get(ctx, "flight offers search", flightOffersPath, criteria.QueryParams(), &resp); err != nil {
		return nil, err
	}

	if limit := criteria.limit(); len(resp.Data) > limit {
		resp.Data = resp.Data[:limit]
	}
	return &resp, nil
}

// GetFlightOffer fetches a single offer by id.
func (c *Client) GetFlightOffer(ctx context.Context, id string) (*FlightOffer, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.Validation("Flight offer ID is required")
	}

	var resp struct {
		Data FlightOffer `json:"data"`
	}
	if err := c.get(ctx, "flight offer lookup", flightOffersPath+"/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Data, nil
}
