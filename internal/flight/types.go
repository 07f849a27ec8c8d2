package flight

import (
	"strings"

	"tripscout/pkg/amadeus"
)

// CitySearchRequest asks for flights between two free-text cities. The
// airport codes inside Criteria are ignored; they are filled per pair.
type CitySearchRequest struct {
	OriginCity         string
	OriginCountry      string
	DestinationCity    string
	DestinationCountry string
	Criteria           amadeus.FlightSearchCriteria

	// AirportRadiusKm bounds the airport lookup around each city; zero means
	// DefaultAirportRadiusKm.
	AirportRadiusKm float64
}

// SearchQuery is the wire form of a flight search, bound from the query
// string on GET and from the JSON body on POST. Airline code lists are
// comma separated.
type SearchQuery struct {
	OriginLocationCode      string  `form:"originLocationCode" json:"originLocationCode"`
	DestinationLocationCode string  `form:"destinationLocationCode" json:"destinationLocationCode"`
	OriginCity              string  `form:"originCity" json:"originCity"`
	OriginCountry           string  `form:"originCountry" json:"originCountry"`
	DestinationCity         string  `form:"destinationCity" json:"destinationCity"`
	DestinationCountry      string  `form:"destinationCountry" json:"destinationCountry"`
	DepartureDate           string  `form:"departureDate" json:"departureDate"`
	ReturnDate              string  `form:"returnDate" json:"returnDate"`
	Adults                  *int    `form:"adults" json:"adults"`
	Children                int     `form:"children" json:"children"`
	Infants                 int     `form:"infants" json:"infants"`
	TravelClass             string  `form:"travelClass" json:"travelClass"`
	IncludedAirlineCodes    string  `form:"includedAirlineCodes" json:"includedAirlineCodes"`
	ExcludedAirlineCodes    string  `form:"excludedAirlineCodes" json:"excludedAirlineCodes"`
	NonStop                 *bool   `form:"nonStop" json:"nonStop"`
	CurrencyCode            string  `form:"currencyCode" json:"currencyCode"`
	MaxPrice                int     `form:"maxPrice" json:"maxPrice"`
	Max                     int     `form:"max" json:"max"`
	AirportRadius           float64 `form:"airportRadius" json:"airportRadius"`
	IncludePrediction       bool    `form:"includePrediction" json:"includePrediction"`
	PricePrediction         bool    `form:"pricePrediction" json:"pricePrediction"`
}

func (q SearchQuery) isCitySearch() bool {
	return q.OriginCity != "" || q.DestinationCity != ""
}

func (q SearchQuery) criteria() amadeus.FlightSearchCriteria {
	return amadeus.FlightSearchCriteria{
		OriginLocationCode:      strings.ToUpper(strings.TrimSpace(q.OriginLocationCode)),
		DestinationLocationCode: strings.ToUpper(strings.TrimSpace(q.DestinationLocationCode)),
		DepartureDate:           q.DepartureDate,
		ReturnDate:              q.ReturnDate,
		Adults:                  q.Adults,
		Children:                q.Children,
		Infants:                 q.Infants,
		TravelClass:             q.TravelClass,
		IncludedAirlineCodes:    splitCodes(q.IncludedAirlineCodes),
		ExcludedAirlineCodes:    splitCodes(q.ExcludedAirlineCodes),
		NonStop:                 q.NonStop,
		CurrencyCode:            q.CurrencyCode,
		MaxPrice:                q.MaxPrice,
		Max:                     q.Max,
		Prediction:              q.IncludePrediction || q.PricePrediction,
	}
}

func (q SearchQuery) citySearch() CitySearchRequest {
	return CitySearchRequest{
		OriginCity:         q.OriginCity,
		OriginCountry:      q.OriginCountry,
		DestinationCity:    q.DestinationCity,
		DestinationCountry: q.DestinationCountry,
		Criteria:           q.criteria(),
		AirportRadiusKm:    q.AirportRadius,
	}
}

func splitCodes(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			codes = append(codes, strings.ToUpper(p))
		}
	}
	return codes
}
