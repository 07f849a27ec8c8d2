package amadeus

import (
	"encoding/json"
	"reflect"
)

type Links struct {
	Self string `json:"self"`
	Next string `json:"next,omitempty"`
	Last string `json:"last,omitempty"`
}

type Meta struct {
	Count int   `json:"count"`
	Links Links `json:"links"`
}

type GeoCode struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type Distance struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// ---- airports ----

type AirportSearch struct {
	Latitude  float64
	Longitude float64
	RadiusKm  float64
}

type AirportAddress struct {
	CityName    string `json:"cityName"`
	CityCode    string `json:"cityCode"`
	CountryName string `json:"countryName"`
	CountryCode string `json:"countryCode"`
	RegionCode  string `json:"regionCode,omitempty"`
}

type Analytics struct {
	Travelers struct {
		Score float64 `json:"score"`
	} `json:"travelers"`
}

type Airport struct {
	Type           string         `json:"type"`
	SubType        string         `json:"subType"`
	Name           string         `json:"name"`
	DetailedName   string         `json:"detailedName"`
	ID             string         `json:"id"`
	TimeZoneOffset string         `json:"timeZoneOffset,omitempty"`
	IATACode       string         `json:"iataCode"`
	GeoCode        GeoCode        `json:"geoCode"`
	Address        AirportAddress `json:"address"`
	Distance       Distance       `json:"distance"`
	Analytics      Analytics      `json:"analytics"`
}

func (a Airport) TravelerScore() float64 { return a.Analytics.Travelers.Score }

type AirportResponse struct {
	Data []Airport `json:"data"`
	Meta Meta      `json:"meta"`
}

// ---- flights ----

type Endpoint struct {
	IATACode string `json:"iataCode"`
	Terminal string `json:"terminal,omitempty"`
	At       string `json:"at"`
}

type Segment struct {
	Departure   Endpoint `json:"departure"`
	Arrival     Endpoint `json:"arrival"`
	CarrierCode string   `json:"carrierCode"`
	Number      string   `json:"number"`
	Aircraft    struct {
		Code string `json:"code"`
	} `json:"aircraft"`
	Operating *struct {
		CarrierCode string `json:"carrierCode"`
		Number      string `json:"number,omitempty"`
	} `json:"operating,omitempty"`
	Duration        string `json:"duration"`
	ID              string `json:"id"`
	NumberOfStops   int    `json:"numberOfStops"`
	BlacklistedInEU bool   `json:"blacklistedInEU"`
}

type Itinerary struct {
	Duration string    `json:"duration"`
	Segments []Segment `json:"segments"`
}

type Fee struct {
	Amount string `json:"amount"`
	Type   string `json:"type"`
}

type FlightPrice struct {
	Currency   string `json:"currency"`
	Total      string `json:"total"`
	Base       string `json:"base,omitempty"`
	Fees       []Fee  `json:"fees,omitempty"`
	GrandTotal string `json:"grandTotal,omitempty"`

	// Extra holds provider fields not modelled above, such as
	// additionalServices.
	Extra map[string]json.RawMessage `json:"-"`
}

type flightPriceFields FlightPrice

var flightPriceKeys = jsonKeys(reflect.TypeOf(flightPriceFields{}))

func (p *FlightPrice) UnmarshalJSON(data []byte) error {
	var fields flightPriceFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := splitExtra(data, flightPriceKeys)
	if err != nil {
		return err
	}
	*p = FlightPrice(fields)
	p.Extra = extra
	return nil
}

func (p FlightPrice) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(flightPriceFields(p))
	if err != nil {
		return nil, err
	}
	return mergeExtra(typed, p.Extra)
}

// AirportRef is the display metadata attached to offers found through a
// city search.
type AirportRef struct {
	IATACode string `json:"iataCode"`
	Name     string `json:"name"`
	City     string `json:"city"`
	Country  string `json:"country"`
}

func RefOf(a Airport) *AirportRef {
	return &AirportRef{
		IATACode: a.IATACode,
		Name:     a.Name,
		City:     a.Address.CityName,
		Country:  a.Address.CountryName,
	}
}

type FlightOffer struct {
	Type                     string          `json:"type"`
	ID                       string          `json:"id"`
	Source                   string          `json:"source"`
	InstantTicketingRequired bool            `json:"instantTicketingRequired"`
	NonHomogeneous           bool            `json:"nonHomogeneous"`
	OneWay                   bool            `json:"oneWay"`
	LastTicketingDate        string          `json:"lastTicketingDate,omitempty"`
	LastTicketingDateTime    string          `json:"lastTicketingDateTime,omitempty"`
	NumberOfBookableSeats    int             `json:"numberOfBookableSeats"`
	Itineraries              []Itinerary     `json:"itineraries"`
	Price                    FlightPrice     `json:"price"`
	PricingOptions           json.RawMessage `json:"pricingOptions,omitempty"`
	ValidatingAirlineCodes   []string        `json:"validatingAirlineCodes,omitempty"`
	TravelerPricings         json.RawMessage `json:"travelerPricings,omitempty"`

	OriginAirport      *AirportRef `json:"originAirport,omitempty"`
	DestinationAirport *AirportRef `json:"destinationAirport,omitempty"`

	// Extra holds provider fields not modelled above, such as
	// choiceProbability in price prediction mode or isUpsellOffer.
	Extra map[string]json.RawMessage `json:"-"`
}

type flightOfferFields FlightOffer

var flightOfferKeys = jsonKeys(reflect.TypeOf(flightOfferFields{}))

func (o *FlightOffer) UnmarshalJSON(data []byte) error {
	var fields flightOfferFields
	if err := json.Unmarshal(data, &fields); err != nil {
		return err
	}
	extra, err := splitExtra(data, flightOfferKeys)
	if err != nil {
		return err
	}
	*o = FlightOffer(fields)
	o.Extra = extra
	return nil
}

func (o FlightOffer) MarshalJSON() ([]byte, error) {
	typed, err := json.Marshal(flightOfferFields(o))
	if err != nil {
		return nil, err
	}
	return mergeExtra(typed, o.Extra)
}

type LocationInfo struct {
	CityCode    string `json:"cityCode"`
	CountryCode string `json:"countryCode"`
}

type Dictionaries struct {
	Locations  map[string]LocationInfo `json:"locations"`
	Aircraft   map[string]string       `json:"aircraft"`
	Currencies map[string]string       `json:"currencies"`
	Carriers   map[string]string       `json:"carriers"`
}

// EmptyDictionaries renders as four empty objects rather than nulls.
func EmptyDictionaries() Dictionaries {
	return Dictionaries{
		Locations:  map[string]LocationInfo{},
		Aircraft:   map[string]string{},
		Currencies: map[string]string{},
		Carriers:   map[string]string{},
	}
}

type FlightOffersResponse struct {
	Data         []FlightOffer `json:"data"`
	Dictionaries Dictionaries  `json:"dictionaries"`
	Meta         Meta          `json:"meta"`
}

// ---- hotels ----

type HotelAddress struct {
	Lines       []string `json:"lines,omitempty"`
	PostalCode  string   `json:"postalCode,omitempty"`
	CityName    string   `json:"cityName,omitempty"`
	CountryCode string   `json:"countryCode"`
	CountryName string   `json:"countryName,omitempty"`
}

type Hotel struct {
	ChainCode  string       `json:"chainCode,omitempty"`
	IATACode   string       `json:"iataCode,omitempty"`
	DupeID     json.Number  `json:"dupeId,omitempty"`
	Name       string       `json:"name"`
	HotelID    string       `json:"hotelId"`
	Rating     int          `json:"rating,omitempty"`
	GeoCode    GeoCode      `json:"geoCode"`
	Address    HotelAddress `json:"address"`
	Distance   *Distance    `json:"distance,omitempty"`
	Amenities  []string     `json:"amenities,omitempty"`
	LastUpdate string       `json:"lastUpdate,omitempty"`
}

type HotelListResponse struct {
	Data []Hotel `json:"data"`
	Meta Meta    `json:"meta"`
}

type HotelSummary struct {
	Type      string  `json:"type,omitempty"`
	HotelID   string  `json:"hotelId"`
	ChainCode string  `json:"chainCode,omitempty"`
	DupeID    string  `json:"dupeId,omitempty"`
	Name      string  `json:"name"`
	CityCode  string  `json:"cityCode,omitempty"`
	Latitude  float64 `json:"latitude,omitempty"`
	Longitude float64 `json:"longitude,omitempty"`
}

type HotelOfferPrice struct {
	Currency   string          `json:"currency"`
	Base       string          `json:"base,omitempty"`
	Total      string          `json:"total"`
	Variations json.RawMessage `json:"variations,omitempty"`
}

type HotelOffer struct {
	ID           string          `json:"id"`
	CheckInDate  string          `json:"checkInDate"`
	CheckOutDate string          `json:"checkOutDate"`
	RateCode     string          `json:"rateCode,omitempty"`
	Room         json.RawMessage `json:"room,omitempty"`
	Guests       struct {
		Adults int `json:"adults"`
	} `json:"guests"`
	Price    HotelOfferPrice `json:"price"`
	Policies json.RawMessage `json:"policies,omitempty"`
	Self     string          `json:"self,omitempty"`
}

type HotelOfferResult struct {
	Type      string       `json:"type"`
	Hotel     HotelSummary `json:"hotel"`
	Available bool         `json:"available"`
	Offers    []HotelOffer `json:"offers"`
	Self      string       `json:"self,omitempty"`
}

type HotelOffersResponse struct {
	Data []HotelOfferResult `json:"data"`
	Meta Meta               `json:"meta"`
}
