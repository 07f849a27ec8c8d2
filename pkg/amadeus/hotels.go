package amadeus

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"tripscout/pkg/apperr"
)

const (
	DefaultHotelRadius = 5
	MaxHotelRadius     = 100

	maxHotelsListed   = 20
	maxHotelsByIDs    = 10
	maxHotelOffers    = 10
	defaultRadiusUnit = "KM"
)

// HotelSearch queries the hotel list API by city code or by coordinates.
// Zero values fall back to the defaults used by the web
// front-end (radius 5 KM, source ALL, currency USD, view FULL).
type HotelSearch struct {
	CityCode     string
	Latitude     *float64
	Longitude    *float64
	Radius       int
	RadiusUnit   string
	ChainCodes   []string
	Amenities    []string
	Ratings      []int
	HotelSource  string
	CheckInDate  string
	CheckOutDate string
	Currency     string
	BestRateOnly bool
	View         string
	PageLimit    int
	PageOffset   int
}

func (h HotelSearch) radius() int {
	if h.Radius == 0 {
		return DefaultHotelRadius
	}
	return h.Radius
}

func (h HotelSearch) radiusUnit() string {
	return orDefault(h.RadiusUnit, defaultRadiusUnit)
}

func (h HotelSearch) hasCoordinates() bool {
	return h.Latitude != nil && h.Longitude != nil
}

// ValidateOptions checks the filters shared by every list search. It does not
// require a location.
func (h HotelSearch) ValidateOptions() error {
	if err := validateCoordinates(h.Latitude, h.Longitude); err != nil {
		return err
	}
	if r := h.radius(); r <= 0 || r > MaxHotelRadius {
		return apperr.Validation("Radius must be between 1 and %d", MaxHotelRadius)
	}
	if h.CheckInDate != "" && !dateFormat.MatchString(h.CheckInDate) {
		return apperr.Validation("Check-in date must be in YYYY-MM-DD format")
	}
	if h.CheckOutDate != "" && !dateFormat.MatchString(h.CheckOutDate) {
		return apperr.Validation("Check-out date must be in YYYY-MM-DD format")
	}
	for _, rating := range h.Ratings {
		if rating < 1 || rating > 5 {
			return apperr.Validation("Ratings must be between 1 and 5")
		}
	}
	return nil
}

// Validate checks a list search before any network call.
func (h HotelSearch) Validate() error {
	if h.CityCode == "" && !h.hasCoordinates() {
		return apperr.Validation("Either cityCode or both latitude and longitude are required")
	}
	return h.ValidateOptions()
}

// fullParams carries every filter the by-city and by-hotels endpoints accept.
func (h HotelSearch) fullParams(params url.Values) url.Values {
	params.Set("radius", strconv.Itoa(h.radius()))
	params.Set("radiusUnit", h.radiusUnit())
	params.Set("hotelSource", orDefault(h.HotelSource, "ALL"))
	params.Set("currency", orDefault(h.Currency, DefaultCurrency))
	params.Set("bestRateOnly", strconv.FormatBool(h.BestRateOnly))
	params.Set("view", orDefault(h.View, "FULL"))
	if len(h.ChainCodes) > 0 {
		params.Set("chainCodes", strings.Join(h.ChainCodes, ","))
	}
	if len(h.Amenities) > 0 {
		params.Set("amenities", strings.Join(h.Amenities, ","))
	}
	if len(h.Ratings) > 0 {
		params.Set("ratings", joinInts(h.Ratings))
	}
	if h.CheckInDate != "" {
		params.Set("checkInDate", h.CheckInDate)
	}
	if h.CheckOutDate != "" {
		params.Set("checkOutDate", h.CheckOutDate)
	}
	if h.PageLimit > 0 {
		params.Set("page[limit]", strconv.Itoa(h.PageLimit))
	}
	if h.PageOffset > 0 {
		params.Set("page[offset]", strconv.Itoa(h.PageOffset))
	}
	return params
}

// SearchHotels lists hotels by city code, or by coordinates when no city
// code is given. At most 20 hotels are returned.
func (c *Client) SearchHotels(ctx context.Context, req HotelSearch) (*HotelListResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var (
		path   string
		params = url.Values{}
	)
	if req.CityCode != "" {
		path = hotelsPath + "/by-city"
		params.Set("cityCode", req.CityCode)
		req.fullParams(params)
	} else {
		// by-geocode rejects most list filters, only send what it accepts
		path = hotelsPath + "/by-geocode"
		params.Set("latitude", formatFloat(*req.Latitude))
		params.Set("longitude", formatFloat(*req.Longitude))
		params.Set("radius", strconv.Itoa(req.radius()))
		params.Set("radiusUnit", req.radiusUnit())
		if req.PageOffset > 0 {
			params.Set("page[offset]", strconv.Itoa(req.PageOffset))
		}
	}

	var resp HotelListResponse
	if err := c.get(ctx, "hotel search", path, params, &resp); err != nil {
		return nil, err
	}
	capHotels(&resp, maxHotelsListed)
	return &resp, nil
}

// SearchHotelsByIDs lists specific hotels. At most 10 are returned.
func (c *Client) SearchHotelsByIDs(ctx context.Context, ids []string, opts HotelSearch) (*HotelListResponse, error) {
	if len(ids) == 0 {
		return nil, apperr.Validation("At least one hotel ID is required")
	}
	if err := opts.ValidateOptions(); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("hotelIds", strings.Join(ids, ","))
	opts.fullParams(params)

	var resp HotelListResponse
	if err := c.get(ctx, "hotel search by ids", hotelsPath+"/by-hotels", params, &resp); err != nil {
		return nil, err
	}
	capHotels(&resp, maxHotelsByIDs)
	return &resp, nil
}

// HotelOfferSearch queries room offers. Check-in and check-out are required.
type HotelOfferSearch struct {
	HotelIDs      []string
	CityCode      string
	Latitude      *float64
	Longitude     *float64
	Radius        int
	RadiusUnit    string
	CheckInDate   string
	CheckOutDate  string
	RoomQuantity  int
	Adults        int
	Currency      string
	PriceRange    string
	PaymentPolicy string
	BoardType     string
	BestRateOnly  bool
}

func (h HotelOfferSearch) Validate() error {
	if h.CheckInDate == "" || h.CheckOutDate == "" {
		return apperr.Validation("Check-in and check-out dates are required")
	}
	if len(h.HotelIDs) == 0 && h.CityCode == "" && (h.Latitude == nil || h.Longitude == nil) {
		return apperr.Validation("Either hotelIds, cityCode, or both latitude and longitude are required")
	}
	return h.ValidateStay()
}

// ValidateStay checks everything except which hotels to search, so a city
// search can reject a bad stay before geocoding.
func (h HotelOfferSearch) ValidateStay() error {
	if h.CheckInDate == "" || h.CheckOutDate == "" {
		return apperr.Validation("Check-in and check-out dates are required")
	}
	if err := validateCoordinates(h.Latitude, h.Longitude); err != nil {
		return err
	}
	radius := h.Radius
	if radius == 0 {
		radius = DefaultHotelRadius
	}
	if radius <= 0 || radius > MaxHotelRadius {
		return apperr.Validation("Radius must be between 1 and %d", MaxHotelRadius)
	}
	if !dateFormat.MatchString(h.CheckInDate) {
		return apperr.Validation("Check-in date must be in YYYY-MM-DD format")
	}
	if !dateFormat.MatchString(h.CheckOutDate) {
		return apperr.Validation("Check-out date must be in YYYY-MM-DD format")
	}
	if h.Adults < 0 || h.Adults > maxPassengerCount {
		return apperr.Validation("Adults must be between 1 and %d", maxPassengerCount)
	}
	return nil
}

func (h HotelOfferSearch) params() url.Values {
	params := url.Values{}
	if len(h.HotelIDs) > 0 {
		params.Set("hotelIds", strings.Join(h.HotelIDs, ","))
	}
	if h.CityCode != "" {
		params.Set("cityCode", h.CityCode)
	}
	if h.Latitude != nil && h.Longitude != nil {
		params.Set("latitude", formatFloat(*h.Latitude))
		params.Set("longitude", formatFloat(*h.Longitude))
	}

	radius := h.Radius
	if radius == 0 {
		radius = DefaultHotelRadius
	}
	params.Set("radius", strconv.Itoa(radius))
	params.Set("radiusUnit", orDefault(h.RadiusUnit, defaultRadiusUnit))

	adults := h.Adults
	if adults == 0 {
		adults = 1
	}
	rooms := h.RoomQuantity
	if rooms == 0 {
		rooms = 1
	}
	params.Set("adults", strconv.Itoa(adults))
	params.Set("roomQuantity", strconv.Itoa(rooms))
	params.Set("checkInDate", h.CheckInDate)
	params.Set("checkOutDate", h.CheckOutDate)
	params.Set("currency", orDefault(h.Currency, DefaultCurrency))

	if h.PriceRange != "" {
		params.Set("priceRange", h.PriceRange)
	}
	if h.PaymentPolicy != "" {
		params.Set("paymentPolicy", h.PaymentPolicy)
	}
	if h.BoardType != "" {
		params.Set("boardType", h.BoardType)
	}
	if h.BestRateOnly {
		params.Set("bestRateOnly", "true")
	}
	return params
}

// SearchHotelOffers returns at most 10 hotels with their offers.
func (c *Client) SearchHotelOffers(ctx context.Context, req HotelOfferSearch) (*HotelOffersResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	path := hotelOffersV2
	if c.caps.HotelOffersV3 {
		path = hotelOffersV3
	}

	var resp HotelOffersResponse
	if err := c.get(ctx, "hotel offers search", path, req.params(), &resp); err != nil {
		return nil, err
	}

	if len(resp.Data) > maxHotelOffers {
		resp.Data = resp.Data[:maxHotelOffers]
	}
	if resp.Data == nil {
		resp.Data = []HotelOfferResult{}
	}
	resp.Meta.Count = len(resp.Data)
	return &resp, nil
}

func capHotels(resp *HotelListResponse, limit int) {
	if len(resp.Data) > limit {
		resp.Data = resp.Data[:limit]
	}
	if resp.Data == nil {
		resp.Data = []Hotel{}
	}
	resp.Meta.Count = min(resp.Meta.Count, limit)
}

func validateCoordinates(lat, lon *float64) error {
	if lat != nil && !validLatitude(*lat) {
		return apperr.Validation("Latitude must be between -90 and 90")
	}
	if lon != nil && !validLongitude(*lon) {
		return apperr.Validation("Longitude must be between -180 and 180")
	}
	return nil
}

func joinInts(values []int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
