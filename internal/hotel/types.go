package hotel

import (
	"strconv"
	"strings"

	"tripscout/pkg/amadeus"
	"tripscout/pkg/apperr"
)

// cityRadiusKm is the default radius around a geocoded city centre.
const cityRadiusKm = 10

// listQuery holds the hotel list filters shared by every hotel endpoint.
// Code lists are comma separated.
type listQuery struct {
	Radius       int    `form:"radius"`
	RadiusUnit   string `form:"radiusUnit"`
	ChainCodes   string `form:"chainCodes"`
	Amenities    string `form:"amenities"`
	Ratings      string `form:"ratings"`
	HotelSource  string `form:"hotelSource"`
	CheckInDate  string `form:"checkInDate"`
	CheckOutDate string `form:"checkOutDate"`
	Currency     string `form:"currency"`
	BestRateOnly bool   `form:"bestRateOnly"`
	View         string `form:"view"`
	Limit        int    `form:"limit"`
	Offset       int    `form:"offset"`
}

func (q listQuery) search() (amadeus.HotelSearch, error) {
	ratings, err := splitInts(q.Ratings)
	if err != nil {
		return amadeus.HotelSearch{}, err
	}
	return amadeus.HotelSearch{
		Radius:       q.Radius,
		RadiusUnit:   strings.ToUpper(q.RadiusUnit),
		ChainCodes:   splitList(q.ChainCodes),
		Amenities:    splitList(q.Amenities),
		Ratings:      ratings,
		HotelSource:  q.HotelSource,
		CheckInDate:  q.CheckInDate,
		CheckOutDate: q.CheckOutDate,
		Currency:     q.Currency,
		BestRateOnly: q.BestRateOnly,
		View:         q.View,
		PageLimit:    q.Limit,
		PageOffset:   q.Offset,
	}, nil
}

type hotelsQuery struct {
	listQuery
	CityCode  string   `form:"cityCode"`
	HotelIDs  string   `form:"hotelIds"`
	Latitude  *float64 `form:"latitude"`
	Longitude *float64 `form:"longitude"`
}

type cityHotelsQuery struct {
	listQuery
	City        string `form:"city"`
	CountryCode string `form:"countryCode"`
}

// stayQuery holds the room offer parameters.
type stayQuery struct {
	CheckInDate   string `form:"checkInDate"`
	CheckOutDate  string `form:"checkOutDate"`
	Adults        int    `form:"adults"`
	RoomQuantity  int    `form:"roomQuantity"`
	Currency      string `form:"currency"`
	PriceRange    string `form:"priceRange"`
	PaymentPolicy string `form:"paymentPolicy"`
	BoardType     string `form:"boardType"`
	BestRateOnly  bool   `form:"bestRateOnly"`
}

func (q stayQuery) offers() amadeus.HotelOfferSearch {
	return amadeus.HotelOfferSearch{
		CheckInDate:   q.CheckInDate,
		CheckOutDate:  q.CheckOutDate,
		Adults:        q.Adults,
		RoomQuantity:  q.RoomQuantity,
		Currency:      q.Currency,
		PriceRange:    q.PriceRange,
		PaymentPolicy: q.PaymentPolicy,
		BoardType:     q.BoardType,
		BestRateOnly:  q.BestRateOnly,
	}
}

type offersQuery struct {
	stayQuery
	HotelIDs   string   `form:"hotelIds"`
	CityCode   string   `form:"cityCode"`
	Latitude   *float64 `form:"latitude"`
	Longitude  *float64 `form:"longitude"`
	Radius     int      `form:"radius"`
	RadiusUnit string   `form:"radiusUnit"`
}

func (q offersQuery) search() amadeus.HotelOfferSearch {
	req := q.stayQuery.offers()
	req.HotelIDs = splitList(q.HotelIDs)
	req.CityCode = q.CityCode
	req.Latitude = q.Latitude
	req.Longitude = q.Longitude
	req.Radius = q.Radius
	req.RadiusUnit = strings.ToUpper(q.RadiusUnit)
	return req
}

type cityOffersQuery struct {
	stayQuery
	CityName    string `form:"cityName"`
	CountryCode string `form:"countryCode"`
	Radius      int    `form:"radius"`
	RadiusUnit  string `form:"radiusUnit"`
	ChainCodes  string `form:"chainCodes"`
	Amenities   string `form:"amenities"`
	Ratings     string `form:"ratings"`
	HotelSource string `form:"hotelSource"`
}

func (q cityOffersQuery) request() (CityOffersRequest, error) {
	list := listQuery{
		Radius:       q.Radius,
		RadiusUnit:   q.RadiusUnit,
		ChainCodes:   q.ChainCodes,
		Amenities:    q.Amenities,
		Ratings:      q.Ratings,
		HotelSource:  q.HotelSource,
		Currency:     q.Currency,
		BestRateOnly: q.BestRateOnly,
	}
	hotels, err := list.search()
	if err != nil {
		return CityOffersRequest{}, err
	}
	return CityOffersRequest{
		City:   City{Name: q.CityName, CountryCode: q.CountryCode},
		Hotels: hotels,
		Offers: q.stayQuery.offers(),
	}, nil
}

func splitList(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func splitInts(s string) ([]int, error) {
	parts := splitList(s)
	if parts == nil {
		return nil, nil
	}
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(p)
		if err != nil {
			return nil, apperr.Validation("Ratings must be between 1 and 5")
		}
		out[i] = v
	}
	return out, nil
}
