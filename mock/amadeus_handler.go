package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"net/http"
	"strconv"
	"strings"
	"time"
)

type Meta struct {
	Count int `json:"count"`
}

type ErrorBody struct {
	Errors []ErrorEntry `json:"errors"`
}

type ErrorEntry struct {
	Status int    `json:"status"`
	Code   int    `json:"code"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func badRequest(w http.ResponseWriter, detail string) {
	writeJSON(w, http.StatusBadRequest, ErrorBody{Errors: []ErrorEntry{{
		Status: http.StatusBadRequest, Code: 477, Title: "INVALID FORMAT", Detail: detail,
	}}})
}

func authorized(w http.ResponseWriter, r *http.Request) bool {
	if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer mock-") {
		writeJSON(w, http.StatusUnauthorized, ErrorBody{Errors: []ErrorEntry{{
			Status: http.StatusUnauthorized, Code: 38190, Title: "Invalid access token",
		}}})
		return false
	}
	return true
}

func latency() {
	delay := 50 + rand.Intn(51) // 50 to 100ms
	time.Sleep(time.Duration(delay) * time.Millisecond)
}

// TokenHandler accepts any non-empty client id and secret, from the form body
// or basic auth.
func TokenHandler(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	id, secret, ok := r.BasicAuth()
	if !ok {
		id, secret = r.PostForm.Get("client_id"), r.PostForm.Get("client_secret")
	}
	if r.PostForm.Get("grant_type") != "client_credentials" || id == "" || secret == "" {
		writeJSON(w, http.StatusUnauthorized, map[string]string{
			"error":             "invalid_client",
			"error_description": "Client credentials are invalid",
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"type":         "amadeusOAuth2Token",
		"access_token": fmt.Sprintf("mock-%d", time.Now().UnixNano()),
		"token_type":   "Bearer",
		"expires_in":   1799,
		"state":        "approved",
	})
}

func AirportsHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("latitude"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("longitude"), 64)
	if errLat != nil || errLon != nil {
		badRequest(w, "latitude and longitude are required")
		return
	}
	radius, err := strconv.ParseFloat(q.Get("radius"), 64)
	if err != nil || radius == 0 {
		radius = 500
	}

	data := make([]map[string]any, 0)
	for _, a := range airports {
		d := distanceKm(lat, lon, a.Lat, a.Lon)
		if d > radius {
			continue
		}
		data = append(data, map[string]any{
			"type":         "location",
			"subType":      "AIRPORT",
			"name":         a.Name,
			"detailedName": a.CityName + "/" + a.Country + ":" + a.Name,
			"id":           "A" + a.IATA,
			"iataCode":     a.IATA,
			"geoCode":      map[string]float64{"latitude": a.Lat, "longitude": a.Lon},
			"address": map[string]string{
				"cityName":    a.CityName,
				"cityCode":    a.CityCode,
				"countryName": a.Country,
			},
			"distance":  map[string]any{"value": int(d), "unit": "KM"},
			"analytics": map[string]any{"travelers": map[string]float64{"score": a.Score}},
		})
	}

	latency()
	writeJSON(w, http.StatusOK, map[string]any{"data": data, "meta": Meta{Count: len(data)}})
}

func findAirport(code string) (airport, bool) {
	for _, a := range airports {
		if strings.EqualFold(a.IATA, code) {
			return a, true
		}
	}
	return airport{}, false
}

// offerFor builds a deterministic offer. The id encodes the route so a lookup
// can rebuild it.
func offerFor(from, to airport, date string, n int) map[string]any {
	minutes := int(distanceKm(from.Lat, from.Lon, to.Lat, to.Lon)/800*60) + 30 + n*45
	duration := fmt.Sprintf("PT%dH%dM", minutes/60, minutes%60)
	depart, _ := time.Parse("2006-01-02", date)
	depart = depart.Add(time.Duration(7+n*4) * time.Hour)
	arrive := depart.Add(time.Duration(minutes) * time.Minute)
	total := fmt.Sprintf("%.2f", float64(minutes)*1.7+float64(n)*25)

	return map[string]any{
		"type":                  "flight-offer",
		"id":                    fmt.Sprintf("%s-%s-%s-%d", from.IATA, to.IATA, date, n),
		"source":                "GDS",
		"oneWay":                false,
		"numberOfBookableSeats": 9 - n,
		"itineraries": []map[string]any{{
			"duration": duration,
			"segments": []map[string]any{{
				"departure":     map[string]string{"iataCode": from.IATA, "at": depart.Format("2006-01-02T15:04:05")},
				"arrival":       map[string]string{"iataCode": to.IATA, "at": arrive.Format("2006-01-02T15:04:05")},
				"carrierCode":   "MK",
				"number":        strconv.Itoa(100 + n),
				"aircraft":      map[string]string{"code": "320"},
				"duration":      duration,
				"id":            strconv.Itoa(n + 1),
				"numberOfStops": 0,
			}},
		}},
		"price":                  map[string]string{"currency": "USD", "total": total, "grandTotal": total},
		"validatingAirlineCodes": []string{"MK"},
	}
}

func FlightOffersHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	q := r.URL.Query()
	date := q.Get("departureDate")
	if _, err := time.Parse("2006-01-02", date); err != nil {
		badRequest(w, "departureDate must be a valid date")
		return
	}
	from, okFrom := findAirport(q.Get("originLocationCode"))
	to, okTo := findAirport(q.Get("destinationLocationCode"))

	data := make([]map[string]any, 0)
	if okFrom && okTo && from.IATA != to.IATA {
		limit, err := strconv.Atoi(q.Get("max"))
		if err != nil || limit <= 0 {
			limit = 250
		}
		for n := 0; n < 3 && n < limit; n++ {
			data = append(data, offerFor(from, to, date, n))
		}
	}

	latency()
	writeJSON(w, http.StatusOK, map[string]any{
		"data":         data,
		"dictionaries": map[string]any{"carriers": map[string]string{"MK": "MOCK AIR"}},
		"meta":         Meta{Count: len(data)},
	})
}

func FlightOfferHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	parts := strings.Split(r.PathValue("id"), "-")
	if len(parts) == 6 {
		from, okFrom := findAirport(parts[0])
		to, okTo := findAirport(parts[1])
		n, err := strconv.Atoi(parts[5])
		date := strings.Join(parts[2:5], "-")
		if okFrom && okTo && err == nil {
			writeJSON(w, http.StatusOK, map[string]any{"data": offerFor(from, to, date, n)})
			return
		}
	}
	writeJSON(w, http.StatusNotFound, ErrorBody{Errors: []ErrorEntry{{
		Status: http.StatusNotFound, Code: 1797, Title: "NOT FOUND", Detail: "Flight offer not found",
	}}})
}

func countryOf(cityCode string) string {
	for _, c := range cities {
		if c.CityCode == cityCode {
			return c.CountryCode
		}
	}
	return ""
}

func hotelJSON(h hotel, lat, lon float64, withDistance bool) map[string]any {
	out := map[string]any{
		"chainCode": "MK",
		"iataCode":  h.CityCode,
		"dupeId":    700000000 + len(h.ID),
		"name":      h.Name,
		"hotelId":   h.ID,
		"rating":    h.Rating,
		"geoCode":   map[string]float64{"latitude": h.Lat, "longitude": h.Lon},
		"address":   map[string]string{"countryCode": countryOf(h.CityCode)},
	}
	if withDistance {
		out["distance"] = map[string]any{"value": distanceKm(lat, lon, h.Lat, h.Lon), "unit": "KM"}
	}
	return out
}

func writeHotels(w http.ResponseWriter, data []map[string]any) {
	latency()
	writeJSON(w, http.StatusOK, map[string]any{"data": data, "meta": Meta{Count: len(data)}})
}

func HotelsByCityHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	code := r.URL.Query().Get("cityCode")
	data := make([]map[string]any, 0)
	for _, h := range hotels {
		if strings.EqualFold(h.CityCode, code) {
			data = append(data, hotelJSON(h, 0, 0, false))
		}
	}
	writeHotels(w, data)
}

func HotelsByGeocodeHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("latitude"), 64)
	lon, errLon := strconv.ParseFloat(q.Get("longitude"), 64)
	if errLat != nil || errLon != nil {
		badRequest(w, "latitude and longitude are required")
		return
	}
	radius, err := strconv.ParseFloat(q.Get("radius"), 64)
	if err != nil || radius == 0 {
		radius = 5
	}
	data := make([]map[string]any, 0)
	for _, h := range hotels {
		if distanceKm(lat, lon, h.Lat, h.Lon) <= radius {
			data = append(data, hotelJSON(h, lat, lon, true))
		}
	}
	writeHotels(w, data)
}

func HotelsByIDsHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	data := make([]map[string]any, 0)
	for _, id := range strings.Split(r.URL.Query().Get("hotelIds"), ",") {
		for _, h := range hotels {
			if h.ID == id {
				data = append(data, hotelJSON(h, 0, 0, false))
			}
		}
	}
	writeHotels(w, data)
}

func HotelOffersHandler(w http.ResponseWriter, r *http.Request) {
	if !authorized(w, r) {
		return
	}
	q := r.URL.Query()
	in, errIn := time.Parse("2006-01-02", q.Get("checkInDate"))
	out, errOut := time.Parse("2006-01-02", q.Get("checkOutDate"))
	if errIn != nil || errOut != nil || !out.After(in) {
		badRequest(w, "checkInDate and checkOutDate must be valid and ordered")
		return
	}
	adults, err := strconv.Atoi(q.Get("adults"))
	if err != nil || adults <= 0 {
		adults = 1
	}
	nights := int(out.Sub(in).Hours() / 24)
	currency := q.Get("currency")
	if currency == "" {
		currency = "USD"
	}

	wanted := map[string]bool{}
	for _, id := range strings.Split(q.Get("hotelIds"), ",") {
		wanted[id] = true
	}
	code := q.Get("cityCode")

	data := make([]map[string]any, 0)
	for _, h := range hotels {
		if !wanted[h.ID] && !strings.EqualFold(h.CityCode, code) {
			continue
		}
		total := fmt.Sprintf("%.2f", h.Nightly*float64(nights))
		data = append(data, map[string]any{
			"type": "hotel-offers",
			"hotel": map[string]any{
				"type": "hotel", "hotelId": h.ID, "name": h.Name, "cityCode": h.CityCode,
				"latitude": h.Lat, "longitude": h.Lon,
			},
			"available": true,
			"offers": []map[string]any{{
				"id":           h.ID + "-" + q.Get("checkInDate"),
				"checkInDate":  q.Get("checkInDate"),
				"checkOutDate": q.Get("checkOutDate"),
				"guests":       map[string]int{"adults": adults},
				"price":        map[string]string{"currency": currency, "total": total},
			}},
		})
	}

	latency()
	writeJSON(w, http.StatusOK, map[string]any{"data": data, "meta": Meta{Count: len(data)}})
}
