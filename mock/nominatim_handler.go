package main

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
)

type NominatimPlace struct {
	Lat         string           `json:"lat"`
	Lon         string           `json:"lon"`
	DisplayName string           `json:"display_name"`
	Address     NominatimAddress `json:"address"`
}

type NominatimAddress struct {
	City    string `json:"city"`
	Country string `json:"country"`
}

// NominatimSearchHandler matches the first comma separated part of q against
// the fixture cities.
func NominatimSearchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Header.Get("User-Agent") == "" {
		http.Error(w, "User-Agent required", http.StatusForbidden)
		return
	}

	name, _, _ := strings.Cut(r.URL.Query().Get("q"), ",")
	name = strings.TrimSpace(name)

	places := make([]NominatimPlace, 0, 1)
	for _, c := range cities {
		if strings.EqualFold(c.Name, name) {
			places = append(places, NominatimPlace{
				Lat:         strconv.FormatFloat(c.Lat, 'f', 7, 64),
				Lon:         strconv.FormatFloat(c.Lon, 'f', 7, 64),
				DisplayName: c.Name + ", " + c.Country,
				Address:     NominatimAddress{City: c.Name, Country: c.Country},
			})
			break
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(places)
}
