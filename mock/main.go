// Command mock serves canned Amadeus and Nominatim responses so the gateway
// can run locally without provider credentials. Point AMADEUS_BASE_URL and
// NOMINATIM_BASE_URL at it; any client id and secret are accepted.
package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
)

func main() {
	// Default port
	port := "8081"

	// Check if port is provided as command line argument
	if len(os.Args) > 1 {
		port = os.Args[1]
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/security/oauth2/token", TokenHandler)
	mux.HandleFunc("GET /v1/reference-data/locations/airports", AirportsHandler)
	mux.HandleFunc("GET /v2/shopping/flight-offers", FlightOffersHandler)
	mux.HandleFunc("GET /v2/shopping/flight-offers/{id}", FlightOfferHandler)
	mux.HandleFunc("GET /v1/reference-data/locations/hotels/by-city", HotelsByCityHandler)
	mux.HandleFunc("GET /v1/reference-data/locations/hotels/by-geocode", HotelsByGeocodeHandler)
	mux.HandleFunc("GET /v1/reference-data/locations/hotels/by-hotels", HotelsByIDsHandler)
	mux.HandleFunc("GET /v2/shopping/hotel-offers", HotelOffersHandler)
	mux.HandleFunc("GET /v3/shopping/hotel-offers", HotelOffersHandler)
	mux.HandleFunc("GET /search", NominatimSearchHandler)

	addr := fmt.Sprintf(":%s", port)
	fmt.Printf("Go Mock Server running on port %s...\n", port)
	if err := http.ListenAndServe(addr, mux); err != nil {
		log.Fatal(err)
	}
}
