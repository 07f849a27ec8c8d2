package main

import "math"

type city struct {
	Name        string
	Country     string
	CountryCode string
	CityCode    string
	Lat, Lon    float64
}

type airport struct {
	IATA     string
	Name     string
	CityName string
	CityCode string
	Country  string
	Lat, Lon float64
	Score    float64
}

type hotel struct {
	ID       string
	Name     string
	CityCode string
	Rating   int
	Lat, Lon float64
	Nightly  float64
}

var cities = []city{
	{"Paris", "France", "FR", "PAR", 48.8566, 2.3522},
	{"London", "United Kingdom", "GB", "LON", 51.5074, -0.1278},
	{"Jakarta", "Indonesia", "ID", "JKT", -6.2088, 106.8456},
	{"Denpasar", "Indonesia", "ID", "DPS", -8.6705, 115.2126},
}

var airports = []airport{
	{"CDG", "CHARLES DE GAULLE", "PARIS", "PAR", "FRANCE", 49.0097, 2.5479, 38},
	{"ORY", "ORLY", "PARIS", "PAR", "FRANCE", 48.7262, 2.3652, 27},
	{"BVA", "BEAUVAIS TILLE", "BEAUVAIS", "PAR", "FRANCE", 49.4544, 2.1128, 8},
	{"LHR", "HEATHROW", "LONDON", "LON", "UNITED KINGDOM", 51.4700, -0.4543, 45},
	{"LGW", "GATWICK", "LONDON", "LON", "UNITED KINGDOM", 51.1537, -0.1821, 27},
	{"STN", "STANSTED", "LONDON", "LON", "UNITED KINGDOM", 51.8860, 0.2389, 15},
	{"CGK", "SOEKARNO-HATTA INTL", "JAKARTA", "JKT", "INDONESIA", -6.1256, 106.6559, 40},
	{"HLP", "HALIM PERDANAKUSUMA", "JAKARTA", "JKT", "INDONESIA", -6.2666, 106.8910, 12},
	{"DPS", "NGURAH RAI INTL", "DENPASAR", "DPS", "INDONESIA", -8.7482, 115.1672, 33},
}

var hotels = []hotel{
	{"HLPAR001", "HOTEL LUTETIA", "PAR", 5, 48.8512, 2.3270, 520},
	{"HLPAR002", "IBIS GARE DE LYON", "PAR", 3, 48.8443, 2.3744, 140},
	{"HLLON001", "THE SAVOY", "LON", 5, 51.5104, -0.1203, 690},
	{"HLLON002", "PREMIER INN KINGS CROSS", "LON", 3, 51.5308, -0.1238, 130},
	{"HLJKT001", "HOTEL INDONESIA KEMPINSKI", "JKT", 5, -6.1951, 106.8230, 210},
	{"HLDPS001", "PUTRI BALI", "DPS", 4, -8.7950, 115.2310, 160},
}

// distanceKm is the great-circle distance between two points.
func distanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	const earthRadiusKm = 6371.0
	toRad := func(d float64) float64 { return d * math.Pi / 180 }
	dLat := toRad(lat2 - lat1)
	dLon := toRad(lon2 - lon1)
	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRad(lat1))*math.Cos(toRad(lat2))*math.Sin(dLon/2)*math.Sin(dLon/2)
	return earthRadiusKm * 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
}
