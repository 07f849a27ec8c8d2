package flight

import (
	"sort"

	"tripscout/pkg/amadeus"
)

const maxRankedAirports = 5

// RankAirports keeps airports with a three-letter IATA code and orders them
// by traveler score, highest first, then by distance, nearest first. At most
// five are returned. Full ties keep their input order. The input slice is not
// modified.
func RankAirports(airports []amadeus.Airport) []amadeus.Airport {
	ranked := make([]amadeus.Airport, 0, len(airports))
	for _, a := range airports {
		if len(a.IATACode) == 3 {
			ranked = append(ranked, a)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		si, sj := ranked[i].TravelerScore(), ranked[j].TravelerScore()
		if si != sj {
			return si > sj
		}
		return ranked[i].Distance.Value < ranked[j].Distance.Value
	})

	if len(ranked) > maxRankedAirports {
		ranked = ranked[:maxRankedAirports]
	}
	return ranked
}
