package flight

import (
	"regexp"
	"sort"
	"strconv"

	"tripscout/pkg/amadeus"
)

var isoDuration = regexp.MustCompile(`PT(?:(\d+)H)?(?:(\d+)M)?`)

// durationMinutes reads the first itinerary's ISO-8601 duration. Missing or
// unparsable durations count as zero.
func durationMinutes(offer amadeus.FlightOffer) int {
	if len(offer.Itineraries) == 0 {
		return 0
	}
	return parseDuration(offer.Itineraries[0].Duration)
}

func parseDuration(s string) int {
	m := isoDuration.FindStringSubmatch(s)
	if m == nil {
		return 0
	}
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	return hours*60 + minutes
}

// Sort stable so offers with equal duration keep their fan-out order.
func sortByDuration(offers []amadeus.FlightOffer) {
	sort.SliceStable(offers, func(i, j int) bool {
		return durationMinutes(offers[i]) < durationMinutes(offers[j])
	})
}
