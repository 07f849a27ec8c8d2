package flight

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"tripscout/pkg/amadeus"
)

func codesOf(airports []amadeus.Airport) []string {
	out := make([]string, len(airports))
	for i, a := range airports {
		out[i] = a.IATACode
	}
	return out
}

func TestRankAirports_OrdersByScoreThenDistance(t *testing.T) {
	in := []amadeus.Airport{
		airport("BVA", 5, 70),
		airport("ORY", 30, 14),
		airport("CDG", 40, 25),
		airport("LBG", 30, 12),
	}

	assert.Equal(t, []string{"CDG", "LBG", "ORY", "BVA"}, codesOf(RankAirports(in)))
}

func TestRankAirports_SameOrderForAnyInputPermutation(t *testing.T) {
	in := []amadeus.Airport{
		airport("AAA", 10, 5),
		airport("BBB", 10, 9),
		airport("CCC", 50, 100),
		airport("DDD", 0, 1),
		airport("EEE", 25, 40),
		airport("FFF", 25, 30),
	}
	want := codesOf(RankAirports(in))

	rng := rand.New(rand.NewSource(7))
	for range 50 {
		shuffled := append([]amadeus.Airport(nil), in...)
		rng.Shuffle(len(shuffled), func(i, j int) { shuffled[i], shuffled[j] = shuffled[j], shuffled[i] })
		assert.Equal(t, want, codesOf(RankAirports(shuffled)))
	}
}

func TestRankAirports_FiltersInvalidCodesAndCapsAtFive(t *testing.T) {
	in := []amadeus.Airport{
		airport("", 99, 1),
		airport("AB", 99, 1),
		airport("ABCD", 99, 1),
	}
	for _, code := range []string{"AAA", "BBB", "CCC", "DDD", "EEE", "FFF", "GGG"} {
		in = append(in, airport(code, 1, 1))
	}

	got := RankAirports(in)
	assert.Len(t, got, 5)
	for _, a := range got {
		assert.Len(t, a.IATACode, 3)
	}
}

func TestRankAirports_FullTiesKeepInputOrder(t *testing.T) {
	in := []amadeus.Airport{airport("ZZZ", 10, 10), airport("AAA", 10, 10)}
	assert.Equal(t, []string{"ZZZ", "AAA"}, codesOf(RankAirports(in)))
}

func TestRankAirports_DoesNotMutateInput(t *testing.T) {
	in := []amadeus.Airport{airport("BVA", 5, 70), airport("CDG", 40, 25)}
	RankAirports(in)
	assert.Equal(t, []string{"BVA", "CDG"}, codesOf(in))
}

func TestRankAirports_Empty(t *testing.T) {
	assert.Empty(t, RankAirports(nil))
	assert.Empty(t, RankAirports([]amadeus.Airport{airport("X1", 5, 5)}))
}
