package rng

import (
	"math"
	"math/rand/v2"
	"time"
)

// SeededRandom maps an integer seed to a value in [0,1). It is a pure
// sine-based hash, not a stateful PRNG: the same seed always yields the
// same value.
func SeededRandom(seed int64) float64 {
	x := math.Sin(float64(seed)) * 10000
	return x - math.Floor(x)
}

// DailySeed derives the calendar-date seed (year*10000 + month*100 + day)
// so every player on the same day sees identical daily content.
func DailySeed(t time.Time) int64 {
	return int64(t.Year())*10000 + int64(t.Month())*100 + int64(t.Day())
}

// TimeSeed returns a non-calendar seed for ad hoc practice modes.
func TimeSeed(t time.Time) int64 {
	return t.UnixMilli()
}

// Shuffle runs a Fisher-Yates pass over items, drawing step i from
// SeededRandom(seed+i). Deterministic for a given (contents, seed);
// mutates items in place.
//
// Callers that shuffle more than once for a single decision must pass
// distinct seed offsets so independent shuffles cannot correlate.
func Shuffle[T any](items []T, seed int64) {
	for i := len(items) - 1; i > 0; i-- {
		j := int(SeededRandom(seed+int64(i)) * float64(i+1))
		items[i], items[j] = items[j], items[i]
	}
}

// ShuffleRandom is the non-deterministic variant used outside daily mode.
func ShuffleRandom[T any](items []T) {
	rand.Shuffle(len(items), func(i, j int) {
		items[i], items[j] = items[j], items[i]
	})
}

// Pick returns a deterministic index in [0,n) for the given seed.
func Pick(seed int64, n int) int {
	if n <= 0 {
		return 0
	}
	return int(SeededRandom(seed) * float64(n))
}

// PickRandom returns a uniform index in [0,n) without a seed.
func PickRandom(n int) int {
	if n <= 0 {
		return 0
	}
	return rand.IntN(n)
}
