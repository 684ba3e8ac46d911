package dna

import (
	"math/rand"
	"strings"
)

// randomFloat returns a float in [min, max).
func randomFloat(rng *rand.Rand, min, max float64) float64 {
	return rng.Float64()*(max-min) + min
}

// randomInt returns an int in [min, max], both ends included.
func randomInt(rng *rand.Rand, min, max int) int {
	return min + rng.Intn(max-min+1)
}

// sampleSlice returns n contiguous runes of ref. The start offset is drawn
// from [0, len(ref)-maxLen] so any n up to maxLen stays in range.
func sampleSlice(rng *rand.Rand, ref []rune, n, maxLen int) string {
	start := randomInt(rng, 0, len(ref)-maxLen)
	return string(ref[start : start+n])
}

// foldCase lowercases s unless a draw lands under fracUpper.
func foldCase(rng *rand.Rand, s string, fracUpper float64) string {
	if rng.Float64() >= fracUpper {
		return strings.ToLower(s)
	}
	return s
}
