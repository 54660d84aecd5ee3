package generator

import (
	"math"

	"github.com/Nephophile06/Bookstore-Data-Generator/pkg/seedrand"
)

// SampleCount turns a fractional expected count into an integer: the integer
// part of average plus one with probability equal to its fractional part.
// Exactly one draw is consumed whatever the average.
func SampleCount(src *seedrand.Source, average float64) int {
	r := src.Float64()
	if !(average > 0) || math.IsInf(average, 0) {
		return 0
	}
	whole := math.Floor(average)
	count := int(whole)
	if r < average-whole {
		count++
	}
	return count
}
