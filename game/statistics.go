package game

import (
	"math"
	"slices"
)

// Sum ...
func Sum(data []float64) (result float64) {
	for _, v := range data {
		result += v
	}
	return result
}

// Mean ...
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return 0
	}
	return Sum(data) / float64(len(data))
}

// Median returns the middle value of data without reordering it.
func Median(data []float64) float64 {
	return Percentile(data, 0.5)
}

// Percentile returns the value below which a fraction p of data falls, interpolating between the closest
// ranks. data is not reordered.
func Percentile(data []float64, p float64) float64 {
	if len(data) == 0 {
		return 0
	}
	sorted := slices.Sorted(slices.Values(data))
	rank := ClampFloat64(p, 0, 1) * float64(len(sorted)-1)
	lo, hi := int(math.Floor(rank)), int(math.Ceil(rank))
	return sorted[lo] + (sorted[hi]-sorted[lo])*(rank-float64(lo))
}

// Variance ...
func Variance(data []float64) (variance float64) {
	if len(data) == 0 {
		return 0
	}
	mean := Mean(data)
	for _, v := range data {
		variance += (v - mean) * (v - mean)
	}
	return variance / float64(len(data))
}

// StandardDeviation ...
func StandardDeviation(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// ClampFloat64 clamps the given value to the given range.
func ClampFloat64(num, min, max float64) float64 {
	return math.Max(min, math.Min(num, max))
}
