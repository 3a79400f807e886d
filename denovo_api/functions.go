package denovo_api

import (
	"math"
	"slices"
	"strconv"
)

func some(value float64) Measure {
	return Measure{Value: value, Valid: true}
}

var none = Measure{Value: math.NaN()}

// Usable when present and finite
func (m Measure) usable() bool {
	return m.Valid && !math.IsNaN(m.Value) && !math.IsInf(m.Value, 0)
}

// Convert a VCF value to a Measure, the missing marker is unavailable
func stringToMeasure(input string) Measure {
	if input == "" || input == missingValue {
		return none
	}
	result, err := strconv.ParseFloat(input, 64)
	if err != nil {
		return none
	}
	return some(result)
}

func floatToString(input float64) string {
	return strconv.FormatFloat(input, 'f', -1, 64)
}

// The median of input, NaN for an empty slice
func median(input []float64) float64 {
	if len(input) == 0 {
		return math.NaN()
	}
	sorted := slices.Clone(input)
	slices.Sort(sorted)
	middle := len(sorted) / 2
	if len(sorted)%2 == 1 {
		return sorted[middle]
	}
	return (sorted[middle-1] + sorted[middle]) / 2
}

// The largest and smallest of two values
func maxMin(a float64, b float64) (float64, float64) {
	return math.Max(a, b), math.Min(a, b)
}
