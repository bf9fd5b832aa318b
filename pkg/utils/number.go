package utils

import (
	"math"
	"strconv"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FloatOrZero coerces an insight field to float64. The Graph API returns
// numeric metrics as strings; missing or unparsable values count as zero.
func FloatOrZero(s string) float64 {
	if s == "" {
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return f
}

// IntOrZero coerces an insight field to int, accepting float-formatted input
func IntOrZero(s string) int {
	if s == "" {
		return 0
	}

	if i, err := strconv.Atoi(s); err == nil {
		return i
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}

	return int(f)
}
