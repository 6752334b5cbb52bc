package utils

import (
	"math"
	"strconv"
	"strings"
)

// SafeMoney normalizes a money value coming from a form. NaN/Inf become 0 so
// a bad input can never poison downstream sums.
func SafeMoney(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// ParseMoney parses a user-typed amount ("1,500" included); unparseable
// input becomes 0, never an error.
func ParseMoney(s string) float64 {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return SafeMoney(v)
}
