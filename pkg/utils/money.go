package utils

import "math"

// RoundAmount rounds a monetary amount to two decimal places.
func RoundAmount(amount float64) float64 {
	return math.Round(amount*100) / 100
}
