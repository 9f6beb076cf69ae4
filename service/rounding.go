package service

import "math"

// roundTo2Decimals redondea un float64 a 2 decimales
func roundTo2Decimals(value float64) float64 {
	return math.Round(value*100) / 100
}

func roundTo1Decimal(value float64) float64 {
	return math.Round(value*10) / 10
}

// roundToUnits redondea a unidades monetarias enteras
func roundToUnits(value float64) float64 {
	return math.Round(value)
}

// safeDenominator keeps debt-service divisors at or above MinDebtDenominator.
// Zero debt service divides by 1 instead of returning an error.
func safeDenominator(value float64) float64 {
	return math.Max(value, MinDebtDenominator)
}
