package service

import (
	"math"

	"loan-cashflow/domain"
)

var (
	volatilityLabels   = [...]string{"Low Volatility", "Moderate Volatility", "High Volatility"}
	cashBufferLabels   = [...]string{"Strong Buffer", "Adequate Buffer", "Limited Buffer"}
	peakToTroughLabels = [...]string{"Stable Revenue Pattern", "Moderate Fluctuation", "Significant Fluctuation"}
)

// GenerateVolatilityMetrics derives the volatility figures from riskFactor alone.
// Std-dev and peak-to-trough fall as riskFactor rises, the cash buffer grows.
func GenerateVolatilityMetrics(riskFactor float64) domain.CashFlowVolatilityMetrics {
	bucket := riskBucket(riskFactor)

	return domain.CashFlowVolatilityMetrics{
		RevenueStandardDeviation:        roundTo1Decimal(25 - 20*riskFactor),
		RevenueVolatilityInterpretation: volatilityLabels[bucket],
		CashBufferMonths:                roundTo1Decimal(math.Max(0, 1+6*riskFactor)),
		CashBufferInterpretation:        cashBufferLabels[bucket],
		PeakToTroughRatio:               roundTo2Decimals(math.Max(1, 2-riskFactor)),
		PeakToTroughInterpretation:      peakToTroughLabels[bucket],
	}
}
