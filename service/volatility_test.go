package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateVolatilityMetrics(t *testing.T) {
	tests := []struct {
		riskFactor float64
		stdDev     float64
		buffer     float64
		peak       float64
		labels     [3]string
	}{
		{0.8, 9.0, 5.8, 1.2, [3]string{"Low Volatility", "Strong Buffer", "Stable Revenue Pattern"}},
		{0.5, 15.0, 4.0, 1.5, [3]string{"Moderate Volatility", "Adequate Buffer", "Moderate Fluctuation"}},
		{0.2, 21.0, 2.2, 1.8, [3]string{"High Volatility", "Limited Buffer", "Significant Fluctuation"}},
	}

	for _, tt := range tests {
		m := GenerateVolatilityMetrics(tt.riskFactor)

		assert.Equal(t, tt.stdDev, m.RevenueStandardDeviation)
		assert.Equal(t, tt.buffer, m.CashBufferMonths)
		assert.Equal(t, tt.peak, m.PeakToTroughRatio)
		assert.Equal(t, tt.labels[0], m.RevenueVolatilityInterpretation)
		assert.Equal(t, tt.labels[1], m.CashBufferInterpretation)
		assert.Equal(t, tt.labels[2], m.PeakToTroughInterpretation)
	}
}

func TestGenerateVolatilityMetrics_SharedThresholds(t *testing.T) {
	// 0.7 y 0.4 caen en el bucket inferior (comparación estricta)
	atStrong := GenerateVolatilityMetrics(0.7)
	assert.Equal(t, "Moderate Volatility", atStrong.RevenueVolatilityInterpretation)
	assert.Equal(t, "Adequate Buffer", atStrong.CashBufferInterpretation)
	assert.Equal(t, "Moderate Fluctuation", atStrong.PeakToTroughInterpretation)

	atModerate := GenerateVolatilityMetrics(0.4)
	assert.Equal(t, "High Volatility", atModerate.RevenueVolatilityInterpretation)
	assert.Equal(t, "Limited Buffer", atModerate.CashBufferInterpretation)
	assert.Equal(t, "Significant Fluctuation", atModerate.PeakToTroughInterpretation)
}

func TestGenerateVolatilityMetrics_Bounds(t *testing.T) {
	for _, rf := range []float64{0, 0.1, 0.5, 0.99, 1} {
		m := GenerateVolatilityMetrics(rf)
		assert.GreaterOrEqual(t, m.CashBufferMonths, 0.0)
		assert.GreaterOrEqual(t, m.PeakToTroughRatio, 1.0)
	}
}
