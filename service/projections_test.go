package service

import (
	"testing"

	"loan-cashflow/domain"

	"github.com/stretchr/testify/assert"
)

func TestGenerateProjections_LowRisk(t *testing.T) {
	historical := GenerateHistoricalData(0.8, 150000, fixedSource(0.5))

	p := GenerateProjections(historical, 500000, 60)

	assert.Equal(t, 8.0, p.AnnualGrowthRate)
	assert.Equal(t, 162000.0, p.AnnualRevenue)
	assert.Equal(t, 69444.0, p.OperatingCashFlow)
	assert.Equal(t, 61644.0, p.FreeCashFlow)
	assert.Equal(t, 0.49, p.DebtServiceCoverageRatio)
	assert.Equal(t, 2894.0, p.LoanPaymentCapacity)
}

func TestGenerateProjections_NegativeTrendClampsGrowth(t *testing.T) {
	historical := GenerateHistoricalData(0.2, 150000, fixedSource(0))
	assert.Less(t, historical.RevenueTrend, 0.0)

	p := GenerateProjections(historical, 500000, 60)

	assert.Equal(t, 0.0, p.AnnualGrowthRate)
	assert.Equal(t, historical.Revenue, p.AnnualRevenue)
}

func TestGenerateProjections_SmallNegativeTrendNeverNegative(t *testing.T) {
	p := GenerateProjections(domain.CashFlowHistoricalData{Revenue: 1000, RevenueTrend: -0.4}, 1000, 12)

	assert.False(t, p.AnnualGrowthRate < 0)
}

func TestNewMonthlyDebtService(t *testing.T) {
	historical := domain.CashFlowHistoricalData{ExistingDebtService: 27000}

	assert.Equal(t, 9551.0+2250.0, NewMonthlyDebtService(historical, 500000, 60))
}

func TestGenerateProjections_ZeroDebtDoesNotDivideByZero(t *testing.T) {
	historical := domain.CashFlowHistoricalData{Revenue: 1200, OperatingCashFlow: 1200}

	p := GenerateProjections(historical, 0.01, 12)

	assert.Equal(t, 100.0, p.DebtServiceCoverageRatio)
}
