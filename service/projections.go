package service

import (
	"math"

	"loan-cashflow/domain"
)

// GenerateProjections projects the next twelve months for the requested loan.
// Growth is never assumed to be negative.
func GenerateProjections(
	historical domain.CashFlowHistoricalData,
	amount float64,
	termMonths int,
) domain.CashFlowProjections {

	growthRate := math.Max(0, roundToUnits(historical.RevenueTrend))
	operatingCashFlow := roundToUnits(historical.OperatingCashFlow * (1 + historical.OperatingCashFlowTrend/100))
	monthlyCashFlow := operatingCashFlow / 12

	combinedDebtService := safeDenominator(NewMonthlyDebtService(historical, amount, termMonths))

	return domain.CashFlowProjections{
		AnnualRevenue:            roundToUnits(historical.Revenue * (1 + growthRate/100)),
		AnnualGrowthRate:         growthRate,
		OperatingCashFlow:        operatingCashFlow,
		FreeCashFlow:             roundToUnits(operatingCashFlow - historical.CapitalExpenditures),
		DebtServiceCoverageRatio: roundTo2Decimals(monthlyCashFlow / combinedDebtService),
		LoanPaymentCapacity:      roundToUnits(0.5 * monthlyCashFlow),
	}
}

// NewMonthlyDebtService returns the new loan payment plus the existing monthly obligations.
func NewMonthlyDebtService(historical domain.CashFlowHistoricalData, amount float64, termMonths int) float64 {
	newLoanPayment := roundToUnits(MonthlyPayment(amount, ProjectionAnnualRate, termMonths))
	return newLoanPayment + historical.ExistingDebtService/12
}
