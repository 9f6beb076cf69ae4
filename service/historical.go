package service

import "loan-cashflow/domain"

// BaseRevenue picks the revenue figure the historical data is built from.
func BaseRevenue(input domain.LoanApplicationInput) float64 {
	if input.Borrower.IsCompany {
		if input.Borrower.AnnualRevenue > 0 {
			return input.Borrower.AnnualRevenue
		}
		return input.Amount * 4
	}
	if input.Borrower.Income > 0 {
		return input.Borrower.Income
	}
	return input.Amount * 2
}

// COGSRatio and OpexRatio shrink as riskFactor grows: healthier borrowers keep more margin.
func COGSRatio(riskFactor float64) float64 { return 0.55 - 0.15*riskFactor }

func OpexRatio(riskFactor float64) float64 { return 0.25 - 0.05*riskFactor }

// GenerateHistoricalData builds the trailing financials. Trend percentages are the only
// random values; draws happen in a fixed order so a seeded source reproduces the result.
func GenerateHistoricalData(
	riskFactor float64,
	baseRevenue float64,
	rng RandomSource,
) domain.CashFlowHistoricalData {

	revenue := roundToUnits(baseRevenue)
	revenueTrend := roundTo1Decimal(rng.Float64()*10 - 5 + riskFactor*10)

	cogs := roundToUnits(revenue * COGSRatio(riskFactor))
	cogsTrend := roundTo1Decimal(rng.Float64()*6 - 1 - riskFactor*4)

	opex := roundToUnits(revenue * OpexRatio(riskFactor))
	opexTrend := roundTo1Decimal(rng.Float64()*6 - 1 - riskFactor*3)

	capex := roundToUnits(revenue * (0.04 + 0.06*(1-riskFactor)))
	capexTrend := roundTo1Decimal(rng.Float64()*20 - 5 + (1-riskFactor)*10)

	debtServiceTrend := roundTo1Decimal(rng.Float64()*6 - 3 + (1-riskFactor)*4)

	data := domain.CashFlowHistoricalData{
		Revenue:                  revenue,
		RevenueTrend:             revenueTrend,
		COGS:                     cogs,
		COGSTrend:                cogsTrend,
		OperatingExpenses:        opex,
		OperatingExpensesTrend:   opexTrend,
		CashConversionCycle:      roundToUnits(75 - 40*riskFactor),
		CashConversionCycleTrend: roundTo1Decimal(5 - 10*riskFactor),
		CapitalExpenditures:      capex,
		CapitalExpendituresTrend: capexTrend,
		ExistingDebtServiceTrend: debtServiceTrend,
	}

	data = withOperatingCashFlow(data)

	// La deuda existente se dimensiona contra una cobertura objetivo que sigue al riskFactor
	targetCoverage := 0.8 + 1.5*riskFactor
	data.ExistingDebtService = roundToUnits(data.OperatingCashFlow / targetCoverage)

	return withDebtServiceCoverage(data)
}

// withOperatingCashFlow recomputes operating cash flow and its trend from revenue and costs.
func withOperatingCashFlow(data domain.CashFlowHistoricalData) domain.CashFlowHistoricalData {
	data.OperatingCashFlow = roundToUnits(data.Revenue - data.COGS - data.OperatingExpenses)

	priorRevenue := data.Revenue / (1 + data.RevenueTrend/100)
	priorCOGS := data.COGS / (1 + data.COGSTrend/100)
	priorOpex := data.OperatingExpenses / (1 + data.OperatingExpensesTrend/100)
	priorCashFlow := priorRevenue - priorCOGS - priorOpex

	data.OperatingCashFlowTrend = 0
	if priorCashFlow > 0 {
		data.OperatingCashFlowTrend = roundTo1Decimal((data.OperatingCashFlow/priorCashFlow - 1) * 100)
	}
	return data
}

// withDebtServiceCoverage recomputes the DSCR from operating cash flow and existing debt service.
func withDebtServiceCoverage(data domain.CashFlowHistoricalData) domain.CashFlowHistoricalData {
	data.DebtServiceCoverageRatio = roundTo2Decimals(
		data.OperatingCashFlow / safeDenominator(data.ExistingDebtService),
	)
	return data
}
