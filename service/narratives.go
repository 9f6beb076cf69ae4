package service

import (
	"fmt"
	"slices"

	"loan-cashflow/domain"
)

var genericStrengths = map[domain.CashFlowHealth][]string{
	domain.CashFlowHealthStrong: {
		"Consistent profitability across the review period",
		"Conservative leverage relative to operating cash flow",
		"Established banking relationship with clean repayment history",
	},
	domain.CashFlowHealthModerate: {
		"Stable core revenue base",
		"Operating costs broadly in line with sector benchmarks",
		"Repayment history without material arrears",
	},
	domain.CashFlowHealthWeak: {
		"Borrower continues to generate positive operating cash flow",
		"Management engaged in the refinancing process",
		"Collateral available to support the facility",
	},
}

var genericConcerns = map[domain.CashFlowHealth][]string{
	domain.CashFlowHealthStrong: {
		"Exposure to general market and interest rate conditions",
	},
	domain.CashFlowHealthModerate: {
		"Limited headroom if revenue softens",
		"Margins sensitive to input cost increases",
	},
	domain.CashFlowHealthWeak: {
		"Thin margins leave little room for unexpected costs",
		"High reliance on continued revenue stability",
	},
}

// GenerateStrengths lists fired strength rules, padded with generic ones to MinStrengths.
func GenerateStrengths(
	health domain.CashFlowHealth,
	historical domain.CashFlowHistoricalData,
	volatility domain.CashFlowVolatilityMetrics,
) []string {
	strengths := []string{}

	if historical.DebtServiceCoverageRatio > 1.5 {
		strengths = append(strengths, fmt.Sprintf(
			"Strong debt service coverage ratio of %.2fx", historical.DebtServiceCoverageRatio))
	}
	if historical.RevenueTrend > 5 {
		strengths = append(strengths, fmt.Sprintf(
			"Healthy revenue growth of %.1f%% year over year", historical.RevenueTrend))
	}
	if volatility.CashBufferMonths > 3 {
		strengths = append(strengths, fmt.Sprintf(
			"Cash reserves cover %.1f months of operating expenses", volatility.CashBufferMonths))
	}
	if historical.OperatingCashFlowTrend > 0 {
		strengths = append(strengths, fmt.Sprintf(
			"Improving operating efficiency with cash flow up %.1f%%", historical.OperatingCashFlowTrend))
	}
	if historical.CashConversionCycle < 60 {
		strengths = append(strengths, fmt.Sprintf(
			"Efficient cash conversion cycle of %.0f days", historical.CashConversionCycle))
	}

	strengths = padWith(strengths, genericStrengths[health], MinStrengths)
	return capList(strengths, MaxStrengths)
}

// GenerateConcerns mirrors GenerateStrengths. Strong health keeps at most one concern.
func GenerateConcerns(
	health domain.CashFlowHealth,
	historical domain.CashFlowHistoricalData,
	volatility domain.CashFlowVolatilityMetrics,
) []string {
	concerns := []string{}

	if historical.DebtServiceCoverageRatio < 1.25 {
		concerns = append(concerns, fmt.Sprintf(
			"Debt service coverage of %.2fx is below the 1.25x policy minimum", historical.DebtServiceCoverageRatio))
	}
	if historical.RevenueTrend < 0 {
		concerns = append(concerns, fmt.Sprintf(
			"Revenue declined %.1f%% over the review period", -historical.RevenueTrend))
	}
	if volatility.CashBufferMonths < 3 {
		concerns = append(concerns, fmt.Sprintf(
			"Cash buffer of %.1f months is below the 3 month benchmark", volatility.CashBufferMonths))
	}
	if historical.OperatingCashFlowTrend < 0 {
		concerns = append(concerns, fmt.Sprintf(
			"Operating cash flow contracted %.1f%%", -historical.OperatingCashFlowTrend))
	}
	if volatility.PeakToTroughRatio > 1.5 {
		concerns = append(concerns, fmt.Sprintf(
			"Pronounced revenue swings with a peak-to-trough ratio of %.2f", volatility.PeakToTroughRatio))
	}
	if historical.CapitalExpendituresTrend > 15 {
		concerns = append(concerns, fmt.Sprintf(
			"Capital expenditures rising quickly at %.1f%%", historical.CapitalExpendituresTrend))
	}

	concerns = padWith(concerns, genericConcerns[health], MinConcerns)
	if health == domain.CashFlowHealthStrong {
		return capList(concerns, MaxStrongConcerns)
	}
	return capList(concerns, MaxConcerns)
}

// GenerateRiskFactors always returns one entry per metric: DSCR, revenue trend,
// cash buffer and volatility.
func GenerateRiskFactors(
	historical domain.CashFlowHistoricalData,
	volatility domain.CashFlowVolatilityMetrics,
) []string {
	dscr := historical.DebtServiceCoverageRatio
	trend := historical.RevenueTrend
	buffer := volatility.CashBufferMonths
	stdDev := volatility.RevenueStandardDeviation

	return []string{
		pickByLevel(
			dscr > 1.5, dscr > 1.25,
			fmt.Sprintf("Debt service coverage: strong at %.2fx", dscr),
			fmt.Sprintf("Debt service coverage: adequate at %.2fx with limited headroom", dscr),
			fmt.Sprintf("Debt service coverage: weak at %.2fx, repayment depends on improvement", dscr),
		),
		pickByLevel(
			trend > 5, trend > 0,
			fmt.Sprintf("Revenue trend: strong growth of %.1f%%", trend),
			fmt.Sprintf("Revenue trend: modest growth of %.1f%%", trend),
			fmt.Sprintf("Revenue trend: flat or declining at %.1f%%", trend),
		),
		pickByLevel(
			buffer > 4, buffer > 2,
			fmt.Sprintf("Liquidity: %.1f months of cash buffer provides solid protection", buffer),
			fmt.Sprintf("Liquidity: %.1f months of cash buffer is adequate", buffer),
			fmt.Sprintf("Liquidity: %.1f months of cash buffer leaves the borrower exposed", buffer),
		),
		pickByLevel(
			stdDev < 10, stdDev < 20,
			fmt.Sprintf("Revenue volatility: low at %.1f%% standard deviation", stdDev),
			fmt.Sprintf("Revenue volatility: moderate at %.1f%% standard deviation", stdDev),
			fmt.Sprintf("Revenue volatility: high at %.1f%% standard deviation", stdDev),
		),
	}
}

var baselineMitigation = []string{
	"Monthly monitoring of bank statements and repayment behaviour",
	"Annual review of financial statements against projections",
}

var tierMitigation = map[domain.CashFlowHealth][]string{
	domain.CashFlowHealthStrong: {
		"Standard financial covenants with annual compliance certificate",
		"Negative pledge over core operating assets",
	},
	domain.CashFlowHealthModerate: {
		"Minimum DSCR covenant of 1.25x tested semi-annually",
		"First-ranking security over financed assets",
		"Cash sweep of excess cash flow above agreed thresholds",
	},
	domain.CashFlowHealthWeak: {
		"Personal or parent company guarantee",
		"Debt service reserve account funded at drawdown",
		"Quarterly covenant testing with step-in rights",
		"Restrictions on dividends and additional borrowing",
	},
}

// GenerateMitigationStrategies returns the baseline strategies plus the tier-specific ones.
func GenerateMitigationStrategies(health domain.CashFlowHealth) []string {
	strategies := append([]string{}, baselineMitigation...)
	return append(strategies, tierMitigation[health]...)
}

// GenerateStressTestSummary describes the downside scenario using the already computed figures.
func GenerateStressTestSummary(
	riskFactor float64,
	projections domain.CashFlowProjections,
	volatility domain.CashFlowVolatilityMetrics,
) string {
	dscr := projections.DebtServiceCoverageRatio
	buffer := volatility.CashBufferMonths

	switch riskBucket(riskFactor) {
	case 0:
		return fmt.Sprintf("Under a 20%% revenue decline scenario, projected DSCR of %.2fx remains serviceable "+
			"and the %.1f month cash buffer absorbs the shortfall without additional funding.", dscr, buffer)
	case 1:
		return fmt.Sprintf("Under a 15%% revenue decline scenario, projected DSCR of %.2fx tightens and "+
			"the %.1f month cash buffer would be needed to bridge repayments for part of the year.", dscr, buffer)
	default:
		return fmt.Sprintf("Under a 10%% revenue decline scenario, projected DSCR of %.2fx falls short of "+
			"debt obligations and the %.1f month cash buffer is exhausted quickly; additional support is required.",
			dscr, buffer)
	}
}

func pickByLevel(strong, moderate bool, strongText, moderateText, weakText string) string {
	switch {
	case strong:
		return strongText
	case moderate:
		return moderateText
	default:
		return weakText
	}
}

// padWith appends fillers not already present until the list reaches minLen.
func padWith(list, fillers []string, minLen int) []string {
	for _, filler := range fillers {
		if len(list) >= minLen {
			break
		}
		if !slices.Contains(list, filler) {
			list = append(list, filler)
		}
	}
	return list
}

func capList[T any](list []T, maxLen int) []T {
	if len(list) > maxLen {
		return list[:maxLen]
	}
	return list
}
