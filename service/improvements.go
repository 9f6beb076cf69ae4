package service

import (
	"fmt"

	"loan-cashflow/domain"
)

const (
	forecastingTitle   = "Implement Cash Flow Forecasting"
	diversifyTitle     = "Diversify Revenue Streams"
	workingCapitalDays = 60
	minBufferMonths    = 4
)

// GenerateImprovementRecommendations suggests borrower actions from the weak spots in the data.
func GenerateImprovementRecommendations(
	historical domain.CashFlowHistoricalData,
	volatility domain.CashFlowVolatilityMetrics,
) []domain.ImprovementRecommendation {
	recs := []domain.ImprovementRecommendation{}

	if historical.CashConversionCycle > workingCapitalDays {
		recs = append(recs, domain.ImprovementRecommendation{
			Title: "Optimize Working Capital",
			Description: fmt.Sprintf("Reduce the %.0f day cash conversion cycle by tightening receivable terms "+
				"and negotiating longer supplier payment terms.", historical.CashConversionCycle),
			Tags: []string{"Working Capital", "Short-term"},
		})
	}
	if historical.OperatingExpensesTrend > 0 {
		recs = append(recs, domain.ImprovementRecommendation{
			Title: "Control Operating Expenses",
			Description: fmt.Sprintf("Operating expenses grew %.1f%%; review discretionary spend and "+
				"renegotiate major cost contracts.", historical.OperatingExpensesTrend),
			Tags: []string{"Cost Management", "Medium-term"},
		})
	}
	if volatility.CashBufferMonths < minBufferMonths {
		recs = append(recs, domain.ImprovementRecommendation{
			Title: "Build Cash Reserves",
			Description: fmt.Sprintf("Increase the cash buffer from %.1f to at least %d months of operating "+
				"expenses by retaining a share of monthly surplus.", volatility.CashBufferMonths, minBufferMonths),
			Tags: []string{"Liquidity", "Medium-term"},
		})
	}

	if len(recs) < MinImprovements {
		recs = append(recs, domain.ImprovementRecommendation{
			Title:       forecastingTitle,
			Description: "Adopt a rolling 13-week cash flow forecast to anticipate shortfalls before they occur.",
			Tags:        []string{"Planning", "Short-term"},
		})
	}
	if !hasRecommendation(recs, diversifyTitle) {
		recs = append(recs, domain.ImprovementRecommendation{
			Title:       diversifyTitle,
			Description: "Reduce dependence on the largest customers and products to stabilise revenue.",
			Tags:        []string{"Growth", "Long-term"},
		})
	}

	for _, fallback := range fallbackImprovements {
		if len(recs) >= MinImprovements {
			break
		}
		if !hasRecommendation(recs, fallback.Title) {
			recs = append(recs, fallback)
		}
	}

	return capList(recs, MaxImprovements)
}

// fallbackImprovements completa la lista hasta MinImprovements
var fallbackImprovements = []domain.ImprovementRecommendation{
	{
		Title:       "Review Pricing Strategy",
		Description: "Benchmark prices against peers annually and pass through input cost increases in time.",
		Tags:        []string{"Profitability", "Medium-term"},
	},
	{
		Title:       "Formalize Financial Reporting",
		Description: "Produce quarterly management accounts to support covenant testing and future credit requests.",
		Tags:        []string{"Governance", "Short-term"},
	},
}

func hasRecommendation(recs []domain.ImprovementRecommendation, title string) bool {
	for _, rec := range recs {
		if rec.Title == title {
			return true
		}
	}
	return false
}
