package service

import "loan-cashflow/domain"

// GenerateCashFlowAnalysis derives the full analysis for one application.
// rng is consulted only for historical trend percentages.
func GenerateCashFlowAnalysis(
	input domain.LoanApplicationInput,
	rng RandomSource,
) (domain.CashFlowAnalysis, error) {

	riskFactor, err := RiskFactorFor(input.RiskTier)
	if err != nil {
		return domain.CashFlowAnalysis{}, err
	}
	if input.Amount <= 0 || input.Term <= 0 {
		return domain.CashFlowAnalysis{}, &domain.InvalidAmountError{Amount: input.Amount, Term: input.Term}
	}

	health := healthFor(riskFactor)

	historical := GenerateHistoricalData(riskFactor, BaseRevenue(input), rng)
	volatility := GenerateVolatilityMetrics(riskFactor)
	projections := GenerateProjections(historical, input.Amount, input.Term)
	funding := SelectFundingSource(riskFactor, input.Amount, input.Term, health, projections)

	return domain.CashFlowAnalysis{
		CashFlowHealth:             health,
		RepaymentCapacity:          repaymentCapacityFor(riskFactor),
		Recommendation:             recommendationFor(health),
		HistoricalData:             historical,
		VolatilityMetrics:          volatility,
		Projections:                projections,
		Strengths:                  GenerateStrengths(health, historical, volatility),
		Concerns:                   GenerateConcerns(health, historical, volatility),
		SeasonalityInsights:        GenerateSeasonalityInsights(input.AssetClass),
		StressTestingSummary:       GenerateStressTestSummary(riskFactor, projections, volatility),
		RecommendedFundingSource:   funding.Source,
		RecommendedInterestRate:    funding.InterestRate,
		RecommendedLoanStructure:   funding.LoanStructure,
		FundingRationale:           funding.Rationale,
		RiskFactors:                GenerateRiskFactors(historical, volatility),
		MitigationStrategies:       GenerateMitigationStrategies(health),
		ImprovementRecommendations: GenerateImprovementRecommendations(historical, volatility),
	}, nil
}
