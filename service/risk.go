package service

import "loan-cashflow/domain"

// RiskFactorFor maps a risk tier to the continuous riskFactor that drives every derivation.
func RiskFactorFor(tier domain.RiskTier) (float64, error) {
	switch tier {
	case domain.RiskTierLow:
		return 0.8, nil
	case domain.RiskTierMedium:
		return 0.5, nil
	case domain.RiskTierHigh:
		return 0.2, nil
	}
	return 0, &domain.InvalidRiskTierError{Tier: tier}
}

// riskBucket devuelve 0 (mejor), 1 (medio) o 2 (peor) según los umbrales 0.7 / 0.4
func riskBucket(riskFactor float64) int {
	switch {
	case riskFactor > StrongRiskThreshold:
		return 0
	case riskFactor > ModerateRiskThreshold:
		return 1
	default:
		return 2
	}
}

func healthFor(riskFactor float64) domain.CashFlowHealth {
	return [...]domain.CashFlowHealth{
		domain.CashFlowHealthStrong,
		domain.CashFlowHealthModerate,
		domain.CashFlowHealthWeak,
	}[riskBucket(riskFactor)]
}

func repaymentCapacityFor(riskFactor float64) domain.RepaymentCapacity {
	return [...]domain.RepaymentCapacity{
		domain.RepaymentCapacityStrong,
		domain.RepaymentCapacityModerate,
		domain.RepaymentCapacityLimited,
	}[riskBucket(riskFactor)]
}

func recommendationFor(health domain.CashFlowHealth) string {
	switch health {
	case domain.CashFlowHealthStrong:
		return "Approve - cash flow comfortably supports the requested facility."
	case domain.CashFlowHealthModerate:
		return "Approve with conditions - cash flow supports the facility with covenants and monitoring."
	default:
		return "Refer - cash flow is insufficient without additional collateral or restructuring."
	}
}
