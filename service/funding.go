package service

import (
	"fmt"
	"strings"

	"loan-cashflow/domain"
)

// FundingRecommendation is the lender placement chosen for an application.
type FundingRecommendation struct {
	Source        domain.FundingSource
	InterestRate  float64
	LoanStructure string
	Rationale     string
}

// SelectFundingSource places the application with Rabo Bank when riskFactor is strictly
// above FundingRiskThreshold and with ABN AMRO Bank otherwise.
func SelectFundingSource(
	riskFactor float64,
	amount float64,
	termMonths int,
	health domain.CashFlowHealth,
	projections domain.CashFlowProjections,
) FundingRecommendation {

	rec := FundingRecommendation{
		Source:       domain.FundingSourceABNAMRO,
		InterestRate: ABNAMROInterestRate,
	}
	if riskFactor > FundingRiskThreshold {
		rec.Source = domain.FundingSourceRabobank
		rec.InterestRate = RabobankInterestRate
	}

	rec.LoanStructure = loanStructure(rec.Source, rec.InterestRate, amount, termMonths)
	rec.Rationale = fundingRationale(rec.Source, health, projections.DebtServiceCoverageRatio)
	return rec
}

func loanStructure(source domain.FundingSource, rate, amount float64, termMonths int) string {
	clauses := []string{
		fmt.Sprintf("%d-month amortizing term loan at a fixed %.2f%% with monthly repayments", termMonths, rate),
	}
	if source == domain.FundingSourceABNAMRO {
		clauses = append(clauses, "minimum DSCR covenant of 1.25x")
	}
	if amount > LargeLoanAmountThreshold {
		clauses = append(clauses, "quarterly financial reporting")
	}
	return strings.Join(clauses, ", ")
}

func fundingRationale(source domain.FundingSource, health domain.CashFlowHealth, dscr float64) string {
	if source == domain.FundingSourceRabobank {
		if health == domain.CashFlowHealthStrong {
			return fmt.Sprintf("Rabo Bank offers its best pricing to borrowers with strong, stable cash flow; "+
				"projected DSCR of %.2fx fits its low-risk lending appetite.", dscr)
		}
		return fmt.Sprintf("Rabo Bank can support the profile at standard pricing; projected DSCR of %.2fx "+
			"is within its appetite subject to regular monitoring.", dscr)
	}

	if health == domain.CashFlowHealthWeak {
		return fmt.Sprintf("ABN AMRO Bank accepts higher-risk profiles with tighter covenants; projected DSCR "+
			"of %.2fx requires additional security and close monitoring.", dscr)
	}
	return fmt.Sprintf("ABN AMRO Bank provides flexible structuring for moderate-risk borrowers; projected "+
		"DSCR of %.2fx is supported by covenant protection.", dscr)
}
