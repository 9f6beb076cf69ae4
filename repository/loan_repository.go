package repository

import "loan-cashflow/domain"

// LoanCalculation is one logged amortization request.
type LoanCalculation struct {
	Input  domain.LoanInput
	Result domain.LoanResult
}

type LoanRepository interface {
	Save(input domain.LoanInput, result domain.LoanResult) error
	List() []LoanCalculation
}
