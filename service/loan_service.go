package service

import (
	"errors"
	"fmt"
	"math"

	"loan-cashflow/domain"
	"loan-cashflow/repository"

	log "github.com/sirupsen/logrus"
)

type LoanService struct {
	repo repository.LoanRepository
}

// NewLoanService creates a new LoanService with the given repository.
func NewLoanService(repo repository.LoanRepository) *LoanService {
	return &LoanService{repo: repo}
}

// MonthlyPayment returns the unrounded fixed-rate amortized payment.
// annualRate is a percentage; a zero rate spreads the principal evenly.
func MonthlyPayment(principal, annualRate float64, termMonths int) float64 {
	if termMonths <= 0 {
		return 0
	}
	n := float64(termMonths)
	if annualRate == 0 {
		return principal / n
	}

	r := (annualRate / 100) / 12
	return principal * r / (1 - math.Pow(1+r, -n))
}

// CalculateLoan calculates the loan details based on the input parameters.
func (s *LoanService) CalculateLoan(
	input domain.LoanInput,
) (domain.LoanResult, error) {

	// Validar entrada
	if input.Amount <= 0 {
		return domain.LoanResult{}, errors.New("monto inválido")
	}
	if input.Amount > MaxLoanAmount {
		return domain.LoanResult{}, fmt.Errorf("monto excede el máximo permitido de $%.2f", MaxLoanAmount)
	}
	if input.InterestRate < 0 {
		return domain.LoanResult{}, errors.New("tasa inválida")
	}
	if input.InterestRate > MaxInterestRate {
		return domain.LoanResult{}, fmt.Errorf("tasa de interés excede el máximo permitido de %.2f%%", MaxInterestRate)
	}
	if input.TermMonths < MinTermMonths {
		return domain.LoanResult{}, errors.New("plazo inválido")
	}
	if input.TermMonths > MaxTermMonths {
		return domain.LoanResult{}, fmt.Errorf("plazo excede el máximo permitido de %d meses", MaxTermMonths)
	}

	payment := MonthlyPayment(input.Amount, input.InterestRate, input.TermMonths)
	total := payment * float64(input.TermMonths)

	result := domain.LoanResult{
		MonthlyPayment: roundTo2Decimals(payment),
		TotalPayment:   roundTo2Decimals(total),
		TotalInterest:  roundTo2Decimals(total - input.Amount),
	}

	// Guardar el resultado (no crítico si falla)
	if err := s.repo.Save(input, result); err != nil {
		log.WithError(err).Warn("failed to save loan calculation")
	}

	return result, nil
}
