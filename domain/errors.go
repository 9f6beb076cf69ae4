package domain

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is wrapped by every input validation error of the analysis.
var ErrInvalidInput = errors.New("invalid loan application input")

// InvalidRiskTierError is returned when the risk tier is not Low, Medium or High.
type InvalidRiskTierError struct {
	Tier RiskTier
}

func (e *InvalidRiskTierError) Error() string {
	return fmt.Sprintf("invalid risk tier %q: must be one of Low, Medium, High", string(e.Tier))
}

func (e *InvalidRiskTierError) Unwrap() error { return ErrInvalidInput }

// InvalidAmountError is returned when the amount or the term is not positive.
type InvalidAmountError struct {
	Amount float64
	Term   int
}

func (e *InvalidAmountError) Error() string {
	return fmt.Sprintf("invalid amount %.2f or term %d: both must be positive", e.Amount, e.Term)
}

func (e *InvalidAmountError) Unwrap() error { return ErrInvalidInput }
