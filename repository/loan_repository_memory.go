package repository

import (
	"sync"

	"loan-cashflow/domain"
)

// LoanRepositoryMemory is an in-memory implementation of LoanRepository.
type LoanRepositoryMemory struct {
	mu   sync.RWMutex
	data []LoanCalculation
}

// NewLoanRepositoryMemory creates a new in-memory loan repository.
func NewLoanRepositoryMemory() *LoanRepositoryMemory {
	return &LoanRepositoryMemory{
		data: []LoanCalculation{},
	}
}

// Save stores the loan calculation in memory.
func (r *LoanRepositoryMemory) Save(
	input domain.LoanInput,
	result domain.LoanResult,
) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.data = append(r.data, LoanCalculation{Input: input, Result: result})
	return nil
}

// List returns a copy of the stored calculations in insertion order.
func (r *LoanRepositoryMemory) List() []LoanCalculation {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]LoanCalculation, len(r.data))
	copy(out, r.data)
	return out
}
