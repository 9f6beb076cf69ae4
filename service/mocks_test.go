package service

import (
	"context"
	"time"

	"loan-cashflow/domain"
	"loan-cashflow/repository"

	"github.com/stretchr/testify/mock"
)

// fixedSource returns the same draw every time, which makes trend values exact.
type fixedSource float64

func (f fixedSource) Float64() float64 { return float64(f) }

// MockLoanRepository is a mock implementation of repository.LoanRepository
type MockLoanRepository struct {
	mock.Mock
}

func (m *MockLoanRepository) Save(input domain.LoanInput, result domain.LoanResult) error {
	args := m.Called(input, result)
	return args.Error(0)
}

func (m *MockLoanRepository) List() []repository.LoanCalculation {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]repository.LoanCalculation)
}

// MockCacheRepository is a mock implementation of repository.CacheRepository
type MockCacheRepository struct {
	mock.Mock
}

func (m *MockCacheRepository) Get(ctx context.Context, key string) (string, bool) {
	args := m.Called(ctx, key)
	return args.String(0), args.Bool(1)
}

func (m *MockCacheRepository) Set(ctx context.Context, key string, value string, ttl time.Duration) error {
	args := m.Called(ctx, key, value, ttl)
	return args.Error(0)
}
