package repository

import (
	"errors"

	"loan-cashflow/domain"
)

var ErrApplicationNotFound = errors.New("application not found")

// ApplicationRepository supplies the loan applications the back office works on.
type ApplicationRepository interface {
	List() []domain.LoanApplication
	Get(id string) (domain.LoanApplication, error)
}
