package domain

import "time"

// LoanApplication is a back-office application record served by the fixture provider.
type LoanApplication struct {
	ID          string               `json:"id"`
	Reference   string               `json:"reference"`
	Status      LoanStatus           `json:"status"`
	SubmittedAt time.Time            `json:"submittedAt"`
	Input       LoanApplicationInput `json:"application"`
}
