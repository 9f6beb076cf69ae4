package repository

import (
	"sort"
	"sync"
	"time"

	"loan-cashflow/domain"

	"github.com/google/uuid"
)

// applicationNamespace keeps fixture ids stable across restarts.
var applicationNamespace = uuid.MustParse("6f1c2b0e-3d52-4c8a-9a57-1f0d7c4e8b21")

// ApplicationID derives the id of an application from its reference.
func ApplicationID(reference string) string {
	return uuid.NewSHA1(applicationNamespace, []byte(reference)).String()
}

// ApplicationRepositoryMemory is an in-memory ApplicationRepository.
type ApplicationRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.LoanApplication
}

// NewApplicationRepositoryMemory stores the given applications, assigning ids to those without one.
func NewApplicationRepositoryMemory(applications ...domain.LoanApplication) *ApplicationRepositoryMemory {
	r := &ApplicationRepositoryMemory{
		data: make(map[string]domain.LoanApplication, len(applications)),
	}
	for _, app := range applications {
		if app.ID == "" {
			app.ID = ApplicationID(app.Reference)
		}
		r.data[app.ID] = app
	}
	return r
}

// List returns the applications ordered by submission date, newest first.
func (r *ApplicationRepositoryMemory) List() []domain.LoanApplication {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.LoanApplication, 0, len(r.data))
	for _, app := range r.data {
		out = append(out, app)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].Reference < out[j].Reference
		}
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out
}

func (r *ApplicationRepositoryMemory) Get(id string) (domain.LoanApplication, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	app, ok := r.data[id]
	if !ok {
		return domain.LoanApplication{}, ErrApplicationNotFound
	}
	return app, nil
}

// SampleApplications is the fixture data set served by the back office, one
// application per risk tier and asset class combination worth demoing.
func SampleApplications() []domain.LoanApplication {
	day := func(d int) time.Time {
		return time.Date(2024, time.March, d, 9, 30, 0, 0, time.UTC)
	}

	return []domain.LoanApplication{
		{
			Reference:   "LA-2024-001",
			Status:      domain.LoanStatusUnderReview,
			SubmittedAt: day(4),
			Input: domain.LoanApplicationInput{
				Amount:     500000,
				Term:       60,
				RiskTier:   domain.RiskTierLow,
				Borrower:   domain.Borrower{Name: "Jan de Vries", Income: 150000},
				AssetClass: domain.AssetClassResidentialMortgage,
			},
		},
		{
			Reference:   "LA-2024-002",
			Status:      domain.LoanStatusSubmitted,
			SubmittedAt: day(6),
			Input: domain.LoanApplicationInput{
				Amount:     2500000,
				Term:       120,
				RiskTier:   domain.RiskTierMedium,
				Borrower:   domain.Borrower{Name: "Brouwer Vastgoed B.V.", IsCompany: true, AnnualRevenue: 4200000},
				AssetClass: domain.AssetClassCommercialRealEstate,
			},
		},
		{
			Reference:   "LA-2024-003",
			Status:      domain.LoanStatusDraft,
			SubmittedAt: day(8),
			Input: domain.LoanApplicationInput{
				Amount:     35000,
				Term:       48,
				RiskTier:   domain.RiskTierHigh,
				Borrower:   domain.Borrower{Name: "Sanne Bakker", Income: 42000},
				AssetClass: domain.AssetClassAutoLoan,
			},
		},
		{
			Reference:   "LA-2024-004",
			Status:      domain.LoanStatusApproved,
			SubmittedAt: day(11),
			Input: domain.LoanApplicationInput{
				Amount:     750000,
				Term:       84,
				RiskTier:   domain.RiskTierMedium,
				Borrower:   domain.Borrower{Name: "Maas Machinebouw B.V.", IsCompany: true},
				AssetClass: domain.AssetClassEquipmentFinance,
			},
		},
		{
			Reference:   "LA-2024-005",
			Status:      domain.LoanStatusFunded,
			SubmittedAt: day(13),
			Input: domain.LoanApplicationInput{
				Amount:     1200000,
				Term:       72,
				RiskTier:   domain.RiskTierLow,
				Borrower:   domain.Borrower{Name: "Visser Logistiek B.V.", IsCompany: true, AnnualRevenue: 6800000},
				AssetClass: domain.AssetClassSMELoan,
			},
		},
		{
			Reference:   "LA-2024-006",
			Status:      domain.LoanStatusRejected,
			SubmittedAt: day(15),
			Input: domain.LoanApplicationInput{
				Amount:     20000,
				Term:       36,
				RiskTier:   domain.RiskTierHigh,
				Borrower:   domain.Borrower{Name: "Tom Jansen"},
				AssetClass: domain.AssetClassConsumerLoan,
			},
		},
	}
}
