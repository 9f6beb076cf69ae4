package service

import "loan-cashflow/domain"

var genericSeasonality = []string{
	"Revenue typically softens in the summer holiday period and recovers in the fourth quarter",
	"Working capital needs peak ahead of year-end as receivables build up",
}

var assetClassSeasonality = map[domain.AssetClass][]string{
	domain.AssetClassResidentialMortgage: {
		"Household income is stable through the year with a bonus-driven uplift in December",
		"Property-related expenses cluster around annual tax and insurance renewals",
	},
	domain.AssetClassCommercialRealEstate: {
		"Rental income is received quarterly in advance, creating intra-quarter cash peaks",
		"Vacancy risk rises around lease expiry dates concentrated in the first quarter",
	},
	domain.AssetClassAutoLoan: {
		"Vehicle-related costs rise in winter with maintenance and tyre changes",
		"Income for self-employed borrowers dips during the summer holiday period",
	},
	domain.AssetClassEquipmentFinance: {
		"Equipment utilisation and related revenue peak in spring and early autumn",
		"Maintenance shutdowns in August temporarily reduce operating cash flow",
	},
}

var defaultSeasonality = []string{
	"No pronounced asset-specific seasonality identified in the review period",
	"Quarterly results should be monitored for emerging seasonal patterns",
}

// GenerateSeasonalityInsights returns the generic insights plus two for the asset class.
func GenerateSeasonalityInsights(assetClass domain.AssetClass) []string {
	specific, ok := assetClassSeasonality[assetClass]
	if !ok {
		specific = defaultSeasonality
	}

	insights := append([]string{}, genericSeasonality...)
	return append(insights, specific...)
}
