package service

const (
	MaxLoanAmount   = 1_000_000_000.0 // 1 billón
	MaxInterestRate = 1000.0          // 1000% anual
	MaxTermMonths   = 600             // 50 años
	MinTermMonths   = 1

	// Tasa anual fija usada para estimar la cuota del nuevo préstamo en las proyecciones
	ProjectionAnnualRate = 5.5

	// Umbrales de riskFactor compartidos por todas las interpretaciones
	StrongRiskThreshold   = 0.7
	ModerateRiskThreshold = 0.4

	// Selección de fuente de fondos
	FundingRiskThreshold     = 0.6
	RabobankInterestRate     = 5.25
	ABNAMROInterestRate      = 6.5
	LargeLoanAmountThreshold = 1_000_000.0

	MaxStrengths       = 4
	MinStrengths       = 3
	MaxConcerns        = 3
	MaxStrongConcerns  = 1
	MinConcerns        = 2
	MinImprovements    = 3
	MaxImprovements    = 4
	MinDebtDenominator = 1.0
)
