package domain

type Borrower struct {
	Name          string  `json:"name,omitempty"`
	IsCompany     bool    `json:"isCompany"`
	AnnualRevenue float64 `json:"annualRevenue,omitempty"`
	Income        float64 `json:"income,omitempty"`
}

// LoanApplicationInput is the read-only input of the cash-flow analysis.
type LoanApplicationInput struct {
	Amount     float64    `json:"amount"`
	Term       int        `json:"term"` // meses
	RiskTier   RiskTier   `json:"riskTier"`
	Borrower   Borrower   `json:"borrower"`
	AssetClass AssetClass `json:"assetClass,omitempty"`
}

// CashFlowHistoricalData holds trailing twelve month figures. Trends are percentages.
type CashFlowHistoricalData struct {
	Revenue                  float64 `json:"revenue"`
	RevenueTrend             float64 `json:"revenueTrend"`
	COGS                     float64 `json:"cogs"`
	COGSTrend                float64 `json:"cogsTrend"`
	OperatingExpenses        float64 `json:"operatingExpenses"`
	OperatingExpensesTrend   float64 `json:"operatingExpensesTrend"`
	OperatingCashFlow        float64 `json:"operatingCashFlow"`
	OperatingCashFlowTrend   float64 `json:"operatingCashFlowTrend"`
	CashConversionCycle      float64 `json:"cashConversionCycle"`
	CashConversionCycleTrend float64 `json:"cashConversionCycleTrend"`
	CapitalExpenditures      float64 `json:"capitalExpenditures"`
	CapitalExpendituresTrend float64 `json:"capitalExpendituresTrend"`
	ExistingDebtService      float64 `json:"existingDebtService"`
	ExistingDebtServiceTrend float64 `json:"existingDebtServiceTrend"`
	DebtServiceCoverageRatio float64 `json:"debtServiceCoverageRatio"`
}

type CashFlowVolatilityMetrics struct {
	RevenueStandardDeviation        float64 `json:"revenueStandardDeviation"`
	RevenueVolatilityInterpretation string  `json:"revenueVolatilityInterpretation"`
	CashBufferMonths                float64 `json:"cashBufferMonths"`
	CashBufferInterpretation        string  `json:"cashBufferInterpretation"`
	PeakToTroughRatio               float64 `json:"peakToTroughRatio"`
	PeakToTroughInterpretation      string  `json:"peakToTroughInterpretation"`
}

type CashFlowProjections struct {
	AnnualRevenue            float64 `json:"annualRevenue"`
	AnnualGrowthRate         float64 `json:"annualGrowthRate"`
	OperatingCashFlow        float64 `json:"operatingCashFlow"`
	FreeCashFlow             float64 `json:"freeCashFlow"`
	DebtServiceCoverageRatio float64 `json:"debtServiceCoverageRatio"`
	LoanPaymentCapacity      float64 `json:"loanPaymentCapacity"`
}

type ImprovementRecommendation struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

// CashFlowAnalysis is derived on demand from a LoanApplicationInput and never stored.
type CashFlowAnalysis struct {
	CashFlowHealth             CashFlowHealth              `json:"cashFlowHealth"`
	RepaymentCapacity          RepaymentCapacity           `json:"repaymentCapacity"`
	Recommendation             string                      `json:"recommendation"`
	HistoricalData             CashFlowHistoricalData      `json:"historicalData"`
	VolatilityMetrics          CashFlowVolatilityMetrics   `json:"volatilityMetrics"`
	Projections                CashFlowProjections         `json:"projections"`
	Strengths                  []string                    `json:"strengths"`
	Concerns                   []string                    `json:"concerns"`
	SeasonalityInsights        []string                    `json:"seasonalityInsights"`
	StressTestingSummary       string                      `json:"stressTestingSummary"`
	RecommendedFundingSource   FundingSource               `json:"recommendedFundingSource"`
	RecommendedInterestRate    float64                     `json:"recommendedInterestRate"`
	RecommendedLoanStructure   string                      `json:"recommendedLoanStructure"`
	FundingRationale           string                      `json:"fundingRationale"`
	RiskFactors                []string                    `json:"riskFactors"`
	MitigationStrategies       []string                    `json:"mitigationStrategies"`
	ImprovementRecommendations []ImprovementRecommendation `json:"improvementRecommendations"`
}
