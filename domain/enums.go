package domain

// RiskTier is the categorical risk rating assigned to a loan application.
type RiskTier string

const (
	RiskTierLow    RiskTier = "Low"
	RiskTierMedium RiskTier = "Medium"
	RiskTierHigh   RiskTier = "High"
)

// AssetClass identifies the type of asset financed by the loan.
type AssetClass string

const (
	AssetClassResidentialMortgage  AssetClass = "residential_mortgage"
	AssetClassCommercialRealEstate AssetClass = "commercial_real_estate"
	AssetClassAutoLoan             AssetClass = "auto_loan"
	AssetClassEquipmentFinance     AssetClass = "equipment_finance"
	AssetClassSMELoan              AssetClass = "sme_loan"
	AssetClassConsumerLoan         AssetClass = "consumer_loan"
)

// LoanStatus is the lifecycle state of a loan application.
type LoanStatus string

const (
	LoanStatusDraft       LoanStatus = "draft"
	LoanStatusSubmitted   LoanStatus = "submitted"
	LoanStatusUnderReview LoanStatus = "under_review"
	LoanStatusApproved    LoanStatus = "approved"
	LoanStatusFunded      LoanStatus = "funded"
	LoanStatusRejected    LoanStatus = "rejected"
)

type CashFlowHealth string

const (
	CashFlowHealthStrong   CashFlowHealth = "Strong"
	CashFlowHealthModerate CashFlowHealth = "Moderate"
	CashFlowHealthWeak     CashFlowHealth = "Weak"
)

type RepaymentCapacity string

const (
	RepaymentCapacityStrong   RepaymentCapacity = "Strong"
	RepaymentCapacityModerate RepaymentCapacity = "Moderate"
	RepaymentCapacityLimited  RepaymentCapacity = "Limited"
)

// FundingSource names a lender the application can be placed with.
type FundingSource string

const (
	FundingSourceRabobank FundingSource = "Rabo Bank"
	FundingSourceABNAMRO  FundingSource = "ABN AMRO Bank"
)
