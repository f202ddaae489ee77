package economy

// Construction
const (
	// BaseConstructionPoints is generated every turn regardless of industry
	BaseConstructionPoints = 5.0

	// CPPerICPoint converts focused industrial capacity into construction points
	CPPerICPoint = 0.1

	// InfrastructureFocusModifier is the share of IC put to construction under Infrastructure_Focus
	InfrastructureFocusModifier = 0.8

	// BalancedFocusModifier applies to Balanced and any unrecognized policy
	BalancedFocusModifier = 0.5
)

// Civilian economy
const (
	BaseGDPGrowth           = 0.01
	GrowthPerInfrastructure = 0.005

	HighOpinionThreshold = 75.0
	LowOpinionThreshold  = 25.0
	HighOpinionGrowth    = 0.01
	LowOpinionGrowth     = -0.02
	NeutralOpinionGrowth = 0.005

	// OpinionDriftRate is the fraction of the gap to target closed each turn
	OpinionDriftRate = 0.20
)

// Treasury and reinvestment
const (
	// GovernmentProfitShare of government-owned profit flows to the treasury
	GovernmentProfitShare = 0.8

	// BasePrivateICCost is the undiscounted price of one unit of private IC
	BasePrivateICCost = 10.0

	// MaxIndustryTaxRate bounds the per-industry tax break policy
	MaxIndustryTaxRate = 0.20
)

// CrisisAwarenessPerIC is the crisis awareness gained per unit of IC each turn
const CrisisAwarenessPerIC = 0.1
