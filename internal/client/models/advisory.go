package models

// RiskLevel buckets a computed risk score.
type RiskLevel string

const (
	RiskConservative RiskLevel = "CONSERVATIVE"
	RiskModerate     RiskLevel = "MODERATE"
	RiskAggressive   RiskLevel = "AGGRESSIVE"
)

// RiskProfileRequest is the assembled questionnaire posted to
// /api/onboarding/risk-profile. Sections map to wizard steps.
type RiskProfileRequest struct {
	Demographics DemographicsData `json:"demographics"`
	Financials   FinancialsData   `json:"financials"`
	Behavioral   BehavioralData   `json:"behavioral"`
	Goals        GoalsData        `json:"goals"`
	Preferences  *PreferencesData `json:"preferences,omitempty"`
}

type DemographicsData struct {
	Age         int    `json:"age"`
	IncomeRange string `json:"incomeRange"`
	Dependents  int    `json:"dependents"`
}

type FinancialsData struct {
	EmergencyFundMonths     int     `json:"emergencyFundMonths"`
	ExistingEmiForLoans     float64 `json:"existingEmiForLoans"`
	FinancialKnowledge      string  `json:"financialKnowledge"`
	MonthlyInvestmentAmount float64 `json:"monthlyInvestmentAmount"`
}

type BehavioralData struct {
	MarketDropReaction         string `json:"marketDropReaction"`
	InvestmentPeriodExperience string `json:"investmentPeriodExperience"`
}

type GoalsData struct {
	PrimaryGoal      string  `json:"primaryGoal"`
	TimeHorizonYears int     `json:"timeHorizonYears"`
	TargetAmount     float64 `json:"targetAmount"`
}

type PreferencesData struct {
	PreferredInvestmentStyle string `json:"preferredInvestmentStyle"`
	TaxSavingNeeded          bool   `json:"taxSavingNeeded"`
}

// RiskProfile is the backend's scored assessment.
type RiskProfile struct {
	Score     float64   `json:"score"`
	Level     RiskLevel `json:"level"`
	Rationale string    `json:"rationale"`
}

type AssetAllocation struct {
	Equity float64 `json:"equity"`
	Debt   float64 `json:"debt"`
	Gold   float64 `json:"gold"`
}

// RiskProfileResponse is the canonical shape of the risk-profile result.
// The backend wraps it in varying envelopes; see DecodeRiskProfileResponse.
type RiskProfileResponse struct {
	RiskProfile     RiskProfile             `json:"riskProfile"`
	AssetAllocation AssetAllocation         `json:"assetAllocation"`
	Recommendations []RecommendedAllocation `json:"recommendations"`
	PortfolioHealth *PortfolioHealth        `json:"portfolioHealth,omitempty"`
}

type RecommendedAllocation struct {
	AllocationCategory string            `json:"allocationCategory"`
	AllocationPercent  float64           `json:"allocationPercent"`
	Amount             float64           `json:"amount"`
	Funds              []RecommendedFund `json:"funds"`
}

type RecommendedFund struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Category         string             `json:"category"`
	RiskMetrics      RiskMetrics        `json:"riskMetrics"`
	SectorAllocation map[string]float64 `json:"sectorAllocation"`
	Reason           string             `json:"reason,omitempty"`
}

type RiskMetrics struct {
	Alpha             float64 `json:"alpha"`
	Beta              float64 `json:"beta"`
	SharpeRatio       float64 `json:"sharpeRatio"`
	StandardDeviation float64 `json:"standardDeviation"`
	RSquared          float64 `json:"rsquared"`
}

// PortfolioHealth is the backend's diversification analysis of a portfolio.
type PortfolioHealth struct {
	SectorConcentration       string             `json:"sectorConcentration"`
	OverlapStatus             string             `json:"overlapStatus"`
	DiversificationScore      float64            `json:"diversificationScore"`
	TopOverlappingStocks      []StockOverview    `json:"topOverlappingStocks"`
	FundSimilarities          []FundSimilarity   `json:"fundSimilarities"`
	WealthProjection          WealthProjection   `json:"wealthProjection"`
	AggregateSectorAllocation map[string]float64 `json:"aggregateSectorAllocation"`
	SectorOverlaps            []SectorOverlap    `json:"sectorOverlaps,omitempty"`
}

type StockOverview struct {
	StockName   string   `json:"stockName"`
	ISIN        string   `json:"isin"`
	TotalWeight float64  `json:"totalWeight"`
	FundCount   int      `json:"fundCount"`
	FundNames   []string `json:"fundNames"`
}

type FundSimilarity struct {
	FundA             string  `json:"fundA"`
	FundB             string  `json:"fundB"`
	StockOverlapPct   float64 `json:"stockOverlapPct"`
	SectorCorrelation float64 `json:"sectorCorrelation"`
}

type SectorOverlap struct {
	SectorName        string             `json:"sectorName"`
	TotalAllocation   float64            `json:"totalAllocation"`
	FundContributions []FundContribution `json:"fundContributions"`
}

type FundContribution struct {
	FundName     string  `json:"fundName"`
	Contribution float64 `json:"contribution"`
}

type WealthProjection struct {
	ProjectedYears            int              `json:"projectedYears"`
	TotalInvestment           float64          `json:"totalInvestment"`
	LikelyScenarioAmount      float64          `json:"likelyScenarioAmount"`
	PessimisticScenarioAmount float64          `json:"pessimisticScenarioAmount"`
	OptimisticScenarioAmount  float64          `json:"optimisticScenarioAmount"`
	Timeline                  []YearProjection `json:"timeline"`
}

type YearProjection struct {
	Year              int     `json:"year"`
	OptimisticAmount  float64 `json:"optimisticAmount"`
	ExpectedAmount    float64 `json:"expectedAmount"`
	PessimisticAmount float64 `json:"pessimisticAmount"`
}

// ManualSelectionRequest carries a hand-picked portfolio for diagnosis.
type ManualSelectionRequest struct {
	Selections []ManualSelectionItem `json:"selections"`
}

// ManualSelectionItem names a fund either by id or by name (exactly one of
// the two) with its portfolio weight in percent.
type ManualSelectionItem struct {
	FundID    string  `json:"fundId,omitempty"`
	FundName  string  `json:"fundName,omitempty"`
	WeightPct float64 `json:"weightPct"`
}

type ManualSelectionResponse struct {
	Results   []ManualSelectionResult  `json:"results"`
	Portfolio ManualSelectionPortfolio `json:"portfolio"`
	Analysis  *PortfolioHealth         `json:"analysis,omitempty"`
}

type ManualSelectionResult struct {
	InputFundID   string `json:"inputFundId,omitempty"`
	InputFundName string `json:"inputFundName,omitempty"`
	Status        string `json:"status"`
	FundID        string `json:"fundId"`
	FundName      string `json:"fundName"`
	ISIN          string `json:"isin"`
	Message       string `json:"message"`
}

type ManualSelectionPortfolio struct {
	Summary  PortfolioSummary         `json:"summary"`
	Holdings []ManualSelectionHolding `json:"holdings"`
}

type PortfolioSummary struct {
	TotalHoldings  int     `json:"totalHoldings"`
	TotalWeightPct float64 `json:"totalWeightPct"`
}

type ManualSelectionHolding struct {
	FundID           string             `json:"fundId"`
	FundName         string             `json:"fundName"`
	ISIN             string             `json:"isin"`
	AmcName          string             `json:"amcName"`
	FundCategory     string             `json:"fundCategory"`
	DirectPlan       bool               `json:"directPlan"`
	CurrentNav       float64            `json:"currentNav"`
	NavAsOf          string             `json:"navAsOf"`
	WeightPct        float64            `json:"weightPct"`
	SectorAllocation map[string]float64 `json:"sectorAllocation,omitempty"`
}
