package models

import "time"

// Instrument class names as they appear in allocation maps.
const (
	ClassMutualFunds = "Mutual Funds"
	ClassETFs        = "ETFs"
	ClassBonds       = "Bonds"
	ClassSGBs        = "SGBs"
)

// Report is the persisted recommendation artifact for a single bucket type.
// At most one Report exists per type; writes replace the whole document.
type Report struct {
	Type int `bson:"type" json:"type"`

	MonthlyAllocations map[string]float64 `bson:"monthly_allocations" json:"monthly_allocations"`
	LumpsumAllocations map[string]float64 `bson:"lumpsum_allocations" json:"lumpsum_allocations"`

	MonthlyMutualFunds []MutualFundDetail `bson:"monthly_mutual_funds" json:"monthly_mutual_funds"`
	MonthlyETFs        []ETFDetail        `bson:"monthly_etfs" json:"monthly_etfs"`
	MonthlyBonds       []BondDetail       `bson:"monthly_bonds" json:"monthly_bonds"`
	MonthlySGBs        []SGBDetail        `bson:"monthly_sgbs" json:"monthly_sgbs"`

	LumpsumMutualFunds []MutualFundDetail `bson:"lumpsum_mutual_funds" json:"lumpsum_mutual_funds"`
	LumpsumETFs        []ETFDetail        `bson:"lumpsum_etfs" json:"lumpsum_etfs"`
	LumpsumBonds       []BondDetail       `bson:"lumpsum_bonds" json:"lumpsum_bonds"`
	LumpsumSGBs        []SGBDetail        `bson:"lumpsum_sgbs" json:"lumpsum_sgbs"`

	GeneratedAt time.Time `bson:"generated_at" json:"generated_at"`
}

// EmptyReport returns a fully populated Report with all list fields empty.
// Used as the degenerate result when extraction has nothing to work with.
func EmptyReport(reportType int) Report {
	return Report{
		Type:               reportType,
		MonthlyAllocations: map[string]float64{},
		LumpsumAllocations: map[string]float64{},
		MonthlyMutualFunds: []MutualFundDetail{},
		MonthlyETFs:        []ETFDetail{},
		MonthlyBonds:       []BondDetail{},
		MonthlySGBs:        []SGBDetail{},
		LumpsumMutualFunds: []MutualFundDetail{},
		LumpsumETFs:        []ETFDetail{},
		LumpsumBonds:       []BondDetail{},
		LumpsumSGBs:        []SGBDetail{},
	}
}

// MutualFundDetail is one recommended mutual fund entry.
type MutualFundDetail struct {
	FundName       string                 `bson:"fund_name" json:"fund_name"`
	Category       string                 `bson:"category" json:"category"`
	FiveYearReturn float64                `bson:"five_year_return" json:"five_year_return"`
	ExpenseRatio   float64                `bson:"expense_ratio" json:"expense_ratio"`
	KeyMetrics     map[string]interface{} `bson:"key_metrics,omitempty" json:"key_metrics,omitempty"`
}

// ETFDetail is one recommended exchange-traded fund entry.
type ETFDetail struct {
	ETFName        string                 `bson:"etf_name" json:"etf_name"`
	Category       string                 `bson:"category" json:"category"`
	FiveYearReturn float64                `bson:"five_year_return" json:"five_year_return"`
	ExpenseRatio   float64                `bson:"expense_ratio" json:"expense_ratio"`
	KeyMetrics     map[string]interface{} `bson:"key_metrics,omitempty" json:"key_metrics,omitempty"`
}

// BondDetail is one recommended bond entry.
type BondDetail struct {
	BondName        string                 `bson:"bond_name" json:"bond_name"`
	YTM             float64                `bson:"ytm" json:"ytm"`
	CouponRate      float64                `bson:"coupon_rate" json:"coupon_rate"`
	MaturityDate    string                 `bson:"maturity_date" json:"maturity_date"`
	LastTradedPrice float64                `bson:"last_traded_price" json:"last_traded_price"`
	KeyMetrics      map[string]interface{} `bson:"key_metrics,omitempty" json:"key_metrics,omitempty"`
}

// SGBDetail is one recommended sovereign gold bond entry.
type SGBDetail struct {
	BondName        string  `bson:"bond_name" json:"bond_name"`
	LastTradedPrice float64 `bson:"last_traded_price" json:"last_traded_price"`
	InterestRate    float64 `bson:"interest_rate" json:"interest_rate"`
	MaturityDate    string  `bson:"maturity_date" json:"maturity_date"`
	ExpectedReturns float64 `bson:"expected_returns" json:"expected_returns"`
}

// MutualFund is a standalone fund-metrics document maintained by the data
// entry endpoints, independent of any generated report.
type MutualFund struct {
	Name    string      `bson:"name" json:"name"`
	Metrics FundMetrics `bson:"metrics" json:"metrics"`
	Returns FundReturns `bson:"returns" json:"returns"`
}

// MetricPair holds a metric for the investment alongside its category average.
type MetricPair struct {
	Investment float64 `bson:"investment" json:"investment"`
	Category   float64 `bson:"category" json:"category"`
}

// FundMetrics holds the risk/cost metrics tracked per fund.
type FundMetrics struct {
	Alpha             MetricPair `bson:"alpha" json:"alpha"`
	Beta              float64    `bson:"beta" json:"beta"`
	StandardDeviation MetricPair `bson:"standard_deviation" json:"standard_deviation"`
	SharpeRatio       MetricPair `bson:"sharpe_ratio" json:"sharpe_ratio"`
	MaximumDrawdown   float64    `bson:"maximum_drawdown" json:"maximum_drawdown"`
	ExpenseRatio      float64    `bson:"expense_ratio" json:"expense_ratio"`
}

// FundReturns holds trailing returns per window.
type FundReturns struct {
	OneYear   MetricPair `bson:"1y" json:"1y"`
	ThreeYear MetricPair `bson:"3y" json:"3y"`
	FiveYear  MetricPair `bson:"5y" json:"5y"`
}
