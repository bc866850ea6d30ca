package models

import "fmt"

// SelectedOption mirrors the dropdown payload shape the frontend submits
// for objective and risk fields.
type SelectedOption struct {
	CurrentKey string `json:"currentKey"`
}

// RawProfile is the client-submitted profile with nested/optional fields.
type RawProfile struct {
	Objective         *SelectedOption `json:"objective"`
	Risk              *SelectedOption `json:"risk"`
	YearsToAchieve    *float64        `json:"yearsToAchieve"`
	MonthlyInvestment *int64          `json:"monthlyInvestment"`
	LumpsumInvestment *int64          `json:"lumpsumInvestment"`
	Age               int             `json:"age"`
}

// Profile is the canonical, flattened parameter set consumed by the
// recommendation generator and the bucket resolver.
type Profile struct {
	Objective         string  `json:"objective"`
	Risk              string  `json:"risk"`
	HorizonYears      float64 `json:"investment_horizon"`
	MonthlyInvestment int64   `json:"monthly_investment"`
	LumpsumInvestment int64   `json:"lumpsum_investment"`
	Age               int     `json:"age"`

	// Per-instrument seed amounts fed into the generator prompt.
	Seeds InstrumentSeeds `json:"seeds"`
}

// InstrumentSeeds carries the per-instrument-class amounts the generator
// prompt contract expects, split separately for the monthly and lumpsum tracks.
type InstrumentSeeds struct {
	MutualFund        int64 `json:"mutual_fund"`
	MutualFundLumpsum int64 `json:"mutual_fund_lumpsum"`
	ETF               int64 `json:"etf"`
	ETFLumpsum        int64 `json:"etf_lumpsum"`
	Bond              int64 `json:"bond"`
	BondLumpsum       int64 `json:"bond_lumpsum"`
	SGB               int64 `json:"sgb"`
	SGBLumpsum        int64 `json:"sgb_lumpsum"`
}

// NormalizeProfile maps a raw client payload into the canonical Profile.
// yearsToAchieve and monthlyInvestment are contractually required; a missing
// or malformed value fails the request rather than silently defaulting.
func NormalizeProfile(raw RawProfile) (Profile, error) {
	if raw.YearsToAchieve == nil {
		return Profile{}, fmt.Errorf("yearsToAchieve is required")
	}
	if *raw.YearsToAchieve <= 0 {
		return Profile{}, fmt.Errorf("yearsToAchieve must be positive, got %v", *raw.YearsToAchieve)
	}
	if raw.MonthlyInvestment == nil {
		return Profile{}, fmt.Errorf("monthlyInvestment is required")
	}
	if *raw.MonthlyInvestment < 0 {
		return Profile{}, fmt.Errorf("monthlyInvestment must not be negative, got %d", *raw.MonthlyInvestment)
	}

	profile := Profile{
		Risk:              "Moderate",
		HorizonYears:      *raw.YearsToAchieve,
		MonthlyInvestment: *raw.MonthlyInvestment,
		Age:               raw.Age,
	}
	if raw.Objective != nil {
		profile.Objective = raw.Objective.CurrentKey
	}
	if raw.Risk != nil && raw.Risk.CurrentKey != "" {
		profile.Risk = raw.Risk.CurrentKey
	}
	if raw.LumpsumInvestment != nil {
		if *raw.LumpsumInvestment < 0 {
			return Profile{}, fmt.Errorf("lumpsumInvestment must not be negative, got %d", *raw.LumpsumInvestment)
		}
		profile.LumpsumInvestment = *raw.LumpsumInvestment
	}

	return profile, nil
}
