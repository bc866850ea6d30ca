// Package finance holds the pure computation core: category bucket
// resolution, percentage-to-rupee allocation splits, and maturity
// projections for SIP and lumpsum investment streams.
package finance

// Bucket threshold constants. These are the single source of truth for the
// tier boundaries; the historical 10500 monthly cutoff was dropped in favour
// of 10000.
const (
	MonthlyTierMid  int64 = 500
	MonthlyTierHigh int64 = 10000

	HorizonTierMidYears  float64 = 3
	HorizonTierHighYears float64 = 6

	LumpsumTierHigh int64 = 100000
)

// ResolveBucket maps a user's numeric profile to the integer bucket key used
// to select strategy templates and reports. The tens place combines the
// horizon tier with the monthly-amount tier; the units place is the lumpsum
// tier (0 none, 1 mid, 2 high). Boundary values resolve to the upper tier.
func ResolveBucket(monthly, lumpsum int64, horizonYears float64) int {
	monthlyTier := 1
	switch {
	case monthly >= MonthlyTierHigh:
		monthlyTier = 3
	case monthly >= MonthlyTierMid:
		monthlyTier = 2
	}

	horizonTier := 0
	switch {
	case horizonYears >= HorizonTierHighYears:
		horizonTier = 2
	case horizonYears >= HorizonTierMidYears:
		horizonTier = 1
	}

	lumpsumTier := 0
	switch {
	case lumpsum > LumpsumTierHigh:
		lumpsumTier = 2
	case lumpsum > 0:
		lumpsumTier = 1
	}

	return (horizonTier*3+monthlyTier)*10 + lumpsumTier
}
