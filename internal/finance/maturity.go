package finance

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// nearZeroRate is the threshold below which the annuity formula degrades to
// simple accumulation instead of dividing by a vanishing monthly rate.
const nearZeroRate = 1e-9

var (
	percentPattern   = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*%`)
	rangePattern     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:-|–|to)\s*(\d+(?:\.\d+)?)\s*%`)
	overYearsPattern = regexp.MustCompile(`over\s+(\d+(?:\.\d+)?)\s*(?:years?|yrs?)`)
)

var perAnnumKeywords = []string{"p.a", "per annum", "cagr", "annualised", "annualized"}

var cumulativeKeywords = []string{"total", "cumulative", "overall"}

// ParseExpectedReturn extracts an annualized rate (as a decimal, 0.12 for 12%)
// from free-text such as "10-12% p.a." or "60% total over 5 years". A single
// percentage figure is used as-is; a range collapses to its midpoint.
// Cumulative phrasing is converted to an annualized rate over the horizon
// stated in the text, falling back to fallbackYears when none is stated.
// Text with no percentage figure yields 0.
func ParseExpectedReturn(text string, fallbackYears float64) float64 {
	var figures []float64
	// A range like "10-12%" carries the percent sign only on the upper bound,
	// so it is matched before the plain percentage scan.
	if m := rangePattern.FindStringSubmatch(text); m != nil {
		lo, errLo := strconv.ParseFloat(m[1], 64)
		hi, errHi := strconv.ParseFloat(m[2], 64)
		if errLo == nil && errHi == nil {
			figures = []float64{lo, hi}
		}
	}
	if figures == nil {
		for _, m := range percentPattern.FindAllStringSubmatch(text, -1) {
			if v, err := strconv.ParseFloat(m[1], 64); err == nil {
				figures = append(figures, v)
			}
		}
	}
	if len(figures) == 0 {
		return 0
	}

	pct := figures[0]
	if len(figures) > 1 {
		lo, hi := figures[0], figures[0]
		for _, f := range figures[1:] {
			if f < lo {
				lo = f
			}
			if f > hi {
				hi = f
			}
		}
		pct = (lo + hi) / 2
	}
	rate := pct / 100

	lower := strings.ToLower(text)
	for _, kw := range perAnnumKeywords {
		if strings.Contains(lower, kw) {
			return rate
		}
	}
	for _, kw := range cumulativeKeywords {
		if strings.Contains(lower, kw) {
			years := fallbackYears
			if m := overYearsPattern.FindStringSubmatch(lower); m != nil {
				if v, err := strconv.ParseFloat(m[1], 64); err == nil && v > 0 {
					years = v
				}
			}
			if years <= 0 {
				return rate
			}
			return math.Pow(1+rate, 1/years) - 1
		}
	}

	// No qualifying keyword: treat as per-annum.
	return rate
}

// Project computes the maturity value of a monthly SIP stream plus a lumpsum,
// both compounded monthly at the monthly-equivalent of annualRate. The result
// is always fully populated; zero inputs yield zeros, never absent fields.
func Project(monthly, lumpsum int64, years, annualRate float64) Projection {
	if years < 0 {
		years = 0
	}
	n := math.Round(12 * years)

	monthlyRate := math.Pow(1+annualRate, 1.0/12) - 1

	var fvSIP float64
	if math.Abs(monthlyRate) < nearZeroRate {
		fvSIP = float64(monthly) * n
	} else {
		fvSIP = float64(monthly) * (math.Pow(1+monthlyRate, n) - 1) / monthlyRate
	}
	fvLumpsum := float64(lumpsum) * math.Pow(1+monthlyRate, n)

	invested := float64(monthly)*n + float64(lumpsum)
	maturity := fvSIP + fvLumpsum

	return Projection{
		AnnualRate:    annualRate,
		TotalInvested: invested,
		Returns:       maturity - invested,
		MaturityValue: maturity,
	}
}

// Projection is the result of a maturity computation.
type Projection struct {
	AnnualRate    float64 `json:"annual_rate"`
	TotalInvested float64 `json:"total_invested"`
	Returns       float64 `json:"returns"`
	MaturityValue float64 `json:"maturity_value"`
}
