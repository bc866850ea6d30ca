package finance

import "math"

// SplitAllocation converts a percentage template into concrete rupee amounts
// for the given total. Each class is rounded to the nearest rupee
// independently, then the rounding remainder is assigned to the class with
// the largest percentage so the parts always sum exactly to the total
// (ties broken by class name for determinism).
func SplitAllocation(total int64, percents map[string]int) map[string]int64 {
	amounts := make(map[string]int64, len(percents))
	if len(percents) == 0 {
		return amounts
	}

	var allocated int64
	largest := ""
	for class, pct := range percents {
		amount := int64(math.Round(float64(total) * float64(pct) / 100))
		amounts[class] = amount
		allocated += amount
		if largest == "" || pct > percents[largest] || (pct == percents[largest] && class < largest) {
			largest = class
		}
	}

	amounts[largest] += total - allocated
	return amounts
}
