package finance

import "testing"

func sum(amounts map[string]int64) int64 {
	var total int64
	for _, v := range amounts {
		total += v
	}
	return total
}

func TestSplitAllocationSumsExactly(t *testing.T) {
	percents := map[string]int{
		"Mutual Funds": 40,
		"ETFs":         20,
		"Bonds":        30,
		"SGBs":         10,
	}

	// Rounding drift must always be absorbed so the parts equal the whole.
	totals := []int64{0, 1, 3, 99, 100, 101, 2000, 5000, 9999, 123457}
	for _, total := range totals {
		amounts := SplitAllocation(total, percents)
		if got := sum(amounts); got != total {
			t.Errorf("SplitAllocation(%d) amounts sum to %d", total, got)
		}
	}
}

func TestSplitAllocationRemainderGoesToLargestShare(t *testing.T) {
	// 33/33/34 over 100: exact, no remainder shifting.
	percents := map[string]int{"A": 33, "B": 33, "C": 34}
	amounts := SplitAllocation(100, percents)
	if amounts["A"] != 33 || amounts["B"] != 33 || amounts["C"] != 34 {
		t.Errorf("unexpected split: %v", amounts)
	}

	// Over 10 each class rounds to 3/3/3; the missing rupee lands on C.
	amounts = SplitAllocation(10, percents)
	if amounts["C"] != 4 {
		t.Errorf("remainder should go to largest share, got %v", amounts)
	}
	if got := sum(amounts); got != 10 {
		t.Errorf("amounts sum to %d, want 10", got)
	}
}

func TestSplitAllocationZeroAndEmpty(t *testing.T) {
	if amounts := SplitAllocation(1000, nil); len(amounts) != 0 {
		t.Errorf("empty template should produce no amounts, got %v", amounts)
	}

	percents := map[string]int{"Bonds": 60, "SGBs": 40}
	amounts := SplitAllocation(0, percents)
	if amounts["Bonds"] != 0 || amounts["SGBs"] != 0 {
		t.Errorf("zero total should produce zero amounts, got %v", amounts)
	}
}

func TestSplitAllocationTieBreaksDeterministically(t *testing.T) {
	// 50.5 rounds up for both classes, so one rupee has to come back out.
	// Equal shares tie-break by name: the correction always lands on A.
	percents := map[string]int{"B": 50, "A": 50}
	for i := 0; i < 50; i++ {
		amounts := SplitAllocation(101, percents)
		if amounts["A"] != 50 || amounts["B"] != 51 {
			t.Fatalf("tie break not deterministic: %v", amounts)
		}
	}
}
