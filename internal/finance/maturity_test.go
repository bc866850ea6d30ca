package finance

import (
	"math"
	"testing"
)

func TestParseExpectedReturn(t *testing.T) {
	tests := []struct {
		name          string
		text          string
		fallbackYears float64
		want          float64
	}{
		{"single per-annum figure", "12% p.a.", 5, 0.12},
		{"per annum spelled out", "10% per annum", 5, 0.10},
		{"cagr keyword", "expected 14% CAGR", 5, 0.14},
		{"annualised keyword", "~12% annualised", 5, 0.12},
		{"range collapses to midpoint", "10-12% p.a.", 5, 0.11},
		{"range with both percent signs", "expected 10% to 12% per annum", 5, 0.11},
		{"no keyword treated as per-annum", "around 8%", 5, 0.08},
		{"no figure yields zero", "steady growth", 5, 0},
		{"empty text yields zero", "", 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseExpectedReturn(tt.text, tt.fallbackYears)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("ParseExpectedReturn(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestParseExpectedReturnCumulative(t *testing.T) {
	// 60% total over 5 years annualizes to (1.6)^(1/5) - 1.
	want := math.Pow(1.6, 1.0/5) - 1
	got := ParseExpectedReturn("60% total over 5 years", 10)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("cumulative with stated horizon = %v, want %v", got, want)
	}

	// Horizon missing from text: fall back to the caller's horizon.
	want = math.Pow(1.3, 1.0/3) - 1
	got = ParseExpectedReturn("30% cumulative", 3)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("cumulative with fallback horizon = %v, want %v", got, want)
	}
}

func TestProjectZeroRateDegeneratesToSimpleSum(t *testing.T) {
	proj := Project(5000, 0, 10, 0)

	wantInvested := float64(5000 * 12 * 10)
	if proj.MaturityValue != wantInvested {
		t.Errorf("zero-rate maturity = %v, want %v", proj.MaturityValue, wantInvested)
	}
	if proj.TotalInvested != wantInvested {
		t.Errorf("zero-rate invested = %v, want %v", proj.TotalInvested, wantInvested)
	}
	if proj.Returns != 0 {
		t.Errorf("zero-rate returns = %v, want 0", proj.Returns)
	}
}

func TestProjectZeroInputs(t *testing.T) {
	proj := Project(0, 0, 5, 0.12)
	if proj.MaturityValue != 0 || proj.Returns != 0 || proj.TotalInvested != 0 {
		t.Errorf("zero inputs should yield zeros, got %+v", proj)
	}
}

func TestProjectMonthlyCompounding(t *testing.T) {
	// Lumpsum only: FV = principal * (1+monthlyRate)^(12*years), which for a
	// monthly rate derived from the annual rate equals principal*(1+r)^years.
	proj := Project(0, 100000, 5, 0.10)
	want := 100000 * math.Pow(1.10, 5)
	if math.Abs(proj.MaturityValue-want) > 1 {
		t.Errorf("lumpsum maturity = %v, want ~%v", proj.MaturityValue, want)
	}
	if proj.TotalInvested != 100000 {
		t.Errorf("invested = %v, want 100000", proj.TotalInvested)
	}
	if math.Abs(proj.Returns-(want-100000)) > 1 {
		t.Errorf("returns = %v, want ~%v", proj.Returns, want-100000)
	}
}

func TestProjectSIPGrowsWithRate(t *testing.T) {
	flat := Project(2000, 0, 5, 0)
	grown := Project(2000, 0, 5, 0.12)
	if grown.MaturityValue <= flat.MaturityValue {
		t.Errorf("positive rate should grow maturity: %v <= %v",
			grown.MaturityValue, flat.MaturityValue)
	}
	if grown.TotalInvested != flat.TotalInvested {
		t.Errorf("invested should not depend on rate: %v vs %v",
			grown.TotalInvested, flat.TotalInvested)
	}
}

func TestProjectNegativeYearsClamped(t *testing.T) {
	proj := Project(2000, 5000, -1, 0.10)
	if proj.MaturityValue != 5000 {
		t.Errorf("negative years should clamp to n=0; maturity = %v, want 5000", proj.MaturityValue)
	}
}
