package validation

import (
	"strings"
	"testing"
)

func TestValidateRecommendationAcceptsWellFormed(t *testing.T) {
	valid := `{
      "Investment Portfolio Recommendation": {
        "Monthly Investment": {
          "Allocation": { "Mutual Funds": 2000, "Bonds": 1000 },
          "Mutual Funds Details": [ { "Fund Name": "Axis Bluechip Fund", "Category": "Large Cap" } ]
        },
        "Lumpsum Investment": {
          "Allocation": { "Bonds": 50000 }
        }
      }
    }`
	if err := ValidateRecommendation(valid); err != nil {
		t.Errorf("valid payload rejected: %v", err)
	}
}

func TestValidateRecommendationRejectsWrongShape(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{"missing top-level key", `{"something": {}}`},
		{"missing monthly track", `{"Investment Portfolio Recommendation": {"Lumpsum Investment": {}}}`},
		{"allocation values not numeric", `{
          "Investment Portfolio Recommendation": {
            "Monthly Investment": { "Allocation": { "Bonds": "lots" } }
          }
        }`},
		{"not json", `not json at all`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := ValidateRecommendation(tt.payload); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestValidateRecommendationErrorNamesField(t *testing.T) {
	err := ValidateRecommendation(`{"x": 1}`)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "Investment Portfolio Recommendation") {
		t.Errorf("error should name the missing field, got %v", err)
	}
}
