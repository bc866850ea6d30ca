package models

import (
	"time"

	"moneyfi-advisor/internal/finance"
)

// StrategyTemplate is a precomputed set of allocation strategies for one
// bucket type, stored independent of any user's absolute amounts.
type StrategyTemplate struct {
	Type       int        `bson:"type" json:"type"`
	Strategies []Strategy `bson:"strategies" json:"strategies"`
	CreatedAt  time.Time  `bson:"created_at" json:"created_at"`
}

// Strategy is one named allocation strategy within a template.
type Strategy struct {
	Name           string             `bson:"name" json:"name"`
	Description    string             `bson:"description" json:"description"`
	RiskLevel      string             `bson:"riskLevel" json:"riskLevel"`
	ExpectedReturn string             `bson:"expectedReturn" json:"expectedReturn"`
	Allocation     StrategyAllocation `bson:"allocation" json:"allocation"`
}

// StrategyAllocation holds integer percentage maps over instrument classes.
// Each map is expected to sum to 100, enforced at generation time only.
type StrategyAllocation struct {
	Monthly map[string]int `bson:"monthly" json:"monthly"`
	Lumpsum map[string]int `bson:"lumpsum" json:"lumpsum"`
}

// StrategyView is a Strategy annotated with the rupee allocations and
// maturity projection computed for a specific user's amounts and horizon.
type StrategyView struct {
	Strategy
	MonthlyAmounts map[string]int64   `json:"monthly_amounts"`
	LumpsumAmounts map[string]int64   `json:"lumpsum_amounts"`
	Projection     finance.Projection `json:"projection"`
}
