package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moneyfi-advisor/internal/finance"
	"moneyfi-advisor/internal/models"
)

// StrategyStore is the persistence boundary for strategy templates.
type StrategyStore interface {
	InsertStrategy(ctx context.Context, template models.StrategyTemplate) error
	GetStrategiesByType(ctx context.Context, bucketType int) ([]models.StrategyTemplate, error)
	ReplaceStrategies(ctx context.Context, template models.StrategyTemplate) error
}

// StrategyService answers "what would this strategy look like for my
// numbers": it resolves the caller's bucket, loads the stored templates and
// annotates every strategy with concrete rupee splits and a maturity
// projection.
type StrategyService struct {
	store      StrategyStore
	strategist StrategistGenerator
}

// NewStrategyService creates a strategy service. The strategist generator
// may be nil when template regeneration is not needed (e.g. in tests).
func NewStrategyService(store StrategyStore, strategist StrategistGenerator) *StrategyService {
	return &StrategyService{store: store, strategist: strategist}
}

// GetStrategies resolves the bucket for the request, concatenates the
// strategies of every stored template for that bucket, and computes rupee
// allocations and maturity projections against the caller's actual amounts.
func (s *StrategyService) GetStrategies(ctx context.Context, req models.StrategyRequest) (models.StrategyResponse, error) {
	bucket := finance.ResolveBucket(req.MonthlyInvestment, req.LumpsumInvestment, req.YearsToAchieve)

	templates, err := s.store.GetStrategiesByType(ctx, bucket)
	if err != nil {
		return models.StrategyResponse{}, err
	}

	views := []models.StrategyView{}
	for _, template := range templates {
		for _, strategy := range template.Strategies {
			rate := finance.ParseExpectedReturn(strategy.ExpectedReturn, req.YearsToAchieve)
			views = append(views, models.StrategyView{
				Strategy:       strategy,
				MonthlyAmounts: finance.SplitAllocation(req.MonthlyInvestment, strategy.Allocation.Monthly),
				LumpsumAmounts: finance.SplitAllocation(req.LumpsumInvestment, strategy.Allocation.Lumpsum),
				Projection:     finance.Project(req.MonthlyInvestment, req.LumpsumInvestment, req.YearsToAchieve, rate),
			})
		}
	}

	return models.StrategyResponse{Type: bucket, Strategies: views}, nil
}

// AddStrategy inserts a raw strategy template document as-is.
func (s *StrategyService) AddStrategy(ctx context.Context, template models.StrategyTemplate) error {
	if template.CreatedAt.IsZero() {
		template.CreatedAt = time.Now().UTC()
	}
	return s.store.InsertStrategy(ctx, template)
}

// strategistAnswer is the envelope the strategist generator responds with.
type strategistAnswer struct {
	Answer struct {
		Strategies []models.Strategy `json:"strategies"`
	} `json:"answer"`
}

// RegenerateStrategies runs the strategist generator for the bucket resolved
// from the request and replaces that bucket's stored templates.
func (s *StrategyService) RegenerateStrategies(ctx context.Context, req models.StrategyRequest) (models.StrategyTemplate, error) {
	if s.strategist == nil {
		return models.StrategyTemplate{}, fmt.Errorf("strategist generator not configured")
	}

	bucket := finance.ResolveBucket(req.MonthlyInvestment, req.LumpsumInvestment, req.YearsToAchieve)

	raw, err := s.strategist.GenerateStrategies(ctx, req.YearsToAchieve, req.MonthlyInvestment, req.LumpsumInvestment)
	if err != nil {
		return models.StrategyTemplate{}, fmt.Errorf("strategist generation failed: %w", err)
	}

	var answer strategistAnswer
	if err := json.Unmarshal([]byte(StripCodeFences(raw)), &answer); err != nil {
		return models.StrategyTemplate{}, fmt.Errorf("failed to parse strategist output: %w", err)
	}
	if len(answer.Answer.Strategies) == 0 {
		return models.StrategyTemplate{}, fmt.Errorf("strategist returned no strategies")
	}

	template := models.StrategyTemplate{
		Type:       bucket,
		Strategies: answer.Answer.Strategies,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.store.ReplaceStrategies(ctx, template); err != nil {
		return models.StrategyTemplate{}, err
	}
	return template, nil
}
