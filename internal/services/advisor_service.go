package services

import (
	"context"
	"fmt"

	"moneyfi-advisor/internal/config"
	"moneyfi-advisor/internal/finance"
	"moneyfi-advisor/internal/models"

	openai "github.com/sashabaranov/go-openai"
)

// Generator is the recommendation-generator boundary. Implementations call
// out to an LLM and return the raw (nominally JSON) recommendation text.
type Generator interface {
	Generate(ctx context.Context, profile models.Profile) (string, error)
}

// StrategistGenerator produces strategy-template JSON for a set of numeric
// inputs, independent of any single user profile.
type StrategistGenerator interface {
	GenerateStrategies(ctx context.Context, horizonYears float64, monthly, lumpsum int64) (string, error)
}

// defaultSeedPercents splits a user's amount across instrument classes to
// seed the per-tool amounts in the generator prompt.
var defaultSeedPercents = map[string]int{
	models.ClassMutualFunds: 40,
	models.ClassETFs:        20,
	models.ClassBonds:       30,
	models.ClassSGBs:        10,
}

// SeedInstruments fills the per-instrument amounts the prompt contract
// expects, splitting the monthly and lumpsum totals separately.
func SeedInstruments(profile *models.Profile) {
	monthly := finance.SplitAllocation(profile.MonthlyInvestment, defaultSeedPercents)
	lumpsum := finance.SplitAllocation(profile.LumpsumInvestment, defaultSeedPercents)
	profile.Seeds = models.InstrumentSeeds{
		MutualFund:        monthly[models.ClassMutualFunds],
		MutualFundLumpsum: lumpsum[models.ClassMutualFunds],
		ETF:               monthly[models.ClassETFs],
		ETFLumpsum:        lumpsum[models.ClassETFs],
		Bond:              monthly[models.ClassBonds],
		BondLumpsum:       lumpsum[models.ClassBonds],
		SGB:               monthly[models.ClassSGBs],
		SGBLumpsum:        lumpsum[models.ClassSGBs],
	}
}

// AdvisorService calls OpenAI to produce portfolio recommendations and
// strategy templates.
type AdvisorService struct {
	client *openai.Client
	config config.OpenAIConfig
}

// NewAdvisorService creates an advisor service backed by the OpenAI API.
func NewAdvisorService(cfg config.OpenAIConfig) *AdvisorService {
	return &AdvisorService{
		client: openai.NewClient(cfg.APIKey),
		config: cfg,
	}
}

// Generate produces a portfolio recommendation for the given profile. The
// response is requested as a JSON object but callers must still treat it as
// semi-structured text.
func (s *AdvisorService) Generate(ctx context.Context, profile models.Profile) (string, error) {
	SeedInstruments(&profile)

	systemPrompt := "You are an expert Financial Investment Advisor. " +
		"You recommend diversified portfolios of mutual funds, ETFs, bonds and sovereign gold bonds for Indian retail investors."

	userPrompt := fmt.Sprintf(`Build an investment portfolio recommendation for this investor:

- Objective: %s
- Risk appetite: %s
- Investment horizon: %g years
- Age: %d
- Monthly amounts: mutual funds Rs. %d, ETFs Rs. %d, bonds Rs. %d, SGBs Rs. %d
- Lumpsum amounts: mutual funds Rs. %d, ETFs Rs. %d, bonds Rs. %d, SGBs Rs. %d

Skip any instrument class whose monthly and lumpsum amounts are both 0.
Include every fund, ETF, bond and SGB you select with all of its metrics; do not summarize or filter.

Respond strictly as valid JSON matching this schema:
{
  "Investment Portfolio Recommendation": {
    "Monthly Investment": {
      "Allocation": { "Mutual Funds": <number>, "ETFs": <number>, "Bonds": <number>, "SGBs": <number> },
      "Mutual Funds Details": [ { "Fund Name": "<string>", "Category": "<string>", "5-Year Return": <number>, "Expense Ratio": <number>, "Key Metrics": {} } ],
      "ETFs Details": [ { "ETF Name": "<string>", "Category": "<string>", "5-Year Return": <number>, "Expense Ratio": <number>, "Key Metrics": {} } ],
      "Bonds Details": [ { "Bond Name": "<string>", "YTM": <number>, "Coupon Rate": <number>, "Maturity Date": "<date>", "Last Traded Price": <number>, "Key Metrics": {} } ],
      "SGBs Details": [ { "Bond Name": "<string>", "Last Traded Price (LTP)": <number>, "Interest Rate": <number>, "Maturity Date": "<date>", "Expected Returns": <number> } ]
    },
    "Lumpsum Investment": { /* same structure as Monthly Investment */ }
  }
}`,
		profile.Objective, profile.Risk, profile.HorizonYears, profile.Age,
		profile.Seeds.MutualFund, profile.Seeds.ETF, profile.Seeds.Bond, profile.Seeds.SGB,
		profile.Seeds.MutualFundLumpsum, profile.Seeds.ETFLumpsum, profile.Seeds.BondLumpsum, profile.Seeds.SGBLumpsum,
	)

	return s.complete(ctx, systemPrompt, userPrompt)
}

// GenerateStrategies produces 3-4 diverse allocation strategies for a bucket's
// representative amounts and horizon.
func (s *AdvisorService) GenerateStrategies(ctx context.Context, horizonYears float64, monthly, lumpsum int64) (string, error) {
	systemPrompt := "You are a portfolio strategist. You design allocation strategies that balance risk and returns across growth and fixed-income instruments."

	userPrompt := fmt.Sprintf(`Coin out 3-4 diverse investment strategies for this investor profile:

- Lumpsum: Rs. %d
- Horizon: %g years
- Monthly investment: Rs. %d

Available instruments: Mutual Funds, ETFs (growth); Bonds, SGBs (fixed income).

Guidelines:
- Provide at least one strategy for each risk level: "High", "Moderate", "Moderate-Low", "Low".
- For each strategy, the "monthly" and "lumpsum" allocations must each sum to 100.
- All allocation percentages must be integers.
- Each strategy needs a clear, concise description of the risk/return tradeoff.

Respond strictly as valid JSON:
{
  "answer": {
    "strategies": [
      {
        "name": "...",
        "description": "...",
        "riskLevel": "High",
        "expectedReturn": "~12%% annualised",
        "allocation": {
          "monthly": { "Mutual Funds": 0, "ETFs": 0, "Bonds": 0, "SGBs": 0 },
          "lumpsum": { "Mutual Funds": 0, "ETFs": 0, "Bonds": 0, "SGBs": 0 }
        }
      }
    ]
  }
}`, lumpsum, horizonYears, monthly)

	return s.complete(ctx, systemPrompt, userPrompt)
}

func (s *AdvisorService) complete(ctx context.Context, systemPrompt, userPrompt string) (string, error) {
	req := openai.ChatCompletionRequest{
		Model:       s.config.Model,
		Temperature: float32(s.config.Temperature),
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleSystem, Content: systemPrompt},
			{Role: openai.ChatMessageRoleUser, Content: userPrompt},
		},
		ResponseFormat: &openai.ChatCompletionResponseFormat{
			Type: openai.ChatCompletionResponseFormatTypeJSONObject,
		},
	}
	if s.config.MaxTokens > 0 {
		req.MaxTokens = s.config.MaxTokens
	}

	resp, err := s.client.CreateChatCompletion(ctx, req)
	if err != nil {
		return "", fmt.Errorf("OpenAI API error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("no response from model")
	}
	return resp.Choices[0].Message.Content, nil
}
