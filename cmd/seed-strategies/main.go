package main

import (
	"context"
	"log"
	"time"

	"moneyfi-advisor/internal/config"
	"moneyfi-advisor/internal/database"
	"moneyfi-advisor/internal/models"
	"moneyfi-advisor/internal/services"
)

// Representative profiles, one per (horizon, monthly, lumpsum) tier
// combination. Running the strategist for each fills every bucket the
// resolver can produce.
var seedProfiles = []models.StrategyRequest{
	{YearsToAchieve: 2, MonthlyInvestment: 300, LumpsumInvestment: 0},
	{YearsToAchieve: 2, MonthlyInvestment: 2000, LumpsumInvestment: 0},
	{YearsToAchieve: 2, MonthlyInvestment: 15000, LumpsumInvestment: 0},
	{YearsToAchieve: 5, MonthlyInvestment: 300, LumpsumInvestment: 50000},
	{YearsToAchieve: 5, MonthlyInvestment: 2000, LumpsumInvestment: 50000},
	{YearsToAchieve: 5, MonthlyInvestment: 15000, LumpsumInvestment: 50000},
	{YearsToAchieve: 10, MonthlyInvestment: 300, LumpsumInvestment: 500000},
	{YearsToAchieve: 10, MonthlyInvestment: 2000, LumpsumInvestment: 500000},
	{YearsToAchieve: 10, MonthlyInvestment: 15000, LumpsumInvestment: 500000},
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	mongoStore, err := database.NewMongoStore(cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoStore.Close()

	advisorService := services.NewAdvisorService(cfg.OpenAI)
	strategyService := services.NewStrategyService(mongoStore, advisorService)

	for _, req := range seedProfiles {
		ctx, cancel := context.WithTimeout(context.Background(), cfg.Tasks.GeneratorTimeout)
		template, err := strategyService.RegenerateStrategies(ctx, req)
		cancel()
		if err != nil {
			log.Printf("WARNING: failed to seed strategies for horizon=%g monthly=%d lumpsum=%d: %v",
				req.YearsToAchieve, req.MonthlyInvestment, req.LumpsumInvestment, err)
			continue
		}
		log.Printf("Seeded %d strategies for bucket type %d", len(template.Strategies), template.Type)
		time.Sleep(time.Second)
	}
}
