package main

import (
	"log"

	"moneyfi-advisor/internal/api"
	"moneyfi-advisor/internal/config"
	"moneyfi-advisor/internal/database"
	"moneyfi-advisor/internal/services"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize MongoDB (reports, strategy templates, fund metrics)
	mongoStore, err := database.NewMongoStore(cfg.MongoDB)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoStore.Close()

	// Initialize Redis result store (transient task records with TTL)
	resultStore, err := database.NewRedisTaskStore(cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}
	defer resultStore.Close()

	// Initialize services
	advisorService := services.NewAdvisorService(cfg.OpenAI)
	extractService := services.NewExtractService(mongoStore)
	taskService := services.NewTaskService(resultStore, advisorService, extractService, cfg.Tasks)
	strategyService := services.NewStrategyService(mongoStore, advisorService)

	// Initialize handlers and routes
	handlers := api.NewHandlers(taskService, strategyService, mongoStore)
	router := api.SetupRoutes(handlers)

	// Start server
	addr := cfg.Server.Host + ":" + cfg.Server.Port
	log.Printf("Server starting on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
