package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// SetupRoutes configures all API routes
func SetupRoutes(handlers *Handlers) *gin.Engine {
	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:5173", "http://127.0.0.1:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Task orchestration
	router.POST("/startTask", handlers.StartTaskHandler)
	router.GET("/getResult/:taskId", handlers.GetResultHandler)

	// Reports
	router.GET("/getReportByType/:type", handlers.GetReportByTypeHandler)
	router.PUT("/reports/:type/allocations", handlers.UpdateReportAllocationsHandler)

	// Strategies
	router.POST("/getStrategy", handlers.GetStrategyHandler)
	router.POST("/addStrategy", handlers.AddStrategyHandler)
	router.POST("/generateStrategies", handlers.GenerateStrategiesHandler)

	// Fund metrics data entry
	api := router.Group("/api")
	{
		api.GET("/mutual_funds", handlers.ListMutualFundsHandler)
		api.POST("/post_mutual_fund", handlers.PostMutualFundHandler)
	}

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return router
}
