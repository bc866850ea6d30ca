package api

import (
	"net/http"
	"strconv"

	"moneyfi-advisor/internal/database"
	"moneyfi-advisor/internal/models"
	"moneyfi-advisor/internal/services"

	"github.com/gin-gonic/gin"
)

// Handlers contains all HTTP handlers
type Handlers struct {
	taskService     *services.TaskService
	strategyService *services.StrategyService
	mongoStore      *database.MongoStore
}

// NewHandlers creates a new handlers instance
func NewHandlers(taskService *services.TaskService, strategyService *services.StrategyService, mongoStore *database.MongoStore) *Handlers {
	return &Handlers{
		taskService:     taskService,
		strategyService: strategyService,
		mongoStore:      mongoStore,
	}
}

// StartTaskHandler handles POST /startTask
func (h *Handlers) StartTaskHandler(c *gin.Context) {
	var req models.StartTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	profile, err := models.NormalizeProfile(req.Inputs())
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	taskID, err := h.taskService.Submit(c.Request.Context(), profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "error": err.Error()})
		return
	}

	c.JSON(http.StatusAccepted, models.TaskResponse{
		Status:  string(models.TaskStatusProcessing),
		TaskID:  taskID,
		Message: "User inputs are being processed",
	})
}

// GetResultHandler handles GET /getResult/:taskId
func (h *Handlers) GetResultHandler(c *gin.Context) {
	taskID := c.Param("taskId")
	if taskID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "taskId is required"})
		return
	}

	record, found, err := h.taskService.Poll(c.Request.Context(), taskID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "Task not found"})
		return
	}

	switch record.Status {
	case models.TaskStatusProcessing:
		c.JSON(http.StatusAccepted, models.ResultResponse{
			Status:  string(record.Status),
			Message: "Task is still being processed",
		})
	case models.TaskStatusCompleted:
		c.JSON(http.StatusOK, models.ResultResponse{
			Status: string(record.Status),
			Result: record.Result,
		})
	default:
		c.JSON(http.StatusInternalServerError, models.ResultResponse{
			Status: string(record.Status),
			Error:  record.Error,
		})
	}
}

// GetReportByTypeHandler handles GET /getReportByType/:type
func (h *Handlers) GetReportByTypeHandler(c *gin.Context) {
	reportType, err := strconv.Atoi(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report type"})
		return
	}

	report, err := h.mongoStore.GetReportByType(c.Request.Context(), reportType)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no report for type"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// UpdateReportAllocationsHandler handles PUT /reports/:type/allocations.
// The read path stays side-effect free; allocation merges go through here.
func (h *Handlers) UpdateReportAllocationsHandler(c *gin.Context) {
	reportType, err := strconv.Atoi(c.Param("type"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid report type"})
		return
	}

	var req models.UpdateAllocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report, err := h.mongoStore.UpdateReportAllocations(c.Request.Context(), reportType, req.MonthlyAllocations, req.LumpsumAllocations)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no report for type"})
		return
	}

	c.JSON(http.StatusOK, report)
}

// GetStrategyHandler handles POST /getStrategy
func (h *Handlers) GetStrategyHandler(c *gin.Context) {
	var req models.StrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	response, err := h.strategyService.GetStrategies(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, response)
}

// AddStrategyHandler handles POST /addStrategy
func (h *Handlers) AddStrategyHandler(c *gin.Context) {
	var template models.StrategyTemplate
	if err := c.ShouldBindJSON(&template); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.strategyService.AddStrategy(c.Request.Context(), template); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "type": template.Type})
}

// GenerateStrategiesHandler handles POST /generateStrategies
func (h *Handlers) GenerateStrategiesHandler(c *gin.Context) {
	var req models.StrategyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	template, err := h.strategyService.RegenerateStrategies(c.Request.Context(), req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, template)
}

// PostMutualFundHandler handles POST /api/post_mutual_fund
func (h *Handlers) PostMutualFundHandler(c *gin.Context) {
	var fund models.MutualFund
	if err := c.ShouldBindJSON(&fund); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if fund.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name is required"})
		return
	}

	insertedID, err := h.mongoStore.InsertMutualFund(c.Request.Context(), fund)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "success", "inserted_id": insertedID})
}

// ListMutualFundsHandler handles GET /api/mutual_funds
func (h *Handlers) ListMutualFundsHandler(c *gin.Context) {
	funds, err := h.mongoStore.ListMutualFunds(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"mutual_funds": funds})
}
