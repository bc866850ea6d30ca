package models

// StartTaskRequest is the body of POST /startTask. The profile may be nested
// under user_inputs (the shape the web client sends) or provided flat.
type StartTaskRequest struct {
	UserInputs *RawProfile `json:"user_inputs"`

	// Flat variant, accepted when user_inputs is absent.
	RawProfile
}

// Inputs returns the effective raw profile for the request.
func (r StartTaskRequest) Inputs() RawProfile {
	if r.UserInputs != nil {
		return *r.UserInputs
	}
	return r.RawProfile
}

// TaskResponse is returned by POST /startTask.
type TaskResponse struct {
	Status  string `json:"status"`
	TaskID  string `json:"task_id"`
	Message string `json:"message,omitempty"`
}

// ResultResponse is returned by GET /getResult/:taskId.
type ResultResponse struct {
	Status  string `json:"status"`
	Result  string `json:"result,omitempty"`
	Error   string `json:"error,omitempty"`
	Message string `json:"message,omitempty"`
}

// StrategyRequest is the body of POST /getStrategy and /generateStrategies.
type StrategyRequest struct {
	YearsToAchieve    float64 `json:"yearsToAchieve" binding:"required,gt=0"`
	MonthlyInvestment int64   `json:"monthlyInvestment" binding:"min=0"`
	LumpsumInvestment int64   `json:"lumpsumInvestment" binding:"min=0"`
}

// StrategyResponse is returned by POST /getStrategy.
type StrategyResponse struct {
	Type       int            `json:"type"`
	Strategies []StrategyView `json:"strategies"`
}

// UpdateAllocationsRequest is the body of PUT /reports/:type/allocations.
// Only the allocation maps may be merged; other report fields are immutable
// through this endpoint.
type UpdateAllocationsRequest struct {
	MonthlyAllocations map[string]float64 `json:"monthly_allocations"`
	LumpsumAllocations map[string]float64 `json:"lumpsum_allocations"`
}
