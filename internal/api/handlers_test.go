package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"moneyfi-advisor/internal/config"
	"moneyfi-advisor/internal/database"
	"moneyfi-advisor/internal/models"
	"moneyfi-advisor/internal/services"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGenerator struct {
	release chan struct{}
	result  string
}

func (g *stubGenerator) Generate(ctx context.Context, _ models.Profile) (string, error) {
	if g.release != nil {
		select {
		case <-g.release:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}
	return g.result, nil
}

type memStrategyStore struct {
	templates map[int][]models.StrategyTemplate
}

func (m *memStrategyStore) InsertStrategy(_ context.Context, template models.StrategyTemplate) error {
	m.templates[template.Type] = append(m.templates[template.Type], template)
	return nil
}

func (m *memStrategyStore) GetStrategiesByType(_ context.Context, bucketType int) ([]models.StrategyTemplate, error) {
	return m.templates[bucketType], nil
}

func (m *memStrategyStore) ReplaceStrategies(_ context.Context, template models.StrategyTemplate) error {
	m.templates[template.Type] = []models.StrategyTemplate{template}
	return nil
}

func newTestRouter(gen services.Generator) (*gin.Engine, *memStrategyStore) {
	taskService := services.NewTaskService(database.NewMemoryTaskStore(), gen, nil, config.TaskConfig{
		ResultTTL:        time.Minute,
		GeneratorTimeout: 5 * time.Second,
		MaxConcurrent:    2,
	})
	store := &memStrategyStore{templates: make(map[int][]models.StrategyTemplate)}
	strategyService := services.NewStrategyService(store, nil)
	return SetupRoutes(NewHandlers(taskService, strategyService, nil)), store
}

func doJSON(t *testing.T, router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)
	return recorder
}

func TestStartTaskAcceptsAndReturnsTaskID(t *testing.T) {
	router, _ := newTestRouter(&stubGenerator{release: make(chan struct{}), result: "{}"})

	body := `{"user_inputs": {"yearsToAchieve": 5, "monthlyInvestment": 2000, "lumpsumInvestment": 50000,
        "objective": {"currentKey": "Retirement"}, "risk": {"currentKey": "Moderate"}, "age": 30}}`
	recorder := doJSON(t, router, http.MethodPost, "/startTask", body)

	if recorder.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", recorder.Code, recorder.Body)
	}
	var resp models.TaskResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.TaskID == "" {
		t.Error("response missing task_id")
	}
	if resp.Status != string(models.TaskStatusProcessing) {
		t.Errorf("status = %q, want processing", resp.Status)
	}
}

func TestStartTaskAcceptsFlatPayload(t *testing.T) {
	router, _ := newTestRouter(&stubGenerator{release: make(chan struct{}), result: "{}"})

	recorder := doJSON(t, router, http.MethodPost, "/startTask",
		`{"yearsToAchieve": 3, "monthlyInvestment": 500}`)
	if recorder.Code != http.StatusAccepted {
		t.Fatalf("status = %d, want 202: %s", recorder.Code, recorder.Body)
	}
}

func TestStartTaskValidation(t *testing.T) {
	router, _ := newTestRouter(&stubGenerator{result: "{}"})

	tests := []struct {
		name string
		body string
	}{
		{"missing years", `{"user_inputs": {"monthlyInvestment": 2000}}`},
		{"zero years", `{"user_inputs": {"yearsToAchieve": 0, "monthlyInvestment": 2000}}`},
		{"missing monthly", `{"user_inputs": {"yearsToAchieve": 5}}`},
		{"negative monthly", `{"user_inputs": {"yearsToAchieve": 5, "monthlyInvestment": -10}}`},
		{"malformed json", `{"user_inputs": `},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := doJSON(t, router, http.MethodPost, "/startTask", tt.body)
			if recorder.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400: %s", recorder.Code, recorder.Body)
			}
		})
	}
}

func TestGetResultStatusMapping(t *testing.T) {
	release := make(chan struct{})
	router, _ := newTestRouter(&stubGenerator{release: release, result: `{"ok":true}`})

	recorder := doJSON(t, router, http.MethodPost, "/startTask",
		`{"yearsToAchieve": 5, "monthlyInvestment": 2000}`)
	if recorder.Code != http.StatusAccepted {
		t.Fatalf("startTask status = %d: %s", recorder.Code, recorder.Body)
	}
	var started models.TaskResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &started); err != nil {
		t.Fatal(err)
	}

	// Still generating: 202 with processing status.
	recorder = doJSON(t, router, http.MethodGet, "/getResult/"+started.TaskID, "")
	if recorder.Code != http.StatusAccepted {
		t.Errorf("in-flight poll status = %d, want 202: %s", recorder.Code, recorder.Body)
	}

	close(release)
	deadline := time.Now().Add(5 * time.Second)
	for {
		recorder = doJSON(t, router, http.MethodGet, "/getResult/"+started.TaskID, "")
		if recorder.Code != http.StatusAccepted {
			break
		}
		if time.Now().After(deadline) {
			t.Fatal("task never completed")
		}
		time.Sleep(10 * time.Millisecond)
	}

	if recorder.Code != http.StatusOK {
		t.Fatalf("completed poll status = %d, want 200: %s", recorder.Code, recorder.Body)
	}
	var result models.ResultResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatal(err)
	}
	if result.Status != string(models.TaskStatusCompleted) || result.Result != `{"ok":true}` {
		t.Errorf("unexpected completed body: %+v", result)
	}
}

func TestGetResultUnknownTask(t *testing.T) {
	router, _ := newTestRouter(&stubGenerator{result: "{}"})
	recorder := doJSON(t, router, http.MethodGet, "/getResult/does-not-exist", "")
	if recorder.Code != http.StatusNotFound {
		t.Errorf("status = %d, want 404: %s", recorder.Code, recorder.Body)
	}
}

func TestGetStrategyReturnsBucketViews(t *testing.T) {
	router, store := newTestRouter(&stubGenerator{result: "{}"})
	store.templates[50] = []models.StrategyTemplate{{
		Type: 50,
		Strategies: []models.Strategy{{
			Name:           "Balanced Growth",
			RiskLevel:      "Moderate",
			ExpectedReturn: "11% p.a.",
			Allocation: models.StrategyAllocation{
				Monthly: map[string]int{"Mutual Funds": 60, "Bonds": 40},
			},
		}},
	}}

	recorder := doJSON(t, router, http.MethodPost, "/getStrategy",
		`{"yearsToAchieve": 5, "monthlyInvestment": 2000}`)
	if recorder.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200: %s", recorder.Code, recorder.Body)
	}

	var resp models.StrategyResponse
	if err := json.Unmarshal(recorder.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Type != 50 || len(resp.Strategies) != 1 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Strategies[0].MonthlyAmounts["Mutual Funds"] != 1200 {
		t.Errorf("monthly amounts = %v", resp.Strategies[0].MonthlyAmounts)
	}
}

func TestGetStrategyValidation(t *testing.T) {
	router, _ := newTestRouter(&stubGenerator{result: "{}"})
	for _, body := range []string{
		`{"monthlyInvestment": 2000}`,
		`{"yearsToAchieve": -1, "monthlyInvestment": 2000}`,
		`{"yearsToAchieve": 5, "monthlyInvestment": -5}`,
	} {
		recorder := doJSON(t, router, http.MethodPost, "/getStrategy", body)
		if recorder.Code != http.StatusBadRequest {
			t.Errorf("body %s: status = %d, want 400", body, recorder.Code)
		}
	}
}

func TestAddStrategyPersists(t *testing.T) {
	router, store := newTestRouter(&stubGenerator{result: "{}"})

	body := `{"type": 61, "strategies": [{"name": "Income Ladder", "riskLevel": "Low",
        "expectedReturn": "8% p.a.", "allocation": {"monthly": {"Bonds": 100}, "lumpsum": {}}}]}`
	recorder := doJSON(t, router, http.MethodPost, "/addStrategy", body)
	if recorder.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201: %s", recorder.Code, recorder.Body)
	}
	if len(store.templates[61]) != 1 {
		t.Errorf("stored templates for 61 = %d, want 1", len(store.templates[61]))
	}
}

func TestHealthEndpoint(t *testing.T) {
	router, _ := newTestRouter(&stubGenerator{result: "{}"})
	recorder := doJSON(t, router, http.MethodGet, "/health", "")
	if recorder.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", recorder.Code)
	}
}
