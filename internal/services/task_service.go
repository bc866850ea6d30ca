package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"moneyfi-advisor/internal/config"
	"moneyfi-advisor/internal/finance"
	"moneyfi-advisor/internal/models"

	"github.com/google/uuid"
	"golang.org/x/sync/semaphore"
)

// ResultStore is the transient orchestration store keyed by task id. Values
// expire after the configured retention window; per-key operations must be
// atomic under concurrent workers.
type ResultStore interface {
	Set(ctx context.Context, taskID string, record models.TaskRecord, ttl time.Duration) error
	Get(ctx context.Context, taskID string) (models.TaskRecord, bool, error)
}

// TaskService orchestrates async recommendation generation: it allocates
// task ids, schedules generator calls off the request path, and materializes
// extracted reports once a generation completes.
type TaskService struct {
	store     ResultStore
	generator Generator
	extractor *ExtractService

	ttl     time.Duration
	timeout time.Duration
	workers *semaphore.Weighted
}

// NewTaskService creates a task orchestrator.
func NewTaskService(store ResultStore, generator Generator, extractor *ExtractService, cfg config.TaskConfig) *TaskService {
	return &TaskService{
		store:     store,
		generator: generator,
		extractor: extractor,
		ttl:       cfg.ResultTTL,
		timeout:   cfg.GeneratorTimeout,
		workers:   semaphore.NewWeighted(cfg.MaxConcurrent),
	}
}

// Submit allocates a task id, records the processing state, and schedules
// generation in the background. It never blocks on generator completion.
func (s *TaskService) Submit(ctx context.Context, profile models.Profile) (string, error) {
	taskID := uuid.NewString()

	record := models.TaskRecord{Status: models.TaskStatusProcessing}
	if err := s.store.Set(ctx, taskID, record, s.ttl); err != nil {
		return "", fmt.Errorf("failed to create task: %w", err)
	}

	go s.run(taskID, profile)
	return taskID, nil
}

// Poll returns the current task record. The second return value is false
// when the task is unknown or its record has expired.
func (s *TaskService) Poll(ctx context.Context, taskID string) (models.TaskRecord, bool, error) {
	return s.store.Get(ctx, taskID)
}

// run executes the generator for one task. Every exit path writes a terminal
// status: a task is never left stuck in processing by an error or panic.
func (s *TaskService) run(taskID string, profile models.Profile) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("ERROR: task %s panicked: %v", taskID, r)
			s.finish(taskID, models.TaskRecord{
				Status: models.TaskStatusError,
				Error:  fmt.Sprintf("internal error: %v", r),
			})
		}
	}()

	// Bound concurrent generator calls; queued tasks stay in processing.
	if err := s.workers.Acquire(context.Background(), 1); err != nil {
		s.finish(taskID, models.TaskRecord{
			Status: models.TaskStatusError,
			Error:  fmt.Sprintf("failed to schedule generation: %v", err),
		})
		return
	}
	defer s.workers.Release(1)

	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	result, err := s.generator.Generate(ctx, profile)
	if err != nil {
		message := err.Error()
		if errors.Is(err, context.DeadlineExceeded) {
			message = fmt.Sprintf("recommendation generation timed out after %s", s.timeout)
		}
		s.finish(taskID, models.TaskRecord{
			Status: models.TaskStatusError,
			Error:  message,
		})
		return
	}

	s.finish(taskID, models.TaskRecord{
		Status: models.TaskStatusCompleted,
		Result: result,
	})

	// Materialize the structured report for the profile's bucket. A failed
	// extraction degrades to an empty report and never fails the task.
	if s.extractor != nil {
		bucket := finance.ResolveBucket(profile.MonthlyInvestment, profile.LumpsumInvestment, profile.HorizonYears)
		storeCtx, storeCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer storeCancel()
		if _, err := s.extractor.ExtractAndStore(storeCtx, result, bucket); err != nil {
			log.Printf("WARNING: failed to store extracted report for task %s (type %d): %v", taskID, bucket, err)
		}
	}
}

// finish writes a terminal record. A store failure here can only be logged;
// the record then expires via TTL and polls report not-found.
func (s *TaskService) finish(taskID string, record models.TaskRecord) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := s.store.Set(ctx, taskID, record, s.ttl); err != nil {
		log.Printf("ERROR: failed to store terminal status for task %s: %v", taskID, err)
	}
}
