package database

import (
	"context"
	"sync"
	"time"

	"moneyfi-advisor/internal/models"
)

// MemoryTaskStore is an in-process task store with the same TTL semantics as
// the Redis store. Used in tests and in dev setups without Redis; not shared
// across processes.
type MemoryTaskStore struct {
	mutex   sync.RWMutex
	records map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	record    models.TaskRecord
	expiresAt time.Time
}

// NewMemoryTaskStore creates an empty in-memory task store.
func NewMemoryTaskStore() *MemoryTaskStore {
	return &MemoryTaskStore{
		records: make(map[string]memoryEntry),
		now:     time.Now,
	}
}

// Set stores a record, expiring it ttl from now.
func (s *MemoryTaskStore) Set(_ context.Context, taskID string, record models.TaskRecord, ttl time.Duration) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.records[taskID] = memoryEntry{
		record:    record,
		expiresAt: s.now().Add(ttl),
	}
	return nil
}

// Get returns the record for taskID, or false when unknown or expired.
func (s *MemoryTaskStore) Get(_ context.Context, taskID string) (models.TaskRecord, bool, error) {
	s.mutex.RLock()
	entry, exists := s.records[taskID]
	s.mutex.RUnlock()

	if !exists {
		return models.TaskRecord{}, false, nil
	}
	if s.now().After(entry.expiresAt) {
		s.mutex.Lock()
		delete(s.records, taskID)
		s.mutex.Unlock()
		return models.TaskRecord{}, false, nil
	}
	return entry.record, true, nil
}
