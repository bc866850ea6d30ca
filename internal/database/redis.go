package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"moneyfi-advisor/internal/config"
	"moneyfi-advisor/internal/models"

	"github.com/go-redis/redis/v8"
)

// RedisTaskStore holds task records in Redis with expire-after-write
// semantics. Per-key atomicity comes from Redis itself; no additional
// locking is needed for concurrent workers.
type RedisTaskStore struct {
	client *redis.Client
}

// NewRedisTaskStore connects to Redis and verifies the connection.
func NewRedisTaskStore(cfg config.RedisConfig) (*RedisTaskStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisTaskStore{client: client}, nil
}

// Close closes the Redis client.
func (s *RedisTaskStore) Close() error {
	return s.client.Close()
}

const taskKeyPrefix = "task:"

// Set writes a task record with the given TTL. A serialization failure is
// returned to the caller rather than swallowed.
func (s *RedisTaskStore) Set(ctx context.Context, taskID string, record models.TaskRecord, ttl time.Duration) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize task record: %w", err)
	}
	if err := s.client.Set(ctx, taskKeyPrefix+taskID, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store task record: %w", err)
	}
	return nil
}

// Get reads a task record. The second return value is false when the key is
// unknown or has expired.
func (s *RedisTaskStore) Get(ctx context.Context, taskID string) (models.TaskRecord, bool, error) {
	payload, err := s.client.Get(ctx, taskKeyPrefix+taskID).Bytes()
	if err != nil {
		if err == redis.Nil {
			return models.TaskRecord{}, false, nil
		}
		return models.TaskRecord{}, false, fmt.Errorf("failed to read task record: %w", err)
	}

	var record models.TaskRecord
	if err := json.Unmarshal(payload, &record); err != nil {
		return models.TaskRecord{}, false, fmt.Errorf("failed to decode task record: %w", err)
	}
	return record, true, nil
}
