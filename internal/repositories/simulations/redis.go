package simulations

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/debate-api/internal/errors"
	"github.com/KirkDiggler/debate-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/debate-api/internal/redis"
)

const (
	// Key pattern: simulation:{simulation_id}
	simulationKeyPrefix = "simulation:"
	defaultTTL          = 7 * 24 * time.Hour

	errStatsNil   = "stats cannot be nil"
	errSimIDEmpty = "simulation ID cannot be empty"
)

// Config holds the configuration for the Redis repository
type Config struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	if c.Clock == nil {
		return errors.InvalidArgument("clock is required")
	}
	return nil
}

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// NewRedisRepository creates a new Redis repository for simulation summaries
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

var _ Repository = (*redisRepository)(nil)

// Create stores a simulation summary with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Stats == nil {
		return nil, errors.InvalidArgument(errStatsNil)
	}
	if input.SimulationID == "" {
		return nil, errors.InvalidArgument(errSimIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	record := &Record{
		SimulationID: input.SimulationID,
		Stats:        input.Stats,
		SavedAt:      now,
		ExpiresAt:    now.Add(ttl),
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal simulation record")
	}

	key := r.buildKey(input.SimulationID)
	if err := r.client.Set(ctx, key, recordJSON, ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store simulation record in Redis")
	}

	return &CreateOutput{
		Record: record,
	}, nil
}

// Get retrieves a simulation summary by ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.SimulationID == "" {
		return nil, errors.InvalidArgument(errSimIDEmpty)
	}

	key := r.buildKey(input.SimulationID)

	recordJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("simulation not found")
		}
		return nil, errors.Wrapf(err, "failed to get simulation record from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal simulation record")
	}

	if r.clock.Now().After(record.ExpiresAt) {
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("simulation record has expired")
	}

	return &GetOutput{
		Record: &record,
	}, nil
}

// buildKey creates the Redis key for a simulation record
func (r *redisRepository) buildKey(simulationID string) string {
	return fmt.Sprintf("%s%s", simulationKeyPrefix, simulationID)
}
