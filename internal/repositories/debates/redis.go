package debates

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
	// Key pattern: debate:{debate_id}
	debateKeyPrefix = "debate:"
	defaultTTL      = 24 * time.Hour

	// Error messages
	errResultNil     = "result cannot be nil"
	errDebateIDEmpty = "debate ID cannot be empty"
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

// NewRedisRepository creates a new Redis repository for debate results
func NewRedisRepository(cfg *Config) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		clock:  cfg.Clock,
	}, nil
}

// Ensure redisRepository implements Repository
var _ Repository = (*redisRepository)(nil)

// Create stores a debate result with the specified TTL
func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Result == nil {
		return nil, errors.InvalidArgument(errResultNil)
	}
	if input.Result.DebateID == "" {
		return nil, errors.InvalidArgument(errDebateIDEmpty)
	}

	now := r.clock.Now()
	ttl := input.TTL
	if ttl == 0 {
		ttl = defaultTTL
	}

	record := &Record{
		Result:    input.Result,
		SavedAt:   now,
		ExpiresAt: now.Add(ttl),
	}

	recordJSON, err := json.Marshal(record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal debate record")
	}

	key := r.buildKey(input.Result.DebateID)
	err = r.client.Set(ctx, key, recordJSON, ttl).Err()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to store debate record in Redis")
	}

	return &CreateOutput{
		Record: record,
	}, nil
}

// Get retrieves a debate result by debate ID
func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.DebateID == "" {
		return nil, errors.InvalidArgument(errDebateIDEmpty)
	}

	key := r.buildKey(input.DebateID)

	recordJSON, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFound("debate not found")
		}
		return nil, errors.Wrapf(err, "failed to get debate record from Redis")
	}

	var record Record
	if err := json.Unmarshal([]byte(recordJSON), &record); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal debate record")
	}

	// Check if the record has expired
	if r.clock.Now().After(record.ExpiresAt) {
		// Expired, clean it up
		_ = r.client.Del(ctx, key)
		return nil, errors.NotFound("debate record has expired")
	}

	return &GetOutput{
		Record: &record,
	}, nil
}

// Delete removes a stored debate result
func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.DebateID == "" {
		return nil, errors.InvalidArgument(errDebateIDEmpty)
	}

	key := r.buildKey(input.DebateID)

	// Get the record first to count rounds
	getOutput, err := r.Get(ctx, GetInput(input))

	var roundsDeleted int32
	if err == nil && getOutput.Record != nil && getOutput.Record.Result != nil {
		// nolint:gosec // round count is always small
		roundsDeleted = int32(len(getOutput.Record.Result.Rounds))
	}

	result := r.client.Del(ctx, key)
	if result.Err() != nil {
		return nil, errors.Wrapf(result.Err(), "failed to delete debate record from Redis")
	}

	return &DeleteOutput{
		RoundsDeleted: roundsDeleted,
	}, nil
}

// buildKey creates the Redis key for a debate record
func (r *redisRepository) buildKey(debateID string) string {
	return fmt.Sprintf("%s%s", debateKeyPrefix, debateID)
}
