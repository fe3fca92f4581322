package main

import (
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/debate-api/internal/pkg/clock"
	"github.com/KirkDiggler/debate-api/internal/redis"
	"github.com/KirkDiggler/debate-api/internal/repositories/debates"
	"github.com/KirkDiggler/debate-api/internal/repositories/simulations"
)

// envConfig is loaded from the environment. Redis is optional: with
// no address configured, debates simply are not persisted.
type envConfig struct {
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPoolSize int           `env:"REDIS_POOL_SIZE" envDefault:"10"`
	DebateTTL     time.Duration `env:"DEBATE_TTL" envDefault:"24h"`
}

func loadEnvConfig() (*envConfig, error) {
	var cfg envConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// newRedisClient connects when an address is configured, or returns
// nil for in-memory-only runs.
func (c *envConfig) newRedisClient() (redis.Client, error) {
	if c.RedisAddr == "" {
		return nil, nil
	}
	return redis.NewClient(c.RedisAddr, &redis.Options{
		PoolSize: c.RedisPoolSize,
	})
}

// newDebateRepo builds the Redis-backed debate repository, or nil
// without a Redis address.
func (c *envConfig) newDebateRepo() (debates.Repository, error) {
	client, err := c.newRedisClient()
	if err != nil || client == nil {
		return nil, err
	}

	return debates.NewRedisRepository(&debates.Config{
		Client: client,
		Clock:  clock.New(),
	})
}

// newSimulationRepo builds the Redis-backed summary repository, or nil
// without a Redis address.
func (c *envConfig) newSimulationRepo() (simulations.Repository, error) {
	client, err := c.newRedisClient()
	if err != nil || client == nil {
		return nil, err
	}

	return simulations.NewRedisRepository(&simulations.Config{
		Client: client,
		Clock:  clock.New(),
	})
}
