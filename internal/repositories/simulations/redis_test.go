package simulations_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/errors"
	"github.com/KirkDiggler/debate-api/internal/pkg/clock"
	"github.com/KirkDiggler/debate-api/internal/repositories/simulations"
	"github.com/KirkDiggler/debate-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Fixed
	repo    simulations.Repository
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := simulations.NewRedisRepository(&simulations.Config{
		Client: client,
		Clock:  s.clock,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	if s.cleanup != nil {
		s.cleanup()
	}
}

func TestRedisRepositorySuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func sampleStats() *entities.MatchStats {
	return &entities.MatchStats{
		ArchetypeA:    "the-stoic",
		ArchetypeB:    "the-nihilist",
		Matches:       100,
		WinsA:         61,
		WinsB:         35,
		Ties:          4,
		WinRateA:      0.61,
		WinRateB:      0.35,
		TieRate:       0.04,
		AvgRounds:     3.2,
		AvgHealthDiff: 1.7,
		StdHealthDiff: 4.1,
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	created, err := s.repo.Create(s.ctx, simulations.CreateInput{
		SimulationID: "sim_1",
		Stats:        sampleStats(),
	})
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), created.Record.SavedAt)
	s.Equal(s.clock.Now().Add(7*24*time.Hour), created.Record.ExpiresAt, "default TTL is a week")

	got, err := s.repo.Get(s.ctx, simulations.GetInput{SimulationID: "sim_1"})
	s.Require().NoError(err)

	stored := got.Record.Stats
	s.Equal("the-stoic", stored.ArchetypeA)
	s.Equal(61, stored.WinsA)
	s.InDelta(1.7, stored.AvgHealthDiff, 1e-9)
}

func (s *RedisRepositoryTestSuite) TestCreate_Validation() {
	_, err := s.repo.Create(s.ctx, simulations.CreateInput{SimulationID: "sim_1"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, simulations.CreateInput{Stats: sampleStats()})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFoundAndExpiry() {
	_, err := s.repo.Get(s.ctx, simulations.GetInput{SimulationID: "sim_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Create(s.ctx, simulations.CreateInput{
		SimulationID: "sim_stale",
		Stats:        sampleStats(),
		TTL:          time.Hour,
	})
	s.Require().NoError(err)

	s.clock.Advance(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, simulations.GetInput{SimulationID: "sim_stale"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}
