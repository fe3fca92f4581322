package debates_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/errors"
	"github.com/KirkDiggler/debate-api/internal/pkg/clock"
	"github.com/KirkDiggler/debate-api/internal/repositories/debates"
	"github.com/KirkDiggler/debate-api/internal/testutils"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	ctx     context.Context
	clock   *clock.Fixed
	repo    debates.Repository
	cleanup func()
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.clock = clock.NewFixed(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC))

	client, cleanup := testutils.CreateTestRedisClient(s.T())
	s.cleanup = cleanup

	repo, err := debates.NewRedisRepository(&debates.Config{
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

func (s *RedisRepositoryTestSuite) sampleResult(debateID string) *entities.DebateResult {
	return &entities.DebateResult{
		DebateID: debateID,
		Winner:   "player_a",
		Rounds: []entities.RoundPair{
			{
				A: &entities.RoundResult{PlayerID: "player_a", DamageToOpponent: 12},
				B: &entities.RoundResult{PlayerID: "player_b", Fumbled: true},
			},
			{
				A: &entities.RoundResult{PlayerID: "player_a", DamageToOpponent: 7},
				B: &entities.RoundResult{PlayerID: "player_b", DamageToOpponent: 3},
			},
		},
		FinalHealth: map[string]int{"player_a": 9, "player_b": 0},
	}
}

func (s *RedisRepositoryTestSuite) TestCreateAndGet() {
	result := s.sampleResult("debate_123")

	created, err := s.repo.Create(s.ctx, debates.CreateInput{Result: result})
	s.Require().NoError(err)
	s.Equal(s.clock.Now(), created.Record.SavedAt)
	s.Equal(s.clock.Now().Add(24*time.Hour), created.Record.ExpiresAt, "default TTL is 24 hours")

	got, err := s.repo.Get(s.ctx, debates.GetInput{DebateID: "debate_123"})
	s.Require().NoError(err)

	stored := got.Record.Result
	s.Equal("debate_123", stored.DebateID)
	s.Equal("player_a", stored.Winner)
	s.Require().Len(stored.Rounds, 2)
	s.True(stored.Rounds[0].B.Fumbled)
	s.Equal(12, stored.Rounds[0].A.DamageToOpponent)
	s.Equal(map[string]int{"player_a": 9, "player_b": 0}, stored.FinalHealth)
}

func (s *RedisRepositoryTestSuite) TestCreate_CustomTTL() {
	created, err := s.repo.Create(s.ctx, debates.CreateInput{
		Result: s.sampleResult("debate_ttl"),
		TTL:    time.Hour,
	})
	s.Require().NoError(err)
	s.Equal(s.clock.Now().Add(time.Hour), created.Record.ExpiresAt)
}

func (s *RedisRepositoryTestSuite) TestCreate_Validation() {
	_, err := s.repo.Create(s.ctx, debates.CreateInput{})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Create(s.ctx, debates.CreateInput{Result: &entities.DebateResult{}})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *RedisRepositoryTestSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, debates.GetInput{DebateID: "debate_missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestGet_ExpiredRecordIsCleanedUp() {
	_, err := s.repo.Create(s.ctx, debates.CreateInput{
		Result: s.sampleResult("debate_stale"),
		TTL:    time.Hour,
	})
	s.Require().NoError(err)

	// Miniredis does not advance its own clock, so the record survives
	// past its TTL; the repository's expiry check still rejects it.
	s.clock.Advance(2 * time.Hour)

	_, err = s.repo.Get(s.ctx, debates.GetInput{DebateID: "debate_stale"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete_CountsRounds() {
	_, err := s.repo.Create(s.ctx, debates.CreateInput{Result: s.sampleResult("debate_del")})
	s.Require().NoError(err)

	out, err := s.repo.Delete(s.ctx, debates.DeleteInput{DebateID: "debate_del"})
	s.Require().NoError(err)
	s.Equal(int32(2), out.RoundsDeleted)

	_, err = s.repo.Get(s.ctx, debates.GetInput{DebateID: "debate_del"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))
}

func (s *RedisRepositoryTestSuite) TestDelete_MissingRecordIsZero() {
	out, err := s.repo.Delete(s.ctx, debates.DeleteInput{DebateID: "debate_missing"})
	s.Require().NoError(err)
	s.Equal(int32(0), out.RoundsDeleted)
}
