package debate_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/debate-api/internal/engine"
	"github.com/KirkDiggler/debate-api/internal/engine/archetypes"
	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/errors"
	"github.com/KirkDiggler/debate-api/internal/orchestrators/debate"
	"github.com/KirkDiggler/debate-api/internal/pkg/idgen"
	"github.com/KirkDiggler/debate-api/internal/repositories/debates"
	debatesmock "github.com/KirkDiggler/debate-api/internal/repositories/debates/mock"
	"github.com/KirkDiggler/debate-api/internal/testutils"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller
	ctx  context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.ctx = context.Background()
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) newService(roller dice.Roller, repo debates.Repository) debate.Service {
	svc, err := debate.NewOrchestrator(&debate.Config{
		Roller:      roller,
		IDGenerator: idgen.NewPrefixed("debate"),
		DebateRepo:  repo,
	})
	s.Require().NoError(err)
	return svc
}

func (s *OrchestratorTestSuite) newPlayer(archetypeID, id string, hooks ...string) *entities.Player {
	arch, err := archetypes.Get(archetypeID)
	s.Require().NoError(err)
	player := arch.NewPlayer(id, id)
	player.Emotions = hooks
	return player
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_RequiresDependencies() {
	_, err := debate.NewOrchestrator(&debate.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Roller")
	s.Contains(err.Error(), "IDGenerator")
}

func (s *OrchestratorTestSuite) TestPlayDebate_RequiresInput() {
	svc := s.newService(testutils.NewScriptedRoller(), nil)

	_, err := svc.PlayDebate(s.ctx, nil)
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPlayDebate_RejectsUnknownArchetype() {
	svc := s.newService(testutils.NewScriptedRoller(), nil)

	bogus := entities.NewPlayer("p1", "p1", nil)
	bogus.Archetype = "the-sophist"

	_, err := svc.PlayDebate(s.ctx, &debate.PlayDebateInput{
		PlayerA: bogus,
		PlayerB: s.newPlayer(archetypes.TabulaRasa, "p2"),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestPlayDebate_RequiresBothPlayers() {
	svc := s.newService(testutils.NewScriptedRoller(), nil)

	_, err := svc.PlayDebate(s.ctx, &debate.PlayDebateInput{
		PlayerA: s.newPlayer(archetypes.TabulaRasa, "p1"),
	})
	s.Require().Error(err)
	s.Contains(err.Error(), "PlayerB")
}

func (s *OrchestratorTestSuite) TestPlayDebate_KnockoutEndsEarly() {
	// A rolls six sixes and banks the six-of-a-kind; B's six ones bank
	// but block nothing, while A's sixes block everything.
	roller := testutils.NewScriptedRoller(
		6, 6, 6, 6, 6, 6,
		1, 1, 1, 1, 1, 1,
	)
	svc := s.newService(roller, nil)

	a := s.newPlayer(archetypes.TabulaRasa, "player_a")
	b := s.newPlayer(archetypes.TabulaRasa, "player_b")

	out, err := svc.PlayDebate(s.ctx, &debate.PlayDebateInput{PlayerA: a, PlayerB: b})
	s.Require().NoError(err)

	result := out.Result
	s.Equal("player_a", result.Winner)
	s.Len(result.Rounds, 1, "knockout should end the debate before the round cap")
	s.Equal(0, result.FinalHealth["player_b"])
	s.Equal(entities.MaxHealth, result.FinalHealth["player_a"])

	round := result.Rounds[0]
	s.Equal(36, round.A.DamageToOpponent)
	s.Equal(0, round.B.DamageToOpponent)
	s.Equal(1, round.A.InsultsBanked)
	s.Equal(0, roller.Remaining())
}

func (s *OrchestratorTestSuite) TestPlayDebate_KnockoutResetsTokens() {
	// Same knockout script as above; the winner enters holding neurosis
	// and forgiveness. The cascade ticks consume one of each, and debate
	// end must zero whatever remains even though the round cap was never
	// reached.
	roller := testutils.NewScriptedRoller(
		6, 6, 6, 6, 6, 6,
		1, 1, 1, 1, 1, 1,
	)
	svc := s.newService(roller, nil)

	a := s.newPlayer(archetypes.TabulaRasa, "player_a")
	b := s.newPlayer(archetypes.TabulaRasa, "player_b")
	a.AddToken(entities.TokenNeurosis, 2)
	a.AddToken(entities.TokenForgiveness, 2)

	out, err := svc.PlayDebate(s.ctx, &debate.PlayDebateInput{PlayerA: a, PlayerB: b})
	s.Require().NoError(err)

	s.Equal("player_a", out.Result.Winner)
	s.Len(out.Result.Rounds, 1)
	s.Equal(0, a.TokenCount(entities.TokenNeurosis))
	s.Equal(0, a.TokenCount(entities.TokenForgiveness))
}

func (s *OrchestratorTestSuite) TestPlayRound_FumbleConvertsRegretToDamage() {
	// Both sides roll a 1 on their aporic die and fumble; a double
	// fumble skips the clash and the token cascade entirely.
	roller := testutils.NewScriptedRoller(
		1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1,
	)
	svc := s.newService(roller, nil)

	a := s.newPlayer(archetypes.Absurdist, "player_a")
	b := s.newPlayer(archetypes.Absurdist, "player_b")
	a.AddToken(entities.TokenRegret, 3)

	out, err := svc.PlayRound(s.ctx, &debate.PlayRoundInput{PlayerA: a, PlayerB: b})
	s.Require().NoError(err)

	pair := out.Results
	s.True(pair.A.Fumbled)
	s.True(pair.B.Fumbled)
	s.Equal(entities.MaxHealth-3, a.Health, "held regret converts 1:1 into damage")
	s.Equal(0, a.TokenCount(entities.TokenRegret))
	s.Equal(entities.MaxHealth, b.Health)
	s.Equal(0, pair.A.DamageToOpponent)
	s.Equal(0, pair.B.DamageToOpponent)
}

func (s *OrchestratorTestSuite) TestPlayRound_BustProtectionAbsorbsForcedFumble() {
	roller := testutils.NewScriptedRoller(
		1, 2, 2, 2, 2, 2,
		3, 3, 3, 3, 3, 3,
	)
	svc := s.newService(roller, nil)

	a := s.newPlayer(archetypes.Absurdist, "player_a")
	b := s.newPlayer(archetypes.TabulaRasa, "player_b")
	a.BustProtection = true

	out, err := svc.PlayRound(s.ctx, &debate.PlayRoundInput{PlayerA: a, PlayerB: b})
	s.Require().NoError(err)

	s.False(out.Results.A.Fumbled)
	s.False(a.BustProtection, "protection is consumed by the absorbed fumble")
	s.Equal(1, out.Results.A.InsultsBanked)
}

func (s *OrchestratorTestSuite) TestPlayRound_PairedPilferSixesStealNextRound() {
	// Round one: two pilfer sixes arm the steal. Round two: the steal
	// takes B's highest value before banking.
	roller := testutils.NewScriptedRoller(
		// Round 1: A pilfer dice land on sixes, B banks four fours.
		5, 5, 4, 4, 4, 4,
		4, 4, 4, 4, 4, 4,
		// Round 2: A rolls all ones, B's 5 is stolen before banking.
		1, 1, 1, 1, 1, 1,
		5, 3, 2, 2, 2, 2,
	)
	svc := s.newService(roller, nil)

	a := s.newPlayer(archetypes.Machiavellian, "player_a")
	b := s.newPlayer(archetypes.TabulaRasa, "player_b")

	_, err := svc.PlayRound(s.ctx, &debate.PlayRoundInput{PlayerA: a, PlayerB: b})
	s.Require().NoError(err)
	s.True(a.PendingSteal)

	out, err := svc.PlayRound(s.ctx, &debate.PlayRoundInput{PlayerA: a, PlayerB: b, Round: 1})
	s.Require().NoError(err)
	s.False(a.PendingSteal)

	// B lost the 5: the best left is the four twos.
	s.Equal([]int{2, 2, 2, 2}, engine.FlattenInsults(out.Results.B.Insults))
	s.Equal([]int{1, 1, 1, 1, 1, 1}, engine.FlattenInsults(out.Results.A.Insults))
	s.Equal(0, roller.Remaining())
}

func (s *OrchestratorTestSuite) TestPlayRound_TokenCascadeAppliesInOrder() {
	// A's spite and inebriation dice both land sixes: 1 bonus damage,
	// 1 neurosis for B (granted then ticked), and 1 regret for A.
	roller := testutils.NewScriptedRoller(
		5, 5, 1, 2, 3, 4,
		2, 2, 2, 2, 2, 2,
	)
	svc := s.newService(roller, nil)

	a := s.newPlayer(archetypes.Fatalist, "player_a")
	b := s.newPlayer(archetypes.TabulaRasa, "player_b")

	out, err := svc.PlayRound(s.ctx, &debate.PlayRoundInput{PlayerA: a, PlayerB: b})
	s.Require().NoError(err)

	pair := out.Results
	s.Equal(7, pair.A.DamageToOpponent, "straight 1-4 against six twos")
	s.Equal(6, pair.B.DamageToOpponent)

	// B: 12 - 7 clash - 1 spite - 1 neurosis tick.
	s.Equal(3, b.Health)
	s.Equal(entities.MaxHealth-6, a.Health)
	s.Equal(1, a.TokenCount(entities.TokenRegret))
	s.Equal(0, b.TokenCount(entities.TokenNeurosis), "granted neurosis is consumed by the tick")
}

func (s *OrchestratorTestSuite) TestPlayDebate_RoundCapDecidesByHealthAndResetsTokens() {
	roller := testutils.NewScriptedRoller(
		1, 1, 2, 2, 3, 3,
		1, 1, 2, 2, 3, 4,
	)
	svc := s.newService(roller, nil)

	a := s.newPlayer(archetypes.TabulaRasa, "player_a")
	b := s.newPlayer(archetypes.TabulaRasa, "player_b")
	a.AddToken(entities.TokenNeurosis, 2)
	b.AddToken(entities.TokenForgiveness, 2)

	out, err := svc.PlayDebate(s.ctx, &debate.PlayDebateInput{
		PlayerA:   a,
		PlayerB:   b,
		MaxRounds: 1,
	})
	s.Require().NoError(err)

	result := out.Result
	s.Equal("player_b", result.Winner)
	s.Len(result.Rounds, 1)
	// A: 12 - 4 clash - 1 neurosis tick.
	s.Equal(7, result.FinalHealth["player_a"])
	s.Equal(entities.MaxHealth, result.FinalHealth["player_b"])

	// Leftover neurosis and forgiveness do not survive the debate.
	s.Equal(0, a.TokenCount(entities.TokenNeurosis))
	s.Equal(0, b.TokenCount(entities.TokenForgiveness))
}

func (s *OrchestratorTestSuite) TestPlayRound_AfterRollHookImprovesPool() {
	// Cognitive dissonance flips the lone 1 to a 6, upgrading five of a
	// kind into six. The unknown hook name is skipped without error.
	roller := testutils.NewScriptedRoller(
		6, 6, 6, 6, 6, 1,
		1, 1, 1, 1, 1, 1,
	)
	svc := s.newService(roller, nil)

	a := s.newPlayer(archetypes.TabulaRasa, "player_a", "cognitive dissonance", "ennui")
	b := s.newPlayer(archetypes.TabulaRasa, "player_b")

	out, err := svc.PlayRound(s.ctx, &debate.PlayRoundInput{PlayerA: a, PlayerB: b})
	s.Require().NoError(err)

	s.Equal([]int{6, 6, 6, 6, 6, 6}, engine.FlattenInsults(out.Results.A.Insults))
	s.Equal(36, out.Results.A.DamageToOpponent)
}

func (s *OrchestratorTestSuite) TestPlayDebate_PersistsResult() {
	repo := debatesmock.NewMockRepository(s.ctrl)

	var saved *entities.DebateResult
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input debates.CreateInput) (*debates.CreateOutput, error) {
			saved = input.Result
			return &debates.CreateOutput{}, nil
		})

	roller := testutils.NewScriptedRoller(
		6, 6, 6, 6, 6, 6,
		1, 1, 1, 1, 1, 1,
	)
	svc := s.newService(roller, repo)

	out, err := svc.PlayDebate(s.ctx, &debate.PlayDebateInput{
		PlayerA: s.newPlayer(archetypes.TabulaRasa, "player_a"),
		PlayerB: s.newPlayer(archetypes.TabulaRasa, "player_b"),
	})
	s.Require().NoError(err)
	s.Require().NotNil(saved)
	s.Equal(out.Result.DebateID, saved.DebateID)
}

func (s *OrchestratorTestSuite) TestPlayDebate_RepositoryFailureIsNotFatal() {
	repo := debatesmock.NewMockRepository(s.ctrl)
	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, errors.Internal("connection refused"))

	roller := testutils.NewScriptedRoller(
		6, 6, 6, 6, 6, 6,
		1, 1, 1, 1, 1, 1,
	)
	svc := s.newService(roller, repo)

	out, err := svc.PlayDebate(s.ctx, &debate.PlayDebateInput{
		PlayerA: s.newPlayer(archetypes.TabulaRasa, "player_a"),
		PlayerB: s.newPlayer(archetypes.TabulaRasa, "player_b"),
	})
	s.Require().NoError(err)
	s.Equal("player_a", out.Result.Winner)
}
