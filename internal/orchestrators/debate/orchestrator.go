// Package debate implements the debate orchestrator that sequences
// rolling, behavior hooks, banking, clash damage, and token cascades.
package debate

//go:generate mockgen -destination=mock/mock_service.go -package=debatemock github.com/KirkDiggler/debate-api/internal/orchestrators/debate Service

import (
	"context"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/debate-api/internal/engine"
	"github.com/KirkDiggler/debate-api/internal/engine/archetypes"
	"github.com/KirkDiggler/debate-api/internal/engine/emotions"
	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/errors"
	"github.com/KirkDiggler/debate-api/internal/pkg/idgen"
	"github.com/KirkDiggler/debate-api/internal/repositories/debates"
)

const (
	// DefaultMaxRounds is the standard round cap for competitive play.
	DefaultMaxRounds = 5

	// StressMaxRounds is the cap used by long-running simulations.
	StressMaxRounds = 50
)

// Event topics published by the orchestrator when an event bus is
// configured.
const (
	EventDebateStarted = "debate.started"
	EventRoundResolved = "debate.round_resolved"
	EventDebateEnded   = "debate.ended"
)

// Service defines the interface for debate operations
type Service interface {
	// PlayDebate runs a full debate between two players
	PlayDebate(ctx context.Context, input *PlayDebateInput) (*PlayDebateOutput, error)

	// PlayRound resolves a single round between two players
	PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error)
}

// Config holds the dependencies for the debate orchestrator
type Config struct {
	Roller      dice.Roller
	IDGenerator idgen.Generator

	// CommitPolicy overrides the default banking stop heuristic.
	// Optional.
	CommitPolicy engine.CommitPolicy

	// EventBus receives debate lifecycle events. Optional.
	EventBus events.EventBus

	// DebateRepo persists finished debates. Optional.
	DebateRepo debates.Repository

	// ResultTTL is how long persisted results live; zero uses the
	// repository default.
	ResultTTL time.Duration
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	roller    dice.Roller
	idGen     idgen.Generator
	banker    *engine.Banker
	eventBus  events.EventBus
	repo      debates.Repository
	resultTTL time.Duration
}

// NewOrchestrator creates a new debate orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	banker, err := engine.NewBanker(&engine.BankerConfig{
		Roller:       cfg.Roller,
		CommitPolicy: cfg.CommitPolicy,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create banker")
	}

	return &orchestrator{
		roller:    cfg.Roller,
		idGen:     cfg.IDGenerator,
		banker:    banker,
		eventBus:  cfg.EventBus,
		repo:      cfg.DebateRepo,
		resultTTL: cfg.ResultTTL,
	}, nil
}

// PlayDebateInput contains parameters for running a debate
type PlayDebateInput struct {
	PlayerA *entities.Player
	PlayerB *entities.Player

	// MaxRounds caps the debate length; zero means DefaultMaxRounds.
	MaxRounds int
}

// PlayDebateOutput contains the result of a completed debate
type PlayDebateOutput struct {
	Result *entities.DebateResult
}

// PlayRoundInput contains parameters for resolving one round
type PlayRoundInput struct {
	PlayerA *entities.Player
	PlayerB *entities.Player

	// Round is the zero-based round index, used by behavior hooks.
	Round int
}

// PlayRoundOutput contains both players' round results
type PlayRoundOutput struct {
	Results *entities.RoundPair
}

// PlayDebate runs a full debate between two players
func (o *orchestrator) PlayDebate(ctx context.Context, input *PlayDebateInput) (*PlayDebateOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.newDebateState(input.PlayerA, input.PlayerB)
	if err != nil {
		return nil, err
	}

	maxRounds := input.MaxRounds
	if maxRounds == 0 {
		maxRounds = DefaultMaxRounds
	}

	debateID := o.idGen.Generate()

	slog.Info("Debate started",
		"debate_id", debateID,
		"player_a", state.a.player.Name,
		"player_b", state.b.player.Name,
		"max_rounds", maxRounds,
	)

	state.invokeBoth(emotions.StageDebateStart, 0, nil)
	o.publish(ctx, EventDebateStarted, state.a.player, state.b.player)

	result := &entities.DebateResult{
		DebateID: debateID,
	}

	decided := false
	for round := 0; round < maxRounds && !decided; round++ {
		pair := o.resolveRound(state, round)
		result.Rounds = append(result.Rounds, *pair)
		o.publish(ctx, EventRoundResolved, state.a.player, state.b.player)

		result.Winner, decided = checkKnockout(state.a.player, state.b.player)
	}

	if !decided {
		result.Winner = winnerByHealth(state.a.player, state.b.player)
	}

	state.invokeBoth(emotions.StageDebateEnd, len(result.Rounds), nil)

	// Neurosis and forgiveness do not carry across debates, however
	// the debate ends.
	for _, p := range []*entities.Player{state.a.player, state.b.player} {
		p.ClearTokens(entities.TokenNeurosis)
		p.ClearTokens(entities.TokenForgiveness)
	}

	result.FinalHealth = map[string]int{
		state.a.player.ID: state.a.player.Health,
		state.b.player.ID: state.b.player.Health,
	}

	slog.Info("Debate ended",
		"debate_id", debateID,
		"winner", result.Winner,
		"rounds", len(result.Rounds),
	)
	o.publish(ctx, EventDebateEnded, state.a.player, state.b.player)

	if o.repo != nil {
		_, err := o.repo.Create(ctx, debates.CreateInput{Result: result, TTL: o.resultTTL})
		if err != nil {
			slog.Warn("Failed to persist debate result",
				"debate_id", debateID,
				"error", err,
			)
		}
	}

	return &PlayDebateOutput{Result: result}, nil
}

// PlayRound resolves a single round between two players
func (o *orchestrator) PlayRound(ctx context.Context, input *PlayRoundInput) (*PlayRoundOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	state, err := o.newDebateState(input.PlayerA, input.PlayerB)
	if err != nil {
		return nil, err
	}

	pair := o.resolveRound(state, input.Round)
	o.publish(ctx, EventRoundResolved, state.a.player, state.b.player)

	return &PlayRoundOutput{Results: pair}, nil
}

// publish emits a lifecycle event when a bus is configured. Publish
// failures are logged, never propagated.
func (o *orchestrator) publish(ctx context.Context, topic string, source, target *entities.Player) {
	if o.eventBus == nil {
		return
	}
	evt := events.NewGameEvent(topic, source, target)
	if err := o.eventBus.Publish(ctx, evt); err != nil {
		slog.Warn("Failed to publish event", "topic", topic, "error", err)
	}
}

// checkKnockout reports the winner when at least one player is at zero
// health. Simultaneous knockouts tie.
func checkKnockout(a, b *entities.Player) (string, bool) {
	switch {
	case a.Health <= 0 && b.Health <= 0:
		return entities.WinnerTie, true
	case a.Health <= 0:
		return b.ID, true
	case b.Health <= 0:
		return a.ID, true
	default:
		return "", false
	}
}

// winnerByHealth breaks a round-cap finish by remaining health.
func winnerByHealth(a, b *entities.Player) string {
	switch {
	case a.Health > b.Health:
		return a.ID
	case b.Health > a.Health:
		return b.ID
	default:
		return entities.WinnerTie
	}
}

// newDebateState validates both players, resolves their archetypes,
// and instantiates their behavior hooks.
func (o *orchestrator) newDebateState(playerA, playerB *entities.Player) (*debateState, error) {
	sideA, err := o.newSide(playerA, "PlayerA")
	if err != nil {
		return nil, err
	}
	sideB, err := o.newSide(playerB, "PlayerB")
	if err != nil {
		return nil, err
	}
	return &debateState{orch: o, a: sideA, b: sideB}, nil
}

func (o *orchestrator) newSide(player *entities.Player, field string) (*side, error) {
	if player == nil {
		return nil, errors.InvalidArgumentf("%s is required", field)
	}

	archetype, err := archetypes.Get(player.Archetype)
	if err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInvalidArgument,
			"unknown archetype for player %s", player.ID)
	}

	hooks, unknown := emotions.CreateAll(player.Emotions)
	for _, name := range unknown {
		slog.Warn("Unknown behavior hook, skipping",
			"player_id", player.ID,
			"hook", name,
		)
	}

	return &side{player: player, archetype: archetype, hooks: hooks}, nil
}
