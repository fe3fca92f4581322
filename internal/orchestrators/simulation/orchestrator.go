// Package simulation implements bulk match and tournament runs over
// the debate orchestrator, producing balance statistics per archetype
// pairing.
package simulation

import (
	"context"
	"log/slog"
	"math"

	"github.com/KirkDiggler/debate-api/internal/engine/archetypes"
	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/errors"
	"github.com/KirkDiggler/debate-api/internal/orchestrators/debate"
	"github.com/KirkDiggler/debate-api/internal/pkg/idgen"
	"github.com/KirkDiggler/debate-api/internal/repositories/simulations"
)

const (
	// DefaultMatches is the per-pairing match count when none is given.
	DefaultMatches = 1000

	// DefaultTournamentMatches is the per-pairing count in round-robin
	// tournaments.
	DefaultTournamentMatches = 100

	// sampleDetailCount caps how many per-match records are retained.
	sampleDetailCount = 10
)

// Service defines the interface for simulation operations
type Service interface {
	// SimulateMatches runs repeated debates between two archetypes
	SimulateMatches(ctx context.Context, input *SimulateMatchesInput) (*SimulateMatchesOutput, error)

	// SimulateCustomDice pits a custom-face die set against a catalog
	// archetype
	SimulateCustomDice(ctx context.Context, input *SimulateCustomDiceInput) (*SimulateCustomDiceOutput, error)

	// SimulateTournament runs a round-robin over a set of archetypes
	SimulateTournament(ctx context.Context, input *SimulateTournamentInput) (*SimulateTournamentOutput, error)
}

// Config holds the dependencies for the simulation orchestrator
type Config struct {
	Debates     debate.Service
	IDGenerator idgen.Generator

	// Summaries persists pairing summaries. Optional.
	Summaries simulations.Repository
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Debates == nil {
		vb.RequiredField("Debates")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}

	return vb.Build()
}

type orchestrator struct {
	debates   debate.Service
	idGen     idgen.Generator
	summaries simulations.Repository
}

// NewOrchestrator creates a new simulation orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		debates:   cfg.Debates,
		idGen:     cfg.IDGenerator,
		summaries: cfg.Summaries,
	}, nil
}

// SimulateMatchesInput contains parameters for a pairing simulation
type SimulateMatchesInput struct {
	ArchetypeA string
	ArchetypeB string

	// Matches is the number of debates to run; zero means
	// DefaultMatches.
	Matches int

	// MaxRounds is passed through to each debate; zero means
	// debate.StressMaxRounds.
	MaxRounds int
}

// SimulateMatchesOutput contains the aggregated pairing statistics
type SimulateMatchesOutput struct {
	// SimulationID identifies the persisted summary; empty when no
	// summary repository is configured.
	SimulationID string

	Stats *entities.MatchStats
}

// SimulateCustomDiceInput contains parameters for a custom-die trial
type SimulateCustomDiceInput struct {
	// Name labels the custom die in results.
	Name string

	// Faces are the custom die's six faces; two copies replace two
	// normal dice on the trial side.
	Faces [6]int

	// Opponent is the catalog archetype to play against; empty means
	// TabulaRasa.
	Opponent string

	Matches   int
	MaxRounds int
}

// SimulateCustomDiceOutput contains the aggregated trial statistics
type SimulateCustomDiceOutput struct {
	SimulationID string

	Stats *entities.MatchStats
}

// SimulateTournamentInput contains parameters for a round-robin run
type SimulateTournamentInput struct {
	// Archetypes to enter; empty means the full catalog.
	Archetypes []string

	// MatchesPerPair is the match count per pairing; zero means
	// DefaultTournamentMatches.
	MatchesPerPair int
}

// SimulateTournamentOutput contains per-pairing stats and overall
// win rates
type SimulateTournamentOutput struct {
	Archetypes []string

	// Pairings holds stats keyed by [archetypeA][archetypeB], both
	// orientations populated.
	Pairings map[string]map[string]*entities.MatchStats

	// WinRates is each archetype's win share across all its matches.
	WinRates map[string]float64

	TotalMatches int
}

// SimulateMatches runs repeated debates between two archetypes
func (o *orchestrator) SimulateMatches(ctx context.Context, input *SimulateMatchesInput) (*SimulateMatchesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	archA, err := archetypes.Get(input.ArchetypeA)
	if err != nil {
		return nil, err
	}
	archB, err := archetypes.Get(input.ArchetypeB)
	if err != nil {
		return nil, err
	}

	stats, err := o.runMatches(ctx, archA, archB, input.Matches, input.MaxRounds)
	if err != nil {
		return nil, err
	}

	return &SimulateMatchesOutput{
		SimulationID: o.persistSummary(ctx, stats),
		Stats:        stats,
	}, nil
}

// SimulateCustomDice pits a custom-face die set against a catalog
// archetype
func (o *orchestrator) SimulateCustomDice(ctx context.Context, input *SimulateCustomDiceInput) (*SimulateCustomDiceOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Name == "" {
		return nil, errors.InvalidArgument("die name is required")
	}

	opponentID := input.Opponent
	if opponentID == "" {
		opponentID = archetypes.TabulaRasa
	}
	opponent, err := archetypes.Get(opponentID)
	if err != nil {
		return nil, err
	}

	custom := archetypes.Custom(input.Name, input.Faces)

	stats, err := o.runMatches(ctx, custom, opponent, input.Matches, input.MaxRounds)
	if err != nil {
		return nil, err
	}
	stats.ArchetypeA = input.Name

	return &SimulateCustomDiceOutput{
		SimulationID: o.persistSummary(ctx, stats),
		Stats:        stats,
	}, nil
}

// SimulateTournament runs a round-robin over a set of archetypes
func (o *orchestrator) SimulateTournament(ctx context.Context, input *SimulateTournamentInput) (*SimulateTournamentOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	entrants := input.Archetypes
	if len(entrants) == 0 {
		entrants = archetypes.List()
	}
	if len(entrants) < 2 {
		return nil, errors.InvalidArgument("at least two archetypes are required")
	}

	matchesPerPair := input.MatchesPerPair
	if matchesPerPair == 0 {
		matchesPerPair = DefaultTournamentMatches
	}

	output := &SimulateTournamentOutput{
		Archetypes: entrants,
		Pairings:   make(map[string]map[string]*entities.MatchStats),
		WinRates:   make(map[string]float64),
	}
	for _, id := range entrants {
		output.Pairings[id] = make(map[string]*entities.MatchStats)
	}

	for i, idA := range entrants {
		for _, idB := range entrants[i+1:] {
			out, err := o.SimulateMatches(ctx, &SimulateMatchesInput{
				ArchetypeA: idA,
				ArchetypeB: idB,
				Matches:    matchesPerPair,
			})
			if err != nil {
				return nil, errors.Wrapf(err, "pairing %s vs %s failed", idA, idB)
			}

			output.Pairings[idA][idB] = out.Stats
			output.Pairings[idB][idA] = invertStats(out.Stats)
			output.TotalMatches += matchesPerPair
		}
	}

	for _, id := range entrants {
		wins, total := 0, 0
		for other, stats := range output.Pairings[id] {
			if other == id {
				continue
			}
			wins += stats.WinsA
			total += stats.WinsA + stats.WinsB + stats.Ties
		}
		if total > 0 {
			output.WinRates[id] = float64(wins) / float64(total)
		}
	}

	return output, nil
}

// runMatches plays the given number of debates between two archetypes
// and aggregates the outcomes.
func (o *orchestrator) runMatches(ctx context.Context, archA, archB *archetypes.Archetype, matches, maxRounds int) (*entities.MatchStats, error) {
	if matches == 0 {
		matches = DefaultMatches
	}
	if maxRounds == 0 {
		// Bulk runs use the stress cap so attrition pairings still
		// terminate by knockout rather than the competitive round cap.
		maxRounds = debate.StressMaxRounds
	}

	stats := &entities.MatchStats{
		ArchetypeA: archA.ID,
		ArchetypeB: archB.ID,
		Matches:    matches,
	}

	totalRounds := 0
	healthDiffs := make([]float64, 0, matches)

	for i := 0; i < matches; i++ {
		if err := ctx.Err(); err != nil {
			return nil, errors.WrapWithCode(err, errors.CodeCanceled, "simulation canceled")
		}

		// Fresh players each match; token and flag state never leaks
		// between debates.
		playerA := archA.NewPlayer(o.idGen.Generate(), archA.Name)
		playerB := archB.NewPlayer(o.idGen.Generate(), archB.Name)

		out, err := o.debates.PlayDebate(ctx, &debate.PlayDebateInput{
			PlayerA:   playerA,
			PlayerB:   playerB,
			MaxRounds: maxRounds,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "match %d failed", i+1)
		}
		result := out.Result

		totalRounds += len(result.Rounds)
		healthDiffs = append(healthDiffs,
			float64(result.FinalHealth[playerA.ID]-result.FinalHealth[playerB.ID]))

		switch result.Winner {
		case playerA.ID:
			stats.WinsA++
		case playerB.ID:
			stats.WinsB++
		default:
			stats.Ties++
		}

		if i < sampleDetailCount {
			stats.Details = append(stats.Details, entities.MatchDetail{
				Match:       i + 1,
				Winner:      result.Winner,
				FinalHealth: result.FinalHealth,
				Rounds:      len(result.Rounds),
			})
		}
	}

	stats.WinRateA = float64(stats.WinsA) / float64(matches)
	stats.WinRateB = float64(stats.WinsB) / float64(matches)
	stats.TieRate = float64(stats.Ties) / float64(matches)
	stats.AvgRounds = float64(totalRounds) / float64(matches)
	stats.AvgHealthDiff = mean(healthDiffs)
	stats.StdHealthDiff = stddev(healthDiffs)

	slog.Info("Pairing simulated",
		"archetype_a", stats.ArchetypeA,
		"archetype_b", stats.ArchetypeB,
		"matches", matches,
		"win_rate_a", stats.WinRateA,
		"win_rate_b", stats.WinRateB,
	)

	return stats, nil
}

// persistSummary stores the stats when a summary repository is
// configured. Persistence failures are logged, never propagated.
func (o *orchestrator) persistSummary(ctx context.Context, stats *entities.MatchStats) string {
	if o.summaries == nil {
		return ""
	}

	simulationID := o.idGen.Generate()
	_, err := o.summaries.Create(ctx, simulations.CreateInput{
		SimulationID: simulationID,
		Stats:        stats,
	})
	if err != nil {
		slog.Warn("Failed to persist simulation summary",
			"simulation_id", simulationID,
			"error", err,
		)
		return ""
	}
	return simulationID
}

// invertStats mirrors a pairing so it reads from the other archetype's
// perspective. Match details are not mirrored.
func invertStats(s *entities.MatchStats) *entities.MatchStats {
	return &entities.MatchStats{
		ArchetypeA:    s.ArchetypeB,
		ArchetypeB:    s.ArchetypeA,
		Matches:       s.Matches,
		WinsA:         s.WinsB,
		WinsB:         s.WinsA,
		Ties:          s.Ties,
		WinRateA:      s.WinRateB,
		WinRateB:      s.WinRateA,
		TieRate:       s.TieRate,
		AvgRounds:     s.AvgRounds,
		AvgHealthDiff: -s.AvgHealthDiff,
		StdHealthDiff: s.StdHealthDiff,
	}
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	sum := 0.0
	for _, x := range xs {
		sum += x
	}
	return sum / float64(len(xs))
}

// stddev is the sample standard deviation; zero for fewer than two
// observations.
func stddev(xs []float64) float64 {
	if len(xs) < 2 {
		return 0
	}
	m := mean(xs)
	sum := 0.0
	for _, x := range xs {
		d := x - m
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(xs)-1))
}
