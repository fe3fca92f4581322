package main

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/debate-api/internal/engine/archetypes"
	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/orchestrators/debate"
	"github.com/KirkDiggler/debate-api/internal/orchestrators/simulation"
	"github.com/KirkDiggler/debate-api/internal/pkg/idgen"
)

var (
	simArchetypeA string
	simArchetypeB string
	simMatches    int
	simMaxRounds  int

	tournamentEntrants []string
	tournamentMatches  int

	trialName     string
	trialFaces    []int
	trialOpponent string
	trialMatches  int
)

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Simulate repeated debates between two archetypes",
	RunE:  runSimulate,
}

var tournamentCmd = &cobra.Command{
	Use:   "tournament",
	Short: "Run a round-robin tournament across archetypes",
	RunE:  runTournament,
}

var trialCmd = &cobra.Command{
	Use:   "trial",
	Short: "Trial a custom-face die set against a catalog archetype",
	RunE:  runTrial,
}

var archetypesCmd = &cobra.Command{
	Use:   "archetypes",
	Short: "List the archetype catalog",
	Run: func(cmd *cobra.Command, args []string) {
		for _, id := range archetypes.List() {
			cmd.Println(id)
		}
	},
}

func init() {
	simulateCmd.Flags().StringVar(&simArchetypeA, "archetype-a", archetypes.TabulaRasa, "first archetype")
	simulateCmd.Flags().StringVar(&simArchetypeB, "archetype-b", archetypes.Euphoria, "second archetype")
	simulateCmd.Flags().IntVar(&simMatches, "matches", simulation.DefaultMatches, "matches to run")
	simulateCmd.Flags().IntVar(&simMaxRounds, "max-rounds", debate.DefaultMaxRounds, "round cap per debate")

	tournamentCmd.Flags().StringSliceVar(&tournamentEntrants, "archetypes", nil, "entrants (default: full catalog)")
	tournamentCmd.Flags().IntVar(&tournamentMatches, "matches-per-pair", simulation.DefaultTournamentMatches, "matches per pairing")

	trialCmd.Flags().StringVar(&trialName, "name", "", "label for the custom die")
	trialCmd.Flags().IntSliceVar(&trialFaces, "faces", nil, "six face values, 0 for blank")
	trialCmd.Flags().StringVar(&trialOpponent, "opponent", archetypes.TabulaRasa, "catalog archetype to play against")
	trialCmd.Flags().IntVar(&trialMatches, "matches", simulation.DefaultMatches, "matches to run")
}

// newSimulationService wires a simulation orchestrator over an
// in-memory debate service. Per-debate persistence is skipped for bulk
// runs; pairing summaries are stored when Redis is configured.
func newSimulationService() (simulation.Service, error) {
	cfg, err := loadEnvConfig()
	if err != nil {
		return nil, err
	}
	summaries, err := cfg.newSimulationRepo()
	if err != nil {
		return nil, err
	}

	debateSvc, err := debate.NewOrchestrator(&debate.Config{
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewPrefixed("debate"),
	})
	if err != nil {
		return nil, err
	}

	return simulation.NewOrchestrator(&simulation.Config{
		Debates:     debateSvc,
		IDGenerator: idgen.NewPrefixed("sim"),
		Summaries:   summaries,
	})
}

func runSimulate(cmd *cobra.Command, args []string) error {
	svc, err := newSimulationService()
	if err != nil {
		return err
	}

	out, err := svc.SimulateMatches(context.Background(), &simulation.SimulateMatchesInput{
		ArchetypeA: simArchetypeA,
		ArchetypeB: simArchetypeB,
		Matches:    simMatches,
		MaxRounds:  simMaxRounds,
	})
	if err != nil {
		return err
	}

	printStats(cmd, out.Stats, out.SimulationID)
	return nil
}

func runTrial(cmd *cobra.Command, args []string) error {
	if len(trialFaces) != 6 {
		return fmt.Errorf("exactly six face values are required, got %d", len(trialFaces))
	}
	var faces [6]int
	for i, v := range trialFaces {
		if v == 0 {
			v = entities.BlankFace
		}
		faces[i] = v
	}

	svc, err := newSimulationService()
	if err != nil {
		return err
	}

	out, err := svc.SimulateCustomDice(context.Background(), &simulation.SimulateCustomDiceInput{
		Name:     trialName,
		Faces:    faces,
		Opponent: trialOpponent,
		Matches:  trialMatches,
	})
	if err != nil {
		return err
	}

	printStats(cmd, out.Stats, out.SimulationID)
	return nil
}

func printStats(cmd *cobra.Command, stats *entities.MatchStats, simulationID string) {
	cmd.Printf("%s vs %s over %d matches\n", stats.ArchetypeA, stats.ArchetypeB, stats.Matches)
	cmd.Printf("  win rate A: %.3f\n", stats.WinRateA)
	cmd.Printf("  win rate B: %.3f\n", stats.WinRateB)
	cmd.Printf("  tie rate:   %.3f\n", stats.TieRate)
	cmd.Printf("  avg rounds: %.2f\n", stats.AvgRounds)
	cmd.Printf("  health diff: %.2f +/- %.2f\n", stats.AvgHealthDiff, stats.StdHealthDiff)
	if simulationID != "" {
		cmd.Printf("  saved as: %s\n", simulationID)
	}
}

func runTournament(cmd *cobra.Command, args []string) error {
	svc, err := newSimulationService()
	if err != nil {
		return err
	}

	out, err := svc.SimulateTournament(context.Background(), &simulation.SimulateTournamentInput{
		Archetypes:     tournamentEntrants,
		MatchesPerPair: tournamentMatches,
	})
	if err != nil {
		return err
	}

	type standing struct {
		id   string
		rate float64
	}
	standings := make([]standing, 0, len(out.WinRates))
	for id, rate := range out.WinRates {
		standings = append(standings, standing{id: id, rate: rate})
	}
	sort.Slice(standings, func(i, j int) bool {
		if standings[i].rate != standings[j].rate {
			return standings[i].rate > standings[j].rate
		}
		return standings[i].id < standings[j].id
	})

	cmd.Printf("Tournament: %d entrants, %d matches\n", len(out.Archetypes), out.TotalMatches)
	for i, s := range standings {
		cmd.Printf("  %2d. %-22s %.3f\n", i+1, s.id, s.rate)
	}
	return nil
}
