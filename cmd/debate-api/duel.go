package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/debate-api/internal/engine/archetypes"
	"github.com/KirkDiggler/debate-api/internal/entities"
	"github.com/KirkDiggler/debate-api/internal/orchestrators/debate"
	"github.com/KirkDiggler/debate-api/internal/pkg/idgen"
)

var (
	duelArchetypeA string
	duelArchetypeB string
	duelEmotionsA  []string
	duelEmotionsB  []string
	duelMaxRounds  int
)

var duelCmd = &cobra.Command{
	Use:   "duel",
	Short: "Run a single debate between two archetypes",
	RunE:  runDuel,
}

func init() {
	duelCmd.Flags().StringVar(&duelArchetypeA, "archetype-a", archetypes.TabulaRasa, "archetype for player A")
	duelCmd.Flags().StringVar(&duelArchetypeB, "archetype-b", archetypes.TabulaRasa, "archetype for player B")
	duelCmd.Flags().StringSliceVar(&duelEmotionsA, "emotions-a", nil, "behavior hooks for player A")
	duelCmd.Flags().StringSliceVar(&duelEmotionsB, "emotions-b", nil, "behavior hooks for player B")
	duelCmd.Flags().IntVar(&duelMaxRounds, "max-rounds", debate.DefaultMaxRounds, "round cap")
}

func runDuel(cmd *cobra.Command, args []string) error {
	cfg, err := loadEnvConfig()
	if err != nil {
		return err
	}
	repo, err := cfg.newDebateRepo()
	if err != nil {
		return err
	}

	svc, err := debate.NewOrchestrator(&debate.Config{
		Roller:      dice.DefaultRoller,
		IDGenerator: idgen.NewPrefixed("debate"),
		EventBus:    events.NewBus(),
		DebateRepo:  repo,
		ResultTTL:   cfg.DebateTTL,
	})
	if err != nil {
		return err
	}

	playerA, err := newDuelPlayer(duelArchetypeA, "A", duelEmotionsA)
	if err != nil {
		return err
	}
	playerB, err := newDuelPlayer(duelArchetypeB, "B", duelEmotionsB)
	if err != nil {
		return err
	}

	out, err := svc.PlayDebate(context.Background(), &debate.PlayDebateInput{
		PlayerA:   playerA,
		PlayerB:   playerB,
		MaxRounds: duelMaxRounds,
	})
	if err != nil {
		return err
	}

	printDebateResult(cmd, out.Result, playerA, playerB)
	return nil
}

func newDuelPlayer(archetypeID, label string, emotions []string) (*entities.Player, error) {
	archetype, err := archetypes.Get(archetypeID)
	if err != nil {
		return nil, err
	}
	player := archetype.NewPlayer(
		fmt.Sprintf("player_%s", strings.ToLower(label)),
		fmt.Sprintf("%s (%s)", archetype.Name, label),
	)
	player.Emotions = emotions
	return player, nil
}

func printDebateResult(cmd *cobra.Command, result *entities.DebateResult, a, b *entities.Player) {
	cmd.Printf("Debate %s: %d round(s)\n", result.DebateID, len(result.Rounds))
	for i, pair := range result.Rounds {
		cmd.Printf("  Round %d:\n", i+1)
		printRoundResult(cmd, pair.A)
		printRoundResult(cmd, pair.B)
	}
	cmd.Printf("Final health: %s=%d, %s=%d\n",
		a.Name, result.FinalHealth[a.ID],
		b.Name, result.FinalHealth[b.ID])
	if result.Winner == entities.WinnerTie {
		cmd.Println("Result: tie")
	} else {
		name := a.Name
		if result.Winner == b.ID {
			name = b.Name
		}
		cmd.Printf("Winner: %s\n", name)
	}
}

func printRoundResult(cmd *cobra.Command, r *entities.RoundResult) {
	if r.Fumbled {
		cmd.Printf("    %s: fumbled\n", r.PlayerName)
		return
	}
	parts := make([]string, 0, len(r.Insults))
	for _, insult := range r.Insults {
		parts = append(parts, fmt.Sprintf("%s %v (%d)", insult.Category, insult.Dice, insult.Damage))
	}
	cmd.Printf("    %s: %s -> dealt %d, took %d\n",
		r.PlayerName, strings.Join(parts, ", "),
		r.DamageToOpponent, r.DamageFromOpponent)
}
