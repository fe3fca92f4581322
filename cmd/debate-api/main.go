// Package main is the entry point for the debate-api CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "debate-api",
	Short: "Dice-debate engine CLI",
	Long:  `debate-api runs dice-debate matches, bulk archetype simulations, and round-robin balance tournaments.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(duelCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(tournamentCmd)
	rootCmd.AddCommand(trialCmd)
	rootCmd.AddCommand(archetypesCmd)
}
