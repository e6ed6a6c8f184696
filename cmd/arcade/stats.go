package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ctrlsworld/arcade/internal/registry"
	"github.com/ctrlsworld/arcade/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats [game]",
	Short: "Show lifetime session stats",
	Long: `Display lifetime play statistics: games played, total score,
best combo and longest run. Without an argument, shows stats for
every game that has recorded sessions.

Examples:
  arcade stats
  arcade stats blocks`,
	Args: cobra.MaximumNArgs(1),
	Run:  runStats,
}

func runStats(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if len(args) == 1 {
		gameID := args[0]
		if !registry.Exists(gameID) {
			fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
			fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
			os.Exit(1)
		}
		printGameStats(store, gameID)
		return
	}

	// No argument: walk every registered game
	printed := false
	for _, g := range registry.List() {
		data, loadErr := store.LoadSaveData(g.ID)
		if loadErr != nil || data.GamesPlayed == 0 {
			continue
		}
		if printed {
			fmt.Println()
		}
		printStats(g.ID, g.Title, data)
		printed = true
	}

	if !printed {
		fmt.Println("No sessions recorded yet.")
		fmt.Println("Play a game to start collecting stats!")
	}
}

func printGameStats(store *storage.Store, gameID string) {
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	data, err := store.LoadSaveData(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	if data.GamesPlayed == 0 {
		fmt.Printf("No sessions recorded for %s yet.\n", game.Title())
		return
	}

	printStats(gameID, game.Title(), data)
}

func printStats(gameID, title string, data storage.SaveData) {
	fmt.Printf("%s (%s)\n", title, gameID)
	fmt.Printf("  Games played:  %d\n", data.GamesPlayed)
	fmt.Printf("  Total score:   %d\n", data.TotalScore)
	fmt.Printf("  Best combo:    x%d\n", data.BestCombo)
	fmt.Printf("  Longest run:   %d:%02d\n",
		data.LongestSurvivalSecs/60, data.LongestSurvivalSecs%60)
}
