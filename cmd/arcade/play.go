package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ctrlsworld/arcade/internal/audio"
	"github.com/ctrlsworld/arcade/internal/core"
	"github.com/ctrlsworld/arcade/internal/games/blocks"
	"github.com/ctrlsworld/arcade/internal/games/duel"
	"github.com/ctrlsworld/arcade/internal/games/snake"
	"github.com/ctrlsworld/arcade/internal/platform/tui"
	"github.com/ctrlsworld/arcade/internal/registry"
	"github.com/ctrlsworld/arcade/internal/storage"
)

var (
	flagConfig     string
	flagDifficulty string
	flagMute       bool
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Left/Right/A/D  - Move
  Up/W/X          - Rotate clockwise
  Z               - Rotate counter-clockwise
  Down/S          - Soft drop / guard
  Space           - Hard drop / attack
  C               - Hold piece
  T               - Bullet time
  P               - Pause
  R               - Restart (after game over)
  Q/Ctrl+C        - Quit

Difficulty options:
  easy   - Gentler pacing
  normal - Classic pacing
  hard   - Faster pacing

Examples:
  arcade play blocks
  arcade play blocks --difficulty hard
  arcade play snake --difficulty easy
  arcade play blocks --config ./my-blocks.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound effects")
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'arcade list' to see available games.")
		os.Exit(1)
	}

	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Create runtime config
	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Set config path and difficulty for games before creation
	switch gameID {
	case "blocks":
		blocks.SetConfigPath(flagConfig)
		blocks.SetDifficultyPreset(flagDifficulty)

		// Show Block Storm setup menu only when no preset was given;
		// flags are the scriptable path.
		if flagDifficulty == "" {
			selection, updatedCfg, selErr := tui.RunBlocksModeSelector(cfg)
			if selErr != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
				os.Exit(1)
			}
			cfg = updatedCfg

			// User pressed back or quit
			if selection == nil {
				return
			}

			blocks.SetDifficultyPreset(selection.Preset)
			if selection.StartLevel > 1 {
				blocks.SetStartLevel(selection.StartLevel)
			}
		}

	case "snake":
		snake.SetConfigPath(flagConfig)
		snake.SetDifficultyPreset(flagDifficulty)

		// Show Snake mode/level selector
		snakeSelection, updatedCfg, snakeErr := tui.RunSnakeModeSelector(cfg)
		if snakeErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", snakeErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if snakeSelection == nil {
			return
		}

		// Apply selection
		if snakeSelection.Mode == tui.SnakeModeEndless {
			gameID = "snake_endless"
		}
		if snakeSelection.Level > 0 {
			snake.SetStartLevel(snakeSelection.Level)
		}

	case "duel":
		duel.SetConfigPath(flagConfig)
		duel.SetDifficultyPreset(flagDifficulty)
	}

	// Create game instance
	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	// Set up sound; the game is fully playable without it
	sound := audio.NewPlayer()
	if !flagMute {
		if audioErr := sound.Init(); audioErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", audioErr)
		}
	}

	// Run the game
	runErr := tui.Run(game, store, sound, cfg)

	// Cleanup before potential exit
	sound.Close()
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
