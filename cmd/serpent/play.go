package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/serpent-game/serpent/internal/core"
	"github.com/serpent-game/serpent/internal/platform/tui"
	"github.com/serpent-game/serpent/internal/snake"
	"github.com/serpent-game/serpent/internal/storage"
)

var (
	flagMode       string
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play the game",
	Long: `Start playing. Without --mode an interactive mode picker is shown.

Controls:
  W/A/S/D    - Steer (arrow keys also work)
  P          - Pause
  R          - Restart (after game over)
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower snake
  normal - Default speed
  hard   - Faster snake
  fixed  - Endless mode never speeds up

Examples:
  serpent play
  serpent play --mode classic
  serpent play --mode endless --difficulty hard
  serpent play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagMode, "mode", "", "Game mode: classic or endless (interactive picker if empty)")
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(cmd *cobra.Command, args []string) {
	// Get terminal size early for mode selector
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	snake.SetConfigPath(flagConfig)
	snake.SetDifficultyPreset(flagDifficulty)

	var game tui.Game
	switch flagMode {
	case "classic":
		game = snake.New()
	case "endless":
		game = snake.NewEndless()
	case "":
		selection, updatedCfg, selErr := tui.RunModeSelector(cfg)
		if selErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", selErr)
			os.Exit(1)
		}
		cfg = updatedCfg

		// User pressed back or quit
		if selection == nil {
			return
		}

		if selection.Mode == tui.ModeEndless {
			game = snake.NewEndless()
		} else {
			game = snake.New()
		}
	default:
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q (want classic or endless)\n", flagMode)
		os.Exit(1)
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(game, store, cfg)

	// Close store before potential exit
	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
