// serpent is a terminal snake game.
//
// Usage:
//
//	serpent play             - Play (interactive mode picker)
//	serpent play --mode endless
//	serpent serve            - Start SSH server for remote play
//	serpent scores           - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.serpent/scores.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "serpent",
	Short: "Serpent - snake in your terminal",
	Long: `Serpent is a terminal snake game. Steer the snake, eat food, grow,
and avoid the walls and your own tail.

Available commands:
  play     - Play the game
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  serpent play
  serpent play --mode endless --difficulty hard
  serpent serve --ssh :2222
  serpent scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.serpent/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
