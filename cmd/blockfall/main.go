// blockfall is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	blockfall play           - Play in the current terminal
//	blockfall serve          - Start SSH server for remote play
//	blockfall scores         - Show high scores
//
// Global flags:
//
//	--fps <rate>    - Set UI tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.blockfall/scores.db)
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
	Use:   "blockfall",
	Short: "Blockfall - a falling-block puzzle game in your terminal",
	Long: `Blockfall is a terminal falling-block puzzle game: stack the pieces,
clear lines, and chase the high score as gravity speeds up.

Available commands:
  play     - Play in the current terminal
  serve    - Start SSH server for remote play
  scores   - View high scores and statistics

Examples:
  blockfall play
  blockfall play --level 5
  blockfall serve --ssh :2222
  blockfall scores`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "UI tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.blockfall/scores.db", "Path to scores database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
