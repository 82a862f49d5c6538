package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadehall/blockfall/internal/platform/tui"
	"github.com/arcadehall/blockfall/internal/storage"
)

var flagInteractive bool

var scoresCmd = &cobra.Command{
	Use:   "scores",
	Short: "Show high scores",
	Long: `Display the top 10 high scores and overall statistics.

Examples:
  blockfall scores
  blockfall scores -i    # interactive scrollable table`,
	Args: cobra.NoArgs,
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVarP(&flagInteractive, "interactive", "i", false, "Browse scores in an interactive table")
}

func runScores(cmd *cobra.Command, args []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening scores database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if err := tui.RunScoreboard(store, width, height); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	scores, err := store.TopScores(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving scores: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("High Scores - Blockfall")
	fmt.Println()

	if len(scores) == 0 {
		fmt.Println("No scores recorded yet.")
		fmt.Println()
		fmt.Println("Play 'blockfall play' to set the first high score!")
		return
	}

	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "Rank", "Score", "Lines", "Level", "Date")
	fmt.Printf("  %-4s  %-10s  %-6s  %-6s  %s\n", "----", "-----", "-----", "-----", "----")

	for i, entry := range scores {
		dateStr := entry.CreatedAt.Format("2006-01-02 15:04")
		fmt.Printf("  %-4d  %-10d  %-6d  %-6d  %s\n", i+1, entry.Score, entry.Lines, entry.Level, dateStr)
	}

	fmt.Println()
	if stats, err := store.GetStats(); err == nil {
		fmt.Printf("Games played: %d   Best: %d   Average: %.0f   Total lines: %d\n",
			stats.GamesCount, stats.HighScore, stats.AvgScore, stats.TotalLines)
	}
}
