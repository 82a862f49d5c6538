package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/arcadehall/blockfall/internal/config"
	"github.com/arcadehall/blockfall/internal/core"
	"github.com/arcadehall/blockfall/internal/platform/tui"
	"github.com/arcadehall/blockfall/internal/storage"
	"github.com/arcadehall/blockfall/internal/tetris"
)

var (
	flagConfig string
	flagLevel  int
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play blockfall",
	Long: `Start a game in the current terminal.

Controls:
  Left/Right, h/l  - Move piece
  Up, x            - Rotate clockwise
  z                - Rotate anticlockwise
  Down, j          - Soft drop
  P/Esc            - Pause
  R                - Restart
  Q/Ctrl+C         - Quit

Examples:
  blockfall play
  blockfall play --level 5
  blockfall play --config ./my-tetris.yaml
  blockfall play --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	playCmd.Flags().IntVar(&flagLevel, "level", 0, "Starting level (overrides config)")
}

func runPlay(cmd *cobra.Command, args []string) {
	fileCfg, err := config.LoadTetris(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	gameCfg := fileCfg.ToEngine()
	if flagLevel > 0 {
		gameCfg.StartLevel = flagLevel
	}

	// Terminal size for the screen buffer
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	// Open score storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		// Continue without storage - game still works
		store = nil
	}

	runErr := tui.Run(tetris.New(gameCfg), store, rc)

	if store != nil {
		store.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}
