package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-forage/internal/platform/tui"
	"github.com/vovakirdan/tui-forage/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  Arrows/WASD  - Walk
  E/Enter      - Pick up (where a game needs a hand)
  Space        - Start
  P            - Pause
  R            - Restart (after the round ends)
  Esc/B        - Leave (paused or after the round)
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Start at lowest difficulty, more time, one hazard fewer
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, less time, one hazard more
  fixed  - No progression, stays at config's initial level

Examples:
  forage play campfire
  forage play campfire --difficulty easy
  forage play alchemist --seed 42
  forage play campfire --config ./my-campfire.yaml`,
	Args: cobra.ExactArgs(1),
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, args []string) {
	gameID := args[0]

	// Check if game exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown game %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'forage list' to see available games.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	if _, err := tui.Run(game, runtimeConfig(), logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}
