package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-forage/internal/games/forage"
	"github.com/vovakirdan/tui-forage/internal/platform/tui"
	"github.com/vovakirdan/tui-forage/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with a game picker menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a game, then pick a
difficulty (skipped when --difficulty is given). Leaving a game with
Esc returns to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Esc/B        - Back
  Q            - Quit

Examples:
  forage menu
  forage menu --fps 30
  forage menu --difficulty hard`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	cfg := runtimeConfig()

	for {
		menuResult, err := tui.RunMenu(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return
		}

		// Keep any size changes
		cfg = menuResult.Config
		if menuResult.Quit || menuResult.GameID == "" {
			return
		}

		// Ask for a difficulty unless the flag already chose one
		if flagDifficulty == "" {
			title := menuResult.GameID
			for _, g := range registry.List() {
				if g.ID == menuResult.GameID {
					title = g.Title
				}
			}

			choice, err := tui.RunDifficultySelector(title, cfg)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return
			}
			if choice.Quit {
				return
			}
			if choice.Back {
				continue
			}
			if err := forage.SetDifficultyPreset(string(choice.Preset)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
		}

		game, err := registry.Create(menuResult.GameID)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
			continue
		}

		// Fresh seed for each game unless one was pinned
		if flagSeed == 0 {
			cfg.Seed = time.Now().UnixNano()
		}

		back, err := tui.Run(game, cfg, logger)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
			return
		}
		if !back {
			return
		}
	}
}
