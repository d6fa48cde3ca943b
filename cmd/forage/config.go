package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-forage/internal/config"
)

var flagWrite bool

var configCmd = &cobra.Command{
	Use:   "config <game>",
	Short: "Print or install a game's default config",
	Long: `Print the built-in YAML config of a game.

With --write the default is copied to ~/.forage/configs/<game>.yaml, where
it is picked up on the next run. Edit only the fields you want to change;
anything left out keeps its built-in value. An existing file is never
overwritten.

Examples:
  forage config campfire
  forage config alchemist --write`,
	Args: cobra.ExactArgs(1),
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagWrite, "write", false, "Install the default into the user config directory")
}

func runConfig(cmd *cobra.Command, args []string) error {
	variant := args[0]

	data := config.GetDefaultYAML(variant)
	if data == nil {
		return fmt.Errorf("unknown game %q, run 'forage list' to see available games", variant)
	}

	if !flagWrite {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}

	path := config.UserConfigPath(variant)
	if path == "" {
		return errors.New("cannot locate the home directory")
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s already exists", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}

	logger.Info("installed default config", "game", variant, "path", path)
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
	return nil
}
