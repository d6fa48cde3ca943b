package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

var logger = log.New(io.Discard)

// SetLogger routes loader warnings, such as skipped config files.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Load loads and validates the configuration for a variant.
// Search order: customPath -> ~/.forage/configs/<variant>.yaml -> ./configs/<variant>.yaml -> embedded default.
// Files found on disk are applied on top of the embedded default, so they only
// need the fields they change.
func Load(variant, customPath string) (ForageConfig, error) {
	cfg, err := load(variant, customPath)
	if err != nil {
		return cfg, err
	}
	if cfg.ID == "" {
		cfg.ID = variant
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config for %s: %w", variant, err)
	}
	return cfg, nil
}

// LoadEmbedded parses the built-in default for a variant without looking on
// disk and without validating it.
func LoadEmbedded(variant string) (ForageConfig, error) {
	var cfg ForageConfig
	data := GetDefaultYAML(variant)
	if data == nil {
		return cfg, fmt.Errorf("unknown variant %q", variant)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse embedded config %s: %w", variant, err)
	}
	return cfg, nil
}

func load(variant, customPath string) (ForageConfig, error) {
	base := GetDefaultYAML(variant)

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return ForageConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := overlay(base, data)
		if err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	filename := variant + ".yaml"
	candidates := []string{filepath.Join("configs", filename)}
	if userCfgPath := userConfigPath(filename); userCfgPath != "" {
		candidates = append([]string{userCfgPath}, candidates...)
	}

	for _, path := range candidates {
		data, err := os.ReadFile(path)
		if err != nil {
			continue
		}
		cfg, err := overlay(base, data)
		if err != nil {
			logger.Warn("skipping config", "path", path, "error", err)
			continue
		}
		return cfg, nil
	}

	if base == nil {
		return ForageConfig{}, fmt.Errorf("unknown variant %q", variant)
	}
	return overlay(base, nil)
}

// overlay decodes the embedded default, then data on top of it, into a fresh
// config. A file that fails halfway leaves nothing behind.
func overlay(base, data []byte) (ForageConfig, error) {
	var cfg ForageConfig
	if base != nil {
		if err := yaml.Unmarshal(base, &cfg); err != nil {
			return ForageConfig{}, fmt.Errorf("embedded default: %w", err)
		}
	}
	if data != nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return ForageConfig{}, err
		}
	}
	return cfg, nil
}

// UserConfigPath returns where a user override for variant is looked up, or
// empty if the home directory is unavailable.
func UserConfigPath(variant string) string {
	return userConfigPath(variant + ".yaml")
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".forage", "configs", filename)
}

// ApplyPreset adjusts the round itself for a difficulty preset. Where the
// progression curve starts is set on the DifficultyManager.
func ApplyPreset(cfg *ForageConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Rules.TimeLimitSecs = cfg.Rules.TimeLimitSecs * 3 / 2
		cfg.Hazards.Count = max(0, cfg.Hazards.Count-1)
	case DifficultyHard:
		cfg.Rules.TimeLimitSecs = cfg.Rules.TimeLimitSecs * 3 / 4
		if cfg.Hazards.Count > 0 {
			cfg.Hazards.Count++
		}
	}
}
