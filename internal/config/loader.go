package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	engine "github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

// LoadBlockfall loads the Blockfall configuration.
// Search order: customPath -> ~/.blockfall/configs/blockfall.yaml -> ./configs/blockfall.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it changes.
func LoadBlockfall(customPath string) (BlockfallConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BlockfallConfig{}, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		cfg, err := parseBlockfall(data, customPath)
		if err != nil {
			return BlockfallConfig{}, err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("blockfall.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseBlockfall(data, userCfgPath); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	local := filepath.Join("configs", "blockfall.yaml")
	if data, err := os.ReadFile(local); err == nil {
		if cfg, err := parseBlockfall(data, local); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := parseBlockfall(defaultBlockfallYAML, "embedded")
	if err != nil {
		return DefaultBlockfallConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func parseBlockfall(data []byte, source string) (BlockfallConfig, error) {
	cfg := DefaultBlockfallConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BlockfallConfig{}, fmt.Errorf("config: parse %s: %w", source, err)
	}
	cfg.Source = source
	return cfg, nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".blockfall", "configs", filename)
}

// ParseDifficultyPreset converts a preset name. The empty string means normal.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyBlockfallPreset scales the gravity interval for a difficulty preset.
func ApplyBlockfallPreset(cfg *BlockfallConfig, preset DifficultyPreset) {
	cfg.Timing.FallMS = cfg.Timing.FallMS * FallScaleForPreset(preset) / 100
}

// Marshal renders the config as YAML.
func (c BlockfallConfig) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("config: marshal: %w", err)
	}
	return data, nil
}

// Validate reports the first problem that would make the config unplayable.
func (c BlockfallConfig) Validate() error {
	_, err := c.Rules()
	return err
}

// Rules converts the config to engine rules.
func (c BlockfallConfig) Rules() (engine.Rules, error) {
	r := engine.DefaultRules()

	r.Width = c.Board.Width
	r.Height = c.Board.Height
	r.SpawnCol = c.Board.SpawnCol
	r.SpawnRow = c.Board.SpawnRow

	r.FallInterval = ms(c.Timing.FallMS)
	r.InputInterval = ms(c.Timing.InputRepeatMS)
	r.LockDelay = ms(c.Timing.LockDelayMS)
	r.PreLockMoves = c.Timing.PreLockMoves
	r.ClearRowInterval = ms(c.Timing.ClearRowMS)
	r.ClearFlashInterval = ms(c.Timing.ClearFlashMS)

	r.SoftDropPoints = c.Scoring.SoftDropPoints
	r.GravityPoints = c.Scoring.GravityPoints
	r.HardDropPoints = c.Scoring.HardDropPoints

	r.Randomizer = engine.RandomizerKind(strings.ToLower(c.Pieces.Randomizer))

	for name, colorName := range c.Pieces.Colors {
		kind, ok := engine.ParseKind(name)
		if !ok {
			return engine.Rules{}, fmt.Errorf("config: unknown piece kind %q", name)
		}
		color, ok := engine.ParseColor(colorName)
		if !ok {
			return engine.Rules{}, fmt.Errorf("config: unknown color %q for piece %s", colorName, name)
		}
		r.Palette[kind] = color
	}

	if len(c.Pieces.FlashColors) != 0 {
		if len(c.Pieces.FlashColors) != 2 {
			return engine.Rules{}, fmt.Errorf("config: flash_colors needs exactly 2 colors, got %d", len(c.Pieces.FlashColors))
		}
		for i, name := range c.Pieces.FlashColors {
			color, ok := engine.ParseColor(name)
			if !ok {
				return engine.Rules{}, fmt.Errorf("config: unknown flash color %q", name)
			}
			r.FlashColors[i] = color
		}
	}

	if err := r.Validate(); err != nil {
		return engine.Rules{}, fmt.Errorf("config: %w", err)
	}
	return r, nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
