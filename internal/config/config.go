// Package config provides YAML-based configuration loading and difficulty
// presets for Blockfall.
package config

// BlockfallConfig contains all tunable rules of a Blockfall session.
type BlockfallConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Timing  TimingConfig  `yaml:"timing"`
	Scoring ScoringConfig `yaml:"scoring"`
	Pieces  PiecesConfig  `yaml:"pieces"`

	// Source records where the config was loaded from.
	Source string `yaml:"-"`
}

// BoardConfig defines the playfield. Dimensions are fixed for a session.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	SpawnCol int `yaml:"spawn_col"`
	SpawnRow int `yaml:"spawn_row"`
}

// TimingConfig defines timer periods in milliseconds.
type TimingConfig struct {
	FallMS        int `yaml:"fall_ms"`         // Gravity step period
	InputRepeatMS int `yaml:"input_repeat_ms"` // Held-key repeat period
	LockDelayMS   int `yaml:"lock_delay_ms"`   // Grounded time before lock
	PreLockMoves  int `yaml:"pre_lock_moves"`  // Moves allowed while grounded
	ClearRowMS    int `yaml:"clear_row_ms"`    // Line-clear animation length
	ClearFlashMS  int `yaml:"clear_flash_ms"`  // Flash toggle period
}

// ScoringConfig defines per-cell drop bonuses.
type ScoringConfig struct {
	SoftDropPoints int `yaml:"soft_drop_points"`
	GravityPoints  int `yaml:"gravity_points"`
	HardDropPoints int `yaml:"hard_drop_points"`
}

// PiecesConfig defines piece selection and colors.
type PiecesConfig struct {
	Randomizer  string            `yaml:"randomizer"`   // "uniform" or "bag"
	Colors      map[string]string `yaml:"colors"`       // Kind letter -> color name
	FlashColors []string          `yaml:"flash_colors"` // Two colors toggled while clearing
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// FallScaleForPreset returns the gravity interval multiplier (in percent) for a preset.
func FallScaleForPreset(preset DifficultyPreset) int {
	switch preset {
	case DifficultyEasy:
		return 125
	case DifficultyHard:
		return 80
	default:
		return 100
	}
}
