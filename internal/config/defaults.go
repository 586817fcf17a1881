package config

import (
	_ "embed"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration.
// It matches defaults/blockfall.yaml.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:    10,
			Height:   20,
			SpawnCol: 4,
			SpawnRow: 0,
		},
		Timing: TimingConfig{
			FallMS:        800,
			InputRepeatMS: 90,
			LockDelayMS:   500,
			PreLockMoves:  15,
			ClearRowMS:    400,
			ClearFlashMS:  80,
		},
		Scoring: ScoringConfig{
			SoftDropPoints: 1,
			GravityPoints:  1,
			HardDropPoints: 2,
		},
		Pieces: PiecesConfig{
			Randomizer: "uniform",
			Colors: map[string]string{
				"T": "purple",
				"O": "yellow",
				"I": "blue",
				"Z": "red",
				"S": "skyblue",
				"J": "green",
				"L": "orange",
			},
			FlashColors: []string{"white", "lightgray"},
		},
		Source: "builtin",
	}
}
