package core

import (
	"fmt"
	"time"
)

// LinesPerLevel is the number of cleared lines that advances the level by one.
const LinesPerLevel = 10

// RandomizerKind selects how upcoming pieces are drawn.
type RandomizerKind string

const (
	RandomizerUniform RandomizerKind = "uniform"
	RandomizerBag     RandomizerKind = "bag"
)

// Rules holds the fixed configuration of a session.
type Rules struct {
	Width    int
	Height   int
	SpawnCol int
	SpawnRow int

	FallInterval       time.Duration // Gravity step period
	InputInterval      time.Duration // Held-key repeat period
	LockDelay          time.Duration // Grounded time before locking
	PreLockMoves       int           // Interactions allowed while grounded before the lock timer runs
	ClearRowInterval   time.Duration // Duration of the clear animation
	ClearFlashInterval time.Duration // Flash color toggle period

	SoftDropPoints int // Per successful soft-drop step
	GravityPoints  int // Per successful gravity step
	HardDropPoints int // Per cell hard-dropped

	Randomizer  RandomizerKind
	Palette     Palette
	FlashColors [2]Color
}

// DefaultRules returns the marathon rule set on a 10x20 board.
func DefaultRules() Rules {
	return Rules{
		Width:              10,
		Height:             20,
		SpawnCol:           4,
		SpawnRow:           0,
		FallInterval:       800 * time.Millisecond,
		InputInterval:      90 * time.Millisecond,
		LockDelay:          500 * time.Millisecond,
		PreLockMoves:       15,
		ClearRowInterval:   400 * time.Millisecond,
		ClearFlashInterval: 80 * time.Millisecond,
		SoftDropPoints:     1,
		GravityPoints:      1,
		HardDropPoints:     2,
		Randomizer:         RandomizerUniform,
		Palette:            DefaultPalette(),
		FlashColors:        [2]Color{ColorWhite, ColorLightGray},
	}
}

// Validate reports the first rule that makes a session unplayable.
func (r Rules) Validate() error {
	switch {
	case r.Width < 4 || r.Height < 4:
		return fmt.Errorf("board %dx%d is too small", r.Width, r.Height)
	case r.SpawnCol < 0 || r.SpawnCol >= r.Width:
		return fmt.Errorf("spawn column %d outside board width %d", r.SpawnCol, r.Width)
	case r.SpawnRow < 0 || r.SpawnRow >= r.Height:
		return fmt.Errorf("spawn row %d outside board height %d", r.SpawnRow, r.Height)
	case r.FallInterval <= 0, r.InputInterval <= 0, r.LockDelay <= 0,
		r.ClearRowInterval <= 0, r.ClearFlashInterval <= 0:
		return fmt.Errorf("timer intervals must be positive")
	case r.LockDelay >= r.FallInterval:
		// Every gravity step resets the lock timer.
		return fmt.Errorf("lock delay %v must be shorter than fall interval %v", r.LockDelay, r.FallInterval)
	case r.PreLockMoves < 0:
		return fmt.Errorf("pre-lock moves must not be negative")
	case r.SoftDropPoints < 0 || r.GravityPoints < 0 || r.HardDropPoints < 0:
		return fmt.Errorf("drop points must not be negative")
	case r.Randomizer != RandomizerUniform && r.Randomizer != RandomizerBag:
		return fmt.Errorf("unknown randomizer %q", r.Randomizer)
	}
	return nil
}

// NewKindSource builds the kind source selected by the rules.
func (r Rules) NewKindSource(rng Randomizer) KindSource {
	if r.Randomizer == RandomizerBag {
		return NewBagSource(rng)
	}
	return NewUniformSource(rng)
}
