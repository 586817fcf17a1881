// Package blockfall adapts the falling-block engine to the platform's Game
// interface: it loads rules from config, maps platform input to engine
// intents and draws snapshots into the screen buffer.
package blockfall

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	engine "github.com/vovakirdan/blockfall/internal/games/blockfall/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Mode ids.
const (
	IDMarathon = "blockfall"
	IDBag      = "blockfall_bag"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives session events; discarded unless the CLI sets one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names select normal.
func SetDifficultyPreset(preset string) {
	p, err := config.ParseDifficultyPreset(preset)
	if err != nil {
		p = config.DifficultyNormal
	}
	difficultyPreset = p
}

// SetLogger routes engine events of new sessions to l.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game implements registry.Game on top of an engine session.
type Game struct {
	id         string
	randomizer engine.RandomizerKind

	session *engine.Session
	rules   engine.Rules

	screenW  int
	screenH  int
	tooSmall bool
	minW     int
	minH     int
}

// New creates a marathon game with the configured randomizer.
func New() *Game {
	return &Game{id: IDMarathon}
}

// NewBag creates a game that always deals from a 7-bag.
func NewBag() *Game {
	return &Game{id: IDBag, randomizer: engine.RandomizerBag}
}

func init() {
	registry.Register(IDMarathon, func() registry.Game {
		return New()
	})
	registry.Register(IDBag, func() registry.Game {
		return NewBag()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.id == IDBag {
		return "Blockfall (7-Bag)"
	}
	return "Blockfall"
}

// Description returns the menu blurb.
func (g *Game) Description() string {
	if g.id == IDBag {
		return "Marathon with every piece dealt once per bag of seven"
	}
	return "Clear lines, chain spins and tetrises, climb levels"
}

// Reset loads the rules and starts a fresh session in the Start state.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	rules := g.loadRules()
	g.rules = rules
	g.session = engine.New(rules, rand.New(rand.NewSource(cfg.Seed)), engine.WithLogger(logger))

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.minW = rules.Width*cellWidth + 2 + sidebarWidth
	g.minH = rules.Height + 2
	g.tooSmall = g.screenW < g.minW || g.screenH < g.minH
}

// loadRules builds engine rules from config. A broken config falls back to
// the default rules so the game stays playable.
func (g *Game) loadRules() engine.Rules {
	cfg, err := config.LoadBlockfall(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "err", err)
		cfg = config.DefaultBlockfallConfig()
	}
	if difficultyPreset != "" {
		config.ApplyBlockfallPreset(&cfg, difficultyPreset)
	}

	rules, err := cfg.Rules()
	if err != nil {
		logger.Warn("invalid config, using defaults", "source", cfg.Source, "err", err)
		rules = engine.DefaultRules()
	}
	if g.randomizer != "" {
		rules.Randomizer = g.randomizer
	}
	return rules
}

// Intents maps a platform input frame to engine intents.
func Intents(in core.InputFrame) engine.Intents {
	return engine.Intents{
		Confirm:   in.Has(core.ActionConfirm) || in.Has(core.ActionRestart),
		RotateCW:  in.Has(core.ActionRotateCW),
		RotateCCW: in.Has(core.ActionRotateCCW),
		HardDrop:  in.Has(core.ActionHardDrop),
		Pause:     in.Has(core.ActionPause),
		Left:      in.IsHeld(core.ActionLeft),
		Right:     in.IsHeld(core.ActionRight),
		SoftDrop:  in.IsHeld(core.ActionSoftDrop),
	}
}

// Step advances the session by the frame's elapsed time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.session == nil {
		g.Reset(core.DefaultConfig())
	}
	g.session.Update(in.Elapsed, Intents(in))
	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.session == nil {
		return core.GameState{Level: 1}
	}
	st := g.session.State()
	return core.GameState{
		Score:    g.session.Score(),
		Level:    g.session.Level(),
		Lines:    g.session.Lines(),
		GameOver: st == engine.StateGameOver,
		Paused:   st == engine.StatePaused,
	}
}

// Snapshot returns the engine snapshot of the running session.
func (g *Game) Snapshot() engine.Snapshot {
	if g.session == nil {
		return engine.Snapshot{}
	}
	return g.session.Snapshot()
}

// Rules returns the rules of the running session.
func (g *Game) Rules() engine.Rules {
	return g.rules
}
