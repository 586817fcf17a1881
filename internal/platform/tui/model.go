package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

// maxFrameTime caps the elapsed time of one frame so a stalled terminal
// does not fast-forward the game.
const maxFrameTime = 250 * time.Millisecond

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithPlayer sets the name recorded with saved runs.
func WithPlayer(name string) ModelOption {
	return func(m *Model) {
		m.player = name
	}
}

// WithLogger routes model events to l.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		if l != nil {
			m.logger = l
		}
	}
}

// WithHoldWindow overrides DefaultHoldWindow.
func WithHoldWindow(d time.Duration) ModelOption {
	return func(m *Model) {
		m.held = NewHeldKeys(d)
	}
}

// Model is the Bubble Tea model for running one game.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	keyMapper  *KeyMapper
	held       *HeldKeys
	inputFrame core.InputFrame
	gameState  core.GameState
	logger     *log.Logger
	player     string

	lastTick   time.Time     // Timestamp of the previous tick
	playTime   time.Duration // Unpaused time of the current run
	quitting   bool
	backToMenu bool
	quitOnBack bool // Standalone programs exit when going back
	scoreSaved bool // Whether the run has been saved for current game over
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = core.DefaultConfig().TickRate
	}

	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		keyMapper:  NewKeyMapper(),
		held:       NewHeldKeys(DefaultHoldWindow),
		inputFrame: core.NewInputFrame(),
		logger:     log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.player == "" {
		m.player = defaultPlayer()
	}

	// The game is reset here rather than in Init, which has a value receiver.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	return m
}

// defaultPlayer returns the local user name.
func defaultPlayer() string {
	for _, env := range []string{"USER", "USERNAME"} {
		if name := os.Getenv(env); name != "" {
			return name
		}
	}
	return "player"
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Warn("screenshot failed", "err", err)
		} else {
			m.logger.Info("screenshot saved", "path", path)
		}
		return m, nil
	}

	if m.keyMapper.MapKeyToFrame(msg, &m.inputFrame, m.held, now) {
		m.quitting = true
		return m, tea.Quit
	}

	if m.inputFrame.Has(core.ActionBack) && (m.gameState.GameOver || m.gameState.Paused) {
		m.backToMenu = true
		if m.quitOnBack {
			return m, tea.Quit
		}
		return m, nil
	}

	return m, nil
}

// handleResize processes window resize events. The board keeps its size,
// so the running game only needs the new screen dimensions.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.config.ScreenW = msg.Width
	m.config.ScreenH = msg.Height
	m.screen.Resize(msg.Width, msg.Height)
	return m, nil
}

// handleTick advances the game by the wall time since the previous tick.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	var elapsed time.Duration
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now
	if elapsed > maxFrameTime {
		elapsed = maxFrameTime
	}
	if elapsed < 0 {
		elapsed = 0
	}

	m.inputFrame.Elapsed = elapsed
	m.held.Apply(&m.inputFrame, now)

	wasOver := m.gameState.GameOver
	result := m.game.Step(m.inputFrame)
	m.gameState = result.State

	switch {
	case wasOver && !m.gameState.GameOver:
		// Restarted from the game over screen
		m.playTime = 0
		m.scoreSaved = false
		m.held.Release()
	case !m.gameState.GameOver && !m.gameState.Paused:
		m.playTime += elapsed
	}

	if m.gameState.GameOver && !m.scoreSaved {
		m.saveRun()
		m.scoreSaved = true
	}

	// Clear input for next frame
	m.inputFrame.Clear()

	return m, tickCmd(m.config.TickRate)
}

// saveRun stores the finished run. Empty runs are not recorded.
func (m *Model) saveRun() {
	if m.store == nil || m.gameState.Score <= 0 {
		return
	}
	run := storage.Run{
		ID:       uuid.NewString(),
		GameID:   m.game.ID(),
		Player:   m.player,
		Score:    m.gameState.Score,
		Level:    m.gameState.Level,
		Lines:    m.gameState.Lines,
		Duration: m.playTime.Truncate(time.Second),
	}
	if _, err := m.store.SaveRun(run); err != nil {
		m.logger.Error("save run failed", "game", run.GameID, "err", err)
		return
	}
	m.logger.Info("run saved",
		"run", run.ID,
		"game", run.GameID,
		"player", run.Player,
		"score", run.Score,
		"level", run.Level,
		"lines", run.Lines,
	)
}

// saveScreenshot writes the current screen as text to
// ~/.blockfall/screenshots and returns the file path.
func (m *Model) saveScreenshot() (string, error) {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	dir := filepath.Join(home, ".blockfall", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", fmt.Errorf("screenshot: %w", err)
	}
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.backToMenu {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	// Convert screen to string
	return RenderScreen(m.screen)
}

// State returns the last reported game state.
func (m Model) State() core.GameState {
	return m.gameState
}

// PlayTime returns the unpaused duration of the current run.
func (m Model) PlayTime() time.Duration {
	return m.playTime
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Config returns the current runtime config (may have been updated by resize).
func (m Model) Config() core.RuntimeConfig {
	return m.config
}

// Run starts the Bubble Tea program with the given game. It reports whether
// the player asked to return to the menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts...)
	model.quitOnBack = true

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.BackToMenu(), nil
}
