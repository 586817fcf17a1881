package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
	"github.com/vovakirdan/blockfall/internal/storage"
)

const stubID = "stub_tui"

// stubGame ends the run on a hard drop and restarts on confirm.
type stubGame struct {
	resets int
	steps  int
	last   core.InputFrame
	state  core.GameState
}

func (g *stubGame) ID() string          { return stubID }
func (g *stubGame) Title() string       { return "Stub" }
func (g *stubGame) Description() string { return "Test game" }

func (g *stubGame) Reset(cfg core.RuntimeConfig) {
	g.resets++
	g.state = core.GameState{Level: 1}
}

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.last = in.Clone()
	switch {
	case g.state.GameOver && in.Has(core.ActionConfirm):
		g.state = core.GameState{Level: 1}
	case in.Has(core.ActionPause):
		g.state.Paused = !g.state.Paused
	case in.Has(core.ActionHardDrop):
		g.state = core.GameState{Score: 120, Level: 2, Lines: 11, GameOver: true}
	}
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.DrawText(0, 0, "STUB")
}

func (g *stubGame) State() core.GameState {
	return g.state
}

func init() {
	registry.Register(stubID, func() registry.Game {
		return &stubGame{}
	})
}

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1}
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func tick(t *testing.T, m Model, at time.Time) Model {
	t.Helper()
	next, _ := m.Update(TickMsg(at))
	return next.(Model)
}

// advance ticks in 200ms steps until d has passed.
func advance(t *testing.T, m Model, now *time.Time, d time.Duration) Model {
	t.Helper()
	const step = 200 * time.Millisecond
	for passed := time.Duration(0); passed < d; passed += step {
		*now = now.Add(step)
		m = tick(t, m, *now)
	}
	return m
}

func press(t *testing.T, m Model, msg tea.KeyMsg, at time.Time) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.handleKey(msg, at)
	return next.(Model), cmd
}

func TestNewModelResetsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, core.RuntimeConfig{ScreenW: 80, ScreenH: 24})

	if g.resets != 1 {
		t.Errorf("resets = %d, expected 1", g.resets)
	}
	if m.Config().Seed == 0 {
		t.Error("a zero seed should be replaced")
	}
	if m.Config().TickRate != 60 {
		t.Errorf("TickRate = %d, expected default 60", m.Config().TickRate)
	}
}

func TestModelElapsedFromTicks(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	start := time.Unix(1000, 0)

	tests := []struct {
		at       time.Time
		expected time.Duration
	}{
		{start, 0},
		{start.Add(20 * time.Millisecond), 20 * time.Millisecond},
		{start.Add(36 * time.Millisecond), 16 * time.Millisecond},
		{start.Add(5 * time.Second), maxFrameTime},
	}

	for _, tt := range tests {
		m = tick(t, m, tt.at)
		if g.last.Elapsed != tt.expected {
			t.Errorf("Elapsed = %v, expected %v", g.last.Elapsed, tt.expected)
		}
	}
}

func TestModelPressedIsOneFrame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	now := time.Unix(1000, 0)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyUp}, now)
	m = tick(t, m, now)
	if !g.last.Has(core.ActionRotateCW) {
		t.Error("expected RotateCW on the first tick")
	}

	m = tick(t, m, now.Add(16*time.Millisecond))
	if g.last.Has(core.ActionRotateCW) {
		t.Error("pressed actions must be cleared after one tick")
	}
}

func TestModelHeldKey(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime(), WithHoldWindow(50*time.Millisecond))
	now := time.Unix(1000, 0)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyLeft}, now)
	m = tick(t, m, now.Add(16*time.Millisecond))
	if !g.last.IsHeld(core.ActionLeft) || g.last.Has(core.ActionLeft) {
		t.Errorf("expected Left held only, got actions=%v held=%v", g.last.Actions, g.last.Held)
	}

	m = tick(t, m, now.Add(32*time.Millisecond))
	if !g.last.IsHeld(core.ActionLeft) {
		t.Error("Left should stay held inside the window")
	}

	tick(t, m, now.Add(80*time.Millisecond))
	if g.last.IsHeld(core.ActionLeft) {
		t.Error("Left should be released after the window")
	}
}

func TestModelSavesRunOnce(t *testing.T) {
	store := openStore(t)
	g := &stubGame{}
	m := NewModel(g, store, testRuntime(), WithPlayer("tester"))
	now := time.Unix(1000, 0)

	m = tick(t, m, now)
	m = advance(t, m, &now, 2*time.Second)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, now)
	now = now.Add(200 * time.Millisecond)
	m = tick(t, m, now)
	if !m.State().GameOver {
		t.Fatal("expected game over")
	}
	for i := 0; i < 5; i++ {
		now = now.Add(16 * time.Millisecond)
		m = tick(t, m, now)
	}

	scores, err := store.TopScores(stubID, 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("Expected 1 saved run, got %d", len(scores))
	}
	run := scores[0]
	if run.Player != "tester" || run.Score != 120 || run.Level != 2 || run.Lines != 11 {
		t.Errorf("saved run = %+v", run)
	}
	if run.Duration != 2*time.Second {
		t.Errorf("Duration = %v, expected 2s", run.Duration)
	}
	if saved, _ := store.RunByID(run.RunID); saved == nil {
		t.Error("run should be retrievable by its id")
	}

	// Restart and finish a second run
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter}, now)
	m = tick(t, m, now.Add(16*time.Millisecond))
	if m.State().GameOver || m.PlayTime() != 0 {
		t.Fatalf("after restart: state=%+v playTime=%v", m.State(), m.PlayTime())
	}
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, now)
	tick(t, m, now.Add(32*time.Millisecond))

	scores, _ = store.TopScores(stubID, 10)
	if len(scores) != 2 {
		t.Errorf("Expected 2 saved runs, got %d", len(scores))
	}
}

func TestModelPausedTimeNotCounted(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	now := time.Unix(1000, 0)

	m = tick(t, m, now)
	m = advance(t, m, &now, time.Second)
	m, _ = press(t, m, runeKey('p'), now)
	m = advance(t, m, &now, time.Second)

	if m.PlayTime() != time.Second {
		t.Errorf("PlayTime = %v, expected 1s", m.PlayTime())
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testRuntime())
	now := time.Unix(1000, 0)

	m, _ = press(t, m, runeKey('b'), now)
	if m.BackToMenu() {
		t.Fatal("back must be ignored while playing")
	}
	m = tick(t, m, now)

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, now)
	m = tick(t, m, now)
	m, cmd := press(t, m, runeKey('b'), now)
	if !m.BackToMenu() {
		t.Error("expected back to menu after game over")
	}
	if cmd != nil {
		t.Error("embedded models must not quit the program on back")
	}
	if m.View() != "" {
		t.Error("view should be empty after leaving")
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime())
	m, cmd := press(t, m, runeKey('q'), time.Now())
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testRuntime())
	if !strings.Contains(m.View(), "STUB") {
		t.Error("view should contain the rendered game")
	}
}
