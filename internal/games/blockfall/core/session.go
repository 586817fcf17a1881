package core

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// PlayState is the session state tag.
type PlayState uint8

const (
	StateStart PlayState = iota
	StatePlaying
	StateClearBlocks
	StatePaused
	StateGameOver
)

// String returns the string representation of a play state.
func (s PlayState) String() string {
	switch s {
	case StateStart:
		return "start"
	case StatePlaying:
		return "playing"
	case StateClearBlocks:
		return "clearing"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Action is the player action remembered for spin detection.
type Action uint8

const (
	ActionNone Action = iota
	ActionMoved
	ActionSoftDrop
	ActionRotate
	ActionHardDrop
)

// Intents are the discrete inputs for one update.
// Confirm, RotateCW, RotateCCW, HardDrop and Pause are edges (pressed this frame);
// Left, Right and SoftDrop are levels (currently held).
type Intents struct {
	Confirm   bool
	RotateCW  bool
	RotateCCW bool
	HardDrop  bool
	Pause     bool
	Left      bool
	Right     bool
	SoftDrop  bool
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session events to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithKindSource replaces the randomizer-backed piece source.
func WithKindSource(src KindSource) Option {
	return func(s *Session) {
		if src != nil {
			s.source = src
		}
	}
}

// Session is one game. It is advanced by Update and is not safe for concurrent use.
type Session struct {
	rules  Rules
	source KindSource
	logger *log.Logger

	state  PlayState
	resume PlayState // State restored when unpausing

	board   *Board
	current Piece
	next    Piece

	score      int
	level      int
	lines      int
	lastAction Action
	lastClear  ClearResult
	backToBack bool

	interacting  bool
	preLockMoves int
	timers       timers
	flashColor   Color

	// Set on the tick a piece locks
	justLocked bool
	locked     Piece
}

// New creates a session in the Start state. Invalid rules panic.
func New(rules Rules, rng Randomizer, opts ...Option) *Session {
	if err := rules.Validate(); err != nil {
		panic(fmt.Sprintf("blockfall: invalid rules: %v", err))
	}
	s := &Session{
		rules:  rules,
		logger: log.New(io.Discard),
	}
	if rng != nil {
		s.source = rules.NewKindSource(rng)
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.source == nil {
		panic("blockfall: session needs a randomizer or kind source")
	}
	s.reset()
	return s
}

// reset restores every field except the configuration and the piece source.
func (s *Session) reset() {
	board := NewBoard(s.rules.Width, s.rules.Height)
	board.SetPalette(s.rules.Palette)

	s.state = StateStart
	s.resume = StateStart
	s.board = board
	s.current = Piece{}
	s.next = Piece{}
	s.score = 0
	s.level = 1
	s.lines = 0
	s.lastAction = ActionNone
	s.lastClear = ClearNone
	s.backToBack = false
	s.interacting = false
	s.preLockMoves = 0
	s.timers = timers{}
	s.flashColor = s.rules.FlashColors[0]
	s.justLocked = false
	s.locked = Piece{}
}

// Update advances the session by dt.
func (s *Session) Update(dt time.Duration, in Intents) {
	if dt < 0 {
		dt = 0
	}
	switch s.state {
	case StateStart:
		if in.Confirm {
			s.next = s.generate()
			s.state = StatePlaying
			s.logger.Debug("game started", "next", s.next.Kind)
		}
	case StatePlaying:
		if in.Pause {
			s.pause()
			return
		}
		s.playingFrame(dt, in)
	case StateClearBlocks:
		if in.Pause {
			s.pause()
			return
		}
		s.clearBlocksFrame(dt)
	case StatePaused:
		if in.Pause {
			s.state = s.resume
		}
	case StateGameOver:
		if in.Confirm {
			s.reset()
		}
	}
}

func (s *Session) pause() {
	s.resume = s.state
	s.state = StatePaused
}

// playingFrame runs spawn, input, gravity, lock and line evaluation in that order.
func (s *Session) playingFrame(dt time.Duration, in Intents) {
	s.justLocked = false
	if !s.current.Kind.IsActive() && !s.spawn() {
		return
	}
	s.handleInput(dt, in)
	s.applyGravity(dt)
	s.evaluateLock(dt)
	if s.justLocked {
		s.evaluateLines()
	}
}

// generate draws the next kind and kicks it into place on the current board.
func (s *Session) generate() Piece {
	p := NewPiece(s.source.Next(), s.rules.SpawnCol, s.rules.SpawnRow)
	p.TryKick(s.board)
	return p
}

// spawn promotes next to current and generates a new next.
// Returns false when the game is over.
func (s *Session) spawn() bool {
	s.current = s.next
	if !s.current.TryKick(s.board) {
		s.gameOver()
		return false
	}
	s.next = s.generate()
	s.lastAction = ActionNone
	s.preLockMoves = 0
	s.timers.lock.Reset()
	if !s.next.CanMove(0, 0, s.board) {
		s.gameOver()
		return false
	}
	return true
}

func (s *Session) gameOver() {
	s.state = StateGameOver
	s.logger.Info("game over", "score", s.score, "level", s.level, "lines", s.lines)
}

// handleInput applies pressed then held intents. Every legal input acts;
// only the highest priority one is remembered: hard drop, then held
// move or soft drop, then rotate.
func (s *Session) handleInput(dt time.Duration, in Intents) {
	s.interacting = false
	pressed := s.processPressed(in)
	held := s.processHeld(dt, in)

	action := pressed
	switch {
	case pressed == ActionHardDrop:
	case held == ActionMoved || held == ActionSoftDrop:
		action = held
	}
	if action != ActionNone {
		s.lastAction = action
	}
}

func (s *Session) processPressed(in Intents) Action {
	result := ActionNone
	if in.RotateCW {
		s.interacting = true
		if s.current.TryRotate(RotateCW, s.board) {
			result = ActionRotate
		}
	}
	if in.RotateCCW && result != ActionRotate {
		s.interacting = true
		if s.current.TryRotate(RotateCCW, s.board) {
			result = ActionRotate
		}
	}
	if in.HardDrop && s.current.Kind.IsActive() {
		s.interacting = true
		s.hardDrop()
		result = ActionHardDrop
	}
	return result
}

// processHeld applies at most one held intent per input-repeat period.
// Left wins over right, right over soft drop.
func (s *Session) processHeld(dt time.Duration, in Intents) Action {
	s.timers.input.Add(dt)
	if !s.timers.input.Repeat(s.rules.InputInterval) {
		return ActionNone
	}
	switch {
	case in.Left:
		s.interacting = true
		s.current.TryMove(-1, 0, s.board)
		return ActionMoved
	case in.Right:
		s.interacting = true
		s.current.TryMove(1, 0, s.board)
		return ActionMoved
	case in.SoftDrop:
		if s.current.TryMove(0, 1, s.board) {
			s.score += s.rules.SoftDropPoints
		}
		return ActionSoftDrop
	}
	return ActionNone
}

func (s *Session) hardDrop() {
	n := s.current.DropDistance(s.board)
	s.current.Row += n
	s.score += n * s.rules.HardDropPoints
	s.lock()
}

func (s *Session) applyGravity(dt time.Duration) {
	s.timers.fall.Add(dt)
	if !s.timers.fall.Repeat(s.rules.FallInterval) {
		return
	}
	s.timers.lock.Reset()
	if s.current.TryMove(0, 1, s.board) {
		s.score += s.rules.GravityPoints
	}
}

// evaluateLock runs the lock delay for a grounded piece.
func (s *Session) evaluateLock(dt time.Duration) {
	if !s.current.Kind.IsActive() || s.current.CanMove(0, 1, s.board) {
		return
	}
	if s.interacting && s.preLockMoves < s.rules.PreLockMoves {
		s.preLockMoves++
		s.timers.lock.Reset()
		return
	}
	s.timers.lock.Add(dt)
	if s.timers.lock.Exceeded(s.rules.LockDelay) {
		s.lock()
	}
}

// lock commits the current piece to the board.
func (s *Session) lock() {
	s.board.LockPiece(s.current)
	s.locked = s.current
	s.current = Piece{}
	s.preLockMoves = 0
	s.timers.lock.Reset()
	s.justLocked = true
}

// evaluateLines scores the piece that locked this tick.
func (s *Session) evaluateLines() {
	rows := s.board.FullRows()
	n := len(rows)
	spin := s.lastAction == ActionRotate && s.board.Surrounded(s.locked)
	if n == 0 && !spin {
		return
	}

	result := Classify(n, spin)
	points, b2b := Award(result, s.level, s.backToBack)
	s.backToBack = b2b
	s.lines += n
	s.score += points
	s.lastClear = result

	prev := s.level
	s.level = LevelFor(s.lines)
	s.logger.Info("rows scored",
		"result", result, "rows", n, "points", points,
		"level", s.level, "lines", s.lines, "score", s.score)
	if s.level != prev {
		s.logger.Debug("level up", "level", s.level)
	}

	if n > 0 {
		s.state = StateClearBlocks
		s.timers.flash.Reset()
		s.timers.clearRow.Reset()
		s.flashColor = s.rules.FlashColors[0]
	}
}

// clearBlocksFrame animates the full rows, then collapses them.
func (s *Session) clearBlocksFrame(dt time.Duration) {
	s.timers.flash.Add(dt)
	if s.timers.flash.Exceeded(s.rules.ClearFlashInterval) {
		s.timers.flash.Reset()
		if s.flashColor == s.rules.FlashColors[0] {
			s.flashColor = s.rules.FlashColors[1]
		} else {
			s.flashColor = s.rules.FlashColors[0]
		}
		for _, row := range s.board.FullRows() {
			s.board.SetRowColor(s.flashColor, row)
		}
	}

	s.timers.clearRow.Add(dt)
	if s.timers.clearRow.Exceeded(s.rules.ClearRowInterval) {
		s.timers.clearRow.Reset()
		removed := s.board.ClearAndCollapse()
		s.logger.Debug("rows collapsed", "rows", removed)
		s.flashColor = s.rules.FlashColors[0]
		s.state = StatePlaying
	}
}

// State returns the current play state.
func (s *Session) State() PlayState {
	return s.state
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.level
}

// Lines returns the cumulative cleared lines.
func (s *Session) Lines() int {
	return s.lines
}

// BackToBack reports whether a back-to-back streak is active.
func (s *Session) BackToBack() bool {
	return s.backToBack
}

// Rules returns the session configuration.
func (s *Session) Rules() Rules {
	return s.rules
}
