package core

// Snapshot is a read-only copy of the session taken between updates.
type Snapshot struct {
	State  PlayState
	Width  int
	Height int
	Blocks []Block // Locked cells, row-major

	Active       bool // Whether a piece is falling
	Current      Piece
	CurrentCells [4]Point
	CurrentColor Color
	GhostCells   [4]Point // Landing position of the current piece
	GhostRow     int      // Anchor row of the landing position
	Next         PieceKind

	Score      int
	Level      int
	Lines      int
	BackToBack bool
	LastClear  ClearResult
	LastAction Action

	FlashRows  []int // Rows being cleared, bottom to top
	FlashColor Color
}

// Snapshot captures the state for rendering.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:      s.state,
		Width:      s.board.Width(),
		Height:     s.board.Height(),
		Blocks:     s.board.FilledCells(),
		Next:       s.next.Kind,
		Score:      s.score,
		Level:      s.level,
		Lines:      s.lines,
		BackToBack: s.backToBack,
		LastClear:  s.lastClear,
		LastAction: s.lastAction,
		FlashColor: s.flashColor,
	}

	if s.current.Kind.IsActive() {
		snap.Active = true
		snap.Current = s.current
		snap.CurrentCells = s.current.Cells()
		snap.CurrentColor = s.board.Palette().Of(s.current.Kind)

		ghost := s.current
		ghost.Row += ghost.DropDistance(s.board)
		snap.GhostRow = ghost.Row
		snap.GhostCells = ghost.Cells()
	}

	if s.state == StateClearBlocks || (s.state == StatePaused && s.resume == StateClearBlocks) {
		snap.FlashRows = s.board.FullRows()
	}
	return snap
}
