package core

// Point is an absolute board coordinate.
type Point struct {
	Col, Row int
}

// RotDir is a rotation direction.
type RotDir int

const (
	RotateCW RotDir = iota
	RotateCCW
)

// KickOffsets are the placement candidates tried, in order, when rotating or
// spawning: in place, right, left, down, up.
var KickOffsets = [5]Offset{
	{0, 0},
	{1, 0},
	{-1, 0},
	{0, 1},
	{0, -1},
}

// pose is a candidate placement.
type pose struct {
	col, row    int
	orientation uint8
}

// Piece is a tetromino on the board. It is a plain value; copies are independent.
type Piece struct {
	Kind        PieceKind
	Col         int   // Anchor column
	Row         int   // Anchor row
	Orientation uint8 // 0..3
}

// NewPiece returns a piece in orientation 0 anchored at (col, row).
func NewPiece(kind PieceKind, col, row int) Piece {
	return Piece{Kind: kind, Col: col, Row: row}
}

// Cells returns the four occupied board cells.
func (p Piece) Cells() [4]Point {
	return cellsAt(p.Kind, pose{col: p.Col, row: p.Row, orientation: p.Orientation})
}

func cellsAt(kind PieceKind, at pose) [4]Point {
	var out [4]Point
	for i, o := range kind.Shape(at.orientation) {
		out[i] = Point{Col: at.col + o.DCol, Row: at.row + o.DRow}
	}
	return out
}

// CanMove reports whether every cell translated by (dcol, drow) is in bounds and empty.
// A piece is grounded when CanMove(0, 1, board) is false.
func (p Piece) CanMove(dcol, drow int, board *Board) bool {
	return fitsAt(p.Kind, board, pose{col: p.Col + dcol, row: p.Row + drow, orientation: p.Orientation})
}

// TryMove applies the translation if it is legal.
func (p *Piece) TryMove(dcol, drow int, board *Board) bool {
	if !p.Kind.IsActive() || !p.CanMove(dcol, drow, board) {
		return false
	}
	p.Col += dcol
	p.Row += drow
	return true
}

// TryRotate rotates one step in dir, kicking if needed.
// On failure the piece is unchanged.
func (p *Piece) TryRotate(dir RotDir, board *Board) bool {
	if !p.Kind.IsActive() {
		return false
	}
	next := (p.Orientation + 1) & 3
	if dir == RotateCCW {
		next = (p.Orientation + 3) & 3
	}
	return p.tryOffsets(board, pose{col: p.Col, row: p.Row, orientation: next})
}

// TryKick nudges a freshly generated piece into the first legal kick position
// for its current orientation.
func (p *Piece) TryKick(board *Board) bool {
	if !p.Kind.IsActive() {
		return false
	}
	return p.tryOffsets(board, pose{col: p.Col, row: p.Row, orientation: p.Orientation})
}

// tryOffsets commits the first kick candidate around base that fits.
func (p *Piece) tryOffsets(board *Board, base pose) bool {
	for _, k := range KickOffsets {
		candidate := pose{
			col:         base.col + k.DCol,
			row:         base.row + k.DRow,
			orientation: base.orientation,
		}
		if fitsAt(p.Kind, board, candidate) {
			p.Col = candidate.col
			p.Row = candidate.row
			p.Orientation = candidate.orientation
			return true
		}
	}
	return false
}

func fitsAt(kind PieceKind, board *Board, at pose) bool {
	for _, c := range cellsAt(kind, at) {
		if !board.InBounds(c.Col, c.Row) {
			return false
		}
		if board.CellFilled(c.Col, c.Row) {
			return false
		}
	}
	return true
}

// DropDistance returns how many rows the piece can fall before it is grounded.
func (p Piece) DropDistance(board *Board) int {
	if !p.Kind.IsActive() {
		return 0
	}
	n := 0
	for p.CanMove(0, n+1, board) {
		n++
	}
	return n
}
