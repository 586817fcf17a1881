package core

import "fmt"

// Cell is a single board cell.
type Cell struct {
	Filled bool  // Whether the cell holds a locked block
	Color  Color // Valid only when Filled is true
}

// Empty returns an empty cell.
func Empty() Cell {
	return Cell{}
}

// FilledCell returns a filled cell with the given color.
func FilledCell(color Color) Cell {
	return Cell{Filled: true, Color: color}
}

// Block is one filled cell with its position, used for rendering.
type Block struct {
	Col, Row int
	Color    Color
}

// Board is the playfield. Cells are stored in row-major order: index = row*width + col.
// Row 0 is the top of the board.
type Board struct {
	width   int
	height  int
	cells   []Cell
	palette Palette
}

// NewBoard creates an empty board with the default palette.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("blockfall: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:   width,
		height:  height,
		cells:   make([]Cell, width*height),
		palette: DefaultPalette(),
	}
}

// SetPalette replaces the colors used when locking pieces.
func (b *Board) SetPalette(p Palette) {
	b.palette = p
}

// Palette returns the colors used when locking pieces.
func (b *Board) Palette() Palette {
	return b.palette
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// InBounds reports whether (col, row) is addressable.
func (b *Board) InBounds(col, row int) bool {
	return col >= 0 && row >= 0 && col < b.width && row < b.height
}

func (b *Board) index(col, row int) int {
	if !b.InBounds(col, row) {
		panic(fmt.Sprintf("blockfall: cell (%d,%d) outside %dx%d board", col, row, b.width, b.height))
	}
	return row*b.width + col
}

// CellFilled reports whether (col, row) is occupied.
// The coordinates must be in bounds; callers check InBounds first.
func (b *Board) CellFilled(col, row int) bool {
	return b.cells[b.index(col, row)].Filled
}

// LockPiece writes the piece's color into its four cells.
// No legality check is done here.
func (b *Board) LockPiece(p Piece) {
	if !p.Kind.IsActive() {
		return
	}
	color := b.palette.Of(p.Kind)
	for _, c := range p.Cells() {
		b.cells[b.index(c.Col, c.Row)] = FilledCell(color)
	}
}

// rowFull reports whether every column of row is filled.
func (b *Board) rowFull(row int) bool {
	for col := 0; col < b.width; col++ {
		if !b.CellFilled(col, row) {
			return false
		}
	}
	return true
}

// FullRows returns the indices of all full rows, bottom to top.
func (b *Board) FullRows() []int {
	var out []int
	for row := b.height - 1; row >= 0; row-- {
		if b.rowFull(row) {
			out = append(out, row)
		}
	}
	return out
}

// ClearAndCollapse removes every full row and shifts the remaining rows down,
// keeping their relative order. New empty rows appear at the top.
// Returns the number of rows removed.
func (b *Board) ClearAndCollapse() int {
	rows := b.FullRows()
	if len(rows) == 0 {
		return 0
	}

	cleared := make([]bool, b.height)
	for _, row := range rows {
		cleared[row] = true
	}

	write := b.height - 1
	for read := b.height - 1; read >= 0; read-- {
		if cleared[read] {
			continue
		}
		if read != write {
			copy(b.cells[write*b.width:(write+1)*b.width], b.cells[read*b.width:(read+1)*b.width])
		}
		write--
	}
	for row := write; row >= 0; row-- {
		for col := 0; col < b.width; col++ {
			b.cells[row*b.width+col] = Empty()
		}
	}

	return len(rows)
}

// SetRowColor paints every cell of a row. Used for the clear flash only.
func (b *Board) SetRowColor(color Color, row int) {
	for col := 0; col < b.width; col++ {
		b.cells[b.index(col, row)] = FilledCell(color)
	}
}

// FilledCells returns all filled cells in row-major order.
func (b *Board) FilledCells() []Block {
	var out []Block
	for i, cell := range b.cells {
		if !cell.Filled {
			continue
		}
		out = append(out, Block{
			Col:   i % b.width,
			Row:   i / b.width,
			Color: cell.Color,
		})
	}
	return out
}

// Surrounded reports whether the piece is boxed in: every orthogonal neighbor
// of its cells that is not part of the piece is out of bounds or filled.
func (b *Board) Surrounded(p Piece) bool {
	if !p.Kind.IsActive() {
		return false
	}
	cells := p.Cells()
	own := func(col, row int) bool {
		for _, c := range cells {
			if c.Col == col && c.Row == row {
				return true
			}
		}
		return false
	}

	for _, c := range cells {
		for _, d := range neighbors {
			col, row := c.Col+d.DCol, c.Row+d.DRow
			if own(col, row) || !b.InBounds(col, row) {
				continue
			}
			if !b.CellFilled(col, row) {
				return false
			}
		}
	}
	return true
}

var neighbors = [4]Offset{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
