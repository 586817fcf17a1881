package core

// cellAt returns the cell at (col, row).
func (b *Board) cellAt(col, row int) Cell {
	return b.cells[b.index(col, row)]
}

// setCell overwrites a single cell.
func (b *Board) setCell(col, row int, c Cell) {
	b.cells[b.index(col, row)] = c
}

func (b *Board) filledCount() int {
	n := 0
	for _, cell := range b.cells {
		if cell.Filled {
			n++
		}
	}
	return n
}

func (b *Board) clone() *Board {
	cells := make([]Cell, len(b.cells))
	copy(cells, b.cells)
	return &Board{
		width:   b.width,
		height:  b.height,
		cells:   cells,
		palette: b.palette,
	}
}

// reset empties every cell.
func (b *Board) reset() {
	for i := range b.cells {
		b.cells[i] = Empty()
	}
}
