package blockfall

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
	engine "github.com/vovakirdan/blockfall/internal/games/blockfall/core"
)

const (
	cellWidth    = 2  // Screen columns per board cell
	sidebarWidth = 18 // Gap plus next preview and HUD
	previewW     = 4*cellWidth + 2
	previewH     = 4
)

const (
	blockRune = '█'
	ghostRune = '░'
	emptyRune = '·'
)

// colorOf maps an engine color to the platform palette.
func colorOf(c engine.Color) core.Color {
	switch c {
	case engine.ColorYellow:
		return core.ColorYellow
	case engine.ColorBlue:
		return core.ColorBlue
	case engine.ColorPurple:
		return core.ColorMagenta
	case engine.ColorOrange:
		return core.ColorOrange
	case engine.ColorGreen:
		return core.ColorGreen
	case engine.ColorRed:
		return core.ColorRed
	case engine.ColorSkyBlue:
		return core.ColorCyan
	case engine.ColorWhite:
		return core.ColorBrightWhite
	case engine.ColorLightGray:
		return core.ColorGray
	default:
		return core.ColorDefault
	}
}

// layout returns the board frame, including its border.
func (g *Game) layout(dst *core.Screen) core.Rect {
	boardW := g.rules.Width*cellWidth + 2
	boardH := g.rules.Height + 2
	x := (dst.Width() - boardW - sidebarWidth) / 2
	y := (dst.Height() - boardH) / 2
	return core.NewRect(core.Max(x, 0), core.Max(y, 0), boardW, boardH)
}

// Render draws the current state into dst.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.session == nil {
		return
	}

	if g.tooSmall || dst.Width() < g.minW || dst.Height() < g.minH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", g.minW, g.minH))
		return
	}

	snap := g.session.Snapshot()
	frame := g.layout(dst)

	g.renderBoard(dst, frame, snap)
	g.renderSidebar(dst, frame, snap)
	g.renderOverlay(dst, frame, snap)
}

// setCell draws one board cell; cells outside the board are skipped.
func setCell(dst *core.Screen, frame core.Rect, snap engine.Snapshot, col, row int, r rune, c core.Color) {
	if col < 0 || col >= snap.Width || row < 0 || row >= snap.Height {
		return
	}
	x := frame.X + 1 + col*cellWidth
	y := frame.Y + 1 + row
	for i := 0; i < cellWidth; i++ {
		dst.SetWithColor(x+i, y, r, c)
	}
}

func (g *Game) renderBoard(dst *core.Screen, frame core.Rect, snap engine.Snapshot) {
	dst.DrawBoxWithColor(frame, core.ColorGray)

	for row := 0; row < snap.Height; row++ {
		for col := 0; col < snap.Width; col++ {
			x := frame.X + 1 + col*cellWidth
			dst.SetWithColor(x, frame.Y+1+row, emptyRune, core.ColorDarkGray)
		}
	}

	for _, b := range snap.Blocks {
		setCell(dst, frame, snap, b.Col, b.Row, blockRune, colorOf(b.Color))
	}

	if !snap.Active || snap.State == engine.StateGameOver {
		return
	}

	if snap.GhostRow != snap.Current.Row {
		for _, c := range snap.GhostCells {
			setCell(dst, frame, snap, c.Col, c.Row, ghostRune, core.ColorDarkGray)
		}
	}
	color := colorOf(snap.CurrentColor)
	for _, c := range snap.CurrentCells {
		setCell(dst, frame, snap, c.Col, c.Row, blockRune, color)
	}
}

func (g *Game) renderSidebar(dst *core.Screen, frame core.Rect, snap engine.Snapshot) {
	x := frame.Right() + 2
	y := frame.Y

	dst.DrawTextWithColor(x, y, "NEXT", core.ColorBrightWhite)
	box := core.NewRect(x, y+1, previewW, previewH)
	dst.DrawBoxWithColor(box, core.ColorGray)
	if snap.Next.IsActive() {
		g.renderPreview(dst, box, snap.Next)
	}

	y = box.Bottom() + 1
	stats := []struct {
		label string
		value string
	}{
		{"SCORE", fmt.Sprintf("%d", snap.Score)},
		{"LEVEL", fmt.Sprintf("%d", snap.Level)},
		{"LINES", fmt.Sprintf("%d", snap.Lines)},
	}
	for _, s := range stats {
		dst.DrawTextWithColor(x, y, s.label, core.ColorGray)
		dst.DrawTextWithColor(x, y+1, s.value, core.ColorBrightWhite)
		y += 3
	}

	if snap.LastClear != engine.ClearNone {
		dst.DrawTextWithColor(x, y, snap.LastClear.String(), core.ColorYellow)
	}
	if snap.BackToBack {
		dst.DrawTextWithColor(x, y+1, "Back-to-Back", core.ColorOrange)
	}
}

// renderPreview draws kind in its spawn orientation, centered in box.
func (g *Game) renderPreview(dst *core.Screen, box core.Rect, kind engine.PieceKind) {
	cells := engine.NewPiece(kind, 0, 0).Cells()
	minCol, maxCol := cells[0].Col, cells[0].Col
	minRow, maxRow := cells[0].Row, cells[0].Row
	for _, c := range cells[1:] {
		minCol = core.Min(minCol, c.Col)
		maxCol = core.Max(maxCol, c.Col)
		minRow = core.Min(minRow, c.Row)
		maxRow = core.Max(maxRow, c.Row)
	}

	w := (maxCol - minCol + 1) * cellWidth
	h := maxRow - minRow + 1
	ox := box.X + 1 + (box.W-2-w)/2
	oy := box.Y + 1 + (box.H-2-h)/2

	color := colorOf(g.rules.Palette.Of(kind))
	for _, c := range cells {
		x := ox + (c.Col-minCol)*cellWidth
		y := oy + c.Row - minRow
		for i := 0; i < cellWidth; i++ {
			dst.SetWithColor(x+i, y, blockRune, color)
		}
	}
}

func (g *Game) renderOverlay(dst *core.Screen, frame core.Rect, snap engine.Snapshot) {
	switch snap.State {
	case engine.StateStart:
		drawCenteredBox(dst, frame, "BLOCKFALL", "ENTER to start")
	case engine.StatePaused:
		drawCenteredBox(dst, frame, "PAUSED", "P to resume")
	case engine.StateGameOver:
		drawCenteredBox(dst, frame, "GAME OVER", fmt.Sprintf("Score %d  R to retry", snap.Score))
	}
}

// drawCenteredBox draws a message box centered over the board.
func drawCenteredBox(dst *core.Screen, frame core.Rect, title, subtitle string) {
	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	cx, cy := frame.Center()
	box := core.NewRect(cx-boxW/2, cy-boxH/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBoxWithColor(box, core.ColorBrightWhite)
	dst.DrawTextWithColor(box.X+(boxW-len(title))/2, box.Y+1, title, core.ColorBrightWhite)
	dst.DrawText(box.X+(boxW-len(subtitle))/2, box.Y+3, subtitle)
}
