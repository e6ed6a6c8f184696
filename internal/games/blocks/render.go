package blocks

import (
	"fmt"

	"github.com/ctrlsworld/arcade/internal/core"
)

// Minimum screen size: board at 2 columns per cell plus the side panel.
const (
	minScreenW = GridWidth*2 + 22
	minScreenH = GridHeight + 3
)

// Render draws the board, the side panel and any phase overlay.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	boardX := 2
	boardY := 2

	g.renderBoard(dst, boardX, boardY)
	g.renderPanel(dst, boardX+GridWidth*2+4, boardY)

	switch g.phase {
	case PhaseWaiting:
		g.renderOverlay(dst, "Block Storm", "Press Enter to start")
	case PhasePaused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case PhaseGameOver:
		g.renderOverlay(dst, "Game Over", "Press R to restart")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Block Storm — Score: %d  Level: %d  Lines: %d", g.score, g.level, g.lines)
	if g.combo > 1 {
		hud += fmt.Sprintf("  Combo: x%d", g.combo)
	}
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderBoard draws the play field at 2 screen columns per grid cell,
// with walls, settled cells, the ghost outline and the active piece.
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	for row := 0; row < GridHeight; row++ {
		dst.Set(ox-1, oy+row, '│')
		dst.Set(ox+GridWidth*2, oy+row, '│')
	}
	dst.DrawHLine(ox-1, oy+GridHeight, GridWidth*2+2, '─')
	dst.Set(ox-1, oy+GridHeight, '└')
	dst.Set(ox+GridWidth*2, oy+GridHeight, '┘')

	flash := make(map[int]bool, len(g.flashRows))
	if g.clearFlash > 0 {
		for _, r := range g.flashRows {
			flash[r] = true
		}
	}

	for row := 0; row < GridHeight; row++ {
		for col := 0; col < GridWidth; col++ {
			x := ox + col*2
			y := oy + row

			if flash[row] {
				dst.SetColored(x, y, '▬', core.ColorWhite)
				dst.SetColored(x+1, y, '▬', core.ColorWhite)
				continue
			}

			cell := g.grid.At(col, row)
			if !cell.Filled {
				continue
			}
			color := cell.Color
			if cell.Glow > 0.5 {
				color = color.Bright()
			}
			dst.SetColored(x, y, cell.Glyph, color)
			dst.SetColored(x+1, y, cell.Glyph, color)
		}
	}

	if g.active != nil {
		g.renderGhost(dst, ox, oy)
		g.renderPiece(dst, g.active, ox, oy)
	}
}

// renderGhost outlines where the active piece would land.
func (g *Game) renderGhost(dst *core.Screen, ox, oy int) {
	ghostRow := g.GhostRow()
	if ghostRow == g.active.Row {
		return
	}
	for r := range g.active.Shape {
		for c := range g.active.Shape[r] {
			if !g.active.Shape[r][c] {
				continue
			}
			row := ghostRow + r
			if row < 0 {
				continue
			}
			x := ox + (g.active.Col+c)*2
			y := oy + row
			dst.SetColored(x, y, '░', core.ColorGray)
			dst.SetColored(x+1, y, '░', core.ColorGray)
		}
	}
}

func (g *Game) renderPiece(dst *core.Screen, p *Piece, ox, oy int) {
	for r := range p.Shape {
		for c := range p.Shape[r] {
			if !p.Shape[r][c] {
				continue
			}
			row := p.Row + r
			if row < 0 {
				continue
			}
			x := ox + (p.Col+c)*2
			y := oy + row
			dst.SetColored(x, y, p.Type.Glyph(), p.Type.Color())
			dst.SetColored(x+1, y, p.Type.Glyph(), p.Type.Color())
		}
	}
}

// renderPanel draws the next/hold previews and the bullet-time meter.
func (g *Game) renderPanel(dst *core.Screen, ox, oy int) {
	dst.DrawText(ox, oy, "Next:")
	g.renderPreview(dst, g.next, ox+1, oy+1)

	dst.DrawText(ox, oy+6, "Hold:")
	if g.hasHeld {
		g.renderPreview(dst, *g.held, ox+1, oy+7)
	} else {
		dst.DrawTextColored(ox+1, oy+7, "(empty)", core.ColorGray)
	}

	meterY := oy + 12
	label := "Bullet Time"
	if g.bulletTime {
		label = "BULLET TIME!"
	}
	dst.DrawText(ox, meterY, label)

	const meterWidth = 10
	filled := g.meter * meterWidth / meterMax
	for i := 0; i < meterWidth; i++ {
		ch := '·'
		color := core.ColorGray
		if i < filled {
			ch = '■'
			color = core.ColorCyan
			if g.meter >= meterMax {
				color = core.ColorBrightCyan
			}
		}
		dst.SetColored(ox+i, meterY+1, ch, color)
	}
	if g.meter >= meterMax && !g.bulletTime {
		dst.DrawTextColored(ox, meterY+2, "Press T!", core.ColorBrightCyan)
	}
}

// renderPreview draws a piece type's rotation-0 footprint.
func (g *Game) renderPreview(dst *core.Screen, t PieceType, ox, oy int) {
	shape := pieceTemplates[t].shape
	for r := range shape {
		for c := range shape[r] {
			if !shape[r][c] {
				continue
			}
			dst.SetColored(ox+c*2, oy+r, t.Glyph(), t.Color())
			dst.SetColored(ox+c*2+1, oy+r, t.Glyph(), t.Color())
		}
	}
}

// renderOverlay draws a centered two-line boxed message.
func (g *Game) renderOverlay(dst *core.Screen, title, subtitle string) {
	w := core.Max(len(title), len(subtitle)) + 6
	h := 5
	x := (dst.Width() - w) / 2
	y := (dst.Height() - h) / 2

	dst.DrawRect(core.NewRect(x, y, w, h), ' ')
	dst.DrawBox(core.NewRect(x, y, w, h))
	dst.DrawTextCentered(y+1, title)
	dst.DrawTextCentered(y+3, subtitle)
}
