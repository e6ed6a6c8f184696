package blocks

import "github.com/ctrlsworld/arcade/internal/core"

// Play-field dimensions.
const (
	GridWidth  = 10
	GridHeight = 20
)

// Cell is one play-field cell. Glow is a cosmetic highlight set to 1.0
// when a piece locks and decayed each tick; it never affects collision.
type Cell struct {
	Filled bool
	Color  core.Color
	Glyph  rune
	Glow   float64
}

// Grid is the fixed-size play field. Rows are indexed top to bottom.
type Grid struct {
	cells [GridHeight][GridWidth]Cell
}

// At returns the cell at (col, row). Out-of-range coordinates return an
// empty cell.
func (g *Grid) At(col, row int) Cell {
	if col < 0 || col >= GridWidth || row < 0 || row >= GridHeight {
		return Cell{}
	}
	return g.cells[row][col]
}

// Collides reports whether the piece, translated by (dCol, dRow), would
// overlap a filled cell or leave the field horizontally or below the
// bottom. Cells above the top edge are allowed so pieces can rotate and
// spawn partially off-screen.
func (g *Grid) Collides(p *Piece, dCol, dRow int) bool {
	for r := range p.Shape {
		for c := range p.Shape[r] {
			if !p.Shape[r][c] {
				continue
			}
			col := p.Col + c + dCol
			row := p.Row + r + dRow

			if col < 0 || col >= GridWidth || row >= GridHeight {
				return true
			}
			if row >= 0 && g.cells[row][col].Filled {
				return true
			}
		}
	}
	return false
}

// Merge locks the piece's cells into the grid with full glow.
// Cells above the top edge are dropped.
func (g *Grid) Merge(p *Piece) {
	for r := range p.Shape {
		for c := range p.Shape[r] {
			if !p.Shape[r][c] {
				continue
			}
			col := p.Col + c
			row := p.Row + r
			if row < 0 || row >= GridHeight || col < 0 || col >= GridWidth {
				continue
			}
			g.cells[row][col] = Cell{
				Filled: true,
				Color:  p.Type.Color(),
				Glyph:  p.Type.Glyph(),
				Glow:   1.0,
			}
		}
	}
}

// FullRows returns the indices of rows where every cell is filled,
// in top-to-bottom order.
func (g *Grid) FullRows() []int {
	var full []int
	for row := 0; row < GridHeight; row++ {
		filled := true
		for col := 0; col < GridWidth; col++ {
			if !g.cells[row][col].Filled {
				filled = false
				break
			}
		}
		if filled {
			full = append(full, row)
		}
	}
	return full
}

// ClearRows atomically removes the given rows and inserts the same number
// of zero-filled rows at the top, preserving all remaining rows in their
// relative order.
func (g *Grid) ClearRows(rows []int) {
	if len(rows) == 0 {
		return
	}

	cleared := make(map[int]bool, len(rows))
	for _, r := range rows {
		cleared[r] = true
	}

	var next [GridHeight][GridWidth]Cell
	dst := GridHeight - 1
	for src := GridHeight - 1; src >= 0; src-- {
		if cleared[src] {
			continue
		}
		next[dst] = g.cells[src]
		dst--
	}
	// Rows above dst stay zero-valued (empty).
	g.cells = next
}

// DecayGlow reduces every cell's glow by the given amount, flooring at 0.
func (g *Grid) DecayGlow(amount float64) {
	for row := range g.cells {
		for col := range g.cells[row] {
			if g.cells[row][col].Glow > 0 {
				g.cells[row][col].Glow -= amount
				if g.cells[row][col].Glow < 0 {
					g.cells[row][col].Glow = 0
				}
			}
		}
	}
}

// Cells returns a copy of the full cell matrix for snapshots.
func (g *Grid) Cells() [GridHeight][GridWidth]Cell {
	return g.cells
}

// setRow fills an entire row (test helper and debris generator).
func (g *Grid) setRow(row int, filled bool) {
	for col := 0; col < GridWidth; col++ {
		if filled {
			g.cells[row][col] = Cell{Filled: true, Color: core.ColorGray, Glyph: '█'}
		} else {
			g.cells[row][col] = Cell{}
		}
	}
}
