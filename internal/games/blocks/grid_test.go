package blocks

import (
	"testing"

	"github.com/ctrlsworld/arcade/internal/core"
)

func TestCollidesAllowsRowsAboveTheField(t *testing.T) {
	var g Grid
	p := NewPiece(PieceI)
	p.Row = -1

	if g.Collides(p, 0, 0) {
		t.Fatal("a piece partially above the top edge should not collide")
	}
	if !g.Collides(p, -10, 0) {
		t.Fatal("a piece past the left wall should collide")
	}
}

func TestClearRowsCompactsAndPreservesOrder(t *testing.T) {
	var g Grid

	// Distinct debris rows above and between two full rows.
	g.cells[15][0] = Cell{Filled: true, Color: core.ColorRed, Glyph: 'a'}
	g.setRow(16, true)
	g.cells[17][3] = Cell{Filled: true, Color: core.ColorBlue, Glyph: 'b'}
	g.setRow(18, true)
	g.cells[19][7] = Cell{Filled: true, Color: core.ColorGreen, Glyph: 'c'}

	full := g.FullRows()
	if len(full) != 2 || full[0] != 16 || full[1] != 18 {
		t.Fatalf("expected full rows [16 18], got %v", full)
	}

	g.ClearRows(full)

	// Survivors keep their relative order, shifted down by the clears
	// below them; two fresh empty rows appear at the top.
	if got := g.At(0, 17); got.Glyph != 'a' {
		t.Fatalf("expected row-15 debris at row 17, got %q", got.Glyph)
	}
	if got := g.At(3, 18); got.Glyph != 'b' {
		t.Fatalf("expected row-17 debris at row 18, got %q", got.Glyph)
	}
	if got := g.At(7, 19); got.Glyph != 'c' {
		t.Fatalf("expected row-19 debris to stay at row 19, got %q", got.Glyph)
	}
	for row := 0; row < 2; row++ {
		for col := 0; col < GridWidth; col++ {
			if g.At(col, row).Filled {
				t.Fatalf("expected empty inserted row %d, found cell at col %d", row, col)
			}
		}
	}
}

func TestMergeSetsColorAndGlow(t *testing.T) {
	var g Grid
	p := NewPiece(PieceO)
	p.Row = 18

	g.Merge(p)
	cell := g.At(4, 18)
	if !cell.Filled || cell.Color != core.ColorYellow {
		t.Fatalf("unexpected merged cell %+v", cell)
	}
	if cell.Glow != 1.0 {
		t.Fatalf("expected full glow on merge, got %f", cell.Glow)
	}

	g.DecayGlow(0.4)
	g.DecayGlow(0.4)
	g.DecayGlow(0.4)
	if got := g.At(4, 18).Glow; got != 0 {
		t.Fatalf("expected glow floored at 0, got %f", got)
	}
}

func TestAtOutOfRangeIsEmpty(t *testing.T) {
	var g Grid
	g.setRow(0, true)

	if g.At(-1, 0).Filled || g.At(GridWidth, 0).Filled || g.At(0, -1).Filled || g.At(0, GridHeight).Filled {
		t.Fatal("out-of-range cells should read as empty")
	}
}
