package blocks

import "testing"

func TestSpawnPositionIsCentered(t *testing.T) {
	cases := []struct {
		piece PieceType
		col   int
	}{
		{PieceI, 3}, // 4-wide matrix in a 10-wide field
		{PieceO, 4}, // 2-wide matrix
		{PieceT, 3}, // 3-wide matrix
		{PieceL, 3},
	}
	for _, tc := range cases {
		p := NewPiece(tc.piece)
		if p.Col != tc.col {
			t.Errorf("%v: expected spawn col %d, got %d", tc.piece, tc.col, p.Col)
		}
		if p.Row != 0 || p.Rot != 0 {
			t.Errorf("%v: expected spawn at row 0 rot 0, got row %d rot %d", tc.piece, p.Row, p.Rot)
		}
	}
}

func TestFourClockwiseRotationsRestoreShape(t *testing.T) {
	for typ := PieceType(0); typ < PieceTypeCount; typ++ {
		orig := NewPiece(typ)
		shape := orig.Shape
		for i := 0; i < 4; i++ {
			shape = rotatedCW(shape)
		}
		for r := range shape {
			for c := range shape[r] {
				if shape[r][c] != orig.Shape[r][c] {
					t.Fatalf("%v: shape differs at (%d,%d) after four rotations", typ, r, c)
				}
			}
		}
	}
}

func TestCounterclockwiseUndoesClockwise(t *testing.T) {
	for typ := PieceType(0); typ < PieceTypeCount; typ++ {
		orig := NewPiece(typ)
		roundTrip := rotatedCCW(rotatedCW(orig.Shape))
		for r := range roundTrip {
			for c := range roundTrip[r] {
				if roundTrip[r][c] != orig.Shape[r][c] {
					t.Fatalf("%v: CCW did not undo CW at (%d,%d)", typ, r, c)
				}
			}
		}
	}
}

func TestRotatedIGoesVertical(t *testing.T) {
	vertical := rotatedCW(pieceTemplates[PieceI].shape)
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			want := c == 2
			if vertical[r][c] != want {
				t.Fatalf("expected vertical I in column 2 only, cell (%d,%d)=%v", r, c, vertical[r][c])
			}
		}
	}
}

func TestCloneIsIndependent(t *testing.T) {
	p := NewPiece(PieceT)
	clone := p.Clone()
	if !p.Equal(clone) {
		t.Fatal("clone should equal the original")
	}

	clone.Shape[0][1] = false
	clone.Col++
	if p.Equal(clone) {
		t.Fatal("mutating the clone should not affect equality")
	}
	if !p.Shape[0][1] {
		t.Fatal("clone shares shape memory with the original")
	}
}

func TestPieceTypeAttributes(t *testing.T) {
	for typ := PieceType(0); typ < PieceTypeCount; typ++ {
		if typ.String() == "?" {
			t.Errorf("type %d has no name", typ)
		}
		if typ.Glyph() == '?' {
			t.Errorf("%v has no glyph", typ)
		}
	}
	if PieceType(-1).Glyph() != '?' || PieceTypeCount.String() != "?" {
		t.Error("out-of-range types should degrade to placeholders")
	}
}
