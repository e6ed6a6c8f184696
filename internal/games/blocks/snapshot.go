package blocks

// SnapshotCell is one settled cell as seen by an observer.
type SnapshotCell struct {
	Filled bool
	Color  uint8
}

// SnapshotPiece describes a piece in a snapshot.
type SnapshotPiece struct {
	Type  PieceType
	Col   int
	Row   int
	Rot   int
	Shape [][]bool
}

// Snapshot is a complete, self-contained view of the session at one tick.
// It shares no memory with the game; mutating it has no effect on play.
type Snapshot struct {
	Grid   [GridHeight][GridWidth]SnapshotCell
	Active *SnapshotPiece
	Next   PieceType
	Held   *PieceType
	Ghost  int // Row the active piece would land on, -1 when none

	Score int
	Level int
	Lines int
	Combo int

	Meter           int
	BulletTime      bool
	BulletTimeTicks int

	Phase Phase
}

// Snapshot captures the current session state.
func (g *Game) Snapshot() Snapshot {
	var snap Snapshot

	cells := g.grid.Cells()
	for row := 0; row < GridHeight; row++ {
		for col := 0; col < GridWidth; col++ {
			snap.Grid[row][col] = SnapshotCell{
				Filled: cells[row][col].Filled,
				Color:  uint8(cells[row][col].Color),
			}
		}
	}

	if g.active != nil {
		p := g.active.Clone()
		snap.Active = &SnapshotPiece{
			Type:  p.Type,
			Col:   p.Col,
			Row:   p.Row,
			Rot:   p.Rot,
			Shape: p.Shape,
		}
	}
	snap.Next = g.next
	if g.hasHeld {
		held := *g.held
		snap.Held = &held
	}
	snap.Ghost = g.GhostRow()

	snap.Score = g.score
	snap.Level = g.level
	snap.Lines = g.lines
	snap.Combo = g.combo

	snap.Meter = g.meter
	snap.BulletTime = g.bulletTime
	snap.BulletTimeTicks = g.bulletTicks

	snap.Phase = g.phase
	return snap
}
