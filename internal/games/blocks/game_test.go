package blocks

import (
	"testing"

	"github.com/ctrlsworld/arcade/internal/core"
)

// scriptedSource feeds a fixed, repeating piece sequence.
type scriptedSource struct {
	seq []PieceType
	i   int
}

func (s *scriptedSource) Next() PieceType {
	t := s.seq[s.i%len(s.seq)]
	s.i++
	return t
}

// newTestGame builds a started game with a scripted piece sequence.
func newTestGame(seq ...PieceType) *Game {
	g := New()
	g.SetPieceSource(&scriptedSource{seq: seq})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})
	g.Start()
	return g
}

func frame(actions ...core.Action) core.InputFrame {
	f := core.NewInputFrame()
	for _, a := range actions {
		f.Set(a)
	}
	return f
}

// verticalI returns an I piece rotated into its vertical orientation
// (occupying matrix column 2), positioned so its filled column is at
// the given grid column.
func verticalI(gridCol, row int) *Piece {
	return &Piece{
		Type:  PieceI,
		Shape: rotatedCW(pieceTemplates[PieceI].shape),
		Col:   gridCol - 2,
		Row:   row,
		Rot:   1,
	}
}

func TestOPieceDescendsExactlyEighteenRows(t *testing.T) {
	g := newTestGame(PieceO)

	// O spawns occupying rows 0-1; the bottom edge is row 19, so exactly
	// 18 single-row descents fit.
	for i := 0; i < 18; i++ {
		if !g.Move(0, 1) {
			t.Fatalf("descent %d failed, piece at row %d", i+1, g.active.Row)
		}
	}
	if g.active.Row != 18 {
		t.Fatalf("expected row 18 after 18 descents, got %d", g.active.Row)
	}
	if g.Move(0, 1) {
		t.Fatal("19th descent should be refused at the bottom edge")
	}
	if g.active.Row != 18 {
		t.Fatalf("refused move changed the row to %d", g.active.Row)
	}
}

func TestMoveRefusedAtWalls(t *testing.T) {
	g := newTestGame(PieceO)

	for g.MoveLeft() {
	}
	if g.active.Col != 0 {
		t.Fatalf("expected piece flush left at col 0, got %d", g.active.Col)
	}
	before := g.active.Clone()
	if g.MoveLeft() {
		t.Fatal("move into the wall should be refused")
	}
	if !g.active.Equal(before) {
		t.Fatal("refused move mutated the piece")
	}
}

func TestRotationSucceedsOrLeavesPieceUntouched(t *testing.T) {
	g := newTestGame(PieceT)

	before := g.active.Clone()
	if !g.RotateCW() {
		t.Fatal("rotation in open field should succeed")
	}
	if g.active.Rot != (before.Rot+1)%4 {
		t.Fatalf("expected rot %d, got %d", (before.Rot+1)%4, g.active.Rot)
	}

	// Wall a vertical I into a one-column well: every kick offset collides,
	// so the rotation must be refused without touching the piece.
	for row := 0; row < GridHeight; row++ {
		g.grid.setRow(row, true)
		g.grid.cells[row][5] = Cell{}
	}
	g.active = verticalI(5, 10)

	before = g.active.Clone()
	if g.RotateCW() {
		t.Fatal("rotation inside a one-column well should be refused")
	}
	if !g.active.Equal(before) {
		t.Fatal("refused rotation mutated the piece")
	}
	if g.RotateCCW() {
		t.Fatal("counterclockwise rotation should also be refused")
	}
	if !g.active.Equal(before) {
		t.Fatal("refused counterclockwise rotation mutated the piece")
	}
}

func TestWallKickNudgesPieceOffTheWall(t *testing.T) {
	g := newTestGame(PieceI)

	// Vertical I flush against the left wall: rotating to horizontal
	// requires a rightward kick.
	g.active = verticalI(0, 10)
	if !g.RotateCW() {
		t.Fatal("rotation at the wall should succeed via a kick")
	}
	if g.grid.Collides(g.active, 0, 0) {
		t.Fatal("kicked piece overlaps the field")
	}
	if g.active.Rot != 2 {
		t.Fatalf("expected rot 2, got %d", g.active.Rot)
	}
}

func TestFourRowClearScoresAndFillsMeter(t *testing.T) {
	g := newTestGame(PieceI)

	for row := 16; row < 20; row++ {
		g.grid.setRow(row, true)
		g.grid.cells[row][9] = Cell{}
	}
	g.active = verticalI(9, 0)

	g.HardDrop()

	// 16 rows of drop distance at 2 points each, then 800 * level 1 * combo 1.
	want := 16*2 + 800
	if g.score != want {
		t.Fatalf("expected score %d, got %d", want, g.score)
	}
	if g.lines != 4 {
		t.Fatalf("expected 4 lines, got %d", g.lines)
	}
	if g.combo != 1 {
		t.Fatalf("expected combo 1, got %d", g.combo)
	}
	if g.meter != 80 {
		t.Fatalf("expected meter 80 after four lines, got %d", g.meter)
	}

	var cleared *core.Event
	for i := range g.pending {
		if g.pending[i].Type == core.EventLinesCleared {
			cleared = &g.pending[i]
		}
	}
	if cleared == nil {
		t.Fatal("expected a lines-cleared event")
	}
	if cleared.Lines != 4 || cleared.Combo != 1 {
		t.Fatalf("expected lines=4 combo=1 in event, got %+v", cleared)
	}
}

func TestComboMultipliesConsecutiveClears(t *testing.T) {
	g := newTestGame(PieceO)

	fillAroundO := func() {
		for row := 18; row < 20; row++ {
			g.grid.setRow(row, true)
			g.grid.cells[row][4] = Cell{}
			g.grid.cells[row][5] = Cell{}
		}
	}

	fillAroundO()
	g.HardDrop() // 18*2 + 300*1*1
	first := 18*2 + 300
	if g.score != first {
		t.Fatalf("expected score %d after first clear, got %d", first, g.score)
	}

	fillAroundO()
	g.HardDrop() // 18*2 + 300*1*2
	want := first + 18*2 + 300*2
	if g.score != want {
		t.Fatalf("expected score %d after combo clear, got %d", want, g.score)
	}
	if g.combo != 2 {
		t.Fatalf("expected combo 2, got %d", g.combo)
	}
}

func TestComboResetsOnNonClearingLock(t *testing.T) {
	g := newTestGame(PieceO)
	g.combo = 3

	g.HardDrop() // Empty field: nothing clears
	if g.combo != 0 {
		t.Fatalf("expected combo reset to 0, got %d", g.combo)
	}
}

func TestHardDropGroundedEarnsNoBonus(t *testing.T) {
	g := newTestGame(PieceO)
	g.active.Row = 18 // Already resting on the floor

	g.HardDrop()
	if g.score != 0 {
		t.Fatalf("grounded hard drop should score 0, got %d", g.score)
	}
	if !g.grid.At(4, 18).Filled || !g.grid.At(5, 19).Filled {
		t.Fatal("piece did not lock in place")
	}
}

func TestHoldSwapsOncePerPiece(t *testing.T) {
	g := newTestGame(PieceT, PieceI, PieceO)

	if g.active.Type != PieceT || g.next != PieceI {
		t.Fatalf("unexpected opening pieces: active %v next %v", g.active.Type, g.next)
	}

	if !g.Hold() {
		t.Fatal("first hold should succeed")
	}
	if g.active.Type != PieceI {
		t.Fatalf("expected the queued piece to enter play, got %v", g.active.Type)
	}
	if g.held == nil || *g.held != PieceT {
		t.Fatal("expected T to be stashed")
	}
	if g.next != PieceO {
		t.Fatalf("expected next to advance to O, got %v", g.next)
	}

	before := g.active.Clone()
	heldBefore := *g.held
	if g.Hold() {
		t.Fatal("second hold for the same piece should be refused")
	}
	if !g.active.Equal(before) || *g.held != heldBefore {
		t.Fatal("refused hold changed state")
	}
}

func TestHoldAvailableAgainAfterLock(t *testing.T) {
	g := newTestGame(PieceT, PieceI, PieceO, PieceS)

	g.Hold() // T stashed, I in play
	g.HardDrop()

	if !g.Hold() {
		t.Fatal("hold should be available again for the next piece")
	}
	if g.active.Type != PieceT {
		t.Fatalf("expected the stashed T back in play, got %v", g.active.Type)
	}
}

func TestSpawnBlockedEndsGame(t *testing.T) {
	g := newTestGame(PieceO)
	g.grid.setRow(0, true)
	g.grid.setRow(1, true)

	g.spawn()
	if g.phase != PhaseGameOver {
		t.Fatalf("expected game over, got %v", g.phase)
	}
	if !g.State().GameOver {
		t.Fatal("state should report game over")
	}
	found := false
	for _, e := range g.pending {
		if e.Type == core.EventGameOver {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a game-over event")
	}
}

func TestWaitingPhaseStartsOnConfirm(t *testing.T) {
	g := New()
	g.SetPieceSource(&scriptedSource{seq: []PieceType{PieceO}})
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24, Seed: 1})

	if g.Phase() != PhaseWaiting {
		t.Fatalf("expected waiting phase after reset, got %v", g.Phase())
	}
	if g.ActivePiece() != nil {
		t.Fatal("no piece should be active before the game starts")
	}

	g.Step(frame(core.ActionConfirm))
	if g.Phase() != PhasePlaying {
		t.Fatalf("expected playing phase, got %v", g.Phase())
	}
	if g.ActivePiece() == nil {
		t.Fatal("expected an active piece after starting")
	}
}

func TestPauseFreezesSimulation(t *testing.T) {
	g := newTestGame(PieceO)

	g.Step(frame(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	rowBefore := g.active.Row
	for i := 0; i < 200; i++ {
		g.Step(frame())
	}
	if g.active.Row != rowBefore {
		t.Fatal("gravity advanced while paused")
	}

	g.Step(frame(core.ActionPause))
	if g.State().Paused {
		t.Fatal("expected unpaused state")
	}
	// Time spent before the pause is discarded: the full interval must
	// elapse again before the next descent.
	for i := 0; i < g.gravityInterval()-2; i++ {
		g.Step(frame())
	}
	if g.active.Row != rowBefore {
		t.Fatal("descent counter carried over across the pause")
	}
}

func TestGravityDescendsAtConfiguredInterval(t *testing.T) {
	g := newTestGame(PieceO)

	interval := g.gravityInterval()
	for i := 0; i < interval-1; i++ {
		g.Step(frame())
	}
	if g.active.Row != 0 {
		t.Fatalf("piece descended early at tick %d", interval-1)
	}
	g.Step(frame())
	if g.active.Row != 1 {
		t.Fatalf("expected row 1 after %d ticks, got %d", interval, g.active.Row)
	}
}

func TestSoftDropShortensInterval(t *testing.T) {
	g := newTestGame(PieceO)

	normal := g.gravityInterval()
	g.SetSoftDrop(true)
	fast := g.gravityInterval()
	if fast >= normal {
		t.Fatalf("soft drop interval %d should be shorter than %d", fast, normal)
	}
	if fast != g.cfg.Gravity.SoftDropTicks {
		t.Fatalf("expected soft drop interval %d, got %d", g.cfg.Gravity.SoftDropTicks, fast)
	}
}

func TestAutoShiftDelaysThenRepeats(t *testing.T) {
	g := newTestGame(PieceO)
	startCol := g.active.Col

	left := frame(core.ActionLeft)

	// Fresh press shifts immediately.
	g.Step(left)
	if g.active.Col != startCol-1 {
		t.Fatalf("expected immediate shift to %d, got %d", startCol-1, g.active.Col)
	}

	// Holding through the delay produces exactly one more shift.
	for i := 0; i < g.cfg.DAS.DelayTicks; i++ {
		g.Step(left)
	}
	if g.active.Col != startCol-2 {
		t.Fatalf("expected second shift to %d after delay, got %d", startCol-2, g.active.Col)
	}

	// Continued hold repeats at the configured cadence.
	for i := 0; i < g.cfg.DAS.RepeatTicks; i++ {
		g.Step(left)
	}
	if g.active.Col != startCol-3 {
		t.Fatalf("expected repeat shift to %d, got %d", startCol-3, g.active.Col)
	}

	// Releasing disarms auto-repeat.
	g.Step(frame())
	if g.dasDir != 0 {
		t.Fatal("auto-shift should disarm when no direction is held")
	}
}

func TestBulletTimeLifecycle(t *testing.T) {
	g := newTestGame(PieceO)

	if g.ActivateBulletTime() {
		t.Fatal("activation with an empty meter should be refused")
	}

	g.meter = meterMax
	base := g.gravityInterval()
	if !g.ActivateBulletTime() {
		t.Fatal("activation with a full meter should succeed")
	}
	if g.meter != 0 {
		t.Fatalf("meter should drain on activation, got %d", g.meter)
	}
	if got := g.gravityInterval(); got != base*g.cfg.BulletTime.SlowFactor {
		t.Fatalf("expected slowed interval %d, got %d", base*g.cfg.BulletTime.SlowFactor, got)
	}

	started := false
	for _, e := range g.pending {
		if e.Type == core.EventBulletTimeStarted {
			started = true
		}
	}
	if !started {
		t.Fatal("expected a bullet-time-started event")
	}
	g.pending = nil

	for i := 0; i < g.cfg.BulletTime.DurationTicks; i++ {
		g.stepBulletTime()
	}
	if g.bulletTime {
		t.Fatal("slowdown should expire after its duration")
	}
	ended := false
	for _, e := range g.pending {
		if e.Type == core.EventBulletTimeEnded {
			ended = true
		}
	}
	if !ended {
		t.Fatal("expected a bullet-time-ended event")
	}
}

func TestMeterCapsAndAutoActivates(t *testing.T) {
	g := newTestGame(PieceO)
	g.meter = 90

	for row := 18; row < 20; row++ {
		g.grid.setRow(row, true)
		g.grid.cells[row][4] = Cell{}
		g.grid.cells[row][5] = Cell{}
	}
	g.HardDrop() // Two lines: 90 + 40 caps at 100 and auto-activates

	if !g.bulletTime {
		t.Fatal("full meter should auto-activate bullet time")
	}
	if g.meter != 0 {
		t.Fatalf("meter should drain on auto-activation, got %d", g.meter)
	}
}

func TestLevelAdvancesWithLines(t *testing.T) {
	g := newTestGame(PieceO)
	g.lines = g.cfg.Scoring.LinesPerLevel - 1

	for row := 18; row < 20; row++ {
		g.grid.setRow(row, true)
		g.grid.cells[row][4] = Cell{}
		g.grid.cells[row][5] = Cell{}
	}
	g.HardDrop()

	if g.level != 2 {
		t.Fatalf("expected level 2, got %d", g.level)
	}
	found := false
	for _, e := range g.pending {
		if e.Type == core.EventLevelUp {
			found = true
		}
	}
	if !found {
		t.Fatal("expected a level-up event")
	}
}

func TestGhostRowTracksLandingPosition(t *testing.T) {
	g := newTestGame(PieceO)

	if got := g.GhostRow(); got != 18 {
		t.Fatalf("expected ghost row 18 on an empty field, got %d", got)
	}

	g.grid.setRow(19, true)
	if got := g.GhostRow(); got != 17 {
		t.Fatalf("expected ghost row 17 above debris, got %d", got)
	}
}

func TestRestartFromGameOver(t *testing.T) {
	g := newTestGame(PieceO)
	g.score = 1234
	g.phase = PhaseGameOver

	g.Step(frame(core.ActionRestart))
	if g.Phase() != PhaseWaiting {
		t.Fatalf("expected waiting phase after restart, got %v", g.Phase())
	}
	if g.State().Score != 0 {
		t.Fatalf("expected score reset, got %d", g.State().Score)
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	g := newTestGame(PieceT, PieceI)

	snap := g.Snapshot()
	if snap.Active == nil || snap.Active.Type != PieceT {
		t.Fatal("snapshot missed the active piece")
	}
	if snap.Next != PieceI {
		t.Fatalf("expected next I in snapshot, got %v", snap.Next)
	}
	if snap.Ghost != g.GhostRow() {
		t.Fatalf("snapshot ghost %d disagrees with GhostRow %d", snap.Ghost, g.GhostRow())
	}

	snap.Active.Shape[1][1] = !snap.Active.Shape[1][1]
	snap.Grid[0][0].Filled = true
	if g.grid.At(0, 0).Filled {
		t.Fatal("mutating the snapshot leaked into the game")
	}
	if g.active.Shape[1][1] == snap.Active.Shape[1][1] {
		t.Fatal("snapshot shares shape memory with the game")
	}
}
