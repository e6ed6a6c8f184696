package snake

import (
	"testing"

	"github.com/ctrlsworld/arcade/internal/core"
)

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{Seed: 12345, ScreenW: 80, ScreenH: 24}
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and inputs stay in lockstep.
	g1 := New()
	g1.Reset(testConfig())
	g2 := New()
	g2.Reset(testConfig())

	input := core.NewInputFrame()
	for i := 0; i < 300; i++ {
		input.Clear()
		if i == 20 {
			input.Set(core.ActionDown)
		}
		if i == 40 {
			input.Set(core.ActionLeft)
		}
		if i == 90 {
			input.Set(core.ActionUp)
		}
		g1.Step(input)
		g2.Step(input)
	}

	if g1.Snapshot() != g2.Snapshot() {
		t.Errorf("snapshots diverged:\n%+v\n%+v", g1.Snapshot(), g2.Snapshot())
	}
}

func TestNoImmediateReversal(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	if g.direction != DirRight {
		t.Fatalf("expected initial direction right, got %v", g.direction)
	}

	input := core.NewInputFrame()
	input.Set(core.ActionLeft)
	g.Step(input)
	if g.nextDir == DirLeft {
		t.Error("reversal from right to left should be refused")
	}

	input.Clear()
	input.Set(core.ActionDown)
	g.Step(input)
	if g.nextDir != DirDown {
		t.Errorf("expected buffered direction down, got %v", g.nextDir)
	}
}

func TestFoodNeverSpawnsOnWallsOrSnake(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	for i := 0; i < 50; i++ {
		g.spawnFood()
		if g.walls[g.food] {
			t.Fatalf("food spawned on a wall at %+v", g.food)
		}
		if g.isSnakeAt(g.food) {
			t.Fatalf("food spawned on the snake at %+v", g.food)
		}
	}
}

func TestEatingGrowsAndScores(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Teleport the food directly in the head's path.
	head := g.snake[0]
	g.food = Point{X: head.X + 1, Y: head.Y}
	lenBefore := len(g.snake)

	g.moveSnake()
	if g.score != 1 {
		t.Fatalf("expected score 1 after eating, got %d", g.score)
	}
	if len(g.pending) == 0 || g.pending[0].Type != core.EventFoodEaten {
		t.Fatal("expected a food-eaten event")
	}

	// Growth lands over the following moves as the tail holds still.
	g.food = Point{X: -1, Y: -1} // Keep the path clear of the respawned food
	for i := 0; i < g.cfg.GrowthPerFood; i++ {
		g.moveSnake()
	}
	if len(g.snake) != lenBefore+g.cfg.GrowthPerFood {
		t.Fatalf("expected length %d, got %d", lenBefore+g.cfg.GrowthPerFood, len(g.snake))
	}
}

func TestWallCollisionEndsGame(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	// Drive right until the boundary wall.
	for i := 0; i < g.mapWidth+1; i++ {
		g.moveSnake()
		if g.gameOver {
			break
		}
	}
	if !g.gameOver {
		t.Fatal("expected game over at the wall")
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

func TestPauseHaltsMovement(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)
	if !g.paused {
		t.Fatal("expected paused state")
	}

	head := g.snake[0]
	empty := core.NewInputFrame()
	for i := 0; i < 100; i++ {
		g.Step(empty)
	}
	if g.snake[0] != head {
		t.Fatal("snake moved while paused")
	}
}

func TestCampaignLevelClears(t *testing.T) {
	g := New()
	g.Reset(testConfig())

	level := GetLevel(0)
	g.foodEaten = level.TargetFood - 1
	head := g.snake[0]
	g.food = Point{X: head.X + 1, Y: head.Y}

	g.moveSnake()
	if !g.levelCleared {
		t.Fatal("expected level cleared after reaching the food target")
	}

	// The clear animation runs, then the next arena loads.
	empty := core.NewInputFrame()
	for i := 0; i < 91; i++ {
		g.Step(empty)
	}
	if g.levelIndex != 1 {
		t.Fatalf("expected level index 1, got %d", g.levelIndex)
	}
	if g.foodEaten != 0 {
		t.Fatalf("expected food counter reset, got %d", g.foodEaten)
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig())
	g.gameOver = true
	g.score = 50

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	g.Step(restart)

	if g.gameOver {
		t.Fatal("expected a fresh game after restart")
	}
	if g.score != 0 {
		t.Fatalf("expected score reset, got %d", g.score)
	}
}

func TestAllLevelsValid(t *testing.T) {
	for i := 0; i < LevelCount(); i++ {
		level := GetLevel(i)
		if level == nil {
			t.Fatalf("level %d missing", i)
		}
		if level.Name == "" {
			t.Errorf("level %d has no name", i)
		}
		if level.TargetFood <= 0 {
			t.Errorf("level %d has no food target", i)
		}
		if len(level.Layout) == 0 {
			t.Errorf("level %d has an empty layout", i)
			continue
		}
		// Boundary rows and columns must be walls so the snake cannot
		// leave the arena silently.
		top := level.Layout[0]
		bottom := level.Layout[len(level.Layout)-1]
		for x := range top {
			if top[x] != '#' {
				t.Errorf("level %d: open top boundary at col %d", i, x)
			}
		}
		for x := range bottom {
			if bottom[x] != '#' {
				t.Errorf("level %d: open bottom boundary at col %d", i, x)
			}
		}
		for y, row := range level.Layout {
			if len(row) == 0 || row[0] != '#' || row[len(row)-1] != '#' {
				t.Errorf("level %d: open side boundary at row %d", i, y)
			}
		}
	}
}

func TestEndlessSpeedsUpAcrossCycles(t *testing.T) {
	g := NewEndless()
	g.Reset(testConfig())

	base := g.moveTicks
	g.levelIndex = LevelCount() // One full cycle in
	g.loadLevel()
	if g.moveTicks >= base {
		t.Fatalf("expected a faster interval after a full cycle, got %d (base %d)", g.moveTicks, base)
	}
}
