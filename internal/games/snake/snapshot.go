package snake

// SessionState classifies the session for snapshots.
type SessionState string

const (
	StatePlaying      SessionState = "playing"
	StateLevelCleared SessionState = "level_cleared"
	StateGameOver     SessionState = "game_over"
	StateWin          SessionState = "win"
	StateTooSmall     SessionState = "too_small"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick      uint64
	Mode      string
	Level     int // 1-indexed for display
	Score     int
	FoodEaten int
	SnakeLen  int
	Head      Point
	Dir       Direction
	Food      Point
	MoveTicks int
	State     SessionState
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StateTooSmall
	case g.won:
		state = StateWin
	case g.gameOver:
		state = StateGameOver
	case g.levelCleared:
		state = StateLevelCleared
	}

	var head Point
	if len(g.snake) > 0 {
		head = g.snake[0]
	}

	return Snapshot{
		Tick:      g.tick,
		Mode:      string(g.mode),
		Level:     g.levelIndex + 1,
		Score:     g.score,
		FoodEaten: g.foodEaten,
		SnakeLen:  len(g.snake),
		Head:      head,
		Dir:       g.direction,
		Food:      g.food,
		MoveTicks: g.moveTicks,
		State:     state,
	}
}
