package core

// EventType identifies a discrete game occurrence. Events are advisory:
// the platform forwards them to audio cues and stat hooks, and games never
// wait on their delivery.
type EventType int

const (
	EventPieceLocked       EventType = iota // A piece merged into the grid
	EventLinesCleared                       // One or more rows cleared (Lines/Combo set)
	EventLevelUp                            // Level advanced
	EventBulletTimeStarted                  // Bullet time slowdown began
	EventBulletTimeEnded                    // Bullet time slowdown expired
	EventFoodEaten                          // Snake ate food
	EventStruck                             // A combat hit landed
	EventGameOver                           // Terminal state reached
)

// String returns a human-readable name for the event type.
func (t EventType) String() string {
	switch t {
	case EventPieceLocked:
		return "PieceLocked"
	case EventLinesCleared:
		return "LinesCleared"
	case EventLevelUp:
		return "LevelUp"
	case EventBulletTimeStarted:
		return "BulletTimeStarted"
	case EventBulletTimeEnded:
		return "BulletTimeEnded"
	case EventFoodEaten:
		return "FoodEaten"
	case EventStruck:
		return "Struck"
	case EventGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Event is a discrete notification emitted by a game during one Step.
type Event struct {
	Type  EventType
	Lines int // Rows cleared, for EventLinesCleared
	Combo int // Consecutive clearing locks, for EventLinesCleared
}
