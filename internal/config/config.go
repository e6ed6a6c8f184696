// Package config provides YAML-based game configuration loading and
// difficulty presets for the arcade platform.
package config

// BlocksConfig contains all tuning for the falling-block game.
type BlocksConfig struct {
	Gravity    BlocksGravity    `yaml:"gravity"`
	DAS        BlocksDAS        `yaml:"das"`
	Scoring    BlocksScoring    `yaml:"scoring"`
	BulletTime BlocksBulletTime `yaml:"bullet_time"`
}

// BlocksGravity defines the descent timing curve in simulation ticks.
type BlocksGravity struct {
	BaseTicks     int `yaml:"base_ticks"`      // Drop interval at level 1
	TicksPerLevel int `yaml:"ticks_per_level"` // Linear speedup per level
	MinTicks      int `yaml:"min_ticks"`       // Interval floor
	SoftDropTicks int `yaml:"soft_drop_ticks"` // Interval while soft-dropping
}

// BlocksDAS defines the delayed-auto-shift policy for held horizontal input.
type BlocksDAS struct {
	DelayTicks  int `yaml:"delay_ticks"`  // Ticks before auto-repeat kicks in
	RepeatTicks int `yaml:"repeat_ticks"` // Ticks between repeated shifts
}

// BlocksScoring defines progression and bonus parameters. The line-clear
// base table itself is fixed in the engine.
type BlocksScoring struct {
	LinesPerLevel   int `yaml:"lines_per_level"`
	HardDropPerCell int `yaml:"hard_drop_per_cell"`
}

// BlocksBulletTime defines the earned slowdown mode.
type BlocksBulletTime struct {
	GainPerLine   int `yaml:"gain_per_line"`  // Meter points per cleared line
	DurationTicks int `yaml:"duration_ticks"` // Slowdown length once active
	SlowFactor    int `yaml:"slow_factor"`    // Gravity interval multiplier
}

// SnakeConfig contains tuning for the snake game.
type SnakeConfig struct {
	MoveEveryTicks int `yaml:"move_every_ticks"` // Base movement interval
	SpeedUpEvery   int `yaml:"speed_up_every"`   // Food eaten per speedup
	MinMoveTicks   int `yaml:"min_move_ticks"`   // Movement interval floor
	GrowthPerFood  int `yaml:"growth_per_food"`  // Segments gained per food
}

// DuelConfig contains tuning for the combat encounter game.
type DuelConfig struct {
	PlayerHP       int `yaml:"player_hp"`
	FoeBaseHP      int `yaml:"foe_base_hp"`
	FoeHPPerRound  int `yaml:"foe_hp_per_round"`
	WindupTicks    int `yaml:"windup_ticks"`     // Telegraph length, round 1
	WindupMinTicks int `yaml:"windup_min_ticks"` // Telegraph floor
	RestTicks      int `yaml:"rest_ticks"`       // Foe idle time between attacks
	StrikeDamage   int `yaml:"strike_damage"`    // Player attack damage
	FoeDamage      int `yaml:"foe_damage"`       // Unblocked foe attack damage
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ApplyBlocksPreset modifies the blocks config based on a difficulty preset.
// Easy slows the base gravity and fills the bullet-time meter faster; hard
// does the opposite.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.BaseTicks += 12
		cfg.BulletTime.GainPerLine += 5
	case DifficultyHard:
		cfg.Gravity.BaseTicks -= 12
		if cfg.Gravity.BaseTicks < cfg.Gravity.MinTicks {
			cfg.Gravity.BaseTicks = cfg.Gravity.MinTicks
		}
		cfg.BulletTime.GainPerLine -= 5
		if cfg.BulletTime.GainPerLine < 5 {
			cfg.BulletTime.GainPerLine = 5
		}
	}
}

// ApplySnakePreset modifies the snake config based on a difficulty preset.
func ApplySnakePreset(cfg *SnakeConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.MoveEveryTicks += 2
	case DifficultyHard:
		cfg.MoveEveryTicks -= 2
		if cfg.MoveEveryTicks < cfg.MinMoveTicks {
			cfg.MoveEveryTicks = cfg.MinMoveTicks
		}
	}
}

// ApplyDuelPreset modifies the duel config based on a difficulty preset.
func ApplyDuelPreset(cfg *DuelConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.WindupTicks += 15
		cfg.PlayerHP += 20
	case DifficultyHard:
		cfg.WindupTicks -= 15
		if cfg.WindupTicks < cfg.WindupMinTicks {
			cfg.WindupTicks = cfg.WindupMinTicks
		}
	}
}
