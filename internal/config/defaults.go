package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

//go:embed defaults/duel.yaml
var defaultDuelYAML []byte

// DefaultBlocksConfig returns the default falling-block configuration.
// Tick values assume the platform's 60 ticks/second rate.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Gravity: BlocksGravity{
			BaseTicks:     48,
			TicksPerLevel: 4,
			MinTicks:      6,
			SoftDropTicks: 2,
		},
		DAS: BlocksDAS{
			DelayTicks:  10,
			RepeatTicks: 3,
		},
		Scoring: BlocksScoring{
			LinesPerLevel:   10,
			HardDropPerCell: 2,
		},
		BulletTime: BlocksBulletTime{
			GainPerLine:   20,
			DurationTicks: 600,
			SlowFactor:    3,
		},
	}
}

// DefaultSnakeConfig returns the default snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		MoveEveryTicks: 6,
		SpeedUpEvery:   5,
		MinMoveTicks:   2,
		GrowthPerFood:  1,
	}
}

// DefaultDuelConfig returns the default duel configuration.
func DefaultDuelConfig() DuelConfig {
	return DuelConfig{
		PlayerHP:       100,
		FoeBaseHP:      40,
		FoeHPPerRound:  15,
		WindupTicks:    75,
		WindupMinTicks: 20,
		RestTicks:      45,
		StrikeDamage:   10,
		FoeDamage:      15,
	}
}
