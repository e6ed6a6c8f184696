package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlocks loads the falling-block configuration.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
func LoadBlocks(customPath string) (BlocksConfig, error) {
	var cfg BlocksConfig
	if err := load(customPath, "blocks.yaml", defaultBlocksYAML, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Gravity.BaseTicks == 0 {
		cfg = DefaultBlocksConfig()
	}
	return cfg, nil
}

// LoadSnake loads the snake configuration.
// Search order: customPath -> ~/.arcade/configs/snake.yaml -> ./configs/snake.yaml -> embedded default
func LoadSnake(customPath string) (SnakeConfig, error) {
	var cfg SnakeConfig
	if err := load(customPath, "snake.yaml", defaultSnakeYAML, &cfg); err != nil {
		return cfg, err
	}
	if cfg.MoveEveryTicks == 0 {
		cfg = DefaultSnakeConfig()
	}
	return cfg, nil
}

// LoadDuel loads the duel configuration.
// Search order: customPath -> ~/.arcade/configs/duel.yaml -> ./configs/duel.yaml -> embedded default
func LoadDuel(customPath string) (DuelConfig, error) {
	var cfg DuelConfig
	if err := load(customPath, "duel.yaml", defaultDuelYAML, &cfg); err != nil {
		return cfg, err
	}
	if cfg.PlayerHP == 0 {
		cfg = DefaultDuelConfig()
	}
	return cfg, nil
}

// load resolves a config through the standard search order into out.
// Only an explicit customPath reports read/parse errors; the fallback
// locations degrade silently to the embedded default.
func load(customPath, filename string, embedded []byte, out any) error {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return nil
	}

	if userPath := userConfigPath(filename); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, out); err == nil {
				return nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", filename)); err == nil {
		if err := yaml.Unmarshal(data, out); err == nil {
			return nil
		}
	}

	return yaml.Unmarshal(embedded, out)
}

// userConfigPath returns the path to a user config file, or empty if home
// is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
