package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Config is the full server configuration, loaded from a YAML file with
// environment variable overrides (STOVE_ prefix).
type Config struct {
	Logging  LoggingConfig  `mapstructure:"logging"`
	Game     GameConfig     `mapstructure:"game"`
	Replay   ReplayConfig   `mapstructure:"replay"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
}

// LoggingConfig controls the zap logger.
type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

// GameConfig controls per-game engine behavior.
type GameConfig struct {
	// RecordHistory toggles the deterministic change log on new games.
	RecordHistory bool `mapstructure:"record_history"`
}

// ReplayConfig controls where finished replays are written.
type ReplayConfig struct {
	Directory string `mapstructure:"directory"`
}

// ServerConfig holds the network surfaces.
type ServerConfig struct {
	WebSocket WebSocketConfig `mapstructure:"websocket"`
}

// WebSocketConfig configures the spectator stream endpoint.
type WebSocketConfig struct {
	Address string `mapstructure:"address"`
}

// DatabaseConfig configures the optional replay archive. An empty URL
// disables archiving.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`
}

// Load reads configuration from the given file path. A missing file is not
// an error: defaults plus environment overrides still apply.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.development", false)
	v.SetDefault("game.record_history", true)
	v.SetDefault("replay.directory", "replays")
	v.SetDefault("server.websocket.address", ":8089")
	v.SetDefault("database.url", "")

	v.SetEnvPrefix("STOVE")
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return nil, fmt.Errorf("read config %s: %w", path, err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &cfg, nil
}
