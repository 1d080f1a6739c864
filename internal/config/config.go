package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Game modes: which of the two sides is played by the search engine.
const (
	ModeManual   = "manual"   // human vs human
	ModeAttacker = "attacker" // human attacker vs AI defender
	ModeDefender = "defender" // AI attacker vs human defender
	ModeAuto     = "auto"     // AI vs AI
)

// Config holds all configuration for the application.
type Config struct {
	Game   GameConfig   `mapstructure:"game"`
	Search SearchConfig `mapstructure:"search"`
	Log    LogConfig    `mapstructure:"log"`
}

// GameConfig holds game setup and turn-limit settings.
type GameConfig struct {
	Dim           int    `mapstructure:"dim"`
	MaxTurns      int    `mapstructure:"max_turns"`
	TimeoutWinner string `mapstructure:"timeout_winner"` // "defender" or "draw"
	Mode          string `mapstructure:"mode"`
	TraceFile     string `mapstructure:"trace_file"` // empty = auto-generated name
}

// SearchConfig holds the adversarial-search cutoffs.
type SearchConfig struct {
	Heuristic      int     `mapstructure:"heuristic"` // 0, 1 or 2
	MaxDepth       int     `mapstructure:"max_depth"`
	MaxTimeSeconds float64 `mapstructure:"max_time_seconds"`
	AlphaBeta      bool    `mapstructure:"alpha_beta"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "console" or "json"
}

// AttackerIsAI reports whether the attacker side is search-controlled.
func (c *Config) AttackerIsAI() bool {
	return c.Game.Mode == ModeDefender || c.Game.Mode == ModeAuto
}

// DefenderIsAI reports whether the defender side is search-controlled.
func (c *Config) DefenderIsAI() bool {
	return c.Game.Mode == ModeAttacker || c.Game.Mode == ModeAuto
}

// SearchBudget returns the wall-clock budget as a duration.
func (c *Config) SearchBudget() time.Duration {
	return time.Duration(c.Search.MaxTimeSeconds * float64(time.Second))
}

// TraceFileName returns the configured trace file, or the conventional
// gameTrace-<alphabeta>-<time>-<maxturns>.txt name.
func (c *Config) TraceFileName() string {
	if c.Game.TraceFile != "" {
		return c.Game.TraceFile
	}
	return fmt.Sprintf("gameTrace-%t-%d-%d.txt",
		c.Search.AlphaBeta, int(c.Search.MaxTimeSeconds), c.Game.MaxTurns)
}

var (
	// Global config instance
	cfg *Config
	v   *viper.Viper
)

// setViperDefaults sets all default values using Viper's SetDefault.
func setViperDefaults(v *viper.Viper) {
	v.SetDefault("game.dim", 5)
	v.SetDefault("game.max_turns", 100)
	v.SetDefault("game.timeout_winner", "defender")
	v.SetDefault("game.mode", ModeAuto)
	v.SetDefault("game.trace_file", "")

	v.SetDefault("search.heuristic", 0)
	v.SetDefault("search.max_depth", 4)
	v.SetDefault("search.max_time_seconds", 5.0)
	v.SetDefault("search.alpha_beta", true)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "console")
}

// Init initializes the configuration from defaults, an optional YAML file
// and WARGAME_* environment variables.
func Init(configPath string) error {
	v = viper.New()
	setViperDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	v.SetEnvPrefix("WARGAME")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		// A missing file is only tolerable when no explicit path was given.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok || configPath != "" {
			return fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg = &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to decode config into struct: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}
	return nil
}

// Get returns the global config instance.
func Get() *Config {
	if cfg == nil {
		if err := Init(""); err != nil {
			panic("failed to initialize config with defaults: " + err.Error())
		}
	}
	return cfg
}

// Set allows runtime config updates, mainly for tests and CLI overrides.
func Set(key string, value interface{}) {
	v.Set(key, value)
	v.Unmarshal(cfg)
}

// WatchConfig enables hot-reloading of the config file.
func WatchConfig(onChange func()) {
	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		v.Unmarshal(cfg)
		if onChange != nil {
			onChange()
		}
	})
}

// Validate checks the configuration values. Everything here is fatal at
// startup: a bad cutoff or unknown heuristic must never reach the engine.
func Validate(c *Config) error {
	if c.Game.Dim < 4 {
		return fmt.Errorf("game.dim must be at least 4, got %d", c.Game.Dim)
	}
	if c.Game.MaxTurns <= 0 {
		return fmt.Errorf("game.max_turns must be positive, got %d", c.Game.MaxTurns)
	}
	if c.Game.TimeoutWinner != "defender" && c.Game.TimeoutWinner != "draw" {
		return fmt.Errorf("game.timeout_winner must be \"defender\" or \"draw\", got %q", c.Game.TimeoutWinner)
	}
	switch c.Game.Mode {
	case ModeManual, ModeAttacker, ModeDefender, ModeAuto:
	default:
		return fmt.Errorf("game.mode must be one of manual|attacker|defender|auto, got %q", c.Game.Mode)
	}
	if c.Search.Heuristic < 0 || c.Search.Heuristic > 2 {
		return fmt.Errorf("search.heuristic must be 0, 1 or 2, got %d", c.Search.Heuristic)
	}
	if c.Search.MaxDepth <= 0 {
		return fmt.Errorf("search.max_depth must be positive, got %d", c.Search.MaxDepth)
	}
	if c.Search.MaxTimeSeconds < 0 {
		return fmt.Errorf("search.max_time_seconds must be non-negative, got %f", c.Search.MaxTimeSeconds)
	}
	switch c.Log.Format {
	case "console", "json":
	default:
		return fmt.Errorf("log.format must be \"console\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}
