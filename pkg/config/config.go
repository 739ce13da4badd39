package config

import (
	"errors"
	"fmt"

	"github.com/golangdaddy/hillclimber/pkg/sim"
	"github.com/spf13/viper"
)

// FileName is the optional JSON config looked up in the config directory
const FileName = "hillclimb.cfg.json"

// HistoryConfig controls the session run history
type HistoryConfig struct {
	Enabled bool   `json:"enabled" mapstructure:"enabled"`
	DSN     string `json:"dsn" mapstructure:"dsn"`
	Keep    int    `json:"keep" mapstructure:"keep"` // Rows shown on the game over screen
}

// WindowConfig holds the desktop window settings
type WindowConfig struct {
	Title      string `json:"title" mapstructure:"title"`
	Resizable  bool   `json:"resizable" mapstructure:"resizable"`
	Fullscreen bool   `json:"fullscreen" mapstructure:"fullscreen"`
}

// Config is the full runtime configuration
type Config struct {
	LogLevel      string        `json:"logLevel" mapstructure:"logLevel"`
	LogFile       string        `json:"logFile" mapstructure:"logFile"`
	TPS           int           `json:"tps" mapstructure:"tps"`
	Seed          int64         `json:"seed" mapstructure:"seed"` // Zero picks a random seed
	StartingCoins int           `json:"startingCoins" mapstructure:"startingCoins"`
	Window        WindowConfig  `json:"window" mapstructure:"window"`
	History       HistoryConfig `json:"history" mapstructure:"history"`
	Sim           sim.Config    `json:"sim" mapstructure:"sim"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		LogLevel: "info",
		TPS:      60,
		Window: WindowConfig{
			Title:     "Hill Climber",
			Resizable: true,
		},
		History: HistoryConfig{
			Enabled: true,
			DSN:     "file::memory:?cache=shared",
			Keep:    5,
		},
		Sim: sim.DefaultConfig(),
	}
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("logLevel", d.LogLevel)
	v.SetDefault("logFile", d.LogFile)
	v.SetDefault("tps", d.TPS)
	v.SetDefault("seed", d.Seed)
	v.SetDefault("startingCoins", d.StartingCoins)

	v.SetDefault("window.title", d.Window.Title)
	v.SetDefault("window.resizable", d.Window.Resizable)
	v.SetDefault("window.fullscreen", d.Window.Fullscreen)

	v.SetDefault("history.enabled", d.History.Enabled)
	v.SetDefault("history.dsn", d.History.DSN)
	v.SetDefault("history.keep", d.History.Keep)

	v.SetDefault("sim.terrain.screenWidth", d.Sim.Terrain.ScreenWidth)
	v.SetDefault("sim.terrain.screenHeight", d.Sim.Terrain.ScreenHeight)
}

// Load reads configDir/hillclimb.cfg.json on top of the defaults. A missing file
// is not an error; an empty configDir skips the file entirely.
func Load(configDir string) (Config, error) {
	v := viper.New()
	cfg := Default()
	setDefaults(v, cfg)

	if configDir != "" {
		v.SetConfigName(FileName)
		v.SetConfigType("json")
		v.AddConfigPath(configDir)

		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return cfg, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("error decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with
func (c Config) Validate() error {
	t := c.Sim.Terrain
	if t.ScreenWidth <= 0 || t.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen size %vx%v", t.ScreenWidth, t.ScreenHeight)
	}
	if t.SegmentWidth <= 0 {
		return fmt.Errorf("segment width must be positive, got %v", t.SegmentWidth)
	}
	if t.MinHeight() > t.MaxHeight() {
		return fmt.Errorf("terrain minOffset %v must be above maxOffset %v", t.MinOffset, t.MaxOffset)
	}
	if c.TPS < 0 {
		return fmt.Errorf("tps must not be negative, got %d", c.TPS)
	}
	return nil
}
