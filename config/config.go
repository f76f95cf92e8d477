// Package config loads command settings from defaults, an optional config
// file, HILLCLIMB_* environment variables and command-line flags, in
// increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/hillclimb/astar"
	"github.com/katalvlaran/hillclimb/heightmap"
	"github.com/katalvlaran/hillclimb/heuristic"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// EnvPrefix prefixes every environment variable, e.g. HILLCLIMB_MAX_ITERATIONS.
const EnvPrefix = "HILLCLIMB"

// Keys shared by flags, environment and config files.
const (
	KeyHeuristic     = "heuristic"
	KeyMaxIterations = "max-iterations"
	KeyMaxClimb      = "max-climb"
	KeyLogLevel      = "log-level"
	KeyLogFormat     = "log-format"
	KeyColor         = "color"
	KeyAddr          = "addr"
	KeyStepDelay     = "step-delay"
)

// Config holds the resolved settings.
type Config struct {
	Heuristic     string
	MaxIterations int
	MaxClimb      int
	LogLevel      string
	LogFormat     string
	Color         bool
	Addr          string
	StepDelay     time.Duration
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Heuristic:     "euclidean",
		MaxIterations: 0,
		MaxClimb:      heightmap.DefaultMaxClimb,
		LogLevel:      "info",
		LogFormat:     "text",
		Color:         true,
		Addr:          ":8080",
		StepDelay:     25 * time.Millisecond,
	}
}

// RegisterFlags adds one flag per key to fs, defaulted from Default.
func RegisterFlags(fs *pflag.FlagSet) {
	d := Default()
	fs.String(KeyHeuristic, d.Heuristic, "heuristic: "+strings.Join(heuristic.Names(), ", "))
	fs.Int(KeyMaxIterations, d.MaxIterations, "expansion cap per search (0 = none)")
	fs.Int(KeyMaxClimb, d.MaxClimb, "largest legal rise per step")
	fs.String(KeyLogLevel, d.LogLevel, "log level: debug, info, warn, error")
	fs.String(KeyLogFormat, d.LogFormat, "log format: text, json")
	fs.Bool(KeyColor, d.Color, "colour output")
	fs.String(KeyAddr, d.Addr, "listen address for serve")
	fs.Duration(KeyStepDelay, d.StepDelay, "delay between animation steps")
}

// Load resolves the configuration. flags may be nil; file may be empty.
func Load(flags *pflag.FlagSet, file string) (Config, error) {
	d := Default()
	v := viper.New()
	v.SetDefault(KeyHeuristic, d.Heuristic)
	v.SetDefault(KeyMaxIterations, d.MaxIterations)
	v.SetDefault(KeyMaxClimb, d.MaxClimb)
	v.SetDefault(KeyLogLevel, d.LogLevel)
	v.SetDefault(KeyLogFormat, d.LogFormat)
	v.SetDefault(KeyColor, d.Color)
	v.SetDefault(KeyAddr, d.Addr)
	v.SetDefault(KeyStepDelay, d.StepDelay)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("config: reading %s: %w", file, err)
		}
	}
	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return Config{}, fmt.Errorf("config: binding flags: %w", err)
		}
	}

	cfg := Config{
		Heuristic:     v.GetString(KeyHeuristic),
		MaxIterations: v.GetInt(KeyMaxIterations),
		MaxClimb:      v.GetInt(KeyMaxClimb),
		LogLevel:      strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:     strings.ToLower(v.GetString(KeyLogFormat)),
		Color:         v.GetBool(KeyColor),
		Addr:          v.GetString(KeyAddr),
		StepDelay:     v.GetDuration(KeyStepDelay),
	}

	return cfg, cfg.Validate()
}

// Validate checks every field and wraps ErrInvalidConfig on failure.
func (c Config) Validate() error {
	if _, err := heuristic.ByName(c.Heuristic); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidConfig, KeyMaxIterations, c.MaxIterations)
	}
	if c.MaxClimb < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %d", ErrInvalidConfig, KeyMaxClimb, c.MaxClimb)
	}
	if _, err := c.level(); err != nil {
		return err
	}
	if c.LogFormat != "text" && c.LogFormat != "json" {
		return fmt.Errorf("%w: %s must be text or json, got %q", ErrInvalidConfig, KeyLogFormat, c.LogFormat)
	}
	if c.StepDelay < 0 {
		return fmt.Errorf("%w: %s must be >= 0, got %v", ErrInvalidConfig, KeyStepDelay, c.StepDelay)
	}

	return nil
}

func (c Config) level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: %s %q", ErrInvalidConfig, KeyLogLevel, c.LogLevel)
	}

	return lvl, nil
}

// NewLogger builds the structured logger described by c, writing to w.
func (c Config) NewLogger(w io.Writer) *slog.Logger {
	lvl, err := c.level()
	if err != nil {
		lvl = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: lvl}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}

	return slog.New(slog.NewTextHandler(w, opts))
}

// HeuristicFunc resolves the configured heuristic.
func (c Config) HeuristicFunc() (heuristic.Func, error) {
	return heuristic.ByName(c.Heuristic)
}

// SearchOptions converts the search settings into astar options.
func (c Config) SearchOptions() []astar.Option {
	return []astar.Option{
		astar.WithMaxIterations(c.MaxIterations),
		astar.WithMaxClimb(c.MaxClimb),
	}
}
