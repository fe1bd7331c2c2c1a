package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/zeusync/entitykit/internal/core/observability/log"
)

var ErrInvalidConfig = errors.New("invalid configuration")

// Config is the host configuration, read from YAML.
type Config struct {
	Log      LogConfig     `yaml:"log"`
	Loop     LoopConfig    `yaml:"loop"`
	Profile  ProfileConfig `yaml:"profile"`
	Entities []EntitySpec  `yaml:"entities"`
}

type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // json or console
}

type LoopConfig struct {
	// Ticks is the number of ticks to run; 0 runs until cancelled.
	Ticks    uint64        `yaml:"ticks"`
	Interval time.Duration `yaml:"interval"`
	// Shards is the number of independent loops run side by side, each
	// spawning its own copy of Entities.
	Shards int `yaml:"shards"`
}

type ProfileConfig struct {
	Enabled bool   `yaml:"enabled"`
	Mode    string `yaml:"mode"` // cpu or mem
	Path    string `yaml:"path"`
}

// EntitySpec describes a prototype entity that is spawned Count times.
type EntitySpec struct {
	Name     string        `yaml:"name"`
	Count    int           `yaml:"count"`
	Position *Vector       `yaml:"position,omitempty"`
	Velocity *Vector       `yaml:"velocity,omitempty"`
	Health   *HealthConfig `yaml:"health,omitempty"`
}

type Vector struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type HealthConfig struct {
	Max   float64 `yaml:"max"`
	Decay float64 `yaml:"decay"`
}

// Default is used for every field the YAML leaves out.
func Default() Config {
	return Config{
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
		Loop: LoopConfig{
			Ticks:    60,
			Interval: 16 * time.Millisecond,
			Shards:   1,
		},
		Profile: ProfileConfig{
			Mode: "cpu",
			Path: ".",
		},
	}
}

// Load reads and validates the YAML file at path.
func Load(path string) (Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode reads and validates YAML from r. Unknown keys are rejected.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("%w: log format %q", ErrInvalidConfig, c.Log.Format)
	}
	if c.Loop.Interval < 0 {
		return fmt.Errorf("%w: negative loop interval", ErrInvalidConfig)
	}
	if c.Loop.Shards < 1 {
		return fmt.Errorf("%w: loop shards must be at least 1", ErrInvalidConfig)
	}
	if c.Profile.Enabled {
		switch c.Profile.Mode {
		case "cpu", "mem":
		default:
			return fmt.Errorf("%w: profile mode %q", ErrInvalidConfig, c.Profile.Mode)
		}
	}
	names := make(map[string]struct{}, len(c.Entities))
	for i, spec := range c.Entities {
		if spec.Name == "" {
			return fmt.Errorf("%w: entity %d has no name", ErrInvalidConfig, i)
		}
		if _, dup := names[spec.Name]; dup {
			return fmt.Errorf("%w: duplicate entity %q", ErrInvalidConfig, spec.Name)
		}
		names[spec.Name] = struct{}{}
		if spec.Count < 0 {
			return fmt.Errorf("%w: entity %q has negative count", ErrInvalidConfig, spec.Name)
		}
	}
	return nil
}

// Logger builds the logger described by the log section.
func (c LogConfig) Logger() (*log.Logger, error) {
	level, err := log.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	if c.Format == "console" {
		return log.NewDevelopment(level), nil
	}
	return log.New(level), nil
}
