package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Resolver names the collision resolver strategy selectable from the
// CLI/config surface.
type Resolver string

const (
	ResolverNaive    Resolver = "naive"
	ResolverCellular Resolver = "cellular"
	ResolverThreaded Resolver = "threaded"
)

// Config holds every parameter the driver consumes at startup: window
// size, spawn bounds, framerate and substep counts, thread count,
// resolver selection and the on/off switches for gravity, speed
// colouring and rendering.
type Config struct {
	// Display settings
	ScreenWidth  int `yaml:"screen_width"`
	ScreenHeight int `yaml:"screen_height"`

	// Spawn bounds
	MinSpawnRadius float32 `yaml:"min_spawn_radius"`
	MaxSpawnRadius float32 `yaml:"max_spawn_radius"`
	MaxObjects     int     `yaml:"max_objects"`

	// Simulation pacing
	Framerate int `yaml:"framerate"`
	Substeps  int `yaml:"substeps"`
	Threads   int `yaml:"threads"`

	Resolver Resolver `yaml:"resolver"`

	// Runtime flags
	GravityOn        bool `yaml:"gravity_on"`
	SpeedColouringOn bool `yaml:"speed_colouring_on"`
	RenderOn         bool `yaml:"render_on"`

	Demo string `yaml:"demo"`
}

// DefaultConfig returns the configuration the driver falls back to when
// no -config flag is given.
func DefaultConfig() *Config {
	return &Config{
		// Display settings
		ScreenWidth:  1280,
		ScreenHeight: 720,

		// Spawn bounds
		MinSpawnRadius: 4,
		MaxSpawnRadius: 12,
		MaxObjects:     4000,

		// Simulation pacing
		Framerate: 60,
		Substeps:  8,
		Threads:   4,

		Resolver: ResolverThreaded,

		// Runtime flags
		GravityOn:        true,
		SpeedColouringOn: true,
		RenderOn:         true,

		Demo: "cloud",
	}
}

// LoadYAML reads and validates a Config from a YAML file. Any field the
// file omits keeps its DefaultConfig value.
func LoadYAML(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %q: %w", path, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.ScreenWidth <= 0 {
		return fmt.Errorf("invalid screen width: %d", c.ScreenWidth)
	}
	if c.ScreenHeight <= 0 {
		return fmt.Errorf("invalid screen height: %d", c.ScreenHeight)
	}
	if c.MinSpawnRadius <= 0 || c.MaxSpawnRadius < c.MinSpawnRadius {
		return fmt.Errorf("invalid spawn radius range: [%v, %v]", c.MinSpawnRadius, c.MaxSpawnRadius)
	}
	if c.MaxObjects <= 0 {
		return fmt.Errorf("invalid max objects: %d", c.MaxObjects)
	}
	if c.Framerate <= 0 {
		return fmt.Errorf("invalid framerate: %d", c.Framerate)
	}
	if c.Substeps <= 0 {
		return fmt.Errorf("invalid substeps: %d", c.Substeps)
	}
	if c.Threads <= 0 {
		return fmt.Errorf("invalid thread count: %d", c.Threads)
	}
	switch c.Resolver {
	case ResolverNaive, ResolverCellular, ResolverThreaded:
	default:
		return fmt.Errorf("invalid resolver: %q", c.Resolver)
	}
	return nil
}

// Clone creates a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	return &clone
}
