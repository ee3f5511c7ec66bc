package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds all simulation configuration values
type Config struct {
	Display    DisplayConfig    `yaml:"display"`
	Simulation SimulationConfig `yaml:"simulation"`
	World      WorldConfig      `yaml:"world"`
	Monster    MonsterConfig    `yaml:"monster"`
	Audio      AudioConfig      `yaml:"audio"`
	Logging    LoggingConfig    `yaml:"logging"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
}

type SimulationConfig struct {
	TargetTPS int `yaml:"target_tps"`
}

type WorldConfig struct {
	ZoneDir  string  `yaml:"zone_dir"`
	HomeZone string  `yaml:"home_zone"`
	CellSize float64 `yaml:"cell_size"`
}

// MonsterConfig tunes the behavior controller. Cadence values are in
// milliseconds of simulated time.
type MonsterConfig struct {
	BaseSpeed    float64 `yaml:"base_speed"`
	RaycastLimit float64 `yaml:"raycast_limit"`

	WanderIntervalMs     int     `yaml:"wander_interval_ms"`
	HideScanIntervalMs   int     `yaml:"hide_scan_interval_ms"`
	FleeDurationMs       int     `yaml:"flee_duration_ms"`
	PathRecalcIntervalMs int     `yaml:"path_recalc_interval_ms"`
	HostileRecalcMs      int     `yaml:"hostile_recalc_ms"`
	FleeSpeedMultiplier  float64 `yaml:"flee_speed_multiplier"`

	SpawnFallbackX float64 `yaml:"spawn_fallback_x"`
	SpawnFallbackY float64 `yaml:"spawn_fallback_y"`
	SpawnFallbackZ float64 `yaml:"spawn_fallback_z"`
}

type AudioConfig struct {
	HeartbeatMaxDistance float64 `yaml:"heartbeat_max_distance"`
}

type LoggingConfig struct {
	Debug bool `yaml:"debug"`
}

// LoadConfig loads the configuration from a YAML file and fills in defaults
// for any values left unset.
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", filename, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", filename, err)
	}

	cfg.applyDefaults()
	return &cfg, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	cfg, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return cfg
}

// Default returns a configuration with every value at its default.
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

func (c *Config) applyDefaults() {
	if c.Display.ScreenWidth == 0 {
		c.Display.ScreenWidth = 960
	}
	if c.Display.ScreenHeight == 0 {
		c.Display.ScreenHeight = 720
	}
	if c.Display.WindowTitle == "" {
		c.Display.WindowTitle = "Mirkhollow"
	}
	if c.Simulation.TargetTPS == 0 {
		c.Simulation.TargetTPS = 60
	}
	if c.World.ZoneDir == "" {
		c.World.ZoneDir = "assets/zones"
	}
	if c.World.HomeZone == "" {
		c.World.HomeZone = "catacombs"
	}
	if c.World.CellSize == 0 {
		c.World.CellSize = 2.0
	}
	if c.Monster.BaseSpeed == 0 {
		c.Monster.BaseSpeed = 2.0
	}
	if c.Monster.RaycastLimit == 0 {
		c.Monster.RaycastLimit = 60.0
	}
	if c.Monster.WanderIntervalMs == 0 {
		c.Monster.WanderIntervalMs = 5000
	}
	if c.Monster.HideScanIntervalMs == 0 {
		c.Monster.HideScanIntervalMs = 3000
	}
	if c.Monster.FleeDurationMs == 0 {
		c.Monster.FleeDurationMs = 4000
	}
	if c.Monster.PathRecalcIntervalMs == 0 {
		c.Monster.PathRecalcIntervalMs = 1000
	}
	if c.Monster.HostileRecalcMs == 0 {
		c.Monster.HostileRecalcMs = 800
	}
	if c.Monster.FleeSpeedMultiplier == 0 {
		c.Monster.FleeSpeedMultiplier = 1.5
	}
	if c.Audio.HeartbeatMaxDistance == 0 {
		c.Audio.HeartbeatMaxDistance = 40.0
	}
}

// Helper accessors for commonly used values

func (c *Config) GetScreenWidth() int {
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	return c.Display.ScreenHeight
}

func (c *Config) GetTPS() int {
	return c.Simulation.TargetTPS
}

func (c *Config) WanderInterval() time.Duration {
	return time.Duration(c.Monster.WanderIntervalMs) * time.Millisecond
}

func (c *Config) HideScanInterval() time.Duration {
	return time.Duration(c.Monster.HideScanIntervalMs) * time.Millisecond
}

func (c *Config) FleeDuration() time.Duration {
	return time.Duration(c.Monster.FleeDurationMs) * time.Millisecond
}

func (c *Config) PathRecalcInterval() time.Duration {
	return time.Duration(c.Monster.PathRecalcIntervalMs) * time.Millisecond
}

func (c *Config) HostileRecalcInterval() time.Duration {
	return time.Duration(c.Monster.HostileRecalcMs) * time.Millisecond
}
