package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lixenwraith/bubble-popper/components"
)

//go:embed default.yaml
var defaultYAML []byte

// Step modes
const (
	StepFixed  = "fixed"
	StepRandom = "random"
)

// Config is the full set of tunables, loaded from YAML
type Config struct {
	Round    RoundConfig    `yaml:"round"`
	Viewport ViewportConfig `yaml:"viewport"`
	Gun      GunConfig      `yaml:"gun"`
	Laser    LaserConfig    `yaml:"laser"`
	Motion   MotionConfig   `yaml:"motion"`
	Kinds    KindsConfig    `yaml:"kinds"`
	Terminal TerminalConfig `yaml:"terminal"`
	Audio    AudioConfig    `yaml:"audio"`
}

type RoundConfig struct {
	DurationSeconds   int      `yaml:"duration_seconds"`
	CountdownInterval Duration `yaml:"countdown_interval"`
}

// ViewportConfig is the world size in logical units; frontends scale it to their surface
type ViewportConfig struct {
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	SpawnOffset  float64 `yaml:"spawn_offset"`
	OffscreenY   float64 `yaml:"offscreen_y"`
	BandFraction float64 `yaml:"band_fraction"`
}

type GunConfig struct {
	Width float64 `yaml:"width"`
	Nudge float64 `yaml:"nudge"`
}

type LaserConfig struct {
	Width   float64  `yaml:"width"`
	Visible Duration `yaml:"visible"`
}

type MotionConfig struct {
	Tick Duration `yaml:"tick"`
}

type KindsConfig struct {
	Regular KindConfig `yaml:"regular"`
	Pain    KindConfig `yaml:"pain"`
	Bonus   KindConfig `yaml:"bonus"`
}

type KindConfig struct {
	Radius      float64    `yaml:"radius"`
	SpawnPeriod Duration   `yaml:"spawn_period"`
	Step        StepConfig `yaml:"step"`
	Points      int        `yaml:"points"`
}

// StepConfig selects a fixed per-tick step or a fresh draw from [0, value) each tick
type StepConfig struct {
	Mode  string  `yaml:"mode"`
	Value float64 `yaml:"value"`
}

// TerminalConfig is the preferred size of one terminal cell in world units
type TerminalConfig struct {
	CellWidth  float64 `yaml:"cell_width"`
	CellHeight float64 `yaml:"cell_height"`
}

type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// Duration reads Go duration strings ("500ms", "2s") from YAML
type Duration time.Duration

// D returns the value as a time.Duration
func (d Duration) D() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("duration must be a string, line %d", value.Line)
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q, line %d: %w", value.Value, value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Default returns the embedded defaults
func Default() *Config {
	cfg, err := parse(defaultYAML, &Config{})
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return cfg
}

// Load overlays the YAML file at path on the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	if _, err := parse(data, cfg); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse overlays YAML data on the defaults and validates the result
func Parse(data []byte) (*Config, error) {
	cfg, err := parse(data, Default())
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func parse(data []byte, into *Config) (*Config, error) {
	if err := yaml.Unmarshal(data, into); err != nil {
		return nil, fmt.Errorf("unmarshal: %w", err)
	}
	return into, nil
}

// Validate reports every invalid field at once
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf(format, args...))
		}
	}

	check(c.Round.DurationSeconds > 0, "round.duration_seconds must be positive, got %d", c.Round.DurationSeconds)
	check(c.Round.CountdownInterval > 0, "round.countdown_interval must be positive")
	check(c.Viewport.Width > 0, "viewport.width must be positive, got %v", c.Viewport.Width)
	check(c.Viewport.Height > 0, "viewport.height must be positive, got %v", c.Viewport.Height)
	check(c.Viewport.BandFraction > 0 && c.Viewport.BandFraction < 1,
		"viewport.band_fraction must be in (0, 1), got %v", c.Viewport.BandFraction)
	check(c.Viewport.OffscreenY < c.Viewport.Height-c.Viewport.SpawnOffset,
		"viewport.offscreen_y must lie above the spawn line")
	check(c.Gun.Width > 0, "gun.width must be positive, got %v", c.Gun.Width)
	check(c.Gun.Nudge >= 0, "gun.nudge must not be negative, got %v", c.Gun.Nudge)
	check(c.Laser.Width > 0, "laser.width must be positive, got %v", c.Laser.Width)
	check(c.Laser.Visible > 0, "laser.visible must be positive")
	check(c.Motion.Tick > 0, "motion.tick must be positive")
	check(c.Terminal.CellWidth > 0 && c.Terminal.CellHeight > 0, "terminal cell size must be positive")

	for _, k := range components.Kinds {
		kc := c.Kinds.get(k)
		check(kc.Radius > 0, "kinds.%s.radius must be positive, got %v", k, kc.Radius)
		check(kc.SpawnPeriod > 0, "kinds.%s.spawn_period must be positive", k)
		check(kc.Step.Mode == StepFixed || kc.Step.Mode == StepRandom,
			"kinds.%s.step.mode must be %q or %q, got %q", k, StepFixed, StepRandom, kc.Step.Mode)
		check(kc.Step.Value >= 0, "kinds.%s.step.value must not be negative, got %v", k, kc.Step.Value)
	}

	return errors.Join(errs...)
}

func (k *KindsConfig) get(kind components.Kind) KindConfig {
	switch kind {
	case components.KindPain:
		return k.Pain
	case components.KindBonus:
		return k.Bonus
	default:
		return k.Regular
	}
}

// KindSpecs builds the per-kind specs indexed by kind
func (c *Config) KindSpecs() [components.KindCount]components.KindSpec {
	var specs [components.KindCount]components.KindSpec
	for _, k := range components.Kinds {
		kc := c.Kinds.get(k)
		step := components.FixedStep(kc.Step.Value)
		if kc.Step.Mode == StepRandom {
			step = components.RandomStep(kc.Step.Value)
		}
		specs[k] = components.KindSpec{
			Kind:        k,
			Radius:      kc.Radius,
			SpawnPeriod: kc.SpawnPeriod.D(),
			Step:        step,
			Points:      kc.Points,
		}
	}
	return specs
}

// BandTop returns the y coordinate where the gun band begins
func (c *Config) BandTop() float64 {
	return c.Viewport.Height - c.Viewport.Height*c.Viewport.BandFraction
}
