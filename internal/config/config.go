package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	yamlv3 "gopkg.in/yaml.v3"

	"github.com/iburimskiy/particle-field/internal/field"
)

// EnvPrefix marks environment variables that override file settings.
const EnvPrefix = "FIELD_"

// Config is the full runtime configuration, corresponding to particle-field.yml.
type Config struct {
	Title        string `yaml:"title" koanf:"title"`
	WindowWidth  int    `yaml:"window_width" koanf:"window_width"`
	WindowHeight int    `yaml:"window_height" koanf:"window_height"`
	TPS          int    `yaml:"tps" koanf:"tps"`

	ParticleCount       int     `yaml:"particle_count" koanf:"particle_count"`
	NarrowParticleCount int     `yaml:"narrow_particle_count" koanf:"narrow_particle_count"`
	NarrowBreakpoint    int     `yaml:"narrow_breakpoint" koanf:"narrow_breakpoint"`
	ConnectionDistance  float64 `yaml:"connection_distance" koanf:"connection_distance"`
	MouseDistance       float64 `yaml:"mouse_distance" koanf:"mouse_distance"`
	ParticleSpeed       float64 `yaml:"particle_speed" koanf:"particle_speed"`
	ParticleSize        float64 `yaml:"particle_size" koanf:"particle_size"`
	Repulsion           float64 `yaml:"repulsion" koanf:"repulsion"`
	ParticleAlpha       float64 `yaml:"particle_alpha" koanf:"particle_alpha"`
	LineWidth           float64 `yaml:"line_width" koanf:"line_width"`
	LineOpacity         float64 `yaml:"line_opacity" koanf:"line_opacity"`

	ThemeStep int    `yaml:"theme_step" koanf:"theme_step"`
	PrefsFile string `yaml:"prefs_file" koanf:"prefs_file"`

	Track    string `yaml:"track" koanf:"track"`
	ShowHUD  bool   `yaml:"show_hud" koanf:"show_hud"`
	RingSize int    `yaml:"ring_size" koanf:"ring_size"`
}

// Load reads configuration from the given YAML file, then overlays
// environment variable overrides (FIELD_*).
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	cfg := DefaultConfig()

	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("accessing config %s: %w", path, err)
	}

	// FIELD_PARTICLE_COUNT -> particle_count, etc.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("loading env overrides: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	return cfg, nil
}

// Save writes the configuration to the given YAML file path.
func (c *Config) Save(path string) error {
	data, err := yamlv3.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Validate checks that the configuration contains usable values.
func (c *Config) Validate() error {
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.TPS <= 0 {
		return fmt.Errorf("tps must be positive")
	}
	if c.ParticleCount < 0 || c.NarrowParticleCount < 0 {
		return fmt.Errorf("particle counts must be non-negative")
	}
	if c.NarrowBreakpoint < 0 {
		return fmt.Errorf("narrow_breakpoint must be non-negative")
	}
	if c.ConnectionDistance <= 0 {
		return fmt.Errorf("connection_distance must be positive")
	}
	if c.MouseDistance <= 0 {
		return fmt.Errorf("mouse_distance must be positive")
	}
	if c.ParticleSpeed < 0 || c.ParticleSize < 0 || c.Repulsion < 0 {
		return fmt.Errorf("particle_speed, particle_size and repulsion must be non-negative")
	}
	if c.ParticleAlpha < 0 || c.ParticleAlpha > 1 {
		return fmt.Errorf("particle_alpha %v out of range [0,1]", c.ParticleAlpha)
	}
	if c.LineOpacity < 0 || c.LineOpacity > 1 {
		return fmt.Errorf("line_opacity %v out of range [0,1]", c.LineOpacity)
	}
	if c.LineWidth <= 0 {
		return fmt.Errorf("line_width must be positive")
	}
	if c.ThemeStep < 1 || c.ThemeStep > 100 {
		return fmt.Errorf("theme_step %d out of range [1,100]", c.ThemeStep)
	}
	if c.RingSize <= 0 {
		return fmt.Errorf("ring_size must be positive")
	}
	return nil
}

// FieldParams converts the field section into simulator parameters.
func (c *Config) FieldParams() field.Params {
	return field.Params{
		ParticleCount:       c.ParticleCount,
		NarrowParticleCount: c.NarrowParticleCount,
		NarrowBreakpoint:    c.NarrowBreakpoint,
		ConnectionDistance:  c.ConnectionDistance,
		MouseDistance:       c.MouseDistance,
		MaxSpeed:            c.ParticleSpeed,
		MaxRadius:           c.ParticleSize,
		Repulsion:           c.Repulsion,
		Alpha:               c.ParticleAlpha,
		LineWidth:           c.LineWidth,
		LineOpacity:         c.LineOpacity,
	}
}
