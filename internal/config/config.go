package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/fibgalaxy/internal/galaxy"
)

const (
	DefaultTerms         = 20
	DefaultStars         = 4000
	DefaultRotationSpeed = 0.16
	DefaultFPS           = 30
	DefaultSpiralScale   = 0.5
	DefaultSpiralSamples = 1000
)

type Config struct {
	Terms         int          `yaml:"terms"`
	Stars         int          `yaml:"stars"`
	RotationSpeed float64      `yaml:"rotation_speed"`
	FPS           int          `yaml:"fps"`
	Seed          int64        `yaml:"seed"`
	Theme         string       `yaml:"theme"`
	Pulse         PulseConfig  `yaml:"pulse"`
	Spiral        SpiralConfig `yaml:"spiral"`
}

type PulseConfig struct {
	Radius float64 `yaml:"radius"`
	Color  float64 `yaml:"color"`
	Size   float64 `yaml:"size"`
}

type SpiralConfig struct {
	Scale   float64 `yaml:"scale"`
	Samples int     `yaml:"samples"`
}

func DefaultConfig() *Config {
	return &Config{
		Terms:         DefaultTerms,
		Stars:         DefaultStars,
		RotationSpeed: DefaultRotationSpeed,
		FPS:           DefaultFPS,
		Theme:         "cosmos",
		Pulse: PulseConfig{
			Radius: 0.1,
			Color:  0.2,
			Size:   0.3,
		},
		Spiral: SpiralConfig{
			Scale:   DefaultSpiralScale,
			Samples: DefaultSpiralSamples,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// GalaxyParams maps the config onto field sampling parameters.
func (c *Config) GalaxyParams() galaxy.Params {
	p := galaxy.DefaultParams()
	p.Stars = c.Stars
	p.PulseRadius = c.Pulse.Radius
	p.PulseColor = c.Pulse.Color
	p.PulseSize = c.Pulse.Size
	return p
}
