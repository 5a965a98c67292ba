package config

import "sort"

var Presets = map[string]*Config{
	"classic": {
		Terms: 20, Stars: 4000, RotationSpeed: 0.16, FPS: 30, Theme: "cosmos",
		Pulse:  PulseConfig{Radius: 0.1, Color: 0.2, Size: 0.3},
		Spiral: SpiralConfig{Scale: 0.5, Samples: 1000},
	},
	"dense": {
		Terms: 30, Stars: 12000, RotationSpeed: 0.16, FPS: 30, Theme: "cosmos",
		Pulse:  PulseConfig{Radius: 0.1, Color: 0.2, Size: 0.3},
		Spiral: SpiralConfig{Scale: 0.5, Samples: 2000},
	},
	"sparse": {
		Terms: 12, Stars: 800, RotationSpeed: 0.16, FPS: 30, Theme: "mono",
		Pulse:  PulseConfig{Radius: 0.15, Color: 0.3, Size: 0.4},
		Spiral: SpiralConfig{Scale: 0.5, Samples: 500},
	},
	"slow": {
		Terms: 20, Stars: 4000, RotationSpeed: 0.05, FPS: 30, Theme: "gold",
		Pulse:  PulseConfig{Radius: 0.05, Color: 0.1, Size: 0.15},
		Spiral: SpiralConfig{Scale: 0.5, Samples: 1000},
	},
}

func GetPreset(name string) *Config {
	p, ok := Presets[name]
	if !ok {
		return nil
	}
	cp := *p
	return &cp
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
