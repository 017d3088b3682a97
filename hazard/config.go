package hazard

import (
	"math"

	"github.com/milk9111/streetrunner/prefabs"
)

// Config holds light beam timing and presentation. Durations are seconds.
type Config struct {
	// SpawnMin and SpawnMax bound the idle time before the next beam.
	SpawnMin float64
	SpawnMax float64
	// A beam lives for FlickerOnDuration + LifetimeDuration.
	LifetimeDuration  float64
	FlickerOnDuration float64
	FinishDuration    float64

	Height    float64
	Distance  float64
	Angle     float64
	Penumbra  float64
	Intensity float64
}

func DefaultConfig() Config {
	const finish = 1.0
	return Config{
		SpawnMin:          finish + 1,
		SpawnMax:          finish + 3,
		LifetimeDuration:  3,
		FlickerOnDuration: 1.2,
		FinishDuration:    finish,
		Height:            7.5,
		Distance:          12,
		Angle:             math.Pi / 5,
		Penumbra:          0.1,
		Intensity:         5,
	}
}

// ConfigFromSpec overlays the non-zero fields of spec onto DefaultConfig.
func ConfigFromSpec(spec *prefabs.LightBeamSpec) Config {
	cfg := DefaultConfig()
	if spec == nil {
		return cfg
	}
	if spec.SpawnMin > 0 {
		cfg.SpawnMin = spec.SpawnMin
	}
	if spec.SpawnMax > 0 {
		cfg.SpawnMax = spec.SpawnMax
	}
	if cfg.SpawnMax < cfg.SpawnMin {
		cfg.SpawnMax = cfg.SpawnMin
	}
	if spec.LifetimeDuration > 0 {
		cfg.LifetimeDuration = spec.LifetimeDuration
	}
	if spec.FlickerOnDuration > 0 {
		cfg.FlickerOnDuration = spec.FlickerOnDuration
	}
	if spec.FinishDuration > 0 {
		cfg.FinishDuration = spec.FinishDuration
	}
	if spec.Height != 0 {
		cfg.Height = spec.Height
	}
	if spec.Distance > 0 {
		cfg.Distance = spec.Distance
	}
	if spec.AngleDeg > 0 {
		cfg.Angle = spec.AngleDeg * math.Pi / 180
	}
	if spec.Penumbra > 0 {
		cfg.Penumbra = spec.Penumbra
	}
	if spec.Intensity > 0 {
		cfg.Intensity = spec.Intensity
	}
	return cfg
}

// Lifetime is how long a beam stays active once spawned.
func (c Config) Lifetime() float64 {
	return c.FlickerOnDuration + c.LifetimeDuration
}
