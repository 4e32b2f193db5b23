// Package config loads optional YAML overrides for the simulation tuning
// defaults defined in parameter. A missing file or field keeps the default;
// a present but invalid value fails loudly at load time.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"cosmodrift/parameter"
)

// Range is a [min, max] draw for a random value
type Range struct {
	Min float32 `yaml:"min"`
	Max float32 `yaml:"max"`
}

func (r Range) valid() bool {
	return r.Min <= r.Max
}

// Tuning carries every per-system knob. Zero value is not usable; start
// from Default and overlay.
type Tuning struct {
	TargetObjectCount int `yaml:"target_object_count"`
	MaxObjectCount    int `yaml:"max_object_count"`

	MaxTimeStep float32 `yaml:"max_time_step"`

	SpawnDelay Range   `yaml:"spawn_delay"`
	BaseSpeed  Range   `yaml:"base_speed"`
	TargetSize Range   `yaml:"target_size"`
	GrowthRate Range   `yaml:"growth_rate"`

	Acceleration      Range   `yaml:"acceleration"`
	MaxLateralSpeed   float32 `yaml:"max_lateral_speed"`
	MinVisibilityTime float32 `yaml:"min_visibility_time"`

	MaxLifetime               float32 `yaml:"max_lifetime"`
	RemainingLifetimeFraction float32 `yaml:"remaining_lifetime_fraction"`

	CometWeight   float32 `yaml:"comet_weight"`
	CrystalWeight float32 `yaml:"crystal_weight"`
	SphereWeight  float32 `yaml:"sphere_weight"`

	TrailCapacity    int     `yaml:"trail_capacity"`
	TrailSpawnFactor float32 `yaml:"trail_spawn_factor"`
	TrailLifetime    Range   `yaml:"trail_lifetime"`
	TrailSize        Range   `yaml:"trail_size"`

	EffectCapacity  int   `yaml:"effect_capacity"`
	EffectIntensity Range `yaml:"effect_intensity"`

	HistoryCapacity int `yaml:"history_capacity"`
}

// Default returns the tuning built from the parameter package
func Default() Tuning {
	return Tuning{
		TargetObjectCount: parameter.TargetObjectCount,
		MaxObjectCount:    parameter.MaxObjectCount,
		MaxTimeStep:       parameter.MaxTimeStep,

		SpawnDelay: Range{Min: parameter.MinSpawnDelay, Max: parameter.MaxSpawnDelay},
		BaseSpeed:  Range{Min: parameter.MinBaseSpeed, Max: parameter.MaxBaseSpeed},
		TargetSize: Range{Min: parameter.MinTargetSize, Max: parameter.MaxTargetSize},
		GrowthRate: Range{Min: parameter.MinGrowthRate, Max: parameter.MaxGrowthRate},

		Acceleration:      Range{Min: parameter.MinAcceleration, Max: parameter.MaxAcceleration},
		MaxLateralSpeed:   parameter.MaxLateralSpeed,
		MinVisibilityTime: parameter.MinVisibilityTime,

		MaxLifetime:               parameter.MaxLifetime,
		RemainingLifetimeFraction: parameter.RemainingLifetimeFraction,

		CometWeight:   parameter.CometWeight,
		CrystalWeight: parameter.CrystalWeight,
		SphereWeight:  parameter.SphereWeight,

		TrailCapacity:    parameter.TrailCapacity,
		TrailSpawnFactor: parameter.TrailSpawnFactor,
		TrailLifetime:    Range{Min: parameter.TrailMinLifetime, Max: parameter.TrailMaxLifetime},
		TrailSize:        Range{Min: parameter.TrailMinSize, Max: parameter.TrailMaxSize},

		EffectCapacity:  parameter.EffectCapacity,
		EffectIntensity: Range{Min: parameter.EffectMinIntensity, Max: parameter.EffectMaxIntensity},

		HistoryCapacity: 100,
	}
}

// Load reads a YAML file over the defaults. Absent fields keep defaults.
func Load(path string) (Tuning, error) {
	t := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("failed to read tuning config: %w", err)
	}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return t, fmt.Errorf("failed to parse tuning config: %w", err)
	}
	if err := t.Validate(); err != nil {
		return t, fmt.Errorf("invalid tuning config: %w", err)
	}
	return t, nil
}

// Validate rejects values that would break simulation invariants
func (t *Tuning) Validate() error {
	if t.TargetObjectCount <= 0 {
		return fmt.Errorf("target_object_count must be positive, got %d", t.TargetObjectCount)
	}
	if t.MaxObjectCount < t.TargetObjectCount {
		return fmt.Errorf("max_object_count %d below target_object_count %d",
			t.MaxObjectCount, t.TargetObjectCount)
	}
	if t.MaxTimeStep <= 0 {
		return fmt.Errorf("max_time_step must be positive, got %v", t.MaxTimeStep)
	}
	for name, r := range map[string]Range{
		"spawn_delay":      t.SpawnDelay,
		"base_speed":       t.BaseSpeed,
		"target_size":      t.TargetSize,
		"growth_rate":      t.GrowthRate,
		"acceleration":     t.Acceleration,
		"trail_lifetime":   t.TrailLifetime,
		"trail_size":       t.TrailSize,
		"effect_intensity": t.EffectIntensity,
	} {
		if !r.valid() {
			return fmt.Errorf("%s: min %v exceeds max %v", name, r.Min, r.Max)
		}
		if r.Min < 0 {
			return fmt.Errorf("%s: negative min %v", name, r.Min)
		}
	}
	if t.MaxLateralSpeed <= 0 {
		return fmt.Errorf("max_lateral_speed must be positive, got %v", t.MaxLateralSpeed)
	}
	if t.MinVisibilityTime < 0 {
		return fmt.Errorf("min_visibility_time must not be negative, got %v", t.MinVisibilityTime)
	}
	if t.MaxLifetime <= 0 {
		return fmt.Errorf("max_lifetime must be positive, got %v", t.MaxLifetime)
	}
	if t.RemainingLifetimeFraction < 0 || t.RemainingLifetimeFraction > 1 {
		return fmt.Errorf("remaining_lifetime_fraction out of [0,1]: %v", t.RemainingLifetimeFraction)
	}
	if t.CometWeight < 0 || t.CrystalWeight < 0 || t.SphereWeight < 0 {
		return fmt.Errorf("kind weights must not be negative")
	}
	if t.CometWeight+t.CrystalWeight+t.SphereWeight <= 0 {
		return fmt.Errorf("kind weights sum to zero")
	}
	if t.TrailCapacity <= 0 {
		return fmt.Errorf("trail_capacity must be positive, got %d", t.TrailCapacity)
	}
	if t.TrailSpawnFactor < 0 || t.TrailSpawnFactor > 1 {
		return fmt.Errorf("trail_spawn_factor out of [0,1]: %v", t.TrailSpawnFactor)
	}
	if t.EffectCapacity <= 0 {
		return fmt.Errorf("effect_capacity must be positive, got %d", t.EffectCapacity)
	}
	if t.HistoryCapacity <= 0 {
		return fmt.Errorf("history_capacity must be positive, got %d", t.HistoryCapacity)
	}
	return nil
}
