package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultIsValid(t *testing.T) {
	tuning := Default()
	if err := tuning.Validate(); err != nil {
		t.Fatalf("Default tuning must validate: %v", err)
	}
}

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tuning.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeTempConfig(t, `
target_object_count: 30
max_object_count: 64
base_speed:
  min: 5
  max: 9
`)

	tuning, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if tuning.TargetObjectCount != 30 {
		t.Errorf("target_object_count: got %d want 30", tuning.TargetObjectCount)
	}
	if tuning.BaseSpeed.Min != 5 || tuning.BaseSpeed.Max != 9 {
		t.Errorf("base_speed not overlaid: %+v", tuning.BaseSpeed)
	}

	// Untouched fields keep defaults
	def := Default()
	if tuning.MaxLateralSpeed != def.MaxLateralSpeed {
		t.Errorf("max_lateral_speed should keep default %v, got %v",
			def.MaxLateralSpeed, tuning.MaxLateralSpeed)
	}
	if tuning.EffectCapacity != def.EffectCapacity {
		t.Errorf("effect_capacity should keep default %d, got %d",
			def.EffectCapacity, tuning.EffectCapacity)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := []struct {
		name    string
		content string
	}{
		{"inverted range", "base_speed: {min: 20, max: 5}"},
		{"zero target", "target_object_count: 0"},
		{"cap below target", "target_object_count: 50\nmax_object_count: 10"},
		{"bad fraction", "remaining_lifetime_fraction: 1.5"},
		{"zero weights", "comet_weight: 0\ncrystal_weight: 0\nsphere_weight: 0"},
		{"not yaml", ": ["},
	}

	for _, tc := range cases {
		path := writeTempConfig(t, tc.content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected error", tc.name)
		}
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
