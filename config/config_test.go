package config

import (
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pthm-cable/wheeltab/wheel"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Derived.Items) != 4 {
		t.Errorf("expected 4 default items, got %d", len(cfg.Derived.Items))
	}
	if cfg.Derived.AnimationDuration != 200*time.Millisecond {
		t.Errorf("animation duration = %v", cfg.Derived.AnimationDuration)
	}
	want := color.RGBA{R: 250, G: 250, B: 250, A: 255}
	if cfg.Derived.Background != want {
		t.Errorf("background = %v, want %v", cfg.Derived.Background, want)
	}
	a := cfg.Appearance()
	if a.CollapsedScale != 0.1 || a.CenterButtonRadius != 32 {
		t.Errorf("appearance = %+v", a)
	}
}

func TestLoadMergesOverrides(t *testing.T) {
	path := writeConfig(t, `
wheel:
  radius: 90
  animation_duration: 0s
items:
  - id: a
    icon: a.png
  - id: b
    icon: b.png
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Wheel.Radius != 90 {
		t.Errorf("radius = %v, want 90", cfg.Wheel.Radius)
	}
	// Untouched keys keep their defaults.
	if cfg.Wheel.CenterButtonRadius != 32 || cfg.Screen.TargetFPS != 60 {
		t.Errorf("defaults lost: %+v %+v", cfg.Wheel, cfg.Screen)
	}
	if cfg.Derived.AnimationDuration != 0 {
		t.Errorf("animation duration = %v, want 0", cfg.Derived.AnimationDuration)
	}
	if len(cfg.Derived.Items) != 2 || cfg.Derived.Items[1].ID != "b" {
		t.Errorf("items = %+v", cfg.Derived.Items)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"bad color", "wheel:\n  background_color: \"#ggg\"\n"},
		{"bad duration", "wheel:\n  animation_duration: soon\n"},
		{"zero radius", "wheel:\n  radius: 0\n"},
		{"bad anchor", "wheel:\n  anchor: left\n"},
		{"collapsed scale", "wheel:\n  collapsed_scale: 0\n"},
		{"duplicate items", "items:\n  - {id: a, icon: a}\n  - {id: a, icon: b}\n"},
		{"not yaml", "wheel: [\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(writeConfig(t, tt.body)); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadInvalidItemsWrapsSentinel(t *testing.T) {
	_, err := Load(writeConfig(t, "items:\n  - {id: a}\n"))
	if !errors.Is(err, wheel.ErrInvalidItem) {
		t.Errorf("expected ErrInvalidItem, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want color.RGBA
	}{
		{"#fafafa", color.RGBA{R: 250, G: 250, B: 250, A: 255}},
		{"fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{"#3D7CF4", color.RGBA{R: 0x3d, G: 0x7c, B: 0xf4, A: 255}},
		{"#000000ff", color.RGBA{A: 255}},
		{"#ff000080", color.RGBA{R: 255, A: 0x80}},
		{"#3d7cf400", color.RGBA{R: 0x3d, G: 0x7c, B: 0xf4}},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil {
			t.Errorf("ParseColor(%q): %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	for _, bad := range []string{"", "#12", "#12345", "#zzzzzz"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestWriteYAMLRoundTrip(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	cfg.Wheel.Radius = 77
	path := filepath.Join(t.TempDir(), "out.yaml")
	if err := cfg.WriteYAML(path); err != nil {
		t.Fatal(err)
	}
	again, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if again.Wheel.Radius != 77 || len(again.Derived.Items) != len(cfg.Derived.Items) {
		t.Errorf("round trip lost values: %+v", again.Wheel)
	}
}
