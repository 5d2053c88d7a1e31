// Package ui provides the HUD and settings panel drawn around the wheel.
package ui

import rl "github.com/gen2brain/raylib-go/raylib"

// Theme holds UI styling. Panels are light so they sit quietly beside the
// near-white wheel; the accent follows the wheel's selection color.
type Theme struct {
	Panel   rl.Color
	Outline rl.Color
	Accent  rl.Color
	Text    rl.Color
	Muted   rl.Color
	Track   rl.Color

	Padding    int32
	LineHeight int32
	LabelWidth int32
	FontSize   int32
	TitleSize  int32
	Roundness  float32
}

// LightTheme returns the panel theme with the given accent color.
func LightTheme(accent rl.Color) Theme {
	return Theme{
		Panel:      rl.Color{R: 255, G: 255, B: 255, A: 235},
		Outline:    rl.Color{R: 215, G: 218, B: 224, A: 255},
		Accent:     accent,
		Text:       rl.Color{R: 40, G: 44, B: 52, A: 255},
		Muted:      rl.Color{R: 120, G: 126, B: 138, A: 255},
		Track:      rl.Color{R: 232, G: 234, B: 238, A: 255},
		Padding:    12,
		LineHeight: 18,
		LabelWidth: 80,
		FontSize:   12,
		TitleSize:  16,
		Roundness:  0.08,
	}
}
