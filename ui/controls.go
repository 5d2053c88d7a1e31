package ui

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Settings are the live-tunable wheel properties shown in the settings panel.
type Settings struct {
	Radius             float32
	CenterButtonRadius float32
	ArcWidth           float32
	AnimationMS        float32
	CollapsedScale     float32
	ContentOffset      float32
}

// SettingsAction is a button pressed in the settings panel this frame.
type SettingsAction int

const (
	ActionNone SettingsAction = iota
	ActionPickCenterIcon
	ActionClearCenterIcon
	ActionReset
)

// AnimationDuration returns AnimationMS as a duration.
func (s Settings) AnimationDuration() time.Duration {
	return time.Duration(s.AnimationMS) * time.Millisecond
}

// SettingsPanel renders raygui sliders for the wheel settings.
type SettingsPanel struct {
	renderer *Renderer
	x, y     int32
	width    int32
	visible  bool
}

// NewSettingsPanel creates a hidden settings panel.
func NewSettingsPanel(x, y, width int32, accent rl.Color) *SettingsPanel {
	return &SettingsPanel{
		renderer: NewRenderer(accent),
		x:        x,
		y:        y,
		width:    width,
	}
}

// Toggle switches panel visibility.
func (p *SettingsPanel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// Contains reports whether a screen point is over the visible panel, so
// pointer input there is not routed to the wheel.
func (p *SettingsPanel) Contains(x, y float32) bool {
	if !p.visible {
		return false
	}
	return rl.CheckCollisionPointRec(rl.Vector2{X: x, Y: y}, p.bounds())
}

func (p *SettingsPanel) bounds() rl.Rectangle {
	return rl.Rectangle{X: float32(p.x), Y: float32(p.y), Width: float32(p.width), Height: 330}
}

// Draw renders the panel, applies slider edits to s and returns whether any
// value changed and which button, if any, was pressed.
func (p *SettingsPanel) Draw(s *Settings) (changed bool, action SettingsAction) {
	if !p.visible {
		return false, ActionNone
	}

	r := p.renderer
	b := p.bounds()
	r.DrawPanel(p.x, p.y, p.width, int32(b.Height))

	px := float32(p.x + r.Theme.Padding)
	py := float32(p.y + r.Theme.Padding)
	py = float32(r.DrawTitle(int32(px), int32(py), "Wheel"))

	sliderW := float32(p.width) - 2*float32(r.Theme.Padding) - 50
	slider := func(label string, value *float32, min, max float32, format string) {
		rl.DrawText(label, int32(px), int32(py), r.Theme.FontSize, r.Theme.Muted)
		py += 14
		v := gui.SliderBar(rl.Rectangle{X: px, Y: py, Width: sliderW, Height: 16}, "", "", *value, min, max)
		rl.DrawText(fmt.Sprintf(format, v), int32(px+sliderW+6), int32(py+2), r.Theme.FontSize, r.Theme.Text)
		if v != *value {
			*value = v
			changed = true
		}
		py += 24
	}

	slider("Radius", &s.Radius, 60, 300, "%.0f")
	slider("Center button", &s.CenterButtonRadius, 0, 80, "%.0f")
	slider("Arc width", &s.ArcWidth, 0, 20, "%.1f")
	slider("Animation (ms)", &s.AnimationMS, 0, 1000, "%.0f")
	slider("Collapsed scale", &s.CollapsedScale, 0.05, 1, "%.2f")
	slider("Content offset", &s.ContentOffset, 0, 0.9, "%.2f")

	bw := (float32(p.width) - 2*float32(r.Theme.Padding) - 10) / 2
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: bw, Height: 24}, "Center icon...") {
		action = ActionPickCenterIcon
	}
	if gui.Button(rl.Rectangle{X: px + bw + 10, Y: py, Width: bw, Height: 24}, "Clear icon") {
		action = ActionClearCenterIcon
	}
	py += 30
	if gui.Button(rl.Rectangle{X: px, Y: py, Width: 2*bw + 10, Height: 24}, "Reset") {
		action = ActionReset
	}
	return changed, action
}
