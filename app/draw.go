package app

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wheeltab/render"
	"github.com/pthm-cable/wheeltab/ui"
	"github.com/pthm-cable/wheeltab/wheel"
)

const rad2deg = 180 / math.Pi

// drawWheel draws the wedges, the selection arc, the icons and the center
// button at the animator's current pose.
func (a *App) drawWheel() {
	layout := a.ctrl.Layout()
	if layout.Len() == 0 {
		return
	}
	ap := a.ctrl.Appearance()
	pose := a.animator.Pose()
	zoom := a.camera.Zoom

	cx, cy := a.camera.ScreenCenter()
	center := rl.Vector2{X: cx, Y: cy}
	radius := float32(layout.Radius()*pose.Scale) * zoom

	for _, w := range layout.Wedges() {
		start := w.Start + pose.Rotation
		rl.DrawCircleSector(center, radius, float32(start*rad2deg), float32((w.End+pose.Rotation)*rad2deg), 0, ap.Background)
		sin, cos := math.Sincos(start)
		edge := rl.Vector2{X: cx + radius*float32(cos), Y: cy + radius*float32(sin)}
		rl.DrawLineEx(center, edge, 1, ap.Border)
	}

	// Selection arcs fade in and out with the slot highlight levels.
	if ap.ArcWidth > 0 {
		aw := float32(ap.ArcWidth*pose.Scale) * zoom
		for _, s := range a.slots.Slots() {
			level := s.Highlight.Level
			if level <= 0 || s.Slot.Index >= layout.Len() {
				continue
			}
			w := layout.Wedge(s.Slot.Index)
			start, end := w.ArcSpan()
			start = (start + pose.Rotation) * rad2deg
			end = (end + pose.Rotation) * rad2deg
			rl.DrawRing(center, radius-aw, radius, float32(start), float32(end), 0, rl.Fade(a.selectedColor, level))
		}
	}

	xf := pose.Transform(layout.Center())
	size := float32(layout.Radius()*render.IconFraction*pose.Scale) * zoom
	highlighted := a.ctrl.Highlighted()
	for _, s := range a.slots.Slots() {
		if s.Slot.Index >= layout.Len() {
			continue
		}
		w := layout.Wedge(s.Slot.Index)
		p := wheel.Apply(xf, w.IconPoint())
		if !a.camera.IsVisible(float32(p.X), float32(p.Y), size/zoom) {
			continue
		}
		sx, sy := a.camera.WorldToScreen(float32(p.X), float32(p.Y))
		rot := float32((w.IconRotation() + pose.Rotation) * rad2deg)
		selected := s.Slot.Index == highlighted
		tint := rl.DarkGray
		if selected {
			tint = a.selectedColor
		}
		a.drawIcon(s.Icon.Ref(selected), s.Icon.Title, sx, sy, size, rot, tint)
	}

	if ap.CenterButtonRadius > 0 {
		cr := float32(ap.CenterButtonRadius) * zoom
		rl.DrawCircleV(center, cr, ap.Background)
		rl.DrawRing(center, cr-2, cr, 0, 360, 0, a.selectedColor)
		if ap.CenterIcon != "" {
			a.drawIcon(ap.CenterIcon, "", cx, cy, cr, 0, a.selectedColor)
		}
	}
}

// drawIcon draws the texture for ref centered on (x, y), or label when the
// texture is unavailable.
func (a *App) drawIcon(ref, label string, x, y, size, rotation float32, tint rl.Color) {
	if tex, ok := a.textures.Get(ref); ok {
		src := rl.Rectangle{Width: float32(tex.Width), Height: float32(tex.Height)}
		dst := rl.Rectangle{X: x, Y: y, Width: size, Height: size}
		rl.DrawTexturePro(tex, src, dst, rl.Vector2{X: size / 2, Y: size / 2}, rotation, rl.White)
		return
	}
	if label == "" {
		rl.DrawCircleV(rl.Vector2{X: x, Y: y}, size/6, tint)
		return
	}
	fontSize := int32(max(10, size/3))
	w := rl.MeasureText(label, fontSize)
	rl.DrawText(label, int32(x)-w/2, int32(y)-fontSize/2, fontSize, tint)
}

// drawSettings draws the settings panel and applies its edits.
func (a *App) drawSettings() {
	changed, action := a.panel.Draw(&a.tuning)
	switch action {
	case ui.ActionPickCenterIcon:
		// The dialog blocks, so it runs at the start of the next frame
		// rather than between BeginDrawing and EndDrawing.
		a.pickPending = true
	case ui.ActionClearCenterIcon:
		a.ctrl.SetCenterIcon("")
	case ui.ActionReset:
		a.tuning = a.defaultTuning()
		changed = true
	}
	if changed {
		a.applySettings()
	}
}
