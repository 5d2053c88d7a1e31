package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Renderer draws themed panel primitives. Every Draw* that lays out a line
// returns the y position of the next line.
type Renderer struct {
	Theme Theme
}

// NewRenderer creates a renderer with the light theme and accent.
func NewRenderer(accent rl.Color) *Renderer {
	return &Renderer{Theme: LightTheme(accent)}
}

// DrawPanel draws a rounded card.
func (r *Renderer) DrawPanel(x, y, width, height int32) {
	rec := rl.Rectangle{X: float32(x), Y: float32(y), Width: float32(width), Height: float32(height)}
	rl.DrawRectangleRounded(rec, r.Theme.Roundness, 6, r.Theme.Panel)
	rl.DrawRectangleLinesEx(rec, 1, r.Theme.Outline)
}

// DrawTitle draws a panel title with an accent underline.
func (r *Renderer) DrawTitle(x, y int32, title string) int32 {
	rl.DrawText(title, x, y, r.Theme.TitleSize, r.Theme.Text)
	w := rl.MeasureText(title, r.Theme.TitleSize)
	rl.DrawRectangle(x, y+r.Theme.TitleSize+2, w, 2, r.Theme.Accent)
	return y + r.Theme.TitleSize + 10
}

// DrawRow draws a muted label and its value on one line.
func (r *Renderer) DrawRow(x, y int32, label, value string) int32 {
	rl.DrawText(label, x, y, r.Theme.FontSize, r.Theme.Muted)
	rl.DrawText(value, x+r.Theme.LabelWidth, y, r.Theme.FontSize, r.Theme.Text)
	return y + r.Theme.LineHeight
}

// DrawProgress draws a thin accent bar filled to frac of width.
func (r *Renderer) DrawProgress(x, y, width int32, frac float32) int32 {
	frac = min(max(frac, 0), 1)
	rl.DrawRectangle(x, y, width, 4, r.Theme.Track)
	rl.DrawRectangle(x, y, int32(float32(width)*frac), 4, r.Theme.Accent)
	return y + 10
}
