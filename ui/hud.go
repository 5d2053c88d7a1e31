package ui

import (
	"fmt"
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wheeltab/systems"
	"github.com/pthm-cable/wheeltab/telemetry"
)

// HUDData holds all the data needed to render the main HUD.
type HUDData struct {
	Title       string
	ItemTitle   string
	Selected    int
	Items       int
	Open        bool
	Dragging    bool
	Rotation    float64
	Progress    float64 // Animation progress, 1 when idle
	Selections  int
	FPS         int32
	Perf        telemetry.PerfStats
	ShowPerf    bool
	ScreenWidth int32
}

// HUD renders the main heads-up display.
type HUD struct {
	renderer *Renderer
}

// NewHUD creates a HUD whose highlights use accent.
func NewHUD(accent rl.Color) *HUD {
	return &HUD{renderer: NewRenderer(accent)}
}

// Draw renders the HUD.
func (h *HUD) Draw(data HUDData) {
	rl.DrawText(data.Title, 10, 10, 20, rl.DarkGray)

	rl.DrawText(
		fmt.Sprintf("Selected: %s (%d/%d) | Selections: %d", data.ItemTitle, data.Selected+1, data.Items, data.Selections),
		10, 35, 16, rl.Gray,
	)

	state := "Open"
	if !data.Open {
		state = "Closed"
	}
	if data.Dragging {
		state += " | dragging"
	}
	rl.DrawText(
		fmt.Sprintf("%s | Rotation: %.1f° | FPS: %d", state, data.Rotation*180/math.Pi, data.FPS),
		10, 55, 16, rl.Gray,
	)

	if data.Progress < 1 {
		h.renderer.DrawProgress(10, 78, 220, float32(data.Progress))
	}

	if data.ShowPerf {
		h.drawPerf(data)
	}
}

func (h *HUD) drawPerf(data HUDData) {
	r := h.renderer
	const width = 200
	x := data.ScreenWidth - width - 10
	y := int32(10)
	phases := systems.FramePhases()
	r.DrawPanel(x, y, width, int32(len(phases)+1)*r.Theme.LineHeight+r.Theme.TitleSize+10+2*r.Theme.Padding)

	px := x + r.Theme.Padding
	py := y + r.Theme.Padding
	py = r.DrawTitle(px, py, "Frame")
	py = r.DrawRow(px, py, "avg", fmt.Sprintf("%d us (%.0f fps)", data.Perf.AvgFrame.Microseconds(), data.Perf.FPS))
	for _, phase := range phases {
		py = r.DrawRow(px, py, phase.Label, fmt.Sprintf("%.1f%%", data.Perf.PhasePct[phase.ID]))
	}
}

// DrawControls renders the control legend at the bottom of the screen.
func (h *HUD) DrawControls(screenHeight int32, controls string) {
	rl.DrawText(controls, 10, screenHeight-25, 14, rl.Gray)
}
