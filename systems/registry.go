package systems

import "github.com/pthm-cable/wheeltab/telemetry"

// Phase labels a frame phase for the perf panel.
type Phase struct {
	ID    string // Perf collector key
	Label string
}

var framePhases = []Phase{
	{ID: telemetry.PhaseInput, Label: "Input"},
	{ID: telemetry.PhaseAnimate, Label: "Animate"},
	{ID: telemetry.PhaseSystems, Label: "Highlight"},
	{ID: telemetry.PhaseDraw, Label: "Draw"},
}

// FramePhases returns the host's frame phases in execution order.
func FramePhases() []Phase {
	return append([]Phase(nil), framePhases...)
}
