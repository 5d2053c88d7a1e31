package app

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/pthm-cable/wheeltab/telemetry"
	"github.com/pthm-cable/wheeltab/wheel"
)

// handleInput processes keyboard and pointer input.
func (a *App) handleInput() {
	a.handleResize()

	if rl.IsKeyPressed(rl.KeyF11) {
		rl.ToggleFullscreen()
	}
	if rl.IsKeyPressed(rl.KeyP) {
		a.showPerf = !a.showPerf
	}
	if rl.IsKeyPressed(rl.KeyS) {
		a.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyI) || a.pickPending {
		a.pickPending = false
		a.chooseCenterIcon()
	}

	wasOpen := a.ctrl.IsOpen()

	if rl.IsKeyPressed(rl.KeySpace) {
		a.ctrl.TapCenter()
	}
	if rl.IsKeyPressed(rl.KeyRight) {
		a.step(1)
	}
	if rl.IsKeyPressed(rl.KeyLeft) {
		a.step(-1)
	}

	a.handleCameraInput()
	a.handlePointer()

	if a.ctrl.IsOpen() != wasOpen {
		a.recorder.Toggled(a.ctrl)
	}
}

// step moves the selection by delta slots. Programmatic selection does not
// reach the listener, so the event and sound are raised here.
func (a *App) step(delta int) {
	n := a.ctrl.Len()
	if n == 0 || !a.ctrl.IsOpen() {
		return
	}
	i := ((a.ctrl.Selected()+delta)%n + n) % n
	if err := a.ctrl.SetSelectedIndex(i, true); err != nil {
		a.logger.Warn("select failed", "index", i, "error", err)
		return
	}
	a.recorder.Record(telemetry.EventSelect, a.ctrl)
	a.sound.Play()
}

// handlePointer feeds the mouse through the gesture tracker. Coordinates are
// converted to the wheel's host frame before they reach the controller.
func (a *App) handlePointer() {
	mouse := rl.GetMousePosition()
	wx, wy := a.camera.ScreenToWorld(mouse.X, mouse.Y)
	p := r2.Vec{X: float64(wx), Y: float64(wy)}

	// Keep the dead zone constant on screen regardless of zoom.
	a.tracker.DeadZone = a.cfg.Input.DragDeadZone / float64(a.camera.Zoom)

	var inputs []wheel.Input
	switch {
	case rl.IsMouseButtonPressed(rl.MouseButtonLeft):
		if a.panel.Contains(mouse.X, mouse.Y) {
			return
		}
		a.tracker.Press(p)
	case rl.IsMouseButtonDown(rl.MouseButtonLeft):
		inputs = a.tracker.Move(p)
	case rl.IsMouseButtonReleased(rl.MouseButtonLeft):
		inputs = append(a.tracker.Move(p), a.tracker.Release()...)
	}
	if !rl.IsWindowFocused() {
		inputs = append(inputs, a.tracker.Cancel()...)
	}

	for _, in := range inputs {
		a.ctrl.Handle(in)
	}
}

// handleResize checks for window resize and propagates new dimensions.
func (a *App) handleResize() {
	if !rl.IsWindowResized() {
		return
	}
	w := float32(rl.GetScreenWidth())
	h := float32(rl.GetScreenHeight())
	if w == a.screenWidth && h == a.screenHeight {
		return
	}
	a.screenWidth = w
	a.screenHeight = h
	a.camera.Resize(w, h)
}

// handleCameraInput processes zoom controls.
func (a *App) handleCameraInput() {
	if move := rl.GetMouseWheelMove(); move != 0 {
		a.camera.ZoomBy(1 + move*0.1)
	}
	if rl.IsKeyPressed(rl.KeyEqual) || rl.IsKeyPressed(rl.KeyKpAdd) {
		a.camera.ZoomBy(1.25)
	}
	if rl.IsKeyPressed(rl.KeyMinus) || rl.IsKeyPressed(rl.KeyKpSubtract) {
		a.camera.ZoomBy(0.8)
	}
	if rl.IsKeyPressed(rl.KeyHome) {
		a.camera.Reset()
	}
}

// chooseCenterIcon opens a file dialog and applies the chosen icon.
func (a *App) chooseCenterIcon() {
	path, ok, err := pickIcon()
	if err != nil {
		a.logger.Error("icon dialog failed", "error", err)
		return
	}
	if !ok {
		return
	}
	a.ctrl.SetCenterIcon(path)
	a.logger.Info("center icon set", "path", path)
}

// applySettings pushes panel values to the controller and camera.
func (a *App) applySettings() {
	s := a.tuning
	if err := a.ctrl.Resize(float64(s.Radius)); err != nil {
		a.logger.Warn("resize rejected", "radius", s.Radius, "error", err)
	} else {
		a.camera.SetWheelSize(2 * s.Radius)
	}
	a.ctrl.SetCenterButtonRadius(float64(s.CenterButtonRadius))
	a.ctrl.SetArcWidth(float64(s.ArcWidth))
	a.ctrl.SetAnimationDuration(s.AnimationDuration())
	a.ctrl.SetCollapsedScale(float64(s.CollapsedScale))
	a.ctrl.SetContentOffset(float64(s.ContentOffset))
}
