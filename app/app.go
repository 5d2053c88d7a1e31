// Package app hosts a wheel in a raylib window.
package app

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/wheeltab/anim"
	"github.com/pthm-cable/wheeltab/camera"
	"github.com/pthm-cable/wheeltab/config"
	"github.com/pthm-cable/wheeltab/gesture"
	"github.com/pthm-cable/wheeltab/systems"
	"github.com/pthm-cable/wheeltab/telemetry"
	"github.com/pthm-cable/wheeltab/ui"
	"github.com/pthm-cable/wheeltab/wheel"
)

const title = "Wheel Tab"

const controls = "Drag/click: select | Space: open/close | Left/Right: step | S: settings | P: perf | I: center icon | +/-: zoom | Home: reset | F11: fullscreen"

// perfLogInterval is how many frames pass between perf log lines.
const perfLogInterval = 600

// Options configures an App.
type Options struct {
	ConfigDir string // Base for relative icon and sound paths
	OutputDir string // Overrides telemetry.output_dir when set
	ShowPerf  bool
}

// App holds the wheel, its view state and the host-side systems.
type App struct {
	cfg    *config.Config
	logger *slog.Logger

	ctrl     *wheel.Controller
	animator *anim.Animator
	slots    *systems.SlotSystem
	camera   *camera.Camera
	tracker  gesture.Tracker

	textures *TextureCache
	sound    *Sound
	recorder *telemetry.Recorder
	output   *telemetry.OutputManager
	perf     *telemetry.PerfCollector

	hud      *ui.HUD
	panel    *ui.SettingsPanel
	tuning   ui.Settings
	showPerf bool

	pickPending bool // open the icon dialog next frame

	selectedColor rl.Color
	configDir     string
	frame         int64

	screenWidth, screenHeight float32
}

// New builds an App from cfg. The raylib window must already be open.
func New(cfg *config.Config, logger *slog.Logger, opts Options) (*App, error) {
	if logger == nil {
		logger = slog.Default()
	}

	outDir := cfg.Telemetry.OutputDir
	if opts.OutputDir != "" {
		outDir = opts.OutputDir
	}
	output, err := telemetry.NewOutputManager(outDir)
	if err != nil {
		return nil, err
	}
	if err := output.WriteConfig(cfg); err != nil {
		output.Close()
		return nil, fmt.Errorf("writing config snapshot: %w", err)
	}

	a := &App{
		cfg:           cfg,
		logger:        logger,
		slots:         systems.NewSlotSystem(),
		textures:      NewTextureCache(opts.ConfigDir, logger),
		recorder:      telemetry.NewRecorder(logger, output),
		output:        output,
		perf:          telemetry.NewPerfCollector(cfg.Screen.TargetFPS),
		hud:           ui.NewHUD(cfg.Derived.Selected),
		panel:         ui.NewSettingsPanel(10, 100, 240, cfg.Derived.Selected),
		showPerf:      opts.ShowPerf,
		selectedColor: cfg.Derived.Selected,
		configDir:     opts.ConfigDir,
		screenWidth:   float32(rl.GetScreenWidth()),
		screenHeight:  float32(rl.GetScreenHeight()),
	}

	if ref := cfg.Sound.Selection; ref != "" {
		sound, err := LoadSound(a.resolve(ref))
		if err != nil {
			// Sound is optional.
			logger.Warn("selection sound disabled", "path", ref, "error", err)
		} else {
			a.sound = sound
		}
	}

	a.animator = anim.New(wheel.Pose{Scale: 1})
	ctrl, err := wheel.New(cfg.Derived.Items, cfg.Wheel.Radius,
		wheel.WithAnimator(a.animator),
		wheel.WithListener(wheel.ListenerFunc(a.didSelectItem)),
		wheel.WithLogger(logger.With("component", "wheel")),
		wheel.WithAppearance(cfg.Appearance()),
		wheel.WithContentOffset(cfg.Layout.ContentOffset),
	)
	if err != nil {
		output.Close()
		return nil, fmt.Errorf("creating wheel: %w", err)
	}
	a.ctrl = ctrl

	anchor, err := camera.ParseAnchor(cfg.Wheel.Anchor)
	if err != nil {
		output.Close()
		return nil, err
	}
	a.camera = camera.New(a.screenWidth, a.screenHeight, float32(2*cfg.Wheel.Radius), anchor, float32(cfg.Wheel.Margin))
	a.tuning = a.defaultTuning()
	a.slots.Sync(ctrl)

	logger.Info("wheel ready",
		"items", ctrl.Len(),
		"radius", cfg.Wheel.Radius,
		"output_dir", output.Dir(),
		"sound", a.sound != nil,
	)
	return a, nil
}

// Controller returns the hosted wheel.
func (a *App) Controller() *wheel.Controller { return a.ctrl }

// Update advances one frame: input, animation and systems.
func (a *App) Update() {
	a.perf.StartFrame()

	a.perf.StartPhase(telemetry.PhaseInput)
	a.handleInput()

	dt := rl.GetFrameTime()
	a.perf.StartPhase(telemetry.PhaseAnimate)
	a.animator.Update(time.Duration(float64(dt) * float64(time.Second)))

	a.perf.StartPhase(telemetry.PhaseSystems)
	a.slots.Sync(a.ctrl)
	a.slots.Update(a.ctrl, dt)
}

// Draw renders the frame and closes out frame timing.
func (a *App) Draw() {
	a.perf.StartPhase(telemetry.PhaseDraw)

	rl.BeginDrawing()
	rl.ClearBackground(rl.RayWhite)

	a.drawWheel()

	item, _ := a.ctrl.SelectedItem()
	a.hud.Draw(ui.HUDData{
		Title:       title,
		ItemTitle:   item.Label(),
		Selected:    a.ctrl.Selected(),
		Items:       a.ctrl.Len(),
		Open:        a.ctrl.IsOpen(),
		Dragging:    a.tracker.Dragging(),
		Rotation:    a.animator.Pose().Rotation,
		Progress:    a.animator.Progress(),
		Selections:  a.recorder.Count(telemetry.EventSelect),
		FPS:         rl.GetFPS(),
		Perf:        a.perf.Stats(),
		ShowPerf:    a.showPerf,
		ScreenWidth: int32(a.screenWidth),
	})
	a.drawSettings()
	a.hud.DrawControls(int32(a.screenHeight), controls)

	rl.EndDrawing()
	a.perf.EndFrame()

	a.frame++
	if a.frame%perfLogInterval == 0 {
		stats := a.perf.Stats()
		if err := a.output.WritePerf(stats, a.frame); err != nil {
			a.logger.Error("failed to write perf", "error", err)
		}
		a.logger.Debug("perf", "frame", a.frame, "stats", stats)
	}
}

// Run loops until the window is closed.
func (a *App) Run() {
	for !rl.WindowShouldClose() {
		a.Update()
		a.Draw()
	}
}

// Unload releases textures, audio and output files.
func (a *App) Unload() {
	a.textures.Unload()
	a.sound.Close()
	if err := a.output.Close(); err != nil {
		a.logger.Error("failed to close output", "error", err)
	}
	a.logger.Info("session ended",
		"frames", a.frame,
		"selections", a.recorder.Count(telemetry.EventSelect),
		"toggles", a.recorder.Count(telemetry.EventOpen)+a.recorder.Count(telemetry.EventClose),
	)
}

func (a *App) didSelectItem(c *wheel.Controller, item wheel.Item) {
	a.recorder.DidSelectItem(c, item)
	a.sound.Play()
}

func (a *App) resolve(ref string) string {
	if a.configDir == "" || filepath.IsAbs(ref) {
		return ref
	}
	return filepath.Join(a.configDir, ref)
}

func (a *App) defaultTuning() ui.Settings {
	ap := a.cfg.Appearance()
	return ui.Settings{
		Radius:             float32(a.cfg.Wheel.Radius),
		CenterButtonRadius: float32(ap.CenterButtonRadius),
		ArcWidth:           float32(ap.ArcWidth),
		AnimationMS:        float32(ap.AnimationDuration.Milliseconds()),
		CollapsedScale:     float32(ap.CollapsedScale),
		ContentOffset:      float32(a.cfg.Layout.ContentOffset),
	}
}
