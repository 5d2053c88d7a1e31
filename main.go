package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"path/filepath"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/gogpu/gg"

	"github.com/pthm-cable/wheeltab/app"
	"github.com/pthm-cable/wheeltab/config"
	"github.com/pthm-cable/wheeltab/render"
	"github.com/pthm-cable/wheeltab/replay"
	"github.com/pthm-cable/wheeltab/telemetry"
	"github.com/pthm-cable/wheeltab/wheel"
)

func main() {
	// CLI flags
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	headless := flag.Bool("headless", false, "Run without graphics")
	scriptPath := flag.String("script", "", "Replay script to run in headless mode")
	outputDir := flag.String("output-dir", "", "Output directory for CSV logs and config snapshot")
	snapshot := flag.String("snapshot", "", "Write a PNG of the wheel's final state (headless)")
	showPerf := flag.Bool("perf", false, "Show the frame timing panel")

	flag.Parse()

	// Initialize config before anything else
	if err := config.Init(*configPath); err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	cfg := config.Cfg()

	// Set up slog (JSON to stdout for structured logging)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)
	gg.SetLogger(logger.With("component", "gg"))

	// Relative icon and sound paths resolve against the config file.
	configDir := ""
	if *configPath != "" {
		configDir = filepath.Dir(*configPath)
	}

	if *headless {
		if err := runHeadless(cfg, logger, *scriptPath, *outputDir, *snapshot, configDir); err != nil {
			logger.Error("headless run failed", "error", err)
			os.Exit(1)
		}
		return
	}

	// Graphical mode
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	rl.InitWindow(int32(cfg.Screen.Width), int32(cfg.Screen.Height), "Wheel Tab")
	defer rl.CloseWindow()

	rl.SetTargetFPS(int32(cfg.Screen.TargetFPS))

	a, err := app.New(cfg, logger, app.Options{
		ConfigDir: configDir,
		OutputDir: *outputDir,
		ShowPerf:  *showPerf,
	})
	if err != nil {
		logger.Error("failed to start", "error", err)
		os.Exit(1)
	}
	defer a.Unload()

	a.Run()
}

// runHeadless replays a script against the configured wheel without a window.
func runHeadless(cfg *config.Config, logger *slog.Logger, scriptPath, outputDir, snapshot, configDir string) error {
	if outputDir == "" {
		outputDir = cfg.Telemetry.OutputDir
	}
	output, err := telemetry.NewOutputManager(outputDir)
	if err != nil {
		return err
	}
	defer output.Close()
	if err := output.WriteConfig(cfg); err != nil {
		return err
	}

	rec := telemetry.NewRecorder(logger, output)
	wheelLogger := logger.With("component", "wheel")

	slog.Info("starting headless run", "script", scriptPath, "output_dir", output.Dir())

	var c *wheel.Controller
	if scriptPath != "" {
		c, err = replay.RunFile(context.Background(), scriptPath, cfg, wheelLogger, rec)
	} else {
		c, err = replay.NewController(cfg, wheelLogger, rec)
	}
	if err != nil {
		return err
	}
	if err := rec.Err(); err != nil {
		return err
	}

	item, _ := c.SelectedItem()
	slog.Info("headless run complete",
		"events", len(rec.Events()),
		"selected", c.Selected(),
		"item", item.ID,
		"open", c.IsOpen(),
	)

	if snapshot == "" {
		return nil
	}
	r := render.New(logger.With("component", "render"))
	if err := r.SavePNG(snapshot, c, render.Options{Selected: cfg.Derived.Selected, IconDir: configDir}); err != nil {
		return err
	}
	slog.Info("snapshot written", "path", snapshot)
	return nil
}
