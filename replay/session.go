package replay

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pthm-cable/wheeltab/config"
	"github.com/pthm-cable/wheeltab/telemetry"
	"github.com/pthm-cable/wheeltab/wheel"
)

// NewController builds a controller from cfg. Transitions complete
// immediately. rec, when non-nil, receives selections.
func NewController(cfg *config.Config, logger *slog.Logger, rec *telemetry.Recorder) (*wheel.Controller, error) {
	opts := []wheel.Option{
		wheel.WithLogger(logger),
		wheel.WithAppearance(cfg.Appearance()),
		wheel.WithContentOffset(cfg.Layout.ContentOffset),
	}
	if rec != nil {
		opts = append(opts, wheel.WithListener(rec))
	}
	c, err := wheel.New(cfg.Derived.Items, cfg.Wheel.Radius, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating wheel: %w", err)
	}
	return c, nil
}

// RunFile loads the script at path and runs it against a fresh controller
// built from cfg, recording into rec.
func RunFile(ctx context.Context, path string, cfg *config.Config, logger *slog.Logger, rec *telemetry.Recorder) (*wheel.Controller, error) {
	s, err := Load(path)
	if err != nil {
		return nil, err
	}
	c, err := NewController(cfg, logger, rec)
	if err != nil {
		return nil, err
	}
	if err := Run(ctx, s, c, rec); err != nil {
		return c, err
	}
	return c, nil
}
