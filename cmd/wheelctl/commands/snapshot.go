package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/wheeltab/render"
	"github.com/pthm-cable/wheeltab/replay"
)

func snapshotCmd() *cobra.Command {
	var (
		output   string
		scale    float64
		selected int
		closed   bool
	)
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the configured wheel to a PNG",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := replay.NewController(cfg, logger.With("component", "wheel"), nil)
			if err != nil {
				return err
			}
			if err := c.SetSelectedIndex(selected, false); err != nil {
				return err
			}
			c.SetOpen(!closed)

			iconDir := ""
			if configPath != "" {
				iconDir = filepath.Dir(configPath)
			}
			r := render.New(logger.With("component", "render"))
			opts := render.Options{Scale: scale, Selected: cfg.Derived.Selected, IconDir: iconDir}
			if err := r.SavePNG(output, c, opts); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "wheel.png", "PNG file to write")
	cmd.Flags().Float64Var(&scale, "scale", 1, "pixels per point")
	cmd.Flags().IntVar(&selected, "selected", 0, "slot to select before rendering")
	cmd.Flags().BoolVar(&closed, "closed", false, "render the collapsed wheel")
	return cmd
}
