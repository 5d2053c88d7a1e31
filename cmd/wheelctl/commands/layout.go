package commands

import (
	"fmt"
	"math"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/wheeltab/wheel"
)

func layoutCmd() *cobra.Command {
	var (
		n      int
		radius float64
	)
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Print the wedge table",
		Long:  "Print every wedge's angles, icon point and canonical rotation. Without -n the configured items are used.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if radius <= 0 {
				radius = cfg.Wheel.Radius
			}
			items := cfg.Derived.Items
			if n > 0 {
				items = make([]wheel.Item, n)
				for i := range items {
					id := fmt.Sprintf("item-%d", i)
					items[i] = wheel.Item{ID: id, Icon: id + ".png"}
				}
			}
			if err := wheel.ValidateItems(items); err != nil {
				return err
			}
			layout := wheel.NewLayout(items, radius, cfg.Layout.ContentOffset)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "items=%d radius=%g slice=%.2f°\n", layout.Len(), radius, deg(wheel.SliceAngle(layout.Len())))
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "INDEX\tID\tSTART\tEND\tICON X\tICON Y\tCANONICAL")
			for _, w := range layout.Wedges() {
				p := w.IconPoint()
				fmt.Fprintf(tw, "%d\t%s\t%.2f°\t%.2f°\t%.1f\t%.1f\t%.2f°\n",
					w.Index, w.Item.ID, deg(w.Start), deg(w.End), p.X, p.Y,
					deg(wheel.CanonicalAngle(layout.Len(), w.Index)))
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVarP(&n, "count", "n", 0, "number of placeholder items")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 0, "wheel radius (default from config)")
	return cmd
}

func deg(rad float64) float64 {
	return rad * 180 / math.Pi
}
