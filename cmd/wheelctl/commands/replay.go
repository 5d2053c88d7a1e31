package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/pthm-cable/wheeltab/replay"
	"github.com/pthm-cable/wheeltab/telemetry"
)

func replayCmd() *cobra.Command {
	var outDir string
	cmd := &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Run an input script and print the events",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			output, err := telemetry.NewOutputManager(outDir)
			if err != nil {
				return err
			}
			defer output.Close()

			rec := telemetry.NewRecorder(logger, output)
			c, err := replay.RunFile(cmd.Context(), args[0], cfg, logger.With("component", "wheel"), rec)
			if err != nil {
				return err
			}
			if err := rec.Err(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			tw := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(tw, "SEQ\tTYPE\tINDEX\tITEM\tOPEN\tROTATION")
			for _, ev := range rec.Events() {
				fmt.Fprintf(tw, "%d\t%s\t%d\t%s\t%t\t%.2f°\n", ev.Seq, ev.Type, ev.Index, ev.ItemID, ev.Open, deg(ev.Rotation))
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			item, _ := c.SelectedItem()
			fmt.Fprintf(out, "final: selected=%d item=%s open=%t\n", c.Selected(), item.ID, c.IsOpen())
			if dir := output.Dir(); dir != "" {
				fmt.Fprintf(out, "events written to %s\n", dir)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&outDir, "out", "", "directory for events.csv")
	return cmd
}
