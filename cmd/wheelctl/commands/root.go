package commands

import (
	"log/slog"
	"os"

	"github.com/gogpu/gg"
	"github.com/spf13/cobra"

	"github.com/pthm-cable/wheeltab/config"
)

var (
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *slog.Logger
)

func Execute() error {
	return newRoot().Execute()
}

func newRoot() *cobra.Command {
	root := &cobra.Command{
		Use:           "wheelctl",
		Short:         "Inspect, replay and render wheel tab bars",
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelWarn
			if verbose {
				level = slog.LevelDebug
			}
			logger = slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
			slog.SetDefault(logger)
			gg.SetLogger(logger.With("component", "gg"))

			c, err := config.Load(configPath)
			if err != nil {
				return err
			}
			cfg = c
			return nil
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default: embedded defaults)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging to stderr")

	root.AddCommand(layoutCmd(), replayCmd(), snapshotCmd())
	return root
}
