package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/example/spothopper-reserve/internal/config"
	"github.com/example/spothopper-reserve/internal/logging"
)

var (
	Version   = "dev"
	CommitSHA = "none"
	BuildDate = "unknown"
)

// app is what every subcommand gets after the root pre-run.
type app struct {
	cfg config.Config
	log *zap.Logger
}

func NewRootCmd() *cobra.Command {
	var (
		configPath string
		verbose    bool
		a          = &app{log: zap.NewNop()}
	)

	root := &cobra.Command{
		Use:           "reserve",
		Short:         "Request a table through a restaurant's SpotHopper reservation form",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			log, err := logging.New(cfg.LogLevel, verbose)
			if err != nil {
				return err
			}
			a.cfg, a.log = cfg, log
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.log.Sync()
		},
	}

	root.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file (default $RESERVE_CONFIG)")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newRequestCmd(a))
	root.AddCommand(newVenuesCmd(a))

	return root
}

func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
