// Zenith CLI: export the structure record and render static frames of
// the dashboard.
//
// Usage:
//
//	zenith <command> [flags]
//
// Commands:
//
//	record    Print the structure record (json, yaml, markdown)
//	render    Print one static frame of the dashboard
//	status    Check whether zenith-web is serving
//	version   Print version information
package main

import (
	"fmt"
	"os"

	"github.com/Mr-Dark-debug/zenith/internal/config"
	"github.com/Mr-Dark-debug/zenith/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	Version   = "3.0.1"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// app carries state shared by every subcommand.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "zenith",
		Short:         "Zenith-Nexus structure dashboard",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			logger, err := logging.New(cfg.Log, a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/.zenith/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(
		newRecordCmd(a),
		newRenderCmd(a),
		newStatusCmd(a),
		newVersionCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
