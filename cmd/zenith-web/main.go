// Zenith Web: serves the Zenith-Nexus dashboard as an HTML page.
//
// Usage:
//
//	zenith-web [flags]
//
// Flags:
//
//	--config    Config file (default: ~/.zenith/config.yaml)
//	--addr      Listen address (default from config, 127.0.0.1:8080)
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/Mr-Dark-debug/zenith/internal/config"
	"github.com/Mr-Dark-debug/zenith/internal/logging"
	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/internal/structure"
	"github.com/Mr-Dark-debug/zenith/internal/web"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		addr       string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "zenith-web",
		Short:         "Serve the Zenith-Nexus dashboard over HTTP",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			logger, err := logging.New(cfg.Log, verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			if !cfg.Log.Development {
				gin.SetMode(gin.ReleaseMode)
			}

			srv, err := web.NewServer(cfg.Server, logger, page.Build(structure.Monolith()))
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.zenith/config.yaml)")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	return cmd
}

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
