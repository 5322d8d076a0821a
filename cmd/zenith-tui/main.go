// Zenith TUI: the interactive Zenith-Nexus dashboard.
//
// Usage:
//
//	zenith-tui [flags]
//
// Flags:
//
//	--config    Config file (default: ~/.zenith/config.yaml)
//	--fps       Animation frame rate (default from config, 12)
//	--no-anim   Render the settled frame without animating
package main

import (
	"fmt"
	"os"

	"github.com/Mr-Dark-debug/zenith/internal/config"
	"github.com/Mr-Dark-debug/zenith/internal/logging"
	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/internal/structure"
	"github.com/Mr-Dark-debug/zenith/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	var (
		configPath string
		fps        int
		noAnim     bool
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:           "zenith-tui",
		Short:         "Interactive Zenith-Nexus dashboard",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("fps") {
				cfg.TUI.FPS = fps
				if err := cfg.Validate(); err != nil {
					return err
				}
			}
			if noAnim {
				cfg.TUI.Animate = false
			}

			// The dashboard owns the terminal, so logs only go to a file.
			logger, err := logging.ForTUI(cfg.Log, verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			opts := tui.Options{FPS: cfg.TUI.FPS, Animate: cfg.TUI.Animate}
			model := tui.NewModel(page.Build(structure.Monolith()), opts, logger)

			var progOpts []tea.ProgramOption
			if cfg.TUI.AltScreen {
				progOpts = append(progOpts, tea.WithAltScreen())
			}
			if cfg.TUI.Mouse {
				progOpts = append(progOpts, tea.WithMouseCellMotion())
			}

			logger.Info("dashboard starting",
				zap.Int("fps", opts.FPS), zap.Bool("animate", opts.Animate))

			if _, err := tea.NewProgram(model, progOpts...).Run(); err != nil {
				return fmt.Errorf("running TUI: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "config file (default ~/.zenith/config.yaml)")
	cmd.Flags().IntVar(&fps, "fps", 0, "animation frame rate")
	cmd.Flags().BoolVar(&noAnim, "no-anim", false, "show the settled frame without animating")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging (needs log.file)")
	return cmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
