package main

import (
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/Mr-Dark-debug/zenith/internal/page"
	"github.com/Mr-Dark-debug/zenith/internal/structure"
	"github.com/Mr-Dark-debug/zenith/internal/tui"
	"github.com/Mr-Dark-debug/zenith/pkg/motion"
	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// prettyWrap is the glamour word-wrap width for --pretty output.
const prettyWrap = 100

// newRecordCmd prints the structure record.
func newRecordCmd(a *app) *cobra.Command {
	var (
		format string
		pretty bool
	)

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Print the structure record",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := structure.ParseFormat(format)
			if err != nil {
				return err
			}
			rec := structure.Monolith()
			a.logger.Debug("exporting record", zap.String("format", string(f)), zap.Bool("pretty", pretty))

			if pretty && f == structure.FormatMarkdown {
				r, err := glamour.NewTermRenderer(
					glamour.WithStandardStyle("dark"),
					glamour.WithWordWrap(prettyWrap),
				)
				if err != nil {
					return fmt.Errorf("markdown renderer: %w", err)
				}
				out, err := r.Render(structure.Markdown(rec))
				if err != nil {
					return fmt.Errorf("rendering markdown: %w", err)
				}
				_, err = fmt.Fprint(cmd.OutOrStdout(), out)
				return err
			}

			return structure.Encode(cmd.OutOrStdout(), rec, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json, yaml, markdown")
	cmd.Flags().BoolVar(&pretty, "pretty", false, "style markdown output for the terminal")
	return cmd
}

// newRenderCmd prints a single static frame.
func newRenderCmd(a *app) *cobra.Command {
	var (
		width   int
		elapsed time.Duration
		focus   int
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print one static frame of the dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if width < 20 {
				return fmt.Errorf("--width must be at least 20, got %d", width)
			}
			p := page.Build(structure.Monolith())
			frame := tui.Frame{Width: width, Elapsed: elapsed, Focus: focus}
			a.logger.Debug("rendering frame",
				zap.Int("width", width), zap.Duration("elapsed", elapsed), zap.Int("focus", focus))

			_, err := fmt.Fprintln(cmd.OutOrStdout(), tui.Render(p, frame))
			return err
		},
	}

	cmd.Flags().IntVarP(&width, "width", "w", 140, "frame width in cells")
	cmd.Flags().DurationVar(&elapsed, "elapsed", motion.Settled, "animation clock for the frame")
	cmd.Flags().IntVar(&focus, "focus", -1, "focused card index (-1 for none)")
	return cmd
}

// newStatusCmd probes a running zenith-web.
func newStatusCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "status",
		Short: "Check whether zenith-web is serving",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = a.cfg.Server.Addr
			}
			url := fmt.Sprintf("http://%s/healthz", dialAddr(addr))

			client := &http.Client{Timeout: 2 * time.Second}
			resp, err := client.Get(url)
			if err != nil {
				return fmt.Errorf("zenith-web is not running (tried %s): %w", url, err)
			}
			defer resp.Body.Close()

			var health struct {
				Status string `json:"status"`
			}
			if err := json.NewDecoder(resp.Body).Decode(&health); err != nil {
				return fmt.Errorf("decoding health response: %w", err)
			}
			if resp.StatusCode != http.StatusOK || health.Status != "ok" {
				return fmt.Errorf("zenith-web unhealthy: %s %q", resp.Status, health.Status)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "zenith-web is running at http://%s\n", dialAddr(addr))
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "server address (default from config)")
	return cmd
}

// dialAddr turns a listen address such as ":8080" into one a client
// can dial.
func dialAddr(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return addr
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "127.0.0.1"
	}
	return net.JoinHostPort(host, port)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "Zenith v%s (commit: %s, built: %s)\n", Version, GitCommit, BuildTime)
		},
	}
}
