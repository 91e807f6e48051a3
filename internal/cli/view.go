package cli

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"regionmap/internal/region"
	"regionmap/internal/tui"
)

func newViewCmd(opts *rootOptions) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "view",
		Short: "Explore the map in the terminal",
		Long: `Draw the map with braille characters and highlight a region while the
mouse is over any of its outlines.

The terminal is taken over while the program runs, so logs go to --log-file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := opts.loadMap(cmd.Context())
			if err != nil {
				return err
			}

			var w io.Writer = io.Discard
			if logFile != "" {
				f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
				if err != nil {
					return fmt.Errorf("open log file: %w", err)
				}
				defer f.Close()
				w = f
			}
			logger := newLogger(w, loggerFromContext(cmd.Context()).GetLevel())
			if opts.verbose {
				logger.SetLevel(charmlog.DebugLevel)
			}

			sess := tui.NewSession(logger)
			cfg := m.RendererConfig()
			cfg.OnHoverEnter = sess.OnEnter
			cfg.OnHoverLeave = sess.OnLeave
			cfg.Logger = logger

			r, err := region.New(tui.Backend{}, cfg, m.Regions)
			if err != nil {
				return fmt.Errorf("render map: %w", err)
			}
			reportDiagnostics(logger, r)

			p := tea.NewProgram(tui.New(r, sess), tea.WithAltScreen(), tea.WithMouseAllMotion(), tea.WithContext(cmd.Context()))
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("run terminal ui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "append logs to this file")
	return cmd
}
