// Package cli implements the regionmap command-line interface.
//
// Commands:
//   - view: hover the map in the terminal
//   - export: write the map as SVG or as an HTML page
//   - serve: serve the HTML page over HTTP
//   - regions: list the regions of a map file
//
// Every command reads a TOML map file (--config) or the built-in sample map,
// then applies .env and REGIONMAP_* overrides.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"regionmap/internal/config"
	"regionmap/internal/region"
)

var version = "dev"

// SetVersion sets the version shown by --version.
func SetVersion(v string) { version = v }

type rootOptions struct {
	verbose bool
	config  string
	envFile string
}

// Execute runs the regionmap CLI.
func Execute() error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(context.Background())
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:          "regionmap",
		Short:        "Interactive map of regions that highlight on hover",
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if opts.verbose {
				level = charmlog.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVarP(&opts.config, "config", "c", "", "map file (TOML); the sample map when empty")
	root.PersistentFlags().StringVar(&opts.envFile, "env", ".env", "env file with REGIONMAP_* overrides")

	root.AddCommand(newViewCmd(opts))
	root.AddCommand(newExportCmd(opts))
	root.AddCommand(newServeCmd(opts))
	root.AddCommand(newRegionsCmd(opts))
	return root
}

// loadMap reads the configured map file, applies env overrides and validates.
func (o *rootOptions) loadMap(ctx context.Context) (*config.Map, error) {
	logger := loggerFromContext(ctx)

	var m *config.Map
	if o.config == "" {
		m = config.Sample()
		logger.Debug("using sample map")
	} else {
		var err error
		if m, err = config.Load(o.config); err != nil {
			return nil, fmt.Errorf("load map: %w", err)
		}
	}
	if err := m.ApplyEnv(o.envFile); err != nil {
		return nil, fmt.Errorf("apply env: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("invalid map: %w", err)
	}
	logger.Debug("map loaded", "title", m.Title, "regions", len(m.Regions), "mount", m.Mount)
	return m, nil
}

// hoverLogger returns callbacks that log hover transitions at debug level.
func hoverLogger(l *charmlog.Logger) (enter, leave region.HoverFunc) {
	enter = func(s *region.Shape, ev *region.PointerEvent) {
		l.Debug("hover enter", "region", s.Region().ID, "kind", s.Kind(), "index", s.Index())
	}
	leave = func(s *region.Shape, ev *region.PointerEvent) {
		l.Debug("hover leave", "region", s.Region().ID, "kind", s.Kind(), "index", s.Index())
	}
	return enter, leave
}

func reportDiagnostics(l *charmlog.Logger, r *region.Renderer) {
	if n := len(r.Diagnostics()); n > 0 {
		l.Warnf("%d outlines could not be drawn", n)
	}
}
