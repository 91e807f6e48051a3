package cli

import (
	"bytes"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"regionmap/internal/region"
	"regionmap/internal/svg"
)

func newExportCmd(opts *rootOptions) *cobra.Command {
	var (
		output string
		asHTML bool
		title  string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the map as SVG or as an interactive HTML page",
		Long: `Write the map as an SVG image, or with --html as a page whose embedded
script highlights every outline of a region while the pointer is over it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			m, err := opts.loadMap(cmd.Context())
			if err != nil {
				return err
			}
			if title == "" {
				title = m.Title
			}

			cfg := m.RendererConfig()
			cfg.OnHoverEnter, cfg.OnHoverLeave = hoverLogger(logger)
			cfg.Logger = logger
			r, err := region.New(svg.Backend{}, cfg, m.Regions)
			if err != nil {
				return fmt.Errorf("render map: %w", err)
			}
			reportDiagnostics(logger, r)

			var buf bytes.Buffer
			if asHTML {
				err = svg.WriteHTML(&buf, r, title)
			} else {
				err = svg.WriteSVG(&buf, r)
			}
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}

			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			logger.Info("exported", "file", output, "regions", len(r.Regions()), "shapes", len(r.Shapes()))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout when empty)")
	cmd.Flags().BoolVar(&asHTML, "html", false, "write an HTML page with hover script")
	cmd.Flags().StringVar(&title, "title", "", "page title (map title when empty)")
	return cmd
}
