package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"regionmap/internal/region"
	"regionmap/internal/server"
	"regionmap/internal/svg"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive map over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			m, err := opts.loadMap(cmd.Context())
			if err != nil {
				return err
			}

			cfg := m.RendererConfig()
			cfg.Logger = logger
			r, err := region.New(svg.Backend{}, cfg, m.Regions)
			if err != nil {
				return fmt.Errorf("render map: %w", err)
			}
			reportDiagnostics(logger, r)

			srv, err := server.New(r, m.Title, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			hs := &http.Server{Addr: addr, Handler: srv.Handler(), ReadHeaderTimeout: 10 * time.Second}
			errc := make(chan error, 1)
			go func() { errc <- hs.ListenAndServe() }()
			logger.Info("serving map", "addr", addr)

			select {
			case err := <-errc:
				if !errors.Is(err, http.ErrServerClosed) {
					return fmt.Errorf("listen: %w", err)
				}
				return nil
			case <-ctx.Done():
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer cancel()
			logger.Info("shutting down")
			return hs.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	return cmd
}
