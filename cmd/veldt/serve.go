package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/veldt-dev/veldt/pkg/component"
	"github.com/veldt-dev/veldt/pkg/middleware"
	"github.com/veldt-dev/veldt/pkg/server"
)

func serveCmd() *cobra.Command {
	var (
		addr    string
		verbose bool
		trace   bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the demo component over HTTP and WebSocket",
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

			observers := []component.Observer{middleware.Prometheus()}
			if trace {
				observers = append(observers, middleware.OTel())
			}

			s := server.New(newDemo, server.Config{
				Addr:         addr,
				InitialState: demoState(),
				Observers:    observers,
				Logger:       logger,
			})
			return s.ListenAndServe()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "debug logging")
	cmd.Flags().BoolVar(&trace, "trace", false, "emit OpenTelemetry spans per render")
	return cmd
}
