package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"openapi-stub-server/internal/config"
	"openapi-stub-server/internal/logging"
	"openapi-stub-server/internal/server"
	"openapi-stub-server/internal/spec"
	"openapi-stub-server/internal/stub"
	"openapi-stub-server/internal/version"
)

var (
	configPath string
	specPath   string
	host       string
	port       int
	debug      bool
)

// NewRootCmd creates the root command for the stub server
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   version.AppName,
		Short: version.Description,
		Long: fmt.Sprintf(`%s - %s

Loads an OpenAPI specification and serves a stub endpoint for every
declared operation, answering with declared examples or a generic JSON
body. Useful for integration tests and frontend development against an
unfinished backend.
`, version.AppName, version.Description),
		SilenceUsage: true,
		RunE:         runServer,
	}

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to YAML configuration file")
	rootCmd.Flags().StringVarP(&specPath, "spec", "s", "api-spec.yaml", "Path to the OpenAPI specification file")
	rootCmd.Flags().StringVar(&host, "host", "127.0.0.1", "Host to bind to")
	rootCmd.Flags().IntVarP(&port, "port", "p", 8080, "Port to listen on")
	rootCmd.Flags().BoolVarP(&debug, "debug", "d", false, "Enable debug logging")

	return rootCmd
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	// Flags given on the command line win over the config file.
	if cmd.Flags().Changed("spec") || cfg.Spec.Path == "" {
		cfg.Spec.Path = specPath
	}
	if cmd.Flags().Changed("host") {
		cfg.Server.Host = host
	}
	if cmd.Flags().Changed("port") {
		cfg.Server.Port = port
	}

	logging.Setup(debug, cfg.Logging)

	// A spec that cannot be loaded is fatal: the server must never
	// start with a partial endpoint table.
	doc, err := spec.LoadFromFile(cfg.Spec.Path)
	if err != nil {
		return fmt.Errorf("error building endpoints: %w", err)
	}

	table := stub.BuildEndpoints(doc)
	log.Info().Int("endpoints", len(table)).Msg("Loaded endpoints from OpenAPI spec")

	srv := server.New(cfg.Server, table, doc)
	httpServer := &http.Server{
		Addr:    srv.Addr(),
		Handler: srv.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", httpServer.Addr).Msg("Starting server")
		errCh <- httpServer.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-quit:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(ctx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
	}

	return nil
}

func main() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
