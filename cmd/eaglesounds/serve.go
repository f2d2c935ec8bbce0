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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"eaglesounds.in/internal/assets"
	"eaglesounds.in/internal/config"
	"eaglesounds.in/internal/handlers"
	"eaglesounds.in/internal/logging"
)

var addrFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the website server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		if addrFlag != "" {
			cfg.ServerAddr = addrFlag
		}

		log := logging.New(os.Stdout, cfg.LogLevel, cfg.LogFormat)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		store, err := newStore(ctx, cfg)
		if err != nil {
			return fmt.Errorf("creating %s store: %w", cfg.Upload.Backend, err)
		}

		srv := &http.Server{
			Addr:              cfg.ServerAddr,
			Handler:           handlers.SetupRoutes(cfg, store, log),
			ReadHeaderTimeout: 10 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			log.Info().
				Str("addr", cfg.ServerAddr).
				Str("store", store.Name()).
				Int("slides", len(cfg.Slides.Slides)).
				Msg("server starting")
			errCh <- srv.ListenAndServe()
		}()

		select {
		case err := <-errCh:
			if !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		case <-ctx.Done():
		}

		log.Info().Msg("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return shutdown(shutdownCtx, srv, log)
	},
}

func shutdown(ctx context.Context, srv *http.Server, log zerolog.Logger) error {
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		return srv.Close()
	}
	return nil
}

// newStore opens the configured upload backend
func newStore(ctx context.Context, cfg *config.Config) (assets.Store, error) {
	if cfg.Upload.Backend == "s3" {
		return assets.NewS3Store(ctx, cfg.Upload.S3)
	}
	return assets.NewLocalStore(cfg.PublicDir)
}

func init() {
	serveCmd.Flags().StringVar(&addrFlag, "addr", "", "listen address (overrides server_addr)")
	rootCmd.AddCommand(serveCmd)
}
