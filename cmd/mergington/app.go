package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	"github.com/mergington/activities/internal/activities"
	"github.com/mergington/activities/internal/api"
	"github.com/mergington/activities/internal/config"
)

// loadSettings reads the environment and applies command-line overrides.
func loadSettings(f flags) (*config.Settings, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if f.port != 0 {
		cfg.APIPort = f.port
	}
	if f.seedFile != "" {
		cfg.SeedFile = f.seedFile
	}
	if f.logLevel != "" {
		cfg.LogLevel = f.logLevel
	}
	return cfg, nil
}

// loadSeed returns the configured dataset, falling back to the built-in one.
func loadSeed(cfg *config.Settings) (*activities.Seed, error) {
	if cfg.SeedFile == "" {
		return activities.DefaultSeed()
	}
	return activities.LoadSeed(cfg.SeedFile)
}

// serve runs the HTTP server until ctx is cancelled or a termination
// signal arrives, then drains in-flight requests.
func serve(ctx context.Context, f flags) error {
	cfg, err := loadSettings(f)
	if err != nil {
		return err
	}

	setupLogging(cfg.LogLevel, cfg.LogFormat)

	log.Info().
		Str("version", cfg.Version).
		Str("listen", cfg.ListenAddr()).
		Msg("Starting Mergington activities server")

	seed, err := loadSeed(cfg)
	if err != nil {
		return fmt.Errorf("failed to load activities: %w", err)
	}
	registry := activities.NewRegistry(seed)

	source := cfg.SeedFile
	if source == "" {
		source = "built-in"
	}
	log.Info().Int("activities", registry.Len()).Str("seed", source).Msg("Activity registry loaded")

	srv := newHTTPServer(cfg, api.NewRouter(cfg, registry))

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	return runServer(ctx, srv, cfg.ShutdownTimeout, func(ctx context.Context) error {
		watchReset(ctx, hup, registry)
		return nil
	})
}

// writeTimeoutMargin is added to the request timeout so the timeout
// middleware's 504 is written before the server drops the connection.
const writeTimeoutMargin = 5 * time.Second

// newHTTPServer builds the server for cfg.
func newHTTPServer(cfg *config.Settings, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         cfg.ListenAddr(),
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.RequestTimeout + writeTimeoutMargin,
		IdleTimeout:  60 * time.Second,
	}
}

// watchReset restores the registry to its seed each time a value arrives
// on reset, until ctx is done.
func watchReset(ctx context.Context, reset <-chan os.Signal, registry *activities.Registry) {
	for {
		select {
		case <-ctx.Done():
			return
		case sig := <-reset:
			registry.Reset()
			log.Info().
				Str("signal", sig.String()).
				Int("activities", registry.Len()).
				Msg("Activity registry reset to seed")
		}
	}
}

// runServer serves srv until ctx is done, then shuts it down within timeout.
// Each background func runs alongside the server and must return once its
// context is done.
func runServer(ctx context.Context, srv *http.Server, timeout time.Duration, background ...func(context.Context) error) error {
	g, gCtx := errgroup.WithContext(ctx)

	for _, fn := range background {
		fn := fn
		g.Go(func() error {
			return fn(gCtx)
		})
	}

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info().Msg("Shutting down server...")

		// Give outstanding requests time to complete
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("Server forced to shutdown")
			return err
		}
		return nil
	})

	err := g.Wait()
	log.Info().Msg("Server stopped")
	return err
}

// printSeed writes the configured dataset as indented JSON.
func printSeed(w io.Writer, f flags) error {
	cfg, err := loadSettings(f)
	if err != nil {
		return err
	}
	seed, err := loadSeed(cfg)
	if err != nil {
		return err
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(seed.Activities())
}

// setupLogging configures zerolog based on log level and format.
func setupLogging(level, format string) {
	if format == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	switch level {
	case "debug":
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	case "warn":
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	case "error":
		zerolog.SetGlobalLevel(zerolog.ErrorLevel)
	default:
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}
}
