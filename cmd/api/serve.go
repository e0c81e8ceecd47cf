package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"dental-lab/internal/app"
	"dental-lab/internal/config"
	"dental-lab/internal/platform/logger"
	"dental-lab/internal/router"

	"github.com/spf13/cobra"
)

func serveCmd(envFile *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadFile(*envFile)
			if err != nil {
				return err
			}
			return runServer(cmd.Context(), cfg)
		},
	}
}

// newLogger: out nil es stdout.
func newLogger(cfg *config.Config, out io.Writer) logger.Logger {
	return logger.New(logger.Options{
		Level:  logger.ParseLevel(cfg.LogLevel),
		Format: logger.ParseFormat(cfg.LogFormat),
		App:    cfg.AppName,
		Out:    out,
	})
}

// closeApp cierra a y deja el error en el log: ya no hay a quién devolverlo.
func closeApp(a io.Closer, log logger.Logger) {
	if err := a.Close(); err != nil {
		log.Error("close failed", map[string]any{"error": err})
	}
}

func runServer(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log := newLogger(cfg, nil)

	a, err := app.New(app.Options{Config: cfg, Logger: log})
	if err != nil {
		return err
	}
	defer closeApp(a, log)

	// Los stores arrancan vacíos y se llenan cuando termina el fetch
	a.Start(ctx)

	srv := &http.Server{
		Addr: cfg.Addr(),
		Handler: router.NewRouter(router.Options{
			Doctors:   a.Doctors,
			Practices: a.Practices,
			Patients:  a.Patients,
			Metrics:   a.Metrics,
			Logger:    log,
		}),
		ReadTimeout: 5 * time.Second,
		// sin WriteTimeout: los streams SSE son de larga duración
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]any{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("shutting down", nil)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
