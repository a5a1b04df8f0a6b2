package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/m04kA/BilliardBookingService/migrations"
)

func newServeCmd(configPath *string) *cobra.Command {
	var migrate bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, *configPath, migrate)
		},
	}
	cmd.Flags().BoolVar(&migrate, "migrate", false, "apply pending migrations before start")
	cmd.Flags().Lookup("migrate").NoOptDefVal = "true"

	return cmd
}

func runServe(ctx context.Context, configPath string, migrate bool) error {
	a, err := newApp(ctx, configPath, true)
	if err != nil {
		return err
	}
	defer a.Close()

	a.log.Info("Starting billiard booking service %s (commit=%s)", Version, CommitSHA)

	if migrate {
		migrator, err := migrations.NewMigrator(a.db)
		if err != nil {
			return err
		}
		if err := migrator.Up(ctx); err != nil {
			return err
		}
		a.log.Info("Migrations applied")
	}

	router := newRouter(a.buildRoutes(), routerOptions{
		metrics:     a.metrics,
		metricsPath: a.cfg.Metrics.Path,
		logger:      a.log,
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", a.cfg.Server.HTTPPort),
		Handler:      router,
		ReadTimeout:  time.Duration(a.cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(a.cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(a.cfg.Server.IdleTimeout) * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		a.log.Info("Starting HTTP server on port %d", a.cfg.Server.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	// Ждем сигнал завершения или падение сервера
	select {
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(a.cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	a.log.Info("Server stopped gracefully")
	return nil
}
