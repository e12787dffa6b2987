package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/example/hindivocab/internal/query"
	"github.com/example/hindivocab/internal/scheduler"
	"github.com/example/hindivocab/internal/seed"
	"github.com/example/hindivocab/internal/server"
)

const shutdownTimeout = 5 * time.Second

func newServeCommand() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Seed the store and start the HTTP API",
		Long: `Creates the schema if needed, inserts the built-in vocabulary
and serves the read-only API until interrupted.`,
		RunE: serveCommand,
	}

	registerFlags(serveCmd, commonFlags, serveFlags)
	return serveCmd
}

func serveCommand(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := bootstrap(ctx, cmd)
	if err != nil {
		return err
	}
	defer a.close()

	seeder := seed.New(a.store, a.log)
	if _, err := seeder.EnsureSeeded(ctx); err != nil {
		return fmt.Errorf("failed to seed store: %w", err)
	}

	if a.cfg.ReseedInterval > 0 {
		sched := scheduler.New(scheduler.SeederFunc(func(ctx context.Context) error {
			_, err := seeder.EnsureSeeded(ctx)
			return err
		}), a.cfg.ReseedInterval, a.log)
		if err := sched.Start(ctx); err != nil {
			return err
		}
		defer sched.Stop()
	}

	if a.cfg.LogMode == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := server.NewRouter(server.RouterConfig{
		Queries:     query.NewService(a.store),
		Log:         a.log,
		CORSOrigins: a.cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:              ":" + strconv.Itoa(a.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("server started", "addr", srv.Addr, "variant", a.cfg.Variant)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	a.log.Info("server stopped")
	return nil
}
