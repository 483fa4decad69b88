package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/banshee-data/strategy.canvas/internal/api"
	"github.com/banshee-data/strategy.canvas/internal/db"
	"github.com/banshee-data/strategy.canvas/internal/session"
)

const shutdownTimeout = 5 * time.Second

func (a *app) serveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the interactive chart over HTTP.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
	cmd.Flags().String("listen", "", "listen address (default :8080)")
	cmd.Flags().Bool("dev", false, "mount the /debug/ admin routes")
	return cmd
}

// serve blocks until ctx is cancelled or the listener fails.
func (a *app) serve(ctx context.Context) error {
	database, err := db.NewDB(a.cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	sess, err := session.New(ctx, session.Config{
		Viewport: a.cfg.Viewport,
		Theme:    a.cfg.ChartTheme(),
		ShowGrid: a.cfg.ShowGrid,
	}, db.NewLanguageStore(database))
	if err != nil {
		return err
	}

	mux := api.NewServer(sess).ServeMux()
	if a.cfg.Dev {
		if err := database.AttachAdminRoutes(mux); err != nil {
			return err
		}
		log.Printf("admin routes mounted under /debug/")
	}

	server := &http.Server{
		Addr:              a.cfg.Listen,
		Handler:           api.LoggingMiddleware(mux),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("listening on %s", a.cfg.Listen)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
		if err := server.Close(); err != nil {
			log.Printf("HTTP server force close error: %v", err)
		}
	}
	log.Printf("HTTP server stopped")
	return nil
}
