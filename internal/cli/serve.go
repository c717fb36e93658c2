package cli

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/khoward/bookshop/internal/catalog"
	"github.com/khoward/bookshop/internal/httpapi"
	"github.com/khoward/bookshop/internal/member"
	"github.com/khoward/bookshop/internal/ordering"
	"github.com/khoward/bookshop/internal/storage"
	"github.com/khoward/bookshop/pkg/metrics"
)

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newServeCmd() *cobra.Command {
	var (
		addr   string
		dbPath string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the bookshop HTTP API",
		Long:  "Start the JSON API for members, the catalog, and orders. Shuts down gracefully on SIGINT/SIGTERM.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = getenv("BOOKSHOP_ADDR", ":8080")
			}
			if dbPath == "" {
				dbPath = getenv("BOOKSHOP_DB_PATH", "bookshop.db")
			}

			logger, err := zap.NewProduction()
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			store, err := storage.NewSQLiteStorage(dbPath)
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			m := metrics.NewServerMetrics(nil)
			srv := httpapi.NewServer(
				member.NewService(store, logger),
				catalog.NewService(store, logger),
				ordering.NewService(store, logger),
				logger, m,
			)

			httpServer := &http.Server{
				Addr:              addr,
				Handler:           srv,
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			g, ctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info("bookshop API listening",
					zap.String("addr", addr),
					zap.String("dbPath", dbPath),
					zap.String("buildMode", storage.BuildMode))
				if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			g.Go(func() error {
				<-ctx.Done()
				logger.Info("shutting down")
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				return httpServer.Shutdown(shutdownCtx)
			})

			return g.Wait()
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (defaults to BOOKSHOP_ADDR or :8080)")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (defaults to BOOKSHOP_DB_PATH or bookshop.db)")

	return cmd
}
