package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"bookstore/internal/api"
	"bookstore/internal/api/handler/v1handler"
	"bookstore/internal/catalog"
	"bookstore/internal/config"
	"bookstore/internal/lending"
	"bookstore/internal/worker"
	"bookstore/pkg/logger"
	"bookstore/pkg/storage/postgres"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupServer(ctx context.Context, cfg *config.Config, strg *postgres.PgSQL) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Lender:  lending.New(strg, lending.NewOptions(cfg)),
			Catalog: catalog.New(strg),
		},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...")
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			stopWebserver := setupServer(ctx, cfg, strg)

			riverClient, err := worker.Start(ctx, strg.Pool, strg, cfg)
			if err != nil {
				logger.Fatal(ctx, "could not start worker", zap.Error(err))
			}

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping worker...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop worker", zap.Error(err))
			}
		},
	}

	return cmd
}
