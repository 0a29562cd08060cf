package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"weaver/internal/api"
	"weaver/internal/api/handler/v1handler"
	"weaver/internal/config"
	"weaver/internal/weaver"
	"weaver/internal/worker"
	"weaver/pkg/logger"
	"weaver/pkg/metrics"
)

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			dict, err := loadDictionary(ctx, cfg, strg)
			if err != nil {
				logger.Fatal(ctx, "could not load dictionary", zap.Error(err))
			}

			meterProvider, err := metrics.NewPrometheusProvider(prometheus.DefaultRegisterer)
			if err != nil {
				logger.Fatal(ctx, "could not create meter provider", zap.Error(err))
			}
			solverMetrics, err := metrics.NewSolver(meterProvider)
			if err != nil {
				logger.Fatal(ctx, "could not create solver metrics", zap.Error(err))
			}

			pathCache, closeCache := newPathCache(ctx, cfg)
			defer closeCache()
			if stats, ok := pathCache.(metrics.CacheStats); ok {
				if err := metrics.RegisterCacheStats(meterProvider, stats); err != nil {
					logger.Fatal(ctx, "could not register cache metrics", zap.Error(err))
				}
			}

			w := weaver.New(weaver.Deps{
				Dictionary: dict,
				Storage:    strg,
				Cache:      pathCache,
				Metrics:    solverMetrics,
			}, weaver.NewOptions(cfg))

			riverClient, err := worker.Start(logger.Named(ctx, "worker"), strg.Pool, w, worker.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			server, err := api.NewServer(logger.Named(ctx, "api"), api.Deps{
				Deps: v1handler.Deps{
					Weaver:    w,
					Sentiment: newSentimentClient(cfg),
				},
				MeterProvider: meterProvider,
				RiverClient:   riverClient,
			}, api.NewOptions(cfg))
			if err != nil {
				logger.Fatal(ctx, "could not create webserver", zap.Error(err))
			}

			g, gctx := errgroup.WithContext(ctx)
			g.Go(func() error {
				logger.Info(ctx, "starting webserver...", zap.String("addr", server.Addr))
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}

				return nil
			})
			g.Go(func() error {
				// wait for interrupt or a failed listener
				<-gctx.Done()

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
				defer cancel()

				logger.Info(ctx, "stopping webserver...")
				if err := server.Shutdown(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop webserver", zap.Error(err))
				}

				logger.Info(ctx, "stopping workers...")
				if err := riverClient.Stop(shutdownCtx); err != nil {
					logger.Error(ctx, "could not stop workers", zap.Error(err))
				}

				if err := meterProvider.Shutdown(shutdownCtx); err != nil {
					logger.Warn(ctx, "could not shut down meter provider", zap.Error(err))
				}

				return nil
			})

			if err := g.Wait(); err != nil {
				logger.Error(ctx, "webserver failed", zap.Error(err))
			}
		},
	}

	return cmd
}
