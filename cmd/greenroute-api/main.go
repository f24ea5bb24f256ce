// README: Entry point; loads config, wires maps + AI + facade, serves HTTP until SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"greenroute/internal/ai"
	"greenroute/internal/config"
	httptransport "greenroute/internal/http"
	"greenroute/internal/infra"
	"greenroute/internal/maps"
	"greenroute/internal/modules/greenroute"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := infra.NewLogger(cfg.Development())
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	routeSvc, err := maps.NewRouteService(cfg.Maps.APIKey, maps.Options{
		Timeout:  cfg.Maps.Timeout,
		Language: cfg.Maps.Language,
		Region:   cfg.Maps.Region,
	})
	if err != nil {
		logger.Fatal("maps init", zap.Error(err))
	}

	provider, err := ai.New(ctx, cfg.AI)
	if err != nil {
		logger.Fatal("ai init", zap.Error(err))
	}
	defer func() { _ = provider.Close() }()

	var model ai.TextModel = provider
	if cfg.Redis.Addr != "" {
		redisClient, err := infra.NewRedis(ctx, cfg.Redis.Addr)
		if err != nil {
			logger.Fatal("redis init", zap.Error(err))
		}
		defer func() { _ = redisClient.Close() }()
		model = ai.NewCachedModel(provider, redisClient, cfg.Redis.CacheTTL, logger)
	}

	evaluator := greenroute.NewEvaluator(model, cfg.Eval.Concurrency)
	facade := greenroute.NewService(routeSvc, evaluator, greenroute.PassThrough{}, logger)

	handler := httptransport.NewRouter(httptransport.RouterDeps{
		Routes:      facade,
		CORSOrigins: cfg.HTTP.CORSOrigins,
		Log:         logger,
	})
	server := &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("http shutdown", zap.Error(err))
		}
	}()

	logger.Info("listening",
		zap.String("addr", cfg.HTTP.Addr),
		zap.String("ai_provider", provider.Name()),
		zap.Int("eval_concurrency", cfg.Eval.Concurrency),
		zap.Bool("reply_cache", cfg.Redis.Addr != ""))
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal("http server", zap.Error(err))
	}
}
