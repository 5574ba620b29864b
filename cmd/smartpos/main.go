package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"smartpos/internal/app"
	"smartpos/internal/config"
	"smartpos/internal/httpapi"
	"smartpos/internal/insight"
	"smartpos/internal/storage"
)

func main() {
	cfg := config.Load()

	logger := newLogger(cfg.Env)
	defer logger.Sync()

	store, cleanup, err := newStore(cfg)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}
	defer cleanup()

	collab := insight.NewClient(cfg.InsightURL, cfg.InsightKey, cfg.InsightModel, 15*time.Second)
	insightSvc := insight.NewService(collab, logger)

	a := app.New(store, insightSvc, logger)
	if err := a.Load(context.Background()); err != nil {
		logger.Fatal("failed to load state", zap.Error(err))
	}

	feed := httpapi.NewOrderFeed(logger)
	go feed.Run()
	defer feed.Stop()
	a.OnOrder(feed.Publish)

	handlers := httpapi.New(a, feed, logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: handlers.Router(),
	}

	go func() {
		logger.Info("terminal listening", zap.String("addr", cfg.Addr), zap.String("storage", cfg.StorageKind))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func newStore(cfg *config.Config) (storage.Store, func(), error) {
	switch cfg.StorageKind {
	case "redis":
		s, err := storage.NewRedisStore(cfg.RedisURL, cfg.RedisPrefix)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		s, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return s, func() {}, nil
	}
}
