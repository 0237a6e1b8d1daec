package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/coralshopping/coral-backend/api/routes"
	"github.com/coralshopping/coral-backend/internal/analytics"
	"github.com/coralshopping/coral-backend/internal/catalog"
	"github.com/coralshopping/coral-backend/internal/customers"
	"github.com/coralshopping/coral-backend/internal/diagnostics"
	"github.com/coralshopping/coral-backend/internal/orders"
	"github.com/coralshopping/coral-backend/internal/recommend"
	"github.com/coralshopping/coral-backend/internal/support"
	"github.com/coralshopping/coral-backend/pkg/config"
	"github.com/coralshopping/coral-backend/pkg/docstore"
	"github.com/coralshopping/coral-backend/pkg/logger"
	pkgredis "github.com/coralshopping/coral-backend/pkg/redis"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	store, err := docstore.New(cfg.Store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap document store", err)
		os.Exit(1)
	}
	// An unreachable store is not fatal: requests fail individually with a
	// dependency error and the /test probe reports the outage.
	if err := store.Ping(context.Background()); err != nil {
		logg.Warn(logg.WithField(context.Background(), "error", err.Error()), "document store unreachable at boot")
	}

	var (
		redisClient *pkgredis.Client
		idemStore   pkgredis.IdempotencyStore
		cachePinger diagnostics.CachePinger
	)
	if cfg.Redis.Enabled() {
		redisClient, err = pkgredis.New(context.Background(), cfg.Redis, logg)
		if err != nil {
			logg.Error(context.Background(), "failed to bootstrap redis", err)
			os.Exit(1)
		}
		defer func() {
			if err := redisClient.Close(); err != nil {
				logg.Error(context.Background(), "error closing redis", err)
			}
		}()
		idemStore = redisClient
		cachePinger = redisClient
	} else {
		logg.Warn(context.Background(), "redis not configured, idempotency replay disabled")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svcs := routes.Services{
		Catalog:     catalog.NewService(store),
		Customers:   customers.NewService(store),
		Orders:      orders.NewService(store),
		Recommend:   recommend.NewService(store),
		Support:     support.NewService(store),
		Analytics:   analytics.NewService(store),
		Diagnostics: diagnostics.NewService(store, cachePinger),
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(logg, reg, idemStore, svcs),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
