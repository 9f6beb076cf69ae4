package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"loan-cashflow/config"
	httpLayer "loan-cashflow/http"
	"loan-cashflow/repository"
	"loan-cashflow/service"

	log "github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Get()
	config.ConfigureLogger(cfg)

	loanRepo := repository.NewLoanRepositoryMemory()
	applicationRepo := repository.NewApplicationRepositoryMemory(repository.SampleApplications()...)

	cache, closeCache := newCache(cfg)
	defer closeCache()

	loanService := service.NewLoanService(loanRepo)
	cashFlowService := service.NewCashFlowService(applicationRepo, cache, cfg.CacheTTL)

	rateLimiter := httpLayer.NewRateLimiter(cfg.RateLimitCapacity, cfg.RateLimitWindow)
	defer rateLimiter.Stop()

	router := httpLayer.NewRouter(
		httpLayer.NewLoanHandler(loanService),
		httpLayer.NewCashFlowHandler(cashFlowService),
		rateLimiter,
	)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		log.WithFields(log.Fields{
			"addr":        server.Addr,
			"environment": cfg.Environment,
		}).Info("cash flow API listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErr:
		log.WithError(err).Error("error starting server")
		return
	case <-quit:
		log.Info("shutting down server...")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.WithError(err).Error("error during server shutdown")
	}

	log.Info("server exited")
}

// newCache uses Redis when REDIS_ADDR is set and reachable, the in-memory cache otherwise.
func newCache(cfg *config.Config) (repository.CacheRepository, func()) {
	if cfg.RedisAddr == "" {
		log.Info("REDIS_ADDR not set, using in-memory cache")
		return repository.NewMemoryCache(), func() {}
	}

	redisCache := repository.NewRedisCache(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := redisCache.Ping(ctx); err != nil {
		log.WithError(err).Warn("redis unavailable, using in-memory cache")
		_ = redisCache.Close()
		return repository.NewMemoryCache(), func() {}
	}

	log.WithField("addr", cfg.RedisAddr).Info("connected to redis cache")
	return redisCache, func() {
		if err := redisCache.Close(); err != nil {
			log.WithError(err).Warn("error closing redis client")
		}
	}
}
