package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apiserver "github.com/Siddhardha2330/backendrepo/internal/api/server"
	"github.com/Siddhardha2330/backendrepo/internal/config"
	database "github.com/Siddhardha2330/backendrepo/internal/db"
	"github.com/Siddhardha2330/backendrepo/internal/logging"
	"github.com/Siddhardha2330/backendrepo/internal/metrics"
)

func main() {
	// .env is optional; real deployments set env vars directly.
	_ = godotenv.Load()

	// 1. Setup Configuration
	cfg := config.Load()
	log := logging.New("quiz-api", cfg.Server.LogLevel)

	// 2. Initialize Infrastructure
	db, err := database.New(cfg)
	if err != nil {
		log.WithError(err).Fatal("failed to connect to database")
	}

	// 3. Run Database Migrations
	if err := db.AutoMigrate(); err != nil {
		log.WithError(err).Fatal("migration failed")
	}
	if err := database.SeedAdminUser(db.DB, cfg, log); err != nil {
		log.WithError(err).Fatal("admin seed failed")
	}

	// 4. Setup Metrics
	m := metrics.New("api")
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		log.WithField("addr", cfg.Server.MetricsAddr).Info("metrics listener started")
		if err := http.ListenAndServe(cfg.Server.MetricsAddr, mux); err != nil {
			log.WithError(err).Warn("metrics server error")
		}
	}()

	// 5. Start Server
	srv := apiserver.New(cfg, db, log, m)
	httpSrv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: srv.Handler(),
	}

	go func() {
		log.WithField("addr", cfg.Server.Addr).Info("API server started")
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("server failed")
		}
	}()

	// 6. Graceful shutdown: stop accepting requests, then release the pool.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("forced shutdown")
	}
	if err := db.Close(); err != nil {
		log.WithError(err).Error("closing database pool")
	}
}
