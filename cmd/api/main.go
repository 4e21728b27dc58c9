package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Dan9191/credit-simulator/internal/config"
	"github.com/Dan9191/credit-simulator/internal/handler"
	"github.com/Dan9191/credit-simulator/internal/integrations/bcb"
	"github.com/Dan9191/credit-simulator/internal/repository"
	"github.com/Dan9191/credit-simulator/internal/scheduler"
	"github.com/Dan9191/credit-simulator/internal/service"
	"github.com/Dan9191/credit-simulator/internal/utils/email"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logLevel, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logLevel = logrus.InfoLevel
	}
	logger.SetLevel(logLevel)

	// Rate categories: database when configured, built-in table otherwise
	var rates repository.RateRepository
	if cfg.DBConn != "" {
		db, err := sql.Open("postgres", cfg.DBConn)
		if err != nil {
			logger.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()
		if err := db.Ping(); err != nil {
			logger.Fatalf("Failed to ping database: %v", err)
		}
		rates = repository.NewRepository(db)
	} else {
		logger.Info("DB_CONN not set, using built-in rate categories")
		rates = repository.NewRateRepositoryMemory(repository.DefaultCategories)
	}

	// Reference rate cache
	var cache repository.CacheRepository
	if cfg.RedisAddr != "" {
		redisCache := repository.NewRedisCache(cfg.RedisAddr)
		defer redisCache.Close()
		cache = redisCache
	} else {
		cache = repository.NewMemoryCache()
	}

	// Initialize layers
	bcbClient := bcb.NewBCBClient(cfg, logger)
	var mailer service.Mailer
	if cfg.MailEnabled() {
		mailer = email.NewSender(cfg, logger)
	} else {
		logger.Info("SMTP_HOST not set, summary e-mails disabled")
	}
	svc := service.NewService(rates, cache, bcbClient, mailer, logger, cfg)
	h := handler.NewHandler(svc, logger)

	refresher, err := scheduler.NewRateRefresher(cfg.RateRefreshSpec, svc, logger)
	if err != nil {
		logger.Fatalf("Failed to schedule rate refresh: %v", err)
	}
	refresher.Start()
	defer refresher.Stop()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      handler.NewRouter(h, cfg),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("Server failed: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Errorf("Server shutdown failed: %v", err)
	}
}
