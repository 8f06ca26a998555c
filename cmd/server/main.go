package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/rocketstore/backend/internal/config"
	"github.com/rocketstore/backend/internal/db"
	"github.com/rocketstore/backend/internal/es"
	"github.com/rocketstore/backend/internal/handlers"
	"github.com/rocketstore/backend/internal/logging"
	loggingmw "github.com/rocketstore/backend/internal/middleware/logging"
	"github.com/rocketstore/backend/internal/mykafka"
	"github.com/rocketstore/backend/internal/token"
	httpserver "github.com/rocketstore/backend/internal/transport/http"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Ошибка конфигурации: %v", err)
	}

	logger := logging.New(cfg.LogLevel)

	ctx := context.Background()
	database, err := db.Open(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Ошибка инициализации БД: %v", err)
	}

	var producer *mykafka.Producer
	if len(cfg.KafkaBrokers) > 0 {
		producer, err = mykafka.NewProducer(cfg.KafkaBrokers)
		if err != nil {
			log.Fatal(err)
		}
	} else {
		logger.Warn("KAFKA_BROKERS not set, domain events disabled")
	}

	tokens := &token.Service{Secret: []byte(cfg.JWTSecret)}

	deps := httpserver.Deps{
		Tokens:       tokens,
		AuthHandler:  &handlers.AuthHandler{DB: database, Tokens: tokens, Producer: producer},
		CartHandler:  &handlers.CartHandler{DB: database, Producer: producer},
		OrderHandler: &handlers.OrderHandler{DB: database, Producer: producer},
		ProductHandler: &handlers.ProductHandler{
			DB:       database,
			Producer: producer,
			ESIndex:  cfg.ESIndex,
		},
	}

	if cfg.ESURL != "" {
		esClient, err := es.NewClient(cfg)
		if err != nil {
			log.Fatal(err)
		}
		deps.ProductHandler.ES = esClient
		deps.SearchHandler = handlers.NewSearchHandler(esClient, cfg.ESIndex)
	} else {
		logger.Warn("ES_URL not set, full-text search disabled")
	}

	e := echo.New()
	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover(), middleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, "X-Auth-Token"},
		MaxAge:       86400,
	}))
	e.Use(loggingmw.RequestLogger(logger))

	httpserver.Register(e, &deps)

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      e,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", "error", err)
	}

	if sqlDB, err := database.DB(); err == nil {
		if err := sqlDB.Close(); err != nil {
			logger.Error("db close error", "error", err)
		}
	} else {
		logger.Error("db() error", "error", err)
	}

	if producer != nil {
		if err := producer.Close(); err != nil {
			logger.Error("kafka close error", "error", err)
		}
	}

	logger.Info("shutdown complete")
}
