package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"model-inference-service/internal/adapters/primary/http/handlers"
	"model-inference-service/internal/adapters/primary/http/middleware"
	"model-inference-service/internal/adapters/secondary/artifactstore"
	"model-inference-service/internal/adapters/secondary/webhook"
	"model-inference-service/internal/config"
	"model-inference-service/internal/core/services"
	"model-inference-service/internal/metrics"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	initLogger(cfg)

	// Artifacts load before the server accepts any traffic; a failure here
	// is fatal by contract.
	store, err := artifactstore.Load(
		cfg.Artifacts.ModelPath,
		cfg.Artifacts.BaselinePath,
		cfg.Artifacts.ExpectationsPath,
	)
	if err != nil {
		log.Fatalf("load artifacts: %v", err)
	}

	registry := metrics.NewRegistry()

	alertClient := webhook.NewClient(cfg.Alerting.WebhookURL, cfg.Alerting.Timeout)
	if alertClient.IsConfigured() {
		policy := "best-effort"
		if cfg.Alerting.RequireWebhook {
			policy = "enforced"
		}
		log.WithField("policy", policy).Info("drift webhook configured")
	} else {
		log.Info("drift webhook not configured; alert dispatch disabled")
	}

	// Core services
	validator := services.NewValidator(store.Model())
	detector := services.NewDriftDetector(store.Baseline(), store.Rules())
	predictor := services.NewPredictor(store.Model())
	inferenceSvc := services.NewInferenceService(
		validator, detector, predictor, registry, alertClient, cfg.Alerting.RequireWebhook,
	)

	// HTTP
	h := handlers.New(inferenceSvc, store, registry)

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logging(), gin.Recovery())
	h.RegisterRoutes(router)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:    addr,
		Handler: router,
	}

	go func() {
		log.Infof("starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("server forced shutdown: %v", err)
	}

	log.Info("server stopped")
}

func initLogger(cfg *config.Config) {
	level, err := log.ParseLevel(cfg.Logger.Level)
	if err != nil {
		level = log.InfoLevel
	}
	log.SetLevel(level)

	if cfg.Logger.Format == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
}
