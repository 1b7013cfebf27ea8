package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"deepindian-led-backend/config"
	_ "deepindian-led-backend/docs" // Important for Swagger
	v1 "deepindian-led-backend/internal/delivery/http/v1"
	"deepindian-led-backend/internal/usecase"
	"deepindian-led-backend/pkg/logger"
	"deepindian-led-backend/pkg/notify"
	"deepindian-led-backend/pkg/redis"
	"deepindian-led-backend/pkg/validation"
)

// @title           Deep Indian LED Enquiry API
// @version         1.0
// @description     Contact and product enquiry intake for the Deep Indian LED website.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting enquiry backend", "port", cfg.Port)

	// 3. Setup Redis (rate limiting backing store; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{
		URL:      cfg.UpstashRedisURL,
		Password: cfg.UpstashRedisPassword,
	}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting uses in-memory fallback", "error", err)
	}
	defer redis.Close()

	// 4. Setup Notifiers
	// SMS rides behind email: delivered only after the email relay accepts,
	// and its failure never surfaces to the customer
	var sms notify.Notifier
	switch cfg.SMSProvider {
	case "web3forms":
		sms = notify.NewWeb3FormsSMS(notify.Web3FormsSMSConfig{
			Endpoint:  cfg.Web3FormsEndpoint,
			AccessKey: cfg.Web3FormsAccessKey,
			To:        cfg.BusinessPhone,
			FromName:  cfg.EmailFromName,
		})
	default:
		sms = notify.NewTextbelt(notify.TextbeltConfig{
			Endpoint: cfg.TextbeltEndpoint,
			APIKey:   cfg.TextbeltAPIKey,
			To:       cfg.BusinessPhone,
		})
	}

	email := notify.NewWeb3Forms(notify.Web3FormsConfig{
		Endpoint:  cfg.Web3FormsEndpoint,
		AccessKey: cfg.Web3FormsAccessKey,
		To:        cfg.ContactEmailTo,
		FromName:  cfg.EmailFromName,
	}, sms)

	// 5. Setup UseCases
	validate := validation.New()
	enquiryUC := usecase.NewEnquiryUsecase(email, validate, cfg.EnquiryEmail)

	// 6. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		EnquiryUC: enquiryUC,
		Config:    cfg,
	})

	// 7. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
