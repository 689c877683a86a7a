package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"sale-relay/internal/client"
	"sale-relay/internal/config"
	"sale-relay/internal/logger"
	"sale-relay/internal/server"
	"sale-relay/internal/service"
)

func main() {
	// load .env into os.Environ
	if err := godotenv.Load(); err != nil {
		fmt.Println("No .env file found (ok in prod)")
	}

	cfg, err := config.Parse()
	if err != nil {
		fmt.Printf("Failed to parse config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Printf("Failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = log.Sync() }()

	paypalClient, err := client.NewPaypalClient(&cfg.Paypal, cfg.UpstreamTimeout, log)
	if err != nil {
		log.Fatal("init paypal client", zap.Error(err))
	}
	contentClient := client.NewContentClient(&cfg.Content, cfg.UpstreamTimeout)
	revalidator := client.NewRevalidator(&cfg.Frontend, cfg.UpstreamTimeout)

	revalidateService := service.NewRevalidateService(revalidator, log)
	saleService := service.NewSaleService(
		paypalClient,
		contentClient,
		revalidator,
		cfg.Paypal.RequireCompleted,
		cfg.SellConcurrency,
		log,
	)

	serverAddr := cfg.Addr()

	// Init HTTP server
	srv := server.NewServer(&cfg.HTTP, revalidateService, saleService, log)

	log.Info("starting HTTP server",
		zap.String("addr", serverAddr),
		zap.String("environment", cfg.Environment.Name),
	)
	go func() {
		if err := srv.Start(serverAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("HTTP server error", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	<-sigChan
	log.Info("signal received, starting graceful shutdown")

	// in-flight /sell requests finish their fan-out before the server stops
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", zap.Error(err))
	}
}
