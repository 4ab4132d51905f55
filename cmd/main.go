package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"cartlink/config"
	"cartlink/controllers"
	"cartlink/database"
	"cartlink/middleware"
	"cartlink/payment"
	"cartlink/routes"
	"cartlink/services"
)

func main() {

	config.LoadEnv()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	var logger *zap.Logger
	if cfg.LogLevel == "debug" {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	if err := database.ConnectMongo(cfg.MongoURI, cfg.DBName); err != nil {
		logger.Fatal("MongoDB connection failed", zap.Error(err))
	}
	database.InitCollections()

	seedCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := database.SeedCategories(seedCtx); err != nil {
		logger.Warn("Category seed failed", zap.Error(err))
	}
	if err := database.SeedSettings(seedCtx); err != nil {
		logger.Warn("Settings seed failed", zap.Error(err))
	}
	cancel()

	services.SetJournalPath(cfg.OrderJournalPath)
	controllers.InitPayment(payment.NewClient(
		cfg.MidtransServerKey,
		cfg.MidtransProduction,
		cfg.CheckoutFinishURL,
		logger,
	))

	r := gin.Default()
	r.SetTrustedProxies(nil)
	r.Use(middleware.RequestID())
	routes.RegisterRoutes(r)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("Server starting",
			zap.String("port", cfg.Port),
			zap.Bool("midtrans_production", cfg.MidtransProduction))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Forced shutdown", zap.Error(err))
	}
	if err := database.Client.Disconnect(ctx); err != nil {
		logger.Error("MongoDB disconnect failed", zap.Error(err))
	}
}
