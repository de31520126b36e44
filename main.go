package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"

	"campus-backend/config"
	"campus-backend/handler"
	"campus-backend/log"
	"campus-backend/store"
)

func main() {
	cfg := config.Load()
	log.EnsureLogger(cfg.Env)

	if cfg.Env == "production" || cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	// The store stays disconnected when no database is configured or
	// reachable; data endpoints answer 503 instead of the process dying.
	var client *mongo.Client
	if cfg.DatabaseURL == "" {
		log.Logger.Warn("DATABASE_URL not set, starting without a database")
	} else {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		c, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.DatabaseURL))
		cancel()
		if err != nil {
			log.Logger.Warn("failed connecting to database", zap.Error(err))
		} else {
			client = c
		}
	}

	st := store.New(client, cfg.DatabaseName)

	srv := &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", cfg.HTTPPort),
		Handler:      handler.NewRouter(st),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Logger.Info(fmt.Sprintf("Listening on port: %s", cfg.HTTPPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Logger.Fatal("couldn't serve http", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Logger.Error("forced shutdown", zap.Error(err))
	}

	if client != nil {
		_ = client.Disconnect(context.Background())
	}
}
