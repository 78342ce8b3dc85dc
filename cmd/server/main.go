package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"orientalgroup/internal/analytics"
	"orientalgroup/internal/auth"
	"orientalgroup/internal/blog"
	"orientalgroup/internal/config"
	"orientalgroup/internal/contact"
	"orientalgroup/internal/content"
	"orientalgroup/internal/infrastructure/logger"
	"orientalgroup/internal/infrastructure/mailer"
	"orientalgroup/internal/infrastructure/mysql"
	redisinfra "orientalgroup/internal/infrastructure/redis"
	"orientalgroup/internal/order"
	"orientalgroup/internal/product"
	"orientalgroup/internal/server"
	"orientalgroup/internal/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	store := mysql.NewStore(db)

	redisClient, err := redisinfra.NewClient(context.Background(), cfg.Redis)
	if err != nil {
		// Catalog reads fall back to MySQL on every request.
		zapLogger.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		zapLogger.Info("redis connected")
	}

	mail := mailer.NewSMTPMailer(cfg.SMTP)
	tokens := auth.NewTokenManager(cfg.Auth)
	userModule := user.NewModule(db, tokens, zapLogger)

	controllers := server.Controllers{
		Orders:    order.NewModule(db, store, zapLogger),
		Contacts:  contact.NewModule(db, mail, zapLogger),
		Products:  product.NewModule(db, redisClient, cfg.Redis.CacheTTL, zapLogger),
		Blog:      blog.NewModule(db, zapLogger),
		Content:   content.NewModule(db, zapLogger),
		Auth:      userModule.Auth,
		Users:     userModule.Users,
		Analytics: analytics.NewModule(db, zapLogger),
	}

	router := server.NewRouter(controllers, auth.NewMiddleware(tokens), zapLogger)

	srv := server.New(cfg.Server.Port, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
