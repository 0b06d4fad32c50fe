package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/cardoctor/cardoctor-go/internal/config"
	"github.com/cardoctor/cardoctor-go/internal/handler"
	"github.com/cardoctor/cardoctor-go/internal/repository"
	"github.com/cardoctor/cardoctor-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	db, err := repository.NewDB(ctx, cfg.DatabaseDSN)
	cancel()
	if err != nil {
		slog.Error("database setup failed", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db)
	carRepo := repository.NewCarRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	router := handler.NewRouter(handler.RouterConfig{
		JWTSecret:     cfg.JWTSecret,
		Auth:          service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry, cfg.BcryptCost),
		Users:         service.NewUserService(userRepo, cfg.BcryptCost),
		Cars:          service.NewCarService(carRepo),
		Maintenance:   service.NewMaintenanceService(maintenanceRepo, carRepo),
		AuthRateLimit: true,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
