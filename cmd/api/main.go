// Package main is the entry point for the Debt Manager API server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"

	"github.com/debt-manager/backend/config"
	"github.com/debt-manager/backend/internal/application/usecase/auth"
	"github.com/debt-manager/backend/internal/application/usecase/debt"
	"github.com/debt-manager/backend/internal/application/usecase/user"
	"github.com/debt-manager/backend/internal/infra/db"
	"github.com/debt-manager/backend/internal/infra/server/router"
	"github.com/debt-manager/backend/internal/integration/adapters"
	"github.com/debt-manager/backend/internal/integration/entrypoint/controller"
	"github.com/debt-manager/backend/internal/integration/entrypoint/middleware"
	"github.com/debt-manager/backend/internal/integration/persistence"
	"github.com/debt-manager/backend/internal/integration/persistence/model"
)

func main() {
	// Load .env file if it exists (development only)
	_ = godotenv.Load()

	// Initialize structured logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load configuration
	cfg := config.Load()

	slog.Info("Starting Debt Manager API",
		"environment", cfg.Server.Environment,
		"host", cfg.Server.Host,
		"port", cfg.Server.Port,
	)

	// Initialize database connection
	database, err := db.NewPostgresConnection(&cfg.Database)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := database.Close(); err != nil {
			slog.Error("Failed to close database connection", "error", err)
		}
	}()

	// Run database migrations
	if err := database.AutoMigrate(
		&model.UserModel{},
		&model.StatusModel{},
		&model.DebtModel{},
	); err != nil {
		slog.Error("Failed to run database migrations", "error", err)
		os.Exit(1)
	}
	slog.Info("Database migrations completed successfully")

	// Create adapters/services
	idGenerator := adapters.NewIDGenerator()
	passwordService := adapters.NewPasswordService()
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.AccessTokenExpiry)

	// Create repositories
	userRepo := persistence.NewUserRepository(database.DB(), idGenerator)
	debtRepo := persistence.NewDebtRepository(database.DB(), idGenerator)
	statusRepo := persistence.NewStatusRepository(database.DB(), idGenerator)

	// Seed the enumerated debt statuses
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := statusRepo.Seed(seedCtx); err != nil {
		seedCancel()
		slog.Error("Failed to seed debt statuses", "error", err)
		os.Exit(1)
	}
	seedCancel()

	// Create auth use cases
	registerUseCase := auth.NewRegisterUserUseCase(userRepo, passwordService, tokenService)
	loginUseCase := auth.NewLoginUserUseCase(userRepo, passwordService, tokenService)

	// Create user use cases
	getUserUseCase := user.NewGetUserUseCase(userRepo)
	listUsersUseCase := user.NewListUsersUseCase(userRepo)
	updateUserUseCase := user.NewUpdateUserUseCase(userRepo, passwordService)
	deleteUserUseCase := user.NewDeleteUserUseCase(userRepo)

	// Create debt use cases
	createDebtUseCase := debt.NewCreateDebtUseCase(debtRepo, statusRepo)
	getDebtUseCase := debt.NewGetDebtUseCase(debtRepo, statusRepo)
	listDebtsUseCase := debt.NewListDebtsUseCase(debtRepo, statusRepo)
	updateDebtUseCase := debt.NewUpdateDebtUseCase(debtRepo, statusRepo)
	deleteDebtUseCase := debt.NewDeleteDebtUseCase(debtRepo)

	// Create controllers
	healthController := controller.NewHealthController(database.HealthCheck)
	authController := controller.NewAuthController(registerUseCase, loginUseCase)
	userController := controller.NewUserController(getUserUseCase, listUsersUseCase, updateUserUseCase, deleteUserUseCase)
	debtController := controller.NewDebtController(createDebtUseCase, getDebtUseCase, listDebtsUseCase, updateDebtUseCase, deleteDebtUseCase)

	// Create middleware
	var loginRateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer func() {
			if err := redisClient.Close(); err != nil {
				slog.Error("Failed to close redis connection", "error", err)
			}
		}()
		loginRateLimiter = middleware.NewRateLimiterWithConfig(redisClient, cfg.RateLimit.MaxAttempts, cfg.RateLimit.Window)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Setup router
	r := router.NewRouter(healthController, authController, userController, debtController, loginRateLimiter, authMiddleware)
	engine := r.Setup(cfg.Server.Environment)

	// Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      engine,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// Start server in a goroutine
	go func() {
		slog.Info("Server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("Server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("Server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("Server exited properly")
}
