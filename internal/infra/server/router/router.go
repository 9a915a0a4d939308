// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/debt-manager/backend/internal/integration/entrypoint/controller"
	"github.com/debt-manager/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine           *gin.Engine
	healthController *controller.HealthController
	authController   *controller.AuthController
	userController   *controller.UserController
	debtController   *controller.DebtController
	loginRateLimiter *middleware.RateLimiter
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
func NewRouter(
	healthController *controller.HealthController,
	authController *controller.AuthController,
	userController *controller.UserController,
	debtController *controller.DebtController,
	loginRateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController: healthController,
		authController:   authController,
		userController:   userController,
		debtController:   debtController,
		loginRateLimiter: loginRateLimiter,
		authMiddleware:   authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Default middleware: logger and recovery
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", r.authController.Register)
			if r.loginRateLimiter != nil {
				auth.POST("/login", r.loginRateLimiter.Middleware(), r.authController.Login)
			} else {
				auth.POST("/login", r.authController.Login)
			}
		}

		users := v1.Group("/users")
		users.Use(r.authMiddleware.Authenticate())
		{
			users.GET("", r.userController.List)
			users.GET("/:id", r.userController.Get)
			users.PATCH("/:id", r.userController.Update)
			users.DELETE("/:id", r.userController.Delete)
		}

		debts := v1.Group("/debts")
		debts.Use(r.authMiddleware.Authenticate())
		{
			debts.GET("", r.debtController.List)
			debts.GET("/:id", r.debtController.Get)
			debts.POST("", r.debtController.Create)
			debts.PUT("/:id", r.debtController.Update)
			debts.DELETE("/:id", r.debtController.Delete)
		}
	}
}
