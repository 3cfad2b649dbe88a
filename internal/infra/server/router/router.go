// Package router sets up the HTTP routing for the application.
package router

import (
	"github.com/gin-gonic/gin"

	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
)

// Router holds the Gin engine and controller dependencies.
type Router struct {
	engine                *gin.Engine
	healthController      *controller.HealthController
	transactionController *controller.TransactionController
	categoryController    *controller.CategoryController
	budgetController      *controller.BudgetController
	dashboardController   *controller.DashboardController
	preferenceController  *controller.PreferenceController
	rateLimiter           *middleware.RateLimiter
	authMiddleware        *middleware.AuthMiddleware
}

// NewRouter creates a new router instance with all dependencies.
// A nil rateLimiter disables rate limiting.
func NewRouter(
	healthController *controller.HealthController,
	transactionController *controller.TransactionController,
	categoryController *controller.CategoryController,
	budgetController *controller.BudgetController,
	dashboardController *controller.DashboardController,
	preferenceController *controller.PreferenceController,
	rateLimiter *middleware.RateLimiter,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		healthController:      healthController,
		transactionController: transactionController,
		categoryController:    categoryController,
		budgetController:      budgetController,
		dashboardController:   dashboardController,
		preferenceController:  preferenceController,
		rateLimiter:           rateLimiter,
		authMiddleware:        authMiddleware,
	}
}

// Setup configures and returns the Gin engine with all routes.
func (r *Router) Setup(environment string) *gin.Engine {
	// Set Gin mode based on environment
	if environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else if environment == "test" {
		gin.SetMode(gin.TestMode)
	}

	// Create router with default middleware (logger and recovery)
	r.engine = gin.Default()

	r.setupHealthRoutes()
	r.setupAPIRoutes()

	return r.engine
}

// setupHealthRoutes configures health check endpoints.
func (r *Router) setupHealthRoutes() {
	r.engine.GET("/health", r.healthController.Check)
	r.engine.GET("/api/v1/health", r.healthController.Check)
}

// setupAPIRoutes configures the main API routes. Everything below /api/v1
// except health requires a bearer token.
func (r *Router) setupAPIRoutes() {
	v1 := r.engine.Group("/api/v1")
	v1.Use(r.authMiddleware.Authenticate())
	if r.rateLimiter != nil {
		v1.Use(r.rateLimiter.Middleware())
	}

	transactions := v1.Group("/transactions")
	{
		transactions.GET("", r.transactionController.List)
		transactions.GET("/export", r.transactionController.Export)
		transactions.POST("", r.transactionController.Create)
		transactions.PUT("/:id", r.transactionController.Update)
		transactions.POST("/:id/duplicate", r.transactionController.Duplicate)
		transactions.DELETE("/:id", r.transactionController.Delete)
	}

	categories := v1.Group("/categories")
	{
		categories.GET("", r.categoryController.List)
		categories.POST("", r.categoryController.Create)
		categories.PATCH("/:id", r.categoryController.Update)
		categories.DELETE("/:id", r.categoryController.Delete)
	}

	budgets := v1.Group("/budgets")
	{
		budgets.GET("", r.budgetController.List)
		budgets.POST("", r.budgetController.Create)
		budgets.DELETE("/:id", r.budgetController.Delete)
	}

	dashboard := v1.Group("/dashboard")
	{
		dashboard.GET("/summary", r.dashboardController.GetSummary)
		dashboard.GET("/category-breakdown", r.dashboardController.GetCategoryBreakdown)
		dashboard.GET("/daily-series", r.dashboardController.GetDailySeries)
		dashboard.GET("/counts", r.dashboardController.GetCounts)
	}

	preferences := v1.Group("/preferences")
	{
		preferences.GET("/currency", r.preferenceController.GetCurrency)
		preferences.PUT("/currency", r.preferenceController.SetCurrency)
	}

	v1.GET("/currencies", r.preferenceController.ListCurrencies)
}
