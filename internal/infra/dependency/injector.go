// Package dependency provides dependency injection for the application.
package dependency

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/budget-tracker/backend/config"
	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/application/usecase/budget"
	"github.com/budget-tracker/backend/internal/application/usecase/category"
	"github.com/budget-tracker/backend/internal/application/usecase/dashboard"
	"github.com/budget-tracker/backend/internal/application/usecase/preference"
	"github.com/budget-tracker/backend/internal/application/usecase/transaction"
	"github.com/budget-tracker/backend/internal/infra/db"
	"github.com/budget-tracker/backend/internal/infra/server/router"
	"github.com/budget-tracker/backend/internal/integration/adapters"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/controller"
	"github.com/budget-tracker/backend/internal/integration/entrypoint/middleware"
	"github.com/budget-tracker/backend/internal/integration/persistence"
)

// Injector holds all application dependencies.
type Injector struct {
	Config      *config.Config
	DB          *gorm.DB
	Redis       *redis.Client
	Router      *router.Router
	RateLimiter *middleware.RateLimiter
}

// NewInjector creates a new dependency injector with all dependencies wired.
// clock supplies "today" to the use cases; pass adapter.SystemClock{} outside tests.
func NewInjector(cfg *config.Config, database *gorm.DB, redisClient *redis.Client, clock adapter.Clock) *Injector {
	// Create repositories
	transactionRepo := persistence.NewTransactionRepository(database)
	categoryRepo := persistence.NewCategoryRepository(database)
	budgetRepo := persistence.NewBudgetRepository(database)
	preferenceStore := persistence.NewPreferenceStore(redisClient)

	// Create adapters/services
	tokenService := adapters.NewTokenService(cfg.JWT.Secret, cfg.JWT.Audience)

	limit := cfg.Dashboard.TransactionLimit

	// Create transaction use cases
	listTransactionsUseCase := transaction.NewListTransactionsUseCase(transactionRepo, clock, limit)
	exportTransactionsUseCase := transaction.NewExportTransactionsUseCase(listTransactionsUseCase, preferenceStore, clock)
	createTransactionUseCase := transaction.NewCreateTransactionUseCase(transactionRepo, categoryRepo)
	updateTransactionUseCase := transaction.NewUpdateTransactionUseCase(transactionRepo, categoryRepo)
	duplicateTransactionUseCase := transaction.NewDuplicateTransactionUseCase(transactionRepo, clock)
	deleteTransactionUseCase := transaction.NewDeleteTransactionUseCase(transactionRepo)

	// Create category use cases
	listCategoriesUseCase := category.NewListCategoriesUseCase(categoryRepo)
	createCategoryUseCase := category.NewCreateCategoryUseCase(categoryRepo)
	updateCategoryUseCase := category.NewUpdateCategoryUseCase(categoryRepo)
	deleteCategoryUseCase := category.NewDeleteCategoryUseCase(categoryRepo)

	// Create budget use cases
	listBudgetsUseCase := budget.NewListBudgetsUseCase(budgetRepo, transactionRepo)
	createBudgetUseCase := budget.NewCreateBudgetUseCase(budgetRepo, categoryRepo, clock)
	deleteBudgetUseCase := budget.NewDeleteBudgetUseCase(budgetRepo)

	// Create dashboard use cases
	getSummaryUseCase := dashboard.NewGetSummaryUseCase(transactionRepo, clock, limit)
	getCategoryBreakdownUseCase := dashboard.NewGetCategoryBreakdownUseCase(transactionRepo, limit, cfg.Dashboard.BreakdownTop)
	getDailySeriesUseCase := dashboard.NewGetDailySeriesUseCase(transactionRepo, clock)
	getCountsUseCase := dashboard.NewGetCountsUseCase(categoryRepo, budgetRepo)

	// Create preference use cases
	getCurrencyUseCase := preference.NewGetCurrencyUseCase(preferenceStore)
	setCurrencyUseCase := preference.NewSetCurrencyUseCase(preferenceStore)

	// Create controllers
	healthController := controller.NewHealthController(
		func(ctx context.Context) error { return db.Ping(ctx, database) },
		preferenceStore.Ping,
	)

	transactionController := controller.NewTransactionController(
		listTransactionsUseCase,
		exportTransactionsUseCase,
		createTransactionUseCase,
		updateTransactionUseCase,
		duplicateTransactionUseCase,
		deleteTransactionUseCase,
	)

	categoryController := controller.NewCategoryController(
		listCategoriesUseCase,
		createCategoryUseCase,
		updateCategoryUseCase,
		deleteCategoryUseCase,
	)

	budgetController := controller.NewBudgetController(
		listBudgetsUseCase,
		createBudgetUseCase,
		deleteBudgetUseCase,
	)

	dashboardController := controller.NewDashboardController(
		getSummaryUseCase,
		getCategoryBreakdownUseCase,
		getDailySeriesUseCase,
		getCountsUseCase,
	)

	preferenceController := controller.NewPreferenceController(
		getCurrencyUseCase,
		setCurrencyUseCase,
	)

	// Create middleware
	var rateLimiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		rateLimiter = middleware.NewRateLimiterWithConfig(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window)
	}
	authMiddleware := middleware.NewAuthMiddleware(tokenService)

	// Create router
	r := router.NewRouter(
		healthController,
		transactionController,
		categoryController,
		budgetController,
		dashboardController,
		preferenceController,
		rateLimiter,
		authMiddleware,
	)

	return &Injector{
		Config:      cfg,
		DB:          database,
		Redis:       redisClient,
		Router:      r,
		RateLimiter: rateLimiter,
	}
}
