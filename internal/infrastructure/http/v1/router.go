// Package v1 provides HTTP API version 1.
package v1

import (
	"github.com/gin-gonic/gin"

	"opsdesk/internal/domain/catalogs/customer"
	"opsdesk/internal/domain/dashboard"
	"opsdesk/internal/domain/documents/invoice"
	"opsdesk/internal/domain/documents/order"
	"opsdesk/internal/domain/documents/ticket"
	"opsdesk/internal/domain/worksheets"
	"opsdesk/internal/infrastructure/http/v1/handlers"
	"opsdesk/internal/infrastructure/http/v1/middleware"
	"opsdesk/internal/infrastructure/sequence"
	"opsdesk/internal/infrastructure/storage/postgres"
	"opsdesk/internal/infrastructure/storage/postgres/catalog_repo"
	"opsdesk/internal/infrastructure/storage/postgres/document_repo"
	"opsdesk/internal/infrastructure/storage/postgres/report_repo"
	"opsdesk/pkg/logger"
)

// RouterConfig holds router dependencies.
type RouterConfig struct {
	// Pool is the database connection pool
	Pool *postgres.Pool

	// Logger for request logging
	Logger *logger.Logger
}

// NewRouter creates and configures the Gin router.
func NewRouter(cfg RouterConfig) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()

	// Global middleware (order matters!)
	router.Use(middleware.Recovery())
	router.Use(middleware.Trace())
	router.Use(middleware.Logger(cfg.Logger))
	router.Use(middleware.ErrorHandler())

	txm := postgres.NewTxManager(cfg.Pool)
	allocator := sequence.New(cfg.Pool)
	baseHandler := handlers.NewBaseHandler()

	// Health endpoints
	healthHandler := handlers.NewHealthHandler(cfg.Pool)
	health := router.Group("/health")
	{
		health.GET("/live", healthHandler.Live)
		health.GET("/ready", healthHandler.Ready)
		health.GET("/info", healthHandler.Info)
	}

	// API v1
	api := router.Group("/api/v1")

	// --- CATALOGS ---
	catalogs := api.Group("/catalogs")
	{
		repo := catalog_repo.NewCustomerRepo(txm)
		service := customer.NewService(repo, txm)
		handler := handlers.NewCustomerHandler(baseHandler, service)

		g := catalogs.Group("/customers")
		g.POST("", handler.Create)
		g.GET("", handler.List)
		g.GET("/:id", handler.Get)
		g.PUT("/:id", handler.Update)
		g.DELETE("/:id", handler.Delete)
	}

	// --- WORKSHEETS ---
	{
		repo := catalog_repo.NewWorksheetRepo(txm)
		service := worksheets.NewService(repo, txm)
		handler := handlers.NewWorksheetHandler(baseHandler, service)

		g := api.Group("/worksheets")
		g.POST("", handler.Create)
		g.GET("", handler.List)
		g.GET("/:id", handler.Get)
		g.PUT("/:id", handler.Update)
		g.DELETE("/:id", handler.Delete)
	}

	// --- DOCUMENTS ---
	docs := api.Group("/documents")

	{
		repo := document_repo.NewInvoiceRepo(txm)
		service := invoice.NewService(repo, allocator, txm)
		handler := handlers.NewInvoiceHandler(baseHandler, service)

		g := docs.Group("/invoices")
		g.POST("", handler.Create)
		g.GET("", handler.List)
		g.GET("/:id", handler.Get)
		g.GET("/number/:number", handler.GetByNumber)
		g.PUT("/:id", handler.Update)
		g.DELETE("/:id", handler.Delete)
	}

	{
		repo := document_repo.NewOrderRepo(txm)
		service := order.NewService(repo, allocator, txm)
		handler := handlers.NewOrderHandler(baseHandler, service)

		g := docs.Group("/orders")
		g.POST("", handler.Create)
		g.GET("", handler.List)
		g.GET("/:id", handler.Get)
		g.GET("/number/:number", handler.GetByNumber)
		g.PUT("/:id", handler.Update)
		g.DELETE("/:id", handler.Delete)
	}

	{
		repo := document_repo.NewTicketRepo(txm)
		service := ticket.NewService(repo, allocator, txm)
		handler := handlers.NewTicketHandler(baseHandler, service)

		g := docs.Group("/tickets")
		g.POST("", handler.Create)
		g.GET("", handler.List)
		g.GET("/:id", handler.Get)
		g.GET("/number/:number", handler.GetByNumber)
		g.PUT("/:id", handler.Update)
		g.POST("/:id/messages", handler.AddMessage)
		g.DELETE("/:id", handler.Delete)
	}

	// --- DASHBOARD ---
	{
		repo := report_repo.NewDashboardRepo(txm)
		service := dashboard.NewService(repo)
		handler := handlers.NewDashboardHandler(baseHandler, service)

		g := api.Group("/dashboard")
		g.GET("/stats", handler.Stats)
		g.GET("/recent-activity", handler.Recent)
	}

	return router
}
