package handlers

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"store-profit-api/internal/middleware"
	"store-profit-api/internal/services"
)

// RouterConfig holds the services the routes depend on
type RouterConfig struct {
	EconomicsService      services.EconomicsService
	PnLService            services.PnLService
	CashFlowService       services.CashFlowService
	InventoryService      services.InventoryService
	ProductMetricsService services.ProductMetricsService
	DecisionService       services.DecisionService
	RegistryService       services.RegistryService
	ConnectorService      services.ConnectorService
}

// SetupRoutes configures all API routes
func SetupRoutes(router *gin.Engine, config *RouterConfig) {
	// Create handlers
	reportsHandler := NewReportsHandler(
		config.EconomicsService,
		config.PnLService,
		config.CashFlowService,
		config.InventoryService,
		config.ProductMetricsService,
		config.DecisionService,
	)
	registryHandler := NewRegistryHandler(config.RegistryService)
	systemHandler := NewSystemHandler(config.ConnectorService)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "store-profit-api",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Order routes
		orders := v1.Group("/orders")
		{
			orders.GET("/:id/economics", reportsHandler.GetOrderEconomics)
		}

		// Report routes
		reports := v1.Group("/reports")
		{
			reports.GET("/pnl", reportsHandler.GetPnL)
			reports.GET("/cashflow", reportsHandler.GetCashFlow)
			reports.GET("/inventory", reportsHandler.GetInventoryValuation)
			reports.GET("/products", reportsHandler.GetProductMetrics)
			reports.GET("/channels", reportsHandler.GetChannelBreakdown)
		}

		// Advisory routes
		ceo := v1.Group("/ceo")
		{
			ceo.GET("/decision", reportsHandler.GetDecision)
			ceo.GET("/briefing", reportsHandler.GetBriefing)
		}

		// Cost rule and catalog mutation routes
		v1.PUT("/products/:id/cost", registryHandler.UpdateProductCost)

		rules := v1.Group("/rules")
		{
			rules.PUT("/payment/:method", registryHandler.UpdatePaymentRule)
			rules.PUT("/shipping/:carrier", registryHandler.UpdateShippingRule)
		}

		packaging := v1.Group("/packaging")
		{
			packaging.PUT("/materials/:id", registryHandler.UpdatePackagingMaterial)
			packaging.PUT("/template/:materialId", registryHandler.UpdatePackagingTemplateQuantity)
		}

		// Ledger routes
		v1.POST("/ads", registryHandler.AddAdSpend)
		v1.POST("/expenses", registryHandler.AddExpense)
		v1.POST("/fixed-costs/:id/toggle", registryHandler.ToggleFixedCost)

		// Store connection routes
		system := v1.Group("/system")
		{
			system.POST("/demo", systemHandler.SetDemoMode)
			system.POST("/connect", systemHandler.Connect)
			system.POST("/disconnect", systemHandler.Disconnect)
			system.POST("/sync", systemHandler.Sync)
			system.POST("/invoices", systemHandler.UploadInvoice)
			system.GET("/status", systemHandler.Status)
		}
	}
}

// SetupMiddleware configures global middleware
func SetupMiddleware(router *gin.Engine, rps float64, burst int) {
	// Request ID
	router.Use(middleware.RequestID())

	// CORS
	router.Use(middleware.CORS())

	// Security headers
	router.Use(middleware.SecurityHeaders())

	// Request size limit (10MB)
	router.Use(middleware.RequestSizeLimit(10 * 1024 * 1024))

	// Rate limiting
	router.Use(middleware.RateLimiter(rps, burst))

	// Structured logging
	router.Use(middleware.StructuredLogger())

	// Audit trail for write operations
	router.Use(middleware.AuditLogger())

	// Error handling
	router.Use(middleware.ErrorHandler())
}
