package main

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"inventory-analytics-service/internal/handler"
	mid "inventory-analytics-service/internal/middleware"
	"inventory-analytics-service/internal/scheduler"
	"inventory-analytics-service/pkg/config"
	"inventory-analytics-service/pkg/database"
	"inventory-analytics-service/pkg/logger"
	"inventory-analytics-service/prometheus"
)

func main() {
	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	logger.InitLogger(appConfig)
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting inventory-analytics-service",
		zap.String("environment", appConfig.Server.Env),
		zap.String("port", appConfig.Server.Port))

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	err = database.InitDB(appConfig)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	// Background jobs: monthly sales rollover and metric refresh
	if appConfig.Scheduler.Enabled {
		jobs, err := scheduler.New(database.GetDB(), appConfig)
		if err != nil {
			log.Fatal("Failed to initialize scheduler", zap.Error(err))
		}
		jobs.Start()
		defer jobs.Stop()
	}

	// Initialize Echo instance
	e := echo.New()

	// Middleware
	e.Use(middleware.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Metrics endpoint
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Master data
	productAPI := e.Group("/api/products")
	productAPI.GET("", handler.ListProducts)
	productAPI.GET("/:id", handler.GetProduct)
	productAPI.POST("", handler.CreateProduct)
	productAPI.PUT("/:id", handler.UpdateProduct)
	productAPI.DELETE("/:id", handler.DeleteProduct)

	categoryAPI := e.Group("/api/categories")
	categoryAPI.GET("", handler.ListCategories)
	categoryAPI.GET("/:id", handler.GetCategory)
	categoryAPI.POST("", handler.CreateCategory)
	categoryAPI.PUT("/:id", handler.UpdateCategory)
	categoryAPI.DELETE("/:id", handler.DeleteCategory)

	supplierAPI := e.Group("/api/suppliers")
	supplierAPI.GET("", handler.ListSuppliers)
	supplierAPI.GET("/:id", handler.GetSupplier)
	supplierAPI.POST("", handler.CreateSupplier)
	supplierAPI.PUT("/:id", handler.UpdateSupplier)
	supplierAPI.DELETE("/:id", handler.DeleteSupplier)

	locationAPI := e.Group("/api/locations")
	locationAPI.GET("", handler.ListLocations)
	locationAPI.GET("/:id", handler.GetLocation)
	locationAPI.POST("", handler.CreateLocation)
	locationAPI.PUT("/:id", handler.UpdateLocation)
	locationAPI.DELETE("/:id", handler.DeleteLocation)

	// Stock movements and alerts
	movementAPI := e.Group("/api/movements")
	movementAPI.GET("", handler.ListMovements)
	movementAPI.POST("", handler.CreateMovement)

	alertAPI := e.Group("/api/alerts")
	alertAPI.GET("", handler.ListAlerts)
	alertAPI.POST("/:id/resolve", handler.ResolveAlert)
	alertAPI.POST("/:id/ignore", handler.IgnoreAlert)

	// Purchase orders
	orderAPI := e.Group("/api/purchase-orders")
	orderAPI.GET("", handler.ListPurchaseOrders)
	orderAPI.GET("/:id", handler.GetPurchaseOrder)
	orderAPI.POST("", handler.CreatePurchaseOrder)
	orderAPI.POST("/:id/lines/:line_id/receive", handler.ReceiveOrderLine)
	orderAPI.POST("/:id/cancel", handler.CancelPurchaseOrder)

	// Derived views
	viewAPI := e.Group("/api/views")
	viewAPI.GET("/criticality", handler.GetCriticalityView)
	viewAPI.GET("/profitability", handler.GetProfitabilityView)
	viewAPI.GET("/top-products", handler.GetTopProductsView)

	// Reports
	reportAPI := e.Group("/api/reports")
	reportAPI.GET("/abc", handler.GetABCReport)
	reportAPI.GET("/rotation", handler.GetRotationReport)
	reportAPI.GET("/slow-movers", handler.GetSlowMoversReport)
	reportAPI.GET("/demand-trend", handler.GetDemandTrendReport)
	reportAPI.GET("/reorder", handler.GetReorderReport)
	reportAPI.GET("/supplier-performance", handler.GetSupplierPerformanceReport)
	reportAPI.GET("/category-profitability", handler.GetCategoryProfitabilityReport)
	reportAPI.GET("/kpis", handler.GetKPISummary)

	// Bulk CSV load
	e.POST("/api/import/:table", handler.ImportTable)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
