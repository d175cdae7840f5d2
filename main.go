package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kendall-kelly/business-dashboard-api/config"
	"github.com/kendall-kelly/business-dashboard-api/controllers"
	"github.com/kendall-kelly/business-dashboard-api/middleware"
	"github.com/kendall-kelly/business-dashboard-api/services"
)

func main() {
	log.Println("Starting Business Dashboard API server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	config.SetConfig(cfg)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx := context.Background()

	opts := []services.DashboardOption{services.WithGrowthMultiplier(cfg.GrowthMultiplier)}
	redisClient, err := config.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Printf("warning: %v, dashboard payload cache disabled", err)
	} else if redisClient != nil {
		opts = append(opts, services.WithCache(services.NewRedisDashboardCache(redisClient, cfg.CacheTTL)))
	}

	if cfg.ExportsEnabled() {
		if _, err := services.InitS3Service(ctx, cfg); err != nil {
			log.Fatalf("Failed to initialize S3 export store: %v", err)
		}
		log.Printf("Order exports will be archived to s3://%s", cfg.AWSS3Bucket)
	}

	corpus := services.NewOrderCorpus(cfg.Seed, services.CorpusOrderCount, nil)
	dashboard := services.InitDashboardService(corpus, opts...)
	log.Printf("Generated %d orders from seed %d", dashboard.CorpusSize(), cfg.Seed)

	router := setupRouter(cfg)

	port := ":" + cfg.Port
	log.Printf("Server is running on http://localhost%s", port)
	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// setupRouter wires middleware and routes. The dashboard service must be initialized first.
func setupRouter(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true

	if !cfg.IsTest() && gin.Mode() != gin.TestMode {
		router.Use(gin.Logger())
	}
	router.Use(middleware.RequestID(), middleware.Recovery(), middleware.CORS())

	router.NoMethod(controllers.MethodNotAllowed)
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	})

	api := router.Group("/api")
	{
		api.GET("/health", controllers.HealthCheck)

		api.GET("/dashboard", controllers.GetDashboard)
		api.OPTIONS("/dashboard", controllers.DashboardOptions)

		api.GET("/orders", controllers.ListOrders)
		api.GET("/orders/export.csv", controllers.DownloadOrdersCSV)
		api.GET("/customers", controllers.ListCustomers)

		exports := append(middleware.ProtectExports(cfg), controllers.ArchiveOrdersCSV)
		api.POST("/orders/exports", exports...)
	}

	return router
}
