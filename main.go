package main

import (
	"context"
	"log"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"oushodcloud-web/config"
	"oushodcloud-web/controllers"
	"oushodcloud-web/database"
	"oushodcloud-web/logger"
	"oushodcloud-web/repository"
	"oushodcloud-web/routes"
	"oushodcloud-web/services"
	"oushodcloud-web/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer zl.Sync()

	var documentStore store.Store
	switch cfg.Store.Backend {
	case "mongo":
		db, err := database.Connect(context.Background(), cfg.Store.MongoURI, cfg.Store.Database)
		if err != nil {
			zl.Fatal("failed to connect to the document store", zap.Error(err))
		}
		documentStore = store.NewMongoStore(db)
		zl.Info("using mongo document store", zap.String("database", cfg.Store.Database))
	default:
		// In-memory variant: everything is lost on restart.
		documentStore = store.NewMemoryStore()
		zl.Info("using in-memory document store")
	}

	orderRepo := repository.NewOrderRepository(documentStore)
	demoRepo := repository.NewDemoRequestRepository(documentStore)

	smsService := services.NewSMSService(cfg.SMS, zl)
	orderService := services.NewOrderService(orderRepo, smsService, zl)
	demoService := services.NewDemoRequestService(demoRepo, zl)
	pricingService := services.NewPricingService(zl)
	paymentService := services.NewPaymentService(cfg.Payment, zl)
	hub := controllers.NewHub(zl)

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.Server.FrontendOrigin},
		AllowMethods:     []string{"POST", "GET", "PATCH", "DELETE", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Serve the built marketing/admin frontend
	router.Static("/frontend", filepath.Join(".", "frontend", "dist"))
	router.NoRoute(func(c *gin.Context) {
		path := c.Request.URL.Path
		if strings.HasPrefix(path, "/frontend") {
			c.File(filepath.Join(".", "frontend", "dist", "index.html"))
		} else {
			c.JSON(http.StatusNotFound, gin.H{"message": "Page not found"})
		}
	})

	// API routes
	routes.OrderRoutes(router, orderService, hub)
	routes.DemoRequestRoutes(router, demoService, hub)
	routes.PricingRoutes(router, pricingService)
	routes.PaymentRoutes(router, paymentService)
	routes.AdminRoutes(router, orderService, demoService, hub)

	zl.Info("starting server", zap.String("port", cfg.Server.Port))
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		zl.Fatal("server stopped", zap.Error(err))
	}
}
