package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"washhub/config"
	"washhub/database"
	bookingRepoPkg "washhub/database/repository/booking"
	shopRepoPkg "washhub/database/repository/shop"
	"washhub/handlers"
	"washhub/middleware"
	"washhub/routes"
	bookingSvc "washhub/services/booking"
	ai "washhub/services/intelligence"
	shopSvc "washhub/services/shop"
	"washhub/utils"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}
	config.LoadConfig()
	logger := utils.GetLogger()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// In-memory repositories, seeded with the demo dataset. The simulated
	// latency exists so demo clients can exercise their loading states.
	readLatency := time.Duration(config.AppConfig.DemoReadLatencyMS) * time.Millisecond
	writeLatency := time.Duration(config.AppConfig.DemoWriteLatencyMS) * time.Millisecond
	shopRepo := shopRepoPkg.NewMemoryShopRepo(database.DemoShops(), readLatency)
	bookingRepo := bookingRepoPkg.NewMemoryBookingRepo(database.DemoBookings(), readLatency, writeLatency)

	// Services.
	shopService := &shopSvc.DefaultShopService{Repo: shopRepo}
	bookingService := &bookingSvc.DefaultBookingService{
		ShopRepo:    shopRepo,
		BookingRepo: bookingRepo,
		Projection: bookingSvc.ProjectionFactors{
			WeekApp:    config.AppConfig.WeekAppFactor,
			WeekWalkIn: config.AppConfig.WeekWalkInFactor,
		},
	}
	insightService := ai.NewDefaultInsightService(
		context.Background(),
		config.AppConfig.GeminiAPIKey,
		config.AppConfig.GeminiModel,
	)

	// Handlers and routes.
	customerHandler := handlers.NewCustomerHandler(shopService, bookingService, logger)
	partnerHandler := handlers.NewPartnerHandler(bookingService, insightService, logger)
	adminHandler := handlers.NewAdminHandler(shopService, logger)
	routes.RegisterRoutes(router, customerHandler, partnerHandler, adminHandler)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
