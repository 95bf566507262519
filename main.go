package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"roomly/config"
	"roomly/cron"
	"roomly/database"
	bookingRepo "roomly/database/repository/booking"
	catalogRepo "roomly/database/repository/catalog"
	"roomly/handlers"
	"roomly/middleware"
	"roomly/routes"
	"roomly/services/booking"
	"roomly/services/notification"
	"roomly/services/payment"
	"roomly/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"github.com/joho/godotenv"
	"github.com/stripe/stripe-go/v76"
)

func main() {
	_ = godotenv.Load()
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	stripe.Key = config.AppConfig.StripeKey

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(cors.Default())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	catalog := catalogRepo.NewCachedCatalogRepo(catalogRepo.NewMongoCatalogRepo())
	bookings := bookingRepo.NewMongoBookingRepo()
	{
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		if err := bookings.EnsureIndexes(ctx); err != nil {
			logger.Sugar().Fatalf("main: failed to ensure booking indexes: %v", err)
		}
		cancel()
	}

	// collaborators.
	gateway := payment.NewStripeGateway()
	mailClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisMailQueueDB,
	})
	defer mailClient.Close()
	mailer := notification.NewAsynqMailer(mailClient)
	cron.InitMailWorker()

	// the engine.
	engine := booking.NewDefaultBookingEngine(
		catalog,
		bookings,
		gateway,
		mailer,
		booking.PolicyFromConfig(),
		time.Duration(config.AppConfig.StalePendingMinutes)*time.Minute,
		config.AppConfig.PublicBaseURL,
	)

	bookingHandler := handlers.NewBookingHandler(engine)
	catalogHandler := handlers.NewCatalogHandler(catalog)
	routes.RegisterRoutes(router, bookingHandler, catalogHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

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
