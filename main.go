package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/pulsecollective/pulse/api/config"
	"github.com/pulsecollective/pulse/api/controller"
	"github.com/pulsecollective/pulse/api/db"
	logger "github.com/pulsecollective/pulse/api/logging"
	"github.com/pulsecollective/pulse/api/router"
	"github.com/pulsecollective/pulse/api/service"
	"github.com/pulsecollective/pulse/api/util"
)

func main() {
	// Initialize configuration
	if err := config.InitConfig(); err != nil {
		log.Fatalf("Failed to initialize config: %v", err)
	}

	// Initialize logger
	logger.InitLogger(config.GetString("log.dir"))
	defer logger.Sync()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize Postgres
	pool, err := db.NewPostgres(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Postgres", zap.Error(err))
	}
	defer pool.Close()
	if err := db.Migrate(ctx, pool); err != nil {
		logger.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize Redis
	cache, err := db.NewRedis(ctx)
	if err != nil {
		logger.Fatal("Failed to initialize Redis", zap.Error(err))
	}
	defer cache.Close()

	// Initialize EventBus
	eventBus := util.NewEventBus()
	eventBus.Start(ctx)

	// Initialize utilities
	tokens := util.NewTokenService(
		config.GetString("auth.secret"),
		config.GetDuration("auth.accessTTL"),
		config.GetDuration("auth.refreshTTL"),
	)

	var mailer util.Mailer = util.NoopMailer{}
	if config.GetString("email.apiKey") != "" {
		mailer = util.NewHTTPMailer(
			config.GetString("email.baseURL"),
			config.GetString("email.apiKey"),
			config.GetString("email.from"),
		)
	}

	var mailingList util.MailingList = util.NoopMailingList{}
	if config.GetString("mailinglist.apiKey") != "" {
		mailingList = util.NewHTTPMailingList(
			config.GetString("mailinglist.baseURL"),
			config.GetString("mailinglist.apiKey"),
			config.GetString("mailinglist.listID"),
		)
	}

	var storage util.ObjectStorage = util.NoopObjectStorage{}
	if config.GetString("storage.endpoint") != "" {
		storage = util.NewS3ObjectStorage(util.S3Config{
			Endpoint:      config.GetString("storage.endpoint"),
			Bucket:        config.GetString("storage.bucket"),
			AccessKey:     config.GetString("storage.accessKey"),
			SecretKey:     config.GetString("storage.secretKey"),
			UseSSL:        config.GetBool("storage.useSSL"),
			PublicBaseURL: config.GetString("storage.publicBaseURL"),
		})
	}

	// Initialize services and controllers
	services := service.InitializeServices(
		pool,
		tokens,
		mailer,
		mailingList,
		storage,
		config.GetString("email.editorial"),
		eventBus,
	)
	controllers := controller.InitializeControllers(services)

	// Set up Gin
	gin.SetMode(config.GetString("server.mode"))
	engine := router.SetupRouter(controllers, tokens, cache, cache)

	// Set up the server
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", config.GetString("server.port")),
		Handler: engine,
	}

	// Start the server in a goroutine
	go func() {
		logger.Info("Starting server", zap.String("port", config.GetString("server.port")))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatal("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exiting")
}
