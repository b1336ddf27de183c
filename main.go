// File: webmaker/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"webmaker/config"
	"webmaker/handlers"
	"webmaker/middleware"
	"webmaker/routes"
	"webmaker/services/notification"
	"webmaker/services/plan"
	"webmaker/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	utils.InitializeLogger()
	logger := utils.GetLogger()

	sessionTTL := time.Duration(config.AppConfig.SessionTTLMin) * time.Minute
	var sessionStore plan.SessionStore
	if err := utils.InitSessionCache(); err != nil {
		logger.Warn("redis unavailable, using in-memory plan sessions", zap.Error(err))
		sessionStore = plan.NewMemorySessionStore(sessionTTL)
	} else {
		sessionStore = plan.NewRedisSessionStore(utils.GetSessionCacheClient(), sessionTTL)
	}
	utils.StartHealthMonitor(utils.GetSessionCacheClient())

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware(config.AppConfig.MaxRequestsPerMin))

	// services.
	planService := &plan.DefaultPlanService{
		CatalogData: plan.DefaultCatalog(),
		Store:       sessionStore,
	}
	channel := notification.NewChannelFromConfig(config.AppConfig)
	mailer := notification.NewMailerService(config.AppConfig, channel)

	planHandler := handlers.NewPlanHandler(planService)
	submissionLimiter := middleware.NewSubmissionLimiter(
		time.Duration(config.AppConfig.RateLimitWindowMin)*time.Minute,
		config.AppConfig.RateLimitMax,
	)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Plan configurator endpoints.
		StartPlanSessionHandler: planHandler.StartSession,
		GetPlanCatalogHandler:   planHandler.GetCatalog,
		GetPlanSessionHandler:   planHandler.GetSession,
		SelectBundleHandler:     planHandler.SelectBundle,
		ToggleServiceHandler:    planHandler.ToggleService,
		ChangeQuantityHandler:   planHandler.ChangeQuantity,
		AdvanceStepHandler:      planHandler.Advance,
		BackStepHandler:         planHandler.Back,
		SearchServicesHandler:   planHandler.Search,

		// Submission endpoints.
		SubmitBudgetHandler:  handlers.SubmitBudget(mailer),
		SubmitContactHandler: handlers.SubmitContact(mailer),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle, submissionLimiter)

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
