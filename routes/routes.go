package routes

import (
	"net/http"
	"time"

	"webmaker/handlers"
	"webmaker/middleware"
	"webmaker/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterPlanRoutes registers the pricing-configurator endpoints.
func RegisterPlanRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/plan")
	{
		api.GET("/catalog", hb.GetPlanCatalogHandler)
		api.POST("/sessions", hb.StartPlanSessionHandler)
		api.GET("/sessions/:id", hb.GetPlanSessionHandler)
		api.POST("/sessions/:id/bundle", hb.SelectBundleHandler)
		api.POST("/sessions/:id/toggle", hb.ToggleServiceHandler)
		api.POST("/sessions/:id/quantity", hb.ChangeQuantityHandler)
		api.POST("/sessions/:id/advance", hb.AdvanceStepHandler)
		api.POST("/sessions/:id/back", hb.BackStepHandler)
		api.GET("/sessions/:id/search", hb.SearchServicesHandler)
	}
}

// RegisterSubmissionRoutes registers the form endpoints behind the
// fixed-window admission limiter.
func RegisterSubmissionRoutes(r *gin.Engine, hb *handlers.HandlerBundle, limiter *middleware.SubmissionLimiter) {
	api := r.Group("/api")
	{
		api.Use(limiter.Middleware())
		api.POST("/budget", hb.SubmitBudgetHandler)
		api.POST("/contact", hb.SubmitContactHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "redis": utils.GetHealthStatus()})
	})
}

// RegisterRoutes wires every route group onto the engine.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, limiter *middleware.SubmissionLimiter) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterPlanRoutes(r, hb)
	RegisterSubmissionRoutes(r, hb, limiter)
	RegisterHealthRoute(r)
}
