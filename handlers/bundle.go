package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Plan configurator endpoints
	StartPlanSessionHandler gin.HandlerFunc
	GetPlanCatalogHandler   gin.HandlerFunc
	GetPlanSessionHandler   gin.HandlerFunc
	SelectBundleHandler     gin.HandlerFunc
	ToggleServiceHandler    gin.HandlerFunc
	ChangeQuantityHandler   gin.HandlerFunc
	AdvanceStepHandler      gin.HandlerFunc
	BackStepHandler         gin.HandlerFunc
	SearchServicesHandler   gin.HandlerFunc

	// Submission endpoints
	SubmitBudgetHandler  gin.HandlerFunc
	SubmitContactHandler gin.HandlerFunc
}
