package plan

import (
	"context"

	"webmaker/models"
)

// SessionView is a session snapshot enriched with everything the summary
// screen needs.
type SessionView struct {
	SessionID       string                  `json:"sessionId"`
	CurrentStep     int                     `json:"currentStep"`
	TotalSteps      int                     `json:"totalSteps"`
	Mode            string                  `json:"mode"`
	Selection       models.Selection        `json:"selection"`
	TotalPrice      float64                 `json:"totalPrice"`
	ServicesDetails []models.ServiceDetail  `json:"servicesDetails"`
	Recommendations []models.Recommendation `json:"recommendations"`
}

// PlanService drives the multi-step pricing configurator.
type PlanService interface {
	StartSession(ctx context.Context) (*SessionView, error)
	GetSession(ctx context.Context, sessionID string) (*SessionView, error)
	SelectBundle(ctx context.Context, sessionID, bundleID string) (*SessionView, error)
	ToggleService(ctx context.Context, sessionID, serviceID string) (*SessionView, error)
	ChangeQuantity(ctx context.Context, sessionID, serviceID string, delta int) (*SessionView, error)
	Advance(ctx context.Context, sessionID string) (*SessionView, error)
	Back(ctx context.Context, sessionID string) (*SessionView, error)
	Search(ctx context.Context, sessionID, query string, page int) (*models.SearchResult, error)
	Catalog() *Catalog
}

// DefaultPlanService is the production implementation.
type DefaultPlanService struct {
	CatalogData *Catalog
	Store       SessionStore
}
