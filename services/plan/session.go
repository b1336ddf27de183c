package plan

import (
	"context"
	"reflect"
	"time"

	"webmaker/models"

	"github.com/google/uuid"
)

// StartSession opens a fresh wizard session at step 1 with an empty
// custom-mode selection.
func (s *DefaultPlanService) StartSession(ctx context.Context) (*SessionView, error) {
	now := time.Now().UTC()
	session := &models.PlanSession{
		ID:          uuid.New().String(),
		Selection:   NewSelection(),
		CurrentStep: 1,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// GetSession returns the enriched snapshot for an existing session.
func (s *DefaultPlanService) GetSession(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// SelectBundle swaps the selection for the bundle's snapshot and jumps the
// wizard straight to the summary step.
func (s *DefaultPlanService) SelectBundle(ctx context.Context, sessionID, bundleID string) (*SessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.PlanSession) {
		next := s.CatalogData.SelectBundle(session.Selection, bundleID)
		if next.BundleID != "" {
			session.CurrentStep = s.CatalogData.SummaryStep()
		}
		session.Selection = next
	})
}

// ToggleService flips a service and drops back to custom mode.
func (s *DefaultPlanService) ToggleService(ctx context.Context, sessionID, serviceID string) (*SessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.PlanSession) {
		session.Selection = s.CatalogData.ToggleService(session.Selection, serviceID)
	})
}

// ChangeQuantity adjusts a quantity-enabled service and drops back to
// custom mode.
func (s *DefaultPlanService) ChangeQuantity(ctx context.Context, sessionID, serviceID string, delta int) (*SessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.PlanSession) {
		session.Selection = s.CatalogData.ChangeQuantity(session.Selection, serviceID, delta)
	})
}

// Advance moves the wizard one step forward. Leaving step 1 requires a
// project-type choice; every other forward move is unconditional and the
// summary step is terminal.
func (s *DefaultPlanService) Advance(ctx context.Context, sessionID string) (*SessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.CurrentStep == 1 && !s.hasProjectType(session.Selection) {
		return nil, &StepBlockedError{Message: "Selecciona primero el tipo de proyecto"}
	}
	if session.CurrentStep < s.CatalogData.SummaryStep() {
		session.CurrentStep++
	}
	session.UpdatedAt = time.Now().UTC()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

// Back moves the wizard one step back, never below step 1.
func (s *DefaultPlanService) Back(ctx context.Context, sessionID string) (*SessionView, error) {
	return s.mutate(ctx, sessionID, func(session *models.PlanSession) {
		if session.CurrentStep > 1 {
			session.CurrentStep--
		}
	})
}

// Search runs the additional-services lookup, resetting the page index
// whenever the query changed since the last search on this session.
func (s *DefaultPlanService) Search(ctx context.Context, sessionID, query string, page int) (*models.SearchResult, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if query != session.SearchQuery {
		page = 0
	}
	result := s.CatalogData.SearchAdditional(session.Selection, query, page)
	session.SearchQuery = query
	session.SearchPage = result.Page
	session.UpdatedAt = time.Now().UTC()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return &result, nil
}

// Catalog exposes the authoritative catalog.
func (s *DefaultPlanService) Catalog() *Catalog {
	return s.CatalogData
}

func (s *DefaultPlanService) mutate(ctx context.Context, sessionID string, apply func(*models.PlanSession)) (*SessionView, error) {
	session, err := s.Store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	before := session.Selection
	apply(session)
	if !reflect.DeepEqual(before.Services, session.Selection.Services) {
		// Selection changed: a stale search page must not point past the end.
		session.SearchPage = 0
	}
	session.UpdatedAt = time.Now().UTC()
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return s.view(session), nil
}

func (s *DefaultPlanService) hasProjectType(sel models.Selection) bool {
	for id := range sel.Services {
		if s.CatalogData.IsFirstStep(id) {
			return true
		}
	}
	return false
}

func (s *DefaultPlanService) view(session *models.PlanSession) *SessionView {
	mode := "custom"
	if session.Selection.BundleID != "" {
		mode = "bundle"
	}
	return &SessionView{
		SessionID:       session.ID,
		CurrentStep:     session.CurrentStep,
		TotalSteps:      s.CatalogData.SummaryStep(),
		Mode:            mode,
		Selection:       session.Selection,
		TotalPrice:      s.CatalogData.ComputeTotal(session.Selection),
		ServicesDetails: s.CatalogData.SelectedDetails(session.Selection),
		Recommendations: s.CatalogData.Recommendations(session.Selection),
	}
}
