package plan

import (
	"context"
	"errors"
	"testing"
	"time"
)

func newTestService() *DefaultPlanService {
	return &DefaultPlanService{
		CatalogData: DefaultCatalog(),
		Store:       NewMemorySessionStore(30 * time.Minute),
	}
}

func TestStartSessionOpensAtStepOne(t *testing.T) {
	svc := newTestService()
	view, err := svc.StartSession(context.Background())
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	if view.SessionID == "" {
		t.Error("expected a session id")
	}
	if view.CurrentStep != 1 {
		t.Errorf("CurrentStep = %d, want 1", view.CurrentStep)
	}
	if view.Mode != "custom" {
		t.Errorf("Mode = %q, want custom", view.Mode)
	}
	if view.TotalPrice != 0 || len(view.Selection.Services) != 0 {
		t.Errorf("fresh session should be empty: %+v", view)
	}
}

func TestGetSessionUnknownID(t *testing.T) {
	svc := newTestService()
	_, err := svc.GetSession(context.Background(), "no-such-session")

	var notFound *SessionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SessionNotFoundError, got %v", err)
	}
}

func TestExpiredSessionIsGone(t *testing.T) {
	svc := &DefaultPlanService{
		CatalogData: DefaultCatalog(),
		Store:       NewMemorySessionStore(-time.Second),
	}
	view, err := svc.StartSession(context.Background())
	if err != nil {
		t.Fatalf("StartSession: %v", err)
	}

	_, err = svc.GetSession(context.Background(), view.SessionID)
	var notFound *SessionNotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected SessionNotFoundError for expired session, got %v", err)
	}
}

func TestAdvanceBlockedWithoutProjectType(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	view, _ := svc.StartSession(ctx)

	_, err := svc.Advance(ctx, view.SessionID)
	var blocked *StepBlockedError
	if !errors.As(err, &blocked) {
		t.Fatalf("expected StepBlockedError, got %v", err)
	}
	if blocked.Message != "Selecciona primero el tipo de proyecto" {
		t.Errorf("unexpected block message %q", blocked.Message)
	}

	if _, err := svc.ToggleService(ctx, view.SessionID, "basic"); err != nil {
		t.Fatalf("ToggleService: %v", err)
	}
	after, err := svc.Advance(ctx, view.SessionID)
	if err != nil {
		t.Fatalf("Advance after project choice: %v", err)
	}
	if after.CurrentStep != 2 {
		t.Errorf("CurrentStep = %d, want 2", after.CurrentStep)
	}
}

func TestAdvanceStopsAtSummary(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	view, _ := svc.StartSession(ctx)
	svc.ToggleService(ctx, view.SessionID, "basic")

	summary := svc.CatalogData.SummaryStep()
	var last *SessionView
	for i := 0; i < summary+3; i++ {
		v, err := svc.Advance(ctx, view.SessionID)
		if err != nil {
			t.Fatalf("Advance %d: %v", i, err)
		}
		last = v
	}
	if last.CurrentStep != summary {
		t.Errorf("CurrentStep = %d, want terminal summary %d", last.CurrentStep, summary)
	}
}

func TestBackNeverDropsBelowStepOne(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	view, _ := svc.StartSession(ctx)

	for i := 0; i < 3; i++ {
		v, err := svc.Back(ctx, view.SessionID)
		if err != nil {
			t.Fatalf("Back: %v", err)
		}
		if v.CurrentStep != 1 {
			t.Errorf("CurrentStep = %d, want 1", v.CurrentStep)
		}
	}
}

func TestSelectBundleJumpsToSummary(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	view, _ := svc.StartSession(ctx)

	after, err := svc.SelectBundle(ctx, view.SessionID, "pack-experto")
	if err != nil {
		t.Fatalf("SelectBundle: %v", err)
	}
	if after.Mode != "bundle" {
		t.Errorf("Mode = %q, want bundle", after.Mode)
	}
	if after.CurrentStep != svc.CatalogData.SummaryStep() {
		t.Errorf("CurrentStep = %d, want summary %d", after.CurrentStep, svc.CatalogData.SummaryStep())
	}
}

func TestSelectBundleUnknownKeepsStep(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	view, _ := svc.StartSession(ctx)

	after, err := svc.SelectBundle(ctx, view.SessionID, "pack-imaginario")
	if err != nil {
		t.Fatalf("SelectBundle: %v", err)
	}
	if after.CurrentStep != 1 || after.Mode != "custom" {
		t.Errorf("unknown bundle must not move the wizard: %+v", after)
	}
}

func TestSearchResetsPageOnNewQuery(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	view, _ := svc.StartSession(ctx)

	first, err := svc.Search(ctx, view.SessionID, "", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if first.Page != 1 {
		t.Fatalf("Page = %d, want 1", first.Page)
	}

	second, err := svc.Search(ctx, view.SessionID, "seo", 1)
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if second.Page != 0 {
		t.Errorf("changed query must reset to page 0, got %d", second.Page)
	}
}

func TestSessionSurvivesRoundTrip(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()
	view, _ := svc.StartSession(ctx)

	svc.ToggleService(ctx, view.SessionID, "basic")
	svc.ChangeQuantity(ctx, view.SessionID, "extra-page", 2)

	got, err := svc.GetSession(ctx, view.SessionID)
	if err != nil {
		t.Fatalf("GetSession: %v", err)
	}
	if got.Selection.Services["basic"] != 1 || got.Selection.Services["extra-page"] != 2 {
		t.Errorf("selection did not persist: %v", got.Selection.Services)
	}
	if len(got.Recommendations) == 0 {
		t.Error("expected recommendations in the snapshot")
	}
}
