package plan

import (
	"testing"

	"webmaker/models"
)

func mustService(t *testing.T, c *Catalog, id string) models.Service {
	t.Helper()
	svc, ok := c.ServiceByID(id)
	if !ok {
		t.Fatalf("service %q not in catalog", id)
	}
	return svc
}

func TestToggleServiceAddsAutoIncluded(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "basic")

	if sel.Services["basic"] != 1 {
		t.Fatalf("expected basic at qty 1, got %v", sel.Services)
	}
	if sel.Services["maintenance"] != 1 {
		t.Errorf("auto-included maintenance missing: %v", sel.Services)
	}
}

func TestToggleServiceOffEmptiesSelection(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "basic")
	sel = c.ToggleService(sel, "basic")

	if len(sel.Services) != 0 {
		t.Errorf("expected empty selection after toggling off, got %v", sel.Services)
	}
}

func TestFirstStepChoiceIsSingular(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "basic")
	sel = c.ToggleService(sel, "app")

	if _, ok := sel.Services["basic"]; ok {
		t.Errorf("basic should be unset after choosing app: %v", sel.Services)
	}
	if sel.Services["app"] != 1 {
		t.Errorf("app should be selected: %v", sel.Services)
	}
}

func TestToggleAutoIncludedIsNoOp(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "basic")
	after := c.ToggleService(sel, "maintenance")

	if after.Services["maintenance"] != 1 {
		t.Errorf("maintenance must not be removable: %v", after.Services)
	}
}

func TestSelectBundleReplacesSelection(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "app")
	sel = c.SelectBundle(sel, "pack-experto")

	if sel.BundleID != "pack-experto" {
		t.Fatalf("expected bundle mode, got %q", sel.BundleID)
	}
	if _, ok := sel.Services["app"]; ok {
		t.Errorf("previous manual pick should be gone: %v", sel.Services)
	}
	bundle, _ := c.BundleByID("pack-experto")
	for _, id := range bundle.IncludedServiceIDs {
		if sel.Services[id] != 1 {
			t.Errorf("bundle service %q missing or wrong qty: %v", id, sel.Services)
		}
	}
	if sel.Services["maintenance"] != 1 {
		t.Errorf("auto-included maintenance missing in bundle mode: %v", sel.Services)
	}
}

func TestSelectBundleUnknownIsNoOp(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "basic")
	after := c.SelectBundle(sel, "pack-imaginario")

	if after.BundleID != "" || after.Services["basic"] != 1 {
		t.Errorf("unknown bundle must leave selection untouched: %+v", after)
	}
}

func TestManualEditLeavesBundleMode(t *testing.T) {
	c := DefaultCatalog()
	sel := c.SelectBundle(NewSelection(), "pack-experto")
	sel = c.ToggleService(sel, "newsletter")

	if sel.BundleID != "" {
		t.Errorf("toggle should clear bundle mode, got %q", sel.BundleID)
	}
	if sel.Services["newsletter"] != 1 {
		t.Errorf("newsletter should be selected: %v", sel.Services)
	}
	// The inherited bundle services stay as a custom selection.
	if sel.Services["basic"] != 1 || sel.Services["seo-basic"] != 1 {
		t.Errorf("bundle services should survive as custom picks: %v", sel.Services)
	}
}

func TestChangeQuantityClampsToBounds(t *testing.T) {
	c := DefaultCatalog()
	svc := mustService(t, c, "extra-page")

	sel := c.ChangeQuantity(NewSelection(), "extra-page", 1)
	if sel.Services["extra-page"] != svc.MinQuantity {
		t.Errorf("first increment should land on min qty %d: %v", svc.MinQuantity, sel.Services)
	}

	sel = c.ChangeQuantity(sel, "extra-page", 100)
	if sel.Services["extra-page"] != svc.MaxQuantity {
		t.Errorf("expected clamp to max %d, got %v", svc.MaxQuantity, sel.Services)
	}

	sel = c.ChangeQuantity(sel, "extra-page", -100)
	if _, ok := sel.Services["extra-page"]; ok {
		t.Errorf("dropping to zero or below should remove the entry: %v", sel.Services)
	}
}

func TestChangeQuantityOnNonQuantityServiceIsNoOp(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "basic")
	after := c.ChangeQuantity(sel, "blog", 3)

	if _, ok := after.Services["blog"]; ok {
		t.Errorf("blog does not allow quantities: %v", after.Services)
	}
}

func TestChangeQuantityClearsBundle(t *testing.T) {
	c := DefaultCatalog()
	sel := c.SelectBundle(NewSelection(), "pack-ecommerce")
	sel = c.ChangeQuantity(sel, "extra-page", 2)

	if sel.BundleID != "" {
		t.Errorf("quantity edit should clear bundle mode, got %q", sel.BundleID)
	}
}

func TestComputeTotalSumsCatalogPrices(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "basic")
	sel = c.ToggleService(sel, "blog")

	want := mustService(t, c, "basic").UnitPrice + mustService(t, c, "blog").UnitPrice
	if got := c.ComputeTotal(sel); got != want {
		t.Errorf("ComputeTotal = %v, want %v", got, want)
	}
}

func TestComputeTotalIsIdempotent(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "basic")
	sel = c.ToggleService(sel, "hosting")
	sel = c.ChangeQuantity(sel, "extra-page", 3)

	first := c.ComputeTotal(sel)
	for i := 0; i < 5; i++ {
		if got := c.ComputeTotal(sel); got != first {
			t.Fatalf("recompute %d changed the total: %v != %v", i, got, first)
		}
	}
}

func TestComputeTotalBundleUsesFixedPrice(t *testing.T) {
	c := DefaultCatalog()
	sel := c.SelectBundle(NewSelection(), "pack-experto")
	bundle, _ := c.BundleByID("pack-experto")

	if got := c.ComputeTotal(sel); got != bundle.FixedPrice {
		t.Errorf("bundle total = %v, want fixed price %v", got, bundle.FixedPrice)
	}
}

func TestVolumeDiscountAtThreshold(t *testing.T) {
	c := DefaultCatalog()
	svc := mustService(t, c, "extra-page")
	vd := svc.VolumeDiscount
	if vd == nil {
		t.Fatal("extra-page should carry a volume discount")
	}

	below := c.ChangeQuantity(NewSelection(), "extra-page", vd.ThresholdQty-1)
	wantBelow := svc.UnitPrice * float64(vd.ThresholdQty-1)
	if got := c.ComputeTotal(below); got != wantBelow {
		t.Errorf("below threshold total = %v, want %v", got, wantBelow)
	}

	at := c.ChangeQuantity(NewSelection(), "extra-page", vd.ThresholdQty)
	wantAt := svc.UnitPrice * float64(vd.ThresholdQty) * (1 - vd.Percentage/100)
	if got := c.ComputeTotal(at); got != wantAt {
		t.Errorf("at threshold total = %v, want %v", got, wantAt)
	}
}

func TestAutoIncludedContributesZero(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "basic")
	want := mustService(t, c, "basic").UnitPrice

	if got := c.ComputeTotal(sel); got != want {
		t.Errorf("maintenance must not add to the total: got %v, want %v", got, want)
	}
}

func TestSelectedDetailsStableOrderAutoLast(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ToggleService(NewSelection(), "hosting")
	sel = c.ToggleService(sel, "basic")
	sel = c.ToggleService(sel, "blog")

	details := c.SelectedDetails(sel)
	if len(details) != 4 {
		t.Fatalf("expected 4 detail lines, got %d", len(details))
	}
	wantOrder := []string{"basic", "blog", "hosting", "maintenance"}
	for i, id := range wantOrder {
		if details[i].ID != id {
			t.Errorf("detail[%d] = %q, want %q", i, details[i].ID, id)
		}
	}
	if last := details[len(details)-1]; last.LineTotal != 0 {
		t.Errorf("auto-included line must cost zero, got %v", last.LineTotal)
	}
}

// The end-to-end selection walk: two manual picks, a bundle, then a manual
// edit that drops back to custom mode.
func TestSelectionScenarioBundleThenCustom(t *testing.T) {
	c := DefaultCatalog()

	sel := c.ToggleService(NewSelection(), "basic")
	sel = c.ToggleService(sel, "blog")
	manualTotal := mustService(t, c, "basic").UnitPrice + mustService(t, c, "blog").UnitPrice
	if got := c.ComputeTotal(sel); got != manualTotal {
		t.Fatalf("custom total = %v, want %v", got, manualTotal)
	}

	sel = c.SelectBundle(sel, "pack-experto")
	bundle, _ := c.BundleByID("pack-experto")
	if got := c.ComputeTotal(sel); got != bundle.FixedPrice {
		t.Fatalf("bundle total = %v, want %v", got, bundle.FixedPrice)
	}

	sel = c.ToggleService(sel, "newsletter")
	if sel.BundleID != "" {
		t.Fatal("manual edit should have cleared bundle mode")
	}
	want := mustService(t, c, "newsletter").UnitPrice
	for _, id := range bundle.IncludedServiceIDs {
		want += mustService(t, c, id).UnitPrice
	}
	if got := c.ComputeTotal(sel); got != want {
		t.Errorf("custom total after leaving bundle = %v, want %v", got, want)
	}
}
