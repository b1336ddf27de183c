package plan

import (
	"testing"
)

func catalogServiceCount(c *Catalog) int {
	n := 0
	for _, step := range c.Steps() {
		n += len(step.Services)
	}
	return n
}

func TestSearchEmptyQueryListsAllUnselected(t *testing.T) {
	c := DefaultCatalog()
	result := c.SearchAdditional(NewSelection(), "", 0)

	if result.TotalItems != catalogServiceCount(c) {
		t.Errorf("TotalItems = %d, want %d", result.TotalItems, catalogServiceCount(c))
	}
	if result.PageSize != SearchPageSize {
		t.Errorf("PageSize = %d, want %d", result.PageSize, SearchPageSize)
	}
	if len(result.Services) != SearchPageSize {
		t.Errorf("first page should be full: got %d services", len(result.Services))
	}
}

func TestSearchIsAccentAndCaseInsensitive(t *testing.T) {
	c := DefaultCatalog()
	for _, query := range []string{"pagina", "PÁGINA", "Págína"} {
		result := c.SearchAdditional(NewSelection(), query, 0)
		found := false
		for _, svc := range result.Services {
			if svc.ID == "extra-page" {
				found = true
			}
		}
		if !found {
			t.Errorf("query %q should match extra-page, got %d items", query, result.TotalItems)
		}
	}
}

func TestSearchMatchesTag(t *testing.T) {
	c := DefaultCatalog()
	result := c.SearchAdditional(NewSelection(), "creativos", 0)

	if result.TotalItems != 1 || result.Services[0].ID != "portfolio" {
		t.Errorf("tag search should find portfolio, got %+v", result.Services)
	}
}

func TestSearchExcludesSelectedServices(t *testing.T) {
	c := DefaultCatalog()
	sel := c.ChangeQuantity(NewSelection(), "extra-page", 1)
	result := c.SearchAdditional(sel, "pagina", 0)

	for _, svc := range result.Services {
		if svc.ID == "extra-page" {
			t.Errorf("selected service must not appear in search results")
		}
	}
}

func TestSearchNeverOffersAutoIncluded(t *testing.T) {
	c := DefaultCatalog()
	result := c.SearchAdditional(NewSelection(), "mantenimiento", 0)

	if result.TotalItems != 0 {
		t.Errorf("maintenance is not searchable, got %d items", result.TotalItems)
	}
}

func TestSearchClampsPageIndex(t *testing.T) {
	c := DefaultCatalog()
	total := catalogServiceCount(c)
	wantPages := (total + SearchPageSize - 1) / SearchPageSize

	result := c.SearchAdditional(NewSelection(), "", 99)
	if result.TotalPages != wantPages {
		t.Fatalf("TotalPages = %d, want %d", result.TotalPages, wantPages)
	}
	if result.Page != wantPages-1 {
		t.Errorf("out-of-range page should clamp to last page %d, got %d", wantPages-1, result.Page)
	}
	wantLast := total - (wantPages-1)*SearchPageSize
	if len(result.Services) != wantLast {
		t.Errorf("last page should hold %d services, got %d", wantLast, len(result.Services))
	}

	negative := c.SearchAdditional(NewSelection(), "", -3)
	if negative.Page != 0 {
		t.Errorf("negative page should clamp to 0, got %d", negative.Page)
	}
}

func TestSearchNoMatches(t *testing.T) {
	c := DefaultCatalog()
	result := c.SearchAdditional(NewSelection(), "blockchain", 2)

	if result.TotalItems != 0 || result.TotalPages != 0 || result.Page != 0 {
		t.Errorf("no-match search should be empty at page 0: %+v", result)
	}
	if len(result.Services) != 0 {
		t.Errorf("no-match search returned services: %+v", result.Services)
	}
}
