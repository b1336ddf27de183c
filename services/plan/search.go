package plan

import (
	"strings"
	"unicode"

	"webmaker/models"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// SearchPageSize is the fixed page size of the additional-services lookup.
const SearchPageSize = 6

// foldTransformer strips diacritics so "página" matches "pagina".
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

func fold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		out = s
	}
	return strings.ToLower(out)
}

// SearchAdditional matches the query case- and accent-insensitively against
// name, description and tag of every non-auto-included service not currently
// selected. An empty query returns the full unselected set. The page index
// is clamped so a stale page never points past the end.
func (c *Catalog) SearchAdditional(sel models.Selection, query string, page int) models.SearchResult {
	needle := fold(strings.TrimSpace(query))

	var matches []models.Service
	for _, step := range c.steps {
		for _, svc := range step.Services {
			if _, selected := sel.Services[svc.ID]; selected {
				continue
			}
			if needle == "" || strings.Contains(fold(svc.Name), needle) ||
				strings.Contains(fold(svc.Description), needle) ||
				strings.Contains(fold(svc.Tag), needle) {
				matches = append(matches, svc)
			}
		}
	}

	totalPages := (len(matches) + SearchPageSize - 1) / SearchPageSize
	if page < 0 {
		page = 0
	}
	if totalPages > 0 && page >= totalPages {
		page = totalPages - 1
	}
	if totalPages == 0 {
		page = 0
	}

	start := page * SearchPageSize
	end := start + SearchPageSize
	if start > len(matches) {
		start = len(matches)
	}
	if end > len(matches) {
		end = len(matches)
	}

	return models.SearchResult{
		Query:      query,
		Page:       page,
		PageSize:   SearchPageSize,
		TotalItems: len(matches),
		TotalPages: totalPages,
		Services:   matches[start:end],
	}
}
