package models

import "time"

// Selection is the user's in-progress configuration. BundleID non-empty
// means bundle mode: the services map mirrors the bundle's included set plus
// auto-included services, each at quantity 1, and the bundle's fixed price
// wins. Any manual edit clears bundle mode.
type Selection struct {
	Services map[string]int `json:"selectedServices"`
	BundleID string         `json:"selectedBundle,omitempty"`
}

// Clone returns a deep copy, keeping engine operations free of shared maps.
func (s Selection) Clone() Selection {
	services := make(map[string]int, len(s.Services))
	for id, qty := range s.Services {
		services[id] = qty
	}
	return Selection{Services: services, BundleID: s.BundleID}
}

// PlanSession holds one visitor's wizard state between requests.
type PlanSession struct {
	ID          string    `json:"sessionId"`
	Selection   Selection `json:"selection"`
	CurrentStep int       `json:"currentStep"`

	// Search state for the additional-services lookup; the page index is
	// reset whenever the query or the selection changes.
	SearchQuery string `json:"searchQuery,omitempty"`
	SearchPage  int    `json:"searchPage,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ServiceDetail is a denormalized selection line used by summaries and
// outbound emails.
type ServiceDetail struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Tag         string  `json:"tag,omitempty"`
	UnitPrice   float64 `json:"price"`
	Quantity    int     `json:"quantity"`
	LineTotal   float64 `json:"lineTotal"`
}

// Recommendation is an upsell suggestion; accepting one is a plain toggle.
type Recommendation struct {
	ServiceID string  `json:"service"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Reason    string  `json:"reason"`
}

// SearchResult is one page of the additional-services lookup.
type SearchResult struct {
	Query      string    `json:"query"`
	Page       int       `json:"page"`
	PageSize   int       `json:"pageSize"`
	TotalItems int       `json:"totalItems"`
	TotalPages int       `json:"totalPages"`
	Services   []Service `json:"services"`
}
