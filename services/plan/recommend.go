package plan

import "webmaker/models"

const maxRecommendations = 2

// Recommendations evaluates the upsell rules in fixed order and returns at
// most two suggestions. A rule never proposes an already-selected service,
// and nothing here mutates the selection; accepting a suggestion is a plain
// ToggleService on the caller's side.
func (c *Catalog) Recommendations(sel models.Selection) []models.Recommendation {
	selected := func(id string) bool {
		_, ok := sel.Services[id]
		return ok
	}

	var recs []models.Recommendation
	add := func(id, reason string) {
		if len(recs) >= maxRecommendations || selected(id) {
			return
		}
		svc, ok := c.ServiceByID(id)
		if !ok {
			return
		}
		recs = append(recs, models.Recommendation{
			ServiceID: svc.ID,
			Name:      svc.Name,
			UnitPrice: svc.UnitPrice,
			Reason:    reason,
		})
	}

	if !selected("chat") && !selected("whatsapp-integration") {
		add("chat", "para atención inmediata al cliente")
	}
	if !selected("seo-basic") {
		add("seo-basic", "para que te encuentren en Google")
	}
	if !selected("backup") && c.selectionSize(sel) > 2 {
		add("backup", "para proteger tu inversión")
	}
	return recs
}
