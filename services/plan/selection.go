package plan

import "webmaker/models"

// NewSelection returns the empty CUSTOM-mode selection.
func NewSelection() models.Selection {
	return models.Selection{Services: make(map[string]int)}
}

// SelectBundle replaces the selection wholesale with the bundle's included
// set plus auto-included services, each at quantity 1. Unknown bundle ids
// are a no-op. Selecting a bundle twice just produces a fresh snapshot.
func (c *Catalog) SelectBundle(sel models.Selection, bundleID string) models.Selection {
	bundle, ok := c.BundleByID(bundleID)
	if !ok {
		return sel
	}
	next := models.Selection{
		Services: make(map[string]int, len(bundle.IncludedServiceIDs)),
		BundleID: bundle.ID,
	}
	for _, id := range bundle.IncludedServiceIDs {
		next.Services[id] = 1
	}
	c.applyAutoIncluded(&next)
	return next
}

// ToggleService flips a service's presence. Any manual edit leaves bundle
// mode. Step-1 services are singular-choice: picking a new project type
// unsets the previous one first.
func (c *Catalog) ToggleService(sel models.Selection, serviceID string) models.Selection {
	svc, ok := c.ServiceByID(serviceID)
	if !ok || svc.AutoIncluded {
		return sel
	}
	next := sel.Clone()
	next.BundleID = ""

	if _, selected := next.Services[serviceID]; selected {
		delete(next.Services, serviceID)
	} else {
		if c.IsFirstStep(serviceID) {
			for id := range next.Services {
				if c.IsFirstStep(id) {
					delete(next.Services, id)
				}
			}
		}
		next.Services[serviceID] = 1
	}
	c.applyAutoIncluded(&next)
	return next
}

// ChangeQuantity adjusts a quantity-enabled service by delta, clamped to the
// service's declared bounds. Hitting zero removes the entry; quantities
// below MinQuantity are only reachable via removal. Clears bundle mode.
func (c *Catalog) ChangeQuantity(sel models.Selection, serviceID string, delta int) models.Selection {
	svc, ok := c.ServiceByID(serviceID)
	if !ok || svc.AutoIncluded || !svc.AllowsQuantity {
		return sel
	}
	next := sel.Clone()
	next.BundleID = ""

	qty := next.Services[serviceID] + delta
	if qty <= 0 {
		delete(next.Services, serviceID)
	} else {
		if qty < svc.MinQuantity {
			qty = svc.MinQuantity
		}
		if svc.MaxQuantity > 0 && qty > svc.MaxQuantity {
			qty = svc.MaxQuantity
		}
		next.Services[serviceID] = qty
	}
	c.applyAutoIncluded(&next)
	return next
}

// ComputeTotal prices the selection. Bundle mode returns the fixed price.
// Custom mode sums unitPrice × quantity over non-auto-included entries,
// applying a service's volume discount once its threshold is reached.
// Auto-included entries contribute zero regardless of listed price.
func (c *Catalog) ComputeTotal(sel models.Selection) float64 {
	if sel.BundleID != "" {
		if bundle, ok := c.BundleByID(sel.BundleID); ok {
			return bundle.FixedPrice
		}
		return 0
	}
	total := 0.0
	for id, qty := range sel.Services {
		svc, ok := c.ServiceByID(id)
		if !ok || svc.AutoIncluded {
			continue
		}
		line := svc.UnitPrice * float64(qty)
		if vd := svc.VolumeDiscount; vd != nil && qty >= vd.ThresholdQty {
			line *= 1 - vd.Percentage/100
		}
		total += line
	}
	return total
}

// SelectedDetails expands the selection into denormalized display lines,
// auto-included services last. Bundle mode shows lines without prices in the
// UI, but the detail still carries the catalog price for the emails.
func (c *Catalog) SelectedDetails(sel models.Selection) []models.ServiceDetail {
	var details []models.ServiceDetail
	appendDetail := func(svc models.Service, qty int) {
		line := svc.UnitPrice * float64(qty)
		if svc.AutoIncluded {
			line = 0
		} else if vd := svc.VolumeDiscount; vd != nil && qty >= vd.ThresholdQty {
			line *= 1 - vd.Percentage/100
		}
		details = append(details, models.ServiceDetail{
			ID:          svc.ID,
			Name:        svc.Name,
			Description: svc.Description,
			Tag:         svc.Tag,
			UnitPrice:   svc.UnitPrice,
			Quantity:    qty,
			LineTotal:   line,
		})
	}
	// Walk steps in catalog order so details come out stable.
	for _, step := range c.steps {
		for _, svc := range step.Services {
			if qty, ok := sel.Services[svc.ID]; ok {
				appendDetail(svc, qty)
			}
		}
	}
	for _, svc := range c.autoIncluded {
		if qty, ok := sel.Services[svc.ID]; ok {
			appendDetail(svc, qty)
		}
	}
	return details
}

// selectionSize counts manually chosen services, ignoring the auto-included
// riders.
func (c *Catalog) selectionSize(sel models.Selection) int {
	n := 0
	for id := range sel.Services {
		if svc, ok := c.ServiceByID(id); ok && !svc.AutoIncluded {
			n++
		}
	}
	return n
}

// applyAutoIncluded keeps the auto-inclusion closure: whenever anything is
// selected, every auto-included service is present at quantity 1. An empty
// selection stays empty.
func (c *Catalog) applyAutoIncluded(sel *models.Selection) {
	if c.selectionSize(*sel) == 0 {
		for _, svc := range c.autoIncluded {
			delete(sel.Services, svc.ID)
		}
		return
	}
	for _, svc := range c.autoIncluded {
		if _, ok := sel.Services[svc.ID]; !ok {
			sel.Services[svc.ID] = 1
		}
	}
}
