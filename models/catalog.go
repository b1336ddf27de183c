package models

// VolumeDiscount lowers a service line's price once the selected quantity
// reaches the threshold.
type VolumeDiscount struct {
	ThresholdQty int     `json:"thresholdQty"`
	Percentage   float64 `json:"percentage"`
}

// Service is a single purchasable line item in the catalog. Catalog entries
// are immutable after startup.
type Service struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Tag         string  `json:"tag,omitempty"`
	UnitPrice   float64 `json:"unitPrice"`
	Popular     bool    `json:"popular,omitempty"`

	// AutoIncluded services are silently part of every selection at zero price.
	AutoIncluded bool `json:"autoIncluded,omitempty"`

	AllowsQuantity bool            `json:"allowsQuantity,omitempty"`
	MinQuantity    int             `json:"minQuantity,omitempty"`
	MaxQuantity    int             `json:"maxQuantity,omitempty"`
	VolumeDiscount *VolumeDiscount `json:"volumeDiscount,omitempty"`
}

// PlanStep is an ordered group of services presented together. Steps are
// traversed sequentially; an implicit summary step follows the last one.
type PlanStep struct {
	Ordinal  int       `json:"ordinal"`
	Title    string    `json:"title"`
	Subtitle string    `json:"subtitle"`
	Services []Service `json:"services"`
}

// Bundle is a fixed-price curated set of services sold as one unit.
type Bundle struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	IncludedServiceIDs []string `json:"servicesIncluded"`
	FixedPrice         float64  `json:"price"`
	Description        string   `json:"description"`
	Savings            float64  `json:"savings"`
}
