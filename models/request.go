package models

// ConsentSet carries the five GDPR/LOPD consent flags collected with every
// submission. Only DataProcessing is mandatory for admission.
type ConsentSet struct {
	DataProcessing bool `json:"dataProcessing"`
	Communications bool `json:"communications"`
	Marketing      bool `json:"marketing"`
	ThirdParties   bool `json:"thirdParties"`
	DataRetention  bool `json:"dataRetention"`
}

// BudgetRequest is one budget submission. Transient: it lives for a single
// request/response cycle and is never persisted.
type BudgetRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`

	SelectedServices map[string]int `json:"selectedServices"`
	SelectedBundle   string         `json:"selectedBundle,omitempty"`
	TotalPrice       float64        `json:"totalPrice"`

	ProjectDescription     string `json:"projectDescription,omitempty"`
	Timeline               string `json:"timeline,omitempty"`
	AdditionalRequirements string `json:"additionalRequirements,omitempty"`

	Consents ConsentSet `json:"consents"`

	// Denormalized mirror of the selection, kept for display-in-email
	// convenience.
	ServicesDetails []ServiceDetail `json:"servicesDetails,omitempty"`
}

// ContactRequest is one contact-form submission.
type ContactRequest struct {
	Name            string     `json:"name"`
	Surname         string     `json:"surname"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	Service         string     `json:"service"`
	Budget          string     `json:"budget"`
	Profession      string     `json:"profession"`
	HasWebsite      string     `json:"hasWebsite"`
	WebsiteDetails  string     `json:"websiteDetails,omitempty"`
	IdeaDescription string     `json:"ideaDescription,omitempty"`
	Consents        ConsentSet `json:"consents"`
}

// ValidationResult collects every rule violation; validation never
// short-circuits on the first failure.
type ValidationResult struct {
	IsValid bool     `json:"isValid"`
	Errors  []string `json:"errors,omitempty"`
}
