package request

import (
	"regexp"
	"strings"

	"webmaker/models"
)

var (
	angleBrackets = regexp.MustCompile(`[<>]`)
	jsProtocol    = regexp.MustCompile(`(?i)javascript:`)
	eventHandlers = regexp.MustCompile(`(?i)on\w+=`)
)

// sanitizeText neutralizes markup injection in free-text fields. It never
// truncates: over-length input is left for validation to reject, so the two
// stages cannot silently disagree about a field's content.
func sanitizeText(input string) string {
	out := angleBrackets.ReplaceAllString(input, "")
	out = jsProtocol.ReplaceAllString(out, "")
	out = eventHandlers.ReplaceAllString(out, "")
	return strings.TrimSpace(out)
}

func sanitizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// SanitizeBudget returns the cleaned copy that gets validated and, when
// valid, flows into the outbound notifications.
func SanitizeBudget(req models.BudgetRequest) models.BudgetRequest {
	req.Name = sanitizeText(req.Name)
	req.Email = sanitizeEmail(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Company = sanitizeText(req.Company)
	req.ProjectDescription = sanitizeText(req.ProjectDescription)
	req.Timeline = sanitizeText(req.Timeline)
	req.AdditionalRequirements = sanitizeText(req.AdditionalRequirements)
	for i := range req.ServicesDetails {
		req.ServicesDetails[i].Name = sanitizeText(req.ServicesDetails[i].Name)
		req.ServicesDetails[i].Description = sanitizeText(req.ServicesDetails[i].Description)
	}
	return req
}

// SanitizeContact returns the cleaned copy of a contact-form submission.
func SanitizeContact(req models.ContactRequest) models.ContactRequest {
	req.Name = sanitizeText(req.Name)
	req.Surname = sanitizeText(req.Surname)
	req.Email = sanitizeEmail(req.Email)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Service = sanitizeText(req.Service)
	req.Budget = sanitizeText(req.Budget)
	req.Profession = sanitizeText(req.Profession)
	req.HasWebsite = sanitizeText(req.HasWebsite)
	req.WebsiteDetails = sanitizeText(req.WebsiteDetails)
	req.IdeaDescription = sanitizeText(req.IdeaDescription)
	return req
}
