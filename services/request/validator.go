package request

import (
	"regexp"

	"webmaker/models"
)

// Field length ceilings. Exceeding one is a validation error, never a
// silent truncation.
const (
	maxNameLen         = 100
	maxCompanyLen      = 100
	maxProjectDescLen  = 2000
	maxRequirementsLen = 1000
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^[+]?[\d\s\-()]{9,}$`)
)

// ValidateBudget checks a sanitized budget submission. Every violation is
// collected; nothing short-circuits.
func ValidateBudget(req models.BudgetRequest) models.ValidationResult {
	var errs []string

	errs = append(errs, validateContactFields(req.Name, req.Email, req.Phone)...)

	if len(req.Name) > maxNameLen {
		errs = append(errs, "El nombre supera la longitud máxima permitida.")
	}
	if len(req.Company) > maxCompanyLen {
		errs = append(errs, "El nombre de la empresa supera la longitud máxima permitida.")
	}
	if len(req.ProjectDescription) > maxProjectDescLen {
		errs = append(errs, "La descripción del proyecto supera la longitud máxima permitida.")
	}
	if len(req.AdditionalRequirements) > maxRequirementsLen {
		errs = append(errs, "Los requisitos adicionales superan la longitud máxima permitida.")
	}

	if len(req.SelectedServices) == 0 {
		errs = append(errs, "No se han seleccionado servicios para el presupuesto.")
	}
	if req.TotalPrice <= 0 {
		errs = append(errs, "El precio total no es válido.")
	}
	if !req.Consents.DataProcessing {
		errs = append(errs, "Debes aceptar el procesamiento de datos para enviar la solicitud.")
	}

	return models.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// ValidateContact checks a sanitized contact-form submission.
func ValidateContact(req models.ContactRequest) models.ValidationResult {
	var errs []string

	errs = append(errs, validateContactFields(req.Name, req.Email, req.Phone)...)

	if len(req.Name) > maxNameLen {
		errs = append(errs, "El nombre supera la longitud máxima permitida.")
	}
	if !req.Consents.DataProcessing {
		errs = append(errs, "Debes aceptar el procesamiento de datos para enviar la solicitud.")
	}

	return models.ValidationResult{IsValid: len(errs) == 0, Errors: errs}
}

// validateContactFields covers the identity fields shared by both endpoints.
// Inputs arrive already trimmed by sanitization.
func validateContactFields(name, email, phone string) []string {
	var errs []string

	if name == "" {
		errs = append(errs, "El nombre es obligatorio.")
	}
	if email == "" {
		errs = append(errs, "El email es obligatorio.")
	} else if !emailPattern.MatchString(email) {
		errs = append(errs, "El formato del email no es válido.")
	}
	if phone == "" {
		errs = append(errs, "El teléfono es obligatorio.")
	} else if !phonePattern.MatchString(phone) {
		errs = append(errs, "El formato del teléfono no es válido.")
	}
	return errs
}
