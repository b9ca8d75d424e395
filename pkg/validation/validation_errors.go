package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to labels shown to API clients
var FieldLabels = map[string]string{
	// Auth
	"Email":                "Email",
	"Password":             "Password",
	"PasswordConfirmation": "Password confirmation",
	"Name":                 "Name",
	"CompanyName":          "Company name",
	"ContactName":          "Contact name",
	"Phone":                "Phone number",

	// Profile
	"FirstName":         "First name",
	"LastName":          "Last name",
	"CountryOfOrigin":   "Country of origin",
	"TargetCountry":     "Target country",
	"PrimaryLanguage":   "Primary language",
	"SecondaryLanguage": "Secondary language",
	"CurrentPosition":   "Current position",
	"DesiredPosition":   "Desired position",
	"StartDate":         "Start date",
	"EndDate":           "End date",
	"FieldOfStudy":      "Field of study",

	// Jobs
	"LanguageRequirement": "Language requirement",
	"EmploymentType":      "Employment type",

	// CV and reviews
	"TemplateID":      "Template",
	"CandidateUserID": "Candidate",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "gt":
		return fmt.Sprintf("%s: must be greater than %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, strings.ReplaceAll(param, " ", ", "))
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "datetime":
		return fmt.Sprintf("%s: must be a date formatted as YYYY-MM-DD", label)
	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces and common punctuation (. ' - /) are allowed", label)
	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-15 digits, optional +)", label)
	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or special symbols", label)
	case "profile_status":
		return fmt.Sprintf("%s: must be one of: new, reviewed, eligible", label)
	case "eqfield":
		return fmt.Sprintf("%s: must match %s", label, strings.ToLower(getFieldLabel(param)))
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
