package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown in error messages.
var FieldLabels = map[string]string{
	"Email":       "Email",
	"Password":    "Password",
	"Role":        "Role",
	"Title":       "Title",
	"Description": "Description",
	"Location":    "Location",
	"SalaryMin":   "Minimum salary",
	"SalaryMax":   "Maximum salary",
	"SkillIDs":    "Skills",
	"Name":        "Name",
	"FileURL":     "File URL",
	"CVID":        "CV",
	"CoverLetter": "Cover letter",
	"CompanyName": "Company name",
	"Website":     "Website",
	"Industry":    "Industry",
	"Headline":    "Headline",
	"Bio":         "Bio",
	"FullName":    "Full name",
	"Phone":       "Phone",
	"Institution": "Institution",
	"Degree":      "Degree",
	"StartDate":   "Start date",
	"EndDate":     "End date",
	"Links":       "Links",
}

// FormatErrors converts validator.ValidationErrors into a field-level
// message list suitable for the API error envelope.
func FormatErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := fieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return fmt.Sprintf("%s must be a valid email address", label)
	case "url":
		return fmt.Sprintf("%s must be a valid URL", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at least %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, e.Param())
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s must be at most %s characters", label, e.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, strings.ReplaceAll(e.Param(), " ", ", "))
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", label, e.Param())
	case "gtefield":
		return fmt.Sprintf("%s must not be less than %s", label, fieldLabel(e.Param()))
	default:
		return fmt.Sprintf("%s failed validation (%s)", label, e.Tag())
	}
}

func fieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return spaceCamelCase(fieldName)
}

// spaceCamelCase converts CamelCase identifiers to spaced words for fields
// that have no explicit label.
func spaceCamelCase(s string) string {
	var b strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteRune(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}
