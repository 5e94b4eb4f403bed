package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown to users
var FieldLabels = map[string]string{
	// Candidate
	"Name":              "Name",
	"Email":             "Email",
	"Phone":             "Phone number",
	"Skills":            "Skills",
	"PreferredLocation": "Preferred location",
	"ExpectedSalary":    "Expected salary",

	// Experience and education
	"Company": "Company",
	"Degree":  "Degree",
	"School":  "School",
	"Year":    "Graduation year",

	// Review
	"Rating":          "Rating",
	"Pros":            "Pros",
	"Cons":            "Cons",
	"OverallFeedback": "Overall feedback",
	"EmployeeTitle":   "Job title",
	"WorkDuration":    "Time at company",

	// Job
	"Title":           "Title",
	"CompanyID":       "Company",
	"Type":            "Job type",
	"ExperienceLevel": "Experience level",
	"Min":             "Minimum salary",
	"Max":             "Maximum salary",
	"Location":        "Location",

	// Notification and application
	"Message": "Message",
	"Status":  "Status",
}

// FormatValidationErrors turns validator errors into one message per field
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

// Message joins the formatted errors into a single line
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)

	case "min":
		switch e.Kind().String() {
		case "string":
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		case "slice":
			return fmt.Sprintf("%s: must have at least %s entries", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)

	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)

	case "gte":
		return fmt.Sprintf("%s: must be %s or more", label, param)

	case "gtefield":
		return fmt.Sprintf("%s: must not be less than %s", label, getFieldLabel(param))

	case "len":
		return fmt.Sprintf("%s: must be exactly %s characters", label, param)

	case "numeric":
		return fmt.Sprintf("%s: must be a number", label)

	case "email":
		return fmt.Sprintf("%s: invalid email format", label)

	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces and . ' - are allowed", label)

	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone number (7-15 digits, optional +)", label)

	case "no_emoji":
		return fmt.Sprintf("%s: must not contain emoji or symbols", label)

	case "not_blank":
		return fmt.Sprintf("%s: must not be blank", label)

	case "job_type", "experience_level", "app_status", "notification_type":
		return fmt.Sprintf("%s: unknown value %q", label, e.Value())

	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

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
