package validation

import (
	"regexp"
	"slices"
	"strings"
	"unicode"

	"go-jobboard-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

var (
	// Letters, spaces and common name punctuation: . ' -
	nameRegex = regexp.MustCompile(`^[\p{L} .'-]+$`)

	// Optional +, then 7-15 digits that may be grouped by spaces, dashes or dots
	phoneRegex = regexp.MustCompile(`^\+?[0-9][0-9 .-]{5,18}[0-9]$`)
)

// New returns a validator with the custom tags registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("valid_name", ValidName)
	_ = v.RegisterValidation("valid_phone", ValidPhone)
	_ = v.RegisterValidation("no_emoji", NoEmoji)
	_ = v.RegisterValidation("not_blank", NotBlank)
	_ = v.RegisterValidation("job_type", oneOf(domain.JobTypes))
	_ = v.RegisterValidation("experience_level", oneOf(domain.ExperienceLevels))
	_ = v.RegisterValidation("app_status", oneOf(domain.ApplicationStatuses))
	_ = v.RegisterValidation("notification_type", oneOf(domain.NotificationTypes))
}

// ValidName rejects digits and most symbols. Empty passes; combine with required.
func ValidName(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return nameRegex.MatchString(val)
}

func ValidPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	if !phoneRegex.MatchString(val) {
		return false
	}
	digits := 0
	for _, r := range val {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= 7 && digits <= 15
}

func NoEmoji(fl validator.FieldLevel) bool {
	for _, r := range fl.Field().String() {
		// supplementary planes are mostly emoji and pictographs
		if r > 0x1F000 {
			return false
		}
		if unicode.In(r, unicode.So, unicode.Sk) {
			return false
		}
	}
	return true
}

// NotBlank fails for strings that are empty after trimming whitespace
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func oneOf(values []string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return slices.Contains(values, fl.Field().String())
	}
}
