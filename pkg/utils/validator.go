package utils

import (
	"fmt"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// DeadlineMinLead is how far in the future a task deadline must lie.
// Checked once, against the wall clock at validation time.
const DeadlineMinLead = time.Hour

// prohibitedSubstrings are rejected case-insensitively anywhere in
// comment text.
var prohibitedSubstrings = []string{"spam", "ads", "http://", "https://"}

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterValidation("username", validateUsername)
	v.RegisterValidation("password", validatePassword)
	v.RegisterValidation("notblank", validateNotBlank)
	v.RegisterValidation("upperfirst", validateUpperFirst)
	v.RegisterValidation("notallcaps", validateNotAllCaps)
	v.RegisterValidation("clean_text", validateCleanText)
	v.RegisterValidation("min_lead", validateMinLead)
	return v
}

// ValidateStruct runs every tag on the struct and returns the combined
// failures, so a caller sees all violations at once.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}

type ValidationErrorDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// GetValidationErrors flattens a validator error into field/message
// pairs suitable for the response envelope.
func GetValidationErrors(err error) []ValidationErrorDetail {
	var details []ValidationErrorDetail

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []ValidationErrorDetail{{Field: "", Message: err.Error()}}
	}

	for _, fieldErr := range validationErrors {
		details = append(details, ValidationErrorDetail{
			Field:   fieldName(fieldErr),
			Message: messageFor(fieldErr),
		})
	}
	return details
}

func fieldName(fe validator.FieldError) string {
	// StructNamespace looks like "CreateTaskRequest.Title"; keep the
	// leaf and lower the first rune to match the JSON casing.
	name := fe.Field()
	if name == "" {
		return name
	}
	runes := []rune(name)
	runes[0] = unicode.ToLower(runes[0])
	return string(runes)
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "username":
		return "must contain only letters, digits and underscores"
	case "password":
		return "must contain at least one uppercase letter and one digit"
	case "notblank":
		return "cannot be empty or whitespace"
	case "upperfirst":
		return "must start with an uppercase letter"
	case "notallcaps":
		return "must not be all uppercase"
	case "clean_text":
		return "contains prohibited content"
	case "min_lead":
		return "must be at least 1 hour in the future"
	default:
		return fmt.Sprintf("failed on the %s rule", fe.Tag())
	}
}

// ========== Custom rules ==========

func validateUsername(fl validator.FieldLevel) bool {
	return usernamePattern.MatchString(fl.Field().String())
}

func validatePassword(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	hasUpper := false
	hasDigit := false
	for _, r := range value {
		if unicode.IsUpper(r) {
			hasUpper = true
		}
		if unicode.IsDigit(r) {
			hasDigit = true
		}
	}
	return hasUpper && hasDigit
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validateUpperFirst(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	return unicode.IsUpper([]rune(value)[0])
}

// validateNotAllCaps rejects a string whose cased characters are all
// uppercase (at least one cased character present).
func validateNotAllCaps(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	hasCased := false
	for _, r := range value {
		if unicode.IsLower(r) {
			return true
		}
		if unicode.IsUpper(r) {
			hasCased = true
		}
	}
	return !hasCased
}

func validateCleanText(fl validator.FieldLevel) bool {
	lowered := strings.ToLower(fl.Field().String())
	for _, word := range prohibitedSubstrings {
		if strings.Contains(lowered, word) {
			return false
		}
	}
	return true
}

func validateMinLead(fl validator.FieldLevel) bool {
	value, ok := fl.Field().Interface().(time.Time)
	if !ok {
		return false
	}
	return time.Until(value) >= DeadlineMinLead
}
