package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// fieldOrder fixes the reporting order of field errors so the "first" error
// shown to a user is stable across submissions
var fieldOrder = []string{"name", "email", "phone", "message"}

// FieldErrors maps a lowercase field name to a user-friendly message.
// All failing fields are collected so a user sees every problem at once.
type FieldErrors map[string]string

// First returns the highest-priority field error message, or "" when empty
func (fe FieldErrors) First() string {
	for _, field := range fieldOrder {
		if msg, ok := fe[field]; ok {
			return msg
		}
	}
	return ""
}

// fieldKeys maps struct field names to their wire names
var fieldKeys = map[string]string{
	"Name":    "name",
	"Email":   "email",
	"Phone":   "phone",
	"Message": "message",
}

// requiredMessages are the per-field messages for empty input after trimming
var requiredMessages = map[string]string{
	"name":    "Name is required",
	"email":   "Email is required",
	"phone":   "Phone number is required",
	"message": "Message is required",
}

// formatFieldErrors converts validator.ValidationErrors into FieldErrors.
// Unknown errors get a generic per-field message rather than leaking tags.
func formatFieldErrors(err error) FieldErrors {
	fe := FieldErrors{}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return fe
	}

	for _, e := range validationErrors {
		key, ok := fieldKeys[e.Field()]
		if !ok {
			continue
		}
		// First error per field wins (required before format/length)
		if _, seen := fe[key]; seen {
			continue
		}
		fe[key] = formatSingleError(key, e)
	}

	return fe
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(key string, e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return requiredMessages[key]

	case "min":
		switch key {
		case "name":
			return "Name must be at least 2 characters long"
		case "message":
			return "Message must be at least 10 characters long"
		}
		return fmt.Sprintf("%s must be at least %s characters long", key, e.Param())

	case "email_basic":
		return "Please enter a valid email address"

	case "indian_phone":
		return "Please enter a valid Indian phone number (10 digits starting with 6-9)"

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s is invalid", key)
	}
}
