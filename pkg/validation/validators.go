package validation

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// local@domain.tld shape: non-space runs around @ and a dot in the domain.
	// Deliberately looser than the validator's built-in "email" tag, which
	// rejects addresses the relay accepts.
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	// Indian mobile: optional +91/91 prefix, 10 digits, first digit 6-9
	indianPhoneRegex = regexp.MustCompile(`^(\+91|91)?[6-9][0-9]{9}$`)

	whitespaceRegex = regexp.MustCompile(`\s+`)
)

// New returns a validator instance with the custom enquiry tags registered
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("email_basic", EmailBasic)
	_ = v.RegisterValidation("indian_phone", IndianPhone)
}

// EmailBasic validates the simple local@domain.tld address shape
func EmailBasic(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return emailRegex.MatchString(val)
}

// IndianPhone validates an Indian mobile number structure
func IndianPhone(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true
	}
	return indianPhoneRegex.MatchString(val)
}
