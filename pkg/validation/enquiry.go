package validation

import (
	"strings"

	"deepindian-led-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// enquiryFields mirrors domain.Enquiry with the validation rules attached.
// Validation runs on the normalized copy, never on raw input.
type enquiryFields struct {
	Name    string `validate:"required,min=2"`
	Email   string `validate:"required,email_basic"`
	Phone   string `validate:"required,indian_phone"`
	Message string `validate:"required,min=10"`
}

// NormalizeEnquiry produces the normalized copy of a raw submission:
// name and message trimmed, email trimmed and lowercased, phone stripped
// of all whitespace. The request itself is not mutated.
func NormalizeEnquiry(req *domain.EnquiryRequest) domain.Enquiry {
	return domain.Enquiry{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:   whitespaceRegex.ReplaceAllString(strings.TrimSpace(req.Phone), ""),
		Message: strings.TrimSpace(req.Message),
	}
}

// ValidateEnquiry normalizes and validates a raw submission. On success the
// returned FieldErrors is empty and the Enquiry is safe to deliver. All
// failing fields are reported together.
func ValidateEnquiry(v *validator.Validate, req *domain.EnquiryRequest) (domain.Enquiry, FieldErrors) {
	enq := NormalizeEnquiry(req)

	fields := enquiryFields(enq)
	if err := v.Struct(fields); err != nil {
		return domain.Enquiry{}, formatFieldErrors(err)
	}

	return enq, FieldErrors{}
}
