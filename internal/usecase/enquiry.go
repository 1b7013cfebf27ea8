package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"deepindian-led-backend/internal/domain"
	"deepindian-led-backend/pkg/notify"
	"deepindian-led-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

// User-facing result strings. The failure messages name the fallback
// contacts so a customer can still reach the business when the relay is down.
const (
	contactSuccessMessage = "Thank you for your inquiry! We've received your message and will get back to you within 24 hours. You'll also receive an SMS confirmation shortly."
	contactFailureMessage = "Failed to send message. Please try again or contact us directly at work@deepindian.in or +91 80528 38300"
	unexpectedErrorMsg    = "An unexpected error occurred. Please try again."

	productSuccessMessage   = "Thank you for your interest in %s! Our team will contact you soon with detailed information and pricing. You'll also receive SMS updates."
	productFailureMessage   = "Failed to submit enquiry. Please use the contact form below or call us directly at +91 80508 38300."
	productUnexpectedErrMsg = "An unexpected error occurred. Please try the contact form instead."
)

type enquiryUsecase struct {
	email        notify.Notifier
	validate     *validator.Validate
	enquiryEmail string
}

// NewEnquiryUsecase creates the intake orchestrator. email is the primary
// delivery channel; the secondary SMS channel hangs off the email notifier
// and never influences the result here.
func NewEnquiryUsecase(email notify.Notifier, validate *validator.Validate, enquiryEmail string) domain.EnquiryUsecase {
	return &enquiryUsecase{
		email:        email,
		validate:     validate,
		enquiryEmail: enquiryEmail,
	}
}

// SubmitEnquiry re-validates the raw fields server-side (the client-side
// check is UX only) and delivers the normalized enquiry. Every failure mode,
// including panics from the delivery path, is folded into the result.
func (uc *enquiryUsecase) SubmitEnquiry(ctx context.Context, req *domain.EnquiryRequest) (result *domain.SubmitResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("enquiry submission panicked", "panic", r)
			result = &domain.SubmitResult{Success: false, Error: unexpectedErrorMsg}
		}
	}()

	enq, fieldErrs := validation.ValidateEnquiry(uc.validate, req)
	if len(fieldErrs) > 0 {
		return &domain.SubmitResult{
			Success:     false,
			Error:       fieldErrs.First(),
			FieldErrors: fieldErrs,
		}
	}

	if err := uc.email.Deliver(ctx, enq); err != nil {
		slog.Error("enquiry delivery failed", "email", enq.Email, "error", err)
		return &domain.SubmitResult{Success: false, Error: contactFailureMessage}
	}

	return &domain.SubmitResult{Success: true, Message: contactSuccessMessage}
}

// SubmitProductEnquiry delivers a synthesized enquiry for a product
// information request. The fields are system-generated, so the field
// validation pass is skipped.
func (uc *enquiryUsecase) SubmitProductEnquiry(ctx context.Context, req *domain.ProductEnquiryRequest) (result *domain.SubmitResult) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("product enquiry submission panicked", "panic", r)
			result = &domain.SubmitResult{Success: false, Error: productUnexpectedErrMsg}
		}
	}()

	product := strings.TrimSpace(req.Product)
	enq := domain.NewProductEnquiry(product, strings.TrimSpace(req.Email), uc.enquiryEmail)

	if err := uc.email.Deliver(ctx, enq); err != nil {
		slog.Error("product enquiry delivery failed", "product", product, "error", err)
		return &domain.SubmitResult{Success: false, Error: productFailureMessage}
	}

	return &domain.SubmitResult{
		Success: true,
		Message: fmt.Sprintf(productSuccessMessage, product),
	}
}
