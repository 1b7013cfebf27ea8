package domain

import (
	"context"
	"fmt"
)

// EnquiryRequest carries the raw, untrusted contact form fields as submitted
type EnquiryRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// ProductEnquiryRequest represents a product-page enquiry. Email is optional;
// the backend substitutes the business enquiry address when it is empty.
type ProductEnquiryRequest struct {
	Product string `json:"product" binding:"required"`
	Email   string `json:"email"`
}

// Enquiry is a normalized submission ready for delivery. It is produced once
// by validation (or synthesized for product enquiries) and never mutated.
type Enquiry struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

// SubmitResult is the single result shape returned to the presentation layer.
// Exactly one of Message or Error is set depending on Success.
type SubmitResult struct {
	Success     bool              `json:"success"`
	Message     string            `json:"message,omitempty"`
	Error       string            `json:"error,omitempty"`
	FieldErrors map[string]string `json:"field_errors,omitempty"`
}

// EnquiryUsecase defines the intake operations for enquiry submissions
type EnquiryUsecase interface {
	// SubmitEnquiry validates the raw fields and delivers the enquiry.
	// It never returns an error; every failure mode is folded into the result.
	SubmitEnquiry(ctx context.Context, req *EnquiryRequest) *SubmitResult

	// SubmitProductEnquiry delivers a synthesized product enquiry.
	// Fields are system-generated, so no field validation is applied.
	SubmitProductEnquiry(ctx context.Context, req *ProductEnquiryRequest) *SubmitResult
}

const (
	// ProductEnquiryName is the placeholder customer name on product enquiries
	ProductEnquiryName = "Website Product Enquiry"
	// ProductEnquiryPhone is the placeholder phone on product enquiries
	ProductEnquiryPhone = "Not provided - Website enquiry"
)

const productEnquiryTemplate = `
PRODUCT ENQUIRY DETAILS:
========================

Product of Interest: %[1]s
Enquiry Type: Product Information Request
Source: Website Product Page

Customer Request:
-----------------
The customer is interested in learning more about "%[1]s" and would like:
- Product specifications and features
- Pricing information
- Availability and delivery options
- Technical support if needed

Next Steps:
-----------
Please follow up with the customer to provide:
1. Detailed product information
2. Competitive pricing
3. Delivery timeline
4. Any special offers or bulk discounts

This enquiry was generated from the Deep Indian LED website product section.
`

// NewProductEnquiry synthesizes an Enquiry for a product information request.
// fallbackEmail is used as the reply address when the customer gave none.
func NewProductEnquiry(product, email, fallbackEmail string) Enquiry {
	if email == "" {
		email = fallbackEmail
	}
	return Enquiry{
		Name:    ProductEnquiryName,
		Email:   email,
		Phone:   ProductEnquiryPhone,
		Message: fmt.Sprintf(productEnquiryTemplate, product),
	}
}
