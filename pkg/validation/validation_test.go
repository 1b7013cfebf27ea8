package validation_test

import (
	"testing"

	"deepindian-led-backend/internal/domain"
	"deepindian-led-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func validRequest() *domain.EnquiryRequest {
	return &domain.EnquiryRequest{
		Name:    "Jo",
		Email:   "JO@Test.COM",
		Phone:   "9876543210",
		Message: "Need bulbs for office",
	}
}

func TestValidateEnquiryNormalization(t *testing.T) {
	v := validation.New()

	t.Run("Valid submission is normalized", func(t *testing.T) {
		enq, fieldErrs := validation.ValidateEnquiry(v, validRequest())
		assert.Empty(t, fieldErrs)
		assert.Equal(t, "Jo", enq.Name)
		assert.Equal(t, "jo@test.com", enq.Email)
		assert.Equal(t, "9876543210", enq.Phone)
		assert.Equal(t, "Need bulbs for office", enq.Message)
	})

	t.Run("Surrounding whitespace is trimmed", func(t *testing.T) {
		req := validRequest()
		req.Name = "  Jo  "
		req.Message = "  Need bulbs for office  "
		enq, fieldErrs := validation.ValidateEnquiry(v, req)
		assert.Empty(t, fieldErrs)
		assert.Equal(t, "Jo", enq.Name)
		assert.Equal(t, "Need bulbs for office", enq.Message)
	})

	t.Run("Phone whitespace is stripped before validation", func(t *testing.T) {
		req := validRequest()
		req.Phone = " 98765 43210 "
		enq, fieldErrs := validation.ValidateEnquiry(v, req)
		assert.Empty(t, fieldErrs)
		assert.Equal(t, "9876543210", enq.Phone)
	})
}

func TestValidateEnquiryRequiredFields(t *testing.T) {
	v := validation.New()

	cases := []struct {
		name  string
		mut   func(*domain.EnquiryRequest)
		field string
	}{
		{"Empty name", func(r *domain.EnquiryRequest) { r.Name = "" }, "name"},
		{"Whitespace name", func(r *domain.EnquiryRequest) { r.Name = "   " }, "name"},
		{"Empty email", func(r *domain.EnquiryRequest) { r.Email = "" }, "email"},
		{"Whitespace email", func(r *domain.EnquiryRequest) { r.Email = " \t " }, "email"},
		{"Empty phone", func(r *domain.EnquiryRequest) { r.Phone = "" }, "phone"},
		{"Whitespace phone", func(r *domain.EnquiryRequest) { r.Phone = "   " }, "phone"},
		{"Empty message", func(r *domain.EnquiryRequest) { r.Message = "" }, "message"},
		{"Whitespace message", func(r *domain.EnquiryRequest) { r.Message = "  \n " }, "message"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRequest()
			tc.mut(req)
			_, fieldErrs := validation.ValidateEnquiry(v, req)
			assert.Len(t, fieldErrs, 1)
			assert.Contains(t, fieldErrs[tc.field], "required")
		})
	}
}

func TestValidateEnquiryPhone(t *testing.T) {
	v := validation.New()

	accepted := []string{
		"9876543210",
		"6123456789",
		"7000000000",
		"8999999999",
		"+919876543210",
		"919876543210",
	}
	for _, phone := range accepted {
		t.Run("Accepts "+phone, func(t *testing.T) {
			req := validRequest()
			req.Phone = phone
			_, fieldErrs := validation.ValidateEnquiry(v, req)
			assert.Empty(t, fieldErrs)
		})
	}

	rejected := []string{
		"5876543210",   // first digit below 6
		"+11234567890", // wrong country prefix
		"987654321",    // 9 digits
		"98765432100",  // 11 digits
		"98765abc10",   // non-digit
	}
	for _, phone := range rejected {
		t.Run("Rejects "+phone, func(t *testing.T) {
			req := validRequest()
			req.Phone = phone
			_, fieldErrs := validation.ValidateEnquiry(v, req)
			assert.Contains(t, fieldErrs["phone"], "Indian phone number")
		})
	}
}

func TestValidateEnquiryEmail(t *testing.T) {
	v := validation.New()

	t.Run("Accepts a@b.c", func(t *testing.T) {
		req := validRequest()
		req.Email = "a@b.c"
		enq, fieldErrs := validation.ValidateEnquiry(v, req)
		assert.Empty(t, fieldErrs)
		assert.Equal(t, "a@b.c", enq.Email)
	})

	t.Run("Uppercase normalizes to lowercase", func(t *testing.T) {
		req := validRequest()
		req.Email = "A@B.COM"
		enq, fieldErrs := validation.ValidateEnquiry(v, req)
		assert.Empty(t, fieldErrs)
		assert.Equal(t, "a@b.com", enq.Email)
	})

	rejected := []string{
		"plainaddress",  // no @
		"user@domain",   // no dot after @
		"user name@x.y", // space in local part
		"@x.y",          // empty local part
	}
	for _, email := range rejected {
		t.Run("Rejects "+email, func(t *testing.T) {
			req := validRequest()
			req.Email = email
			_, fieldErrs := validation.ValidateEnquiry(v, req)
			assert.Contains(t, fieldErrs["email"], "valid email")
		})
	}
}

func TestValidateEnquiryLengths(t *testing.T) {
	v := validation.New()

	t.Run("One-character name is rejected", func(t *testing.T) {
		req := validRequest()
		req.Name = "J"
		_, fieldErrs := validation.ValidateEnquiry(v, req)
		assert.Contains(t, fieldErrs["name"], "at least 2 characters")
	})

	t.Run("Two-character name is accepted", func(t *testing.T) {
		req := validRequest()
		req.Name = "Jo"
		_, fieldErrs := validation.ValidateEnquiry(v, req)
		assert.Empty(t, fieldErrs)
	})

	t.Run("Nine-character message is rejected", func(t *testing.T) {
		req := validRequest()
		req.Message = "123456789"
		_, fieldErrs := validation.ValidateEnquiry(v, req)
		assert.Contains(t, fieldErrs["message"], "at least 10 characters")
	})

	t.Run("Ten-character message is accepted", func(t *testing.T) {
		req := validRequest()
		req.Message = "1234567890"
		_, fieldErrs := validation.ValidateEnquiry(v, req)
		assert.Empty(t, fieldErrs)
	})
}

func TestValidateEnquiryCollectsAllErrors(t *testing.T) {
	v := validation.New()

	req := &domain.EnquiryRequest{
		Name:    "J",
		Email:   "not-an-email",
		Phone:   "12345",
		Message: "short",
	}
	_, fieldErrs := validation.ValidateEnquiry(v, req)

	assert.Len(t, fieldErrs, 4)
	assert.Contains(t, fieldErrs, "name")
	assert.Contains(t, fieldErrs, "email")
	assert.Contains(t, fieldErrs, "phone")
	assert.Contains(t, fieldErrs, "message")

	// First error follows the form's field order
	assert.Equal(t, fieldErrs["name"], fieldErrs.First())
}
