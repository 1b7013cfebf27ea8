package usecase_test

import (
	"context"
	"errors"
	"testing"

	"deepindian-led-backend/internal/domain"
	"deepindian-led-backend/internal/usecase"
	"deepindian-led-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

const testEnquiryEmail = "enquiry@deepindian.in"

// MockNotifier stands in for the email delivery chain
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Deliver(ctx context.Context, enq domain.Enquiry) error {
	return m.Called(ctx, enq).Error(0)
}

// panicNotifier simulates an unanticipated failure inside the delivery path
type panicNotifier struct{}

func (panicNotifier) Deliver(ctx context.Context, enq domain.Enquiry) error {
	panic("relay client blew up")
}

func validRequest() *domain.EnquiryRequest {
	return &domain.EnquiryRequest{
		Name:    "Jo",
		Email:   "JO@Test.COM",
		Phone:   "9876543210",
		Message: "Need bulbs for office",
	}
}

func TestSubmitEnquiry(t *testing.T) {
	validate := validation.New()

	t.Run("Valid submission delivers once and succeeds", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("Deliver", mock.Anything, mock.MatchedBy(func(enq domain.Enquiry) bool {
			return enq.Email == "jo@test.com" && enq.Phone == "9876543210"
		})).Return(nil).Once()

		uc := usecase.NewEnquiryUsecase(notifier, validate, testEnquiryEmail)
		result := uc.SubmitEnquiry(context.Background(), validRequest())

		assert.True(t, result.Success)
		assert.Contains(t, result.Message, "Thank you for your inquiry")
		assert.Empty(t, result.Error)
		notifier.AssertExpectations(t)
	})

	t.Run("Validation failure makes no delivery call", func(t *testing.T) {
		notifier := new(MockNotifier)
		uc := usecase.NewEnquiryUsecase(notifier, validate, testEnquiryEmail)

		req := validRequest()
		req.Name = ""
		result := uc.SubmitEnquiry(context.Background(), req)

		assert.False(t, result.Success)
		assert.Equal(t, "Name is required", result.Error)
		assert.Contains(t, result.FieldErrors, "name")
		notifier.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
	})

	t.Run("All invalid fields are reported together", func(t *testing.T) {
		notifier := new(MockNotifier)
		uc := usecase.NewEnquiryUsecase(notifier, validate, testEnquiryEmail)

		result := uc.SubmitEnquiry(context.Background(), &domain.EnquiryRequest{
			Name:    "J",
			Email:   "bad",
			Phone:   "123",
			Message: "short",
		})

		assert.False(t, result.Success)
		assert.Len(t, result.FieldErrors, 4)
		notifier.AssertNotCalled(t, "Deliver", mock.Anything, mock.Anything)
	})

	t.Run("Relay failure surfaces the fallback contact", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("Deliver", mock.Anything, mock.Anything).Return(errors.New("relay down")).Once()

		uc := usecase.NewEnquiryUsecase(notifier, validate, testEnquiryEmail)
		result := uc.SubmitEnquiry(context.Background(), validRequest())

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "work@deepindian.in")
		assert.Contains(t, result.Error, "+91 80528 38300")
		assert.Empty(t, result.FieldErrors)
		notifier.AssertExpectations(t)
	})

	t.Run("Panic in delivery becomes a generic failure", func(t *testing.T) {
		uc := usecase.NewEnquiryUsecase(panicNotifier{}, validate, testEnquiryEmail)
		result := uc.SubmitEnquiry(context.Background(), validRequest())

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "unexpected error")
	})
}

func TestSubmitProductEnquiry(t *testing.T) {
	validate := validation.New()

	t.Run("Missing email falls back to the enquiry address", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("Deliver", mock.Anything, mock.MatchedBy(func(enq domain.Enquiry) bool {
			return enq.Email == testEnquiryEmail &&
				enq.Name == domain.ProductEnquiryName &&
				enq.Phone == domain.ProductEnquiryPhone
		})).Return(nil).Once()

		uc := usecase.NewEnquiryUsecase(notifier, validate, testEnquiryEmail)
		result := uc.SubmitProductEnquiry(context.Background(), &domain.ProductEnquiryRequest{
			Product: "Smart LED Bulbs",
		})

		assert.True(t, result.Success)
		assert.Contains(t, result.Message, "Smart LED Bulbs")
		notifier.AssertExpectations(t)
	})

	t.Run("Templated message embeds the product name", func(t *testing.T) {
		notifier := new(MockNotifier)
		var delivered domain.Enquiry
		notifier.On("Deliver", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			delivered = args.Get(1).(domain.Enquiry)
		}).Return(nil).Once()

		uc := usecase.NewEnquiryUsecase(notifier, validate, testEnquiryEmail)
		uc.SubmitProductEnquiry(context.Background(), &domain.ProductEnquiryRequest{
			Product: "Smart LED Bulbs",
			Email:   "buyer@example.com",
		})

		assert.Equal(t, "buyer@example.com", delivered.Email)
		assert.Contains(t, delivered.Message, `"Smart LED Bulbs"`)
		assert.Contains(t, delivered.Message, "PRODUCT ENQUIRY DETAILS")
	})

	t.Run("Relay failure surfaces the fallback phone", func(t *testing.T) {
		notifier := new(MockNotifier)
		notifier.On("Deliver", mock.Anything, mock.Anything).Return(errors.New("relay down")).Once()

		uc := usecase.NewEnquiryUsecase(notifier, validate, testEnquiryEmail)
		result := uc.SubmitProductEnquiry(context.Background(), &domain.ProductEnquiryRequest{
			Product: "Smart LED Bulbs",
		})

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "+91 80508 38300")
	})
}
