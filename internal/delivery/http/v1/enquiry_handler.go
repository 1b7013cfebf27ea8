package v1

import (
	"net/http"

	"deepindian-led-backend/internal/delivery/http/response"
	"deepindian-led-backend/internal/domain"
	"deepindian-led-backend/pkg/apperror"

	"github.com/gin-gonic/gin"
)

type EnquiryHandler struct {
	enquiryUC domain.EnquiryUsecase
}

// NewEnquiryHandler registers the enquiry routes (public, no auth required)
func NewEnquiryHandler(public *gin.RouterGroup, enquiryUC domain.EnquiryUsecase) {
	handler := &EnquiryHandler{
		enquiryUC: enquiryUC,
	}

	// Public Routes - NO authentication required
	public.POST("/enquiries", handler.SubmitEnquiry)
	public.POST("/enquiries/product", handler.SubmitProductEnquiry)
}

// SubmitEnquiry godoc
// @Summary      Submit Contact Enquiry
// @Description  Validate a contact form submission and forward it to the business inbox and SMS channel. This is a public endpoint.
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Param        enquiry  body      domain.EnquiryRequest  true  "Contact Form Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /enquiries [post]
func (h *EnquiryHandler) SubmitEnquiry(c *gin.Context) {
	var req domain.EnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Invalid request body"))
		return
	}

	result := h.enquiryUC.SubmitEnquiry(c.Request.Context(), &req)
	writeSubmitResult(c, result)
}

// SubmitProductEnquiry godoc
// @Summary      Submit Product Enquiry
// @Description  Forward a product information request to the business inbox. Email is optional; the enquiry address is substituted when missing.
// @Tags         enquiries
// @Accept       json
// @Produce      json
// @Param        enquiry  body      domain.ProductEnquiryRequest  true  "Product Enquiry Data"
// @Success      200      {object}  response.Response
// @Failure      400      {object}  response.Response
// @Failure      502      {object}  response.Response
// @Router       /enquiries/product [post]
func (h *EnquiryHandler) SubmitProductEnquiry(c *gin.Context) {
	var req domain.ProductEnquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.BadRequest("Product name is required"))
		return
	}

	result := h.enquiryUC.SubmitProductEnquiry(c.Request.Context(), &req)
	writeSubmitResult(c, result)
}

// writeSubmitResult maps the usecase result to the HTTP envelope: 200 on
// success, 400 with the field-error map on validation failure, 502 when the
// relay turned the submission down.
func writeSubmitResult(c *gin.Context, result *domain.SubmitResult) {
	switch {
	case result.Success:
		response.Success(c, http.StatusOK, result.Message, nil)
	case len(result.FieldErrors) > 0:
		response.Error(c, http.StatusBadRequest, result.Error, result.FieldErrors)
	default:
		response.Error(c, http.StatusBadGateway, result.Error, nil)
	}
}
