package v1

import (
	"net/http"

	"deepindian-led-backend/config"
	"deepindian-led-backend/internal/delivery/http/middleware"
	"deepindian-led-backend/internal/delivery/http/response"
	"deepindian-led-backend/internal/domain"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	EnquiryUC domain.EnquiryUsecase
	Config    *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(deps.Config)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.GlobalRateLimitMiddleware(deps.Config))

	v1 := r.Group("/v1")

	// Health Check
	v1.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, "System operational", nil)
	})

	// Public routes - the enquiry endpoints carry a stricter per-IP limit
	// to keep the open contact form spam-resistant
	enquiries := v1.Group("")
	enquiries.Use(middleware.EnquiryRateLimitMiddleware(deps.Config))
	NewEnquiryHandler(enquiries, deps.EnquiryUC)

	// Swagger
	v1.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
