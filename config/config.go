package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// Web3Forms (email relay) configuration
	Web3FormsEndpoint  string
	Web3FormsAccessKey string
	ContactEmailTo     string
	EmailFromName      string
	// Textbelt (SMS relay) configuration
	TextbeltEndpoint string
	TextbeltAPIKey   string
	// SMSProvider selects the SMS backend: "textbelt" or "web3forms"
	SMSProvider string
	// BusinessPhone receives the SMS lead notifications
	BusinessPhone string
	// EnquiryEmail is the default reply address for product enquiries
	// submitted without a customer email
	EnquiryEmail string
	// Redis/Upstash Configuration (rate limiting)
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds    int
	RateLimitGlobalThreshold  int
	RateLimitEnquiryThreshold int
}

func LoadConfig() (*Config, error) {
	// Load .env if present; ignored in production where env vars are injected
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
		// Email relay
		Web3FormsEndpoint: getEnv("WEB3FORMS_ENDPOINT", "https://api.web3forms.com/submit"),
		// The fallback key matches the site's public form key so local runs
		// deliver to the same dashboard as production
		Web3FormsAccessKey: getEnv("WEB3FORMS_ACCESS_KEY", "0dbd8392-6012-4200-8526-bc02aa3fd902"),
		ContactEmailTo:     getEnv("CONTACT_EMAIL_TO", "work@deepindian.in"),
		EmailFromName:      getEnv("EMAIL_FROM_NAME", "Deep Indian LED Website"),
		// SMS relay
		TextbeltEndpoint: getEnv("TEXTBELT_ENDPOINT", "https://textbelt.com/text"),
		TextbeltAPIKey:   getEnv("TEXTBELT_API_KEY", "textbelt"), // free tier key
		SMSProvider:      getEnv("SMS_PROVIDER", "textbelt"),
		BusinessPhone:    getEnv("BUSINESS_PHONE", "+919876543210"),
		EnquiryEmail:     getEnv("ENQUIRY_EMAIL", "enquiry@deepindian.in"),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:    getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitGlobalThreshold:  getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
		RateLimitEnquiryThreshold: getEnvInt("RATE_LIMIT_ENQUIRY_THRESHOLD", 5),  // 5 submissions per window
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
