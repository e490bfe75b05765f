package config

import "os"

// Config holds all process configuration, read once from the environment.
type Config struct {
	Port              string
	RazorpayKeyID     string
	RazorpayKeySecret string
	CourseCatalogPath string
	AuditLogDir       string
	SuccessURL        string
	FailureURL        string
	AppEnv            string
}

// Load reads configuration from environment variables with defaults
func Load() Config {
	return Config{
		Port:              getEnv("PORT", "8080"),
		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		CourseCatalogPath: getEnv("COURSE_CATALOG_PATH", "courses.json"),
		AuditLogDir:       getEnv("AUDIT_LOG_DIR", "logs"),
		SuccessURL:        getEnv("PAYMENT_SUCCESS_URL", "http://localhost:3000/payment-success"),
		FailureURL:        getEnv("PAYMENT_FAILURE_URL", "http://localhost:3000/payment-failed"),
		AppEnv:            getEnv("APP_ENV", "development"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
