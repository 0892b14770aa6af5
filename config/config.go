package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	Port string

	SupabaseURL        string
	SupabaseServiceKey string
	SupabaseAnonKey    string
	StorageBucket      string

	StripeSecretKey     string
	StripeWebhookSecret string

	JWTKey string

	EmailSender string
	Password    string // SMTP Password

	UploadTimeoutMinutes int // Extended timeout for large file uploads
}

// AppConfig is a global variable to access configuration
var AppConfig *Config

// LoadConfig initializes configuration from environment variables or defaults
func LoadConfig() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found. Using system environment variables.")
	}

	AppConfig = &Config{
		Port: getEnv("PORT", "8000"),

		SupabaseURL:        getEnv("SUPABASE_URL", ""),
		SupabaseServiceKey: getEnv("SUPABASE_SERVICE_ROLE_KEY", ""),
		SupabaseAnonKey:    getEnv("SUPABASE_ANON_KEY", ""),
		StorageBucket:      getEnv("STORAGE_BUCKET", "course-content"),

		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),

		JWTKey: getEnv("JWT_SECRET_KEY", "defaultSecret"),

		EmailSender: getEnv("EMAIL_SENDER", ""),
		Password:    getEnv("PASSWORD", ""),

		UploadTimeoutMinutes: getEnvInt("UPLOAD_TIMEOUT_MINUTES", 10),
	}

	// Validate critical configuration
	if AppConfig.SupabaseURL == "" {
		log.Println("Warning: SUPABASE_URL not set. Database operations will fail.")
	}
	if AppConfig.StripeSecretKey == "" {
		log.Println("Warning: STRIPE_SECRET_KEY not set. Payment endpoints will fail.")
	}
	if AppConfig.JWTKey == "defaultSecret" {
		log.Println("Warning: Using default JWT_SECRET_KEY. Update it in your environment.")
	}
}

// SupabaseKey returns the service role key when configured, falling back to
// the anon key. Keys shorter than a real JWT are treated as placeholders.
func (c *Config) SupabaseKey() string {
	if len(c.SupabaseServiceKey) > 20 {
		return c.SupabaseServiceKey
	}
	if len(c.SupabaseAnonKey) > 20 {
		return c.SupabaseAnonKey
	}
	return ""
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvInt retrieves an environment variable as an integer or returns the default integer value
func getEnvInt(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	intValue, err := strconv.Atoi(value)
	if err != nil {
		log.Printf("Error converting environment variable %s to int: %v", key, err)
		return defaultValue
	}
	return intValue
}
