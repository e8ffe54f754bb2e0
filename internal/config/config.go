package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Database   DatabaseConfig
	Redis      RedisConfig
	JWT        JWTConfig
	App        AppConfig
	SMTP       SMTPConfig
	Storage    StorageConfig
	Xendit     XenditConfig
	OTP        OTPConfig
	Moderation ModerationConfig
	Billing    BillingConfig
}

type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	URL string
}

// JWTConfig holds JWT configuration
type JWTConfig struct {
	Secret            string
	RefreshExpiration string
	AccessExpiration  string
}

// AppConfig holds application configuration
type AppConfig struct {
	Port        int
	Env         string
	LogLevel    string
	FrontendURL string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
	FromName string
}

type StorageConfig struct {
	Type     string // "local" or "s3"
	BasePath string
	BaseURL  string

	S3Region       string
	S3Bucket       string
	S3AccessKey    string
	S3SecretKey    string
	S3BaseEndpoint string
}

type XenditConfig struct {
	APIKey       string
	WebhookToken string
	Environment  string
}

// OTPConfig controls registration OTP issuance
type OTPConfig struct {
	TTLMinutes  int
	MaxAttempts int
}

// ModerationConfig controls how admin status decisions are validated.
// Strict mode rejects transitions missing from the per-entity table.
type ModerationConfig struct {
	Strict bool
}

// BillingConfig holds marketplace fees in INR. A zero job post fee disables
// the payment gate for job creation.
type BillingConfig struct {
	JobPostFee           int64
	PlanFee              int64
	PlanDays             int
	InvoiceExpirySeconds int
}

func Load() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config := &Config{}

	// Database configuration
	dbPort, err := strconv.Atoi(getEnv("DB_PORT", "5432"))
	if err != nil {
		return nil, fmt.Errorf("invalid DB_PORT: %w", err)
	}

	config.Database = DatabaseConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     dbPort,
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		Name:     getEnv("DB_NAME", "kaamsetu"),
		SSLMode:  getEnv("DB_SSL_MODE", "disable"),
	}

	// Redis configuration (OTP store)
	config.Redis = RedisConfig{
		URL: getEnv("REDIS_URL", "redis://localhost:6379/0"),
	}

	// Application configuration
	appPort, err := strconv.Atoi(getEnv("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	config.App = AppConfig{
		Port:        appPort,
		Env:         getEnv("APP_ENV", "development"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		FrontendURL: getEnv("FRONTEND_URL", "http://localhost:3000"),
	}

	// JWT configuration
	config.JWT = JWTConfig{
		Secret:            getEnv("JWT_SECRET_KEY", ""),
		RefreshExpiration: getEnv("JWT_REFRESH_EXPIRATION_TIME", "168h"),
		AccessExpiration:  getEnv("JWT_ACCESS_EXPIRATION_TIME", "1h"),
	}

	// SMTP configuration
	smtpPort, err := strconv.Atoi(getEnv("SMTP_PORT", "587"))
	if err != nil {
		return nil, fmt.Errorf("invalid SMTP_PORT: %w", err)
	}
	config.SMTP = SMTPConfig{
		Host:     getEnv("SMTP_HOST", ""),
		Port:     smtpPort,
		Username: getEnv("SMTP_USERNAME", ""),
		Password: getEnv("SMTP_PASSWORD", ""),
		From:     getEnv("SMTP_FROM", "no-reply@kaamsetu.in"),
		FromName: getEnv("SMTP_FROM_NAME", "KaamSetu"),
	}

	// Storage configuration
	config.Storage = StorageConfig{
		Type:           getEnv("STORAGE_TYPE", "local"),
		BasePath:       getEnv("STORAGE_BASE_PATH", "./uploads"),
		BaseURL:        getEnv("STORAGE_BASE_URL", "http://localhost:8080/uploads"),
		S3Region:       getEnv("S3_REGION", "ap-south-1"),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3AccessKey:    getEnv("S3_ACCESS_KEY", ""),
		S3SecretKey:    getEnv("S3_SECRET_KEY", ""),
		S3BaseEndpoint: getEnv("S3_BASE_ENDPOINT", ""),
	}

	// Xendit configuration
	config.Xendit = XenditConfig{
		APIKey:       getEnv("XENDIT_API_KEY", ""),
		WebhookToken: getEnv("XENDIT_WEBHOOK_TOKEN", ""),
		Environment:  getEnv("XENDIT_ENVIRONMENT", "sandbox"),
	}

	// OTP configuration
	otpTTL, err := strconv.Atoi(getEnv("OTP_TTL_MINUTES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_TTL_MINUTES: %w", err)
	}
	otpAttempts, err := strconv.Atoi(getEnv("OTP_MAX_ATTEMPTS", "5"))
	if err != nil {
		return nil, fmt.Errorf("invalid OTP_MAX_ATTEMPTS: %w", err)
	}
	config.OTP = OTPConfig{
		TTLMinutes:  otpTTL,
		MaxAttempts: otpAttempts,
	}

	// Moderation configuration
	strict, err := strconv.ParseBool(getEnv("MODERATION_STRICT", "true"))
	if err != nil {
		return nil, fmt.Errorf("invalid MODERATION_STRICT: %w", err)
	}
	config.Moderation = ModerationConfig{Strict: strict}

	// Billing configuration
	jobPostFee, err := strconv.ParseInt(getEnv("BILLING_JOB_POST_FEE", "0"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BILLING_JOB_POST_FEE: %w", err)
	}
	planFee, err := strconv.ParseInt(getEnv("BILLING_PLAN_FEE", "499"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid BILLING_PLAN_FEE: %w", err)
	}
	planDays, err := strconv.Atoi(getEnv("BILLING_PLAN_DAYS", "30"))
	if err != nil {
		return nil, fmt.Errorf("invalid BILLING_PLAN_DAYS: %w", err)
	}
	invoiceExpiry, err := strconv.Atoi(getEnv("BILLING_INVOICE_EXPIRY_SECONDS", "86400"))
	if err != nil {
		return nil, fmt.Errorf("invalid BILLING_INVOICE_EXPIRY_SECONDS: %w", err)
	}
	config.Billing = BillingConfig{
		JobPostFee:           jobPostFee,
		PlanFee:              planFee,
		PlanDays:             planDays,
		InvoiceExpirySeconds: invoiceExpiry,
	}

	// Validate required fields
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Password == "" {
		return fmt.Errorf("DB_PASSWORD is required")
	}
	if c.JWT.Secret == "" {
		return fmt.Errorf("JWT_SECRET_KEY is required")
	}
	if c.Storage.Type != "local" && c.Storage.Type != "s3" {
		return fmt.Errorf("STORAGE_TYPE must be local or s3")
	}
	if c.Storage.Type == "s3" && c.Storage.S3Bucket == "" {
		return fmt.Errorf("S3_BUCKET is required when STORAGE_TYPE is s3")
	}
	return nil
}

// DatabaseURL returns the PostgreSQL connection string
func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.Name,
		c.Database.SSLMode,
	)
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
