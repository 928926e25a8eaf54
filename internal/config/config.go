package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all runtime configuration loaded from environment variables.
type Config struct {
	AppPort string
	AppEnv  string

	AWSRegion      string
	AWSEndpointURL string // empty in prod, set to LocalStack URL in dev
	AWSAccessKeyID string
	AWSSecretKey   string
	DynamoTables   DynamoTables
	S3BucketName   string

	RedisAddr     string // empty disables Redis — OTPs fall back to the in-memory store
	RedisPassword string
	RedisDB       int

	OTPAllowedDomains []string // university email domains eligible for OTP issuance
	OTPExpiry         time.Duration
	OTPMaxAttempts    int

	EmailAuthSecret string // HS256 secret for the verified-email credential
	CredentialTTL   time.Duration

	SMTPHost     string
	SMTPPort     string
	SMTPFrom     string
	SMTPUsername string
	SMTPPassword string

	AllowedOrigins []string // CORS allowed origins
}

// DynamoTables holds the DynamoDB table name for each entity.
type DynamoTables struct {
	Profiles      string
	Universities  string
	IntentOptions string
	WeightPresets string
	Flags         string
	Documents     string
}

// Load reads all configuration from environment variables.
func Load() *Config {
	return &Config{
		AppPort: getEnv("APP_PORT", "3000"),
		AppEnv:  getEnv("APP_ENV", "development"),

		AWSRegion:      getEnv("AWS_REGION", "us-east-1"),
		AWSEndpointURL: getEnv("AWS_ENDPOINT_URL", ""),
		AWSAccessKeyID: getEnv("AWS_ACCESS_KEY_ID", ""),
		AWSSecretKey:   getEnv("AWS_SECRET_ACCESS_KEY", ""),
		DynamoTables: DynamoTables{
			Profiles:      getEnv("DYNAMO_TABLE_PROFILES", "profiles"),
			Universities:  getEnv("DYNAMO_TABLE_UNIVERSITIES", "universities"),
			IntentOptions: getEnv("DYNAMO_TABLE_INTENT_OPTIONS", "intent_options"),
			WeightPresets: getEnv("DYNAMO_TABLE_WEIGHT_PRESETS", "weight_presets"),
			Flags:         getEnv("DYNAMO_TABLE_VERIFICATION_FLAGS", "verification_flags"),
			Documents:     getEnv("DYNAMO_TABLE_VERIFICATION_DOCUMENTS", "verification_documents"),
		},
		S3BucketName: getEnv("S3_BUCKET_NAME", "uni-match-documents"),

		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		OTPAllowedDomains: strings.Split(getEnv("OTP_ALLOWED_DOMAINS",
			"u-tokyo.ac.jp,kyoto-u.ac.jp,waseda.jp,keio.jp,omu.ac.jp"), ","),
		OTPExpiry:      time.Duration(getEnvInt("OTP_EXPIRY_MINUTES", 10)) * time.Minute,
		OTPMaxAttempts: getEnvInt("OTP_MAX_ATTEMPTS", 5),

		EmailAuthSecret: getEnv("EMAIL_AUTH_JWT_SECRET", ""),
		CredentialTTL:   time.Duration(getEnvInt("CREDENTIAL_TTL_HOURS", 2)) * time.Hour,

		SMTPHost:     getEnv("SMTP_HOST", "localhost"),
		SMTPPort:     getEnv("SMTP_PORT", "1025"),
		SMTPFrom:     getEnv("SMTP_FROM", "noreply@example.com"),
		SMTPUsername: getEnv("SMTP_USERNAME", ""),
		SMTPPassword: getEnv("SMTP_PASSWORD", ""),

		AllowedOrigins: strings.Split(getEnv("ALLOWED_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
