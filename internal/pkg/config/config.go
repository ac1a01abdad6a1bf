package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sponsorlink/payments/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", true)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 0)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 0)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 0)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 0)

	// Database config
	configs.Database.Host = GetEnv("DB_HOST", "")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 0)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 0)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 0)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 0)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 0)

	// NATS config
	configs.NATS.URL = GetEnv("NATS_URL", "")

	// JWT config
	configs.JWT.Secret = GetEnv("JWT_SECRET", "")
	configs.JWT.Expiration = GetEnvAsInt("JWT_EXPIRATION", 0)
	configs.JWT.Issuer = GetEnv("JWT_ISSUER", "")

	// Payment policy config
	configs.Payment.Currency = GetEnv("PAYMENT_CURRENCY", "INR")
	configs.Payment.MinAmount = GetEnvAsFloat("PAYMENT_MIN_AMOUNT", 1)
	configs.Payment.MaxAmount = GetEnvAsFloat("PAYMENT_MAX_AMOUNT", 1000000)
	configs.Payment.RateLimit = GetEnvAsInt("PAYMENT_RATE_LIMIT", 5)
	configs.Payment.RateLimitWindow = GetEnvAsInt("PAYMENT_RATE_LIMIT_WINDOW", 15)

	// Gateway credentials
	configs.Gateways.Stripe.KeySecret = GetEnv("STRIPE_SECRET_KEY", "")
	configs.Gateways.Stripe.BaseURL = GetEnv("STRIPE_BASE_URL", "https://api.stripe.com")
	configs.Gateways.Stripe.WebhookSecret = GetEnv("STRIPE_WEBHOOK_SECRET", "")

	configs.Gateways.Cashfree.KeyID = GetEnv("CASHFREE_API_KEY", "")
	configs.Gateways.Cashfree.KeySecret = GetEnv("CASHFREE_SECRET_KEY", "")
	configs.Gateways.Cashfree.BaseURL = GetEnv("CASHFREE_BASE_URL", "https://sandbox.cashfree.com/pg")
	configs.Gateways.Cashfree.WebhookSecret = GetEnv("CASHFREE_WEBHOOK_SECRET", "")

	configs.Gateways.Razorpay.KeyID = GetEnv("RAZORPAY_KEY_ID", "")
	configs.Gateways.Razorpay.KeySecret = GetEnv("RAZORPAY_KEY_SECRET", "")
	configs.Gateways.Razorpay.BaseURL = GetEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com")
	configs.Gateways.Razorpay.WebhookSecret = GetEnv("RAZORPAY_WEBHOOK_SECRET", "")

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil {
		log.Printf("Warning: Invalid float value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
