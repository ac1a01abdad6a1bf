package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NATS     NATSConfig
	JWT      JWTConfig
	Payment  PaymentConfig
	Gateways GatewaysConfig
	Logger   LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// NATSConfig contains NATS connection configuration
type NATSConfig struct {
	URL string
}

// JWTConfig contains JWT authentication configuration
type JWTConfig struct {
	Secret     string
	Expiration int // in minutes
	Issuer     string
}

// PaymentConfig contains marketplace payment policy configuration. It is
// served verbatim on the payment config endpoint, hence the json tags.
type PaymentConfig struct {
	Currency        string  `json:"currency"`
	MinAmount       float64 `json:"min_amount"`
	MaxAmount       float64 `json:"max_amount"`
	RateLimit       int     `json:"rate_limit"`        // max payment attempts per window
	RateLimitWindow int     `json:"rate_limit_window"` // window length in minutes
}

// GatewayConfig contains credentials for a single payment gateway
type GatewayConfig struct {
	KeyID         string
	KeySecret     string
	BaseURL       string
	WebhookSecret string
}

// GatewaysConfig contains per-gateway credentials
type GatewaysConfig struct {
	Stripe   GatewayConfig
	Cashfree GatewayConfig
	Razorpay GatewayConfig
}

// LoggerConfig contains logger configuration
type LoggerConfig struct {
	Level    string
	FilePath string
}
