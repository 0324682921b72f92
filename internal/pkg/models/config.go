package models

// Config represents application configuration
type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	NSQ      NSQConfig
	JWT      JWTConfig
	Auth     AuthConfig
	API      APIConfig
	Gateway  GatewayClientConfig
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

// NSQConfig contains NSQ producer configuration
type NSQConfig struct {
	Address     string
	StatusTopic string
}

// JWTConfig contains identity token configuration
type JWTConfig struct {
	Secret     string
	Expiration int
	Issuer     string
}

// AuthConfig contains the bootstrap admin account used to issue identity
// tokens. The endpoint is disabled while either value is empty.
type AuthConfig struct {
	AdminLogin string
	// AdminPasswordHash is a bcrypt digest of the admin password.
	AdminPasswordHash string
}

// APIConfig contains merchant-facing API configuration
type APIConfig struct {
	// KeyHeader is the header carrying the merchant API key.
	KeyHeader string
	// PathPrefix is the only path prefix API-key authentication applies to.
	PathPrefix string
	// WebhookBaseURL, when set, is advertised to the upstream gateway as the
	// notification target.
	WebhookBaseURL string
}

// GatewayClientConfig contains upstream gateway HTTP client configuration
type GatewayClientConfig struct {
	TimeoutSeconds int
}

// LoggerConfig contains logging configuration
type LoggerConfig struct {
	Level  string
	Format string
}
