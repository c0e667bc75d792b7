package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Auth     AuthConfig
	Images   ImagesConfig
	CORS     CORSConfig
	LogLevel string
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	ShutdownTimeout time.Duration
}

// DatabaseConfig holds PostgreSQL connection configuration.
// URL takes precedence; the discrete fields are assembled into a DSN when
// it is empty.
type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	Name     string
	User     string
	Password string
	SSLMode  string

	MaxConns    int
	MinConns    int
	Timeout     time.Duration
	MaxLifetime time.Duration
	MaxIdleTime time.Duration
}

// DSN returns the connection string for the database
func (d DatabaseConfig) DSN() string {
	if d.URL != "" {
		return d.URL
	}
	return fmt.Sprintf("host=%s port=%s dbname=%s user=%s password=%s sslmode=%s",
		d.Host, d.Port, d.Name, d.User, d.Password, d.SSLMode)
}

// AuthConfig holds token issuing configuration
type AuthConfig struct {
	JWTSecret string
	// JWTExpiresIn is the raw TTL spec ("7d", "24h", "30m"); parsing and
	// the 7-day fallback live in pkg/auth.
	JWTExpiresIn string
	BcryptCost   int
}

// ImagesConfig holds external image-provider configuration
type ImagesConfig struct {
	LeonardoAPIKey  string
	LeonardoModelID string
	LeonardoAPIURL  string

	// Prompt enhancement is wired but disabled; the key and model are kept
	// so enabling it is a config change, not a code change.
	GeminiAPIKey    string
	GeminiModel     string
	EnhancerEnabled bool
}

// CORSConfig holds allowed origins for browser clients
type CORSConfig struct {
	AllowedOrigins []string
}

// LoadConfig loads configuration from the environment, reading a .env file
// first when one is present.
func LoadConfig() (*Config, error) {
	// Missing .env is the normal case in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{
		Server:   loadServerConfig(),
		Database: loadDatabaseConfig(),
		Auth:     loadAuthConfig(),
		Images:   loadImagesConfig(),
		CORS:     loadCORSConfig(),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Host:            getEnv("HOST", "0.0.0.0"),
		Port:            getEnv("PORT", "8000"),
		ReadTimeout:     getEnvDuration("READ_TIMEOUT", 15*time.Second),
		WriteTimeout:    getEnvDuration("WRITE_TIMEOUT", 120*time.Second),
		IdleTimeout:     getEnvDuration("IDLE_TIMEOUT", 60*time.Second),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 30*time.Second),
	}
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:      getEnv("DATABASE_URL", ""),
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     getEnv("DB_PORT", "5432"),
		Name:     getEnv("DB_NAME", "kabs_design"),
		User:     getEnv("DB_USER", "postgres"),
		Password: getEnv("DB_PASSWORD", ""),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:    getEnvInt("DB_MAX_CONNS", 20),
		MinConns:    getEnvInt("DB_MIN_CONNS", 1),
		Timeout:     getEnvDuration("DB_TIMEOUT", 5*time.Second),
		MaxLifetime: getEnvDuration("DB_MAX_LIFETIME", 30*time.Minute),
		MaxIdleTime: getEnvDuration("DB_MAX_IDLE_TIME", 5*time.Minute),
	}
}

func loadAuthConfig() AuthConfig {
	return AuthConfig{
		JWTSecret:    getEnv("JWT_SECRET", ""),
		JWTExpiresIn: getEnv("JWT_EXPIRES_IN", "7d"),
		BcryptCost:   getEnvInt("BCRYPT_COST", 10),
	}
}

func loadImagesConfig() ImagesConfig {
	return ImagesConfig{
		LeonardoAPIKey:  getEnv("LEONARDO_API_KEY", ""),
		LeonardoModelID: getEnv("LEONARDO_MODEL_ID", "1e60896f-3c26-4296-8ecc-53e2afecc132"),
		LeonardoAPIURL:  getEnv("LEONARDO_API_URL", "https://cloud.leonardo.ai/api/rest/v1"),
		GeminiAPIKey:    getEnv("GEMINI_API_KEY", ""),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		EnhancerEnabled: getEnvBool("PROMPT_ENHANCER_ENABLED", false),
	}
}

func loadCORSConfig() CORSConfig {
	raw := getEnv("CORS_ORIGIN", "http://localhost:5173")
	origins := make([]string, 0)
	for _, o := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return CORSConfig{AllowedOrigins: origins}
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("server port is required")
	}
	if c.Auth.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Database.URL == "" && c.Database.Name == "" {
		return fmt.Errorf("database configuration is required (DATABASE_URL or DB_* variables)")
	}
	if c.Database.MaxConns < c.Database.MinConns {
		return fmt.Errorf("DB_MAX_CONNS must be >= DB_MIN_CONNS")
	}
	if c.Auth.BcryptCost < 4 || c.Auth.BcryptCost > 31 {
		return fmt.Errorf("BCRYPT_COST must be between 4 and 31")
	}
	return nil
}

// getEnv returns an environment variable value or a default
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool returns a boolean environment variable or a default
func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		return strings.ToLower(value) == "true" || value == "1"
	}
	return defaultValue
}

// getEnvInt returns an integer environment variable or a default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

// getEnvDuration returns a duration environment variable or a default
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
