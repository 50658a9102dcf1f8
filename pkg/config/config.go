package config

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	OpenAI   OpenAIConfig
	Mail     MailConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port            string   `envconfig:"PORT" default:"8080"`
	Host            string   `envconfig:"HOST" default:"0.0.0.0"`
	Environment     string   `envconfig:"ENVIRONMENT" default:"development"`
	AllowedOrigins  []string `envconfig:"ALLOWED_ORIGINS" default:"http://localhost:3000"`
	ShutdownTimeout int      `envconfig:"SHUTDOWN_TIMEOUT" default:"10"`
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host        string `envconfig:"DB_HOST" default:"localhost"`
	Port        string `envconfig:"DB_PORT" default:"5432"`
	User        string `envconfig:"DB_USER" default:"postgres"`
	Password    string `envconfig:"DB_PASSWORD" default:"postgres"`
	Name        string `envconfig:"DB_NAME" default:"meet_task_tracker"`
	SSLMode     string `envconfig:"DB_SSLMODE" default:"disable"`
	MaxConns    int    `envconfig:"DB_MAX_CONNS" default:"25"`
	MinConns    int    `envconfig:"DB_MIN_CONNS" default:"5"`
	AutoMigrate bool   `envconfig:"DB_AUTO_MIGRATE" default:"false"`
}

// OpenAIConfig holds the LLM extraction configuration
type OpenAIConfig struct {
	APIKey      string `envconfig:"OPENAI_API_KEY"`
	BaseURL     string `envconfig:"OPENAI_API_URL" default:"https://api.openai.com"`
	Model       string `envconfig:"OPENAI_MODEL" default:"gpt-4o-mini"`
	HealthModel string `envconfig:"OPENAI_HEALTH_MODEL" default:"gpt-4.1-mini"`
}

// MailConfig holds the Resend email configuration
type MailConfig struct {
	APIKey  string `envconfig:"RESEND_API_KEY"`
	BaseURL string `envconfig:"RESEND_API_URL" default:"https://api.resend.com"`
	From    string `envconfig:"MAIL_FROM" default:"Meeting Action Items Tracker <support@zenpix.shop>"`
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if exists (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found, using environment variables or defaults")
	}

	config := &Config{}
	for _, section := range []interface{}{
		&config.Server,
		&config.Database,
		&config.OpenAI,
		&config.Mail,
	} {
		if err := envconfig.Process("", section); err != nil {
			return nil, fmt.Errorf("failed to process environment: %w", err)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Database.Name == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	if c.OpenAI.APIKey == "" {
		// The server still runs: extraction degrades to empty results and
		// the status endpoint reports the missing key.
		log.Printf("Warning: OPENAI_API_KEY is not set, extraction will be unavailable")
	}
	return nil
}

// GetDatabaseDSN returns the database connection string
func (c *Config) GetDatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Database.Host,
		c.Database.Port,
		c.Database.User,
		c.Database.Password,
		c.Database.Name,
		c.Database.SSLMode,
	)
}
