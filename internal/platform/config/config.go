package config

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"
	_ "time/tzdata" // zones resolve in images without /usr/share/zoneinfo

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// HTTP
	Port string `envconfig:"PORT" default:"8080"`

	// Postgres
	PostgresDSN       string        `envconfig:"POSTGRES_DSN"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"10"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	MigrateOnStart    bool          `envconfig:"MIGRATE_ON_START" default:"true"`

	// AMQP (optional, empty URL disables import notifications)
	AMQPURL      string `envconfig:"AMQP_URL"`
	AMQPExchange string `envconfig:"AMQP_EXCHANGE" default:"warroom"`
	AMQPQueue    string `envconfig:"AMQP_QUEUE" default:"transactions_imported"`

	// LLM (optional, empty key disables AI features)
	GoogleAPIKey string `envconfig:"GOOGLE_API_KEY"`
	LLMModel     string `envconfig:"LLM_MODEL" default:"gemini-2.0-flash"`

	// Dashboard
	DashboardCacheSize int           `envconfig:"DASHBOARD_CACHE_SIZE" default:"128"`
	DashboardCacheTTL  time.Duration `envconfig:"DASHBOARD_CACHE_TTL" default:"5m"`
	RFMPointLimit      int           `envconfig:"RFM_POINT_LIMIT" default:"2000"`

	// Import
	ImportBatchSize int `envconfig:"IMPORT_BATCH_SIZE" default:"1000"`

	// Calendar zone shared by the importer and the analytics engine.
	Timezone string `envconfig:"TIMEZONE" default:"UTC"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	// .env is a local development convenience; a missing file is not an error.
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	return &cfg, nil
}

// Validate reports every configuration problem at once.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Port); err != nil {
		problems = append(problems, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	if strings.TrimSpace(c.PostgresDSN) == "" {
		problems = append(problems, "POSTGRES_DSN is not set")
	}

	if c.DBMaxOpenConns < 1 {
		problems = append(problems, fmt.Sprintf("invalid DB_MAX_OPEN_CONNS %d: must be at least 1", c.DBMaxOpenConns))
	}
	if c.DBMaxIdleConns < 0 || c.DBMaxIdleConns > c.DBMaxOpenConns {
		problems = append(problems, fmt.Sprintf("invalid DB_MAX_IDLE_CONNS %d: must be between 0 and DB_MAX_OPEN_CONNS", c.DBMaxIdleConns))
	}

	if c.AMQPURL != "" {
		if u, err := url.Parse(c.AMQPURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if u.Scheme != "amqp" && u.Scheme != "amqps" {
			problems = append(problems, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", u.Scheme))
		}
		if c.AMQPExchange == "" {
			problems = append(problems, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			problems = append(problems, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	if c.DashboardCacheSize < 1 {
		problems = append(problems, fmt.Sprintf("invalid DASHBOARD_CACHE_SIZE %d: must be at least 1", c.DashboardCacheSize))
	}
	if c.DashboardCacheTTL < time.Second {
		problems = append(problems, fmt.Sprintf("invalid DASHBOARD_CACHE_TTL %v: must be at least 1 second", c.DashboardCacheTTL))
	}
	if c.RFMPointLimit < 1 {
		problems = append(problems, fmt.Sprintf("invalid RFM_POINT_LIMIT %d: must be at least 1", c.RFMPointLimit))
	}

	// 1000 rows x 8 columns stays well under the postgres bind parameter limit.
	if c.ImportBatchSize < 1 || c.ImportBatchSize > 5000 {
		problems = append(problems, fmt.Sprintf("invalid IMPORT_BATCH_SIZE %d: must be between 1 and 5000", c.ImportBatchSize))
	}

	if _, err := c.Location(); err != nil {
		problems = append(problems, fmt.Sprintf("invalid TIMEZONE '%s': %v", c.Timezone, err))
	}

	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "warning", "error":
	default:
		problems = append(problems, fmt.Sprintf("invalid LOG_LEVEL '%s'", c.LogLevel))
	}

	if len(problems) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(problems, "\n- "))
	}
	return nil
}

// Location resolves Timezone. Import date parsing and report bucketing must
// both use it so a stored instant maps back to the day it was imported as.
func (c *Config) Location() (*time.Location, error) {
	if strings.TrimSpace(c.Timezone) == "" {
		return nil, fmt.Errorf("timezone is empty")
	}
	return time.LoadLocation(c.Timezone)
}

func (c *Config) AMQPEnabled() bool { return c.AMQPURL != "" }

func (c *Config) LLMEnabled() bool { return c.GoogleAPIKey != "" }
