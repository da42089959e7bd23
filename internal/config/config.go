package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var (
	ErrMissingEnvironmentVariables = errors.New("missing required environment variables")
	ErrInvalidConfig               = errors.New("invalid configuration")
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env              string   `mapstructure:"env"`      // current application environment (local, dev, production etc)
	TelegramAPIToken string   `mapstructure:"-"`        // Telegram API token loaded from environment
	DB               DB       `mapstructure:"database"` // database configuration section
	Quiz             Quiz     `mapstructure:"quiz"`     // quiz content and behaviour
	Sessions         Sessions `mapstructure:"sessions"` // in-memory session housekeeping
}

// DB contains database-related configuration parameters.
type DB struct {
	URL             string        `mapstructure:"-"`                                   // database connection string loaded from environment
	MaxConnections  int           `mapstructure:"max_connections" validate:"gt=0"`     // maximum number of open connections in the pool
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime" validate:"gte=0"`  // maximum lifetime of a single connection
	MigrationsPath  string        `mapstructure:"migrations_path" validate:"required"` // directory with SQL migrations
}

// Quiz contains question bank and quiz composition parameters.
type Quiz struct {
	CatalogPath      string `mapstructure:"catalog_path" validate:"required"` // path to JSON file with pattern questions
	DefaultLength    int    `mapstructure:"default_length" validate:"gt=0"`   // questions per quiz for new users
	ShuffleQuestions bool   `mapstructure:"shuffle_questions"`                // shuffle question order per quiz
	ShuffleOptions   bool   `mapstructure:"shuffle_options"`                  // shuffle option order per question
}

// Sessions contains parameters of the idle session cleanup job.
type Sessions struct {
	IdleTTL         time.Duration `mapstructure:"idle_ttl" validate:"gt=0"`             // sessions idle longer than this are dropped
	CleanupSchedule string        `mapstructure:"cleanup_schedule" validate:"required"` // cron spec of the cleanup job
}

// DSN returns the database connection string if it is configured.
func (db DB) DSN() (string, error) {
	if db.URL == "" {
		return "", ErrMissingEnvironmentVariables
	}
	return db.URL, nil
}

// Load reads the full bot configuration. Both the Telegram token and the
// database URL are required.
func Load() (*Config, error) {
	v, cfg, err := load()
	if err != nil {
		return nil, err
	}

	// Load sensitive values from environment variables.
	cfg.TelegramAPIToken = v.GetString("telegram_api_token")
	if cfg.TelegramAPIToken == "" {
		return nil, ErrMissingEnvironmentVariables
	}

	if _, err := cfg.DB.DSN(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDatabase reads the configuration needed by tools that only talk to the database.
func LoadDatabase() (*DB, error) {
	_, cfg, err := load()
	if err != nil {
		return nil, err
	}

	if _, err := cfg.DB.DSN(); err != nil {
		return nil, err
	}

	return &cfg.DB, nil
}

func load() (*viper.Viper, *Config, error) {
	// Values from .env never override variables already set in the environment.
	_ = godotenv.Load()

	// Initialize Viper instance and base config options.
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")

	// Set default values for configuration keys.
	v.SetDefault("env", "local")
	v.SetDefault("database.max_connections", 20)
	v.SetDefault("database.max_conn_lifetime", "30s")
	v.SetDefault("database.migrations_path", "migrations")
	v.SetDefault("quiz.catalog_path", "assets/data/patterns.json")
	v.SetDefault("quiz.default_length", 10)
	v.SetDefault("quiz.shuffle_questions", true)
	v.SetDefault("quiz.shuffle_options", true)
	v.SetDefault("sessions.idle_ttl", "30m")
	v.SetDefault("sessions.cleanup_schedule", "@every 5m")

	// Configure environment variable handling and key mapping.
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // map nested keys to ENV style names
	v.AutomaticEnv()

	// Bind explicit environment variables to configuration keys.
	_ = v.BindEnv("telegram_api_token", "TELEGRAM_API_TOKEN")
	_ = v.BindEnv("database_url", "DATABASE_URL")
	_ = v.BindEnv("env", "APP_ENV")

	// Try to read configuration file if present.
	if err := v.ReadInConfig(); err != nil {
		var fileLookupErr viper.ConfigFileNotFoundError
		if !errors.As(err, &fileLookupErr) {
			return nil, nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	// Unmarshal configuration into strongly typed struct.
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	cfg.DB.URL = v.GetString("database_url")

	if err := cfg.validate(); err != nil {
		return nil, nil, err
	}

	return v, &cfg, nil
}

func (c *Config) validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if strings.TrimSpace(c.Sessions.CleanupSchedule) == "" {
		return fmt.Errorf("%w: sessions.cleanup_schedule is blank", ErrInvalidConfig)
	}
	return nil
}
