package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds application configuration
type Config struct {
	// Server
	Port string `env:"PORT" envDefault:"8080"`
	Env  string `env:"ENV" envDefault:"development"`

	// Database
	DBHost     string `env:"DB_HOST" envDefault:"localhost"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBUser     string `env:"DB_USER" envDefault:"propfund"`
	DBPassword string `env:"DB_PASSWORD" envDefault:"propfund"`
	DBName     string `env:"DB_NAME" envDefault:"propfund"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`

	// JWT
	JWTSecret        string        `env:"JWT_SECRET" envDefault:"fallback-secret-key-for-dev-only"`
	JWTExpirationDur time.Duration `env:"JWT_EXPIRES_IN" envDefault:"24h"`

	// Ledger
	EscrowAddress         string        `env:"ESCROW_ADDRESS" envDefault:"escrow"`
	ReferralVaultAddress  string        `env:"REFERRAL_VAULT_ADDRESS" envDefault:"referral-vault"`
	BootstrapAdminAddress string        `env:"BOOTSTRAP_ADMIN_ADDRESS"`
	MaxRaiseExtension     time.Duration `env:"MAX_RAISE_EXTENSION" envDefault:"720h"`
	EventJournalPath      string        `env:"EVENT_JOURNAL_PATH" envDefault:"propfund-events.db"`
	LockDeadlockTimeout   time.Duration `env:"LOCK_DEADLOCK_TIMEOUT" envDefault:"0s"`

	// Tracing
	OTelEndpoint string `env:"OTEL_ENDPOINT"`
	OTelEnabled  bool   `env:"OTEL_ENABLED" envDefault:"true"`
}

var appConfig *Config

// Load loads configuration from the environment, reading a .env file first
// when one is present.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.EscrowAddress == cfg.ReferralVaultAddress {
		return nil, fmt.Errorf("ESCROW_ADDRESS and REFERRAL_VAULT_ADDRESS must differ")
	}
	if cfg.LockDeadlockTimeout < 0 {
		return nil, fmt.Errorf("LOCK_DEADLOCK_TIMEOUT must not be negative")
	}

	appConfig = cfg
	return cfg, nil
}

// Get returns the application configuration
func Get() *Config {
	if appConfig == nil {
		var err error
		appConfig, err = Load()
		if err != nil {
			log.Fatalf("Failed to load configuration: %v", err)
		}
	}
	return appConfig
}
