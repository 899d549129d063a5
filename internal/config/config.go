package config

import (
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is loaded once at startup and passed explicitly to the components
// that need it.
type Config struct {
	Port         int           `env:"PORT" envDefault:"8080"`
	DatabasePath string        `env:"DATABASE_PATH" envDefault:"data/billsane.db"`
	CORSOrigins  string        `env:"CORS_ORIGINS" envDefault:"*"`
	SeedOnStart  bool          `env:"SEED_ON_START" envDefault:"true"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	Development  bool          `env:"DEVELOPMENT" envDefault:"false"`
	ShutdownWait time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`

	// EncryptionKey is the hex-encoded 32-byte AES key for license keys.
	EncryptionKey string        `env:"ENCRYPTION_KEY,required"`
	JWTSecret     string        `env:"JWT_SECRET,required"`
	TokenTTL      time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	Operator OperatorConfig `envPrefix:"OPERATOR_"`
	Sheets   SheetsConfig   `envPrefix:"SHEETS_"`
}

// OperatorConfig seeds the first console account when none exists.
type OperatorConfig struct {
	Username string `env:"USERNAME" envDefault:"admin"`
	Password string `env:"PASSWORD"`
	Email    string `env:"EMAIL" envDefault:"admin@billsane.local"`
}

// SheetsConfig controls the optional Google Sheets license mirror.
type SheetsConfig struct {
	Enabled         bool   `env:"ENABLED" envDefault:"false"`
	CredentialsPath string `env:"CREDENTIALS_PATH"`
	SpreadsheetID   string `env:"SPREADSHEET_ID"`
	SheetName       string `env:"SHEET_NAME" envDefault:"Licenses"`
}

var (
	ErrEncryptionKey = errors.New("ENCRYPTION_KEY must be 64 hex characters (32 bytes)")
	ErrSheetsConfig  = errors.New("SHEETS_CREDENTIALS_PATH and SHEETS_SPREADSHEET_ID are required when sheet sync is enabled")
)

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads and validates Config from the process environment.
func Load() (*Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFrom is Load over an explicit environment map.
func LoadFrom(environ map[string]string) (*Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Environment: environ}); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values env tags cannot express.
func (c *Config) Validate() error {
	if _, err := c.Key(); err != nil {
		return err
	}
	if c.Sheets.Enabled && (c.Sheets.CredentialsPath == "" || c.Sheets.SpreadsheetID == "") {
		return ErrSheetsConfig
	}
	return nil
}

// Key decodes EncryptionKey into raw key bytes.
func (c *Config) Key() ([]byte, error) {
	key, err := hex.DecodeString(c.EncryptionKey)
	if err != nil || len(key) != 32 {
		return nil, ErrEncryptionKey
	}
	return key, nil
}

// Addr is the listen address for the HTTP server.
func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}
