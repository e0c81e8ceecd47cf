package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// SourceKind indica de dónde salen las colecciones al arrancar.
type SourceKind string

const (
	SourceHTTP   SourceKind = "http"
	SourceSQL    SourceKind = "sql"
	SourceFiles  SourceKind = "files"
	SourceStatic SourceKind = "static"
)

type Config struct {
	Port        string        `mapstructure:"PORT"`
	AppName     string        `mapstructure:"APP_NAME"`
	LogLevel    string        `mapstructure:"LOG_LEVEL"`
	LogFormat   string        `mapstructure:"LOG_FORMAT"`
	APIBaseURL  string        `mapstructure:"API_BASE_URL"`
	DBDriver    string        `mapstructure:"DB_DRIVER"`
	DBDSN       string        `mapstructure:"DB_DSN"`
	SeedDir     string        `mapstructure:"SEED_DIR"`
	HTTPTimeout time.Duration `mapstructure:"HTTP_TIMEOUT"`
	CreateDelay time.Duration `mapstructure:"CREATE_DELAY"`
}

var keys = []string{
	"PORT", "APP_NAME", "LOG_LEVEL", "LOG_FORMAT",
	"API_BASE_URL", "DB_DRIVER", "DB_DSN", "SEED_DIR",
	"HTTP_TIMEOUT", "CREATE_DELAY",
}

// Load lee env vars y, si existe, un .env en el directorio actual.
func Load() (*Config, error) {
	return LoadFile(".env")
}

// LoadFile es Load con un archivo de config explícito (puede no existir).
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("PORT", "8080")
	v.SetDefault("APP_NAME", "dental-lab")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("DB_DRIVER", "pgx")
	v.SetDefault("HTTP_TIMEOUT", "10s")
	v.SetDefault("CREATE_DELAY", "1500ms")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	// .env es opcional
	_ = v.ReadInConfig()

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	cfg.DBDSN = strings.TrimSpace(cfg.DBDSN)
	cfg.SeedDir = strings.TrimSpace(cfg.SeedDir)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.HTTPTimeout <= 0 {
		return fmt.Errorf("HTTP_TIMEOUT must be positive, got %s", c.HTTPTimeout)
	}
	if c.CreateDelay < 0 {
		return fmt.Errorf("CREATE_DELAY must not be negative, got %s", c.CreateDelay)
	}
	if c.Source() == SourceSQL && c.DBDriver != "pgx" && c.DBDriver != "sqlite" {
		return fmt.Errorf("DB_DRIVER must be \"pgx\" or \"sqlite\", got %q", c.DBDriver)
	}
	return nil
}

// Source resuelve la fuente de datos: API_BASE_URL > DB_DSN > SEED_DIR > seed interno.
func (c *Config) Source() SourceKind {
	switch {
	case c.APIBaseURL != "":
		return SourceHTTP
	case c.DBDSN != "":
		return SourceSQL
	case c.SeedDir != "":
		return SourceFiles
	default:
		return SourceStatic
	}
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}
