package config

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/sethvargo/go-envconfig"

	"github.com/inkhouse/ecommerce-backend/internal/middleware"
)

// Configはアプリ全体の設定
type Config struct {
	Port     string `env:"PORT, default=8080"`
	GoEnv    string `env:"GO_ENV, default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// あれば POSTGRES_* より優先
	DatabaseURL string `env:"DATABASE_URL"`
	Postgres    PostgresConfig

	CORSAllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS, default=http://localhost:5173,http://localhost:3000"`
	AccessPolicy       string        `env:"ACCESS_POLICY, default=permit_all"`
	BcryptCost         int           `env:"BCRYPT_COST, default=12"`
	ShutdownTimeout    time.Duration `env:"SHUTDOWN_TIMEOUT, default=10s"`
}

type PostgresConfig struct {
	Host     string `env:"POSTGRES_HOST, default=localhost"`
	Port     int    `env:"POSTGRES_PORT, default=5432"`
	User     string `env:"POSTGRES_USER, default=postgres"`
	Password string `env:"POSTGRES_PASSWORD, default=postgres"`
	DB       string `env:"POSTGRES_DB, default=inkhouse"`
	SSLMode  string `env:"POSTGRES_SSLMODE, default=disable"`
}

// Load reads the process environment.
func Load(ctx context.Context) (Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// LoadFrom reads configuration from the given key/value map instead of the
// process environment.
func LoadFrom(ctx context.Context, env map[string]string) (Config, error) {
	return load(ctx, envconfig.MapLookuper(env))
}

func load(ctx context.Context, l envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if _, err := middleware.ParseAccessPolicy(c.AccessPolicy); err != nil {
		return fmt.Errorf("ACCESS_POLICY: %w", err)
	}
	return nil
}

// Policy returns the parsed access policy. Validate has already accepted it.
func (c Config) Policy() middleware.AccessPolicy {
	return middleware.AccessPolicy(c.AccessPolicy)
}

func (c Config) IsDevelopment() bool {
	return c.GoEnv == "development"
}

// Addr is the listen address for the HTTP server.
func (c Config) Addr() string {
	if c.Port[0] == ':' {
		return c.Port
	}
	return ":" + c.Port
}

// DSN は DATABASE_URL を最優先で使う
func (c Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}

	p := c.Postgres
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DB, p.SSLMode,
	)
}

// RedactedDSN hides the password for logging.
func (c Config) RedactedDSN() string {
	if c.DatabaseURL != "" {
		u, err := url.Parse(c.DatabaseURL)
		if err != nil {
			return "<unparseable DATABASE_URL>"
		}
		return u.Redacted()
	}

	p := c.Postgres
	return fmt.Sprintf("host=%s port=%d user=%s dbname=%s sslmode=%s", p.Host, p.Port, p.User, p.DB, p.SSLMode)
}
