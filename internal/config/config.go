// Package config manages environment variables.
//
// It reads variables from the process environment (and a `.env` file if present),
// loads them into structured Go types on top of in-code defaults, and
// validates that required values are present so they
// can be reused across the application runtime.
//
// Responsibilities:
//   - Load environment variables (optionally from a `.env` file).
//   - Map env vars into a structured Go config (structs).
//   - Validate required values so the app fails fast on bad/missing config.
//   - Provide sane defaults for optional config blocks (e.g. observability).
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists, it gets loaded into
	// process env before any config is read.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/rs/zerolog"

	"github.com/deppfellow/blogs-server/internal/access"
)

// EnvPrefix is stripped from every env var before it is mapped to a koanf key.
//
// Nested keys use "." so BLOGS_SERVER.PORT maps to Config.Server.Port.
const EnvPrefix = "BLOGS_"

// ServiceName tags logs, traces and health responses.
const ServiceName = "blogs-server"

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf should map values from.
// The `validate:"..."` tags are enforced by go-playground/validator.
//
// Observability is a pointer because it is optional. If not provided,
// defaults are injected at load time.
type Config struct {
	Primary       Primary              `koanf:"primary" validate:"required"`
	Server        ServerConfig         `koanf:"server" validate:"required"`
	Database      DatabaseConfig       `koanf:"database" validate:"required"`
	Redis         RedisConfig          `koanf:"redis"`
	Auth          AuthConfig           `koanf:"auth"`
	Access        AccessConfig         `koanf:"access"`
	Integration   IntegrationConfig    `koanf:"integration"`
	Observability *ObservabilityConfig `koanf:"observability"`
}

// Primary holds top-level information about the runtime environment.
type Primary struct {
	Env string `koanf:"env" validate:"required"`
}

// ServerConfig groups settings for the HTTP server runtime.
//
// Read/Write/Idle timeouts are seconds. RequestTimeout is the deadline put on
// every request context and is parsed as a duration string ("10s").
type ServerConfig struct {
	Port               string        `koanf:"port" validate:"required"`
	ReadTimeout        int           `koanf:"read_timeout" validate:"required,min=1"`
	WriteTimeout       int           `koanf:"write_timeout" validate:"required,min=1"`
	IdleTimeout        int           `koanf:"idle_timeout" validate:"required,min=1"`
	RequestTimeout     time.Duration `koanf:"request_timeout" validate:"min=0"`
	CORSAllowedOrigins []string      `koanf:"cors_allowed_origins" validate:"required"`
}

// DatabaseConfig contains MongoDB connection parameters.
//
// The connection string is assembled from parts so the password never has
// to be URL-encoded by whoever writes the env file.
type DatabaseConfig struct {
	Scheme         string        `koanf:"scheme" validate:"required,oneof=mongodb mongodb+srv"`
	Host           string        `koanf:"host" validate:"required"`
	User           string        `koanf:"user"`
	Password       string        `koanf:"password"`
	Name           string        `koanf:"name" validate:"required"`
	Options        string        `koanf:"options"`
	AppName        string        `koanf:"app_name"`
	MaxPoolSize    uint64        `koanf:"max_pool_size"`
	ConnectTimeout time.Duration `koanf:"connect_timeout"`
}

// RedisConfig contains Redis connection details.
// An empty Address disables Redis and everything built on it (jobs, notifications).
type RedisConfig struct {
	Address string `koanf:"address"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Address != ""
}

// AuthConfig stores authentication-related secrets.
type AuthConfig struct {
	SecretKey string `koanf:"secret_key"`
}

// AccessConfig selects which routes require a verified bearer token.
//
// Profile is one of access.ProfileOpen, access.ProfileProtected, access.ProfileStrict.
// ProtectedRoutes adds "METHOD /path" entries on top of the profile.
type AccessConfig struct {
	Profile         string   `koanf:"profile" validate:"required"`
	ProtectedRoutes []string `koanf:"protected_routes"`
}

// IntegrationConfig holds third-party API credentials.
type IntegrationConfig struct {
	ResendAPIKey string `koanf:"resend_api_key"`
	EmailFrom    string `koanf:"email_from"`
}

// NotificationsEnabled reports whether comment notification emails can be sent.
func (c *Config) NotificationsEnabled() bool {
	return c.Redis.Enabled() && c.Integration.ResendAPIKey != "" && c.Integration.EmailFrom != ""
}

// Defaults returns the configuration used before any env var is applied.
//
// koanf only overwrites the keys it finds, so everything set here survives
// unless the environment says otherwise.
func Defaults() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "3000",
			ReadTimeout:        30,
			WriteTimeout:       30,
			IdleTimeout:        60,
			RequestTimeout:     10 * time.Second,
			CORSAllowedOrigins: []string{"*"},
		},
		Database: DatabaseConfig{
			Scheme:         "mongodb",
			Host:           "localhost:27017",
			Name:           "blogsDB",
			AppName:        ServiceName,
			MaxPoolSize:    100,
			ConnectTimeout: 10 * time.Second,
		},
		Access: AccessConfig{
			Profile: access.ProfileOpen,
		},
		Observability: DefaultObservabilityConfig(),
	}
}

// LoadConfig loads configuration from environment variables, unmarshals it into
// Config structs, validates it, applies defaults, and returns the resulting config.
//
// Behavior summary:
//   - Starts from Defaults()
//   - Loads env vars with prefix BLOGS_ ("." separates nested keys)
//   - Honors a bare PORT variable for the listening port
//   - Validates struct tags, then the cross-field rules in Validate
//   - Partial observability env vars override the defaults field by field
func LoadConfig() (*Config, error) {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil)
	if err != nil {
		logger.Error().Err(err).Msg("could not load initial env variables")
		return nil, fmt.Errorf("loading env variables: %w", err)
	}

	mainConfig := Defaults()
	if err := k.Unmarshal("", mainConfig); err != nil {
		logger.Error().Err(err).Msg("could not unmarshal main config")
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}

	if port := os.Getenv("PORT"); port != "" {
		mainConfig.Server.Port = port
	}

	if err := mainConfig.Validate(); err != nil {
		logger.Error().Err(err).Msg("config validation failed")
		return nil, err
	}

	return mainConfig, nil
}

// Validate runs struct tag validation, fills in observability defaults and
// checks the rules tags cannot express.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config validation failed: %w", err)
	}

	if c.Observability == nil {
		c.Observability = DefaultObservabilityConfig()
	}

	// Service name is fixed; environment always follows primary.env.
	c.Observability.ServiceName = ServiceName
	c.Observability.Environment = c.Primary.Env

	if err := c.Observability.Validate(); err != nil {
		return fmt.Errorf("invalid observability config: %w", err)
	}

	policy, err := c.AccessPolicy()
	if err != nil {
		return err
	}
	if policy.ProtectsAny() && c.Auth.SecretKey == "" {
		return fmt.Errorf("auth.secret_key is required when access profile %q protects routes", policy.Name())
	}

	return nil
}

// AccessPolicy resolves the configured profile plus any extra protected routes.
func (c *Config) AccessPolicy() (access.Policy, error) {
	policy, err := access.ProfileByName(c.Access.Profile)
	if err != nil {
		return access.Policy{}, err
	}
	return policy.WithProtected(c.Access.ProtectedRoutes...)
}
