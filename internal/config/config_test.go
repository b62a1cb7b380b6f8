package config

import (
	"testing"
	"time"

	"github.com/deppfellow/blogs-server/internal/access"
)

func TestDefaultsAreValid(t *testing.T) {
	cfg := Defaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Defaults().Validate() error = %v", err)
	}
	if cfg.Server.Port != "3000" || cfg.Database.Name != "blogsDB" || cfg.Access.Profile != access.ProfileOpen {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if cfg.Observability.ServiceName != ServiceName || cfg.Observability.Environment != "development" {
		t.Errorf("observability = %+v", cfg.Observability)
	}
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("BLOGS_PRIMARY.ENV", "production")
	t.Setenv("BLOGS_DATABASE.HOST", "db.internal:27017")
	t.Setenv("BLOGS_SERVER.REQUEST_TIMEOUT", "3s")
	t.Setenv("BLOGS_OBSERVABILITY.LOGGING.LEVEL", "warn")
	t.Setenv("PORT", "8080")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig error = %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("port = %s, want PORT override", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal:27017" || cfg.Database.Name != "blogsDB" {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.Server.RequestTimeout != 3*time.Second {
		t.Errorf("request timeout = %v", cfg.Server.RequestTimeout)
	}
	if cfg.Observability.Logging.Level != "warn" || cfg.Observability.Logging.Format != "json" {
		t.Errorf("logging = %+v, want level override on top of defaults", cfg.Observability.Logging)
	}
	if !cfg.Observability.IsProduction() {
		t.Error("observability environment should follow primary.env")
	}
}

func TestValidateAccess(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "open without secret", mutate: func(c *Config) {}},
		{name: "protected without secret", mutate: func(c *Config) { c.Access.Profile = access.ProfileProtected }, wantErr: true},
		{name: "protected with secret", mutate: func(c *Config) {
			c.Access.Profile = access.ProfileProtected
			c.Auth.SecretKey = "sk_test"
		}},
		{name: "open plus extra route needs secret", mutate: func(c *Config) {
			c.Access.ProtectedRoutes = []string{"GET /allBlogs"}
		}, wantErr: true},
		{name: "unknown profile", mutate: func(c *Config) { c.Access.Profile = "admin" }, wantErr: true},
		{name: "malformed route", mutate: func(c *Config) {
			c.Auth.SecretKey = "sk_test"
			c.Access.ProtectedRoutes = []string{"GET"}
		}, wantErr: true},
		{name: "bad scheme", mutate: func(c *Config) { c.Database.Scheme = "postgres" }, wantErr: true},
		{name: "bad log level", mutate: func(c *Config) { c.Observability.Logging.Level = "trace" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Defaults()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestNotificationsEnabled(t *testing.T) {
	cfg := Defaults()
	if cfg.NotificationsEnabled() {
		t.Fatal("notifications should be off by default")
	}

	cfg.Redis.Address = "localhost:6379"
	cfg.Integration.ResendAPIKey = "re_test"
	if cfg.NotificationsEnabled() {
		t.Fatal("notifications need a sender address")
	}

	cfg.Integration.EmailFrom = "blogs@example.com"
	if !cfg.NotificationsEnabled() {
		t.Fatal("notifications should be on")
	}
}

func TestHealthChecksHas(t *testing.T) {
	hc := DefaultObservabilityConfig().HealthChecks
	if !hc.Has("database") || !hc.Has("redis") || hc.Has("kafka") {
		t.Errorf("checks = %v", hc.Checks)
	}
}
