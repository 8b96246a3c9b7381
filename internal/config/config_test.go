package config

import (
	"testing"
	"time"
)

// setRequiredEnv sets the variables without defaults that Load needs.
func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("DB_PASSWORD", "test-password")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoad_Defaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Server.Env != "development" {
		t.Errorf("Expected default env development, got %s", cfg.Server.Env)
	}
	if cfg.Database.Name != "estates" {
		t.Errorf("Expected default database name estates, got %s", cfg.Database.Name)
	}
	if cfg.Auth.TokenTTL != 24*time.Hour {
		t.Errorf("Expected default token TTL of 24h, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Upload.MaxBytes != 5*1024*1024 {
		t.Errorf("Expected default upload limit of 5MB, got %d", cfg.Upload.MaxBytes)
	}
	if len(cfg.CORS.Origins) != 2 {
		t.Errorf("Expected 2 default CORS origins, got %d", len(cfg.CORS.Origins))
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("PORT", "9090")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("JWT_TTL_HOURS", "2")
	t.Setenv("UPLOAD_BASE_URL", "https://cdn.example.com/uploads/")
	t.Setenv("CORS_ORIGINS", "https://example.com, https://admin.example.com")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != "9090" {
		t.Errorf("Expected port 9090, got %s", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("Expected DB host db.internal, got %s", cfg.Database.Host)
	}
	if cfg.Auth.TokenTTL != 2*time.Hour {
		t.Errorf("Expected token TTL of 2h, got %s", cfg.Auth.TokenTTL)
	}
	// Trailing slash trimmed so URL joins stay clean
	if cfg.Upload.BaseURL != "https://cdn.example.com/uploads" {
		t.Errorf("Expected trimmed base URL, got %s", cfg.Upload.BaseURL)
	}
	if len(cfg.CORS.Origins) != 2 || cfg.CORS.Origins[1] != "https://admin.example.com" {
		t.Errorf("Expected whitespace-trimmed origins, got %v", cfg.CORS.Origins)
	}
}

func TestLoad_MissingRequired(t *testing.T) {
	t.Setenv("DB_PASSWORD", "")
	t.Setenv("JWT_SECRET", "")

	if _, err := Load(); err == nil {
		t.Error("Expected Load() to fail without DB_PASSWORD and JWT_SECRET")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			Server:   ServerConfig{Port: "8080", Env: "test"},
			Database: DatabaseConfig{Host: "localhost", Port: "5432", Name: "estates", User: "postgres", Password: "pw", PoolMin: 2, PoolMax: 10},
			Auth:     AuthConfig{JWTSecret: "secret", TokenTTL: time.Hour},
			Upload:   UploadConfig{Dir: "./uploads", BaseURL: "/uploads", MaxBytes: 1024},
			CORS:     CORSConfig{Origins: []string{"http://localhost:3000"}},
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"valid config", func(*Config) {}, false},
		{"missing port", func(c *Config) { c.Server.Port = "" }, true},
		{"missing db password", func(c *Config) { c.Database.Password = "" }, true},
		{"pool min above max", func(c *Config) { c.Database.PoolMin = 20 }, true},
		{"missing jwt secret", func(c *Config) { c.Auth.JWTSecret = "" }, true},
		{"zero token ttl", func(c *Config) { c.Auth.TokenTTL = 0 }, true},
		{"missing upload dir", func(c *Config) { c.Upload.Dir = "" }, true},
		{"zero upload limit", func(c *Config) { c.Upload.MaxBytes = 0 }, true},
		{"no cors origins", func(c *Config) { c.CORS.Origins = nil }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		input string
		want  int
	}{
		{"", 0},
		{"http://a.com", 1},
		{"http://a.com,http://b.com", 2},
		{" http://a.com , , http://b.com ", 2},
	}

	for _, tt := range tests {
		got := parseOrigins(tt.input)
		if len(got) != tt.want {
			t.Errorf("parseOrigins(%q) returned %d origins, expected %d", tt.input, len(got), tt.want)
		}
	}
}
