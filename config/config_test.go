package config

import (
	"testing"
	"time"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"storage": map[string]any{
			"bucketUrl":      "",
			"publicBaseUrl":  "",
			"maxUploadBytes": 0,
		},
		"session": map[string]any{
			"sweepInterval": "1h",
			"cookieName":    "campus_session",
		},
		"postgres": map[string]any{
			"sslMode": "disable",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "STORAGE_BUCKETURL", want: "storage.bucketUrl"},
		{envKey: "STORAGE_PUBLICBASEURL", want: "storage.publicBaseUrl"},
		{envKey: "SESSION_SWEEPINTERVAL", want: "session.sweepInterval"},
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	if cfg.Session.TTL != 7*24*time.Hour {
		t.Fatalf("session ttl default = %v", cfg.Session.TTL)
	}
	if cfg.Session.SweepInterval != time.Hour {
		t.Fatalf("sweep interval default = %v", cfg.Session.SweepInterval)
	}
	if cfg.Session.CookieName != "campus_session" {
		t.Fatalf("cookie name default = %q", cfg.Session.CookieName)
	}
	if cfg.Storage.MaxUploadBytes != 20<<20 {
		t.Fatalf("max upload default = %d", cfg.Storage.MaxUploadBytes)
	}
	if cfg.Storage.SignedURLTTL != time.Hour {
		t.Fatalf("signed url ttl default = %v", cfg.Storage.SignedURLTTL)
	}
	if cfg.Content.Driver != "postgres" {
		t.Fatalf("content driver default = %q", cfg.Content.Driver)
	}
}

func TestSessionConfig_SecureCookies(t *testing.T) {
	forced := true
	tests := []struct {
		name string
		cfg  *SessionConfig
		env  string
		want bool
	}{
		{name: "explicit override wins", cfg: &SessionConfig{CookieSecure: &forced}, env: "local", want: true},
		{name: "production implies secure", cfg: &SessionConfig{}, env: "production", want: true},
		{name: "local defaults to insecure", cfg: &SessionConfig{}, env: "local", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.cfg.SecureCookies(tt.env); got != tt.want {
				t.Fatalf("SecureCookies(%q) = %v, want %v", tt.env, got, tt.want)
			}
		})
	}
}
