package config

import (
	"os"
	"testing"
	"time"
)

// writeTempConfig creates a minimal configuration file required for
// LoadConfig and returns its path.
func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	f, err := os.CreateTemp("", "cfg-*.yml")
	if err != nil {
		t.Fatalf("create temp file: %v", err)
	}
	if _, err := f.WriteString(content); err != nil {
		t.Fatalf("write temp file: %v", err)
	}
	if err := f.Close(); err != nil {
		t.Fatalf("close temp file: %v", err)
	}
	return f.Name()
}

const minimalConfig = `swapflow:
  name: "TestApp"
  version: "1.0"
api:
  base_url: "https://api.hbdm.com"
`

func TestLoadConfig(t *testing.T) {
	path := writeTempConfig(t, minimalConfig)
	defer os.Remove(path)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Swapflow.Name != "TestApp" {
		t.Errorf("unexpected name: %s", cfg.Swapflow.Name)
	}
	if cfg.API.Timeout != 10*time.Second {
		t.Errorf("unexpected default timeout: %v", cfg.API.Timeout)
	}
	if cfg.API.RateLimit.RequestsPerSecond != 10 {
		t.Errorf("unexpected default rate limit: %d", cfg.API.RateLimit.RequestsPerSecond)
	}
}

func TestLoadConfigCredentialEnvOverride(t *testing.T) {
	path := writeTempConfig(t, minimalConfig+`  access_key: "yaml-access"
  secret_key: "yaml-secret"
`)
	defer os.Remove(path)

	t.Setenv("HUOBI_ACCESS_KEY", "env-access")
	t.Setenv("HUOBI_SECRET_KEY", "env-secret")

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.API.AccessKey != "env-access" || cfg.API.SecretKey != "env-secret" {
		t.Errorf("environment credentials not applied: %s/%s", cfg.API.AccessKey, cfg.API.SecretKey)
	}
}

func TestLoadConfigRejectsPartialCredentials(t *testing.T) {
	path := writeTempConfig(t, minimalConfig+`  access_key: "only-access"
`)
	defer os.Remove(path)

	t.Setenv("HUOBI_ACCESS_KEY", "")
	t.Setenv("HUOBI_SECRET_KEY", "")

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for access key without secret key")
	}
}

func TestLoadConfigRequiresBaseURL(t *testing.T) {
	path := writeTempConfig(t, `swapflow:
  name: "TestApp"
  version: "1.0"
`)
	defer os.Remove(path)

	if _, err := LoadConfig(path); err == nil {
		t.Fatal("expected error for missing base_url")
	}
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("APP_ENV", "prod")
	if got := DefaultPath(""); got != "config/config.prod.yml" {
		t.Errorf("unexpected production path: %s", got)
	}
	if got := DefaultPath("custom.yml"); got != "custom.yml" {
		t.Errorf("explicit path should win: %s", got)
	}

	t.Setenv("APP_ENV", "")
	if got := DefaultPath(""); got != "config/config.yml" {
		t.Errorf("unexpected development path: %s", got)
	}
}
