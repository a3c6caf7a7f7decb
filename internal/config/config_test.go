package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	if cfg.Server.Port != 4280 {
		t.Errorf("expected default port 4280, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host localhost, got %s", cfg.Server.Host)
	}
	if cfg.API.URL != "https://www.googleapis.com/youtube/v3" {
		t.Errorf("expected default api url https://www.googleapis.com/youtube/v3, got %s", cfg.API.URL)
	}
	if cfg.User.ContentOwner != "" {
		t.Errorf("expected empty default content owner, got %s", cfg.User.ContentOwner)
	}
	if cfg.Keys.APIKey != "" {
		t.Errorf("expected empty default api key, got %s", cfg.Keys.APIKey)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected default log level info, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected default log format text, got %s", cfg.Logging.Format)
	}
}

func TestLoadFromFiles_NoFiles(t *testing.T) {
	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles with no files should not error: %v", err)
	}
	if cfg.Server.Port != 4280 {
		t.Errorf("expected default port 4280, got %d", cfg.Server.Port)
	}
}

func TestLoadFromFiles_ValidTOML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "test.toml")

	content := `
[server]
port = 9090
host = "0.0.0.0"

[api]
url = "http://localhost:8601"

[user]
content_owner = "owner-1"

[keys]
api_key = "test-api-key"
access_token = "test-access-token"

[logging]
level = "debug"
format = "json"
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("expected host 0.0.0.0, got %s", cfg.Server.Host)
	}
	if cfg.API.URL != "http://localhost:8601" {
		t.Errorf("expected api url http://localhost:8601, got %s", cfg.API.URL)
	}
	if cfg.User.ContentOwner != "owner-1" {
		t.Errorf("expected content owner owner-1, got %s", cfg.User.ContentOwner)
	}
	if cfg.Keys.APIKey != "test-api-key" {
		t.Errorf("expected api key test-api-key, got %s", cfg.Keys.APIKey)
	}
	if cfg.Keys.AccessToken != "test-access-token" {
		t.Errorf("expected access token test-access-token, got %s", cfg.Keys.AccessToken)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format json, got %s", cfg.Logging.Format)
	}
}

func TestLoadFromFiles_PartialOverride(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "partial.toml")

	// Only override port; everything else should stay default
	content := `
[server]
port = 3000
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 3000 {
		t.Errorf("expected port 3000, got %d", cfg.Server.Port)
	}
	// Host should remain the default
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host localhost, got %s", cfg.Server.Host)
	}
	// API URL should remain the default
	if cfg.API.URL != DefaultAPIURL {
		t.Errorf("expected default api url, got %s", cfg.API.URL)
	}
}

func TestLoadFromFiles_MultipleFiles(t *testing.T) {
	dir := t.TempDir()

	base := filepath.Join(dir, "base.toml")
	baseContent := `
[server]
port = 3000
host = "base-host"

[keys]
api_key = "base-key"
`
	if err := os.WriteFile(base, []byte(baseContent), 0644); err != nil {
		t.Fatal(err)
	}

	override := filepath.Join(dir, "override.toml")
	overrideContent := `
[server]
port = 4000
`
	if err := os.WriteFile(override, []byte(overrideContent), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFromFiles(base, override)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	// Later file wins for port
	if cfg.Server.Port != 4000 {
		t.Errorf("expected port 4000 from override file, got %d", cfg.Server.Port)
	}
	// Earlier file's host survives
	if cfg.Server.Host != "base-host" {
		t.Errorf("expected host base-host from base file, got %s", cfg.Server.Host)
	}
	// Earlier file's key survives
	if cfg.Keys.APIKey != "base-key" {
		t.Errorf("expected api key base-key from base file, got %s", cfg.Keys.APIKey)
	}
}

func TestLoadFromFiles_MissingFile(t *testing.T) {
	_, err := LoadFromFiles("/nonexistent/path/config.toml")
	if err == nil {
		t.Fatal("expected error for missing config file, got nil")
	}
}

func TestLoadFromFiles_InvalidTOML(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "invalid.toml")

	if err := os.WriteFile(tomlPath, []byte("this is not valid {{toml"), 0644); err != nil {
		t.Fatal(err)
	}

	_, err := LoadFromFiles(tomlPath)
	if err == nil {
		t.Fatal("expected error for invalid TOML, got nil")
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("YTMCP_SERVER_PORT", "5555")
	t.Setenv("YTMCP_SERVER_HOST", "env-host")
	t.Setenv("YTMCP_API_URL", "http://env-upstream:9999")
	t.Setenv("YTMCP_CONTENT_OWNER", "env-owner")
	t.Setenv("YOUTUBE_API_KEY", "env-api-key")
	t.Setenv("YOUTUBE_ACCESS_TOKEN", "env-token")
	t.Setenv("YTMCP_LOG_LEVEL", "debug")
	t.Setenv("YTMCP_LOG_FORMAT", "json")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	if cfg.Server.Port != 5555 {
		t.Errorf("expected env port 5555, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "env-host" {
		t.Errorf("expected env host env-host, got %s", cfg.Server.Host)
	}
	if cfg.API.URL != "http://env-upstream:9999" {
		t.Errorf("expected env api url, got %s", cfg.API.URL)
	}
	if cfg.User.ContentOwner != "env-owner" {
		t.Errorf("expected env content owner, got %s", cfg.User.ContentOwner)
	}
	if cfg.Keys.APIKey != "env-api-key" {
		t.Errorf("expected env api key, got %s", cfg.Keys.APIKey)
	}
	if cfg.Keys.AccessToken != "env-token" {
		t.Errorf("expected env access token, got %s", cfg.Keys.AccessToken)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected env log level debug, got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected env log format json, got %s", cfg.Logging.Format)
	}
}

func TestApplyEnvOverrides_InvalidPort(t *testing.T) {
	t.Setenv("YTMCP_SERVER_PORT", "not-a-number")

	cfg, err := LoadFromFiles()
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	// Invalid port value is ignored; default survives
	if cfg.Server.Port != 4280 {
		t.Errorf("expected default port 4280 for invalid env value, got %d", cfg.Server.Port)
	}
}

func TestEnvOverridesFileConfig(t *testing.T) {
	dir := t.TempDir()
	tomlPath := filepath.Join(dir, "test.toml")

	content := `
[api]
url = "http://file-upstream:1111"
`
	if err := os.WriteFile(tomlPath, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("YTMCP_API_URL", "http://env-upstream:2222")

	cfg, err := LoadFromFiles(tomlPath)
	if err != nil {
		t.Fatalf("LoadFromFiles failed: %v", err)
	}

	// Env wins over file
	if cfg.API.URL != "http://env-upstream:2222" {
		t.Errorf("expected env api url to win over file, got %s", cfg.API.URL)
	}
}

func TestApplyFlagOverrides(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 7777, "flag-host")

	if cfg.Server.Port != 7777 {
		t.Errorf("expected flag port 7777, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "flag-host" {
		t.Errorf("expected flag host flag-host, got %s", cfg.Server.Host)
	}
}

func TestApplyFlagOverrides_ZeroPortNoOverride(t *testing.T) {
	cfg := NewDefaultConfig()

	ApplyFlagOverrides(cfg, 0, "")

	if cfg.Server.Port != 4280 {
		t.Errorf("expected default port 4280 when flag unset, got %d", cfg.Server.Port)
	}
	if cfg.Server.Host != "localhost" {
		t.Errorf("expected default host localhost when flag unset, got %s", cfg.Server.Host)
	}
}

func TestValidate_DefaultConfigIsValid(t *testing.T) {
	cfg := NewDefaultConfig()

	issues := cfg.Validate()
	if len(issues) != 0 {
		t.Errorf("expected no validation issues for default config, got %v", issues)
	}
}

func TestValidate_BadPort(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Server.Port = 0

	issues := cfg.Validate()
	if len(issues) == 0 {
		t.Error("expected validation issue for port 0, got none")
	}
}

func TestValidate_EmptyAPIURL(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.API.URL = ""

	issues := cfg.Validate()
	if len(issues) == 0 {
		t.Error("expected validation issue for empty api url, got none")
	}
}

func TestValidate_BadAPIURLScheme(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.API.URL = "ftp://example.com"

	issues := cfg.Validate()
	if len(issues) == 0 {
		t.Error("expected validation issue for ftp api url, got none")
	}
}
