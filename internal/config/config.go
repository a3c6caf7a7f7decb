package config

import (
	"fmt"
	"net/url"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"

	"github.com/bobmcallan/youtube-mcp/internal/common"
)

// Config represents the application configuration.
type Config struct {
	Server  ServerConfig         `toml:"server"`
	API     APIConfig            `toml:"api"`
	User    UserConfig           `toml:"user"`
	Keys    KeysConfig           `toml:"keys"`
	Logging common.LoggingConfig `toml:"logging"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port int    `toml:"port"`
	Host string `toml:"host"`
}

// APIConfig contains upstream YouTube API settings.
type APIConfig struct {
	URL string `toml:"url"`
}

// UserConfig contains per-operator defaults applied to tool calls.
type UserConfig struct {
	// ContentOwner fills onBehalfOfContentOwner parameters when the caller
	// omits them. Empty means the parameter is never defaulted.
	ContentOwner string `toml:"content_owner"`
}

// KeysConfig contains upstream credentials. Both are optional and opaque:
// this server attaches them to outbound requests and never refreshes or
// validates them.
type KeysConfig struct {
	APIKey      string `toml:"api_key"`
	AccessToken string `toml:"access_token"`
}

// LoadFromFile loads configuration with priority: defaults -> file -> env.
func LoadFromFile(path string) (*Config, error) {
	if path == "" {
		return LoadFromFiles()
	}
	return LoadFromFiles(path)
}

// LoadFromFiles loads configuration from multiple files with priority:
// defaults -> file1 -> file2 -> ... -> env.
// Later files override earlier files.
func LoadFromFiles(paths ...string) (*Config, error) {
	config := NewDefaultConfig()

	for i, path := range paths {
		if path == "" {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		err = toml.Unmarshal(data, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config file %s (file %d of %d): %w", path, i+1, len(paths), err)
		}
	}

	applyEnvOverrides(config)

	return config, nil
}

// applyEnvOverrides applies YTMCP_* environment variable overrides to config.
// Credentials additionally honor the conventional YOUTUBE_* variable names.
func applyEnvOverrides(config *Config) {
	if port := os.Getenv("YTMCP_SERVER_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			config.Server.Port = p
		}
	}
	if host := os.Getenv("YTMCP_SERVER_HOST"); host != "" {
		config.Server.Host = host
	}
	if apiURL := os.Getenv("YTMCP_API_URL"); apiURL != "" {
		config.API.URL = apiURL
	}
	if owner := os.Getenv("YTMCP_CONTENT_OWNER"); owner != "" {
		config.User.ContentOwner = owner
	}
	if key := os.Getenv("YOUTUBE_API_KEY"); key != "" {
		config.Keys.APIKey = key
	}
	if token := os.Getenv("YOUTUBE_ACCESS_TOKEN"); token != "" {
		config.Keys.AccessToken = token
	}
	if level := os.Getenv("YTMCP_LOG_LEVEL"); level != "" {
		config.Logging.Level = level
	}
	if format := os.Getenv("YTMCP_LOG_FORMAT"); format != "" {
		config.Logging.Format = format
	}
}

// ApplyFlagOverrides applies command-line flag overrides to config.
func ApplyFlagOverrides(config *Config, port int, host string) {
	if port > 0 {
		config.Server.Port = port
	}
	if host != "" {
		config.Server.Host = host
	}
}

// Validate checks the configuration for values the server cannot start with.
// Returns a list of human-readable issues, empty when the config is usable.
func (c *Config) Validate() []string {
	var issues []string

	if c.Server.Port < 1 || c.Server.Port > 65535 {
		issues = append(issues, fmt.Sprintf("server port %d out of range (1-65535)", c.Server.Port))
	}

	if c.API.URL == "" {
		issues = append(issues, "api url is empty")
	} else {
		u, err := url.Parse(c.API.URL)
		if err != nil {
			issues = append(issues, fmt.Sprintf("api url %q is not a valid URL: %v", c.API.URL, err))
		} else if u.Scheme != "http" && u.Scheme != "https" {
			issues = append(issues, fmt.Sprintf("api url %q must use http or https", c.API.URL))
		}
	}

	return issues
}
