package config

import "github.com/bobmcallan/youtube-mcp/internal/common"

// DefaultAPIURL is the YouTube Data API v3 root every catalog path is
// resolved against. Overridable for testing and for API-compatible proxies.
const DefaultAPIURL = "https://www.googleapis.com/youtube/v3"

// NewDefaultConfig creates a configuration with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Port: 4280,
			Host: "localhost",
		},
		API: APIConfig{
			URL: DefaultAPIURL,
		},
		User: UserConfig{},
		Keys: KeysConfig{},
		Logging: common.LoggingConfig{
			Level:      "info",
			Format:     "text",
			Outputs:    []string{"console", "file"},
			FilePath:   "logs/youtube-mcp.log",
			MaxSizeMB:  100,
			MaxBackups: 3,
		},
	}
}
