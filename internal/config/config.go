package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Environment names select between the vendor's production and test
// endpoint sets.
const (
	EnvProduction = "production"
	EnvTest       = "test"
)

// Defaults match the public ConnectLife third-party application credentials
// and the Home Assistant integration's redirect URL. The redirect hostname
// must resolve to loopback via a hosts-file entry for the local callback
// receiver to work.
const (
	DefaultClientID     = "9793620883275788"
	DefaultClientSecret = "7h1m3gZVlILyBvIFBNmzXwoFYLhkGqG9NQd2jBzuZCqJKCTyCtYwQtXi4tVBjg9B"
	DefaultCallbackURL  = "http://homeassistant.local:8123/auth/external/callback"
	DefaultTokenFile    = "~/.connectlife_tokens.json"
)

// Per-environment endpoint bases.
const (
	productionOAuthURL = "https://oauth.hijuconn.com"
	productionAPIURL   = "https://juapi-3rd.hijuconn.com"
	productionWSURL    = "wss://clife-eu-gateway.hijuconn.com"

	testOAuthURL = "https://test-oauth.hijuconn.com"
	testAPIURL   = "https://test-juapi-3rd.hijuconn.com"
	testWSURL    = "wss://test-clife-eu-gateway.hijuconn.com"
)

// Path suffixes appended to the endpoint bases.
const (
	authorizePath = "/login"
	tokenPath     = "/oauth/token"
	websocketPath = "/msg/get_msg_and_channels"
)

// Config holds the resolved client configuration.
//
// Resolution order (later wins): built-in defaults for the selected
// environment, the YAML config file, then environment variables.
type Config struct {
	ClientID     string `yaml:"client_id,omitempty"`
	ClientSecret string `yaml:"client_secret,omitempty"`
	CallbackURL  string `yaml:"callback_url,omitempty"`
	OAuthURL     string `yaml:"oauth_url,omitempty"`
	APIBaseURL   string `yaml:"api_base_url,omitempty"`
	WSBaseURL    string `yaml:"ws_url,omitempty"`
	TokenFile    string `yaml:"token_file,omitempty"`
	Environment  string `yaml:"environment,omitempty"`
	LogLevel     string `yaml:"log_level,omitempty"`
}

// Load resolves the full configuration. It loads a .env file if one exists
// (./.env, then ~/.connectlife.env), reads the optional YAML config file,
// and applies environment variable overrides.
func Load() (*Config, error) {
	loadDotEnv()

	env := firstNonEmpty(os.Getenv("CONNECTLIFE_ENV"), EnvProduction)

	cfg := defaultsFor(env)

	fileCfg, err := loadFile()
	if err != nil {
		return nil, err
	}
	if fileCfg != nil {
		cfg.merge(fileCfg)
	}

	cfg.merge(&Config{
		ClientID:     os.Getenv("CONNECTLIFE_CLIENT_ID"),
		ClientSecret: os.Getenv("CONNECTLIFE_CLIENT_SECRET"),
		CallbackURL:  os.Getenv("CONNECTLIFE_CALLBACK_URL"),
		OAuthURL:     os.Getenv("CONNECTLIFE_OAUTH_URL"),
		APIBaseURL:   os.Getenv("CONNECTLIFE_API_BASE_URL"),
		WSBaseURL:    os.Getenv("CONNECTLIFE_WS_URL"),
		TokenFile:    os.Getenv("CONNECTLIFE_TOKEN_FILE"),
		Environment:  os.Getenv("CONNECTLIFE_ENV"),
		LogLevel:     os.Getenv("CONNECTLIFE_LOG_LEVEL"),
	})

	// An environment override from the file or env vars re-bases any
	// endpoint that was not itself explicitly set.
	if cfg.Environment != env {
		rebased := defaultsFor(cfg.Environment)
		if cfg.OAuthURL == defaultsFor(env).OAuthURL {
			cfg.OAuthURL = rebased.OAuthURL
		}
		if cfg.APIBaseURL == defaultsFor(env).APIBaseURL {
			cfg.APIBaseURL = rebased.APIBaseURL
		}
		if cfg.WSBaseURL == defaultsFor(env).WSBaseURL {
			cfg.WSBaseURL = rebased.WSBaseURL
		}
	}

	return cfg, nil
}

// defaultsFor returns the built-in configuration for an environment name.
// Unknown names fall back to production endpoints.
func defaultsFor(env string) *Config {
	cfg := &Config{
		ClientID:     DefaultClientID,
		ClientSecret: DefaultClientSecret,
		CallbackURL:  DefaultCallbackURL,
		TokenFile:    DefaultTokenFile,
		Environment:  env,
	}
	if env == EnvTest {
		cfg.OAuthURL = testOAuthURL
		cfg.APIBaseURL = testAPIURL
		cfg.WSBaseURL = testWSURL
	} else {
		cfg.OAuthURL = productionOAuthURL
		cfg.APIBaseURL = productionAPIURL
		cfg.WSBaseURL = productionWSURL
	}
	return cfg
}

// merge overlays non-empty fields of other onto c.
func (c *Config) merge(other *Config) {
	c.ClientID = firstNonEmpty(other.ClientID, c.ClientID)
	c.ClientSecret = firstNonEmpty(other.ClientSecret, c.ClientSecret)
	c.CallbackURL = firstNonEmpty(other.CallbackURL, c.CallbackURL)
	c.OAuthURL = firstNonEmpty(other.OAuthURL, c.OAuthURL)
	c.APIBaseURL = firstNonEmpty(other.APIBaseURL, c.APIBaseURL)
	c.WSBaseURL = firstNonEmpty(other.WSBaseURL, c.WSBaseURL)
	c.TokenFile = firstNonEmpty(other.TokenFile, c.TokenFile)
	c.Environment = firstNonEmpty(other.Environment, c.Environment)
	c.LogLevel = firstNonEmpty(other.LogLevel, c.LogLevel)
}

// AuthorizeURL returns the full OAuth2 authorization endpoint.
func (c *Config) AuthorizeURL() string {
	return strings.TrimRight(c.OAuthURL, "/") + authorizePath
}

// TokenURL returns the full OAuth2 token endpoint.
func (c *Config) TokenURL() string {
	return strings.TrimRight(c.OAuthURL, "/") + tokenPath
}

// WebSocketURL returns the full push-message gateway endpoint.
func (c *Config) WebSocketURL() string {
	return strings.TrimRight(c.WSBaseURL, "/") + websocketPath
}

// TokenFilePath returns the token file path with a leading "~" expanded
// to the user's home directory.
func (c *Config) TokenFilePath() (string, error) {
	return ExpandHome(c.TokenFile)
}

// ExpandHome expands a leading "~" or "~/" in path to the home directory.
func ExpandHome(path string) (string, error) {
	if path == "~" || strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot determine home directory: %w", err)
		}
		return filepath.Join(home, strings.TrimPrefix(path[1:], "/")), nil
	}
	return path, nil
}

// loadDotEnv loads environment variables from a .env file if one exists.
// The local .env takes precedence over ~/.connectlife.env; only one is read.
func loadDotEnv() {
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
		return
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return
	}
	homeEnv := filepath.Join(home, ".connectlife.env")
	if _, err := os.Stat(homeEnv); err == nil {
		_ = godotenv.Load(homeEnv)
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
