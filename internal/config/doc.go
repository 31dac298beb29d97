// Package config resolves the ConnectLife client configuration.
//
// Configuration is layered, with later layers overriding earlier ones:
//
//  1. Built-in defaults for the selected environment (production or test
//     vendor endpoints, the public third-party client credentials, the Home
//     Assistant callback URL, and ~/.connectlife_tokens.json).
//  2. The YAML config file at $XDG_CONFIG_HOME/connectlife/config.yaml
//     (platform-appropriate location via GetConfigDir).
//  3. CONNECTLIFE_* environment variables, optionally sourced from a .env
//     file (./.env, falling back to ~/.connectlife.env).
//
// Environment variables:
//
//	CONNECTLIFE_CLIENT_ID       OAuth2 client id
//	CONNECTLIFE_CLIENT_SECRET   OAuth2 client secret
//	CONNECTLIFE_CALLBACK_URL    OAuth2 redirect URL (must resolve to loopback)
//	CONNECTLIFE_OAUTH_URL       authorization server base URL
//	CONNECTLIFE_API_BASE_URL    device API base URL
//	CONNECTLIFE_WS_URL          push-message gateway base URL
//	CONNECTLIFE_TOKEN_FILE      token file path (default ~/.connectlife_tokens.json)
//	CONNECTLIFE_ENV             "production" (default) or "test"
//	CONNECTLIFE_LOG_LEVEL       debug|info|warn|error (silent when unset)
package config
