// Package config provides configuration management for the Satchel server.
//
// Configuration is loaded from an optional YAML file merged with
// environment variable overrides; the source of each value is tracked for
// the "satchelctl configuration show" command.
//
// # Configuration Sources
//
//   - satchel.yml under SATCHEL_CONFIG_PATH (default /etc/satchel/config)
//   - SATCHEL_* environment variables (take precedence)
//
// # Key Settings
//
//   - SATCHEL_TOKEN_KEY: access token signing key (required, env only)
//   - DATABASE_URL: PostgreSQL connection string
//   - SATCHEL_BIND_ADDRESS, SATCHEL_PORT: listen address
//   - SATCHEL_ACCESS_TOKEN_TTL, SATCHEL_REFRESH_TOKEN_TTL: lifetimes in
//     seconds
package config
