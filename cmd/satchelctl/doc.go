// Package main provides satchelctl, the CLI for the Satchel inventory
// server.
//
// Satchel is an HTTP service giving each registered user exclusive,
// authenticated control over a personal inventory of named items with
// integer quantities.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: storage interfaces and GORM implementations
//   - pkg/token: access/refresh token minting and verification
//   - pkg/identity: resolved request identity
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
//	# Generate a token signing key
//	export SATCHEL_TOKEN_KEY=$(satchelctl token-key generate)
//
//	# Run database migrations
//	satchelctl db migrate
//
//	# Start the server
//	satchelctl server
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - SATCHEL_TOKEN_KEY: access token signing key
//   - SATCHEL_BIND_ADDRESS, SATCHEL_PORT: listen address
//   - SATCHEL_LOG_LEVEL: set to debug for SQL logging
package main
