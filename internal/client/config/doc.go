// Package config loads runtime configuration for the FundScope CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend API
//	-w string   websocket URL of the realtime endpoint (derived from -a when empty)
//	-d string   sqlite DSN of the local credential database
//	-t int      API request timeout (seconds)
//	-b int      realtime heartbeat interval (seconds)
//	-r int      realtime reconnect delay (milliseconds)
//	-o string   loopback address for the OAuth callback listener
//	-m string   metrics listen address (empty disables the endpoint)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "20s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8080",
//	  "realtime_url": "ws://localhost:8080/ws",
//	  "database_dsn": "fundscope.db",
//	  "request_timeout": "15s",
//	  "heartbeat_interval": "20s",
//	  "reconnect_delay": "200ms",
//	  "oauth_callback_addr": "127.0.0.1:4300",
//	  "metrics_addr": ""
//	}
//
// Primary API
//
//   - type Config                     — runtime settings for the CLI
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//   - func (*Config) WSURL() string   — realtime URL, derived from the API base when unset
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
