// Package config loads runtime configuration for the Momentum CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected via -c or -config.
//  3. Environment: MOMENTUM_SERVER_URL, MOMENTUM_REQUEST_TIMEOUT,
//     MOMENTUM_LOG_LEVEL. A dotenv file (-env-file, or ./.env when present)
//     fills variables that are not already set.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   base URL of the Momentum API
//	-t int      request timeout (seconds)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_base_url": "http://localhost:5000/api",
//	  "request_timeout": "15s",
//	  "log_level": "info"
//	}
package config
