// Package config loads runtime configuration for the dropwatch CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional config file selected with -c or --config. Files ending in
//     .yaml or .yml are read as YAML, anything else as JSON.
//  3. Command-line flags bound with (*Config).BindFlags, which override
//     earlier values.
//
// Supported flags
//
//	-a, --api string         base URL of the dashboard API
//	-t, --timeout seconds    per-request timeout
//	-d, --state-db string    path of the local session database
//	    --log-format string  text or zap
//	-c, --config string      config file
//
// # File schema
//
// Durations use timex.Duration, so values can be strings like "30s" or
// a bare number of seconds, the same unit as the -t flag:
//
//	{
//	  "api_base": "http://localhost:5000/api",
//	  "timeout": "30s",
//	  "state_db": "dropwatch.db",
//	  "log_format": "text"
//	}
//
// Fields missing from the file keep their default.
package config
