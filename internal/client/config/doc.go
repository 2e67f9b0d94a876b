// Package config loads runtime configuration for the planner CLI.
//
// Sources, later ones winning:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c/-config or the CONFIG variable.
//  3. A .env file in the working directory, then the process environment.
//  4. Command-line flags.
//
// Flags
//
//	-a string                 backend base address, e.g. http://localhost:8080
//	-s string                 path of the local credential database
//	-l string                 log level (debug, info, warn, error)
//	-auth-fallback=bool       fall back to the simulator when login/register fail
//	-generate-fallback=bool   fall back to the simulator when generation fails
//
// Environment
//
//	API_URL, PLANNER_STORAGE_PATH, LOG_LEVEL,
//	PLANNER_AUTH_FALLBACK, PLANNER_GENERATE_FALLBACK
//
// # JSON schema
//
//	{
//	  "api_url": "http://localhost:8080",
//	  "storage_path": "/home/me/.config/tripplanner/planner.db",
//	  "log_level": "info",
//	  "auth_fallback": false,
//	  "generate_fallback": true
//	}
//
// An empty backend address selects fully local (simulated) operation.
package config
