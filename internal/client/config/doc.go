// Package config loads runtime configuration for the diary terminal client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with --config. Comments and trailing commas
//     are allowed.
//  3. Environment variables: DIARY_API_URL, DIARY_TIMEOUT, DIARY_PAGE_SIZE,
//     DIARY_HISTORY_FILE, DIARY_LOG_LEVEL.
//  4. Global command-line flags, applied by the cli package.
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "5s" or integer nanoseconds:
//
//	{
//	  "api_url": "http://localhost:3000",
//	  "request_timeout": "5s",
//	  "page_size": 5
//	}
package config
