// Package config handles application configuration loading and validation.
//
// Configuration is loaded from config.yml and validated using struct tags.
// A .env file and EVENTS2KML_* environment variables override file values.
package config
