package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultPath is consulted when no config path is given.
const DefaultPath = "config.yml"

// Defaults returns the configuration used when no file is present.
func Defaults() AppConfig {
	return AppConfig{
		Input:  InputConfig{Path: "-"},
		Output: OutputConfig{Path: "-", Adapter: "kml", Encoding: "utf-8"},
		Log:    LogConfig{Level: "info"},
	}
}

// LoadAppConfig loads and validates the application configuration. A
// missing file at the default path falls back to Defaults; an explicitly
// named file must exist. Environment variables (optionally from a .env
// file) override file values.
func LoadAppConfig(path string) (AppConfig, error) {
	cfg := Defaults()

	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return AppConfig{}, err
		}
	case os.IsNotExist(err) && !explicit:
		// defaults
	default:
		return AppConfig{}, err
	}

	// .env is optional
	_ = godotenv.Load()
	applyEnv(&cfg)

	v := validator.New()
	if err := v.Struct(cfg.Output); err != nil {
		return AppConfig{}, err
	}
	if err := v.Struct(cfg.Log); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}

func applyEnv(cfg *AppConfig) {
	if s := os.Getenv("EVENTS2KML_INPUT"); s != "" {
		cfg.Input.Path = s
	}
	if s := os.Getenv("EVENTS2KML_OUTPUT"); s != "" {
		cfg.Output.Path = s
	}
	if s := os.Getenv("EVENTS2KML_ADAPTER"); s != "" {
		cfg.Output.Adapter = s
	}
	if s := os.Getenv("EVENTS2KML_ENCODING"); s != "" {
		cfg.Output.Encoding = s
	}
	if s := os.Getenv("EVENTS2KML_STRICT"); s != "" {
		if b, err := strconv.ParseBool(s); err == nil {
			cfg.Output.Strict = b
		}
	}
	if s := os.Getenv("EVENTS2KML_LOG_LEVEL"); s != "" {
		cfg.Log.Level = s
	}
}
