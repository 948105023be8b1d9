package config

// InputConfig describes where the event stream comes from
type InputConfig struct {
	// Path of the JSONL event stream; "-" means stdin
	Path string `yaml:"path"`
}

// OutputConfig describes the output adapter and its destination
type OutputConfig struct {
	// Path of the generated document; "-" means stdout
	Path     string `yaml:"path"`
	Adapter  string `yaml:"adapter" validate:"required"`
	Encoding string `yaml:"encoding" validate:"required"`
	Strict   bool   `yaml:"strict"`
}

// LogConfig controls logging
type LogConfig struct {
	Level string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}
