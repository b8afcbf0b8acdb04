package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Server  ServerConfig `yaml:"server"`
	Spec    SpecConfig   `yaml:"spec"`
	Logging LogConfig    `yaml:"logging"`
}

// ServerConfig holds the HTTP listener configuration
type ServerConfig struct {
	Host string `yaml:"host" validate:"required"`
	Port int    `yaml:"port" validate:"gte=1,lte=65535"`
}

// SpecConfig holds the OpenAPI document configuration
type SpecConfig struct {
	Path string `yaml:"path" validate:"required"`
}

// LogConfig holds logging configuration
type LogConfig struct {
	Level       string `yaml:"level" validate:"omitempty,oneof=debug info warn error"`
	LogToFile   bool   `yaml:"log_to_file"`
	LogFilePath string `yaml:"log_file_path"`
	MaxSize     int    `yaml:"max_size"`    // megabytes
	MaxBackups  int    `yaml:"max_backups"` // rotated files to retain
	MaxAge      int    `yaml:"max_age"`     // days
	Compress    bool   `yaml:"compress"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Host: "127.0.0.1",
			Port: 8080,
		},
		Spec: SpecConfig{
			Path: "api-spec.yaml",
		},
		Logging: LogConfig{
			Level:       "info",
			LogToFile:   false,
			LogFilePath: "openapi-stub-server.log",
			MaxSize:     10,
			MaxBackups:  3,
			MaxAge:      28,
			Compress:    true,
		},
	}
}

// Load reads a YAML configuration file and applies defaults for any
// values left unset.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&config)

	if err := NewValidator().Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadOrDefault loads the configuration from the given path, falling
// back to defaults if the file does not exist or cannot be parsed.
func LoadOrDefault(path string) *Config {
	config, err := Load(path)
	if err != nil {
		return Default()
	}
	return config
}

func applyDefaults(config *Config) {
	defaults := Default()

	if config.Server.Host == "" {
		config.Server.Host = defaults.Server.Host
	}
	if config.Server.Port == 0 {
		config.Server.Port = defaults.Server.Port
	}
	if config.Spec.Path == "" {
		config.Spec.Path = defaults.Spec.Path
	}
	if config.Logging.Level == "" {
		config.Logging.Level = defaults.Logging.Level
	}
	if config.Logging.LogFilePath == "" {
		config.Logging.LogFilePath = defaults.Logging.LogFilePath
	}
	if config.Logging.MaxSize == 0 {
		config.Logging.MaxSize = defaults.Logging.MaxSize
	}
	if config.Logging.MaxBackups == 0 {
		config.Logging.MaxBackups = defaults.Logging.MaxBackups
	}
	if config.Logging.MaxAge == 0 {
		config.Logging.MaxAge = defaults.Logging.MaxAge
	}
}
