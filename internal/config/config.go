package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port string `yaml:"port" env:"SERVER_PORT"`
		Mode string `yaml:"mode" env:"SERVER_MODE"`
	} `yaml:"server"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`

	Payroll struct {
		SalaryPerBlock int64 `yaml:"salary_per_block" env:"PAYROLL_SALARY_PER_BLOCK"`
	} `yaml:"payroll"`

	Seed struct {
		Enabled bool `yaml:"enabled" env:"SEED_ENABLED"`
	} `yaml:"seed"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The config file is optional; defaults plus environment cover the rest
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	config.Payroll.SalaryPerBlock = 100

	config.Seed.Enabled = false
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	overrideString(&config.Server.Port, "SERVER_PORT")
	overrideString(&config.Server.Mode, "SERVER_MODE")
	overrideString(&config.Logging.Level, "LOG_LEVEL")
	overrideString(&config.Logging.Format, "LOG_FORMAT")

	if value, ok := os.LookupEnv("PAYROLL_SALARY_PER_BLOCK"); ok {
		salary, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return fmt.Errorf("PAYROLL_SALARY_PER_BLOCK must be an integer: %w", err)
		}
		config.Payroll.SalaryPerBlock = salary
	}
	if value, ok := os.LookupEnv("SEED_ENABLED"); ok {
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("SEED_ENABLED must be a boolean: %w", err)
		}
		config.Seed.Enabled = enabled
	}
	return nil
}

func overrideString(target *string, key string) {
	if value, ok := os.LookupEnv(key); ok {
		*target = value
	}
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if _, err := strconv.Atoi(config.Server.Port); err != nil {
		return fmt.Errorf("server port must be numeric, got %q", config.Server.Port)
	}

	switch strings.ToLower(config.Server.Mode) {
	case "development", "release", "test":
	default:
		return fmt.Errorf("server mode must be development, release or test, got %q", config.Server.Mode)
	}

	switch strings.ToLower(config.Logging.Level) {
	case "debug", "info", "warn", "error", "fatal":
	default:
		return fmt.Errorf("log level must be one of debug, info, warn, error, fatal, got %q", config.Logging.Level)
	}

	if config.Payroll.SalaryPerBlock == 0 {
		return fmt.Errorf("payroll salary per block cannot be zero")
	}

	return nil
}
