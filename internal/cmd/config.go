package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config selects the storage backend and logging level
type Config struct {
	Storage struct {
		Backend string `yaml:"backend"` // file | postgres | memory
		File    struct {
			Path string `yaml:"path"`
		} `yaml:"file"`
		Postgres struct {
			DocumentKey string `yaml:"document_key"`
		} `yaml:"postgres"`
	} `yaml:"storage"`
	Log struct {
		Level string `yaml:"level"`
	} `yaml:"log"`
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Storage.Backend = "file"
	cfg.Storage.File.Path = "data/team-roster-data.json"
	cfg.Log.Level = "info"
	return cfg
}

// loadConfig reads the yaml config, falling back to defaults when the file
// does not exist
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := defaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
