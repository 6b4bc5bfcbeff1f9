package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds the server configuration. Values come from an optional YAML
// file, overridden by environment variables, falling back to defaults.
type Config struct {
	ListenAddr  string   `yaml:"listenAddr"`
	DataFile    string   `yaml:"dataFile"`
	PublicDir   string   `yaml:"publicDir"`
	CORSOrigins []string `yaml:"corsOrigins"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		ListenAddr:  ":3000",
		DataFile:    "public/data.json",
		PublicDir:   "public",
		CORSOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
	}
}

// Load builds the configuration from the YAML file at path (skipped when
// path is empty or the file does not exist) plus environment overrides.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if addr := os.Getenv("TOKUSOUND_LISTEN_ADDR"); addr != "" {
		c.ListenAddr = addr
	}
	if port := os.Getenv("PORT"); port != "" {
		c.ListenAddr = ":" + port
	}
	if dataFile := os.Getenv("TOKUSOUND_DATA_FILE"); dataFile != "" {
		c.DataFile = dataFile
	}
	if publicDir := os.Getenv("TOKUSOUND_PUBLIC_DIR"); publicDir != "" {
		c.PublicDir = publicDir
	}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		c.CORSOrigins = strings.Split(origins, ",")
	}
}
