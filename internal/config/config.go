package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server Server `yaml:"server"`

	JWT JWT `yaml:"jwt"`

	Orders Orders `yaml:"orders"`

	Seed bool `yaml:"seed"`
}

type Server struct {
	Address        string   `yaml:"address"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

type JWT struct {
	Secret    string `yaml:"secret"`
	ExpiresIn int    `yaml:"expires_in"` // In Hours
}

type Orders struct {
	// StrictTransitions rejects status changes that are not a legal
	// step in the order or reservation lifecycle. Off by default: the
	// reference behaviour lets an authorized actor set any status
	// from any other status.
	StrictTransitions bool `yaml:"strict_transitions"`
}

func Load() (*Config, error) {
	configPath := "configs/development.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}

	f, err := os.Open(configPath)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}
