package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"doceencanto/internal/whatsapp"
)

// Config is the service configuration loaded from a yaml file.
type Config struct {
	Server struct {
		Port        int `yaml:"port"`
		MetricsPort int `yaml:"metrics_port"`
	} `yaml:"server"`
	Database struct {
		Path string `yaml:"path"`
	} `yaml:"database"`
	WhatsApp struct {
		Number string `yaml:"number"`
	} `yaml:"whatsapp"`
	Contact struct {
		AccessKey string `yaml:"access_key"`
	} `yaml:"contact"`
	Address struct {
		DefaultCity string `yaml:"default_city"`
	} `yaml:"address"`
}

// Default returns the configuration used when no file is provided.
func Default() *Config {
	cfg := &Config{}
	cfg.Server.Port = 8080
	cfg.Server.MetricsPort = 9090
	cfg.Database.Path = "doceencanto.db"
	cfg.WhatsApp.Number = whatsapp.DefaultNumber
	cfg.Address.DefaultCity = "Itapeva-SP"
	return cfg
}

// Load reads the yaml configuration at path on top of the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
