package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"taskboard/internal/db"
)

type Config struct {
	Server struct {
		Port int `yaml:"port"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		DSN    string `yaml:"url"`
	} `yaml:"database"`
	Client struct {
		APIURL string `yaml:"api_url"`
	} `yaml:"client"`
}

// LoadConfig reads the default config file; both binaries share it.
func LoadConfig() *Config {
	return LoadConfigFile("config/config.yaml")
}

func LoadConfigFile(path string) *Config {
	f, err := os.Open(path)
	if err != nil {
		panic("Failed to open " + path + ": " + err.Error())
	}
	defer f.Close()

	var cfg Config
	if err := yaml.NewDecoder(f).Decode(&cfg); err != nil {
		panic("Failed to parse " + path + ": " + err.Error())
	}

	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = db.DriverSQLite
	}
	if cfg.Client.APIURL == "" {
		cfg.Client.APIURL = fmt.Sprintf("http://localhost:%d", cfg.Server.Port)
	}
	return &cfg
}
