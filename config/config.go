package config

import (
	"log"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Server struct {
		APIAddress string `yaml:"api_address"`
		WebAddress string `yaml:"web_address"`
	} `yaml:"server"`
	Database struct {
		URL string `yaml:"url"`
	} `yaml:"database"`
	API struct {
		BaseURL string `yaml:"base_url"`
	} `yaml:"api"`
	Search struct {
		Lng         float64 `yaml:"lng"`
		Lat         float64 `yaml:"lat"`
		MaxDistance float64 `yaml:"max_distance"`
	} `yaml:"search"`
}

func LoadConfig() Config {
	path := os.Getenv("CONFIG_PATH")
	if path == "" {
		path = "config.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatalf("Failed to read config file: %v", err)
	}

	var cfg Config
	err = yaml.Unmarshal(data, &cfg)
	if err != nil {
		log.Fatalf("Failed to unmarshal config data: %v", err)
	}

	if databaseURL := os.Getenv("DATABASE_URL"); databaseURL != "" {
		cfg.Database.URL = databaseURL
	}

	return cfg
}
