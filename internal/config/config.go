package config

import (
	"log"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the service configuration. Values come from config.yaml
// (or CONFIG_PATH) with environment-variable overrides.
type Config struct {
	ListenAddr  string `yaml:"listen_addr"`
	DatasetRows int    `yaml:"dataset_rows"`
	DatasetSeed *int64 `yaml:"dataset_seed"` // unset = fresh sample per process
	ExportDir   string `yaml:"export_dir"`
}

// Load reads the configuration, applies env overrides and fills defaults
func Load() Config {
	var cfg Config

	configPath := "config.yaml"
	if envPath := os.Getenv("CONFIG_PATH"); envPath != "" {
		configPath = envPath
	}
	if data, err := os.ReadFile(configPath); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			log.Fatalf("Error parsing %s: %v", configPath, err)
		}
		log.Printf("Loaded config from %s", configPath)
	}

	// Env vars override YAML values
	envOverride(&cfg.ListenAddr, "LISTEN_ADDR")
	envOverrideInt(&cfg.DatasetRows, "DATASET_ROWS")
	envOverrideSeed(&cfg.DatasetSeed, "DATASET_SEED")
	envOverride(&cfg.ExportDir, "EXPORT_DIR")

	// Defaults
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}
	if cfg.DatasetRows <= 0 {
		cfg.DatasetRows = 1000
	}
	if cfg.ExportDir == "" {
		cfg.ExportDir = "./exports"
	}

	return cfg
}

func envOverride(target *string, key string) {
	if v := os.Getenv(key); v != "" {
		*target = v
	}
}

func envOverrideInt(target *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*target = n
		}
	}
}

func envOverrideSeed(target **int64, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			*target = &n
		}
	}
}
