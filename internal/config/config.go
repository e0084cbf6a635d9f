package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	DBDSN       string `yaml:"db"`
	LogFile     string `yaml:"log_file"`
	ForeignKeys bool   `yaml:"foreign_keys"`
	Seed        bool   `yaml:"seed"`
}

// Default mirrors what the tool did before any configuration existed:
// store.db next to the binary, foreign keys left to SQLite's default (off).
func Default() Config {
	return Config{
		DBDSN:   "store.db",
		LogFile: "storedesk.log",
		Seed:    true,
	}
}

// Load resolves configuration from defaults, an optional YAML file and the
// environment (including a .env file in the working directory), in that order.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("reading config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parsing config %s: %w", path, err)
		}
	}

	if v := os.Getenv("STORE_DB"); v != "" {
		cfg.DBDSN = v
	}
	// LOG_FILE set to an empty string turns file logging off.
	if v, ok := os.LookupEnv("LOG_FILE"); ok {
		cfg.LogFile = v
	}
	var err error
	if cfg.ForeignKeys, err = envBool("STORE_FOREIGN_KEYS", cfg.ForeignKeys); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = envBool("STORE_SEED", cfg.Seed); err != nil {
		return Config{}, err
	}

	if cfg.DBDSN == "" {
		return Config{}, errors.New("database path is empty")
	}
	return cfg, nil
}

func envBool(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
