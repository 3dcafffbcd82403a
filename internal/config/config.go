package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr          string        `yaml:"addr"`
	DatabasePath  string        `yaml:"database_path"`
	JWTSecret     string        `yaml:"jwt_secret"`
	APITimeout    time.Duration `yaml:"timeout"`
	TokenDuration time.Duration `yaml:"token_duration"`
}

// LoadConfig builds the configuration from the environment (a .env file is
// honored when present) and optionally overrides it from a YAML file.
func LoadConfig(path string) (*Config, error) {
	// ignore a missing .env; real environment variables still apply
	_ = godotenv.Load()

	cfg := &Config{
		Addr:          getEnv("RDV_ADDR", ""),
		DatabasePath:  getEnv("RDV_DATABASE_PATH", "rdv.db"),
		JWTSecret:     getEnv("RDV_JWT_SECRET", "supersecretkey"),
		APITimeout:    15 * time.Second,
		TokenDuration: 1 * time.Hour,
	}
	if cfg.Addr == "" {
		cfg.Addr = ":" + getEnv("PORT", "8000")
	}

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		if err := dec.Decode(cfg); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}
