package config

import (
	"encoding/json"
	"os"
)

// Config holds everything the process reads from its environment. Values are
// resolved once at startup, in order: the local overrides file (dokan.json in
// the working directory), then process environment variables. The overrides
// file mirrors the manual-credential fallback the hosted deployments need
// when real env vars cannot be set.
type Config struct {
	Port          string `json:"port"`
	MongoURI      string `json:"mongoUri"`
	MongoDB       string `json:"mongoDb"`
	RedisURL      string `json:"redisUrl"`
	RedisPassword string `json:"redisPassword"`

	AdminPassword     string `json:"adminPassword"`
	AdminPasswordHash string `json:"adminPasswordHash"`

	GenAPIURL string `json:"genApiUrl"`
	GenAPIKey string `json:"genApiKey"`
}

const OverridesFile = "dokan.json"

func Load() Config {
	var cfg Config

	// overrides file wins over the environment
	if data, err := os.ReadFile(OverridesFile); err == nil {
		_ = json.Unmarshal(data, &cfg)
	}

	fill(&cfg.Port, "PORT")
	fill(&cfg.MongoURI, "MONGODB_URI")
	fill(&cfg.MongoDB, "MONGODB_DB")
	fill(&cfg.RedisURL, "REDIS_URL")
	fill(&cfg.RedisPassword, "REDIS_PASSWORD")
	fill(&cfg.AdminPassword, "ADMIN_PASSWORD")
	fill(&cfg.AdminPasswordHash, "ADMIN_PASSWORD_HASH")
	fill(&cfg.GenAPIURL, "GEN_API_URL")
	fill(&cfg.GenAPIKey, "GEN_API_KEY")

	if cfg.MongoDB == "" {
		cfg.MongoDB = "dokandb"
	}
	if cfg.AdminPassword == "" && cfg.AdminPasswordHash == "" {
		// the original shipped with this gate; not a security boundary
		cfg.AdminPassword = "admin123"
	}
	return cfg
}

func fill(dst *string, key string) {
	if *dst == "" {
		*dst = os.Getenv(key)
	}
}

// Configured reports whether a persistent backend is available. When false
// the server runs in setup mode against the in-memory store.
func (c Config) Configured() bool {
	return c.MongoURI != ""
}
