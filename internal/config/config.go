package config

import "os"

type Config struct {
	Addr         string
	Env          string // "production" or "development"
	StorageKind  string // "file" or "redis"
	DataDir      string
	RedisURL     string
	RedisPrefix  string
	InsightURL   string
	InsightKey   string
	InsightModel string
}

func Load() *Config {
	return &Config{
		Addr:         getenv("SMARTPOS_ADDR", ":8080"),
		Env:          getenv("SMARTPOS_ENV", "development"),
		StorageKind:  getenv("SMARTPOS_STORAGE", "file"),
		DataDir:      getenv("SMARTPOS_DATA_DIR", "data"),
		RedisURL:     getenv("SMARTPOS_REDIS_URL", "redis://localhost:6379"),
		RedisPrefix:  getenv("SMARTPOS_REDIS_PREFIX", "smartpos"),
		InsightURL:   getenv("SMARTPOS_INSIGHT_URL", "https://generativelanguage.googleapis.com"),
		InsightKey:   os.Getenv("SMARTPOS_INSIGHT_KEY"),
		InsightModel: getenv("SMARTPOS_INSIGHT_MODEL", "gemini-3-flash-preview"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
