package config

import (
	"os"
	"strconv"
)

type Config struct {
	InputDir     string
	OutputDir    string
	Port         int
	WindowRadius int
	MaxBlocks    int
	MinBlockLen  int
	DatabaseURL  string
	NatsURL      string
	NatsToken    string
	LogLevel     string
}

func Load() Config {
	return Config{
		InputDir:     envStr("SPECSHEET_INPUT_DIR", "spec_input"),
		OutputDir:    envStr("SPECSHEET_OUTPUT_DIR", "output"),
		Port:         envInt("SPECSHEET_PORT", 8762),
		WindowRadius: envInt("SPECSHEET_WINDOW_RADIUS", 30000),
		MaxBlocks:    envInt("SPECSHEET_MAX_BLOCKS", 12),
		MinBlockLen:  envInt("SPECSHEET_MIN_BLOCK_LEN", 50),
		DatabaseURL:  envStr("DATABASE_URL", ""),
		NatsURL:      envStr("NATS_URL", ""),
		NatsToken:    envStr("NATS_TOKEN", ""),
		LogLevel:     envStr("LOG_LEVEL", "info"),
	}
}

func envStr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
