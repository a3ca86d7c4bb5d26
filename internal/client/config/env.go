package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first, if present;
// variables already set in the environment win over the file.
//
// Recognized variables:
//
//	CITAS_API_URL
//	CITAS_DATA_DIR
//	CITAS_REQUEST_TIMEOUT          (Go duration, e.g. "15s")
//	CITAS_ONLINE_CHECK_INTERVAL    (Go duration, e.g. "3s")
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("CITAS_API_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("CITAS_DATA_DIR"); v != "" {
		cfg.DataDir = v
	}
	if v := os.Getenv("CITAS_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("CITAS_ONLINE_CHECK_INTERVAL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
}
