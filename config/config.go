package config

import "os"

// Config holds the application configuration, read from the environment.
type Config struct {
	Port        string
	CSVPath     string
	FrontendURL string
}

// Load reads the configuration with sensible defaults for local runs.
func Load() Config {
	return Config{
		Port:        getEnv("PORT", "3001"),
		CSVPath:     getEnv("SALES_CSV_PATH", "data/sales.csv"),
		FrontendURL: getEnv("FRONTEND_URL", "*"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
