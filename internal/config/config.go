package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the process-wide settings shared by the CLI commands.
// Values come from the environment (optionally via a .env file), with
// flags layered on top by the CLI.
type Config struct {
	LogLevel       string
	DBPath         string
	DownloadDir    string
	TimeoutSeconds int
	DelayMs        int
	CleanupTemp    bool
}

// Load reads the configuration from the environment. A missing .env file
// is not an error.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		DBPath:         getEnv("LYRICSHARE_DB_PATH", ""),
		DownloadDir:    getEnv("LYRICSHARE_DOWNLOAD_DIR", "temp_lyrics"),
		TimeoutSeconds: getEnvInt("LYRICSHARE_TIMEOUT_SECONDS", 30),
		DelayMs:        getEnvInt("LYRICSHARE_DELAY_MS", 1000),
		CleanupTemp:    getEnvBool("LYRICSHARE_CLEANUP_TEMP", true),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}
