package helpers

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

var loadEnvOnce sync.Once

// GetGoDotEnv loads .env on first use and returns the named variable. A
// missing .env file is fine - the process environment still applies.
func GetGoDotEnv(key string) string {
	loadEnvOnce.Do(func() {
		_ = godotenv.Load(".env")
	})
	return os.Getenv(key)
}

// GetGoDotEnvDefault returns the named variable or a fallback when unset.
func GetGoDotEnvDefault(key, fallback string) string {
	if v := GetGoDotEnv(key); v != "" {
		return v
	}
	return fallback
}
