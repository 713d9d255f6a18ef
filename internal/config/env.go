package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Init loads the optional .env file and checks the variables the data layer
// needs. Missing database or storage configuration degrades the app instead
// of killing it, so local tooling can still run against a partial setup.
func Init() {
	if err := godotenv.Load(); err != nil {
		Logger.Debug("no .env file found, relying on process environment")
	}

	for _, key := range []string{"DATABASE_DSN", "PUBLIC_BASE_URL"} {
		if os.Getenv(key) == "" {
			Logger.Warnf("%s is not set; the data layer will be degraded", key)
		}
	}
}

// Getenv returns the value of key or fallback when unset.
func Getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
