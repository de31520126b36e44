package config

import (
	"os"

	"github.com/joho/godotenv"
)

// App holds the runtime configuration loaded from environment variables.
type App struct {
	Env          string
	HTTPPort     string
	DatabaseURL  string
	DatabaseName string
}

// Load returns application config populated from the environment, after a
// best-effort .env load. Missing DATABASE_URL is not an error here: the
// service starts without a store and data endpoints answer 503.
func Load() App {
	_ = godotenv.Load()

	return App{
		Env:          getEnv("APP_ENV", "dev"),
		HTTPPort:     getEnv("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: getEnv("DATABASE_NAME", "campus"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
