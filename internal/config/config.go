package config

import (
	"log"
	"net/http"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

type Config struct {
	DB_URL      string
	Port        string
	JWTSecret   string
	Environment string
	UploadDir   string
	CorsConfig  cors.Options
}

// Load reads the environment (plus an optional .env file) once and returns
// an immutable Config. Everything downstream receives it explicitly; nothing
// consults os.Getenv after startup.
func Load() Config {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil {
		log.Println("No", envFile, "file found")
	}

	return Config{
		// Empty DB_URL falls back to a local sqlite file, see repositories.Connect.
		DB_URL: getEnv("DB_URL", ""),
		Port:   getEnv("PORT", "8080"),
		// Insecure default, override in any real deployment.
		JWTSecret:   getEnv("JWT_SECRET", "change-this-secret"),
		Environment: getEnv("ENV", "development"),
		UploadDir:   getEnv("UPLOAD_DIR", "uploads"),
		CorsConfig:  corsConfig(getEnv("CORS_ORIGINS", "http://localhost:5173")),
	}
}

// Gets the env by key or fallbacks
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func corsConfig(origins string) cors.Options {
	return cors.Options{
		AllowedOrigins:   splitOrigins(origins),
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	}
}

func splitOrigins(s string) []string {
	parts := strings.Split(s, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			origins = append(origins, p)
		}
	}
	return origins
}
