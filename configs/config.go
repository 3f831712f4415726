package configs

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env         string
	DBDriver    string
	DBSource    string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string
}

// LoadConfig reads .env (when present) and the process environment.
// JWT_SECRET has no fallback outside development: tokens must never be
// signed with a compiled-in constant.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, using process environment")
	}

	cfg := &Config{
		Env:         getEnv("APP_ENV", "development"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBSource:    getEnv("DB_SOURCE", "delivery.db"),
		Port:        getEnv("PORT", "8000"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTTTL:      7 * 24 * time.Hour,
		CORSOrigins: splitList(getEnv("CORS_ORIGINS", "*")),
	}

	if cfg.JWTSecret == "" {
		if cfg.Env == "production" {
			log.Fatal("missing env: JWT_SECRET")
		}
		cfg.JWTSecret = getEnv("JWT_SECRET_DEV", "dev-only-secret")
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}

// splitList parses a comma-separated env value, dropping empty entries.
func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
