package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	_ "github.com/joho/godotenv/autoload"
)

const ServiceName = "recommender_service"

type Config struct {
	Port              int
	MongoURI          string
	ListDBName        string
	RecommenderDBName string
	AllowedOrigins    []string
	StatsServiceURL   string
	ScanWorkers       int
	RateLimitRPS      float64
	RateLimitBurst    int
}

// Load reads the service configuration from the environment. A .env file in
// the working directory is loaded first when present.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:          getEnv("MONGO_URI", "mongodb://localhost:27017"),
		ListDBName:        getEnv("LIST_DB_NAME", "smart_shopping_lists"),
		RecommenderDBName: getEnv("RECOMMENDER_DB_NAME", "smart_shopping_recommender"),
		AllowedOrigins:    splitList(getEnv("ALLOWED_ORIGINS", "*")),
		StatsServiceURL:   strings.TrimRight(os.Getenv("STATS_SERVICE_URL"), "/"),
	}

	var err error
	if cfg.Port, err = getInt("PORT", 8080); err != nil {
		return nil, err
	}
	if cfg.ScanWorkers, err = getInt("RECOMMENDER_SCAN_WORKERS", 1); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getInt("RATE_LIMIT_BURST", 5); err != nil {
		return nil, err
	}
	if cfg.RateLimitRPS, err = getFloat("RATE_LIMIT_RPS", 3); err != nil {
		return nil, err
	}

	if cfg.Port <= 0 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d", cfg.Port)
	}
	if cfg.ScanWorkers < 1 {
		return nil, fmt.Errorf("RECOMMENDER_SCAN_WORKERS must be at least 1, got %d", cfg.ScanWorkers)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getFloat(key string, fallback float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
