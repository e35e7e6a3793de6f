package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	for _, key := range []string{
		"PORT", "MONGO_URI", "LIST_DB_NAME", "RECOMMENDER_DB_NAME", "ALLOWED_ORIGINS",
		"STATS_SERVICE_URL", "RECOMMENDER_SCAN_WORKERS", "RATE_LIMIT_RPS", "RATE_LIMIT_BURST",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "mongodb://localhost:27017", cfg.MongoURI)
	assert.Equal(t, "smart_shopping_lists", cfg.ListDBName)
	assert.Equal(t, "smart_shopping_recommender", cfg.RecommenderDBName)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.Empty(t, cfg.StatsServiceURL)
	assert.Equal(t, 1, cfg.ScanWorkers)
	assert.Equal(t, 3.0, cfg.RateLimitRPS)
	assert.Equal(t, 5, cfg.RateLimitBurst)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("ALLOWED_ORIGINS", "http://localhost:5173, https://shop.example.com ,")
	t.Setenv("STATS_SERVICE_URL", "http://stats:8004/")
	t.Setenv("RECOMMENDER_SCAN_WORKERS", "4")
	t.Setenv("RATE_LIMIT_RPS", "10.5")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, []string{"http://localhost:5173", "https://shop.example.com"}, cfg.AllowedOrigins)
	assert.Equal(t, "http://stats:8004", cfg.StatsServiceURL)
	assert.Equal(t, 4, cfg.ScanWorkers)
	assert.Equal(t, 10.5, cfg.RateLimitRPS)
}

func TestLoadRejectsBadValues(t *testing.T) {
	tests := map[string]string{
		"PORT":                     "eighty",
		"RECOMMENDER_SCAN_WORKERS": "0",
		"RATE_LIMIT_RPS":           "fast",
	}
	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(key, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
