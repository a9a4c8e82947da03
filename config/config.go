package config

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"dario.cat/mergo"
	"github.com/joho/godotenv"
)

// AppConfig holds environment driven configuration values. The server is a
// mock backend, so unlike a production deployment every value carries a
// usable development default.
type AppConfig struct {
	AppPort            string   `json:"app_port"`
	GinMode            string   `json:"gin_mode"`
	JWTSecret          string   `json:"jwt_secret"`
	TokenTTLHours      int      `json:"token_ttl_hours"`
	AllowedOrigins     []string `json:"allowed_origins"`
	RateLimitPerMinute int      `json:"rate_limit_per_minute"`
	SeedDemoData       bool     `json:"seed_demo_data"`
	// Logging configuration
	LogLevel      string `json:"log_level"`
	LogPath       string `json:"log_path"`
	GinLogPath    string `json:"gin_log_path"`
	LogMaxSizeMB  int    `json:"log_max_size_mb"`
	LogMaxBackups int    `json:"log_max_backups"`
	LogMaxAgeDays int    `json:"log_max_age_days"`
	LogCompress   bool   `json:"log_compress"`
}

var cfg AppConfig
var loaded bool

// defaults returns the baseline configuration merged under whatever the
// JSON file and environment provide.
func defaults() AppConfig {
	return AppConfig{
		AppPort:            "8080",
		GinMode:            "release",
		JWTSecret:          "techfolks-dev-secret",
		TokenTTLHours:      72,
		AllowedOrigins:     []string{"*"},
		RateLimitPerMinute: 60,
		SeedDemoData:       true,
		LogLevel:           "info",
		LogPath:            "logs/app.log",
		GinLogPath:         "logs/gin.log",
		LogMaxSizeMB:       100,
		LogMaxBackups:      3,
		LogMaxAgeDays:      7,
	}
}

// Load loads the application configuration. It should be called once
// during boot. Precedence: environment variables -> config/config.json ->
// built-in defaults.
func Load() AppConfig {
	if loaded {
		return cfg
	}

	// Optional .env file for local development.
	_ = godotenv.Load()

	_ = loadJSONConfig(filepath.Join("config", "config.json"), &cfg)

	// Fill any zero value from the defaults.
	if err := mergo.Merge(&cfg, defaults()); err != nil {
		log.Fatalf("config defaults merge failed: %v", err)
	}

	applyEnvOverrides(&cfg)

	loaded = true
	return cfg
}

// Get returns the cached configuration, loading it if necessary.
func Get() AppConfig {
	if !loaded {
		return Load()
	}
	return cfg
}

// Reset clears the cached configuration. Test helper.
func Reset() {
	cfg = AppConfig{}
	loaded = false
}

// loadJSONConfig reads a flat JSON file into out if present. Returns an
// error only for invalid JSON.
func loadJSONConfig(path string, out *AppConfig) error {
	f, err := os.Open(path)
	if err != nil {
		return nil // silently ignore missing file
	}
	defer f.Close()
	return json.NewDecoder(f).Decode(out)
}

func applyEnvOverrides(out *AppConfig) {
	setString := func(key string, dst *string) {
		if v := os.Getenv(key); v != "" {
			*dst = v
		}
	}
	setInt := func(key string, dst *int) {
		if v := os.Getenv(key); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				*dst = n
			}
		}
	}
	setBool := func(key string, dst *bool) {
		if v := os.Getenv(key); v != "" {
			if b, err := strconv.ParseBool(v); err == nil {
				*dst = b
			}
		}
	}

	setString("APP_PORT", &out.AppPort)
	setString("GIN_MODE", &out.GinMode)
	setString("JWT_SECRET", &out.JWTSecret)
	setInt("TOKEN_TTL_HOURS", &out.TokenTTLHours)
	setInt("RATE_LIMIT_PER_MINUTE", &out.RateLimitPerMinute)
	setBool("SEED_DEMO_DATA", &out.SeedDemoData)
	setString("LOG_LEVEL", &out.LogLevel)
	setString("LOG_PATH", &out.LogPath)
	setString("GIN_LOG_PATH", &out.GinLogPath)
	setInt("LOG_MAX_SIZE_MB", &out.LogMaxSizeMB)
	setInt("LOG_MAX_BACKUPS", &out.LogMaxBackups)
	setInt("LOG_MAX_AGE_DAYS", &out.LogMaxAgeDays)
	setBool("LOG_COMPRESS", &out.LogCompress)

	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		if len(origins) > 0 {
			out.AllowedOrigins = origins
		}
	}
}
