// Package config loads server configuration from the environment. A .env
// file in the working directory is read first when present; real environment
// variables always win over it.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	Admin     AdminConfig
	Analytics AnalyticsConfig
	Booking   BookingConfig
	CORS      CORSConfig
	Log       LogConfig
}

type ServerConfig struct {
	Port      int
	PublicURL string
	// RateLimitMax is the number of MCP requests allowed per client IP per
	// 15-minute window. Zero disables rate limiting.
	RateLimitMax int
}

type AdminConfig struct {
	// Token guards the analytics admin API. When empty, the admin API
	// responds 503 to every request.
	Token string
}

type AnalyticsConfig struct {
	DBPath string
}

type BookingConfig struct {
	// URL is the scheduling link returned by the availability tool. When
	// empty, the tool falls back to the profile's portfolio URL.
	URL string
}

type CORSConfig struct {
	// Origins allowed to call the MCP endpoint from a browser. Empty means
	// allow any origin.
	Origins []string
}

type LogConfig struct {
	Level string
}

func defaults() Config {
	return Config{
		Server: ServerConfig{
			Port:         8000,
			RateLimitMax: 100,
		},
		Analytics: AnalyticsConfig{
			DBPath: "./analytics.db",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from a .env file (if present) and the process
// environment. Environment variable names match the reference deployment:
// PORT, SERVER_URL, ADMIN_TOKEN, ANALYTICS_DB_PATH, CALENDLY_URL,
// CORS_ORIGINS, RATE_LIMIT_MAX, LOG_LEVEL.
func Load() (Config, error) {
	// Ignore a missing .env; any other read error is surfaced by godotenv
	// only through os.Open, so a missing file is the common case.
	_ = godotenv.Load()

	cfg := defaults()
	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv("PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Server.Port = port
	}
	if v := os.Getenv("SERVER_URL"); v != "" {
		cfg.Server.PublicURL = v
	}
	if v := os.Getenv("RATE_LIMIT_MAX"); v != "" {
		max, err := strconv.Atoi(v)
		if err != nil || max < 0 {
			return fmt.Errorf("invalid RATE_LIMIT_MAX %q", v)
		}
		cfg.Server.RateLimitMax = max
	}
	if v := os.Getenv("ADMIN_TOKEN"); v != "" {
		cfg.Admin.Token = v
	}
	if v := os.Getenv("ANALYTICS_DB_PATH"); v != "" {
		cfg.Analytics.DBPath = v
	}
	if v := os.Getenv("CALENDLY_URL"); v != "" {
		cfg.Booking.URL = v
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.CORS.Origins = origins
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	return nil
}
