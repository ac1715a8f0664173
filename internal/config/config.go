package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Global
		Database
		Log
		Security
		RateLimit
		Tasks
		IntegritySweep
	}

	HTTP struct {
		Port int32
		Host string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
	Database struct {
		Driver string // "sqlite" or "postgres"
		Path   string // SQLite file
		DSN    string // PostgreSQL connection string, never committed
	}
	Log struct {
		Level  string
		Format string // "console" or "json"
	}
	Security struct {
		CSRFSecret      string // Empty disables CSRF protection
		SecureCookies   bool   // Set to false for local dev without HTTPS
		SessionLifetime time.Duration
	}
	RateLimit struct {
		Enabled bool
		RPS     float64
		Burst   int
	}
	Tasks struct {
		Enabled         bool
		Workers         int
		ReleaseAfter    time.Duration
		CleanupInterval time.Duration
	}
	IntegritySweep struct {
		Enabled  bool
		Schedule string // Cron format: "0 3 * * *" = daily at 03:00
	}
)

// Load reads an optional .env file into the environment and builds the config.
// Values already set in the environment win over the file.
func Load(files ...string) *Config {
	_ = godotenv.Load(files...)
	return NewConfig()
}

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8188)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)

	v.SetDefault("database_driver", "sqlite")
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("database_dsn", "")

	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "console")

	v.SetDefault("csrf_secret", "")
	v.SetDefault("secure_cookies", true)
	v.SetDefault("session_lifetime", defaultSessionLifetime.String())

	v.SetDefault("rate_limit_enabled", true)
	v.SetDefault("rate_limit_rps", 5)
	v.SetDefault("rate_limit_burst", 10)

	// Task queue defaults
	v.SetDefault("tasks_enabled", true)
	v.SetDefault("task_workers", 1)
	v.SetDefault("task_release_after", defaultTaskReleaseAfter.String())
	v.SetDefault("task_cleanup_interval", defaultTaskCleanupInterval.String())

	v.SetDefault("integrity_sweep_enabled", true)
	v.SetDefault("integrity_sweep_schedule", DefaultIntegritySweepSchedule)

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("PORT"),
			Host: v.GetString("HOST"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("SHUTDOWN_TIMEOUT_IN_SECONDS"),
		},
		Database: Database{
			Driver: v.GetString("DATABASE_DRIVER"),
			Path:   v.GetString("DATABASE_PATH"),
			DSN:    v.GetString("DATABASE_DSN"),
		},
		Log: Log{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		Security: Security{
			CSRFSecret:      v.GetString("CSRF_SECRET"),
			SecureCookies:   v.GetBool("SECURE_COOKIES"),
			SessionLifetime: duration(v, "SESSION_LIFETIME", defaultSessionLifetime),
		},
		RateLimit: RateLimit{
			Enabled: v.GetBool("RATE_LIMIT_ENABLED"),
			RPS:     v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:   v.GetInt("RATE_LIMIT_BURST"),
		},
		Tasks: Tasks{
			Enabled:         v.GetBool("TASKS_ENABLED"),
			Workers:         v.GetInt("TASK_WORKERS"),
			ReleaseAfter:    duration(v, "TASK_RELEASE_AFTER", defaultTaskReleaseAfter),
			CleanupInterval: duration(v, "TASK_CLEANUP_INTERVAL", defaultTaskCleanupInterval),
		},
		IntegritySweep: IntegritySweep{
			Enabled:  v.GetBool("INTEGRITY_SWEEP_ENABLED"),
			Schedule: v.GetString("INTEGRITY_SWEEP_SCHEDULE"),
		},
	}
}

// duration reads a Go duration string such as "15m". Values without a unit,
// unparseable values and non-positive values fall back to def.
func duration(v *viper.Viper, key string, def time.Duration) time.Duration {
	raw := v.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		log.Warn().Str("key", key).Str("value", raw).Dur("default", def).Msg("Invalid duration, using default")
		return def
	}
	return d
}
