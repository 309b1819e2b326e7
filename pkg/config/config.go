package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Environment string `mapstructure:"environment"`

	Server struct {
		Port string `mapstructure:"port"`
	} `mapstructure:"server"`

	Database struct {
		// Driver selects the adapter: "sqlite" or "postgres".
		Driver string `mapstructure:"driver"`

		// URL is the postgres connection string.
		URL string `mapstructure:"url"`

		// Path is the sqlite database file.
		Path string `mapstructure:"path"`

		MigrationsPath string `mapstructure:"migrations_path"`
	} `mapstructure:"database"`

	JWT struct {
		Secret string `mapstructure:"secret"`

		// Expiration is the token lifetime in milliseconds.
		Expiration int64 `mapstructure:"expiration"`
	} `mapstructure:"jwt"`

	Telemetry struct {
		TracingEnabled bool   `mapstructure:"tracing_enabled"`
		OTLPEndpoint   string `mapstructure:"otlp_endpoint"`
		MetricsPort    string `mapstructure:"metrics_port"`
	} `mapstructure:"telemetry"`

	Cache struct {
		Enabled bool   `mapstructure:"enabled"`
		TTL     string `mapstructure:"ttl"`
	} `mapstructure:"cache"`
}

// Load reads taskapp.yaml when present and lets TASKAPP_* environment
// variables override every key, e.g. TASKAPP_JWT_SECRET or
// TASKAPP_DATABASE_DRIVER.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("environment", "development")
	v.SetDefault("server.port", "8080")
	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.url", "")
	v.SetDefault("database.path", "taskapp.db")
	v.SetDefault("database.migrations_path", "")

	// Registering the key is what lets AutomaticEnv surface
	// TASKAPP_JWT_SECRET during Unmarshal.
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration", 3600000)
	v.SetDefault("telemetry.tracing_enabled", false)
	v.SetDefault("telemetry.otlp_endpoint", "localhost:4317")
	v.SetDefault("telemetry.metrics_port", "9090")
	v.SetDefault("cache.enabled", true)
	v.SetDefault("cache.ttl", "3s")

	v.SetConfigName("taskapp")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	v.SetEnvPrefix("TASKAPP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if cfg.JWT.Secret == "" {
		return nil, fmt.Errorf("jwt.secret is required (set TASKAPP_JWT_SECRET)")
	}

	if cfg.Database.MigrationsPath == "" {
		switch cfg.Database.Driver {
		case "postgres":
			cfg.Database.MigrationsPath = "infra/migrations"
		default:
			cfg.Database.MigrationsPath = "db/migrations"
		}
	}

	return &cfg, nil
}
